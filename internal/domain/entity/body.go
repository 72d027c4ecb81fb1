package entity

// Actor is the physical substrate shared by every controller.
// Position is the body center in world units, Y up.
// Velocity is in world units per second.
type Actor struct {
	ID       EntityID
	Position Vec2
	Velocity Vec2
	Size     Vec2 // body width/height, consumed by the physics backend

	Facing       int     // +1 right, -1 left
	GravityScale float64 // 1 = normal gravity, 0 = none
	Mass         float64
	Visible      bool
}

// NewActor creates an actor facing right with normal gravity and unit mass
func NewActor(id EntityID, pos Vec2, size Vec2) *Actor {
	return &Actor{
		ID:           id,
		Position:     pos,
		Size:         size,
		Facing:       1,
		GravityScale: 1,
		Mass:         1,
		Visible:      true,
	}
}

// FacingRight reports whether the actor faces +X
func (a *Actor) FacingRight() bool {
	return a.Facing >= 0
}

// SetFacing sets facing from the sign of dir. Zero leaves facing unchanged.
func (a *Actor) SetFacing(dir int) {
	if dir > 0 {
		a.Facing = 1
	} else if dir < 0 {
		a.Facing = -1
	}
}

// Flip reverses facing
func (a *Actor) Flip() {
	if a.Facing >= 0 {
		a.Facing = -1
	} else {
		a.Facing = 1
	}
}

// ApplyImpulse changes velocity by j/mass
func (a *Actor) ApplyImpulse(j Vec2) {
	m := a.Mass
	if m <= 0 {
		m = 1
	}
	a.Velocity = a.Velocity.Add(j.Scale(1 / m))
}

// Teleport moves the actor and drops all velocity
func (a *Actor) Teleport(p Vec2) {
	a.Position = p
	a.Velocity = Vec2{}
}

// Bounds returns the body box in world coordinates
func (a *Actor) Bounds() Rect {
	return Rect{
		X:      a.Position.X - a.Size.X/2,
		Y:      a.Position.Y - a.Size.Y/2,
		Width:  a.Size.X,
		Height: a.Size.Y,
	}
}

// Hitbox is a box relative to the actor center, authored for a right-facing actor
type Hitbox struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

// WorldRect returns the hitbox in world coordinates.
// The X offset is mirrored for left-facing actors.
func (h Hitbox) WorldRect(center Vec2, facing int) Rect {
	offsetX := h.OffsetX
	if facing < 0 {
		offsetX = -h.OffsetX
	}
	return Rect{
		X:      center.X + offsetX - h.Width/2,
		Y:      center.Y + h.OffsetY - h.Height/2,
		Width:  h.Width,
		Height: h.Height,
	}
}

// IsZero reports whether the hitbox has no area
func (h Hitbox) IsZero() bool {
	return h.Width <= 0 || h.Height <= 0
}
