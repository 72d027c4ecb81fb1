package entity

// PlatformRide is a non-owning handle to the platform an actor stands on.
// The handle is resolved through the registry each tick and never keeps the
// platform alive.
type PlatformRide struct {
	Platform EntityID
	Velocity Vec2
}

// Riding reports whether a platform is referenced
func (r *PlatformRide) Riding() bool {
	return r.Platform != NoEntity
}

// Attach sets the ridden platform
func (r *PlatformRide) Attach(id EntityID) {
	if r.Platform == id {
		return
	}
	r.Platform = id
	r.Velocity = Vec2{}
}

// Detach clears the handle only if id is the ridden platform.
// Returns true if the handle was cleared.
func (r *PlatformRide) Detach(id EntityID) bool {
	if id == NoEntity || r.Platform != id {
		return false
	}
	r.Clear()
	return true
}

// Clear drops the handle unconditionally
func (r *PlatformRide) Clear() {
	r.Platform = NoEntity
	r.Velocity = Vec2{}
}
