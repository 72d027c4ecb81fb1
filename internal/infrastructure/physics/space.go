package physics

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/domain/entity"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlatform
	collisionTypeActor
)

const defaultIterations = 10

// Space is the Chipmunk-backed collision world.
// Actors own the authoritative position and velocity; Space copies them into
// cp bodies before each step and back out afterwards.
type Space struct {
	space *cp.Space

	bodies map[entity.EntityID]*bodyInfo
	shapes map[*cp.Shape]shapeInfo

	// contacts seen during the current step, keyed by receiver then other shape
	touching map[entity.EntityID]map[*cp.Shape]system.Contact
	previous map[entity.EntityID]map[*cp.Shape]system.Contact
}

type bodyInfo struct {
	actor   *entity.Actor
	kind    system.BodyKind
	body    *cp.Body
	shape   *cp.Shape
	carrier entity.Vec2
	synced  entity.Vec2
}

type shapeInfo struct {
	id    entity.EntityID
	layer entity.Layer
}

// NewSpace creates an empty space with gravity along Y (negative is down)
func NewSpace(gravity float64, iterations int) *Space {
	space := cp.NewSpace()
	if iterations <= 0 {
		iterations = defaultIterations
	}
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	s := &Space{
		space:    space,
		bodies:   make(map[entity.EntityID]*bodyInfo),
		shapes:   make(map[*cp.Shape]shapeInfo),
		touching: make(map[entity.EntityID]map[*cp.Shape]system.Contact),
		previous: make(map[entity.EntityID]map[*cp.Shape]system.Contact),
	}
	s.setupHandlers()
	return s
}

// Space returns the underlying Chipmunk space
func (s *Space) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// AddStatic adds an immovable box on layer
func (s *Space) AddStatic(rect entity.Rect, layer entity.Layer) {
	bb := cp.BB{L: rect.X, B: rect.Y, R: rect.X + rect.Width, T: rect.Y + rect.Height}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(layerFilter(layer))
	s.space.AddShape(shape)
	s.shapes[shape] = shapeInfo{id: entity.NoEntity, layer: layer}
}

// AddBody registers an actor. Calling it again for the same ID replaces the body.
func (s *Space) AddBody(actor *entity.Actor, layer entity.Layer, kind system.BodyKind) {
	if actor == nil {
		return
	}
	s.RemoveBody(actor.ID)

	w, h := actor.Size.X, actor.Size.Y
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	var body *cp.Body
	collisionType := collisionTypeActor
	if kind == system.BodyKinematic {
		body = cp.NewKinematicBody()
		collisionType = collisionTypePlatform
	} else {
		mass := actor.Mass
		if mass <= 0 {
			mass = 1
		}
		body = cp.NewBody(mass, math.Inf(1))
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity.Mult(actor.GravityScale), damping, dt)
		})
	}
	body.SetPosition(toCP(actor.Position))
	body.SetAngle(0)

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionType)
	shape.SetFilter(layerFilter(layer))

	s.space.AddBody(body)
	s.space.AddShape(shape)

	s.bodies[actor.ID] = &bodyInfo{
		actor:  actor,
		kind:   kind,
		body:   body,
		shape:  shape,
		synced: actor.Position,
	}
	s.shapes[shape] = shapeInfo{id: actor.ID, layer: layer}
}

// RemoveBody drops the actor's body. Unknown IDs are ignored.
func (s *Space) RemoveBody(id entity.EntityID) {
	info, ok := s.bodies[id]
	if !ok {
		return
	}
	s.space.RemoveShape(info.shape)
	s.space.RemoveBody(info.body)
	delete(s.shapes, info.shape)
	delete(s.bodies, id)
	delete(s.touching, id)
	delete(s.previous, id)
}

// SetCarrier sets an extra velocity the body moves with, such as the
// platform it rides. The actor's own velocity excludes it.
func (s *Space) SetCarrier(id entity.EntityID, v entity.Vec2) {
	if info, ok := s.bodies[id]; ok {
		info.carrier = v
	}
}

// OverlapAt reports whether any shape on mask lies within radius of point
func (s *Space) OverlapAt(point entity.Vec2, radius float64, mask entity.Layer) bool {
	if radius < 0 {
		radius = 0
	}
	info := s.space.PointQueryNearest(toCP(point), radius, queryFilter(mask))
	return info != nil && info.Shape != nil
}

// Raycast returns the first shape on mask hit along dir within maxDistance
func (s *Space) Raycast(origin, dir entity.Vec2, maxDistance float64, mask entity.Layer) (entity.RayHit, bool) {
	dir = dir.Normalize()
	if dir.IsZero() || maxDistance <= 0 {
		return entity.RayHit{}, false
	}
	end := origin.Add(dir.Scale(maxDistance))
	info := s.space.SegmentQueryFirst(toCP(origin), toCP(end), 0, queryFilter(mask))
	if info.Shape == nil {
		return entity.RayHit{}, false
	}
	meta := s.shapes[info.Shape]
	return entity.RayHit{
		Point:    fromCP(info.Point),
		Normal:   fromCP(info.Normal),
		Distance: info.Alpha * maxDistance,
		Entity:   meta.id,
		Layer:    meta.layer,
	}, true
}

// Step copies actor state in, advances the simulation by fixedDt, copies it
// back out and reports contact changes to listener.
func (s *Space) Step(fixedDt float64, listener system.ContactListener) {
	if fixedDt <= 0 {
		return
	}
	s.syncIn(fixedDt)

	s.touching = make(map[entity.EntityID]map[*cp.Shape]system.Contact, len(s.bodies))
	s.space.Step(fixedDt)

	s.syncOut()
	s.flushContacts(listener)
}

func (s *Space) syncIn(fixedDt float64) {
	for _, info := range s.bodies {
		a := info.actor
		switch info.kind {
		case system.BodyKinematic:
			// end the step exactly on the actor's position
			info.body.SetPosition(toCP(a.Position.Sub(a.Velocity.Scale(fixedDt))))
			info.body.SetVelocityVector(toCP(a.Velocity))
		default:
			if a.Position != info.synced {
				info.body.SetPosition(toCP(a.Position))
			}
			info.body.SetVelocityVector(toCP(a.Velocity.Add(info.carrier)))
		}
		info.body.SetAngle(0)
		info.body.SetAngularVelocity(0)
	}
}

func (s *Space) syncOut() {
	for _, info := range s.bodies {
		if info.kind == system.BodyKinematic {
			continue
		}
		a := info.actor
		a.Position = fromCP(info.body.Position())
		a.Velocity = fromCP(info.body.Velocity()).Sub(info.carrier)
		info.synced = a.Position
	}
}

func (s *Space) flushContacts(listener system.ContactListener) {
	if listener != nil {
		var events []contactEvent
		for id, now := range s.touching {
			before := s.previous[id]
			for shape, c := range now {
				_, stay := before[shape]
				events = append(events, contactEvent{self: id, contact: c, stay: stay})
			}
		}
		for id, before := range s.previous {
			now := s.touching[id]
			for shape, c := range before {
				if _, ok := now[shape]; !ok {
					events = append(events, contactEvent{self: id, contact: c, ended: true})
				}
			}
		}

		// fixed delivery order, independent of map iteration
		sort.Slice(events, func(i, j int) bool { return events[i].less(events[j]) })
		for _, e := range events {
			switch {
			case e.ended:
				listener.OnContactEnd(e.self, e.contact.Other)
			case e.stay:
				listener.OnContactStay(e.self, e.contact)
			default:
				listener.OnContactBegin(e.self, e.contact)
			}
		}
	}
	s.previous = s.touching
}

type contactEvent struct {
	self    entity.EntityID
	contact system.Contact
	stay    bool
	ended   bool
}

func (e contactEvent) less(o contactEvent) bool {
	if e.ended != o.ended {
		return !e.ended
	}
	if e.self != o.self {
		return e.self < o.self
	}
	a, b := e.contact, o.contact
	if a.Other != b.Other {
		return a.Other < b.Other
	}
	if a.Normal.Y != b.Normal.Y {
		return a.Normal.Y < b.Normal.Y
	}
	return a.Normal.X < b.Normal.X
}

func (s *Space) setupHandlers() {
	for _, other := range []cp.CollisionType{collisionTypeSolid, collisionTypePlatform} {
		handler := s.space.NewCollisionHandler(collisionTypeActor, other)
		handler.UserData = s
		handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sp, ok := userData.(*Space)
			if !ok || sp == nil {
				return true
			}
			sp.recordContact(arb)
			return true
		}
	}

	// actors pass through each other; contact damage is an overlap test
	actors := s.space.NewCollisionHandler(collisionTypeActor, collisionTypeActor)
	actors.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return false
	}
}

func (s *Space) recordContact(arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	self, other := shapeA, shapeB
	// arbiter normal points from A to B; receivers want it pointing at themselves
	n := arb.Normal().Neg()
	if s.shapes[shapeA].id == entity.NoEntity || s.shapes[shapeA].layer.Has(system.GroundMask) {
		self, other = shapeB, shapeA
		n = arb.Normal()
	}

	selfInfo, ok := s.shapes[self]
	if !ok || selfInfo.id == entity.NoEntity {
		return
	}
	otherInfo := s.shapes[other]

	contacts := s.touching[selfInfo.id]
	if contacts == nil {
		contacts = make(map[*cp.Shape]system.Contact)
		s.touching[selfInfo.id] = contacts
	}
	contacts[other] = system.Contact{
		Other:  otherInfo.id,
		Layer:  otherInfo.layer,
		Normal: fromCP(n),
	}
}

func layerFilter(layer entity.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES)
}

func queryFilter(mask entity.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
}

func toCP(v entity.Vec2) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

func fromCP(v cp.Vector) entity.Vec2 { return entity.Vec2{X: v.X, Y: v.Y} }
