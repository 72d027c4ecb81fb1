package world

import (
	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/domain/entity"
)

type fakeContact struct {
	self entity.EntityID
	c    system.Contact
}

// fakeBackend integrates velocities without collisions and replays scripted
// contacts on every step
type fakeBackend struct {
	statics  []entity.Rect
	bodies   map[entity.EntityID]*entity.Actor
	layers   map[entity.EntityID]entity.Layer
	kinds    map[entity.EntityID]system.BodyKind
	carriers map[entity.EntityID]entity.Vec2
	removed  []entity.EntityID
	contacts []fakeContact
	steps    int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		bodies:   make(map[entity.EntityID]*entity.Actor),
		layers:   make(map[entity.EntityID]entity.Layer),
		kinds:    make(map[entity.EntityID]system.BodyKind),
		carriers: make(map[entity.EntityID]entity.Vec2),
	}
}

func (f *fakeBackend) OverlapAt(point entity.Vec2, radius float64, mask entity.Layer) bool {
	if !mask.Has(entity.LayerGround) {
		return false
	}
	for _, r := range f.statics {
		grown := entity.Rect{X: r.X - radius, Y: r.Y - radius, Width: r.Width + 2*radius, Height: r.Height + 2*radius}
		if grown.Contains(point) {
			return true
		}
	}
	return false
}

func (f *fakeBackend) Raycast(origin, dir entity.Vec2, maxDistance float64, mask entity.Layer) (entity.RayHit, bool) {
	return entity.RayHit{}, false
}

func (f *fakeBackend) AddStatic(rect entity.Rect, layer entity.Layer) {
	f.statics = append(f.statics, rect)
}

func (f *fakeBackend) AddBody(actor *entity.Actor, layer entity.Layer, kind system.BodyKind) {
	f.bodies[actor.ID] = actor
	f.layers[actor.ID] = layer
	f.kinds[actor.ID] = kind
}

func (f *fakeBackend) RemoveBody(id entity.EntityID) {
	if _, ok := f.bodies[id]; !ok {
		return
	}
	delete(f.bodies, id)
	delete(f.carriers, id)
	f.removed = append(f.removed, id)
}

func (f *fakeBackend) SetCarrier(id entity.EntityID, v entity.Vec2) {
	if _, ok := f.bodies[id]; ok {
		f.carriers[id] = v
	}
}

func (f *fakeBackend) Step(fixedDt float64, listener system.ContactListener) {
	f.steps++
	for id, a := range f.bodies {
		if f.kinds[id] == system.BodyKinematic {
			continue
		}
		a.Position = a.Position.Add(a.Velocity.Add(f.carriers[id]).Scale(fixedDt))
	}
	for _, c := range f.contacts {
		if f.steps == 1 {
			listener.OnContactBegin(c.self, c.c)
		} else {
			listener.OnContactStay(c.self, c.c)
		}
	}
}
