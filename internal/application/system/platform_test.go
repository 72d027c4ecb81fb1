package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidecore/internal/domain/entity"
)

func createTestPlatform(from, to entity.Vec2, speed float64) *MovingPlatform {
	actor := entity.NewActor(7, entity.Vec2{X: 99, Y: 99}, entity.Vec2{X: 3, Y: 0.5})
	return NewMovingPlatform(actor, from, to, speed)
}

func TestMovingPlatform_Legs(t *testing.T) {
	from, to := entity.Vec2{X: 0, Y: 2}, entity.Vec2{X: 2, Y: 2}
	p := createTestPlatform(from, to, 1)

	assert.Equal(t, from, p.Actor().Position, "starts at from")
	assert.Equal(t, 0.0, p.Actor().GravityScale)
	assert.True(t, p.Forward())

	// two seconds per leg
	for i := 0; i < 64; i++ {
		p.OnPhysicsTick(testDt)
		assert.InDelta(t, 1.0, p.Velocity().X, 1e-6)
		assert.InDelta(t, 0.0, p.Velocity().Y, 1e-9)
	}
	assert.InDelta(t, 1.0, p.Actor().Position.X, 1e-6)
	assert.Equal(t, p.Velocity(), p.Actor().Velocity)

	for i := 0; i < 64; i++ {
		p.OnPhysicsTick(testDt)
	}
	assert.InDelta(t, 2.0, p.Actor().Position.X, 1e-6)
	assert.False(t, p.Forward(), "reversed at to")

	p.OnPhysicsTick(testDt)
	assert.InDelta(t, -1.0, p.Velocity().X, 1e-6)
	assert.Less(t, p.Actor().Position.X, 2.0)

	for i := 0; i < 127; i++ {
		p.OnPhysicsTick(testDt)
	}
	assert.InDelta(t, 0.0, p.Actor().Position.X, 1e-6)
	assert.True(t, p.Forward(), "back on the first leg")
}

func TestMovingPlatform_Stationary(t *testing.T) {
	tests := []struct {
		name     string
		from, to entity.Vec2
		speed    float64
	}{
		{"zero speed", entity.Vec2{X: 1}, entity.Vec2{X: 5}, 0},
		{"same point", entity.Vec2{X: 1}, entity.Vec2{X: 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlatform(tt.from, tt.to, tt.speed)
			for i := 0; i < 10; i++ {
				p.OnPhysicsTick(testDt)
			}
			assert.Equal(t, tt.from, p.Actor().Position)
			assert.True(t, p.Velocity().IsZero())
		})
	}
}

type fakePlatformSource map[entity.EntityID]entity.Vec2

func (f fakePlatformSource) PlatformVelocity(id entity.EntityID) (entity.Vec2, bool) {
	v, ok := f[id]
	return v, ok
}

func TestPlatformRideTracker_Attach(t *testing.T) {
	up := []entity.Vec2{{X: 0.1, Y: 0.99}}
	side := []entity.Vec2{{X: 1}}

	tests := []struct {
		name       string
		other      entity.EntityID
		isPlatform bool
		normals    []entity.Vec2
		want       entity.EntityID
	}{
		{"standing on platform", 7, true, up, 7},
		{"side of platform", 7, true, side, entity.NoEntity},
		{"mixed normals", 7, true, append(side, up...), 7},
		{"static ground", 3, false, up, entity.NoEntity},
		{"no handle", entity.NoEntity, true, up, entity.NoEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewPlatformRideTracker(fakePlatformSource{7: {X: 2}})
			tr.OnContact(tt.other, tt.isPlatform, tt.normals)
			assert.Equal(t, tt.want, tr.Platform())
		})
	}
}

func TestPlatformRideTracker_SampleAndCompose(t *testing.T) {
	src := fakePlatformSource{7: {X: 2, Y: 0.5}}
	tr := NewPlatformRideTracker(src)

	tr.OnPhysicsTick(testDt)
	assert.True(t, tr.Velocity().IsZero())
	assert.Equal(t, entity.Vec2{X: 1}, tr.Compose(entity.Vec2{X: 1}))

	tr.OnContact(7, true, []entity.Vec2{{Y: 1}})
	tr.OnPhysicsTick(testDt)
	assert.Equal(t, entity.Vec2{X: 2, Y: 0.5}, tr.Velocity())
	assert.Equal(t, entity.Vec2{X: 5, Y: 0.5}, tr.Compose(entity.Vec2{X: 3}))

	src[7] = entity.Vec2{X: -2}
	tr.OnPhysicsTick(testDt)
	assert.Equal(t, entity.Vec2{X: -2}, tr.Velocity(), "sampled every tick")
}

func TestPlatformRideTracker_Detach(t *testing.T) {
	src := fakePlatformSource{7: {X: 2}, 8: {X: -1}}
	tr := NewPlatformRideTracker(src)
	tr.OnContact(7, true, []entity.Vec2{{Y: 1}})
	tr.OnPhysicsTick(testDt)

	tr.OnContactLost(8)
	assert.Equal(t, entity.EntityID(7), tr.Platform(), "losing another platform keeps the ride")

	tr.OnContact(8, true, []entity.Vec2{{Y: 1}})
	assert.Equal(t, entity.EntityID(8), tr.Platform(), "last upward contact wins")

	tr.OnContactLost(8)
	assert.Equal(t, entity.NoEntity, tr.Platform())
	assert.True(t, tr.Velocity().IsZero())
}

func TestPlatformRideTracker_MissingPlatform(t *testing.T) {
	src := fakePlatformSource{7: {X: 2}}
	tr := NewPlatformRideTracker(src)
	tr.OnContact(7, true, []entity.Vec2{{Y: 1}})
	tr.OnPhysicsTick(testDt)
	require.Equal(t, entity.EntityID(7), tr.Platform())

	delete(src, 7)
	tr.OnPhysicsTick(testDt)
	assert.Equal(t, entity.NoEntity, tr.Platform())
	assert.True(t, tr.Velocity().IsZero())

	nilSource := NewPlatformRideTracker(nil)
	nilSource.OnContact(7, true, []entity.Vec2{{Y: 1}})
	nilSource.OnPhysicsTick(testDt)
	assert.Equal(t, entity.NoEntity, nilSource.Platform())
}

func TestPlatformRideTracker_WithMovingPlatform(t *testing.T) {
	p := createTestPlatform(entity.Vec2{}, entity.Vec2{X: 4}, 2)
	src := fakePlatformSource{}
	tr := NewPlatformRideTracker(src)
	tr.OnContact(p.ID(), true, []entity.Vec2{{Y: 1}})

	p.OnPhysicsTick(testDt)
	src[p.ID()] = p.Velocity()
	tr.OnPhysicsTick(testDt)
	assert.InDelta(t, 2.0, tr.Compose(entity.Vec2{}).X, 1e-6)

	tr.Reset()
	assert.Equal(t, entity.NoEntity, tr.Platform())
}
