package system

import (
	"math/rand"

	"github.com/younwookim/sidecore/internal/domain/entity"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// fakePhysics answers queries from plain funcs; nil funcs report nothing
type fakePhysics struct {
	overlap func(point entity.Vec2, radius float64, mask entity.Layer) bool
	ray     func(origin, dir entity.Vec2, maxDistance float64, mask entity.Layer) (entity.RayHit, bool)

	overlapCalls int
	rayCalls     int
}

func (f *fakePhysics) OverlapAt(point entity.Vec2, radius float64, mask entity.Layer) bool {
	f.overlapCalls++
	if f.overlap == nil {
		return false
	}
	return f.overlap(point, radius, mask)
}

func (f *fakePhysics) Raycast(origin, dir entity.Vec2, maxDistance float64, mask entity.Layer) (entity.RayHit, bool) {
	f.rayCalls++
	if f.ray == nil {
		return entity.RayHit{}, false
	}
	return f.ray(origin, dir, maxDistance, mask)
}

// groundSwitch is a fakePhysics whose ground overlap is toggled by the test
func groundSwitch(grounded *bool) *fakePhysics {
	return &fakePhysics{
		overlap: func(entity.Vec2, float64, entity.Layer) bool { return *grounded },
	}
}

// fakeController records SetEnabled and Reset calls
type fakeController struct {
	enabled bool
	calls   []bool
	resets  int
}

func (f *fakeController) SetEnabled(enabled bool) {
	f.enabled = enabled
	f.calls = append(f.calls, enabled)
}

func (f *fakeController) Reset() {
	f.resets++
}

// fakeInvulnerability records the manual flag
type fakeInvulnerability struct {
	on    bool
	calls int
}

func (f *fakeInvulnerability) SetInvulnerable(on bool) {
	f.on = on
	f.calls++
}

func (f *fakeInvulnerability) IsInvulnerable() bool { return f.on }

// scriptedInput returns whatever the pointer currently holds
func scriptedInput(in *InputState) InputSource {
	return InputFunc(func() InputState { return *in })
}
