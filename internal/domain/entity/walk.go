package entity

// DefaultWalkSequence is the gait frame order: 1,2,3,2,1,4,3,2,1 repeating
var DefaultWalkSequence = []int{1, 2, 3, 2, 1, 4, 3, 2, 1}

// MinWalkFPS floors the walk frame rate so frame time never divides by zero
const MinWalkFPS = 1.0

// WalkCycle steps through a cyclic frame sequence on accumulated time
type WalkCycle struct {
	seq       []int
	index     int
	timer     float64
	frameTime float64
}

// NewWalkCycle creates a cycle over seq at fps frames per second.
// An empty seq falls back to DefaultWalkSequence; fps is floored at MinWalkFPS.
func NewWalkCycle(seq []int, fps float64) *WalkCycle {
	if len(seq) == 0 {
		seq = DefaultWalkSequence
	}
	if fps < MinWalkFPS {
		fps = MinWalkFPS
	}
	s := make([]int, len(seq))
	copy(s, seq)
	return &WalkCycle{seq: s, frameTime: 1 / fps}
}

// Restart puts the cycle back on its first element
func (w *WalkCycle) Restart() {
	w.index = 0
	w.timer = 0
}

// Advance accumulates dt and steps once per frame time.
// Returns how many steps were taken.
func (w *WalkCycle) Advance(dt float64) int {
	if dt <= 0 {
		return 0
	}
	w.timer += dt
	steps := 0
	for w.timer >= w.frameTime {
		w.timer -= w.frameTime
		w.index = (w.index + 1) % len(w.seq)
		steps++
	}
	return steps
}

// Frame returns the current frame identifier
func (w *WalkCycle) Frame() int {
	return w.seq[w.index]
}

// Index returns the position in the sequence
func (w *WalkCycle) Index() int {
	return w.index
}

// FrameTime returns seconds per step
func (w *WalkCycle) FrameTime() float64 {
	return w.frameTime
}
