package system

// InputState is one logic tick's worth of input.
// Axis is in [-1, 1]; the Pressed fields are edges, true only on the press tick.
type InputState struct {
	Axis          float64
	JumpPressed   bool
	AttackPressed bool
	DashPressed   bool
}

// InputSource produces input once per logic tick
type InputSource interface {
	Sample() InputState
}

// InputFunc adapts a function to InputSource
type InputFunc func() InputState

// Sample calls f
func (f InputFunc) Sample() InputState {
	return f()
}

// Clamp returns the state with Axis limited to [-1, 1]
func (s InputState) Clamp() InputState {
	if s.Axis > 1 {
		s.Axis = 1
	} else if s.Axis < -1 {
		s.Axis = -1
	}
	return s
}
