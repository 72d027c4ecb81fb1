package replay

import "github.com/younwookim/sidecore/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records the sampled input of a single logic tick
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	X float64 `json:"x,omitempty"` // Horizontal axis
	J bool    `json:"j,omitempty"` // Jump pressed
	A bool    `json:"a,omitempty"` // Attack pressed
	D bool    `json:"d,omitempty"` // Dash pressed
}

// FromInput converts a sampled input into a frame record
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		X: in.Axis,
		J: in.JumpPressed,
		A: in.AttackPressed,
		D: in.DashPressed,
	}
}

// Input converts the record back into the sampled input
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Axis:          f.X,
		JumpPressed:   f.J,
		AttackPressed: f.A,
		DashPressed:   f.D,
	}
}

// ReplayData contains all data needed to replay a session: the stage, the
// RNG seed enemies were scheduled with and one input per logic tick
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
