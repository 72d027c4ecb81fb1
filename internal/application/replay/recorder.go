package replay

import (
	"fmt"
	"time"

	"github.com/younwookim/sidecore/internal/application/system"
)

// Recorder captures the input a source produces, frame by frame
type Recorder struct {
	source    system.InputSource
	data      ReplayData
	recording bool
}

// NewRecorder wraps source. Every Sample is forwarded and recorded.
func NewRecorder(source system.InputSource, seed int64, stage string) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// Sample reads the wrapped source and records the result.
// Implements system.InputSource.
func (r *Recorder) Sample() system.InputState {
	var in system.InputState
	if r.source != nil {
		in = r.source.Sample()
	}
	r.RecordFrame(in)
	return in
}

// RecordFrame appends one frame while recording
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FromInput(len(r.data.Frames), in))
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	return Save(filename, r.data)
}

// Stop stops recording; Sample keeps forwarding
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
