package game

// Ticker is anything driven by the two-rate loop: one logic tick per frame,
// then zero or more fixed physics ticks.
type Ticker interface {
	OnLogicTick(dt float64)
	OnPhysicsTick(fixedDt float64)
}

// Driver turns variable frame times into a logic tick plus fixed physics
// ticks, carrying the remainder between frames.
type Driver struct {
	ticker   Ticker
	fixedDt  float64
	maxSteps int

	accumulator float64
	totalSteps  int
}

// NewDriver creates a driver. fixedDt <= 0 falls back to 1/60 and maxSteps
// < 1 to one physics tick per frame.
func NewDriver(ticker Ticker, fixedDt float64, maxSteps int) *Driver {
	if fixedDt <= 0 {
		fixedDt = 1.0 / 60.0
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Driver{ticker: ticker, fixedDt: fixedDt, maxSteps: maxSteps}
}

// Advance runs one frame and returns how many physics ticks it ran.
// Time beyond maxSteps ticks is dropped so a slow frame cannot snowball.
func (d *Driver) Advance(frameDt float64) int {
	if frameDt < 0 {
		frameDt = 0
	}
	d.ticker.OnLogicTick(frameDt)

	d.accumulator += frameDt
	steps := 0
	for d.accumulator >= d.fixedDt && steps < d.maxSteps {
		d.ticker.OnPhysicsTick(d.fixedDt)
		d.accumulator -= d.fixedDt
		steps++
	}
	if d.accumulator >= d.fixedDt {
		d.accumulator = 0
	}
	d.totalSteps += steps
	return steps
}

// Alpha is the fraction of a physics tick left in the accumulator, for
// interpolating draws between ticks
func (d *Driver) Alpha() float64 {
	return d.accumulator / d.fixedDt
}

// FixedDt returns the physics tick length
func (d *Driver) FixedDt() float64 { return d.fixedDt }

// TotalSteps returns the physics ticks run since creation
func (d *Driver) TotalSteps() int { return d.totalSteps }
