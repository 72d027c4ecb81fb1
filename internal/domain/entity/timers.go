package entity

// MovementTimers holds the jump bookkeeping of a controllable actor.
// Both stamps are absolute clock times.
type MovementTimers struct {
	LastGroundedTime    float64
	LastJumpRequestTime float64
	AirJumpsRemaining   int
	ExtraAirJumps       int
}

// NewMovementTimers creates timers with no grounded or jump history
func NewMovementTimers(extraAirJumps int) MovementTimers {
	if extraAirJumps < 0 {
		extraAirJumps = 0
	}
	return MovementTimers{
		LastGroundedTime:    Never,
		LastJumpRequestTime: Never,
		AirJumpsRemaining:   extraAirJumps,
		ExtraAirJumps:       extraAirJumps,
	}
}

// RequestJump records a jump press at now
func (t *MovementTimers) RequestJump(now float64) {
	t.LastJumpRequestTime = now
}

// Buffered reports whether a jump press is still inside the buffer window
func (t *MovementTimers) Buffered(now, buffer float64) bool {
	return now-t.LastJumpRequestTime <= buffer
}

// InCoyote reports whether the actor was grounded within the coyote window
func (t *MovementTimers) InCoyote(now, coyote float64) bool {
	return now-t.LastGroundedTime <= coyote
}

// Land refills air jumps
func (t *MovementTimers) Land() {
	t.AirJumpsRemaining = t.ExtraAirJumps
}

// ConsumeAirJump spends one air jump if any are left
func (t *MovementTimers) ConsumeAirJump() bool {
	if t.AirJumpsRemaining <= 0 {
		t.AirJumpsRemaining = 0
		return false
	}
	t.AirJumpsRemaining--
	return true
}

// ClearJumpRequest invalidates the buffered press so it cannot fire twice
func (t *MovementTimers) ClearJumpRequest() {
	t.LastJumpRequestTime = Never
}

// Reset restores spawn-time values
func (t *MovementTimers) Reset() {
	*t = NewMovementTimers(t.ExtraAirJumps)
}

// AttackState is the timed attack window.
// While active it owns the sprite and, for instant controllers, horizontal control.
type AttackState struct {
	Active   bool
	Deadline float64
}

// Start enters the attack window. Returns false if already attacking.
func (a *AttackState) Start(now, duration float64) bool {
	if a.Active {
		return false
	}
	if duration < 0 {
		duration = 0
	}
	a.Active = true
	a.Deadline = now + duration
	return true
}

// Update expires the attack once now reaches the deadline.
// Returns true while the attack is still active.
func (a *AttackState) Update(now float64) bool {
	if a.Active && now >= a.Deadline {
		a.Active = false
	}
	return a.Active
}

// Remaining returns the time left in the window
func (a *AttackState) Remaining(now float64) float64 {
	if !a.Active || now >= a.Deadline {
		return 0
	}
	return a.Deadline - now
}

// Cancel drops the attack immediately
func (a *AttackState) Cancel() {
	a.Active = false
	a.Deadline = 0
}
