package entity

// HealthState is the hit point pool of a damageable actor.
// HP is kept in [0, MaxHP].
type HealthState struct {
	HP    int
	MaxHP int

	Invulnerable         bool
	InvulnerableDeadline float64
}

// NewHealthState creates a full health pool. maxHP is clamped to at least 1.
func NewHealthState(maxHP int) HealthState {
	if maxHP < 1 {
		maxHP = 1
	}
	return HealthState{HP: maxHP, MaxHP: maxHP}
}

// Take subtracts amount and clamps at zero. Returns true if HP reached zero.
func (h *HealthState) Take(amount int) bool {
	if amount <= 0 {
		return h.HP <= 0
	}
	h.HP -= amount
	if h.HP < 0 {
		h.HP = 0
	}
	return h.HP == 0
}

// Dead reports whether HP is zero
func (h *HealthState) Dead() bool {
	return h.HP <= 0
}

// Restore refills HP and clears invulnerability
func (h *HealthState) Restore() {
	h.HP = h.MaxHP
	h.Invulnerable = false
	h.InvulnerableDeadline = 0
}

// Ratio returns HP/MaxHP in [0, 1]
func (h *HealthState) Ratio() float64 {
	if h.MaxHP <= 0 {
		return 0
	}
	return float64(h.HP) / float64(h.MaxHP)
}
