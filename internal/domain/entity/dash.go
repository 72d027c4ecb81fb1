package entity

// DashSlot is one dash charge with its own refill deadline
type DashSlot struct {
	InUse          bool
	RefillDeadline float64
}

// DashChargePool is a fixed set of dash charges.
// Invariant: Available() == Size() - number of slots in use.
type DashChargePool struct {
	slots     []DashSlot
	available int
}

// NewDashChargePool creates a pool with n free slots. n is clamped to at least 1.
func NewDashChargePool(n int) *DashChargePool {
	if n < 1 {
		n = 1
	}
	return &DashChargePool{
		slots:     make([]DashSlot, n),
		available: n,
	}
}

// Size returns the slot count
func (p *DashChargePool) Size() int {
	return len(p.slots)
}

// Available returns the number of free slots
func (p *DashChargePool) Available() int {
	return p.available
}

// Slots returns a copy of the slot table
func (p *DashChargePool) Slots() []DashSlot {
	out := make([]DashSlot, len(p.slots))
	copy(out, p.slots)
	return out
}

// Consume allocates the first free slot with deadline now+cooldown and pushes
// every other in-use slot's deadline forward by stagger, so two slots never
// come back on the same tick. Returns the slot index, or false if none is free.
func (p *DashChargePool) Consume(now, cooldown, stagger float64) (int, bool) {
	if p.available <= 0 {
		return -1, false
	}
	idx := -1
	for i := range p.slots {
		if !p.slots[i].InUse {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1, false
	}

	for i := range p.slots {
		if p.slots[i].InUse {
			p.slots[i].RefillDeadline += stagger
		}
	}
	p.slots[idx] = DashSlot{InUse: true, RefillDeadline: now + cooldown}
	p.available--
	return idx, true
}

// Refill frees at most one slot: the first in-use slot whose deadline has passed.
func (p *DashChargePool) Refill(now float64) (int, bool) {
	for i := range p.slots {
		if p.slots[i].InUse && now >= p.slots[i].RefillDeadline {
			p.slots[i] = DashSlot{}
			p.available++
			return i, true
		}
	}
	return -1, false
}

// Reset frees every slot
func (p *DashChargePool) Reset() {
	for i := range p.slots {
		p.slots[i] = DashSlot{}
	}
	p.available = len(p.slots)
}
