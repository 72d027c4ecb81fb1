package system

// ContactDamage is a damage volume applied every physics tick while overlapping
type ContactDamage struct {
	Damage int
}

// Apply hurts target. Returns true if the target took the hit.
func (c ContactDamage) Apply(target Damageable) bool {
	if target == nil || c.Damage <= 0 {
		return false
	}
	return target.ApplyDamage(c.Damage)
}
