package combat

// Shared tile mutation helpers used by the cast-resolution pipeline
// and the reaction engine. All mutations clamp their target's
// invariants (health in [0,cap], energy >= 0).

func (rt *Runtime) damageTile(ref TileRef, amount int, source TileRef) {
	t := rt.tile(ref)
	if t == nil || t.Empty() || t.Dead || amount <= 0 {
		return
	}
	hero, _ := rt.Catalog.Hero(t.HeroID)
	t.CurrentHealth -= amount
	clampHealth(t, hero)
}

func (rt *Runtime) healTile(ref TileRef, amount int) {
	t := rt.tile(ref)
	if t == nil || t.Empty() || t.Dead || amount <= 0 {
		return
	}
	hero, _ := rt.Catalog.Hero(t.HeroID)
	t.CurrentHealth += amount
	clampHealth(t, hero)
}

func (rt *Runtime) grantEnergy(ref TileRef, amount int) {
	t := rt.tile(ref)
	if t == nil || t.Empty() || t.Dead {
		return
	}
	t.CurrentEnergy += amount
	clampEnergy(t)
}

// applyVoidShield reduces incoming damage by the hero's flat VoidShield
// value.
func applyVoidShield(amount int, hero HeroTemplate) int {
	reduced := amount - hero.Augments.VoidShield
	if reduced < 0 {
		return 0
	}
	return reduced
}

func applyArmor(amount, armor int) int {
	reduced := amount - armor
	if reduced < 0 {
		return 0
	}
	return reduced
}
