package combat

// Effect applier. Applies/stacks effects on a tile and recomputes
// derived stats from base + active effects + positional modifiers.

// ApplyEffects clones each named effect from the catalog, stamps
// applied_by_* provenance, and appends to the target's visible effects.
// Same-named effects default to stacking: no de-dup here.
func (rt *Runtime) ApplyEffects(target TileRef, effectNames []string, applier TileRef) {
	t := rt.tile(target)
	if t == nil || t.Empty() || t.Dead {
		return
	}
	for _, name := range effectNames {
		def, ok := rt.Catalog.Effect(name)
		if !ok {
			rt.log("missing catalog entry for effect " + name)
			continue
		}
		if isBoss(rt, target) && name == "Shackle" {
			continue // Boss-tagged heroes are immune to Shackle.
		}
		inst := EffectInstance{
			EffectDef:           def,
			AppliedByInstanceID: "",
			AppliedBySide:       applier.Side,
			AppliedByZone:       applier.Zone,
			AppliedByIndex:      applier.Index,
		}
		t.Effects = append(t.Effects, inst)
		rt.emit(EventEffectApplied, EffectAppliedPayload{Target: target, EffectName: name})
	}
	rt.RecomputeModifiers(target)
}

func isBoss(rt *Runtime, ref TileRef) bool {
	t := rt.tile(ref)
	if t == nil || t.HeroID == "" {
		return false
	}
	hero, ok := rt.Catalog.Hero(t.HeroID)
	return ok && hero.Augments.IsBoss
}

// RecomputeModifiers rebuilds current_armor/current_speed/current_spell_power
// from the hero's base stats plus every active effect's Modifiers plus
// positional modifiers for the tile's current zone/row. fixed_positional
// heroes apply their reserve modifier exactly once, cached via
// StartingRowApplied.
func (rt *Runtime) RecomputeModifiers(ref TileRef) {
	t := rt.tile(ref)
	if t == nil || t.Empty() {
		return
	}
	hero, ok := rt.Catalog.Hero(t.HeroID)
	if !ok {
		return
	}

	mods := StatModifiers{}
	for _, e := range t.Effects {
		if e.Modifiers != nil {
			mods = mods.Add(*e.Modifiers)
		}
	}

	if ref.Zone == ZoneMain {
		slot := RowOf(ref.Side, ref.Index)
		if hero.Augments.FixedPositional {
			if !t.StartingRowApplied {
				mods = mods.Add(hero.ReserveModifiers)
				t.StartingRowApplied = true
			}
		} else if pm, ok := hero.PositionalModifiers[slot]; ok {
			mods = mods.Add(pm)
		}
	} else if !hero.Augments.FixedPositional {
		mods = mods.Add(hero.ReserveModifiers)
	}

	t.CurrentArmor = hero.BaseArmor + mods.Armor
	t.CurrentSpeed = hero.BaseSpeed + mods.Speed
	t.CurrentSpellPower = hero.BaseSpellPower + mods.SpellPower
}

// DecayDurations runs exactly once per round, at end of round, on Main
// boards only. Effects with duration==0 post-decrement are
// removed; duration==-1 is permanent and untouched.
func (rt *Runtime) DecayDurations(side Side) {
	b := rt.Boards[side]
	if b == nil {
		return
	}
	for i := range b.Main {
		t := &b.Main[i]
		if t.Empty() || t.Dead {
			continue
		}
		kept := t.Effects[:0]
		for _, e := range t.Effects {
			if e.Duration == -1 {
				kept = append(kept, e)
				continue
			}
			e.Duration--
			if e.Duration > 0 {
				kept = append(kept, e)
			}
		}
		t.Effects = kept
		rt.RecomputeModifiers(TileRef{Side: side, Zone: ZoneMain, Index: i})
	}
}

// removeDebuffs drops every debuff-kind effect from the target, returning
// whether anything was actually removed (several post-hooks chain on this).
func removeDebuffs(t *Tile) bool {
	removed := false
	kept := t.Effects[:0]
	for _, e := range t.Effects {
		if e.Kind == EffectDebuff {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	t.Effects = kept
	return removed
}

// stripBuffsAndDebuffs drops every buff and debuff effect from the tile,
// leaving neutral (e.g. marker) effects untouched.
func stripBuffsAndDebuffs(t *Tile) {
	kept := t.Effects[:0]
	for _, e := range t.Effects {
		if e.Kind == EffectNeutral {
			kept = append(kept, e)
		}
	}
	t.Effects = kept
}

func removeTopByPredicate(t *Tile, pred func(EffectInstance) bool) (EffectInstance, bool) {
	for i := len(t.Effects) - 1; i >= 0; i-- {
		if pred(t.Effects[i]) {
			removed := t.Effects[i]
			t.Effects = append(t.Effects[:i], t.Effects[i+1:]...)
			return removed, true
		}
	}
	return EffectInstance{}, false
}

func removeTopDebuff(t *Tile) (EffectInstance, bool) {
	return removeTopByPredicate(t, func(e EffectInstance) bool { return e.Kind == EffectDebuff })
}

func removeTopPositive(t *Tile) (EffectInstance, bool) {
	return removeTopByPredicate(t, func(e EffectInstance) bool { return e.Kind == EffectBuff })
}

func removeTopEffectByName(t *Tile, name string) (EffectInstance, bool) {
	return removeTopByPredicate(t, func(e EffectInstance) bool { return e.Name == name })
}

func clampHealth(t *Tile, hero HeroTemplate) {
	cap := capFor(t, hero)
	if t.CurrentHealth > cap {
		t.CurrentHealth = cap
	}
	if t.CurrentHealth < 0 {
		t.CurrentHealth = 0
	}
}

// checkExecuteEffects applies any held effect's flat execute_damage once the
// tile's health has dropped to or below its execute_at_or_below_health
// threshold.
func (rt *Runtime) checkExecuteEffects(ref TileRef) {
	t := rt.tile(ref)
	if t == nil || t.Empty() || t.Dead {
		return
	}
	for _, e := range t.Effects {
		if e.ExecuteAtOrBelowHealth <= 0 || t.CurrentHealth > e.ExecuteAtOrBelowHealth {
			continue
		}
		rt.emit(EventEffectPulse, EffectPulsePayload{Target: ref, EffectName: e.Name, Action: "damage", Amount: e.ExecuteDamage, Phase: "secondary"})
		rt.damageTile(ref, e.ExecuteDamage, ref)
	}
}

func clampEnergy(t *Tile) {
	if t.CurrentEnergy < 0 {
		t.CurrentEnergy = 0
	}
}
