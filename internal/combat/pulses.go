package combat

// runStartOfRoundPulses is phase 4: every alive Main-board tile applies its
// effects' per-round PulseSpec, in board order. Derived pulses read the
// pulsing tile's own current_armor or the round number.
func (rt *Runtime) runStartOfRoundPulses() {
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		if b == nil {
			continue
		}
		for i := range b.Main {
			t := &b.Main[i]
			if t.Empty() || t.Dead {
				continue
			}
			ref := TileRef{Side: side, Zone: ZoneMain, Index: i}
			for _, e := range t.Effects {
				if e.Pulse == nil {
					continue
				}
				rt.applyPulse(ref, e)
			}
		}
	}
	rt.emit(EventPulsesApplied, struct{}{})
}

func (rt *Runtime) applyPulse(ref TileRef, e EffectInstance) {
	t := rt.tile(ref)
	if t == nil {
		return
	}
	value := e.Pulse.Value
	switch e.Pulse.DerivedFrom {
	case DerivedFromArmor:
		value = t.CurrentArmor
	case DerivedFromRoundNumber:
		value = rt.RoundNumber
	}

	action := "damage"
	if e.Pulse.Type == PulseHeal {
		action = "heal"
	}
	rt.emit(EventEffectPreCast, EffectPreCastPayload{Target: ref, EffectName: e.Name, Amount: value})
	rt.emit(EventEffectPulse, EffectPulsePayload{Target: ref, EffectName: e.Name, Action: action, Amount: value, Phase: "primary"})

	if e.Pulse.Type == PulseDamage {
		before := t.CurrentHealth
		rt.damageTile(ref, value, ref)
		actual := before - rt.tile(ref).CurrentHealth

		if e.HealApplierOnPulse {
			applier := TileRef{Side: e.AppliedBySide, Zone: e.AppliedByZone, Index: e.AppliedByIndex}
			if rt.alive(applier) {
				rt.healTile(applier, value)
			}
		}
		if e.SpreadToAdjacentOnPulse {
			for _, adj := range rt.adjacent(ref) {
				rt.emit(EventEffectPulse, EffectPulsePayload{Target: adj, EffectName: e.Name, Action: "damage", Amount: value, Phase: "secondary"})
				rt.damageTile(adj, value, ref)
			}
		}
		if actual > 0 {
			applier := TileRef{Side: e.AppliedBySide, Zone: e.AppliedByZone, Index: e.AppliedByIndex}
			seenDamaged := map[string]bool{}
			for _, r := range rt.collectOnDamaged(ref, seenDamaged) {
				rt.applyReaction(r, applier)
			}
			if rt.alive(ref) && rt.tileHasPassive(ref, "Frenzy") {
				rt.emit(EventEnergyIncrement, EnergyIncrementPayload{Target: ref, Amount: 1, EffectName: "Frenzy"})
				rt.grantEnergy(ref, 1)
			}
		}
		rt.checkExecuteEffects(ref)
		rt.processImmediateDeaths([]TileRef{ref})
	} else {
		rt.healTile(ref, value)
	}
}

// runOnRoundStartEffects is phase 5: effects carrying an onRoundStart
// TriggerSpec fire their attached spell with the holder as caster
//.
func (rt *Runtime) runOnRoundStartEffects() {
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		if b == nil {
			continue
		}
		for i := range b.Main {
			t := &b.Main[i]
			if t.Empty() || t.Dead {
				continue
			}
			ref := TileRef{Side: side, Zone: ZoneMain, Index: i}
			for _, e := range t.Effects {
				if e.Trigger == nil || e.Trigger.Kind != "onRoundStart" || e.Trigger.SpellSpec == nil {
					continue
				}
				rt.emit(EventOnRoundStartTriggered, OnRoundStartTriggeredPayload{EffectName: e.Name, Source: ref})
				rt.resolveSpellPayload(ref, *e.Trigger.SpellSpec, 0, "")
			}
		}
	}
}
