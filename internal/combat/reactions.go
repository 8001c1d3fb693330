package combat

import "fmt"

// Reaction/trigger engine. Collects onDamaged/onTargeted/
// onCastApplyEffectToTargets/onDeath/onKill responses, deduplicates them by
// a stable key, and runs each exactly once per triggering event in
// enqueue order.

type reaction struct {
	key        string
	effectName string
	owner      TileRef
	handler    HandlerSpec
	value      int
}

func reactionKey(kind, effectName string, effectIndex int, attacker, owner TileRef, value int) string {
	return fmt.Sprintf("%s|%s|%d|%v|%v|%d", kind, effectName, effectIndex, attacker, owner, value)
}

// collectOnDamaged gathers onDamaged reactions for a tile that just took
// damage > 0 from a pulse or cast impact.
func (rt *Runtime) collectOnDamaged(target TileRef, seen map[string]bool) []reaction {
	t := rt.tile(target)
	if t == nil {
		return nil
	}
	var out []reaction
	for i, e := range t.Effects {
		if e.OnDamaged == nil {
			continue
		}
		k := reactionKey("onDamaged", e.Name, i, target, target, e.OnDamaged.Amount)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, reaction{key: k, effectName: e.Name, owner: target, handler: *e.OnDamaged})
	}
	return out
}

// collectOnTargeted gathers onTargeted reactions for a tile that was just
// named as a cast target (before damage is applied).
func (rt *Runtime) collectOnTargeted(target TileRef, attacker TileRef, seen map[string]bool) []reaction {
	t := rt.tile(target)
	if t == nil {
		return nil
	}
	var out []reaction
	for i, e := range t.Effects {
		if e.OnTargeted == nil {
			continue
		}
		k := reactionKey("onTargeted", e.Name, i, attacker, target, e.OnTargeted.Amount)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, reaction{key: k, effectName: e.Name, owner: target, handler: *e.OnTargeted})
	}
	return out
}

// collectOnCastApplyEffectToTargets gathers the caster's own active-buff
// reactions that apply when they successfully cast.
func (rt *Runtime) collectOnCastApplyEffectToTargets(caster TileRef, seen map[string]bool) []reaction {
	t := rt.tile(caster)
	if t == nil {
		return nil
	}
	var out []reaction
	for i, e := range t.Effects {
		if e.OnCastApplyEffectToTarget == nil {
			continue
		}
		k := reactionKey("onCast", e.Name, i, caster, caster, e.OnCastApplyEffectToTarget.Amount)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, reaction{key: k, effectName: e.Name, owner: caster, handler: *e.OnCastApplyEffectToTarget})
	}
	return out
}

// collectOnDeath gathers a dying tile's onDeath reactions.
func (rt *Runtime) collectOnDeath(victim TileRef, seen map[string]bool) []reaction {
	t := rt.tile(victim)
	if t == nil {
		return nil
	}
	var out []reaction
	for i, e := range t.Effects {
		if e.OnDeath == nil {
			continue
		}
		k := reactionKey("onDeath", e.Name, i, victim, victim, e.OnDeath.Amount)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, reaction{key: k, effectName: e.Name, owner: victim, handler: *e.OnDeath})
	}
	return out
}

// applyReaction executes one collected reaction, emitting EffectPreCast
// then EffectPulse before mutating.7 step 12i.
func (rt *Runtime) applyReaction(r reaction, attacker TileRef) {
	switch r.handler.Kind {
	case HandlerHealAlliesExceptSelf:
		for _, ally := range rt.aliveInZone(r.owner.Side, ZoneMain) {
			if ally == r.owner {
				continue
			}
			rt.emit(EventEffectPreCast, EffectPreCastPayload{Target: ally, EffectName: r.effectName, Amount: r.handler.Amount})
			rt.emit(EventEffectPulse, EffectPulsePayload{Target: ally, EffectName: r.effectName, Action: "heal", Amount: r.handler.Amount, Phase: "secondary"})
			rt.healTile(ally, r.handler.Amount)
		}
	case HandlerDamage:
		rt.emit(EventEffectPreCast, EffectPreCastPayload{Target: attacker, EffectName: r.effectName, Amount: r.handler.Amount})
		rt.emit(EventEffectPulse, EffectPulsePayload{Target: attacker, EffectName: r.effectName, Action: "damage", Amount: r.handler.Amount, Phase: "secondary"})
		rt.damageTile(attacker, r.handler.Amount, r.owner)
	case HandlerApplyEffectToAttacker:
		rt.ApplyEffects(attacker, []string{r.handler.EffectName}, r.owner)
	case HandlerDamageEnemiesSpeedAtMost:
		enemy := rt.opposingSide(r.owner.Side)
		for _, ref := range rt.aliveInZone(enemy, ZoneMain) {
			if rt.tile(ref).CurrentSpeed > r.handler.SpeedAtMost {
				continue
			}
			rt.emit(EventEffectPulse, EffectPulsePayload{Target: ref, EffectName: r.effectName, Action: "damage", Amount: r.handler.Amount, Phase: "secondary"})
			rt.damageTile(ref, r.handler.Amount, r.owner)
		}
	}
}
