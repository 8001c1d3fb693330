package combat

// runCastResolutionLoop is phase 12: repeatedly pops the next cast to
// resolve via the cast orderer, resolves it end to end, and continues
// until no queued casts remain or the round has produced a winner.
func (rt *Runtime) runCastResolutionLoop(pending []pendingCast) {
	for len(pending) > 0 {
		var chosen pendingCast
		chosen, pending = rt.OrderCasts(pending, rt.spellTier)
		rt.resolveOneCast(chosen)
		rt.evaluateWinner()
		if rt.winner != nil {
			rt.gameEnded = true
			return
		}
	}
}

func basicAttackSpell(energy int) SpellDef {
	return SpellDef{
		ID:           basicAttackSpellID,
		Name:         "Basic Attack",
		CastPriority: 0,
		Formula:      Formula{Type: FormulaAttackPower, Value: energy},
		Targets:      []TargetSpec{{Type: TargetProjectile, Side: TargetEnemy}},
	}
}

// spellTargetsColumn reports whether any of a spell's target descriptors is
// a column descriptor, the shape Focused Column's discount applies to.
func spellTargetsColumn(spell SpellDef) bool {
	for _, ts := range spell.Targets {
		if ts.Type == TargetColumn {
			return true
		}
	}
	return false
}

func (rt *Runtime) resolveOneCast(pc pendingCast) {
	caster := pc.Caster
	t := rt.tile(caster)
	if t == nil || t.Empty() || t.Dead {
		return
	}

	spellID := pc.Cast.SpellID
	slot := pc.Cast.Slot

	rt.emit(EventPreCast, PreCastPayload{Caster: caster, SpellID: spellID})

	var spell SpellDef
	if spellID == basicAttackSpellID {
		spell = basicAttackSpell(pc.Cast.QueuedEnergy)
	} else {
		sp, ok := rt.Catalog.Spell(spellID)
		if !ok {
			rt.log("missing catalog entry for spell " + spellID)
			return
		}
		spell = sp
	}

	cost := pc.Cast.QueuedCost
	if spellID != basicAttackSpellID {
		hero, _ := rt.Catalog.Hero(t.HeroID)
		if hero.Augments.FocusedColumn && spellTargetsColumn(spell) {
			cost--
			if cost < 1 {
				cost = 1
			}
		}
	}

	t.CurrentEnergy -= cost
	clampEnergy(t)
	if spellID != basicAttackSpellID && t.CastsRemaining != nil && t.CastsRemaining[slot] > 0 {
		t.CastsRemaining[slot]--
	}

	rt.emit(EventCast, CastPayload{Caster: caster, SpellID: spellID, AnimationMS: spell.AnimationMS, SecondaryAnimationMS: spell.SecondaryAnimationMS})

	rt.resolveSpellPayload(caster, spell, 0, "")

	if rt.alive(caster) {
		hero, _ := rt.Catalog.Hero(t.HeroID)
		if hero.Augments.SpellEcho {
			rt.resolveSpellPayload(caster, spell, 0, "")
		} else if hero.Augments.DoubleStrikeChance > 0 && rt.RNG.Float64() < hero.Augments.DoubleStrikeChance {
			rt.resolveSpellPayload(caster, spell, 0, "")
		}
	}
}

// resolveSpellPayload builds a spell's runtime payload (handling the
// coneOfCold and copyCat special cases) and applies it: reactions,
// damage/heal/effects per target, post-hooks, the cast-applied event, and
// any resulting deaths.
func (rt *Runtime) resolveSpellPayload(caster TileRef, spell SpellDef, bonusDamage int, copiedSpellID string) {
	var payload RuntimePayload
	switch spell.ID {
	case "coneOfCold":
		payload = rt.buildConeOfCold(spell, caster, bonusDamage)
	case "copyCat":
		p, copied, ok := rt.buildCopyCat(caster, bonusDamage)
		if !ok {
			return
		}
		payload, copiedSpellID = p, copied
	default:
		payload = rt.buildPayload(spell, caster, bonusDamage)
	}
	rt.applyPayload(caster, spell, payload, copiedSpellID)
}

func (rt *Runtime) applyPayload(caster TileRef, spell SpellDef, payload RuntimePayload, copiedSpellID string) {
	casterTile := rt.tile(caster)
	if casterTile == nil || casterTile.Empty() {
		return
	}
	hero, _ := rt.Catalog.Hero(casterTile.HeroID)

	payload.Targets = rt.applyDefendInterception(payload.Targets)

	if !payload.Post.BypassTriggers {
		seenTargeted := map[string]bool{}
		for _, tp := range payload.Targets {
			for _, r := range rt.collectOnTargeted(tp.Target, caster, seenTargeted) {
				rt.applyReaction(r, caster)
			}
		}
	}

	var results []CastResult
	var damaged []TileRef

	for _, tp := range payload.Targets {
		target := tp.Target
		if !rt.alive(target) {
			continue
		}

		switch payload.Action {
		case "damage":
			amount := rt.computeDamage(caster, target, payload.BaseValue, hero, spell.ID)
			rt.emit(EventEffectPulse, EffectPulsePayload{Target: target, EffectName: spell.Name, Action: "damage", Amount: amount, Phase: "primary"})
			rt.damageTile(target, amount, caster)
			rt.checkExecuteEffects(target)
			results = append(results, CastResult{Target: target, Action: "damage", Amount: amount})
			if hero.Augments.Vampiric && amount > 0 {
				rt.healTile(caster, amount)
			}
			seenDamaged := map[string]bool{}
			for _, r := range rt.collectOnDamaged(target, seenDamaged) {
				rt.applyReaction(r, caster)
			}
			damaged = append(damaged, target)
		case "heal":
			rt.emit(EventEffectPulse, EffectPulsePayload{Target: target, EffectName: spell.Name, Action: "heal", Amount: payload.BaseValue, Phase: "primary"})
			rt.healTile(target, payload.BaseValue)
			results = append(results, CastResult{Target: target, Action: "heal", Amount: payload.BaseValue})
		default:
			results = append(results, CastResult{Target: target, Action: "effect", Amount: 0})
		}

		if len(payload.Effects) > 0 {
			rt.ApplyEffects(target, payload.Effects, caster)
			if !payload.Post.BypassTriggers {
				seenCast := map[string]bool{}
				for _, r := range rt.collectOnCastApplyEffectToTargets(caster, seenCast) {
					rt.applyReaction(r, caster)
				}
			}
		}
	}

	rt.applyPostHooks(caster, payload, results)

	rt.emit(EventCastApplied, CastPayload{
		Caster:        caster,
		SpellID:       spell.ID,
		Results:       results,
		RollInfo:      payload.RollInfo,
		CopiedSpellID: copiedSpellID,
	})

	rt.processDeaths(damaged, &caster)

	if casterTile.HeroID != "" {
		rt.LastCastActionBySide[caster.Side] = &CastAction{
			Side: caster.Side, CasterZone: caster.Zone, CasterIndex: caster.Index, SpellID: spell.ID,
		}
	}
}

// hasDefend reports whether ref currently carries a Defend-marked effect.
func (rt *Runtime) hasDefend(ref TileRef) bool {
	t := rt.tile(ref)
	if t == nil || t.Empty() {
		return false
	}
	for _, e := range t.Effects {
		if e.BlocksProjectileAndColumn {
			return true
		}
	}
	return false
}

// applyDefendInterception drops payload targets a Defend effect blocks.
// Projectile casts are nullified entirely if the sole target is defending.
// Projectile+1 casts are nullified entirely if the primary is defending;
// otherwise a defending secondary is dropped on its own. Column casts drop
// the defending tile and everything behind it in that column
// (front->middle->back order).
func (rt *Runtime) applyDefendInterception(targets []TargetedPayload) []TargetedPayload {
	if len(targets) == 0 {
		return targets
	}

	groups := map[int][]TargetedPayload{}
	var order []int
	for _, tp := range targets {
		if _, ok := groups[tp.DescriptorIndex]; !ok {
			order = append(order, tp.DescriptorIndex)
		}
		groups[tp.DescriptorIndex] = append(groups[tp.DescriptorIndex], tp)
	}

	var out []TargetedPayload
	for _, di := range order {
		group := groups[di]
		if len(group) == 0 {
			continue
		}
		switch group[0].DescriptorType {
		case TargetProjectile:
			if rt.hasDefend(group[0].Target) {
				continue
			}
			out = append(out, group...)
		case TargetProjectilePlus1:
			if rt.hasDefend(group[0].Target) {
				continue
			}
			out = append(out, group[0])
			for _, tp := range group[1:] {
				if !rt.hasDefend(tp.Target) {
					out = append(out, tp)
				}
			}
		case TargetColumn:
			for _, tp := range group {
				if rt.hasDefend(tp.Target) {
					break
				}
				out = append(out, tp)
			}
		default:
			out = append(out, group...)
		}
	}
	return out
}

// computeDamage runs the augment stacking pipeline, then armor, void-shield
// and Soul-Link redirect, in that order.
func (rt *Runtime) computeDamage(caster, target TileRef, base int, hero HeroTemplate, spellID string) int {
	casterTile := rt.tile(caster)
	targetTile := rt.tile(target)
	targetHero, _ := rt.Catalog.Hero(targetTile.HeroID)
	isBasicAttack := spellID == basicAttackSpellID

	amount := base

	if hero.Augments.FirstStrike && !casterTile.FirstStrikeUsed {
		amount += amount / 2
		casterTile.FirstStrikeUsed = true
	}
	if hero.Augments.WarmUp && !casterTile.WarmUpUsed {
		amount /= 2
		casterTile.WarmUpUsed = true
	}
	if hero.Augments.Momentum {
		casterTile.MomentumGains++
		amount += casterTile.MomentumGains
	}
	if hero.Augments.ArcaneExchange && casterTile.ArcaneExchangeCharged {
		amount += amount / 2
		casterTile.ArcaneExchangeCharged = false
		casterTile.ArcaneExchangePending = true
	}
	if hero.Augments.KeenStrike && isBasicAttack && rt.RNG.Float64() < 0.2 {
		amount += amount / 2
	}
	if hero.Augments.EarlySpark && rt.RoundNumber == 1 {
		amount++
	}
	if hero.Augments.LastStand && casterTile.CurrentHealth*4 <= hero.BaseHealth {
		amount += 3
	}
	if hero.Augments.Executioner && !isBasicAttack && targetTile.CurrentHealth*2 <= targetHero.BaseHealth {
		amount += amount / 2
	}

	amount = applyArmor(amount, targetTile.CurrentArmor)
	amount = applyVoidShield(amount, targetHero)
	amount = clampNonNegative(amount)
	amount = rt.applySoulLinkRedirect(amount, target, caster)
	return clampNonNegative(amount)
}

// applySoulLinkRedirect sends half of the incoming damage to the ally that
// applied target's Soul-Link effect, returning the remainder that lands on
// target itself.
func (rt *Runtime) applySoulLinkRedirect(amount int, target, caster TileRef) int {
	if amount <= 0 {
		return amount
	}
	t := rt.tile(target)
	if t == nil || t.Empty() {
		return amount
	}
	for _, e := range t.Effects {
		if e.Name != "Soul-Link" {
			continue
		}
		ally := TileRef{Side: e.AppliedBySide, Zone: e.AppliedByZone, Index: e.AppliedByIndex}
		if ally == target || !rt.alive(ally) {
			continue
		}
		redirected := amount / 2
		if redirected <= 0 {
			continue
		}
		rt.emit(EventEffectPulse, EffectPulsePayload{Target: ally, EffectName: e.Name, Action: "damage", Amount: redirected, Phase: "secondary"})
		rt.damageTile(ally, redirected, caster)
		return amount - redirected
	}
	return amount
}
