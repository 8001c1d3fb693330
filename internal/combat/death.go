package combat

// processImmediateDeaths checks every candidate tile whose health just
// reached zero and resolves it through the survival-passive priority order
// (Undying Rage, then Regeloop, then Phoenix) before an actual death is
// applied. killer is nil when the death was not caused by an identifiable
// attacker (pulses, reap execution).
func (rt *Runtime) processImmediateDeaths(candidates []TileRef) {
	rt.processDeaths(candidates, nil)
}

func (rt *Runtime) processDeaths(candidates []TileRef, killer *TileRef) {
	for _, ref := range candidates {
		t := rt.tile(ref)
		if t == nil || t.Empty() || t.Dead || t.CurrentHealth > 0 {
			continue
		}
		hero, ok := rt.Catalog.Hero(t.HeroID)
		if !ok {
			rt.killTile(ref, hero, killer)
			continue
		}

		if hasPassive(hero, "Undying Rage") && !t.UndyingRageUsed {
			t.UndyingRageUsed = true
			t.CurrentHealth = 1
			continue
		}
		if hasPassive(hero, "Regeloop") && t.RegeloopUses < 3 {
			t.RegeloopUses++
			t.CurrentHealth = 4
			stripBuffsAndDebuffs(t)
			rt.RecomputeModifiers(ref)
			continue
		}
		if hero.Augments.Phoenix && !t.PhoenixUsed {
			t.PhoenixUsed = true
			t.CurrentHealth = phoenixRevivalHealth(hero.BaseHealth)
			continue
		}

		rt.killTile(ref, hero, killer)
	}
}

// phoenixRevivalHealth returns ceil(0.25 * baseHealth), floored at 1.
func phoenixRevivalHealth(baseHealth int) int {
	revived := (baseHealth + 3) / 4
	if revived < 1 {
		revived = 1
	}
	return revived
}

func hasPassive(hero HeroTemplate, name string) bool {
	for _, p := range hero.Passives {
		if p == name {
			return true
		}
	}
	return false
}

// tileHasPassive looks up ref's hero in the catalog and checks its passives.
func (rt *Runtime) tileHasPassive(ref TileRef, name string) bool {
	t := rt.tile(ref)
	if t == nil || t.Empty() {
		return false
	}
	hero, ok := rt.Catalog.Hero(t.HeroID)
	if !ok {
		return false
	}
	return hasPassive(hero, name)
}

func (rt *Runtime) killTile(ref TileRef, hero HeroTemplate, killer *TileRef) {
	t := rt.tile(ref)
	if t == nil {
		return
	}

	rt.emit(EventPreDeath, CastResult{Target: ref, Action: "death", Amount: 0})

	seen := map[string]bool{}
	for _, r := range rt.collectOnDeath(ref, seen) {
		rt.applyReaction(r, ref)
	}

	t.Dead = true
	t.Effects = nil
	t.QueuedCasts = nil
	t.CurrentEnergy = 0
	if !hero.LeavesCorpse {
		*t = Tile{Dead: true}
	}
	rt.emit(EventDeathApplied, CastResult{Target: ref, Action: "death", Amount: 0})

	if killer == nil || !rt.alive(*killer) {
		return
	}
	rt.runKillerPassives(*killer, ref)
}

// runKillerPassives applies Bounty, Predator's Pace, and any onKill effect
// handler the killer holds.
func (rt *Runtime) runKillerPassives(killer TileRef, victim TileRef) {
	kt := rt.tile(killer)
	if kt == nil {
		return
	}
	hero, ok := rt.Catalog.Hero(kt.HeroID)
	if !ok {
		return
	}

	const bountyHeal = 2
	if hasPassive(hero, "Bounty") {
		rt.emit(EventBountyActivated, BountyActivatedPayload{Killer: killer, Victim: victim, Heal: bountyHeal, AppliedEffect: "Strength"})
		rt.healTile(killer, bountyHeal)
		rt.ApplyEffects(killer, []string{"Strength"}, killer)
	}
	if hero.Augments.PredatorPace {
		kt.PredatorPacePending = true
	}

	for _, e := range kt.Effects {
		if e.OnKill == nil {
			continue
		}
		rt.applyReaction(reaction{effectName: e.Name, owner: killer, handler: *e.OnKill}, killer)
	}
}
