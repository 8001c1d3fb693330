package combat

// applyPostHooks runs a resolved cast's optional PostHooks table against
// the caster and the results a payload produced. Each hook reads
// results/caster state as of the moment damage/heal already landed; hooks
// compose independently unless noted otherwise.
func (rt *Runtime) applyPostHooks(caster TileRef, payload RuntimePayload, results []CastResult) {
	post := payload.Post
	casterTile := rt.tile(caster)
	if casterTile == nil {
		return
	}

	if post.ApplyEffectToSelf != nil {
		rt.ApplyEffects(caster, post.ApplyEffectToSelf.Effects, caster)
	}

	totalDamage := 0
	for _, r := range results {
		if r.Action == "damage" {
			totalDamage += r.Amount
		}
	}

	anyRemoved := false
	for _, tp := range payload.Targets {
		target := tp.Target
		t := rt.tile(target)
		if t == nil || t.Empty() {
			continue
		}
		if post.OnlyApplyToWithEffect != "" && !tileHasEffectNamed(t, post.OnlyApplyToWithEffect) {
			continue
		}
		if post.OnlyApplyIfHasDebuff && !tileHasDebuff(t) {
			continue
		}

		if post.RemoveDebuffs {
			if removeDebuffs(t) {
				anyRemoved = true
			}
			rt.RecomputeModifiers(target)
		}
		if post.RemoveTopDebuff != nil {
			if removed, ok := removeTopDebuff(t); ok {
				anyRemoved = true
				if post.RemoveTopDebuff.HealIfRemoved > 0 {
					rt.healTile(target, post.RemoveTopDebuff.HealIfRemoved)
				}
				if post.RemoveTopDebuff.DamageApplier > 0 {
					rt.damageTile(caster, post.RemoveTopDebuff.DamageApplier, target)
				}
				if post.RemoveTopDebuff.ApplyEffectIfRemoved != "" {
					rt.ApplyEffects(target, []string{post.RemoveTopDebuff.ApplyEffectIfRemoved}, caster)
				}
				_ = removed
				rt.RecomputeModifiers(target)
			}
		}
		if post.RemoveTopPositive {
			if _, ok := removeTopPositive(t); ok {
				anyRemoved = true
				rt.RecomputeModifiers(target)
			}
		}
		if post.RemoveTopEffectByName != nil {
			if removed, ok := removeTopEffectByName(t, post.RemoveTopEffectByName.Name); ok {
				_ = removed
				anyRemoved = true
				if post.RemoveTopEffectByName.DamageOnRemove > 0 {
					rt.damageTile(target, post.RemoveTopEffectByName.DamageOnRemove, caster)
				}
				if post.RemoveTopEffectByName.HealCasterOnRemove > 0 {
					rt.healTile(caster, post.RemoveTopEffectByName.HealCasterOnRemove)
				}
				rt.RecomputeModifiers(target)
			}
		}
		for _, chance := range post.ApplyEffectWithChance {
			if rt.RNG.Float64() < chance.Chance {
				rt.ApplyEffects(target, []string{chance.Effect}, caster)
			}
		}
		if post.ApplyEffectIfArmorAtLeast != nil && t.CurrentArmor >= post.ApplyEffectIfArmorAtLeast.MinArmor {
			rt.ApplyEffects(target, post.ApplyEffectIfArmorAtLeast.Effects, caster)
		}
		if post.DeltaEnergy != nil {
			rt.applyDeltaEnergy(*post.DeltaEnergy, caster, target)
		}
		if post.ReduceRowCastsBy > 0 {
			rt.adjustRowCasts(target, -post.ReduceRowCastsBy)
		}
		if post.IncreaseRowCastsBy > 0 {
			rt.adjustRowCasts(target, post.IncreaseRowCastsBy)
		}
		if post.MoveRowBack {
			rt.moveRowBack(target)
		}
		if post.MoveToFrontmostAvail {
			rt.moveToFrontmostAvailable(target)
		}
		if post.MoveAllBack {
			rt.moveAllBack(target.Side)
		}
		if post.SwapWithReserve != nil {
			rt.swapWithReserve(target, post.SwapWithReserve.GainEnergy)
		}
		if post.RemoveCorpse && t.Dead {
			anyRemoved = true
			if post.RemoveCorpseHealCaster != nil {
				rt.healTile(caster, *post.RemoveCorpseHealCaster)
			}
			*t = Tile{}
		}
		if post.Revive != nil && t.Dead {
			rt.revive(target, *post.Revive)
		}
		if post.RaiseDeadToHeroID != "" && t.Dead {
			rt.raiseDeadTo(target, post.RaiseDeadToHeroID)
		}
		if post.RetaliateIfSpeedAbove != nil && t.CurrentSpeed > post.RetaliateIfSpeedAbove.SpeedAbove {
			rt.damageTile(caster, post.RetaliateIfSpeedAbove.Amount, target)
		}
		if post.ConditionalSecondaryOnWouldKill != nil && t.CurrentHealth <= 0 {
			rt.resolveSpellPayload(caster, *post.ConditionalSecondaryOnWouldKill, 0, "")
		}
	}

	if post.HealIfRemoved != nil && anyRemoved && len(results) > 0 {
		rt.healTile(results[0].Target, *post.HealIfRemoved)
	}
	if post.HealCasterIfRemoved != nil && anyRemoved {
		rt.healTile(caster, *post.HealCasterIfRemoved)
	}
	if post.HealCasterEqualToDamage && totalDamage > 0 {
		rt.healTile(caster, totalDamage)
	}
	if post.HealCasterAmount > 0 {
		rt.healTile(caster, post.HealCasterAmount)
	}
	if post.DamageCaster != nil {
		amount := post.DamageCaster.Amount
		if post.DamageCaster.AsAttackPower {
			amount += casterTile.CurrentSpellPower
			amount = applyArmor(amount, casterTile.CurrentArmor)
			amount = clampNonNegative(amount)
		}
		rt.damageTile(caster, amount, caster)
	}
}

func tileHasEffectNamed(t *Tile, name string) bool {
	for _, e := range t.Effects {
		if e.Name == name {
			return true
		}
	}
	return false
}

func tileHasDebuff(t *Tile) bool {
	for _, e := range t.Effects {
		if e.Kind == EffectDebuff {
			return true
		}
	}
	return false
}

func (rt *Runtime) applyDeltaEnergy(hook DeltaEnergyHook, caster, target TileRef) {
	ref := target
	if hook.Target == DeltaEnergyTargetCaster {
		ref = caster
	}
	t := rt.tile(ref)
	if t == nil || t.Empty() {
		return
	}
	if hook.Amount >= 0 {
		rt.grantEnergy(ref, hook.Amount)
		return
	}
	t.CurrentEnergy += hook.Amount
	clampEnergy(t)
}

func (rt *Runtime) adjustRowCasts(ref TileRef, delta int) {
	t := rt.tile(ref)
	if t == nil || t.Empty() || t.CastsRemaining == nil {
		return
	}
	slot := RowOf(ref.Side, ref.Index)
	before := t.CastsRemaining[slot]
	after := clampNonNegative(before + delta)
	t.CastsRemaining[slot] = after
	if delta < 0 {
		rt.emit(EventReduceRowCasts, RowCastsPayload{Board: ref.Side, Index: ref.Index, Slot: slot, Before: before, After: after})
	} else {
		rt.emit(EventIncreaseRowCasts, RowCastsPayload{Board: ref.Side, Index: ref.Index, Slot: slot, Before: before, After: after})
	}
}

// moveRowBack shifts a tile one row toward the back (front->middle->back),
// swapping with whatever occupies the destination slot in the same column.
func (rt *Runtime) moveRowBack(ref TileRef) {
	if ref.Zone != ZoneMain {
		return
	}
	from := RowOf(ref.Side, ref.Index)
	col := ColumnOf(ref.Side, ref.Index)
	indices := ColumnIndices(ref.Side, col)
	var to Slot
	var destIdx int
	switch from {
	case SlotFront:
		to, destIdx = SlotMiddle, indices[1]
	case SlotMiddle:
		to, destIdx = SlotBack, indices[2]
	default:
		return
	}
	rt.swapMainTiles(ref.Side, ref.Index, destIdx)
	rt.emit(EventMoveRowBack, MovePayload{Target: ref, From: from, To: to})
}

func (rt *Runtime) moveToFrontmostAvailable(ref TileRef) {
	if ref.Zone != ZoneMain {
		return
	}
	col := ColumnOf(ref.Side, ref.Index)
	indices := ColumnIndices(ref.Side, col)
	from := RowOf(ref.Side, ref.Index)
	for _, idx := range indices {
		if idx == ref.Index {
			return
		}
		dest := rt.tile(TileRef{Side: ref.Side, Zone: ZoneMain, Index: idx})
		if dest.Empty() {
			rt.swapMainTiles(ref.Side, ref.Index, idx)
			rt.emit(EventMoveToFrontmostAvailable, MovePayload{Target: ref, From: from, To: RowOf(ref.Side, idx)})
			return
		}
	}
}

func (rt *Runtime) moveAllBack(side Side) {
	b := rt.Boards[side]
	if b == nil {
		return
	}
	for col := 0; col < 3; col++ {
		indices := ColumnIndices(side, col)
		front, middle, back := indices[0], indices[1], indices[2]
		if !b.Main[front].Empty() {
			rt.swapMainTiles(side, front, back)
		}
		if !b.Main[middle].Empty() {
			rt.swapMainTiles(side, middle, back)
		}
	}
	rt.emit(EventMoveAllBack, MovePayload{Target: TileRef{Side: side}, From: SlotFront, To: SlotBack})
}

func (rt *Runtime) swapMainTiles(side Side, a, b int) {
	board := rt.Boards[side]
	if board == nil {
		return
	}
	board.Main[a], board.Main[b] = board.Main[b], board.Main[a]
}

func (rt *Runtime) swapWithReserve(ref TileRef, gainEnergy int) {
	board := rt.Boards[ref.Side]
	if board == nil || ref.Zone != ZoneMain || len(board.Reserve) == 0 {
		return
	}
	reserveIdx := -1
	for i := range board.Reserve {
		if !board.Reserve[i].Empty() {
			reserveIdx = i
			break
		}
	}
	if reserveIdx == -1 {
		return
	}
	board.Main[ref.Index], board.Reserve[reserveIdx] = board.Reserve[reserveIdx], board.Main[ref.Index]
	if gainEnergy > 0 {
		rt.grantEnergy(ref, gainEnergy)
	}
	rt.RecomputeModifiers(ref)
	rt.RecomputeModifiers(TileRef{Side: ref.Side, Zone: ZoneReserve, Index: reserveIdx})
	rt.emit(EventSwapWithReserve, SwapWithReservePayload{
		MainTile:    ref,
		ReserveTile: TileRef{Side: ref.Side, Zone: ZoneReserve, Index: reserveIdx},
	})
}

func (rt *Runtime) revive(ref TileRef, hook ReviveHook) {
	t := rt.tile(ref)
	if t == nil || !t.Dead {
		return
	}
	hero, _ := rt.Catalog.Hero(t.HeroID)
	t.Dead = false
	heal := hook.Heal
	if !hook.IgnoreSpellPower {
		heal += t.CurrentSpellPower
	}
	t.CurrentHealth = clampNonNegative(heal)
	clampHealth(t, hero)
}

func (rt *Runtime) raiseDeadTo(ref TileRef, heroID string) {
	hero, ok := rt.Catalog.Hero(heroID)
	if !ok {
		rt.log("missing catalog entry for hero " + heroID)
		return
	}
	*rt.tile(ref) = Tile{
		HeroID:            heroID,
		CurrentHealth:     hero.BaseHealth,
		BaseHealthSnapshot: hero.BaseHealth,
		CurrentArmor:      hero.BaseArmor,
		CurrentSpeed:      hero.BaseSpeed,
		CurrentSpellPower: hero.BaseSpellPower,
		CastsRemaining:    map[Slot]int{},
		Initialized:       true,
	}
	for slot, sp := range hero.Spells {
		rt.tile(ref).CastsRemaining[slot] = sp.Casts
	}
	rt.RecomputeModifiers(ref)
}
