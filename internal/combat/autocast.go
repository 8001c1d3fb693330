package combat

// Auto-cast planner. Scans alive Main-board tiles, matches energy and
// remaining charges against the hero's row spell, and enqueues
// deterministic QueuedCast records; falls back to a basic attack when the
// row has no spell or no charges left.

const basicAttackSpellID = "basicAttack"

func (rt *Runtime) RunAutoCastPlanner(side Side) {
	b := rt.Boards[side]
	if b == nil {
		return
	}
	for idx := range b.Main {
		rt.planTile(side, idx)
	}
}

func (rt *Runtime) planTile(side Side, idx int) {
	ref := TileRef{Side: side, Zone: ZoneMain, Index: idx}
	t := rt.tile(ref)
	if t == nil || t.Empty() || t.Dead {
		return
	}
	hero, ok := rt.Catalog.Hero(t.HeroID)
	if !ok {
		return
	}

	slot := RowOf(side, idx)
	if t.CastsRemaining == nil {
		t.CastsRemaining = map[Slot]int{}
		for s, sp := range hero.Spells {
			t.CastsRemaining[s] = sp.Casts
		}
	}
	slotRemainingAtStart := t.CastsRemaining[slot]

	slotSpell, hasSpell := hero.Spells[slot]
	queuedAnySlotCast := false

	if hasSpell && t.CurrentEnergy > t.LastAutoCastEnergy {
		cursor := t.CurrentEnergy
		cost := slotSpell.Cost
		if cost <= 0 {
			cost = 1
		}
		for cursor >= cost && countQueuedForSlot(t, slot) < slotRemainingAtStart {
			if !mergeQueuedIfPresent(t, slotSpell.SpellID, slot, cursor) {
				t.QueuedCasts = append(t.QueuedCasts, QueuedCast{
					SpellID:      slotSpell.SpellID,
					Slot:         slot,
					QueuedEnergy: cursor,
					QueuedCost:   cost,
					QueuedID:     nextQueuedCastID(),
					EnqueueOrder: rt.nextEnqueueOrder(),
				})
			}
			cursor -= cost
			queuedAnySlotCast = true
		}
		t.LastAutoCastEnergy = t.CurrentEnergy

		if queuedAnySlotCast && cursor >= 1 {
			enqueueBasicAttack(rt, t, slot, cursor)
			return
		}
	}

	if slotRemainingAtStart == 0 || !hasSpell {
		if t.CurrentEnergy >= 1 {
			enqueueBasicAttack(rt, t, slot, t.CurrentEnergy)
		}
		return
	}

	if !queuedAnySlotCast && slotRemainingAtStart == 0 && t.CurrentEnergy >= 1 {
		enqueueBasicAttack(rt, t, slot, t.CurrentEnergy)
	}
}

func countQueuedForSlot(t *Tile, slot Slot) int {
	n := 0
	for _, qc := range t.QueuedCasts {
		if qc.Slot == slot && qc.SpellID != basicAttackSpellID {
			n++
		}
	}
	return n
}

// mergeQueuedIfPresent merges a newly auto-cast entry with an existing
// queued entry for the same slot/spell by bumping queued_energy to the
// max seen instead of enqueueing a duplicate.
func mergeQueuedIfPresent(t *Tile, spellID string, slot Slot, energy int) bool {
	for i := range t.QueuedCasts {
		qc := &t.QueuedCasts[i]
		if qc.SpellID == spellID && qc.Slot == slot {
			if energy > qc.QueuedEnergy {
				qc.QueuedEnergy = energy
			}
			return true
		}
	}
	return false
}

func enqueueBasicAttack(rt *Runtime, t *Tile, slot Slot, energy int) {
	if energy < 1 {
		return
	}
	key := func(spellID string, slot Slot, energy int) bool {
		for _, qc := range t.QueuedCasts {
			if qc.SpellID == spellID && qc.Slot == slot && qc.QueuedEnergy == energy {
				return true
			}
		}
		return false
	}
	if key(basicAttackSpellID, slot, energy) {
		return
	}
	t.QueuedCasts = append(t.QueuedCasts, QueuedCast{
		SpellID:      basicAttackSpellID,
		Slot:         slot,
		QueuedEnergy: energy,
		QueuedCost:   energy,
		QueuedID:     nextQueuedCastID(),
		EnqueueOrder: rt.nextEnqueueOrder(),
	})
}

func (rt *Runtime) nextEnqueueOrder() int {
	rt.enqueueCounter++
	return rt.enqueueCounter
}

// CollectPendingCasts gathers all queued casts from Main tiles of both
// sides (reserves are excluded —.
func (rt *Runtime) CollectPendingCasts() []pendingCast {
	var out []pendingCast
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		if b == nil {
			continue
		}
		for idx := range b.Main {
			t := &b.Main[idx]
			for _, qc := range t.QueuedCasts {
				out = append(out, pendingCast{
					Caster: TileRef{Side: side, Zone: ZoneMain, Index: idx},
					Cast:   qc,
				})
			}
		}
	}
	return out
}

type pendingCast struct {
	Caster TileRef
	Cast   QueuedCast
}
