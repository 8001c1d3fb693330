package combat

import "sort"

// Cast orderer. Groups queued casts by cast_priority tier (higher
// first), then queued_energy (higher first), then a fixed per-side book
// order, then enqueue order, then a rotating priority_player token for
// cross-side ties.

var bookOrderP1 = []int{2, 5, 8, 1, 4, 7, 0, 3, 6}
var bookOrderP2 = []int{6, 3, 0, 7, 4, 1, 8, 5, 2}

func bookIndex(side Side, index int) int {
	order := bookOrderP1
	if side != SideP1 {
		order = bookOrderP2
	}
	for pos, idx := range order {
		if idx == index {
			return pos
		}
	}
	return len(order)
}

// OrderCasts sorts pending casts per the tier/energy/book/enqueue rule and
// resolves the final cross-side tie using and advancing priority_player.
// It returns the first cast to resolve together with the remaining pending
// casts, from which that cast has already been removed.
func (rt *Runtime) OrderCasts(pending []pendingCast, spellTier func(spellID string) int) (pendingCast, []pendingCast) {
	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		ta, tb := spellTier(a.Cast.SpellID), spellTier(b.Cast.SpellID)
		if ta != tb {
			return ta > tb
		}
		if a.Cast.QueuedEnergy != b.Cast.QueuedEnergy {
			return a.Cast.QueuedEnergy > b.Cast.QueuedEnergy
		}
		if a.Caster.Side == b.Caster.Side {
			ba, bb := bookIndex(a.Caster.Side, a.Caster.Index), bookIndex(b.Caster.Side, b.Caster.Index)
			if ba != bb {
				return ba < bb
			}
			return a.Cast.EnqueueOrder < b.Cast.EnqueueOrder
		}
		return false // cross-side tie resolved below via priority_player
	})

	if len(pending) == 0 {
		return pendingCast{}, pending
	}

	// Find the tier/energy bucket of the top-sorted entry, then break any
	// remaining cross-side tie at its front using priority_player.
	top := pending[0]
	tierTop, energyTop := spellTier(top.Cast.SpellID), top.Cast.QueuedEnergy
	bucketEnd := 1
	for bucketEnd < len(pending) {
		c := pending[bucketEnd]
		if spellTier(c.Cast.SpellID) != tierTop || c.Cast.QueuedEnergy != energyTop {
			break
		}
		bucketEnd++
	}

	chosenIdx := 0
	for i := 0; i < bucketEnd; i++ {
		if pending[i].Caster.Side == rt.PriorityPlayer {
			chosenIdx = i
			break
		}
	}
	chosen := pending[chosenIdx]
	rt.PriorityPlayer = chosen.Caster.Side

	out := append([]pendingCast(nil), pending[:chosenIdx]...)
	out = append(out, pending[chosenIdx+1:]...)
	return chosen, out
}

func (rt *Runtime) spellTier(spellID string) int {
	if spellID == basicAttackSpellID {
		return 0
	}
	if spell, ok := rt.Catalog.Spell(spellID); ok {
		return spell.CastPriority
	}
	return 0
}
