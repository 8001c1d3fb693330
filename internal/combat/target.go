package combat

import "sort"

// Targeting resolver. Resolves an abstract TargetSpec into concrete
// tile references given a caster and the current boards. Tie-breaks for
// max/min queries always favor the lowest tile index.

func (rt *Runtime) resolveTargets(spec TargetSpec, caster TileRef) []TileRef {
	targetSide := caster.Side
	if spec.Side == TargetAlly {
		// stays caster.Side
	} else {
		targetSide = rt.opposingSide(caster.Side)
	}

	switch spec.Type {
	case TargetSelf:
		return []TileRef{caster}

	case TargetProjectile:
		if t, ok := rt.projectilePrimary(caster, targetSide); ok {
			return []TileRef{t}
		}
		return nil

	case TargetProjectilePlus1:
		primary, ok := rt.projectilePrimary(caster, targetSide)
		if !ok {
			return nil
		}
		out := []TileRef{primary}
		if secondary, ok := rt.projectileSecondary(primary, targetSide); ok {
			out = append(out, secondary)
		}
		return out

	case TargetColumn:
		col := ColumnOf(caster.Side, caster.Index)
		return rt.aliveInColumn(targetSide, col)

	case TargetFrontmostRowWithHero:
		for _, slot := range []Slot{SlotFront, SlotMiddle, SlotBack} {
			tiles := rt.aliveInRow(targetSide, slot)
			if len(tiles) > 0 {
				return tiles
			}
		}
		return nil

	case TargetFrontTwoRows:
		out := rt.aliveInRow(targetSide, SlotFront)
		out = append(out, rt.aliveInRow(targetSide, SlotMiddle)...)
		return out

	case TargetBackRow:
		return rt.aliveInRow(targetSide, SlotBack)

	case TargetRowContainingHighestArmor, TargetRowContainingLowestArmor:
		slot, ok := rt.rowWithExtremeArmor(targetSide, spec.Type == TargetRowContainingHighestArmor)
		if !ok {
			return nil
		}
		return rt.aliveInRow(targetSide, slot)

	case TargetRowWithHighestSumArmor:
		slot, ok := rt.rowWithHighestSumArmor(targetSide)
		if !ok {
			return nil
		}
		return rt.aliveInRow(targetSide, slot)

	case TargetHighestHealth, TargetLowestHealth:
		ref, ok := rt.extremeHealth(targetSide, spec.Type == TargetHighestHealth)
		if !ok {
			return nil
		}
		return []TileRef{ref}

	case TargetAdjacent:
		return rt.adjacent(caster)

	case TargetAll:
		out := rt.aliveInZone(targetSide, ZoneMain)
		out = append(out, rt.aliveInZone(targetSide, ZoneReserve)...)
		return out

	case TargetBoard:
		return rt.aliveInZone(targetSide, ZoneMain)

	default:
		return nil
	}
}

func (rt *Runtime) projectilePrimary(caster TileRef, targetSide Side) (TileRef, bool) {
	col := ColumnOf(caster.Side, caster.Index)
	indices := ColumnIndices(targetSide, col) // front, middle, back
	for _, idx := range indices {
		ref := TileRef{Side: targetSide, Zone: ZoneMain, Index: idx}
		if rt.alive(ref) {
			return ref, true
		}
	}
	return TileRef{}, false
}

func (rt *Runtime) projectileSecondary(primary TileRef, targetSide Side) (TileRef, bool) {
	col := ColumnOf(targetSide, primary.Index)
	indices := ColumnIndices(targetSide, col)
	passedPrimary := false
	for _, idx := range indices {
		if idx == primary.Index {
			passedPrimary = true
			continue
		}
		if !passedPrimary {
			continue
		}
		ref := TileRef{Side: targetSide, Zone: ZoneMain, Index: idx}
		if rt.alive(ref) {
			return ref, true
		}
	}
	return TileRef{}, false
}

func (rt *Runtime) aliveInColumn(side Side, column int) []TileRef {
	var out []TileRef
	for _, idx := range ColumnIndices(side, column) {
		ref := TileRef{Side: side, Zone: ZoneMain, Index: idx}
		if rt.alive(ref) {
			out = append(out, ref)
		}
	}
	return out
}

func (rt *Runtime) aliveInRow(side Side, slot Slot) []TileRef {
	var out []TileRef
	for idx := 0; idx < 9; idx++ {
		if RowOf(side, idx) != slot {
			continue
		}
		ref := TileRef{Side: side, Zone: ZoneMain, Index: idx}
		if rt.alive(ref) {
			out = append(out, ref)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (rt *Runtime) aliveInZone(side Side, zone Zone) []TileRef {
	b := rt.Boards[side]
	if b == nil {
		return nil
	}
	n := len(b.Main)
	if zone == ZoneReserve {
		n = len(b.Reserve)
	}
	var out []TileRef
	for i := 0; i < n; i++ {
		ref := TileRef{Side: side, Zone: zone, Index: i}
		if rt.alive(ref) {
			out = append(out, ref)
		}
	}
	return out
}

func (rt *Runtime) rowWithExtremeArmor(side Side, highest bool) (Slot, bool) {
	best := map[Slot]int{}
	found := map[Slot]bool{}
	bestIdx := map[Slot]int{}
	for idx := 0; idx < 9; idx++ {
		ref := TileRef{Side: side, Zone: ZoneMain, Index: idx}
		if !rt.alive(ref) {
			continue
		}
		slot := RowOf(side, idx)
		armor := rt.tile(ref).CurrentArmor
		if !found[slot] || armor > best[slot] || (armor == best[slot] && idx < bestIdx[slot]) {
			best[slot] = armor
			bestIdx[slot] = idx
			found[slot] = true
		}
	}
	var chosen Slot
	chosenVal := 0
	chosenSet := false
	for _, slot := range []Slot{SlotFront, SlotMiddle, SlotBack} {
		if !found[slot] {
			continue
		}
		if !chosenSet {
			chosen, chosenVal, chosenSet = slot, best[slot], true
			continue
		}
		if highest && best[slot] > chosenVal {
			chosen, chosenVal = slot, best[slot]
		}
		if !highest && best[slot] < chosenVal {
			chosen, chosenVal = slot, best[slot]
		}
	}
	return chosen, chosenSet
}

func (rt *Runtime) rowWithHighestSumArmor(side Side) (Slot, bool) {
	sums := map[Slot]int{}
	seen := map[Slot]bool{}
	for idx := 0; idx < 9; idx++ {
		ref := TileRef{Side: side, Zone: ZoneMain, Index: idx}
		if !rt.alive(ref) {
			continue
		}
		slot := RowOf(side, idx)
		sums[slot] += rt.tile(ref).CurrentArmor
		seen[slot] = true
	}
	var chosen Slot
	chosenVal := 0
	chosenSet := false
	for _, slot := range []Slot{SlotFront, SlotMiddle, SlotBack} {
		if !seen[slot] {
			continue
		}
		if !chosenSet || sums[slot] > chosenVal {
			chosen, chosenVal, chosenSet = slot, sums[slot], true
		}
	}
	return chosen, chosenSet
}

func (rt *Runtime) extremeHealth(side Side, highest bool) (TileRef, bool) {
	candidates := rt.aliveInZone(side, ZoneMain)
	candidates = append(candidates, rt.aliveInZone(side, ZoneReserve)...)
	if len(candidates) == 0 {
		return TileRef{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Zone != candidates[j].Zone {
			return candidates[i].Zone == ZoneMain
		}
		return candidates[i].Index < candidates[j].Index
	})
	best := candidates[0]
	bestHP := rt.tile(best).CurrentHealth
	for _, c := range candidates[1:] {
		hp := rt.tile(c).CurrentHealth
		if (highest && hp > bestHP) || (!highest && hp < bestHP) {
			best, bestHP = c, hp
		}
	}
	return best, true
}

func (rt *Runtime) adjacent(caster TileRef) []TileRef {
	if caster.Zone != ZoneMain {
		return nil
	}
	row, col := caster.Index/3, caster.Index%3
	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	var out []TileRef
	for _, d := range deltas {
		r, c := row+d[0], col+d[1]
		if r < 0 || r > 2 || c < 0 || c > 2 {
			continue
		}
		idx := r*3 + c
		ref := TileRef{Side: caster.Side, Zone: ZoneMain, Index: idx}
		if rt.alive(ref) {
			out = append(out, ref)
		}
	}
	return out
}
