package combat

// Board Model. Pure helpers over the fixed 3x3 index layout; no
// mutable state lives here. The mirroring rule is load-bearing: column
// index is the same on both sides — it is NOT inverted.

var p1Front = map[int]bool{2: true, 5: true, 8: true}
var p1Middle = map[int]bool{1: true, 4: true, 7: true}
var p1Back = map[int]bool{0: true, 3: true, 6: true}

var p2Front = map[int]bool{0: true, 3: true, 6: true}
var p2Middle = map[int]bool{1: true, 4: true, 7: true}
var p2Back = map[int]bool{2: true, 5: true, 8: true}

// columns are identical across sides: {0,1,2}, {3,4,5}, {6,7,8}.
var columns = [3][3]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}

// RowOf returns the row slot for a Main-board index from side's own
// perspective.
func RowOf(side Side, index int) Slot {
	switch side {
	case SideP1:
		switch {
		case p1Front[index]:
			return SlotFront
		case p1Middle[index]:
			return SlotMiddle
		default:
			return SlotBack
		}
	default: // P2 and P3 share P2's front/back mapping per the opt-in ffa3 rule
		switch {
		case p2Front[index]:
			return SlotFront
		case p2Middle[index]:
			return SlotMiddle
		default:
			return SlotBack
		}
	}
}

// ColumnOf returns the column (0..2) for a Main-board index. Columns are
// identical across sides, so side is unused but kept for symmetry with
// RowOf and future non-symmetric layouts.
func ColumnOf(_ Side, index int) int {
	return index / 3
}

// ColumnIndices returns the three indices of a column in front->middle->back
// order from side's own perspective.
func ColumnIndices(side Side, column int) [3]int {
	raw := columns[column]
	var out [3]int
	slotIdx := map[Slot]int{SlotFront: 0, SlotMiddle: 1, SlotBack: 2}
	for _, idx := range raw {
		out[slotIdx[RowOf(side, idx)]] = idx
	}
	return out
}

// SlotForIndex is an alias of RowOf kept for the name used in
func SlotForIndex(side Side, index int) Slot { return RowOf(side, index) }

// CloneBoard deep-copies a board so engine-internal mutation never leaks
// back into a caller's snapshot. Thin wrapper retained for call-site
// readability; Board.Clone does the real work (types.go).
func CloneBoard(b Board) Board { return b.Clone() }
