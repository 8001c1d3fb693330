package combat

import "testing"

func newTestRuntime() *Runtime {
	p1 := &Board{}
	p2 := &Board{}
	return &Runtime{
		Boards: map[Side]*Board{SideP1: p1, SideP2: p2},
		Sides:  []Side{SideP1, SideP2},
	}
}

func aliveTile(heroID string, armor, health int) Tile {
	return Tile{HeroID: heroID, CurrentArmor: armor, CurrentHealth: health}
}

func TestResolveTargetsSelf(t *testing.T) {
	rt := newTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 4}
	refs := rt.resolveTargets(TargetSpec{Type: TargetSelf}, caster)
	if len(refs) != 1 || refs[0] != caster {
		t.Errorf("resolveTargets(self) = %v, want [%v]", refs, caster)
	}
}

func TestResolveTargetsProjectileHitsFrontmostAliveInColumn(t *testing.T) {
	rt := newTestRuntime()
	// P1 casts from back of column 0 (index 0); P2 column 0 front (index 0)
	// is dead, middle (index 1) alive.
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "p2-front", Dead: true}
	rt.Boards[SideP2].Main[1] = aliveTile("p2-mid", 0, 10)

	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	refs := rt.resolveTargets(TargetSpec{Type: TargetProjectile, Side: TargetEnemy}, caster)
	if len(refs) != 1 || refs[0].Index != 1 {
		t.Errorf("resolveTargets(projectile) = %v, want single ref at index 1", refs)
	}
}

func TestResolveTargetsProjectileNoneAliveReturnsNil(t *testing.T) {
	rt := newTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	refs := rt.resolveTargets(TargetSpec{Type: TargetProjectile, Side: TargetEnemy}, caster)
	if refs != nil {
		t.Errorf("resolveTargets(projectile) with no enemies alive = %v, want nil", refs)
	}
}

func TestResolveTargetsColumnReturnsAllAliveInColumn(t *testing.T) {
	rt := newTestRuntime()
	rt.Boards[SideP2].Main[0] = aliveTile("a", 0, 5)
	rt.Boards[SideP2].Main[1] = aliveTile("b", 0, 5)
	rt.Boards[SideP2].Main[2] = Tile{} // empty

	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	refs := rt.resolveTargets(TargetSpec{Type: TargetColumn, Side: TargetEnemy}, caster)
	if len(refs) != 2 {
		t.Errorf("resolveTargets(column) returned %d refs, want 2", len(refs))
	}
}

func TestResolveTargetsHighestAndLowestHealthTieBreaksLowIndex(t *testing.T) {
	rt := newTestRuntime()
	rt.Boards[SideP2].Main[3] = aliveTile("a", 0, 10)
	rt.Boards[SideP2].Main[5] = aliveTile("b", 0, 10) // tied highest, higher index

	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	refs := rt.resolveTargets(TargetSpec{Type: TargetHighestHealth, Side: TargetEnemy}, caster)
	if len(refs) != 1 || refs[0].Index != 3 {
		t.Errorf("resolveTargets(highestHealth) tie-break = %v, want index 3", refs)
	}
}

func TestResolveTargetsAdjacentStaysInBounds(t *testing.T) {
	rt := newTestRuntime()
	// corner tile (index 0 = row 0, col 0): only right (1) and down (3) exist.
	rt.Boards[SideP1].Main[1] = aliveTile("right", 0, 5)
	rt.Boards[SideP1].Main[3] = aliveTile("down", 0, 5)

	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	refs := rt.resolveTargets(TargetSpec{Type: TargetAdjacent, Side: TargetAlly}, caster)
	if len(refs) != 2 {
		t.Errorf("resolveTargets(adjacent) from corner = %v, want 2 refs", refs)
	}
}

func TestResolveTargetsAllIncludesReserve(t *testing.T) {
	rt := newTestRuntime()
	rt.Boards[SideP2].Main[0] = aliveTile("main", 0, 5)
	rt.Boards[SideP2].Reserve[0] = aliveTile("reserve", 0, 5)

	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	refs := rt.resolveTargets(TargetSpec{Type: TargetAll, Side: TargetEnemy}, caster)
	if len(refs) != 2 {
		t.Errorf("resolveTargets(all) = %v, want 2 refs (main + reserve)", refs)
	}
}

func TestAliveExcludesDeadAndEmpty(t *testing.T) {
	rt := newTestRuntime()
	rt.Boards[SideP1].Main[0] = Tile{} // empty
	rt.Boards[SideP1].Main[1] = Tile{HeroID: "dead", Dead: true}
	rt.Boards[SideP1].Main[2] = aliveTile("alive", 0, 1)

	if rt.alive(TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}) {
		t.Error("empty tile reported alive")
	}
	if rt.alive(TileRef{Side: SideP1, Zone: ZoneMain, Index: 1}) {
		t.Error("dead tile reported alive")
	}
	if !rt.alive(TileRef{Side: SideP1, Zone: ZoneMain, Index: 2}) {
		t.Error("alive tile reported not alive")
	}
}
