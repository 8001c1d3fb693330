package combat

import "testing"

func newMutateTestRuntime() *Runtime {
	rt := newTestRuntime()
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{"plain": {ID: "plain", BaseHealth: 10}},
	}
	return rt
}

func TestDamageTileClampsToZero(t *testing.T) {
	rt := newMutateTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 5}

	rt.damageTile(ref, 50, ref)

	if got := rt.tile(ref).CurrentHealth; got != 0 {
		t.Errorf("CurrentHealth = %d, want 0", got)
	}
}

func TestDamageTileIgnoresNonPositiveAmount(t *testing.T) {
	rt := newMutateTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 5}

	rt.damageTile(ref, 0, ref)
	rt.damageTile(ref, -3, ref)

	if got := rt.tile(ref).CurrentHealth; got != 5 {
		t.Errorf("CurrentHealth = %d, want unchanged at 5", got)
	}
}

func TestDamageTileOnDeadTileIsNoOp(t *testing.T) {
	rt := newMutateTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 5, Dead: true}

	rt.damageTile(ref, 3, ref)

	if got := rt.tile(ref).CurrentHealth; got != 5 {
		t.Errorf("CurrentHealth = %d, want unchanged on dead tile", got)
	}
}

func TestHealTileClampsToMaxHealthCap(t *testing.T) {
	rt := newMutateTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: MaxHealthCap - 1}

	rt.healTile(ref, 10)

	if got := rt.tile(ref).CurrentHealth; got != MaxHealthCap {
		t.Errorf("CurrentHealth = %d, want capped at %d", got, MaxHealthCap)
	}
}

func TestGrantEnergyFloorsAtZero(t *testing.T) {
	rt := newMutateTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentEnergy: 2}

	rt.grantEnergy(ref, -10)

	if got := rt.tile(ref).CurrentEnergy; got != 0 {
		t.Errorf("CurrentEnergy = %d, want floored at 0", got)
	}
}

func TestApplyVoidShieldReducesDamageFloorsAtZero(t *testing.T) {
	hero := HeroTemplate{Augments: AugmentFlags{VoidShield: 5}}
	if got := applyVoidShield(3, hero); got != 0 {
		t.Errorf("applyVoidShield(3, shield=5) = %d, want 0", got)
	}
	if got := applyVoidShield(8, hero); got != 3 {
		t.Errorf("applyVoidShield(8, shield=5) = %d, want 3", got)
	}
}

func TestApplyArmorReducesDamageFloorsAtZero(t *testing.T) {
	if got := applyArmor(10, 4); got != 6 {
		t.Errorf("applyArmor(10, armor=4) = %d, want 6", got)
	}
	if got := applyArmor(3, 4); got != 0 {
		t.Errorf("applyArmor(3, armor=4) = %d, want 0", got)
	}
}
