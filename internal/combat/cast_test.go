package combat

import "testing"

func newCastTestRuntime() *Runtime {
	rt := newTestRuntime()
	rt.RNG = fixedRNG{intn: 0, float: 0.99}
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{
			"attacker": {ID: "attacker"},
			"victim":   {ID: "victim", BaseHealth: 10},
			"plain":    {ID: "plain", BaseHealth: 10},
			"bulwark":  {ID: "bulwark"},
		},
	}
	return rt
}

func TestApplyDefendInterceptionNullifiesProjectileOnSoleDefendedTarget(t *testing.T) {
	rt := newCastTestRuntime()
	target := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP2].Main[0] = Tile{
		HeroID:        "bulwark",
		CurrentHealth: 5,
		Effects:       []EffectInstance{{EffectDef: EffectDef{Name: "Defend", BlocksProjectileAndColumn: true}}},
	}

	targets := []TargetedPayload{{Target: target, DescriptorIndex: 0, DescriptorType: TargetProjectile}}
	got := rt.applyDefendInterception(targets)

	if len(got) != 0 {
		t.Errorf("applyDefendInterception = %v, want empty (projectile nullified by Defend)", got)
	}
}

func TestApplyDefendInterceptionProjectilePlus1NullifiedWhenPrimaryDefends(t *testing.T) {
	rt := newCastTestRuntime()
	primary := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	secondary := TileRef{Side: SideP2, Zone: ZoneMain, Index: 1}
	rt.Boards[SideP2].Main[0] = Tile{
		HeroID:        "bulwark",
		CurrentHealth: 5,
		Effects:       []EffectInstance{{EffectDef: EffectDef{Name: "Defend", BlocksProjectileAndColumn: true}}},
	}
	rt.Boards[SideP2].Main[1] = Tile{HeroID: "plain", CurrentHealth: 5}

	targets := []TargetedPayload{
		{Target: primary, DescriptorIndex: 0, DescriptorType: TargetProjectilePlus1},
		{Target: secondary, DescriptorIndex: 0, DescriptorType: TargetProjectilePlus1},
	}
	got := rt.applyDefendInterception(targets)

	if len(got) != 0 {
		t.Errorf("applyDefendInterception = %v, want empty (primary defending nullifies the whole group)", got)
	}
}

func TestApplyDefendInterceptionProjectilePlus1PassesThroughWithoutDefend(t *testing.T) {
	rt := newCastTestRuntime()
	primary := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	secondary := TileRef{Side: SideP2, Zone: ZoneMain, Index: 1}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "plain", CurrentHealth: 5}
	rt.Boards[SideP2].Main[1] = Tile{HeroID: "plain", CurrentHealth: 5}

	targets := []TargetedPayload{
		{Target: primary, DescriptorIndex: 0, DescriptorType: TargetProjectilePlus1},
		{Target: secondary, DescriptorIndex: 0, DescriptorType: TargetProjectilePlus1},
	}
	got := rt.applyDefendInterception(targets)

	if len(got) != 2 {
		t.Errorf("applyDefendInterception = %v, want both targets untouched", got)
	}
}

func TestApplyDefendInterceptionColumnDropsDefenderAndBehind(t *testing.T) {
	rt := newCastTestRuntime()
	front := TileRef{Side: SideP2, Zone: ZoneMain, Index: 2}
	middle := TileRef{Side: SideP2, Zone: ZoneMain, Index: 1}
	back := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP2].Main[2] = Tile{HeroID: "plain", CurrentHealth: 5}
	rt.Boards[SideP2].Main[1] = Tile{
		HeroID:        "bulwark",
		CurrentHealth: 5,
		Effects:       []EffectInstance{{EffectDef: EffectDef{Name: "Defend", BlocksProjectileAndColumn: true}}},
	}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "plain", CurrentHealth: 5}

	targets := []TargetedPayload{
		{Target: front, DescriptorIndex: 0, DescriptorType: TargetColumn},
		{Target: middle, DescriptorIndex: 0, DescriptorType: TargetColumn},
		{Target: back, DescriptorIndex: 0, DescriptorType: TargetColumn},
	}
	got := rt.applyDefendInterception(targets)

	if len(got) != 1 || got[0].Target != front {
		t.Errorf("applyDefendInterception = %v, want [front] (the Defender and the tile behind it dropped)", got)
	}
}

func TestApplySoulLinkRedirectSendsHalfDamageToLinkedAlly(t *testing.T) {
	rt := newCastTestRuntime()
	target := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	ally := TileRef{Side: SideP1, Zone: ZoneMain, Index: 1}
	caster := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{
		HeroID:        "plain",
		CurrentHealth: 10,
		Effects: []EffectInstance{{
			EffectDef:      EffectDef{Name: "Soul-Link"},
			AppliedBySide:  ally.Side,
			AppliedByZone:  ally.Zone,
			AppliedByIndex: ally.Index,
		}},
	}
	rt.Boards[SideP1].Main[1] = Tile{HeroID: "plain", CurrentHealth: 10}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "plain", CurrentHealth: 10}

	remainder := rt.applySoulLinkRedirect(10, target, caster)

	if remainder != 5 {
		t.Errorf("remainder = %d, want 5 (half redirected to the linked ally)", remainder)
	}
	if got := rt.tile(ally).CurrentHealth; got != 5 {
		t.Errorf("ally CurrentHealth = %d, want 5 (took the redirected 5 damage)", got)
	}
}

func TestApplySoulLinkRedirectNoOpWithoutTheEffect(t *testing.T) {
	rt := newCastTestRuntime()
	target := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	caster := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 10}

	remainder := rt.applySoulLinkRedirect(10, target, caster)
	if remainder != 10 {
		t.Errorf("remainder = %d, want 10 (no Soul-Link effect present)", remainder)
	}
}

func TestComputeDamageFirstStrikeAddsHalfOnce(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	target := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "attacker", CurrentHealth: 10}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "victim", CurrentHealth: 10}
	hero := HeroTemplate{Augments: AugmentFlags{FirstStrike: true}}

	first := rt.computeDamage(caster, target, 10, hero, "bolt")
	if first != 15 {
		t.Errorf("first cast damage = %d, want 15 (10 * 1.5)", first)
	}

	rt.Boards[SideP2].Main[0].CurrentHealth = 10
	second := rt.computeDamage(caster, target, 10, hero, "bolt")
	if second != 10 {
		t.Errorf("second cast damage = %d, want 10 (First Strike already used)", second)
	}
}

func TestComputeDamageExecutionerGatedOnTargetHealthAndNotBasicAttack(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	target := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "attacker", CurrentHealth: 10}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "victim", CurrentHealth: 5}
	hero := HeroTemplate{Augments: AugmentFlags{Executioner: true}}

	belowHalf := rt.computeDamage(caster, target, 10, hero, "bolt")
	if belowHalf != 15 {
		t.Errorf("damage vs target at <=50%% health = %d, want 15 (10 * 1.5)", belowHalf)
	}

	rt.Boards[SideP2].Main[0].CurrentHealth = 6
	aboveHalf := rt.computeDamage(caster, target, 10, hero, "bolt")
	if aboveHalf != 10 {
		t.Errorf("damage vs target above 50%% health = %d, want 10 (Executioner not triggered)", aboveHalf)
	}

	rt.Boards[SideP2].Main[0].CurrentHealth = 5
	basic := rt.computeDamage(caster, target, 10, hero, basicAttackSpellID)
	if basic != 10 {
		t.Errorf("basic attack damage = %d, want 10 (Executioner only applies to slot spells)", basic)
	}
}

func TestComputeDamageLastStandGatedOnCasterHealth(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	target := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "victim", CurrentHealth: 10}
	hero := HeroTemplate{BaseHealth: 10, Augments: AugmentFlags{LastStand: true}}

	rt.Boards[SideP1].Main[0] = Tile{HeroID: "attacker", CurrentHealth: 2}
	low := rt.computeDamage(caster, target, 10, hero, "bolt")
	if low != 13 {
		t.Errorf("damage at <=25%% caster health = %d, want 13 (10 + 3)", low)
	}

	rt.Boards[SideP2].Main[0].CurrentHealth = 10
	rt.Boards[SideP1].Main[0].CurrentHealth = 5
	high := rt.computeDamage(caster, target, 10, hero, "bolt")
	if high != 10 {
		t.Errorf("damage above 25%% caster health = %d, want 10 (Last Stand not triggered)", high)
	}
}

func TestComputeDamageEarlySparkOnlyRoundOne(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	target := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "attacker", CurrentHealth: 10}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "victim", CurrentHealth: 10}
	hero := HeroTemplate{Augments: AugmentFlags{EarlySpark: true}}

	rt.RoundNumber = 1
	first := rt.computeDamage(caster, target, 10, hero, "bolt")
	if first != 11 {
		t.Errorf("round 1 damage = %d, want 11 (10 + 1)", first)
	}

	rt.Boards[SideP2].Main[0].CurrentHealth = 10
	rt.RoundNumber = 2
	later := rt.computeDamage(caster, target, 10, hero, "bolt")
	if later != 10 {
		t.Errorf("round 2 damage = %d, want 10 (Early Spark only applies round 1)", later)
	}
}

func TestComputeDamageKeenStrikeOnlyOnBasicAttacks(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	target := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "attacker", CurrentHealth: 10}
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "victim", CurrentHealth: 10}
	hero := HeroTemplate{Augments: AugmentFlags{KeenStrike: true}}
	rt.RNG = fixedRNG{intn: 0, float: 0.0}

	basic := rt.computeDamage(caster, target, 10, hero, basicAttackSpellID)
	if basic != 15 {
		t.Errorf("basic attack damage with Keen Strike proc = %d, want 15 (10 * 1.5)", basic)
	}

	rt.Boards[SideP2].Main[0].CurrentHealth = 10
	spell := rt.computeDamage(caster, target, 10, hero, "bolt")
	if spell != 10 {
		t.Errorf("non-basic-attack damage = %d, want 10 (Keen Strike never applies to slot spells)", spell)
	}
}

func TestResolveOneCastFocusedColumnDiscountsColumnSpellCost(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{
			"columnCaster": {ID: "columnCaster", Augments: AugmentFlags{FocusedColumn: true}},
		},
		Spells: map[string]SpellDef{
			"pierce": {
				ID:      "pierce",
				Formula: Formula{Type: FormulaNone},
				Targets: []TargetSpec{{Type: TargetColumn, Side: TargetEnemy}},
			},
		},
	}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "columnCaster", CurrentHealth: 10, CurrentEnergy: 5}
	rt.LastCastActionBySide = map[Side]*CastAction{}

	pc := pendingCast{Caster: caster, Cast: QueuedCast{SpellID: "pierce", Slot: SlotFront, QueuedCost: 3}}
	rt.resolveOneCast(pc)

	if got := rt.tile(caster).CurrentEnergy; got != 3 {
		t.Errorf("CurrentEnergy = %d, want 3 (5 - discounted cost of 2)", got)
	}
}

func TestResolveOneCastFocusedColumnDoesNotDiscountBasicAttack(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{
			"columnCaster": {ID: "columnCaster", Augments: AugmentFlags{FocusedColumn: true}},
		},
	}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "columnCaster", CurrentHealth: 10, CurrentEnergy: 5}
	rt.LastCastActionBySide = map[Side]*CastAction{}

	pc := pendingCast{Caster: caster, Cast: QueuedCast{SpellID: basicAttackSpellID, Slot: SlotFront, QueuedCost: 3, QueuedEnergy: 5}}
	rt.resolveOneCast(pc)

	if got := rt.tile(caster).CurrentEnergy; got != 2 {
		t.Errorf("CurrentEnergy = %d, want 2 (basic attacks are never discounted)", got)
	}
}

func TestResolveOneCastFocusedColumnDiscountFloorsAtOne(t *testing.T) {
	rt := newCastTestRuntime()
	caster := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{
			"columnCaster": {ID: "columnCaster", Augments: AugmentFlags{FocusedColumn: true}},
		},
		Spells: map[string]SpellDef{
			"pierce": {
				ID:      "pierce",
				Formula: Formula{Type: FormulaNone},
				Targets: []TargetSpec{{Type: TargetColumn, Side: TargetEnemy}},
			},
		},
	}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "columnCaster", CurrentHealth: 10, CurrentEnergy: 5}
	rt.LastCastActionBySide = map[Side]*CastAction{}

	pc := pendingCast{Caster: caster, Cast: QueuedCast{SpellID: "pierce", Slot: SlotFront, QueuedCost: 1}}
	rt.resolveOneCast(pc)

	if got := rt.tile(caster).CurrentEnergy; got != 4 {
		t.Errorf("CurrentEnergy = %d, want 4 (cost floored at 1, not 0)", got)
	}
}
