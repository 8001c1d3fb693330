package combat

import "testing"

func newPulsesTestRuntime() *Runtime {
	rt := newTestRuntime()
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{"plain": {ID: "plain", BaseHealth: 10}},
	}
	rt.RoundNumber = 4
	return rt
}

func TestApplyPulseDamageReducesHealth(t *testing.T) {
	rt := newPulsesTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 10}

	inst := EffectInstance{EffectDef: EffectDef{Name: "burn", Pulse: &PulseSpec{Type: PulseDamage, Value: 3}}}
	rt.applyPulse(ref, inst)

	if got := rt.tile(ref).CurrentHealth; got != 7 {
		t.Errorf("CurrentHealth = %d, want 7", got)
	}
}

func TestApplyPulseHealIncreasesHealth(t *testing.T) {
	rt := newPulsesTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 5}

	inst := EffectInstance{EffectDef: EffectDef{Name: "regen", Pulse: &PulseSpec{Type: PulseHeal, Value: 3}}}
	rt.applyPulse(ref, inst)

	if got := rt.tile(ref).CurrentHealth; got != 8 {
		t.Errorf("CurrentHealth = %d, want 8", got)
	}
}

func TestApplyPulseDerivedFromArmorUsesCurrentArmor(t *testing.T) {
	rt := newPulsesTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 10, CurrentArmor: 4}

	inst := EffectInstance{EffectDef: EffectDef{Name: "thorns", Pulse: &PulseSpec{Type: PulseDamage, DerivedFrom: DerivedFromArmor}}}
	rt.applyPulse(ref, inst)

	if got := rt.tile(ref).CurrentHealth; got != 6 {
		t.Errorf("CurrentHealth = %d, want 6 (10 - armor 4)", got)
	}
}

func TestApplyPulseDerivedFromRoundNumberUsesCurrentRound(t *testing.T) {
	rt := newPulsesTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 10}

	inst := EffectInstance{EffectDef: EffectDef{Name: "escalate", Pulse: &PulseSpec{Type: PulseDamage, DerivedFrom: DerivedFromRoundNumber}}}
	rt.applyPulse(ref, inst)

	if got := rt.tile(ref).CurrentHealth; got != 10-rt.RoundNumber {
		t.Errorf("CurrentHealth = %d, want %d", got, 10-rt.RoundNumber)
	}
}

func TestApplyPulseSpreadToAdjacentDamagesNeighbors(t *testing.T) {
	rt := newPulsesTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 10}
	rt.Boards[SideP1].Main[1] = Tile{HeroID: "plain", CurrentHealth: 10}
	rt.Boards[SideP1].Main[3] = Tile{HeroID: "plain", CurrentHealth: 10}

	inst := EffectInstance{EffectDef: EffectDef{Name: "plague", Pulse: &PulseSpec{Type: PulseDamage, Value: 2}, SpreadToAdjacentOnPulse: true}}
	rt.applyPulse(ref, inst)

	if got := rt.Boards[SideP1].Main[1].CurrentHealth; got != 8 {
		t.Errorf("adjacent tile 1 CurrentHealth = %d, want 8", got)
	}
	if got := rt.Boards[SideP1].Main[3].CurrentHealth; got != 8 {
		t.Errorf("adjacent tile 3 CurrentHealth = %d, want 8", got)
	}
}

func TestApplyPulseLethalDamageKillsTile(t *testing.T) {
	rt := newPulsesTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "plain", CurrentHealth: 2}

	inst := EffectInstance{EffectDef: EffectDef{Name: "burn", Pulse: &PulseSpec{Type: PulseDamage, Value: 5}}}
	rt.applyPulse(ref, inst)

	if !rt.Boards[SideP1].Main[0].Dead {
		t.Error("lethal pulse damage should kill the tile via processImmediateDeaths")
	}
}

func TestApplyPulseFrenzyGrantsEnergyOnDamage(t *testing.T) {
	rt := newPulsesTestRuntime()
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{
			"frenzied": {ID: "frenzied", BaseHealth: 10, Passives: []string{"Frenzy"}},
		},
	}
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "frenzied", CurrentHealth: 10, CurrentEnergy: 2}

	inst := EffectInstance{EffectDef: EffectDef{Name: "burn", Pulse: &PulseSpec{Type: PulseDamage, Value: 3}}}
	rt.applyPulse(ref, inst)

	if got := rt.tile(ref).CurrentEnergy; got != 3 {
		t.Errorf("CurrentEnergy = %d, want 3 (2 + 1 from Frenzy)", got)
	}
}

func TestApplyPulseFrenzySkippedWithoutDamage(t *testing.T) {
	rt := newPulsesTestRuntime()
	rt.Catalog = &MapCatalog{
		Heroes: map[string]HeroTemplate{
			"frenzied": {ID: "frenzied", BaseHealth: 10, Passives: []string{"Frenzy"}},
		},
	}
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{HeroID: "frenzied", CurrentHealth: 10, CurrentEnergy: 2}

	inst := EffectInstance{EffectDef: EffectDef{Name: "regen", Pulse: &PulseSpec{Type: PulseHeal, Value: 3}}}
	rt.applyPulse(ref, inst)

	if got := rt.tile(ref).CurrentEnergy; got != 2 {
		t.Errorf("CurrentEnergy = %d, want 2 (a heal pulse should not grant Frenzy energy)", got)
	}
}

func TestApplyPulseTriggersOnDamagedReaction(t *testing.T) {
	rt := newPulsesTestRuntime()
	ref := TileRef{Side: SideP1, Zone: ZoneMain, Index: 0}
	attacker := TileRef{Side: SideP2, Zone: ZoneMain, Index: 0}
	rt.Boards[SideP1].Main[0] = Tile{
		HeroID:        "plain",
		CurrentHealth: 10,
		Effects: []EffectInstance{{
			EffectDef:      EffectDef{Name: "Burning", Pulse: &PulseSpec{Type: PulseDamage, Value: 3}},
			OnDamaged:      nil,
		}},
	}
	rt.Boards[SideP1].Main[0].Effects[0].OnDamaged = &HandlerSpec{Kind: HandlerDamage, Amount: 1}
	rt.Boards[SideP1].Main[0].Effects[0].AppliedBySide = attacker.Side
	rt.Boards[SideP1].Main[0].Effects[0].AppliedByZone = attacker.Zone
	rt.Boards[SideP1].Main[0].Effects[0].AppliedByIndex = attacker.Index
	rt.Boards[SideP2].Main[0] = Tile{HeroID: "plain", CurrentHealth: 10}

	rt.applyPulse(ref, rt.Boards[SideP1].Main[0].Effects[0])

	if got := rt.tile(attacker).CurrentHealth; got != 9 {
		t.Errorf("attacker CurrentHealth = %d, want 9 (retaliation from onDamaged reaction)", got)
	}
}

func TestRunStartOfRoundPulsesSkipsDeadAndEmptyTiles(t *testing.T) {
	rt := newPulsesTestRuntime()
	rt.Boards[SideP1].Main[0] = Tile{
		HeroID:        "plain",
		CurrentHealth: 10,
		Effects:       []EffectInstance{{EffectDef: EffectDef{Name: "burn", Pulse: &PulseSpec{Type: PulseDamage, Value: 3}}}},
	}
	rt.Boards[SideP1].Main[1] = Tile{
		HeroID:        "plain",
		CurrentHealth: 10,
		Dead:          true,
		Effects:       []EffectInstance{{EffectDef: EffectDef{Name: "burn", Pulse: &PulseSpec{Type: PulseDamage, Value: 3}}}},
	}

	rt.runStartOfRoundPulses()

	if got := rt.Boards[SideP1].Main[0].CurrentHealth; got != 7 {
		t.Errorf("alive tile CurrentHealth = %d, want 7", got)
	}
	if got := rt.Boards[SideP1].Main[1].CurrentHealth; got != 10 {
		t.Errorf("dead tile should not take pulse damage, CurrentHealth = %d, want 10", got)
	}
}
