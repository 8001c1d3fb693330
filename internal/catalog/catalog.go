// Package catalog ships one concrete sample dataset of heroes, spells, and
// effects for the combat engine, as a static map-literal table. It exists
// so tests and the demo server (cmd/roundserver) have a real Catalog to
// exercise most augment flags and post-hooks (among those it does not use
// are the Executioner, EarlySpark and DoubleStrikeChance augments and the
// HealIfRemoved/HealCasterIfRemoved hooks); embedding applications are
// expected to supply their own.
package catalog

import "fightboard/internal/combat"

// Effects is the static set of named effects this sample dataset defines.
var Effects = map[string]combat.EffectDef{
	"Burning": {
		Name: "Burning", Kind: combat.EffectDebuff, Duration: 3,
		Pulse: &combat.PulseSpec{Type: combat.PulseDamage, Value: 1},
	},
	"Regrowth": {
		Name: "Regrowth", Kind: combat.EffectBuff, Duration: 3,
		Pulse: &combat.PulseSpec{Type: combat.PulseHeal, Value: 1},
	},
	"Armored": {
		Name: "Armored", Kind: combat.EffectBuff, Duration: 2,
		Modifiers: &combat.StatModifiers{Armor: 2},
	},
	"Shackle": {
		Name: "Shackle", Kind: combat.EffectDebuff, Duration: 2,
		Modifiers: &combat.StatModifiers{Speed: -2},
	},
	"Marked": {
		Name: "Marked", Kind: combat.EffectDebuff, Duration: -1,
		Modifiers: &combat.StatModifiers{Armor: -1},
	},
	"Thorns": {
		Name: "Thorns", Kind: combat.EffectBuff, Duration: -1,
		OnDamaged: &combat.HandlerSpec{Kind: combat.HandlerDamage, Amount: 2},
	},
	"Retribution": {
		Name: "Retribution", Kind: combat.EffectBuff, Duration: -1,
		OnTargeted: &combat.HandlerSpec{Kind: combat.HandlerDamage, Amount: 1},
	},
	"BloodPact": {
		Name: "BloodPact", Kind: combat.EffectBuff, Duration: -1,
		OnCastApplyEffectToTarget: &combat.HandlerSpec{Kind: combat.HandlerHealAlliesExceptSelf, Amount: 1},
	},
	"LastGasp": {
		Name: "LastGasp", Kind: combat.EffectNeutral, Duration: -1,
		OnDeath: &combat.HandlerSpec{Kind: combat.HandlerDamageEnemiesSpeedAtMost, Amount: 1, SpeedAtMost: 3},
	},
	"VenomCoat": {
		Name: "VenomCoat", Kind: combat.EffectBuff, Duration: -1,
		SpreadToAdjacentOnPulse: false,
	},
	"Ignited": {
		Name: "Ignited", Kind: combat.EffectDebuff, Duration: 2,
		Pulse:                   &combat.PulseSpec{Type: combat.PulseDamage, Value: 1},
		SpreadToAdjacentOnPulse: true,
	},
	"ArmorSiphon": {
		Name: "ArmorSiphon", Kind: combat.EffectDebuff, Duration: -1,
		Pulse:              &combat.PulseSpec{Type: combat.PulseDamage, DerivedFrom: combat.DerivedFromArmor},
		HealApplierOnPulse: true,
	},
	"Overgrowth": {
		Name: "Overgrowth", Kind: combat.EffectBuff, Duration: -1,
		Pulse: &combat.PulseSpec{Type: combat.PulseHeal, DerivedFrom: combat.DerivedFromRoundNumber},
	},
	"StormCall": {
		Name: "StormCall", Kind: combat.EffectNeutral, Duration: 1,
		Trigger: &combat.TriggerSpec{
			Kind: "onRoundStart",
			SpellSpec: &combat.SpellDef{
				ID: "stormCallTick", Name: "Storm Call",
				Formula: combat.Formula{Type: combat.FormulaDamage, Value: 1},
				Targets: []combat.TargetSpec{{Type: combat.TargetAll, Side: combat.TargetEnemy}},
			},
		},
	},
	"Barricade": {
		Name: "Barricade", Kind: combat.EffectBuff, Duration: -1,
		BlocksProjectileAndColumn: true,
	},
	"DeadManSwitch": {
		Name: "DeadManSwitch", Kind: combat.EffectNeutral, Duration: -1,
		ExecuteAtOrBelowHealth: 1, ExecuteDamage: 99,
	},
	"Defend": {
		Name: "Defend", Kind: combat.EffectBuff, Duration: 1,
		BlocksProjectileAndColumn: true,
	},
	"Soul-Link": {
		Name: "Soul-Link", Kind: combat.EffectBuff, Duration: -1,
	},
	"Strength": {
		Name: "Strength", Kind: combat.EffectBuff, Duration: 2,
		Modifiers: &combat.StatModifiers{SpellPower: 1},
	},
}

// Spells is the static set of named spells this sample dataset defines,
// exercising every FormulaType except healPower, every TargetType except
// frontmostRowWithHero, backRow, rowContainingHighestArmor and
// rowWithHighestSumArmor, and one representative example of most PostHooks
// fields.
var Spells = map[string]combat.SpellDef{
	"fireball": {
		ID: "fireball", Name: "Fireball", CastPriority: 2,
		Formula: combat.Formula{Type: combat.FormulaDamage, Value: 3},
		Targets: []combat.TargetSpec{{Type: combat.TargetProjectile, Side: combat.TargetEnemy}},
		Effects: []string{"Burning"},
		AnimationMS: 400,
	},
	"coneOfCold": {
		ID: "coneOfCold", Name: "Cone of Cold", CastPriority: 2,
		Formula: combat.Formula{Type: combat.FormulaDamage, Value: 1},
		Targets: []combat.TargetSpec{{Type: combat.TargetFrontTwoRows, Side: combat.TargetEnemy}},
		Effects: []string{"Shackle"},
	},
	"copyCat": {
		ID: "copyCat", Name: "Copy Cat", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
	},
	"arrowVolley": {
		ID: "arrowVolley", Name: "Arrow Volley", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaAttackPower, Value: 2},
		Targets: []combat.TargetSpec{{Type: combat.TargetColumn, Side: combat.TargetEnemy}},
	},
	"mend": {
		ID: "mend", Name: "Mend", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaHeal, Value: 2},
		Targets: []combat.TargetSpec{{Type: combat.TargetLowestHealth, Side: combat.TargetAlly}},
		Post:    combat.PostHooks{HealCasterAmount: 1},
	},
	"chainLightning": {
		ID: "chainLightning", Name: "Chain Lightning", CastPriority: 3,
		Formula: combat.Formula{Type: combat.FormulaDamage, Value: 1},
		Targets: []combat.TargetSpec{{Type: combat.TargetProjectilePlus1, Side: combat.TargetEnemy}},
	},
	"diceBolt": {
		ID: "diceBolt", Name: "Dice Bolt", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaRoll, Value: 1, Die: 6},
		Targets: []combat.TargetSpec{{Type: combat.TargetHighestHealth, Side: combat.TargetEnemy}},
	},
	"shieldBash": {
		ID: "shieldBash", Name: "Shield Bash", CastPriority: 2,
		Formula: combat.Formula{Type: combat.FormulaDamage, Value: 2, IgnoreSpellPower: true},
		Targets: []combat.TargetSpec{{Type: combat.TargetRowContainingLowestArmor, Side: combat.TargetEnemy}},
		Post:    combat.PostHooks{ApplyEffectToSelf: &combat.ApplyEffectToSelfHook{Effects: []string{"Armored"}}},
	},
	"cleanse": {
		ID: "cleanse", Name: "Cleanse", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
		Targets: []combat.TargetSpec{{Type: combat.TargetSelf}},
		Post:    combat.PostHooks{RemoveDebuffs: true},
	},
	"drainTouch": {
		ID: "drainTouch", Name: "Drain Touch", CastPriority: 2,
		Formula: combat.Formula{Type: combat.FormulaDamage, Value: 2},
		Targets: []combat.TargetSpec{{Type: combat.TargetAdjacent}},
		Post:    combat.PostHooks{HealCasterEqualToDamage: true},
	},
	"groundSlam": {
		ID: "groundSlam", Name: "Ground Slam", CastPriority: 2,
		Formula: combat.Formula{Type: combat.FormulaDamage, Value: 1},
		Targets: []combat.TargetSpec{{Type: combat.TargetBoard, Side: combat.TargetEnemy}},
		Post:    combat.PostHooks{ApplyEffectWithChance: []combat.ApplyEffectWithChanceHook{{Effect: "Shackle", Chance: 0.5}}},
	},
	"rally": {
		ID: "rally", Name: "Rally", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
		Targets: []combat.TargetSpec{{Type: combat.TargetAll, Side: combat.TargetAlly}},
		Effects: []string{"Armored"},
		Post:    combat.PostHooks{DeltaEnergy: &combat.DeltaEnergyHook{Amount: 1, Target: combat.DeltaEnergyTargetCaster}},
	},
	"vault": {
		ID: "vault", Name: "Vault", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
		Targets: []combat.TargetSpec{{Type: combat.TargetSelf}},
		Post:    combat.PostHooks{MoveRowBack: true},
	},
	"retreat": {
		ID: "retreat", Name: "Retreat", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
		Targets: []combat.TargetSpec{{Type: combat.TargetSelf}},
		Post:    combat.PostHooks{SwapWithReserve: &combat.SwapWithReserveHook{GainEnergy: 1}},
	},
	"raiseSkeleton": {
		ID: "raiseSkeleton", Name: "Raise Skeleton", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
		Targets: []combat.TargetSpec{{Type: combat.TargetLowestHealth, Side: combat.TargetAlly}},
		Post:    combat.PostHooks{RaiseDeadToHeroID: "skeleton"},
	},
	"basicAttack": {
		ID: "basicAttack", Name: "Basic Attack", CastPriority: 0,
		Formula: combat.Formula{Type: combat.FormulaAttackPower},
		Targets: []combat.TargetSpec{{Type: combat.TargetProjectile, Side: combat.TargetEnemy}},
	},
	"guard": {
		ID: "guard", Name: "Guard", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
		Targets: []combat.TargetSpec{{Type: combat.TargetSelf}},
		Effects: []string{"Defend"},
	},
	"soulBond": {
		ID: "soulBond", Name: "Soul Bond", CastPriority: 1,
		Formula: combat.Formula{Type: combat.FormulaNone},
		Targets: []combat.TargetSpec{{Type: combat.TargetLowestHealth, Side: combat.TargetAlly}},
		Effects: []string{"Soul-Link"},
	},
}

// Heroes is the static set of named heroes this sample dataset defines.
var Heroes = map[string]combat.HeroTemplate{
	"pyromancer": {
		ID: "pyromancer", Name: "Pyromancer",
		BaseHealth: 10, BaseArmor: 1, BaseSpeed: 2, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "fireball", Cost: 3, Casts: 3},
		},
	},
	"frostwarden": {
		ID: "frostwarden", Name: "Frostwarden",
		BaseHealth: 9, BaseArmor: 2, BaseSpeed: 1, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotMiddle: {SpellID: "coneOfCold", Cost: 4, Casts: 2},
		},
	},
	"mimic": {
		ID: "mimic", Name: "Mimic",
		BaseHealth: 8, BaseArmor: 1, BaseSpeed: 2, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "copyCat", Cost: 2, Casts: 3},
		},
	},
	"archer": {
		ID: "archer", Name: "Archer",
		BaseHealth: 7, BaseArmor: 0, BaseSpeed: 3, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotBack: {SpellID: "arrowVolley", Cost: 2, Casts: 4},
		},
		Augments: combat.AugmentFlags{FirstStrike: true, FocusedColumn: true},
	},
	"druid": {
		ID: "druid", Name: "Druid",
		BaseHealth: 9, BaseArmor: 1, BaseSpeed: 2, BaseSpellPower: 2,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotBack: {SpellID: "mend", Cost: 3, Casts: 3},
		},
		Augments: combat.AugmentFlags{WarmUp: true},
	},
	"stormcaller": {
		ID: "stormcaller", Name: "Stormcaller",
		BaseHealth: 8, BaseArmor: 0, BaseSpeed: 2, BaseSpellPower: 2,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotMiddle: {SpellID: "chainLightning", Cost: 4, Casts: 2},
		},
		StartingEffects: []string{"StormCall"},
		Augments:        combat.AugmentFlags{Momentum: true},
	},
	"gambler": {
		ID: "gambler", Name: "Gambler",
		BaseHealth: 8, BaseArmor: 0, BaseSpeed: 2, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "diceBolt", Cost: 2, Casts: 4},
		},
		Augments: combat.AugmentFlags{KeenStrike: true, EchoCaster: true},
	},
	"sentinel": {
		ID: "sentinel", Name: "Sentinel",
		BaseHealth: 12, BaseArmor: 3, BaseSpeed: 1, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "shieldBash", Cost: 3, Casts: 3},
		},
		StartingEffects: []string{"Barricade"},
		Passives:        []string{"Reap"},
		Augments:        combat.AugmentFlags{LastStand: true, ArcaneExchange: true},
	},
	"purifier": {
		ID: "purifier", Name: "Purifier",
		BaseHealth: 8, BaseArmor: 1, BaseSpeed: 2, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotBack: {SpellID: "cleanse", Cost: 2, Casts: 3},
		},
		Augments: combat.AugmentFlags{Attunement: true},
	},
	"leech": {
		ID: "leech", Name: "Leech",
		BaseHealth: 8, BaseArmor: 0, BaseSpeed: 2, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotMiddle: {SpellID: "drainTouch", Cost: 3, Casts: 3},
		},
		Augments: combat.AugmentFlags{Vampiric: true, TacticalSwap: true},
	},
	"earthshaker": {
		ID: "earthshaker", Name: "Earthshaker",
		BaseHealth: 11, BaseArmor: 2, BaseSpeed: 1, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "groundSlam", Cost: 5, Casts: 1},
		},
		Augments: combat.AugmentFlags{SpellEcho: true},
	},
	"warchief": {
		ID: "warchief", Name: "Warchief",
		BaseHealth: 10, BaseArmor: 1, BaseSpeed: 2, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "rally", Cost: 4, Casts: 2},
		},
		Passives: []string{"Bounty"},
	},
	"skirmisher": {
		ID: "skirmisher", Name: "Skirmisher",
		BaseHealth: 7, BaseArmor: 0, BaseSpeed: 3, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "vault", Cost: 2, Casts: 2},
		},
		Augments: combat.AugmentFlags{PredatorPace: true, FrontlineVanguard: true},
	},
	"smuggler": {
		ID: "smuggler", Name: "Smuggler",
		BaseHealth: 7, BaseArmor: 0, BaseSpeed: 2, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotBack: {SpellID: "retreat", Cost: 1, Casts: 2},
		},
		ReserveModifiers: combat.StatModifiers{Armor: 1},
		Augments:         combat.AugmentFlags{FixedPositional: true, Rearguard: true},
	},
	"necromancer": {
		ID: "necromancer", Name: "Necromancer",
		BaseHealth: 8, BaseArmor: 0, BaseSpeed: 1, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotBack: {SpellID: "raiseSkeleton", Cost: 3, Casts: 1},
		},
		Passives: []string{"Accept Contract"},
	},
	"skeleton": {
		ID: "skeleton", Name: "Skeleton",
		BaseHealth: 4, BaseArmor: 0, BaseSpeed: 1, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{},
	},
	"colossus": {
		ID: "colossus", Name: "Colossus",
		BaseHealth: 30, BaseArmor: 4, BaseSpeed: 1, BaseSpellPower: 0,
		Spells:   map[combat.Slot]combat.SlotSpell{},
		Augments: combat.AugmentFlags{Monster: true, VoidShield: 1},
	},
	"wraithlord": {
		ID: "wraithlord", Name: "Wraithlord",
		BaseHealth: 9, BaseArmor: 1, BaseSpeed: 2, BaseSpellPower: 0,
		Spells:          map[combat.Slot]combat.SlotSpell{},
		Passives:        []string{"Undying Rage", "Regeloop"},
		LeavesCorpse:    true,
	},
	"boss": {
		ID: "boss", Name: "Tyrant",
		BaseHealth: 20, BaseArmor: 2, BaseSpeed: 2, BaseSpellPower: 2,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "fireball", Cost: 2, Casts: 5},
		},
		Augments:    combat.AugmentFlags{IsBoss: true, Phoenix: true, TowerNoHealthCap: true},
		PositionalModifiers: map[combat.Slot]combat.StatModifiers{
			combat.SlotFront: {Armor: 1},
		},
	},
	"bulwark": {
		ID: "bulwark", Name: "Bulwark",
		BaseHealth: 11, BaseArmor: 2, BaseSpeed: 1, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "guard", Cost: 2, Casts: 3},
		},
	},
	"anchorite": {
		ID: "anchorite", Name: "Anchorite",
		BaseHealth: 9, BaseArmor: 1, BaseSpeed: 1, BaseSpellPower: 0,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotBack: {SpellID: "soulBond", Cost: 3, Casts: 2},
		},
	},
	"berserker": {
		ID: "berserker", Name: "Berserker",
		BaseHealth: 10, BaseArmor: 0, BaseSpeed: 2, BaseSpellPower: 1,
		Spells: map[combat.Slot]combat.SlotSpell{
			combat.SlotFront: {SpellID: "basicAttack", Cost: 0, Casts: 99},
		},
		StartingEffects: []string{"Burning"},
		Passives:        []string{"Frenzy"},
	},
}

// New constructs a MapCatalog backed by this package's sample dataset.
func New() *combat.MapCatalog {
	return &combat.MapCatalog{Heroes: Heroes, Spells: Spells, Effects: Effects}
}
