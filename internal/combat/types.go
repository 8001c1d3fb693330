// Package combat implements the round executor: the deterministic
// state-transition engine that resolves one round of combat between two
// (optionally three) sides on mirrored tile boards.
package combat

// Side identifies one of the combatants. A third side (P3) is supported
// only when RoundInput.GameMode == "ffa3"; the two-player rules apply
// symmetrically to it.
type Side string

const (
	SideP1 Side = "P1"
	SideP2 Side = "P2"
	SideP3 Side = "P3"
)

// Zone distinguishes the active 3x3 grid from the inert reserve strip.
type Zone string

const (
	ZoneMain    Zone = "main"
	ZoneReserve Zone = "reserve"
)

// Slot names the row-derived spell slot a hero casts from.
type Slot string

const (
	SlotFront  Slot = "front"
	SlotMiddle Slot = "middle"
	SlotBack   Slot = "back"
)

// MaxHealthCap is the hard HP ceiling for heroes that are neither monsters
// nor flagged TowerNoHealthCap.
const MaxHealthCap = 15

// TileRef addresses one concrete tile on a board.
type TileRef struct {
	Side  Side
	Zone  Zone
	Index int
}

// StatModifiers is an additive bundle of derived-stat deltas.
type StatModifiers struct {
	Armor      int
	Speed      int
	SpellPower int
}

func (m StatModifiers) Add(o StatModifiers) StatModifiers {
	return StatModifiers{
		Armor:      m.Armor + o.Armor,
		Speed:      m.Speed + o.Speed,
		SpellPower: m.SpellPower + o.SpellPower,
	}
}

// EffectKind classifies an effect for removeDebuffs/removeTopPositiveEffect
// style post-hooks.
type EffectKind string

const (
	EffectBuff    EffectKind = "buff"
	EffectDebuff  EffectKind = "debuff"
	EffectNeutral EffectKind = "neutral"
)

// PulseType is the action a per-round effect pulse performs.
type PulseType string

const (
	PulseDamage PulseType = "damage"
	PulseHeal   PulseType = "heal"
)

// PulseDerivedFrom lets a pulse's value be computed instead of fixed.
type PulseDerivedFrom string

const (
	DerivedFromNone        PulseDerivedFrom = ""
	DerivedFromArmor       PulseDerivedFrom = "armor"
	DerivedFromRoundNumber PulseDerivedFrom = "roundNumber"
)

// PulseSpec describes an effect's start-of-round tick.
type PulseSpec struct {
	Type        PulseType
	Value       int
	DerivedFrom PulseDerivedFrom
}

// TriggerSpec attaches a full spell-like payload to an effect, fired by
// the round executor's onRoundStart phase when Kind == "onRoundStart".
type TriggerSpec struct {
	Kind      string // "onRoundStart"
	SpellSpec *SpellDef
}

// HandlerKind enumerates the reaction hooks an effect may carry.
type HandlerKind string

const (
	HandlerHealAlliesExceptSelf       HandlerKind = "healAlliesExceptSelf"
	HandlerDamage                     HandlerKind = "damage"
	HandlerApplyEffectToAttacker      HandlerKind = "applyEffectToAttacker"
	HandlerDamageEnemiesSpeedAtMost   HandlerKind = "damageEnemiesWithSpeedAtMost"
	HandlerApplyEffectToTargets       HandlerKind = "applyEffectToTargets"
	HandlerHeal                       HandlerKind = "heal"
	HandlerApplyEffect                HandlerKind = "applyEffect"
	HandlerConsume                    HandlerKind = "consume"
)

// HandlerSpec is the generic shape for onDamaged/onTargeted/onCast*/onDeath/
// onKill reaction handlers.
type HandlerSpec struct {
	Kind        HandlerKind
	Amount      int
	SpeedAtMost int
	EffectName  string
}

// EffectDef is the read-only catalog template for a named effect.
type EffectDef struct {
	Name                      string
	Kind                      EffectKind
	Duration                  int // -1 == permanent
	Modifiers                 *StatModifiers
	Pulse                     *PulseSpec
	Trigger                   *TriggerSpec
	OnDamaged                 *HandlerSpec
	OnTargeted                *HandlerSpec
	OnCastApplyEffectToTarget *HandlerSpec
	OnDeath                   *HandlerSpec
	OnKill                    *HandlerSpec
	BlocksProjectileAndColumn bool
	SpreadToAdjacentOnPulse   bool
	HealApplierOnPulse        bool
	ExecuteAtOrBelowHealth    int
	ExecuteDamage             int
}

// EffectInstance is a cloned, provenance-stamped, mutable copy of an
// EffectDef living on a tile.
type EffectInstance struct {
	EffectDef
	AppliedByInstanceID string
	AppliedBySide       Side
	AppliedByZone       Zone
	AppliedByIndex      int
}

// AugmentFlags are hero-template modifiers to cast behavior.
type AugmentFlags struct {
	FirstStrike         bool
	WarmUp              bool
	Momentum            bool
	EchoCaster          bool
	ArcaneExchange      bool
	KeenStrike          bool
	LastStand           bool
	Executioner         bool
	Vampiric            bool
	SpellEcho           bool
	DoubleStrikeChance  float64
	FocusedColumn       bool
	PredatorPace        bool
	FrontlineVanguard   bool
	Rearguard           bool
	Attunement          bool
	TacticalSwap        bool
	EarlySpark          bool
	Phoenix             bool
	VoidShield          int
	TowerNoHealthCap    bool
	FixedPositional     bool
	Monster             bool
	IsBoss              bool
}

// SlotSpell binds a spell id to its per-slot cost/charges for a hero.
type SlotSpell struct {
	SpellID string
	Cost    int
	Casts   int
}

// HeroTemplate is the read-only catalog definition of a hero.
type HeroTemplate struct {
	ID                  string
	Name                string
	BaseHealth          int
	BaseArmor           int
	BaseSpeed           int
	BaseSpellPower      int
	Spells              map[Slot]SlotSpell
	Passives            []string
	PositionalModifiers map[Slot]StatModifiers
	ReserveModifiers    StatModifiers
	Augments            AugmentFlags
	StartingEffects     []string
	LeavesCorpse        bool
}

// FormulaType is the payload builder's source action kind.
type FormulaType string

const (
	FormulaDamage      FormulaType = "damage"
	FormulaAttackPower FormulaType = "attackPower"
	FormulaHeal        FormulaType = "heal"
	FormulaHealPower   FormulaType = "healPower"
	FormulaRoll        FormulaType = "roll"
	FormulaNone        FormulaType = "none"
)

// Formula is a spell's base-value source.
type Formula struct {
	Type           FormulaType
	Value          int
	Die            int
	IgnoreSpellPower bool
}

// TargetSide selects whose board a descriptor resolves against.
type TargetSide string

const (
	TargetEnemy TargetSide = "enemy"
	TargetAlly  TargetSide = "ally"
)

// TargetType enumerates the target descriptor kinds.
type TargetType string

const (
	TargetSelf                      TargetType = "self"
	TargetProjectile                TargetType = "projectile"
	TargetProjectilePlus1           TargetType = "projectilePlus1"
	TargetColumn                    TargetType = "column"
	TargetFrontmostRowWithHero       TargetType = "frontmostRowWithHero"
	TargetFrontTwoRows               TargetType = "frontTwoRows"
	TargetBackRow                    TargetType = "backRow"
	TargetRowContainingHighestArmor  TargetType = "rowContainingHighestArmor"
	TargetRowContainingLowestArmor   TargetType = "rowContainingLowestArmor"
	TargetRowWithHighestSumArmor     TargetType = "rowWithHighestSumArmor"
	TargetHighestHealth              TargetType = "highestHealth"
	TargetLowestHealth               TargetType = "lowestHealth"
	TargetAdjacent                   TargetType = "adjacent"
	TargetAll                        TargetType = "all"
	TargetBoard                      TargetType = "board"
)

// TargetSpec is one entry in a spell's ordered target descriptor list.
type TargetSpec struct {
	Type TargetType
	Side TargetSide
}

// SpellDef is the read-only catalog definition of a spell.
type SpellDef struct {
	ID                   string
	Name                 string
	CastPriority         int
	Formula              Formula
	Targets              []TargetSpec
	Effects              []string
	Post                 PostHooks
	AnimationMS          int
	SecondaryAnimationMS int
	Sound                string
	SoundVolume          float64
}

// QueuedCast is an engine-owned record of a pending spell resolution.
type QueuedCast struct {
	SpellID        string
	Slot           Slot
	QueuedEnergy   int
	QueuedCost     int
	QueuedID       uint64
	TowerBonusCast bool
	EnqueueOrder   int
}

// Tile is either empty (HeroID == "") or carries a runtime hero instance.
type Tile struct {
	HeroID string

	CurrentHealth     int
	CurrentArmor      int
	CurrentSpeed      int
	CurrentEnergy     int
	CurrentSpellPower int

	Effects  []EffectInstance
	Passives []EffectInstance

	CastsRemaining map[Slot]int
	QueuedCasts    []QueuedCast

	Dead bool

	FirstStrikeUsed        bool
	WarmUpUsed              bool
	EchoCasterPending       bool
	ArcaneExchangePending   bool
	ArcaneExchangeCharged   bool
	PredatorPacePending     bool
	MomentumGains           int
	ReserveBonusApplied     bool
	LastAutoCastEnergy      int
	LastReapObservedHealth  int
	LastRow                 Slot
	UndyingRageUsed         bool
	PhoenixUsed             bool
	RegeloopUses            int
	StartingRowApplied      bool
	BaseHealthSnapshot      int
	MarkedByAcceptContract  bool
	Initialized             bool

	AttunementApplied        bool
	TacticalSwapApplied      bool
	FrontlineVanguardApplied bool
	RearguardApplied         bool
}

func (t *Tile) Empty() bool { return t.HeroID == "" }

// CastAction records the minimal shape needed by copyCat and by
// RoundOutput.LastCastActionBySide.
type CastAction struct {
	Side        Side
	CasterZone  Zone
	CasterIndex int
	SpellID     string
}

// Board bundles one side's main grid and reserve strip.
type Board struct {
	Main    [9]Tile
	Reserve [2]Tile
}

func (b Board) Clone() Board {
	out := b
	for i := range out.Main {
		out.Main[i].Effects = append([]EffectInstance(nil), b.Main[i].Effects...)
		out.Main[i].Passives = append([]EffectInstance(nil), b.Main[i].Passives...)
		out.Main[i].QueuedCasts = append([]QueuedCast(nil), b.Main[i].QueuedCasts...)
		out.Main[i].CastsRemaining = cloneCastsRemaining(b.Main[i].CastsRemaining)
	}
	for i := range out.Reserve {
		out.Reserve[i].Effects = append([]EffectInstance(nil), b.Reserve[i].Effects...)
		out.Reserve[i].Passives = append([]EffectInstance(nil), b.Reserve[i].Passives...)
		out.Reserve[i].QueuedCasts = append([]QueuedCast(nil), b.Reserve[i].QueuedCasts...)
		out.Reserve[i].CastsRemaining = cloneCastsRemaining(b.Reserve[i].CastsRemaining)
	}
	return out
}

func cloneCastsRemaining(m map[Slot]int) map[Slot]int {
	if m == nil {
		return nil
	}
	out := make(map[Slot]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// RoundInput is the immutable snapshot the Engine consumes each round.
type RoundInput struct {
	P1Main               [9]Tile
	P2Main               [9]Tile
	P3Main               [9]Tile
	P1Reserve            [2]Tile
	P2Reserve            [2]Tile
	P3Reserve            [2]Tile
	RoundNumber          int
	PriorityPlayer       Side
	LastCastActionBySide map[Side]*CastAction
	GameMode             string
}

// RoundOptions are the caller-tunable knobs for one execution.
type RoundOptions struct {
	CastDelayMS       int
	PostEffectDelayMS int
	ReactionDelayMS   int
	PostCastDelayMS   int
	OnStep            func(Snapshot, Event)
	Quiet             bool
	AddLog            func(string)
	RNG               RNG
}

// DefaultRoundOptions mirrors
func DefaultRoundOptions() RoundOptions {
	return RoundOptions{
		CastDelayMS:       700,
		PostEffectDelayMS: 0,
		ReactionDelayMS:   1000,
		PostCastDelayMS:   500,
	}
}

// Snapshot is the value-type board view handed to OnStep and embedded in
// RoundOutput; it never aliases engine-internal state.
type Snapshot struct {
	P1 Board
	P2 Board
	P3 Board
}

// RoundOutput is the final snapshot plus bookkeeping returned by
// ExecuteRound.
type RoundOutput struct {
	P1Main               [9]Tile
	P2Main               [9]Tile
	P3Main               [9]Tile
	P1Reserve            [2]Tile
	P2Reserve            [2]Tile
	P3Reserve            [2]Tile
	PriorityPlayer       Side
	Winner               *Side
	Draw                 bool
	LastCastActionBySide map[Side]*CastAction
	Events               []Event
}
