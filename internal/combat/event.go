package combat

import "encoding/json"

// EventType is the closed set of observable event kinds the Engine emits:
// a small uint8-backed tag plus a typed JSON payload.
type EventType uint8

const (
	EventEffectPulse EventType = iota
	EventEnergyIncrement
	EventEffectPreCast
	EventEffectApplied
	EventPreCast
	EventCast
	EventPostCastWait
	EventPostEffectDelay
	EventOnRoundStartTriggered
	EventPulsesApplied
	EventReactionsApplied
	EventCastApplied
	EventDeathApplied
	EventPreDeath
	EventMoveRowBack
	EventMoveAllBack
	EventMoveToFrontmostAvailable
	EventSwapWithReserve
	EventReduceRowCasts
	EventIncreaseRowCasts
	EventBountyActivated
	EventRoundComplete
	EventGameEnd
	EventRowChangeApplied
)

func (t EventType) String() string {
	switch t {
	case EventEffectPulse:
		return "EffectPulse"
	case EventEnergyIncrement:
		return "EnergyIncrement"
	case EventEffectPreCast:
		return "EffectPreCast"
	case EventEffectApplied:
		return "EffectApplied"
	case EventPreCast:
		return "PreCast"
	case EventCast:
		return "Cast"
	case EventPostCastWait:
		return "PostCastWait"
	case EventPostEffectDelay:
		return "PostEffectDelay"
	case EventOnRoundStartTriggered:
		return "OnRoundStartTriggered"
	case EventPulsesApplied:
		return "PulsesApplied"
	case EventReactionsApplied:
		return "ReactionsApplied"
	case EventCastApplied:
		return "CastApplied"
	case EventDeathApplied:
		return "DeathApplied"
	case EventPreDeath:
		return "PreDeath"
	case EventMoveRowBack:
		return "MoveRowBack"
	case EventMoveAllBack:
		return "MoveAllBack"
	case EventMoveToFrontmostAvailable:
		return "MoveToFrontmostAvailable"
	case EventSwapWithReserve:
		return "SwapWithReserve"
	case EventReduceRowCasts:
		return "ReduceRowCasts"
	case EventIncreaseRowCasts:
		return "IncreaseRowCasts"
	case EventBountyActivated:
		return "BountyActivated"
	case EventRoundComplete:
		return "RoundComplete"
	case EventGameEnd:
		return "GameEnd"
	case EventRowChangeApplied:
		return "RowChangeApplied"
	default:
		return "Unknown"
	}
}

// EventVersion lets consumers detect payload-shape changes across engine
// releases.
const EventVersion uint8 = 1

// Event is one tagged record in the observable EventStream.
type Event struct {
	Version  uint8
	Type     EventType
	Sequence uint64
	Round    int
	Payload  json.RawMessage
}

func encodePayload(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("{}")
	}
	return json.RawMessage(b)
}

func newEvent(seq uint64, round int, t EventType, payload any) Event {
	return Event{
		Version:  EventVersion,
		Type:     t,
		Sequence: seq,
		Round:    round,
		Payload:  encodePayload(payload),
	}
}

// Typed payloads, one per EventType that carries data.

type EffectPulsePayload struct {
	Target          TileRef
	EffectName      string
	Action          string // damage|heal|energy
	Amount          int
	Phase           string // primary|secondary
	EffectIndex     *int   `json:"effect_index,omitempty"`
	ReactionIndex   *int   `json:"reaction_index,omitempty"`
	OwnerBoardName  *Side  `json:"owner_board_name,omitempty"`
	OwnerIndex      *int   `json:"owner_index,omitempty"`
}

type EnergyIncrementPayload struct {
	Target     TileRef
	Amount     int
	EffectName string `json:"effect_name,omitempty"`
}

type EffectPreCastPayload struct {
	Target        TileRef
	EffectName    string
	Amount        int
	Scale         float64
	ReactionIndex *int `json:"reaction_index,omitempty"`
}

type EffectAppliedPayload struct {
	Target     TileRef
	EffectName string
}

type PreCastPayload struct {
	Caster  TileRef
	SpellID string
}

type CastResult struct {
	Target TileRef
	Action string
	Amount int
}

type CastPayload struct {
	Caster              TileRef
	SpellID             string
	Results             []CastResult
	RollInfo            *RollInfo `json:"roll_info,omitempty"`
	AnimationMS         int       `json:"animation_ms,omitempty"`
	SecondaryAnimationMS int      `json:"secondary_animation_ms,omitempty"`
	CopiedSpellID       string    `json:"copied_spell_id,omitempty"`
}

type RollInfo struct {
	Die   int
	Base  int
	Roll  int
	Total int
}

type DurationPayload struct{ DurationMS int }

type OnRoundStartTriggeredPayload struct {
	EffectName string
	Source     TileRef
}

type MovePayload struct {
	Target TileRef
	From   Slot
	To     Slot
}

type SwapWithReservePayload struct {
	MainTile    TileRef
	ReserveTile TileRef
}

type RowCastsPayload struct {
	Board  Side
	Index  int
	Slot   Slot
	Before int
	After  int
}

type BountyActivatedPayload struct {
	Killer        TileRef
	Victim        TileRef
	Heal          int
	AppliedEffect string `json:"applied_effect,omitempty"`
}

type RoundCompletePayload struct {
	Winner *Side
	Draw   bool
}

type GameEndPayload struct{ Winner Side }
