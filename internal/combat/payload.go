package combat

// Payload builder. Turns a spell spec plus caster/board context into
// a runtime payload: resolved targets, a base value (with dice rolls
// recorded for reproducibility), and the post-hook table carried through
// unresolved for the Round Executor to apply after damage/heal lands.

// TargetedPayload is one resolved target, tagged with the index and type of
// the target descriptor that produced it. The amount applied to it is
// computed later by the augment/armor/void-shield pipeline (computeDamage
// in cast.go).
type TargetedPayload struct {
	Target          TileRef
	DescriptorIndex int
	DescriptorType  TargetType
}

// RuntimePayload is the payload builder's output: everything the
// cast-resolution loop needs to apply a cast, short of the final
// armor/augment math which depends on per-cast state only the runtime
// tracks (first-strike-used, etc).
type RuntimePayload struct {
	Action    string // damage|heal|energy|effect_only|none
	BaseValue int
	RollInfo  *RollInfo
	Targets   []TargetedPayload
	Effects   []string
	Post      PostHooks
}

func actionForFormula(f FormulaType) string {
	switch f {
	case FormulaDamage, FormulaAttackPower, FormulaRoll:
		return "damage"
	case FormulaHeal, FormulaHealPower:
		return "heal"
	case FormulaNone:
		return "effect_only"
	default:
		return "none"
	}
}

// buildPayload builds a spell's runtime payload. bonusDamage comes from the
// caller's bonus_options; caster spell power is read from the live tile so
// augment stacking (applied later, in the cast-resolution pipeline)
// composes correctly.
func (rt *Runtime) buildPayload(spec SpellDef, caster TileRef, bonusDamage int) RuntimePayload {
	casterTile := rt.tile(caster)
	action := actionForFormula(spec.Formula.Type)

	base := spec.Formula.Value + bonusDamage
	var rollInfo *RollInfo

	if spec.Formula.Type == FormulaRoll && spec.Formula.Die > 0 {
		roll := rt.RNG.Intn(spec.Formula.Die) + 1
		total := spec.Formula.Value + roll
		rollInfo = &RollInfo{Die: spec.Formula.Die, Base: spec.Formula.Value, Roll: roll, Total: total}
		base = total + bonusDamage
	}

	if (action == "damage" || action == "heal") && !spec.Formula.IgnoreSpellPower && casterTile != nil {
		base += casterTile.CurrentSpellPower
	}

	var targets []TargetedPayload
	for di, ts := range spec.Targets {
		for _, ref := range rt.resolveTargets(ts, caster) {
			targets = append(targets, TargetedPayload{Target: ref, DescriptorIndex: di, DescriptorType: ts.Type})
		}
	}

	return RuntimePayload{
		Action:    action,
		BaseValue: base,
		RollInfo:  rollInfo,
		Targets:   targets,
		Effects:   spec.Effects,
		Post:      spec.Post,
	}
}

// buildConeOfCold forces targets = [frontTwoRows enemy].7
// step 12d's coneOfCold special case.
func (rt *Runtime) buildConeOfCold(spec SpellDef, caster TileRef, bonusDamage int) RuntimePayload {
	forced := spec
	forced.Targets = []TargetSpec{{Type: TargetFrontTwoRows, Side: TargetEnemy}}
	return rt.buildPayload(forced, caster, bonusDamage)
}

// buildCopyCat rebuilds the immediate previous enemy cast's payload with
// the current caster as source.
func (rt *Runtime) buildCopyCat(caster TileRef, bonusDamage int) (RuntimePayload, string, bool) {
	enemy := rt.opposingSide(caster.Side)
	action := rt.LastCastActionBySide[enemy]
	if action == nil {
		return RuntimePayload{Action: "none"}, "", false
	}
	spell, ok := rt.Catalog.Spell(action.SpellID)
	if !ok {
		return RuntimePayload{Action: "none"}, "", false
	}
	return rt.buildPayload(spell, caster, bonusDamage), spell.ID, true
}
