package combat

import "fightboard/internal/combat/errkind"

// ExecuteRound drives the fifteen ordered phases of a single round: a pure
// function from (RoundInput, Catalog, RoundOptions) to RoundOutput — one
// function, a strict phase order, side effects surfaced only through
// emitted events.
func ExecuteRound(input RoundInput, catalog Catalog, opts RoundOptions) RoundOutput {
	if catalog == nil {
		panic(errkind.WrapContract(errkind.Contract("nil Catalog"), "ExecuteRound requires a Catalog"))
	}
	rt := newRuntime(input, catalog, opts)

	rt.initializeRuntime()          // phase 2
	rt.clearQueuedCasts()           // phase 3
	rt.applyFrontlineAndRearguard() // phase 3
	rt.runStartOfRoundPulses()      // phase 4
	rt.runOnRoundStartEffects()     // phase 5
	rt.emit(EventPostEffectDelay, DurationPayload{DurationMS: rt.opts.PostEffectDelayMS}) // phase 6
	rt.runEnergyIncrement()         // phase 7
	rt.runAcceptContractPassive()   // phase 8
	rt.runReapCheck()               // phase 9

	for _, side := range rt.Sides {
		rt.RunAutoCastPlanner(side) // phase 10
	}
	pending := rt.CollectPendingCasts() // phase 11

	rt.runCastResolutionLoop(pending) // phase 12

	if !rt.gameEnded {
		for _, side := range rt.Sides {
			rt.DecayDurations(side) // phase 13
		}
		rt.evaluateWinner() // phase 14
		if rt.winner != nil {
			rt.gameEnded = true
		}
	}

	return rt.buildOutput() // phase 15
}

func newRuntime(input RoundInput, catalog Catalog, opts RoundOptions) *Runtime {
	sides := []Side{SideP1, SideP2}
	boards := map[Side]*Board{
		SideP1: &Board{Main: input.P1Main, Reserve: input.P1Reserve},
		SideP2: &Board{Main: input.P2Main, Reserve: input.P2Reserve},
	}
	if input.GameMode == "ffa3" {
		sides = append(sides, SideP3)
		boards[SideP3] = &Board{Main: input.P3Main, Reserve: input.P3Reserve}
	}
	// Deep-clone every board so mutation never leaks into the caller's
	// RoundInput.
	for s, b := range boards {
		cloned := b.Clone()
		boards[s] = &cloned
	}

	last := map[Side]*CastAction{}
	for k, v := range input.LastCastActionBySide {
		last[k] = v
	}

	rng := opts.RNG
	if rng == nil {
		rng = NewSeededRNG(input.RoundNumber, 0)
	}

	return &Runtime{
		Boards:               boards,
		Sides:                sides,
		Catalog:              catalog,
		RNG:                  rng,
		RoundNumber:          input.RoundNumber,
		PriorityPlayer:       input.PriorityPlayer,
		LastCastActionBySide: last,
		GameMode:             input.GameMode,
		onStep:               opts.OnStep,
		addLog:               opts.AddLog,
		quiet:                opts.Quiet,
		opts:                 opts,
	}
}

// initializeRuntime is phase 2: cache per-tile identity, set missing
// current_* fields from hero base, apply starting_effects and
// fixed_positional reserve bonuses exactly once per battle, and reset
// per-round augment flags.
func (rt *Runtime) initializeRuntime() {
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		for i := range b.Main {
			rt.initTile(TileRef{Side: side, Zone: ZoneMain, Index: i})
		}
		for i := range b.Reserve {
			rt.initTile(TileRef{Side: side, Zone: ZoneReserve, Index: i})
		}
	}
	rt.applyAttunementAndTacticalSwap()
}

func (rt *Runtime) initTile(ref TileRef) {
	t := rt.tile(ref)
	if t == nil || t.Empty() {
		return
	}
	hero, ok := rt.Catalog.Hero(t.HeroID)
	if !ok {
		rt.log("missing catalog entry for hero " + t.HeroID)
		return
	}

	if !t.Initialized {
		t.CurrentHealth = hero.BaseHealth
		t.BaseHealthSnapshot = hero.BaseHealth
		t.CurrentArmor = hero.BaseArmor
		t.CurrentSpeed = hero.BaseSpeed
		t.CurrentSpellPower = hero.BaseSpellPower
		t.CastsRemaining = map[Slot]int{}
		for slot, sp := range hero.Spells {
			t.CastsRemaining[slot] = sp.Casts
		}
		if len(hero.StartingEffects) > 0 {
			rt.ApplyEffects(ref, hero.StartingEffects, ref)
		}
		t.Initialized = true
	}

	if ref.Zone == ZoneReserve && hero.Augments.FixedPositional && !t.ReserveBonusApplied {
		t.CurrentArmor += hero.ReserveModifiers.Armor
		t.CurrentSpeed += hero.ReserveModifiers.Speed
		t.CurrentSpellPower += hero.ReserveModifiers.SpellPower
		t.ReserveBonusApplied = true
	}

	if rt.RoundNumber == 1 {
		t.FirstStrikeUsed = false
		t.WarmUpUsed = false
	}
	if t.EchoCasterPending {
		slot := RowOf(ref.Side, ref.Index)
		if t.CastsRemaining != nil {
			t.CastsRemaining[slot]++
		}
		t.EchoCasterPending = false
	}
	if t.ArcaneExchangePending {
		t.ArcaneExchangeCharged = true
		t.ArcaneExchangePending = false
	}
	if t.PredatorPacePending {
		rt.ApplyEffects(ref, []string{"Predator's Pace"}, ref)
		t.PredatorPacePending = false
	}

	rt.RecomputeModifiers(ref)
}

// clearQueuedCasts is phase 3: drop last round's leftover QueuedCast
// records without touching casts_remaining, which persists across rounds.
func (rt *Runtime) clearQueuedCasts() {
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		for i := range b.Main {
			b.Main[i].QueuedCasts = nil
		}
	}
}

// runEnergyIncrement is phase 7: emit EnergyIncrement before mutation, then
// add current_speed to current_energy (clamped), Main boards only.
func (rt *Runtime) runEnergyIncrement() {
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		for i := range b.Main {
			t := &b.Main[i]
			if t.Empty() || t.Dead {
				continue
			}
			ref := TileRef{Side: side, Zone: ZoneMain, Index: i}
			rt.emit(EventEnergyIncrement, EnergyIncrementPayload{Target: ref, Amount: t.CurrentSpeed})
			rt.grantEnergy(ref, t.CurrentSpeed)
		}
	}
}

// runAcceptContractPassive is phase 8: heroes whose energy just crossed
// from <=4 to >4 get Marked if an enemy holds Accept Contract.
func (rt *Runtime) runAcceptContractPassive() {
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		enemy := rt.opposingSide(side)
		if !rt.sideHasPassive(enemy, "Accept Contract") {
			continue
		}
		for i := range b.Main {
			t := &b.Main[i]
			if t.Empty() || t.Dead || t.MarkedByAcceptContract {
				continue
			}
			before := t.CurrentEnergy - t.CurrentSpeed
			if before <= 4 && t.CurrentEnergy > 4 {
				ref := TileRef{Side: side, Zone: ZoneMain, Index: i}
				rt.ApplyEffects(ref, []string{"Marked"}, ref)
				t.MarkedByAcceptContract = true
			}
		}
	}
}

func (rt *Runtime) sideHasPassive(side Side, name string) bool {
	b := rt.Boards[side]
	if b == nil {
		return false
	}
	for i := range b.Main {
		t := &b.Main[i]
		if t.Empty() || t.Dead {
			continue
		}
		hero, ok := rt.Catalog.Hero(t.HeroID)
		if !ok {
			continue
		}
		for _, p := range hero.Passives {
			if p == name {
				return true
			}
		}
	}
	return false
}

// runReapCheck is phase 9: any hero whose HP just crossed >2 -> <=2 is
// executed by an enemy holding Reap.
func (rt *Runtime) runReapCheck() {
	for _, side := range rt.Sides {
		b := rt.Boards[side]
		enemy := rt.opposingSide(side)
		if !rt.sideHasPassive(enemy, "Reap") {
			for i := range b.Main {
				b.Main[i].LastReapObservedHealth = b.Main[i].CurrentHealth
			}
			continue
		}
		for i := range b.Main {
			t := &b.Main[i]
			if t.Empty() || t.Dead {
				continue
			}
			ref := TileRef{Side: side, Zone: ZoneMain, Index: i}
			crossed := t.LastReapObservedHealth > 2 && t.CurrentHealth <= 2
			t.LastReapObservedHealth = t.CurrentHealth
			if crossed {
				rt.damageTile(ref, 999, TileRef{Side: enemy})
				t.LastReapObservedHealth = t.CurrentHealth
				rt.processImmediateDeaths([]TileRef{ref})
			}
		}
	}
}

// evaluateWinner is phase 14: the last side with any alive Main-board hero
// wins; zero sides remaining is a Draw. Reserves never keep a side alive.
func (rt *Runtime) evaluateWinner() {
	var aliveSides []Side
	for _, side := range rt.Sides {
		if len(rt.aliveInZone(side, ZoneMain)) > 0 {
			aliveSides = append(aliveSides, side)
		}
	}
	if len(aliveSides) == 1 {
		w := aliveSides[0]
		rt.winner = &w
	} else if len(aliveSides) == 0 {
		rt.draw = true
	}
}

func (rt *Runtime) buildOutput() RoundOutput {
	out := RoundOutput{
		PriorityPlayer:       rt.PriorityPlayer,
		Winner:               rt.winner,
		Draw:                 rt.draw,
		LastCastActionBySide: rt.LastCastActionBySide,
		Events:               rt.Events,
	}
	if b := rt.Boards[SideP1]; b != nil {
		out.P1Main, out.P1Reserve = b.Main, b.Reserve
	}
	if b := rt.Boards[SideP2]; b != nil {
		out.P2Main, out.P2Reserve = b.Main, b.Reserve
	}
	if b := rt.Boards[SideP3]; b != nil {
		out.P3Main, out.P3Reserve = b.Main, b.Reserve
	}

	if rt.gameEnded && rt.winner != nil {
		rt.emit(EventGameEnd, GameEndPayload{Winner: *rt.winner})
	} else {
		rt.emit(EventRoundComplete, RoundCompletePayload{Winner: rt.winner, Draw: rt.draw})
	}
	out.Events = rt.Events
	return out
}
