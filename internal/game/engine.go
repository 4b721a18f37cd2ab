package game

import (
	"encoding/json"
	"math/rand"

	"salem-mystery/internal/board"
	"salem-mystery/internal/cards"
	"salem-mystery/internal/config"
)

// Presence tells the engine whether a player currently has a live
// connection, so a disconnected suspicion respondent can be skipped instead
// of stalling the round. A nil Presence treats everyone as connected.
type Presence interface {
	IsConnected(playerID string) bool
}

// Engine owns the per-match state machine. Every operation takes the match
// lock, either fully applies or fully rejects, and returns one Envelope.
type Engine struct {
	policy   config.Policy
	presence Presence
}

func NewEngine(policy config.Policy, presence Presence) *Engine {
	return &Engine{policy: policy, presence: presence}
}

// Handle dispatches one inbound frame to the matching operation. Unknown
// tags are answered on the personal slot only.
func (e *Engine) Handle(m *Match, p *Player, in Inbound) Envelope {
	m.Lock()
	defer m.Unlock()

	switch in.Action {
	case ActionStartMatch:
		return e.startMatch(m, p)
	case ActionRollDie:
		return e.rollDie(m, p)
	case ActionMovePlayer:
		var pl movePayload
		if err := json.Unmarshal(in.Data, &pl); err != nil {
			return fail(ErrInvalidDestination)
		}
		return e.movePlayer(m, p, pl.NewPosition)
	case ActionEndTurn:
		return e.endTurn(m, p)
	case ActionAnnounceSuspicion:
		var pl suspicionPayload
		if err := json.Unmarshal(in.Data, &pl); err != nil {
			return fail(ErrInvalidSuspicion)
		}
		return e.announceSuspicion(m, p, pl.SuspectCard, pl.VictimCard)
	case ActionRespondSuspicion:
		var pl respondPayload
		if err := json.Unmarshal(in.Data, &pl); err != nil {
			return fail(ErrInvalidDisproof)
		}
		return e.respondToSuspicion(m, p, pl.Card)
	case ActionAccuse:
		var pl accusePayload
		if err := json.Unmarshal(in.Data, &pl); err != nil {
			return fail(ErrUnknownCard)
		}
		return e.accuse(m, p, pl.SuspectCard, pl.VictimCard, pl.RoomCard)
	case ActionShowHand:
		return e.showHand(m, p)
	case ActionChatMessage:
		var pl chatPayload
		_ = json.Unmarshal(in.Data, &pl)
		return e.chat(p, pl.Message)
	default:
		return fail(ErrUnimplemented)
	}
}

// guard rejects game actions outside the in-progress state, and spectating
// failed accusers when the house rule is on.
func (e *Engine) guard(m *Match, p *Player) *Error {
	switch m.State {
	case Lobby:
		return ErrMatchNotStarted
	case Finished:
		return ErrMatchOver
	}
	if p != nil && p.Spectator {
		return ErrSpectator
	}
	return nil
}

func (e *Engine) startMatch(m *Match, p *Player) Envelope {
	if m.State != Lobby || !p.Creator || len(m.Players) < 2 {
		return fail(ErrInvalidStart)
	}

	perm := rand.Perm(len(m.Players))
	ids := make([]string, len(m.Players))
	for i, pl := range m.Players {
		pl.Order = perm[i] + 1
		pl.Position = board.StartCell
		pl.PendingRoll = 0
		ids[i] = pl.ID
	}

	hands, solution := cards.Deal(rand.New(rand.NewSource(rand.Int63())), ids)
	for _, pl := range m.Players {
		pl.Hand = hands[pl.ID]
	}
	m.Solution = solution
	m.CurrentTurn = 1
	m.State = InProgress

	// The Salem Witch: one random hand holds the marker and its owner gets a
	// private peek at one card of the solution.
	holder := m.Players[rand.Intn(len(m.Players))]
	m.WitchHolderID = holder.ID
	m.WitchCard = solution.Cards()[rand.Intn(3)]

	return broadcast("match_started", map[string]any{
		"players":      publicPlayers(m),
		"current_turn": m.CurrentTurn,
	})
}

func (e *Engine) rollDie(m *Match, p *Player) Envelope {
	if err := e.guard(m, p); err != nil {
		return fail(err)
	}
	if p.Order != m.CurrentTurn {
		return fail(ErrNotYourTurn)
	}

	die := rand.Intn(6) + 1
	p.PendingRoll = die
	reach := board.ReachableCells(p.Position, die)

	// The reachable set stays between the engine and the actor.
	return personal("rolled_die", map[string]any{
		"die":             die,
		"reachable_cells": reach,
	}).withBroadcast("die_rolled", map[string]any{
		"player_name": p.Name,
		"die":         die,
	})
}

func (e *Engine) movePlayer(m *Match, p *Player, dest int) Envelope {
	if err := e.guard(m, p); err != nil {
		return fail(err)
	}
	if p.Order != m.CurrentTurn {
		return fail(ErrNotYourTurn)
	}
	if p.PendingRoll == 0 || !board.CanReach(p.Position, p.PendingRoll, dest) {
		return fail(ErrInvalidDestination)
	}

	p.Position = dest
	p.PendingRoll = 0

	return personal("moved", map[string]any{
		"position": dest,
	}).withBroadcast("player_moved", map[string]any{
		"player_name": p.Name,
		"position":    dest,
	})
}

func (e *Engine) endTurn(m *Match, p *Player) Envelope {
	switch m.State {
	case Lobby:
		return fail(ErrMatchNotStarted)
	case Finished:
		return fail(ErrMatchOver)
	}
	if e.policy.StrictEndTurn && p.Order != m.CurrentTurn {
		return fail(ErrNotYourTurn)
	}

	finished := m.CurrentPlayer()
	if finished == nil {
		return fail(ErrNotYourTurn)
	}
	finished.PendingRoll = 0
	m.CurrentTurn = m.nextOrder(m.CurrentTurn)
	next := m.CurrentPlayer()

	return broadcast("turn_ended", map[string]any{
		"player_name": finished.Name,
		"next_order":  m.CurrentTurn,
	}).withTarget(next.ID, "your_turn", map[string]any{})
}

func (e *Engine) announceSuspicion(m *Match, p *Player, monster, victim string) Envelope {
	if err := e.guard(m, p); err != nil {
		return fail(err)
	}
	if m.Pending != nil {
		return fail(ErrInvalidSuspicion)
	}
	if c, ok := cards.ByName(monster); !ok || c.Kind != cards.KindMonster {
		return fail(ErrUnknownCard)
	}
	if c, ok := cards.ByName(victim); !ok || c.Kind != cards.KindVictim {
		return fail(ErrUnknownCard)
	}
	room, ok := board.RoomName(p.Position)
	if !ok {
		return fail(ErrInvalidSuspicion)
	}

	s := &Suspicion{AnnouncerID: p.ID, Monster: monster, Victim: victim, Room: room}
	announced := map[string]any{
		"player_name":  p.Name,
		"suspect_card": monster,
		"victim_card":  victim,
		"room_card":    room,
	}

	res := e.scanRespondents(m, s, 0)
	switch {
	case !res.found:
		announced["result"] = "undisproven"
		return broadcast("suspicion_announced", announced)
	case len(res.cards) == 1:
		announced["result"] = "card_shown"
		announced["disprover"] = res.respondent.Name
		return broadcast("suspicion_announced", announced).
			withTarget(p.ID, "suspicion_disproved", map[string]any{
				"player_name": res.respondent.Name,
				"card":        res.cards[0],
			})
	default:
		// The respondent holds several qualifying cards and picks one via
		// respond_to_suspicion.
		s.RespondentID = res.respondent.ID
		s.Choices = res.cards
		s.nextIdx = res.nextIdx
		m.Pending = s
		announced["result"] = "pending"
		return broadcast("suspicion_announced", announced).
			withTarget(res.respondent.ID, "disprove_request", map[string]any{
				"suspect_card": monster,
				"victim_card":  victim,
				"room_card":    room,
				"cards":        res.cards,
			}).
			withPersonal("suspicion_pending", map[string]any{
				"player_name": res.respondent.Name,
			})
	}
}

func (e *Engine) respondToSuspicion(m *Match, p *Player, cardName string) Envelope {
	if err := e.guard(m, nil); err != nil {
		return fail(err)
	}
	s := m.Pending
	if s == nil || s.RespondentID != p.ID {
		return fail(ErrInvalidDisproof)
	}
	card, ok := cards.ByName(cardName)
	if !ok {
		return fail(ErrInvalidDisproof)
	}
	valid := false
	for _, c := range s.Choices {
		if c == card {
			valid = true
			break
		}
	}
	if !valid {
		return fail(ErrInvalidDisproof)
	}

	announcer := m.PlayerByID(s.AnnouncerID)
	m.Pending = nil

	return personal("disproof_sent", map[string]any{
		"card": card,
	}).withTarget(announcer.ID, "suspicion_disproved", map[string]any{
		"player_name": p.Name,
		"card":        card,
	}).withBroadcast("suspicion_result", map[string]any{
		"player_name": announcer.Name,
		"disprover":   p.Name,
		"result":      "card_shown",
	})
}

func (e *Engine) accuse(m *Match, p *Player, monster, victim, room string) Envelope {
	switch m.State {
	case Lobby:
		return fail(ErrMatchNotStarted)
	case Finished:
		return fail(ErrMatchOver)
	}
	if p.AccuseBarred {
		return fail(ErrAccusationSpent)
	}
	for _, want := range []struct {
		name string
		kind cards.Kind
	}{{monster, cards.KindMonster}, {victim, cards.KindVictim}, {room, cards.KindRoom}} {
		if c, ok := cards.ByName(want.name); !ok || c.Kind != want.kind {
			return fail(ErrUnknownCard)
		}
	}

	if m.Solution.Matches(monster, victim, room) {
		m.WinnerID = p.ID
		if e.policy.EndOnWin {
			m.State = Finished
		}
		return broadcast("accusation_won", map[string]any{
			"player_name": p.Name,
			"solution": map[string]any{
				"suspect_card": m.Solution.Monster.Name,
				"victim_card":  m.Solution.Victim.Name,
				"room_card":    m.Solution.Room.Name,
			},
		}).withSystem("match_ended", map[string]any{
			"winner": p.Name,
		})
	}

	p.AccuseBarred = true
	if e.policy.FailedAccuserSpectates {
		p.Spectator = true
	}
	// The solution stays hidden after a failed accusation.
	return personal("accusation_result", map[string]any{
		"correct": false,
	}).withBroadcast("accusation_failed", map[string]any{
		"player_name":  p.Name,
		"suspect_card": monster,
		"victim_card":  victim,
		"room_card":    room,
	})
}

func (e *Engine) showHand(m *Match, p *Player) Envelope {
	if !m.Started() {
		return fail(ErrMatchNotStarted)
	}
	return personal("your_cards", map[string]any{"cards": p.Hand})
}

func (e *Engine) chat(p *Player, message string) Envelope {
	return broadcast("chat_message", map[string]any{
		"player_name": p.Name,
		"message":     message,
	})
}
