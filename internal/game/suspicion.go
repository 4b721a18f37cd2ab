package game

import "salem-mystery/internal/cards"

type scanResult struct {
	respondent *Player
	cards      []cards.Card
	nextIdx    int
	found      bool
}

// respondentsFor lists every other player in turn order starting right after
// the announcer, wrapping around.
func (m *Match) respondentsFor(announcerID string) []*Player {
	announcer := m.PlayerByID(announcerID)
	if announcer == nil {
		return nil
	}
	out := make([]*Player, 0, len(m.Players)-1)
	ord := announcer.Order
	for range m.Players {
		ord = m.nextOrder(ord)
		if ord == announcer.Order {
			break
		}
		if p := m.playerByOrder(ord); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// scanRespondents walks the respondent order from the given index until it
// finds someone connected whose hand can disprove the suspicion. Disconnected
// respondents are skipped so the round never stalls on them.
func (e *Engine) scanRespondents(m *Match, s *Suspicion, from int) scanResult {
	resp := m.respondentsFor(s.AnnouncerID)
	for i := from; i < len(resp); i++ {
		r := resp[i]
		if e.presence != nil && !e.presence.IsConnected(r.ID) {
			continue
		}
		qual := cards.Matching(r.Hand, s.Monster, s.Victim, s.Room)
		if len(qual) == 0 {
			continue
		}
		return scanResult{respondent: r, cards: qual, nextIdx: i + 1, found: true}
	}
	return scanResult{}
}

// RespondentGone resolves a pending suspicion whose designated respondent
// dropped: the scan resumes with the next respondent, or the round closes as
// undisproven. The second result is false when the disconnect touches no
// pending round.
func (e *Engine) RespondentGone(m *Match, playerID string) (Envelope, bool) {
	m.Lock()
	defer m.Unlock()

	s := m.Pending
	if s == nil || s.RespondentID != playerID {
		return Envelope{}, false
	}
	announcer := m.PlayerByID(s.AnnouncerID)

	res := e.scanRespondents(m, s, s.nextIdx)
	switch {
	case !res.found:
		m.Pending = nil
		return broadcast("suspicion_result", map[string]any{
			"player_name": announcer.Name,
			"result":      "undisproven",
		}), true
	case len(res.cards) == 1:
		m.Pending = nil
		return broadcast("suspicion_result", map[string]any{
			"player_name": announcer.Name,
			"disprover":   res.respondent.Name,
			"result":      "card_shown",
		}).withTarget(announcer.ID, "suspicion_disproved", map[string]any{
			"player_name": res.respondent.Name,
			"card":        res.cards[0],
		}), true
	default:
		s.RespondentID = res.respondent.ID
		s.Choices = res.cards
		s.nextIdx = res.nextIdx
		return Envelope{}.withTarget(res.respondent.ID, "disprove_request", map[string]any{
			"suspect_card": s.Monster,
			"victim_card":  s.Victim,
			"room_card":    s.Room,
			"cards":        res.cards,
		}), true
	}
}
