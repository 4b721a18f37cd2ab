package store

import (
	"sync"

	"salem-mystery/internal/game"
)

// MemoryStore keeps every match and player of the process. Lookups are
// consistent within one operation; match mutation happens under the match's
// own lock, not this one.
type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]*game.Match
	players map[string]*game.Player
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: map[string]*game.Match{},
		players: map[string]*game.Player{},
	}
}

func (s *MemoryStore) SaveMatch(m *game.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = m
}

func (s *MemoryStore) GetMatch(id string) (*game.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	return m, ok
}

func (s *MemoryStore) SavePlayer(p *game.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
}

// MatchForPlayer resolves a player id to its player and owning match.
func (s *MemoryStore) MatchForPlayer(playerID string) (*game.Match, *game.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[playerID]
	if !ok {
		return nil, nil, false
	}
	m, ok := s.matches[p.MatchID]
	if !ok {
		return nil, nil, false
	}
	return m, p, true
}

// ListOpen returns every joinable match: not started and under capacity.
func (s *MemoryStore) ListOpen() []*game.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*game.Match{}
	for _, m := range s.matches {
		if !m.Started() && len(m.Players) < game.MaxPlayers {
			out = append(out, m)
		}
	}
	return out
}
