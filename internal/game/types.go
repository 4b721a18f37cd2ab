package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"salem-mystery/internal/board"
	"salem-mystery/internal/cards"
)

type State int

const (
	Lobby State = iota
	InProgress
	Finished
)

const MaxPlayers = 6

type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	MatchID string `json:"match_id"`
	Creator bool   `json:"creator"`

	// Order is the 1..N turn slot, zero until the match starts.
	Order       int          `json:"order"`
	Position    int          `json:"position"`
	PendingRoll int          `json:"-"` // zero means no roll this turn
	Hand        []cards.Card `json:"-"`

	// AccuseBarred is set after a failed accusation. Spectator additionally
	// strips roll/move/suspicion rights when the house rule is on.
	AccuseBarred bool `json:"-"`
	Spectator    bool `json:"-"`
}

// Suspicion is the ephemeral record of one announce/disprove round.
type Suspicion struct {
	AnnouncerID string
	Monster     string
	Victim      string
	Room        string

	// RespondentID is set while a respondent holding several qualifying
	// cards is being asked to choose which one to show.
	RespondentID string
	Choices      []cards.Card

	// nextIdx points past the pending respondent in the round's respondent
	// order, so a disconnect can resume the scan.
	nextIdx int
}

type Match struct {
	mu sync.Mutex

	ID        string    `json:"id"`
	Name      string    `json:"name"`
	State     State     `json:"-"`
	Players   []*Player `json:"players"`
	CreatedAt time.Time `json:"created_at"`

	// CurrentTurn is the turn-order value of the player allowed to act.
	CurrentTurn int `json:"current_turn"`

	Solution      cards.Solution `json:"-"`
	WitchHolderID string         `json:"-"`
	WitchCard     cards.Card     `json:"-"` // the solution card shown to the witch holder
	Pending       *Suspicion     `json:"-"`
	WinnerID      string         `json:"-"`
}

// Lock serializes every mutation of a match. All actions for one match go
// through this single critical section; different matches never contend.
func (m *Match) Lock()   { m.mu.Lock() }
func (m *Match) Unlock() { m.mu.Unlock() }

// NewMatch creates a lobby-state match owned by its creator player.
func NewMatch(name, creatorName string) (*Match, *Player) {
	m := &Match{
		ID:        uuid.NewString(),
		Name:      name,
		State:     Lobby,
		CreatedAt: time.Now(),
	}
	p := &Player{
		ID:       uuid.NewString(),
		Name:     creatorName,
		MatchID:  m.ID,
		Creator:  true,
		Position: board.StartCell,
	}
	m.Players = append(m.Players, p)
	return m, p
}

// AddPlayer joins a new player to a not-yet-started match.
func (m *Match) AddPlayer(name string) (*Player, error) {
	if m.State != Lobby {
		return nil, ErrMatchStarted
	}
	if len(m.Players) >= MaxPlayers {
		return nil, ErrMatchFull
	}
	p := &Player{
		ID:       uuid.NewString(),
		Name:     name,
		MatchID:  m.ID,
		Position: board.StartCell,
	}
	m.Players = append(m.Players, p)
	return p, nil
}

func (m *Match) Started() bool {
	return m.State != Lobby
}

// Snapshot copies the player list under the match lock.
func (m *Match) Snapshot() []*Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Player, len(m.Players))
	copy(out, m.Players)
	return out
}

func (m *Match) PlayerByID(id string) *Player {
	for _, p := range m.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (m *Match) playerByOrder(order int) *Player {
	for _, p := range m.Players {
		if p.Order == order {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose order equals the current pointer.
func (m *Match) CurrentPlayer() *Player {
	return m.playerByOrder(m.CurrentTurn)
}

// nextOrder advances cyclically to the next-higher order value present among
// the players, wrapping to the lowest.
func (m *Match) nextOrder(after int) int {
	next, lowest := 0, 0
	for _, p := range m.Players {
		if p.Order == 0 {
			continue
		}
		if lowest == 0 || p.Order < lowest {
			lowest = p.Order
		}
		if p.Order > after && (next == 0 || p.Order < next) {
			next = p.Order
		}
	}
	if next == 0 {
		return lowest
	}
	return next
}
