package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"salem-mystery/internal/config"
	"salem-mystery/internal/game"
	"salem-mystery/internal/store"
)

// conn is the slice of *websocket.Conn the hub needs.
type conn interface {
	WriteJSON(v any) error
	Close() error
}

// outbound is the wire frame for one delivered slot. The channel field keeps
// system lifecycle messages apart from gameplay broadcasts.
type outbound struct {
	Channel string         `json:"channel"`
	Action  string         `json:"action"`
	Data    map[string]any `json:"data"`
}

// Hub routes engine envelopes to live connections. It keeps exactly two
// maps, player id to connection and match id to player ids, both mutated
// only on connect and disconnect.
type Hub struct {
	mu      sync.RWMutex
	players map[string]conn
	matches map[string]map[string]struct{}

	store  *store.MemoryStore
	engine *game.Engine
}

func NewHub(st *store.MemoryStore, policy config.Policy) *Hub {
	h := &Hub{
		players: make(map[string]conn),
		matches: make(map[string]map[string]struct{}),
		store:   st,
	}
	h.engine = game.NewEngine(policy, h)
	return h
}

// IsConnected implements game.Presence.
func (h *Hub) IsConnected(playerID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.players[playerID]
	return ok
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	playerID := c.Param("player_id")
	m, p, ok := h.store.MatchForPlayer(playerID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	wc, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade connection: %v", err)
		return
	}

	h.register(m.ID, p.ID, wc)
	defer func() {
		h.unregister(m.ID, p.ID, wc)
		_ = wc.Close()
		h.Deliver(m.ID, p.ID, h.engine.PlayerDisconnected(m, p))
		if env, pending := h.engine.RespondentGone(m, p.ID); pending {
			h.Deliver(m.ID, p.ID, env)
		}
	}()

	if m.Started() {
		// Reconnect replay: current state, own hand, witch status.
		h.Deliver(m.ID, p.ID, h.engine.PlayerState(m))
		h.Deliver(m.ID, p.ID, h.engine.ShowHand(m, p))
		h.Deliver(m.ID, p.ID, h.engine.WitchStatus(m, p))
	} else {
		h.Deliver(m.ID, p.ID, h.engine.PlayerConnected(m, p))
	}

	for {
		var in game.Inbound
		if err := wc.ReadJSON(&in); err != nil {
			log.Printf("read from player %s: %v", p.ID, err)
			break
		}
		env := h.engine.Handle(m, p, in)
		h.Deliver(m.ID, p.ID, env)
		if in.Action == game.ActionStartMatch && env.Broadcast.Action == "match_started" {
			h.revealHands(m)
		}
		h.Deliver(m.ID, p.ID, h.engine.PlayerState(m))
	}
}

// revealHands sends every player their own dealt hand, and the witch holder
// their peeked solution card, right after the match starts.
func (h *Hub) revealHands(m *game.Match) {
	for _, pl := range m.Snapshot() {
		h.Deliver(m.ID, pl.ID, h.engine.ShowHand(m, pl))
		h.Deliver(m.ID, pl.ID, h.engine.WitchStatus(m, pl))
	}
}

func (h *Hub) register(matchID, playerID string, c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.players[playerID] = c
	if _, ok := h.matches[matchID]; !ok {
		h.matches[matchID] = make(map[string]struct{})
	}
	h.matches[matchID][playerID] = struct{}{}
}

func (h *Hub) unregister(matchID, playerID string, c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.players[playerID] != c {
		return // a newer connection took over
	}
	delete(h.players, playerID)
	delete(h.matches[matchID], playerID)
	if len(h.matches[matchID]) == 0 {
		delete(h.matches, matchID)
	}
}

// Deliver fans one envelope out to its recipients. Empty slots are no-ops,
// and a targeted message to an absent player is dropped, not queued. Writes
// are serialized by the hub lock.
func (h *Hub) Deliver(matchID, actorID string, env game.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !env.Personal.Empty() {
		h.send(actorID, "personal", env.Personal)
	}
	if !env.Broadcast.Empty() {
		for id := range h.matches[matchID] {
			h.send(id, "broadcast", env.Broadcast)
		}
	}
	if !env.Targeted.Empty() && env.Targeted.PlayerID != "" {
		h.send(env.Targeted.PlayerID, "targeted", env.Targeted.Message)
	}
	if !env.System.Empty() {
		for id := range h.matches[matchID] {
			h.send(id, "system", env.System)
		}
	}
}

func (h *Hub) send(playerID, channel string, msg game.Message) {
	c, ok := h.players[playerID]
	if !ok {
		return
	}
	if err := c.WriteJSON(outbound{Channel: channel, Action: msg.Action, Data: msg.Data}); err != nil {
		log.Printf("write to player %s: %v", playerID, err)
		// The read loop notices the closed connection and unregisters it.
		_ = c.Close()
	}
}
