package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salem-mystery/internal/game"
	"salem-mystery/internal/store"
)

// The match endpoints are a thin boundary: they create and look up records
// and enforce the join capacity rule, nothing else. Game decisions live in
// the engine.

func ListMatchesHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := []MatchSummary{}
		for _, m := range st.ListOpen() {
			m.Lock()
			out = append(out, MatchSummary{
				MatchID:     m.ID,
				MatchName:   m.Name,
				PlayerCount: len(m.Players),
			})
			m.Unlock()
		}
		c.JSON(http.StatusOK, gin.H{"matches": out})
	}
}

func CreateMatchHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMatchRequest
		if err := c.BindJSON(&req); err != nil || req.MatchName == "" || req.Nickname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "match_name and nickname required"})
			return
		}
		m, p := game.NewMatch(req.MatchName, req.Nickname)
		st.SaveMatch(m)
		st.SavePlayer(p)
		c.JSON(http.StatusCreated, MatchJoined{
			MatchID:   m.ID,
			MatchName: m.Name,
			PlayerID:  p.ID,
			Nickname:  p.Name,
			Creator:   true,
		})
	}
}

func JoinMatchHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinMatchRequest
		if err := c.BindJSON(&req); err != nil || req.MatchID == "" || req.Nickname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "match_id and nickname required"})
			return
		}
		m, ok := st.GetMatch(req.MatchID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		m.Lock()
		p, err := m.AddPlayer(req.Nickname)
		m.Unlock()
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		st.SavePlayer(p)
		c.JSON(http.StatusOK, MatchJoined{
			MatchID:   m.ID,
			MatchName: m.Name,
			PlayerID:  p.ID,
			Nickname:  p.Name,
			Creator:   false,
		})
	}
}

func MatchDetailHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := st.GetMatch(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
		m.Lock()
		detail := MatchDetail{
			MatchID:   m.ID,
			MatchName: m.Name,
			Started:   m.Started(),
		}
		for _, p := range m.Players {
			detail.Players = append(detail.Players, PlayerDetail{
				ID:     p.ID,
				Name:   p.Name,
				Order:  p.Order,
				InTurn: m.Started() && p.Order == m.CurrentTurn,
			})
		}
		m.Unlock()
		c.JSON(http.StatusOK, detail)
	}
}
