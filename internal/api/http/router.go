package http

import (
	"github.com/gin-gonic/gin"

	"salem-mystery/internal/api/ws"
	"salem-mystery/internal/store"
)

func SetupRouter(st *store.MemoryStore, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket attach for a joined player
	r.GET("/ws/:player_id", hub.HandleWS)

	// --- MATCH ENDPOINTS ---
	r.GET("/matches", ListMatchesHandler(st))
	r.POST("/matches", CreateMatchHandler(st))
	r.PUT("/matches", JoinMatchHandler(st))
	r.GET("/matches/:id", MatchDetailHandler(st))

	return r
}
