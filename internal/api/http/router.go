package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"neoblock/internal/api/ws"
	"neoblock/internal/config"
	"neoblock/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live room state
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.POST("/rooms/:code/join", JoinRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/rooms/:code/move", MoveHandler(rm))
	r.POST("/rooms/:code/wall", WallHandler(rm))
	r.POST("/rooms/:code/reset", ResetHandler(rm))
	r.PUT("/rooms/:code/state", ReplaceStateHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/presets", PresetsHandler(cfg))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
