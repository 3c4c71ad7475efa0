package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neoblock/internal/config"
)

// PresetsHandler lists the board presets and the server defaults.
// @Summary List board presets
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /presets [get]
func PresetsHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"presets": config.Presets,
			"defaults": gin.H{
				"boardSize": cfg.BoardSize,
				"maxWalls":  cfg.MaxWalls,
			},
		})
	}
}
