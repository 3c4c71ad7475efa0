package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	// swagger packages
	_ "neoblock/docs"
	httpapi "neoblock/internal/api/http"
	"neoblock/internal/api/ws"
	"neoblock/internal/config"
	"neoblock/internal/room"
	"neoblock/internal/store"
)

// @title NEOBLOCK API
// @version 1.0
// @description Rooms and live state for two-player wall-and-pawn matches (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	r := httpapi.NewRouter(rm, hub, cfg)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	if cfg.RoomTTL > 0 {
		sweeper := cron.New()
		if _, err := sweeper.AddFunc(sweepSchedule(cfg.RoomTTL), func() { rm.Sweep(time.Now()) }); err != nil {
			log.Fatal(err)
		}
		sweeper.Start()
		defer sweeper.Stop()
	}

	log.WithField("addr", cfg.HTTPAddr).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

// sweepSchedule checks four times per TTL, but not more than once a minute.
func sweepSchedule(ttl time.Duration) string {
	every := ttl / 4
	if every < time.Minute {
		every = time.Minute
	}
	return "@every " + every.String()
}
