package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Preset is one of the board setups offered to players.
type Preset struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	BoardSize   int    `json:"boardSize"`
	MaxWalls    int    `json:"maxWalls"`
}

var Presets = []Preset{
	{Name: "classic", Label: "CLASSIC", Description: "Standard Warfare", BoardSize: 15, MaxWalls: 7},
	{Name: "blitz", Label: "BLITZ", Description: "Close Quarters", BoardSize: 8, MaxWalls: 4},
	{Name: "sudden-death", Label: "SUDDEN DEATH", Description: "Instant Conflict", BoardSize: 6, MaxWalls: 3},
}

// PresetByName looks a preset up case-insensitively.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

type Config struct {
	HTTPAddr string

	// defaults for rooms created without an explicit size
	BoardSize int
	MaxWalls  int

	LogLevel    string
	SyncTimeout time.Duration
	AdvisoryTTL time.Duration
	RoomTTL     time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.WithField("key", key).Warnf("ignoring non-integer value %q", v)
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.WithField("key", key).Warnf("ignoring invalid duration %q", v)
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		BoardSize:   getenvInt("NEOBLOCK_BOARD_SIZE", 15),
		MaxWalls:    getenvInt("NEOBLOCK_MAX_WALLS", 7),
		LogLevel:    getenv("NEOBLOCK_LOG_LEVEL", "info"),
		SyncTimeout: getenvDuration("NEOBLOCK_SYNC_TIMEOUT", 5*time.Second),
		AdvisoryTTL: getenvDuration("NEOBLOCK_ADVISORY_TTL", 3*time.Second),
		RoomTTL:     getenvDuration("NEOBLOCK_ROOM_TTL", 2*time.Hour),
	}
}

// ConfigureLogging applies LogLevel to the standard logrus logger.
func (c Config) ConfigureLogging() {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", c.LogLevel)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
