package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"neoblock/internal/room"
)

// Seat is what the server hands back after creating or joining a room.
type Seat struct {
	RoomCode string        `json:"roomCode"`
	PlayerID string        `json:"playerId"`
	Room     room.Snapshot `json:"room"`
}

// Lobby talks to the room endpoints of a server.
type Lobby struct {
	base string
	http *http.Client
}

func NewLobby(serverURL string) *Lobby {
	return &Lobby{
		base: strings.TrimSuffix(serverURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *Lobby) Create(ctx context.Context, name, preset string) (Seat, error) {
	var out Seat
	err := l.post(ctx, "/rooms", map[string]string{"playerName": name, "preset": preset}, &out)
	return out, err
}

// Join takes the free seat in code, or the seat already held by playerID.
func (l *Lobby) Join(ctx context.Context, code, name, playerID string) (Seat, error) {
	var out Seat
	err := l.post(ctx, "/rooms/"+room.NormalizeCode(code)+"/join", map[string]string{"playerName": name, "playerId": playerID}, &out)
	return out, err
}

func (l *Lobby) post(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.base+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("%s %s: %d %s", http.MethodPost, path, resp.StatusCode, e.Error)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
