package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoblock/internal/config"
	"neoblock/internal/room"
	"neoblock/internal/shared"
	"neoblock/internal/store"
)

func newServer(t *testing.T) (*httptest.Server, *room.Manager, *Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rm := room.NewManager(store.NewMemoryStore(), config.Config{BoardSize: 8, MaxWalls: 4}, nil)
	hub := NewHub(rm)
	rm.SetHub(hub)

	r := gin.New()
	r.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, rm, hub
}

func dial(t *testing.T, srv *httptest.Server, code, uid string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?room_code=" + code + "&uid=" + uid
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func next(t *testing.T, conn *websocket.Conn, action string) shared.Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var env shared.Envelope
		require.NoError(t, conn.ReadJSON(&env))
		if env.Action == action {
			return env
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, action, id string, data interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(shared.Envelope{Action: action, ID: id, Data: raw}))
}

func TestHandleWSRejectsUnknownRoom(t *testing.T) {
	srv, _, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/ws?room_code=NOPE42")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMoveOverWebsocket(t *testing.T) {
	srv, rm, hub := newServer(t)
	snap, host, err := rm.CreateRoom("ana", room.Settings{})
	require.NoError(t, err)
	_, guest, err := rm.JoinRoom(snap.Code, "ben", "")
	require.NoError(t, err)

	hc := dial(t, srv, strings.ToLower(snap.Code), host.ID)
	gc := dial(t, srv, snap.Code, guest.ID)

	var first room.Snapshot
	require.NoError(t, json.Unmarshal(next(t, hc, shared.ActionState).Data, &first))
	assert.Equal(t, room.StatusPlaying, first.Status)
	next(t, gc, shared.ActionState)
	require.Eventually(t, func() bool { return hub.Peers(snap.Code) == 2 }, time.Second, 10*time.Millisecond)

	send(t, hc, shared.ActionMove, "req-1", shared.Move{Row: 6, Col: 4})

	var ack shared.Ack
	require.NoError(t, json.Unmarshal(next(t, hc, shared.ActionAck).Data, &ack))
	assert.Equal(t, shared.Ack{ID: "req-1", Applied: true}, ack)

	var seen room.Snapshot
	require.NoError(t, json.Unmarshal(next(t, gc, shared.ActionState).Data, &seen))
	assert.Equal(t, 6, seen.State.Players[0].Row)
	assert.Equal(t, 1, seen.State.CurrentPlayer)
}

func TestRejectedActionAcksWithCode(t *testing.T) {
	srv, rm, _ := newServer(t)
	snap, _, err := rm.CreateRoom("ana", room.Settings{})
	require.NoError(t, err)
	_, guest, err := rm.JoinRoom(snap.Code, "ben", "")
	require.NoError(t, err)

	gc := dial(t, srv, snap.Code, guest.ID)
	next(t, gc, shared.ActionState)

	send(t, gc, shared.ActionWall, "w1", shared.Wall{Row: 3, Col: 3, Orientation: "h"})
	var ack shared.Ack
	require.NoError(t, json.Unmarshal(next(t, gc, shared.ActionAck).Data, &ack))
	assert.Equal(t, "w1", ack.ID)
	assert.False(t, ack.Applied)
	assert.Equal(t, "not_your_turn", ack.Error)

	send(t, gc, "teleport", "x1", nil)
	require.NoError(t, json.Unmarshal(next(t, gc, shared.ActionAck).Data, &ack))
	assert.Equal(t, "unknown_action", ack.Error)
}

func TestJoiningMidMatchNeverSeesOlderState(t *testing.T) {
	srv, rm, _ := newServer(t)
	snap, host, err := rm.CreateRoom("ana", room.Settings{})
	require.NoError(t, err)
	_, guest, err := rm.JoinRoom(snap.Code, "ben", "")
	require.NoError(t, err)

	// host and guest step forward and back
	steps := []struct {
		uid      string
		row, col int
	}{
		{host.ID, 6, 4}, {guest.ID, 1, 4}, {host.ID, 7, 4}, {guest.ID, 0, 4},
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			st := steps[i%len(steps)]
			_, _, err := rm.Move(snap.Code, st.uid, st.row, st.col)
			assert.NoError(t, err)
		}
	}()

	var conns []*websocket.Conn
	for i := 0; i < 8; i++ {
		conns = append(conns, dial(t, srv, snap.Code, ""))
	}
	<-done

	r, ok := rm.Get(snap.Code)
	require.True(t, ok)
	last := r.Snapshot().Version

	for _, conn := range conns {
		prev := -1
		for prev < last {
			var s room.Snapshot
			require.NoError(t, json.Unmarshal(next(t, conn, shared.ActionState).Data, &s))
			require.Greater(t, s.Version, prev, "state went backwards")
			prev = s.Version
		}
	}
}
