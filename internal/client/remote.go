package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"neoblock/internal/game"
	"neoblock/internal/room"
	"neoblock/internal/shared"
)

var (
	// ErrNotApplied means the server ignored an action the local engine
	// accepted, so the two have drifted.
	ErrNotApplied = errors.New("server ignored the action")
	ErrClosed     = errors.New("connection closed")
)

// WSRemote writes actions to a room over the server's websocket and hands
// every state broadcast to onState.
type WSRemote struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan shared.Ack
	err     error

	onState func(room.Snapshot)
	done    chan struct{}
}

// DialRoom connects to serverURL (http or ws scheme) as uid in room code.
func DialRoom(ctx context.Context, serverURL, code, uid string, onState func(room.Snapshot)) (*WSRemote, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http", "":
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	u.RawQuery = url.Values{"room_code": {code}, "uid": {uid}}.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.Redacted(), err)
	}
	r := &WSRemote{
		conn:    conn,
		pending: map[string]chan shared.Ack{},
		onState: onState,
		done:    make(chan struct{}),
	}
	go r.readLoop()
	return r, nil
}

func (r *WSRemote) readLoop() {
	defer close(r.done)
	for {
		var env shared.Envelope
		if err := r.conn.ReadJSON(&env); err != nil {
			r.fail(err)
			return
		}
		switch env.Action {
		case shared.ActionState:
			var snap room.Snapshot
			if err := json.Unmarshal(env.Data, &snap); err != nil {
				log.WithError(err).Warn("bad state frame")
				continue
			}
			if r.onState != nil {
				r.onState(snap)
			}
		case shared.ActionAck:
			var ack shared.Ack
			if err := json.Unmarshal(env.Data, &ack); err != nil {
				log.WithError(err).Warn("bad ack frame")
				continue
			}
			r.mu.Lock()
			ch, ok := r.pending[ack.ID]
			delete(r.pending, ack.ID)
			r.mu.Unlock()
			if ok {
				ch <- ack
			}
		default:
			log.WithField("action", env.Action).Debug("ignoring frame")
		}
	}
}

func (r *WSRemote) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = fmt.Errorf("%w: %v", ErrClosed, err)
	}
	for id, ch := range r.pending {
		close(ch)
		delete(r.pending, id)
	}
}

// Submit sends a and waits for the server's ack.
func (r *WSRemote) Submit(ctx context.Context, a game.Action) error {
	var (
		action string
		data   interface{}
	)
	switch a.Kind {
	case game.ActionMove:
		action, data = shared.ActionMove, shared.Move{Row: a.Row, Col: a.Col}
	case game.ActionWall:
		action, data = shared.ActionWall, shared.Wall{Row: a.Row, Col: a.Col, Orientation: string(a.Orientation)}
	default:
		return game.ErrUnknownAction
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	ch := make(chan shared.Ack, 1)
	r.mu.Lock()
	if r.err != nil {
		err := r.err
		r.mu.Unlock()
		return err
	}
	r.pending[id] = ch
	r.mu.Unlock()

	r.writeMu.Lock()
	err = r.conn.WriteJSON(shared.Envelope{Action: action, ID: id, Data: raw})
	r.writeMu.Unlock()
	if err != nil {
		r.forget(id)
		return err
	}

	select {
	case ack, ok := <-ch:
		if !ok {
			return r.closedErr()
		}
		return ackError(ack)
	case <-ctx.Done():
		r.forget(id)
		return ctx.Err()
	}
}

func ackError(ack shared.Ack) error {
	if ack.Error != "" {
		if err := game.ErrorFromCode(ack.Error); err != nil {
			return err
		}
		return errors.New(ack.Error)
	}
	if !ack.Applied {
		return ErrNotApplied
	}
	return nil
}

func (r *WSRemote) forget(id string) {
	r.mu.Lock()
	delete(r.pending, id)
	r.mu.Unlock()
}

func (r *WSRemote) closedErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	return ErrClosed
}

// Done is closed when the connection is gone.
func (r *WSRemote) Done() <-chan struct{} {
	return r.done
}

func (r *WSRemote) Close() error {
	r.writeMu.Lock()
	_ = r.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	r.writeMu.Unlock()
	err := r.conn.Close()
	<-r.done
	return err
}
