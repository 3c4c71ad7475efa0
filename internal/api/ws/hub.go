package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"neoblock/internal/game"
	"neoblock/internal/room"
	"neoblock/internal/shared"
)

// peer serialises writes; acks and broadcasts come from different goroutines.
type peer struct {
	mu   sync.Mutex
	conn *websocket.Conn
	uid  string
}

func (p *peer) send(action, id string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(shared.Envelope{Action: action, ID: id, Data: raw})
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*peer]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*peer]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS serves GET /ws?room_code=&uid=. Peers without a seat may watch but
// every action they send is refused.
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := room.NormalizeCode(c.Query("room_code"))
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	r, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": room.ErrRoomNotFound.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	p := &peer{conn: conn, uid: c.Query("uid")}
	logger := log.WithFields(log.Fields{"room": roomCode, "player": p.uid})
	logger.Info("websocket connected")

	defer func() {
		h.remove(roomCode, p)
		logger.Info("websocket closed")
	}()

	// Registering and sending the first state under the room lock keeps every
	// later broadcast behind it.
	r.WithSnapshot(func(snap room.Snapshot) {
		h.add(roomCode, p)
		err = p.send(shared.ActionState, "", snap)
	})
	if err != nil {
		return
	}

	for {
		var msg shared.Envelope
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Warn("websocket read failed")
			}
			return
		}

		ack := h.handle(roomCode, p.uid, msg)
		if err := p.send(shared.ActionAck, msg.ID, ack); err != nil {
			logger.WithError(err).Warn("ack write failed")
			return
		}
	}
}

func (h *Hub) handle(roomCode, uid string, msg shared.Envelope) shared.Ack {
	ack := shared.Ack{ID: msg.ID}

	var a game.Action
	switch msg.Action {
	case shared.ActionMove:
		var mv shared.Move
		if err := json.Unmarshal(msg.Data, &mv); err != nil {
			ack.Error = "invalid move data"
			return ack
		}
		a = game.MoveAction(mv.Row, mv.Col)
	case shared.ActionWall:
		var w shared.Wall
		if err := json.Unmarshal(msg.Data, &w); err != nil {
			ack.Error = "invalid wall data"
			return ack
		}
		a = game.WallAction(w.Row, w.Col, game.Orientation(w.Orientation))
	default:
		log.WithFields(log.Fields{"room": roomCode, "action": msg.Action}).Debug("unknown action")
		ack.Error = game.CodeUnknownAction
		return ack
	}

	applied, _, err := h.roomManager.Act(roomCode, uid, a)
	ack.Applied = applied
	if err != nil {
		ack.Error = ErrorText(err)
	}
	return ack
}

// ErrorText is the ack error for err: a game code when there is one.
func ErrorText(err error) string {
	if code := game.ErrorCode(err); code != "" {
		return code
	}
	return err.Error()
}

func (h *Hub) add(roomCode string, p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*peer]struct{})
	}
	h.rooms[roomCode][p] = struct{}{}
}

func (h *Hub) remove(roomCode string, p *peer) {
	h.mu.Lock()
	delete(h.rooms[roomCode], p)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
	h.mu.Unlock()
	_ = p.conn.Close()
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.RLock()
	peers := make([]*peer, 0, len(h.rooms[roomCode]))
	for p := range h.rooms[roomCode] {
		peers = append(peers, p)
	}
	h.mu.RUnlock()

	for _, p := range peers {
		if err := p.send(action, "", data); err != nil {
			log.WithFields(log.Fields{"room": roomCode, "player": p.uid}).WithError(err).Warn("broadcast failed")
			h.remove(roomCode, p)
		}
	}
}

// Peers reports how many connections watch roomCode.
func (h *Hub) Peers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}
