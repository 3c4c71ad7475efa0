package room

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"neoblock/internal/config"
	"neoblock/internal/game"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Settings choose the board for a new room. A named preset wins over explicit
// sizes. A zero board size or a nil wall budget falls back to the server
// defaults; a budget of zero is a match without walls.
type Settings struct {
	Preset    string
	BoardSize int
	MaxWalls  *int
}

// Walls is a helper for building Settings.MaxWalls.
func Walls(n int) *int {
	return &n
}

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// SetHub exists because the hub and the manager need each other.
func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

func (m *Manager) resolve(set Settings) (Settings, error) {
	if set.Preset != "" {
		p, ok := config.PresetByName(set.Preset)
		if !ok {
			return set, fmt.Errorf("%w: %q", ErrUnknownPreset, set.Preset)
		}
		return Settings{Preset: p.Name, BoardSize: p.BoardSize, MaxWalls: Walls(p.MaxWalls)}, nil
	}
	if set.BoardSize == 0 {
		set.BoardSize = m.cfg.BoardSize
	}
	if set.MaxWalls == nil {
		set.MaxWalls = Walls(m.cfg.MaxWalls)
	}
	return set, nil
}

// CreateRoom opens a room and seats the creator as player 0.
func (m *Manager) CreateRoom(hostName string, set Settings) (Snapshot, Seat, error) {
	set, err := m.resolve(set)
	if err != nil {
		return Snapshot{}, Seat{}, err
	}
	host := Seat{ID: uuid.NewString(), Name: displayName(hostName, "Player 1")}

	r, err := newRoom(randCode(6), host, set.BoardSize, *set.MaxWalls, time.Now())
	if err != nil {
		return Snapshot{}, Seat{}, err
	}
	r.Preset = set.Preset
	for !m.store.SaveRoomIfAbsent(r) {
		r.Code = randCode(6)
	}

	log.WithFields(log.Fields{"room": r.Code, "player": host.ID, "size": set.BoardSize}).Info("room created")
	return r.Snapshot(), host, nil
}

// JoinRoom seats a guest as player 1. A caller that already holds a seat gets
// it back instead.
func (m *Manager) JoinRoom(code, name, uid string) (Snapshot, Seat, error) {
	r, ok := m.Get(code)
	if !ok {
		return Snapshot{}, Seat{}, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.seatOf(uid); i >= 0 {
		return r.snapshot(), r.Seats[i], nil
	}
	if r.Seats[1].ID != "" {
		return Snapshot{}, Seat{}, ErrRoomFull
	}

	guest := Seat{ID: uuid.NewString(), Name: displayName(name, "Player 2")}
	r.Seats[1] = guest
	r.engine.SetPlayerID(1, guest.ID)
	r.touch(time.Now())

	snap := r.snapshot()
	log.WithFields(log.Fields{"room": r.Code, "player": guest.ID}).Info("player joined")
	m.hub.Broadcast(r.Code, ActionState, snap)
	return snap, guest, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(NormalizeCode(code))
}

// Act applies a on behalf of uid. The bool reports whether the match changed;
// only changes are broadcast.
func (m *Manager) Act(code, uid string, a game.Action) (bool, Snapshot, error) {
	r, ok := m.Get(code)
	if !ok {
		return false, Snapshot{}, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seatOf(uid) < 0 {
		return false, Snapshot{}, ErrUnknownPlayer
	}
	if r.status() == StatusWaiting {
		return false, r.snapshot(), ErrRoomNotPlaying
	}

	applied, err := r.engine.Apply(uid, a)
	if err != nil {
		log.WithFields(log.Fields{"room": r.Code, "player": uid, "action": a.Kind}).Debugf("rejected: %v", err)
		return false, r.snapshot(), err
	}
	if !applied {
		return false, r.snapshot(), nil
	}

	r.touch(time.Now())
	snap := r.snapshot()
	if snap.Status == StatusFinished {
		log.WithFields(log.Fields{"room": r.Code, "winner": *snap.State.Winner}).Info("match finished")
	}
	m.hub.Broadcast(r.Code, ActionState, snap)
	return true, snap, nil
}

func (m *Manager) Move(code, uid string, row, col int) (bool, Snapshot, error) {
	return m.Act(code, uid, game.MoveAction(row, col))
}

func (m *Manager) PlaceWall(code, uid string, row, col int, o game.Orientation) (bool, Snapshot, error) {
	return m.Act(code, uid, game.WallAction(row, col, o))
}

// Replace overwrites the room's match with rec without checking the rules.
// Only a seated player may do it, and seats keep their owners whatever ids
// rec carries.
func (m *Manager) Replace(code, uid string, rec game.SyncRecord) (Snapshot, error) {
	s, err := rec.Session()
	if err != nil {
		return Snapshot{}, err
	}
	r, ok := m.Get(code)
	if !ok {
		return Snapshot{}, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seatOf(uid) < 0 {
		return Snapshot{}, ErrUnknownPlayer
	}
	for i := range s.Players {
		s.Players[i].ID = r.Seats[i].ID
	}
	r.engine.ReplaceSession(s)
	r.touch(time.Now())

	snap := r.snapshot()
	log.WithFields(log.Fields{"room": r.Code, "player": uid}).Warn("match replaced")
	m.hub.Broadcast(r.Code, ActionState, snap)
	return snap, nil
}

// Reset restarts the match with the same board and wall budget.
func (m *Manager) Reset(code, uid string) (Snapshot, error) {
	r, ok := m.Get(code)
	if !ok {
		return Snapshot{}, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seatOf(uid) < 0 {
		return Snapshot{}, ErrUnknownPlayer
	}
	cur := r.engine.Session()
	if _, err := r.engine.InitSession(cur.BoardSize, cur.MaxWalls); err != nil {
		return Snapshot{}, err
	}
	r.touch(time.Now())

	snap := r.snapshot()
	log.WithFields(log.Fields{"room": r.Code, "player": uid}).Info("match reset")
	m.hub.Broadcast(r.Code, ActionState, snap)
	return snap, nil
}

// Sweep drops rooms idle for longer than the configured TTL and returns how
// many went.
func (m *Manager) Sweep(now time.Time) int {
	if m.cfg.RoomTTL <= 0 {
		return 0
	}
	n := 0
	for _, r := range m.store.ListRooms() {
		r.mu.Lock()
		idle := now.Sub(r.UpdatedAt)
		r.mu.Unlock()
		if idle > m.cfg.RoomTTL {
			m.store.DeleteRoom(r.Code)
			n++
		}
	}
	if n > 0 {
		log.WithField("count", n).Info("swept idle rooms")
	}
	return n
}

// NormalizeCode makes room codes case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func displayName(name, def string) string {
	if name = strings.TrimSpace(name); name == "" {
		return def
	}
	return name
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
