package room_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoblock/internal/config"
	"neoblock/internal/game"
	"neoblock/internal/room"
	"neoblock/internal/store"
)

type recorder struct {
	mu   sync.Mutex
	sent []room.Snapshot
}

func (r *recorder) Broadcast(code, action string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if action == room.ActionState {
		r.sent = append(r.sent, data.(room.Snapshot))
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func newManager(t *testing.T) (*room.Manager, *recorder) {
	t.Helper()
	rec := &recorder{}
	cfg := config.Config{BoardSize: 8, MaxWalls: 4, RoomTTL: time.Hour}
	return room.NewManager(store.NewMemoryStore(), cfg, rec), rec
}

func openMatch(t *testing.T, m *room.Manager) (code string, host, guest room.Seat) {
	t.Helper()
	snap, host, err := m.CreateRoom("ana", room.Settings{})
	require.NoError(t, err)
	_, guest, err = m.JoinRoom(strings.ToLower(snap.Code), "ben", "")
	require.NoError(t, err)
	return snap.Code, host, guest
}

func TestCreateRoom(t *testing.T) {
	m, _ := newManager(t)

	snap, host, err := m.CreateRoom("", room.Settings{})
	require.NoError(t, err)

	assert.Len(t, snap.Code, 6)
	assert.Equal(t, snap.Code, strings.ToUpper(snap.Code))
	assert.Equal(t, room.StatusWaiting, snap.Status)
	assert.Equal(t, "Player 1", host.Name)
	assert.NotEmpty(t, host.ID)
	assert.Equal(t, 8, snap.State.BoardSize)
	assert.Equal(t, host.ID, snap.State.Players[0].ID)
}

func TestCreateRoomFromPreset(t *testing.T) {
	m, _ := newManager(t)

	snap, _, err := m.CreateRoom("ana", room.Settings{Preset: "Sudden-Death"})
	require.NoError(t, err)
	assert.Equal(t, "sudden-death", snap.Preset)
	assert.Equal(t, 6, snap.State.BoardSize)
	assert.Equal(t, 3, snap.State.MaxWalls)

	_, _, err = m.CreateRoom("ana", room.Settings{Preset: "marathon"})
	assert.ErrorIs(t, err, room.ErrUnknownPreset)

	_, _, err = m.CreateRoom("ana", room.Settings{BoardSize: 1})
	assert.ErrorIs(t, err, game.ErrInvalidBoardSize)
}

func TestJoinRoom(t *testing.T) {
	m, rec := newManager(t)
	code, host, guest := openMatch(t, m)

	assert.NotEqual(t, host.ID, guest.ID)
	assert.Equal(t, 1, rec.count())

	r, ok := m.Get(code)
	require.True(t, ok)
	assert.Equal(t, room.StatusPlaying, r.Status())

	_, _, err := m.JoinRoom(code, "cid", "")
	assert.ErrorIs(t, err, room.ErrRoomFull)

	_, again, err := m.JoinRoom(code, "", guest.ID)
	require.NoError(t, err)
	assert.Equal(t, guest, again, "re-join keeps the seat")

	_, _, err = m.JoinRoom("ZZZZZZ", "", "")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestActBeforeGuestJoins(t *testing.T) {
	m, _ := newManager(t)
	snap, host, err := m.CreateRoom("ana", room.Settings{})
	require.NoError(t, err)

	_, _, err = m.Move(snap.Code, host.ID, 6, 4)
	assert.ErrorIs(t, err, room.ErrRoomNotPlaying)
}

func TestMoveBroadcastsState(t *testing.T) {
	m, rec := newManager(t)
	code, host, guest := openMatch(t, m)

	applied, snap, err := m.Move(code, host.ID, 6, 4)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, snap.State.CurrentPlayer)
	assert.Equal(t, 2, rec.count())

	_, _, err = m.Move(code, host.ID, 5, 4)
	assert.ErrorIs(t, err, game.ErrNotYourTurn)

	applied, _, err = m.Move(code, guest.ID, 1, 5)
	require.NoError(t, err)
	assert.False(t, applied, "diagonal is ignored")
	assert.Equal(t, 2, rec.count(), "no-ops are not broadcast")

	_, _, err = m.Move(code, "stranger", 1, 4)
	assert.ErrorIs(t, err, room.ErrUnknownPlayer)
}

func TestPlaceWallRules(t *testing.T) {
	m, _ := newManager(t)
	code, host, _ := openMatch(t, m)

	applied, snap, err := m.PlaceWall(code, host.ID, 3, 3, game.Horizontal)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 0, snap.State.CurrentPlayer)
	assert.True(t, snap.State.HasPlacedWall)
	assert.Equal(t, 3, snap.State.Players[0].WallsRemaining)

	_, _, err = m.PlaceWall(code, host.ID, 0, 0, game.Vertical)
	assert.ErrorIs(t, err, game.ErrWallAlreadyPlacedThisTurn)
}

func TestReplaceKeepsSeats(t *testing.T) {
	m, rec := newManager(t)
	code, host, guest := openMatch(t, m)

	s, err := game.NewSession(8, 4)
	require.NoError(t, err)
	s.Players[0].Row = 3
	s.CurrentPlayer = 1
	_, err = m.Replace(code, "stranger", game.ToSync(s))
	assert.ErrorIs(t, err, room.ErrUnknownPlayer)

	snap, err := m.Replace(code, guest.ID, game.ToSync(s))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.State.Players[0].Row)
	assert.Equal(t, 1, snap.State.CurrentPlayer)
	assert.Equal(t, host.ID, snap.State.Players[0].ID)
	assert.Equal(t, guest.ID, snap.State.Players[1].ID)
	assert.Equal(t, 2, rec.count())

	_, err = m.Replace(code, host.ID, game.SyncRecord{})
	assert.ErrorIs(t, err, game.ErrMalformedRecord)
}

func TestCreateRoomWithoutWalls(t *testing.T) {
	m, _ := newManager(t)

	snap, _, err := m.CreateRoom("ana", room.Settings{BoardSize: 5, MaxWalls: room.Walls(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, snap.State.MaxWalls)
	assert.Equal(t, 0, snap.State.Players[0].WallsRemaining)

	snap, _, err = m.CreateRoom("ana", room.Settings{BoardSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 4, snap.State.MaxWalls, "an unset budget takes the server default")
}

func TestConcurrentCreatesGetDistinctRooms(t *testing.T) {
	s := store.NewMemoryStore()
	m := room.NewManager(s, config.Config{BoardSize: 4, MaxWalls: 1}, nil)

	const n = 200
	var wg sync.WaitGroup
	codes := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, _, err := m.CreateRoom("", room.Settings{})
			assert.NoError(t, err)
			codes <- snap.Code
		}()
	}
	wg.Wait()
	close(codes)

	seen := map[string]bool{}
	for c := range codes {
		assert.False(t, seen[c], "code %s handed out twice", c)
		seen[c] = true
	}
	assert.Len(t, s.ListRooms(), n)
}

func TestVersionCountsChanges(t *testing.T) {
	m, rec := newManager(t)
	code, host, guest := openMatch(t, m)

	_, _, err := m.Move(code, host.ID, 6, 4)
	require.NoError(t, err)
	_, _, err = m.Move(code, host.ID, 5, 4) // not their turn
	require.Error(t, err)
	_, snap, err := m.Move(code, guest.ID, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Version)
	require.Equal(t, 3, rec.count())
	for i, sent := range rec.sent {
		assert.Equal(t, i+1, sent.Version)
	}
}

func TestResetRestartsMatch(t *testing.T) {
	m, _ := newManager(t)
	code, host, guest := openMatch(t, m)

	_, _, err := m.Move(code, host.ID, 6, 4)
	require.NoError(t, err)

	snap, err := m.Reset(code, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, snap.State.Players[0].Row)
	assert.Equal(t, 0, snap.State.CurrentPlayer)
	assert.Equal(t, host.ID, snap.State.Players[0].ID)
	assert.Equal(t, room.StatusPlaying, snap.Status)

	_, err = m.Reset(code, "stranger")
	assert.ErrorIs(t, err, room.ErrUnknownPlayer)
}

func TestFinishedRoom(t *testing.T) {
	rec := &recorder{}
	m := room.NewManager(store.NewMemoryStore(), config.Config{BoardSize: 2}, rec)
	code, host, guest := openMatch(t, m)

	_, _, err := m.Move(code, host.ID, 1, 0)
	require.NoError(t, err)
	applied, snap, err := m.Move(code, guest.ID, 1, 1)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, room.StatusFinished, snap.Status)
	require.NotNil(t, snap.State.Winner)
	assert.Equal(t, 1, *snap.State.Winner)

	applied, _, err = m.Move(code, guest.ID, 0, 1)
	require.NoError(t, err)
	assert.False(t, applied, "finished matches ignore input")
	assert.Equal(t, 3, rec.count())
}

func TestSweep(t *testing.T) {
	m, _ := newManager(t)
	code, _, _ := openMatch(t, m)

	assert.Equal(t, 0, m.Sweep(time.Now()))
	assert.Equal(t, 1, m.Sweep(time.Now().Add(2*time.Hour)))
	_, ok := m.Get(code)
	assert.False(t, ok)
}
