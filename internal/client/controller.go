package client

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"neoblock/internal/game"
)

// Remote is the authoritative store an action is written to after it has
// been applied locally.
type Remote interface {
	Submit(ctx context.Context, a game.Action) error
}

type Outcome int

const (
	Pending Outcome = iota
	// Committed means the remote accepted the write.
	Committed
	// Reverted means the write failed and the local state was rolled back.
	Reverted
	// Superseded means the write failed after an authoritative snapshot had
	// already replaced the local state, so nothing was rolled back.
	Superseded
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	case Reverted:
		return "reverted"
	case Superseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// Task tracks one optimistic write.
type Task struct {
	done    chan struct{}
	outcome Outcome
	err     error
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the write settles. err is the remote's error, if any.
func (t *Task) Wait() (Outcome, error) {
	<-t.done
	return t.outcome, t.err
}

func (t *Task) Outcome() Outcome {
	select {
	case <-t.done:
		return t.outcome
	default:
		return Pending
	}
}

func (t *Task) settle(o Outcome, err error) {
	t.outcome, t.err = o, err
	close(t.done)
}

type Option func(*Controller)

func WithRemote(r Remote) Option {
	return func(c *Controller) { c.remote = r }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

func WithAdvisory(a *Advisory) Option {
	return func(c *Controller) { c.advisory = a }
}

// OnChange registers fn to receive every new local state.
func OnChange(fn func(game.Session)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller applies player input to a local engine immediately and then
// writes it through to a Remote. At most one write is outstanding; input that
// arrives meanwhile is dropped.
type Controller struct {
	mu       sync.Mutex
	engine   *game.Engine
	remote   Remote
	timeout  time.Duration
	advisory *Advisory
	onChange func(game.Session)

	inFlight bool
	// bumped by every Replace
	epoch uint64
}

func NewController(e *game.Engine, opts ...Option) *Controller {
	c := &Controller{
		engine:  e,
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.advisory == nil {
		c.advisory = NewAdvisory(3 * time.Second)
	}
	return c
}

// SetRemote swaps the write-through target. Nil makes every write commit
// locally.
func (c *Controller) SetRemote(r Remote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remote = r
}

func (c *Controller) Move(r, col int) (*Task, error) {
	return c.submit(game.MoveAction(r, col))
}

// PlaceWall places a wall at (r,col) with the selected orientation.
func (c *Controller) PlaceWall(r, col int) (*Task, error) {
	c.mu.Lock()
	o := c.engine.Orientation()
	c.mu.Unlock()
	return c.submit(game.WallAction(r, col, o))
}

func (c *Controller) ToggleOrientation() game.Orientation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.ToggleOrientation()
}

// Session returns a snapshot of the local state.
func (c *Controller) Session() game.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Session()
}

// Advisory returns the message currently shown to the player.
func (c *Controller) Advisory() string {
	return c.advisory.Text()
}

// InFlight reports whether a write is outstanding.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Replace overwrites the local state with an authoritative snapshot. It wins
// over any outstanding write.
func (c *Controller) Replace(rec game.SyncRecord) error {
	s, err := rec.Session()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.engine.ReplaceSession(s)
	c.epoch++
	snap := c.engine.Session()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// submit returns a nil task and nil error when the action was ignored, either
// because the engine treated it as a no-op or because another write is
// outstanding.
func (c *Controller) submit(a game.Action) (*Task, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		log.WithField("action", a.Kind).Debug("dropped while a write is outstanding")
		return nil, nil
	}

	before := c.engine.Session()
	applied, err := c.engine.Attempt(a)
	if err != nil {
		c.mu.Unlock()
		c.advisory.Post(game.Advisory(err))
		return nil, err
	}
	if !applied {
		c.mu.Unlock()
		return nil, nil
	}
	if a.Kind == game.ActionWall {
		c.advisory.Post(game.AdvisoryWallPlaced)
	} else {
		c.advisory.Clear()
	}

	t := &Task{done: make(chan struct{})}
	after := c.engine.Session()
	remote := c.remote
	if remote == nil {
		c.mu.Unlock()
		t.settle(Committed, nil)
		c.notify(after)
		return t, nil
	}

	c.inFlight = true
	epoch := c.epoch
	c.mu.Unlock()
	c.notify(after)

	go c.write(remote, t, a, before, epoch)
	return t, nil
}

func (c *Controller) write(remote Remote, t *Task, a game.Action, before game.Session, epoch uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	err := remote.Submit(ctx, a)

	c.mu.Lock()
	c.inFlight = false
	switch {
	case err == nil:
		c.mu.Unlock()
		t.settle(Committed, nil)
		return
	case c.epoch != epoch:
		c.mu.Unlock()
		log.WithError(err).WithField("action", a.Kind).Info("write failed after a newer snapshot, keeping it")
		t.settle(Superseded, err)
		return
	}
	c.engine.ReplaceSession(before)
	snap := c.engine.Session()
	c.mu.Unlock()

	log.WithError(err).WithField("action", a.Kind).Warn("write failed, reverting")
	if msg := game.Advisory(err); game.ErrorCode(err) != "" {
		c.advisory.Post(msg)
	} else {
		c.advisory.Post(AdvisorySyncFailed)
	}
	c.notify(snap)
	t.settle(Reverted, err)
}

func (c *Controller) notify(s game.Session) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
