package gallery

import (
	"context"
	"sync"
	"time"

	"github.com/timmy/photofeed/internal/domain"
)

// Fetcher loads one page of the feed for a selection.
type Fetcher interface {
	Fetch(ctx context.Context, sel domain.Selection) ([]domain.PhotoItem, error)
}

// Listener receives every published state. Listeners run on the goroutine
// that produced the state and must not call selection methods synchronously.
type Listener func(State)

// Controller drives the feed view. Each selection change cancels the
// in-flight fetch and issues exactly one new fetch; results of superseded
// fetches are discarded.
type Controller struct {
	fetcher Fetcher
	timeout time.Duration

	mu        sync.Mutex
	state     State
	gen       uint64 // fetch generation, bumped per issued fetch
	version   uint64 // state version, bumped per state change
	cancel    context.CancelFunc
	listeners []Listener
	closed    bool
	wg        sync.WaitGroup

	notifyMu sync.Mutex
	notified uint64
}

// NewController creates a controller in the initial, unfiltered state.
// Parameters:
//   - fetcher: feed loader.
//   - timeout: per-fetch deadline; zero or negative disables it.
// Returns:
//   - *Controller: controller; call Start to perform the first fetch.
func NewController(fetcher Fetcher, timeout time.Duration) *Controller {
	return &Controller{
		fetcher: fetcher,
		timeout: timeout,
		state:   NewState(),
	}
}

// Subscribe registers a listener for state changes.
func (c *Controller) Subscribe(fn Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start issues the initial fetch for the current selection.
func (c *Controller) Start() {
	c.Reload()
}

// Reload re-issues the fetch for the current selection.
func (c *Controller) Reload() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	st, version, listeners := c.fetchLocked()
	c.mu.Unlock()

	c.publish(listeners, st, version)
}

// SelectAuthor filters the feed to one author and clears the tag filter.
// It reports whether a fetch was issued.
func (c *Controller) SelectAuthor(displayName, id string) bool {
	return c.apply(func(s State) State { return s.SelectAuthor(displayName, id) })
}

// SelectTag filters the feed to one tag and clears the author filter.
// It reports whether a fetch was issued.
func (c *Controller) SelectTag(tag string) bool {
	return c.apply(func(s State) State { return s.SelectTag(tag) })
}

// ClearSelection removes any filter.
// It reports whether a fetch was issued.
func (c *Controller) ClearSelection() bool {
	return c.apply(func(s State) State { return s.ClearSelection() })
}

// Wait blocks until no fetch is in flight.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels the in-flight fetch and stops publishing states.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller) apply(transition func(State) State) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	next := transition(c.state)
	if next.Selection == c.state.Selection {
		c.state = next
		c.mu.Unlock()
		return false
	}

	c.state = next
	st, version, listeners := c.fetchLocked()
	c.mu.Unlock()

	c.publish(listeners, st, version)
	return true
}

// fetchLocked supersedes any in-flight fetch and starts a new one for the
// current selection. c.mu must be held.
func (c *Controller) fetchLocked() (State, uint64, []Listener) {
	if c.cancel != nil {
		c.cancel()
	}

	c.gen++
	gen := c.gen

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), c.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	c.cancel = cancel

	c.state = c.state.Loading()
	c.version++

	c.wg.Add(1)
	go c.run(ctx, cancel, gen, c.state.Selection)

	return c.state, c.version, c.snapshotListeners()
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, gen uint64, sel domain.Selection) {
	defer c.wg.Done()
	defer cancel()

	items, err := c.fetcher.Fetch(ctx, sel)

	c.mu.Lock()
	if c.closed || gen != c.gen {
		// superseded by a newer selection
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.state = c.state.Failed(err)
	} else {
		c.state = c.state.Loaded(items)
	}
	c.cancel = nil
	c.version++
	st, version, listeners := c.state, c.version, c.snapshotListeners()
	c.mu.Unlock()

	c.publish(listeners, st, version)
}

func (c *Controller) snapshotListeners() []Listener {
	out := make([]Listener, len(c.listeners))
	copy(out, c.listeners)
	return out
}

// publish delivers a state unless a newer one has already been delivered.
func (c *Controller) publish(listeners []Listener, st State, version uint64) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if version <= c.notified {
		return
	}
	c.notified = version
	for _, fn := range listeners {
		fn(st)
	}
}
