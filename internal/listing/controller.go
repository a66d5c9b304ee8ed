package listing

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/mmcdole/jobboard/internal/domain"
)

// ErrClosed is returned by operations on a controller whose view has unmounted
var ErrClosed = errors.New("listing controller closed")

// CreateResult is delivered once per accepted Create call
type CreateResult[T domain.ListItem] struct {
	Item T
	Err  error
}

// Controller owns the fetch -> hold -> filter -> create lifecycle of one
// remotely-sourced collection. It is created when a listing view mounts and
// closed when the view unmounts.
//
// Load and Create never block: the request runs in the background and the
// outcome is published to subscribers. ApplyFilter, Snapshot and
// DismissError are local and synchronous.
type Controller[T domain.ListItem, D any] struct {
	repo   domain.CollectionRepository[T, D]
	logger *slog.Logger

	mu         sync.Mutex
	state      State[T]
	filter     Filter
	loadSeq    uint64
	loadCancel context.CancelFunc
	creating   int
	closed     bool
	version    uint64
	subs       map[int]func(State[T])
	nextSub    int

	// inflight holds the cancel func of every running request; Close cancels them all
	inflight map[uint64]context.CancelFunc
	nextReq  uint64

	// createdDuringLoad are items created while a load was running; the
	// load result does not know about them yet
	createdDuringLoad []T

	// notifyMu serializes delivery so subscribers never see an older snapshot after a newer one
	notifyMu     sync.Mutex
	lastNotified uint64

	wg sync.WaitGroup
}

// New creates an Idle controller over repo
func New[T domain.ListItem, D any](repo domain.CollectionRepository[T, D], logger *slog.Logger) *Controller[T, D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[T, D]{
		repo:     repo,
		logger:   logger,
		filter:   MatchAll,
		subs:     make(map[int]func(State[T])),
		inflight: make(map[uint64]context.CancelFunc),
	}
}

// Subscribe registers fn to receive a snapshot after every transition.
// fn runs on the goroutine that caused the transition and must not call
// Load, Create, ApplyFilter or DismissError synchronously.
func (c *Controller[T, D]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Snapshot returns the current state
func (c *Controller[T, D]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Load fetches the collection. A newer Load supersedes an older one: the
// older request is canceled and its response, if it still arrives, is dropped.
func (c *Controller[T, D]) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.loadSeq++
	seq := c.loadSeq
	if c.loadCancel != nil {
		c.loadCancel()
	}
	reqCtx, cancel, release := c.requestContext(ctx)
	c.loadCancel = cancel

	c.state.Phase = PhaseLoading
	c.state.Err = nil
	snap, ver := c.commitLocked()
	c.wg.Add(1)
	c.mu.Unlock()

	c.publish(snap, ver)
	c.logger.Debug("loading collection", "seq", seq)

	go func() {
		defer c.wg.Done()
		defer release()

		items, err := c.repo.List(reqCtx)
		c.finishLoad(seq, items, err)
	}()
}

func (c *Controller[T, D]) finishLoad(seq uint64, items []T, err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if seq != c.loadSeq {
		c.mu.Unlock()
		c.logger.Debug("discarding stale load response", "seq", seq)
		return
	}
	c.loadCancel = nil
	c.createdDuringLoad = nil

	if err != nil {
		c.state.Phase = PhaseFailed
		c.state.Err = err
	} else {
		all := make([]T, 0, len(items)+len(c.createdDuringLoad))
		all = append(all, items...)
		for _, created := range c.createdDuringLoad {
			if !containsID(items, created.GetID()) {
				all = append(all, created)
			}
		}
		c.state.All = all
		c.state.Visible = c.filterLocked()
		c.state.Phase = PhaseReady
		c.state.Err = nil
	}
	snap, ver := c.commitLocked()
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("failed to load collection", "error", err, "seq", seq)
	} else {
		c.logger.Debug("loaded collection", "count", len(items), "seq", seq)
	}
	c.publish(snap, ver)
}

// ApplyFilter recomputes Visible from All. It performs no I/O and leaves
// Phase and All untouched. A nil filter matches everything.
func (c *Controller[T, D]) ApplyFilter(f Filter) []T {
	if f == nil {
		f = MatchAll
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.filter = f
	c.state.Query = f.Query()
	c.state.Visible = c.filterLocked()
	visible := slices.Clone(c.state.Visible)
	snap, ver := c.commitLocked()
	c.mu.Unlock()

	c.publish(snap, ver)
	return visible
}

// Create validates draft and, if valid, submits it in the background.
// Invalid drafts fail immediately with a *domain.ValidationError and no request.
// The returned channel receives exactly one result and is then closed.
func (c *Controller[T, D]) Create(ctx context.Context, draft D) (<-chan CreateResult[T], error) {
	if err := domain.Validate(draft); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}

	reqCtx, _, release := c.requestContext(ctx)
	c.creating++
	c.state.Submitting = true
	c.state.CreateErr = nil
	snap, ver := c.commitLocked()
	c.wg.Add(1)
	c.mu.Unlock()

	c.publish(snap, ver)

	result := make(chan CreateResult[T], 1)
	go func() {
		defer c.wg.Done()
		defer close(result)
		defer release()

		item, err := c.repo.Create(reqCtx, draft)
		if err == nil && (isNil(item) || item.GetID().IsZero()) {
			err = &domain.MalformedResponseError{Reason: "created item has no identifier"}
		}
		result <- c.finishCreate(item, err)
	}()

	return result, nil
}

func (c *Controller[T, D]) finishCreate(item T, err error) CreateResult[T] {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return CreateResult[T]{Err: ErrClosed}
	}

	c.creating--
	c.state.Submitting = c.creating > 0
	if err != nil {
		c.state.CreateErr = err
	} else {
		c.state.All = append(slices.Clone(c.state.All), item)
		if c.state.Phase == PhaseLoading {
			c.createdDuringLoad = append(c.createdDuringLoad, item)
		}
		if c.filter.Match(item) {
			c.state.Visible = append(slices.Clone(c.state.Visible), item)
		}
		c.state.CreateErr = nil
	}
	snap, ver := c.commitLocked()
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("failed to create item", "error", err)
		var zero T
		c.publish(snap, ver)
		return CreateResult[T]{Item: zero, Err: err}
	}

	c.logger.Info("created item", "id", item.GetID(), "title", item.GetTitle())
	c.publish(snap, ver)
	return CreateResult[T]{Item: item}
}

// DismissError clears a transient create error
func (c *Controller[T, D]) DismissError() {
	c.mu.Lock()
	if c.closed || c.state.CreateErr == nil {
		c.mu.Unlock()
		return
	}
	c.state.CreateErr = nil
	snap, ver := c.commitLocked()
	c.mu.Unlock()

	c.publish(snap, ver)
}

// Close detaches the controller from its view. In-flight requests are
// canceled and no later response changes state or reaches a subscriber.
func (c *Controller[T, D]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.subs = nil
	c.state = State[T]{}
	c.loadCancel = nil
	c.createdDuringLoad = nil
	for _, cancel := range c.inflight {
		cancel()
	}
	c.inflight = nil
	c.mu.Unlock()

	c.logger.Debug("listing controller closed")
}

// Wait blocks until every background request has finished
func (c *Controller[T, D]) Wait() {
	c.wg.Wait()
}

// requestContext derives a request context from ctx and registers it so
// Close can cancel it. Must be called with mu held; release must not be.
func (c *Controller[T, D]) requestContext(ctx context.Context) (reqCtx context.Context, cancel context.CancelFunc, release func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	reqCtx, cancel = context.WithCancel(ctx)
	id := c.nextReq
	c.nextReq++
	c.inflight[id] = cancel

	return reqCtx, cancel, func() {
		cancel()
		c.mu.Lock()
		delete(c.inflight, id)
		c.mu.Unlock()
	}
}

func containsID[T domain.ListItem](items []T, id domain.ID) bool {
	for _, item := range items {
		if item.GetID() == id {
			return true
		}
	}
	return false
}

func (c *Controller[T, D]) filterLocked() []T {
	visible := make([]T, 0, len(c.state.All))
	for _, item := range c.state.All {
		if c.filter.Match(item) {
			visible = append(visible, item)
		}
	}
	return visible
}

// commitLocked stamps a new version and returns the snapshot to publish
func (c *Controller[T, D]) commitLocked() (State[T], uint64) {
	c.version++
	return c.state.clone(), c.version
}

func (c *Controller[T, D]) publish(snap State[T], ver uint64) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if ver <= c.lastNotified {
		return
	}
	c.lastNotified = ver

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	subs := make([]func(State[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
