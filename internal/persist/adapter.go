package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// DefaultDelay is the autosave quiet period.
const DefaultDelay = 500 * time.Millisecond

// Options configures an Adapter. Zero values select the defaults.
type Options struct {
	Key      string
	Delay    time.Duration
	Clock    Clock
	Notifier notify.Notifier
	Logger   *zap.Logger
}

// Adapter stores the latest document under one key. Save is debounced: a burst
// of calls produces one write, a quiet period after the last call, containing
// the document from that last call.
type Adapter struct {
	storage  Storage
	key      string
	delay    time.Duration
	clock    Clock
	notifier notify.Notifier
	logger   *zap.Logger

	// writeMu orders storage writes and deletes. It is taken before mu.
	writeMu sync.Mutex

	mu      sync.Mutex
	pending *types.Resume
	timer   Timer
	gen     uint64
	closed  bool
}

// NewAdapter returns an Adapter writing to storage.
func NewAdapter(storage Storage, opts Options) *Adapter {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Adapter{
		storage:  storage,
		key:      opts.Key,
		delay:    opts.Delay,
		clock:    opts.Clock,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// Key returns the storage key.
func (a *Adapter) Key() string {
	return a.key
}

// Load reads the stored value, if any. Absence is not an error.
func (a *Adapter) Load(ctx context.Context) ([]byte, bool, error) {
	value, ok, err := a.storage.Get(ctx, a.key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", a.key, err)
	}
	return value, ok, nil
}

// Save schedules doc to be written once the quiet period passes without
// another Save. doc must not be modified afterwards.
func (a *Adapter) Save(doc types.Resume) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	a.pending = &doc
	a.gen++
	gen := a.gen
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = a.clock.AfterFunc(a.delay, func() { a.fire(gen) })
}

// Pending reports whether a write is scheduled.
func (a *Adapter) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

func (a *Adapter) fire(gen uint64) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	if a.closed || gen != a.gen || a.pending == nil {
		a.mu.Unlock()
		return
	}
	doc := *a.pending
	a.pending = nil
	a.timer = nil
	a.mu.Unlock()

	_ = a.write(context.Background(), doc)
}

// takePending cancels the scheduled write and returns its document. Callers
// hold writeMu.
func (a *Adapter) takePending() *types.Resume {
	a.mu.Lock()
	defer a.mu.Unlock()
	doc := a.pending
	a.pending = nil
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	return doc
}

// Flush writes the pending document now, if there is one.
func (a *Adapter) Flush(ctx context.Context) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	doc := a.takePending()
	if doc == nil {
		return nil
	}
	return a.write(ctx, *doc)
}

// Clear cancels any pending write and deletes the stored value.
func (a *Adapter) Clear(ctx context.Context) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.takePending()
	if err := a.storage.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", a.key, err)
	}
	a.logger.Debug("cleared saved draft", zap.String("key", a.key))
	return nil
}

// Close cancels any pending write. Later Saves are ignored.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.pending = nil
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// write serializes and stores doc. Failures are reported to the notifier and
// returned; nothing is retried. Callers hold writeMu.
func (a *Adapter) write(ctx context.Context, doc types.Resume) error {
	data, err := json.Marshal(doc)
	if err != nil {
		err = fmt.Errorf("failed to encode draft: %w", err)
		a.notifier.Notify(notify.New(notify.KindStorageWrite, "Could not save your resume", err))
		return err
	}

	if err := a.storage.Set(ctx, a.key, data); err != nil {
		err = fmt.Errorf("failed to save %s: %w", a.key, err)
		a.logger.Warn("autosave failed", zap.String("key", a.key), zap.Error(err))
		a.notifier.Notify(notify.New(notify.KindStorageWrite, "Could not save your resume", err))
		return err
	}

	a.logger.Debug("saved draft", zap.String("key", a.key), zap.Int("bytes", len(data)))
	return nil
}
