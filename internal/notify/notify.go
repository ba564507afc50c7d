// Package notify carries non-blocking notices about recovered failures, such
// as a discarded saved draft or a failed autosave, from the core to the UI.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Kind classifies a notice.
type Kind string

// Notice kinds
const (
	// KindLoadInvalid: the saved draft failed validation and was discarded.
	KindLoadInvalid Kind = "load_invalid"
	// KindStorageRead: the saved draft could not be read.
	KindStorageRead Kind = "storage_read"
	// KindStorageWrite: an autosave failed; the in-memory document is intact.
	KindStorageWrite Kind = "storage_write"
	// KindStorageClear: the saved draft could not be erased on reset.
	KindStorageClear Kind = "storage_clear"
)

// Notice is one user-facing warning.
type Notice struct {
	Kind    Kind
	Message string
	Err     error
	At      time.Time
}

// Notifier receives notices. Implementations must not block.
type Notifier interface {
	Notify(n Notice)
}

// Func adapts a function to Notifier.
type Func func(Notice)

// Notify calls f.
func (f Func) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Notifier = Func(func(Notice) {})

// LogNotifier writes notices to a zap logger at warn level.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier returns a notifier backed by logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs n.
func (l *LogNotifier) Notify(n Notice) {
	fields := []zap.Field{zap.String("kind", string(n.Kind))}
	if n.Err != nil {
		fields = append(fields, zap.Error(n.Err))
	}
	l.logger.Warn(n.Message, fields...)
}

// Recorder keeps every notice in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify records n.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Kinds returns the kinds recorded so far, in order.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]Kind, len(r.notices))
	for i, n := range r.notices {
		kinds[i] = n.Kind
	}
	return kinds
}

// Channel delivers notices on a buffered channel, dropping them when the
// buffer is full.
type Channel struct {
	C chan Notice
}

// NewChannel returns a Channel with the given buffer size.
func NewChannel(size int) *Channel {
	return &Channel{C: make(chan Notice, size)}
}

// Notify sends n unless the buffer is full.
func (c *Channel) Notify(n Notice) {
	select {
	case c.C <- n:
	default:
	}
}

// Multi fans every notice out to each notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(n Notice) {
		for _, target := range notifiers {
			if target != nil {
				target.Notify(n)
			}
		}
	})
}

// New builds a notice stamped with the current time.
func New(kind Kind, message string, err error) Notice {
	return Notice{Kind: kind, Message: message, Err: err, At: time.Now()}
}
