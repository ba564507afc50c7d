// Package store owns the resume document for one editing session. All reads
// and writes go through a Store; every applied change is handed to the
// persistence adapter and to subscribers.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

var (
	// ErrInvalidTemplate is returned for a template outside the enumeration.
	ErrInvalidTemplate = errors.New("invalid template")
	// ErrInvalidAccentColor is returned for an accent color outside the enumeration.
	ErrInvalidAccentColor = errors.New("invalid accent color")
	// ErrUnknownSection is returned when toggling a section that does not exist.
	ErrUnknownSection = errors.New("unknown section")
)

// Persister is the persistence pipeline a Store drives. *persist.Adapter
// implements it.
type Persister interface {
	Load(ctx context.Context) ([]byte, bool, error)
	Save(doc types.Resume)
	Flush(ctx context.Context) error
	Clear(ctx context.Context) error
	Close()
}

// IDGenerator returns a fresh record id.
type IDGenerator func() string

// Options configures Open. Every field is optional.
type Options struct {
	Persister   Persister
	Notifier    notify.Notifier
	IDGenerator IDGenerator
	Logger      *zap.Logger
}

// Store is the single source of truth for the current document.
//
// Mutations are serialized. The document is copy-on-write: a mutation
// replaces only the subtree it touches, so successive snapshots share every
// unchanged collection. Snapshots must be treated as read-only.
type Store struct {
	persister Persister
	notifier  notify.Notifier
	newID     IDGenerator
	logger    *zap.Logger

	mu        sync.Mutex
	doc       types.Resume
	listeners map[int]func(types.Resume)
	nextSub   int

	// publishMu keeps saves and listener calls in mutation order. It is
	// acquired while mu is held and released after publishing.
	publishMu sync.Mutex
}

// Open builds a Store and restores the saved draft, if any. A missing,
// unreadable or invalid draft leaves the empty default in place; the latter
// two are reported to the notifier. Restoring never schedules a save.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = uuid.NewString
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Store{
		persister: opts.Persister,
		notifier:  opts.Notifier,
		newID:     opts.IDGenerator,
		logger:    opts.Logger,
		doc:       types.EmptyResume(),
		listeners: make(map[int]func(types.Resume)),
	}
	if s.persister != nil {
		s.restore(ctx)
	}
	return s, nil
}

func (s *Store) restore(ctx context.Context) {
	raw, ok, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.Warn("could not read saved draft", zap.Error(err))
		s.notifier.Notify(notify.New(notify.KindStorageRead,
			"Could not read your saved resume; starting from an empty one", err))
		return
	}
	if !ok {
		s.logger.Debug("no saved draft")
		return
	}

	doc, err := schemas.Validate(raw)
	if err != nil {
		s.logger.Warn("discarding invalid saved draft", zap.Error(err))
		s.notifier.Notify(notify.New(notify.KindLoadInvalid,
			"Your saved resume could not be read and was discarded", err))
		return
	}
	s.doc = *doc
	s.logger.Debug("restored saved draft")
}

// Snapshot returns the current document. It shares memory with the store;
// use Clone for a copy that can be modified.
func (s *Store) Snapshot() types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Subscribe registers fn to run after every applied change, in order. fn
// runs on the mutating goroutine and must not mutate the store.
func (s *Store) Subscribe(fn func(types.Resume)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}

// mutate applies fn to a shallow copy of the document. fn replaces the
// fields it changes and reports whether anything changed; an unchanged
// document is neither saved nor published.
func (s *Store) mutate(op string, fn func(doc *types.Resume) bool) {
	s.apply(op, func(p Persister, next types.Resume) { p.Save(next) }, fn)
}

// apply runs fn under mu, then hands the result to commit and the listeners
// under publishMu, so persistence calls reach the Persister in mutation order.
func (s *Store) apply(op string, commit func(p Persister, next types.Resume), fn func(doc *types.Resume) bool) {
	s.mu.Lock()
	next := s.doc
	if !fn(&next) {
		s.mu.Unlock()
		return
	}
	s.doc = next
	listeners := s.listenerList()

	s.publishMu.Lock()
	s.mu.Unlock()
	defer s.publishMu.Unlock()

	s.logger.Debug("applied change", zap.String("op", op))
	if s.persister != nil {
		commit(s.persister, next)
	}
	for _, fn := range listeners {
		fn(next)
	}
}

// listenerList returns the listeners in subscription order. Callers hold mu.
func (s *Store) listenerList() []func(types.Resume) {
	out := make([]func(types.Resume), 0, len(s.listeners))
	for id := 0; id < s.nextSub; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// UpdatePersonalInfo merges patch into the contact block.
func (s *Store) UpdatePersonalInfo(patch types.PersonalInfoPatch) {
	s.mutate("update_personal_info", func(doc *types.Resume) bool {
		doc.PersonalInfo = patch.Apply(doc.PersonalInfo)
		return true
	})
}

// UpdateSummary replaces the summary text.
func (s *Store) UpdateSummary(text string) {
	s.mutate("update_summary", func(doc *types.Resume) bool {
		doc.Summary = text
		return true
	})
}

// UpdateTemplate switches the template. An unknown template is rejected and
// the document is left untouched.
func (s *Store) UpdateTemplate(t types.Template) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTemplate, t)
	}
	s.mutate("update_template", func(doc *types.Resume) bool {
		doc.Template = t
		return true
	})
	return nil
}

// UpdateAccentColor switches the accent color. An unknown color is rejected
// and the document is left untouched.
func (s *Store) UpdateAccentColor(c types.AccentColor) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAccentColor, c)
	}
	s.mutate("update_accent_color", func(doc *types.Resume) bool {
		doc.AccentColor = c
		return true
	})
	return nil
}

// ToggleSection flips the visibility of one section.
func (s *Store) ToggleSection(section types.Section) error {
	if !section.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	s.mutate("toggle_section", func(doc *types.Resume) bool {
		toggled, ok := doc.ShowSections.Toggled(section)
		doc.ShowSections = toggled
		return ok
	})
	return nil
}

// LoadResume validates input and, on success, replaces the whole document.
// On failure the document is untouched and the validation error is returned.
func (s *Store) LoadResume(input any) error {
	doc, err := schemas.Validate(input)
	if err != nil {
		return err
	}
	s.mutate("load_resume", func(cur *types.Resume) bool {
		*cur = *doc
		return true
	})
	return nil
}

// ResetResume replaces the document with the empty default, cancels any
// pending save and erases the saved draft. A failure to erase is reported
// and returned; the in-memory reset happens regardless.
func (s *Store) ResetResume(ctx context.Context) error {
	var clearErr error
	erase := func(p Persister, _ types.Resume) { clearErr = p.Clear(ctx) }
	s.apply("reset_resume", erase, func(doc *types.Resume) bool {
		*doc = types.EmptyResume()
		return true
	})
	if clearErr != nil {
		s.logger.Warn("could not erase saved draft", zap.Error(clearErr))
		s.notifier.Notify(notify.New(notify.KindStorageClear,
			"Could not erase your saved resume", clearErr))
		return fmt.Errorf("failed to reset resume: %w", clearErr)
	}
	return nil
}

// Flush writes any pending save now.
func (s *Store) Flush(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	return s.persister.Flush(ctx)
}

// Close cancels any pending save. Unflushed changes are dropped.
func (s *Store) Close() {
	if s.persister != nil {
		s.persister.Close()
	}
}
