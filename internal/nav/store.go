package nav

import "sync"

// Store is the single source of truth for "current position" within
// one reader session. P is the domain position type (ChapterPosition
// for the Bible reader, TopicListItem for the topic reader).
//
// There are exactly two write paths: SetCurrent, called by the pager
// controller when a swipe settles, and Jump, called by external
// navigation sources (picker modal, deep link, floating buttons).
// Both are synchronous: the new state is observable to every reader
// the moment the call returns. View code only ever reads.
type Store[P comparable] struct {
	mu          sync.Mutex
	current     P
	displayName string
	onJump      func(P) bool
	subs        map[int]func(P, string)
	nextSubID   int
}

// NewStore creates a store seeded with the session's initial position
// (from route params or the persisted last route).
func NewStore[P comparable](initial P, displayName string) *Store[P] {
	return &Store[P]{
		current:     initial,
		displayName: displayName,
		subs:        make(map[int]func(P, string)),
	}
}

// Current returns the current position and its display name.
func (s *Store[P]) Current() (P, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.displayName
}

// SetCurrent updates the position synchronously and notifies
// subscribers. Identical values still notify: consumers track update
// counts, and deduplication here would hide settled swipes that land
// back on the same page.
func (s *Store[P]) SetCurrent(pos P, displayName string) {
	s.mu.Lock()
	s.current = pos
	s.displayName = displayName
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(pos, displayName)
	}
}

// Jump routes an external navigation request through the registered
// jump handler and commits the position like SetCurrent once the
// handler accepts it. A rejected jump leaves the store untouched, so
// the current position can never point at a page the pager was not
// moved to. Without a handler the jump always commits.
func (s *Store[P]) Jump(pos P, displayName string) {
	s.mu.Lock()
	onJump := s.onJump
	s.mu.Unlock()

	if onJump != nil && !onJump(pos) {
		return
	}
	s.SetCurrent(pos, displayName)
}

// OnJump registers the handler consulted by Jump. The handler runs
// before the write lands and reports whether it processed the jump.
// Only one handler is held (the controller owning the pager);
// registering replaces any previous handler.
func (s *Store[P]) OnJump(fn func(P) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onJump = fn
}

// Subscribe registers a read-side listener (header, breadcrumb). The
// returned function unsubscribes.
func (s *Store[P]) Subscribe(fn func(pos P, displayName string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// snapshotSubs copies subscribers while holding the lock, in a stable
// registration order, so notification runs outside the lock.
func (s *Store[P]) snapshotSubs() []func(P, string) {
	out := make([]func(P, string), 0, len(s.subs))
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
