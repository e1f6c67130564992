package nav

import (
	"sync"
	"testing"
	"time"

	"github.com/verse-mate/versemate-tui/internal/bible"
	"github.com/verse-mate/versemate-tui/pkg/models"
)

type fakePager struct {
	animated []int
	snapped  []int
}

func (f *fakePager) SetPage(index int)                 { f.animated = append(f.animated, index) }
func (f *fakePager) SetPageWithoutAnimation(index int) { f.snapped = append(f.snapped, index) }

type fakeRouter struct {
	mu       sync.Mutex
	replaced []string
	pushed   []string
}

func (f *fakeRouter) Replace(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaced = append(f.replaced, path)
}

func (f *fakeRouter) Push(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, path)
}

func (f *fakeRouter) replacedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.replaced...)
}

func (f *fakeRouter) pushedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.pushed...)
}

type fakeHaptics struct{ pulses int }

func (f *fakeHaptics) Pulse() { f.pulses++ }

type captureLogger struct{ lines []string }

func (l *captureLogger) Debugf(format string, args ...any) { l.lines = append(l.lines, format) }

func newChapterController(start models.ChapterPosition, size int) (*Controller[models.ChapterPosition], *Store[models.ChapterPosition], *fakePager, *fakeRouter, *fakeHaptics) {
	store := NewStore(start, bible.Name(start.BookID))
	pager := &fakePager{}
	router := &fakeRouter{}
	haptics := &fakeHaptics{}
	next, prev := ChapterSteppers(bible.Books)

	c := NewController(ControllerConfig[models.ChapterPosition]{
		Store:       store,
		WindowSize:  size,
		BuildWindow: ChapterWindowBuilder(bible.Books),
		Next:        next,
		Prev:        prev,
		RoutePath:   ChapterRoutePath,
		DisplayName: func(p models.ChapterPosition) string { return bible.Name(p.BookID) },
		Router:      router,
		Haptics:     haptics,
		Logger:      &captureLogger{},
	})
	c.AttachPager(pager)
	return c, store, pager, router, haptics
}

func TestControllerInitialWindow(t *testing.T) {
	c, _, _, _, _ := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()

	slots, idx := c.Window()
	if len(slots) != 5 || idx != 2 {
		t.Fatalf("window = %d slots, current %d; want 5 slots, current 2", len(slots), idx)
	}
	if slots[2] != (models.ChapterPosition{BookID: 1, ChapterNumber: 3}) {
		t.Errorf("center slot = %v, want Genesis 3", slots[2])
	}
}

func TestControllerInteriorSwipe(t *testing.T) {
	// [Gen1..Gen5] centered on Gen3. Swiping one slot forward is not
	// an edge: state updates, window stays, no snap command.
	c, store, pager, _, haptics := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()

	c.BeginSwipe()
	c.PageSettled(3)

	got, _ := store.Current()
	if got != (models.ChapterPosition{BookID: 1, ChapterNumber: 4}) {
		t.Errorf("store = %v, want Genesis 4", got)
	}
	if len(pager.snapped) != 0 {
		t.Errorf("interior swipe issued snap commands: %v", pager.snapped)
	}
	if haptics.pulses != 1 {
		t.Errorf("haptic pulses = %d, want 1", haptics.pulses)
	}
	if _, idx := c.Window(); idx != 3 {
		t.Errorf("current slot = %d, want 3", idx)
	}
}

func TestControllerEdgeSwipeRecenters(t *testing.T) {
	// Window [Gen1..Gen5] centered on Gen3; swipe to slot 4 (Gen5, an
	// edge slot with more content beyond it). The store must update to
	// Genesis 5 and a non-animated snap back to center must be issued
	// against the rebuilt window.
	c, store, pager, _, haptics := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()

	c.BeginSwipe()
	c.PageSettled(4)

	got, _ := store.Current()
	if got != (models.ChapterPosition{BookID: 1, ChapterNumber: 5}) {
		t.Errorf("store = %v, want Genesis 5", got)
	}

	if len(pager.snapped) != 1 || pager.snapped[0] != 2 {
		t.Fatalf("snap commands = %v, want one snap to slot 2", pager.snapped)
	}

	slots, idx := c.Window()
	if idx != 2 || slots[2] != (models.ChapterPosition{BookID: 1, ChapterNumber: 5}) {
		t.Errorf("rebuilt window center = %v at slot %d, want Genesis 5 at slot 2", slots[idx], idx)
	}
	if slots[0] != (models.ChapterPosition{BookID: 1, ChapterNumber: 3}) {
		t.Errorf("rebuilt window starts at %v, want Genesis 3", slots[0])
	}
	if haptics.pulses != 1 {
		t.Errorf("haptic pulses = %d, want 1", haptics.pulses)
	}
}

func TestControllerTrueBoundaryNoSnap(t *testing.T) {
	// Window ending at Revelation 22: settling on the last slot is a
	// true boundary, not an edge shift. No snap command.
	c, store, pager, _, _ := newChapterController(models.ChapterPosition{BookID: 66, ChapterNumber: 21}, 5)
	defer c.Close()

	slots, idx := c.Window()
	lastSlot := len(slots) - 1
	if slots[lastSlot] != (models.ChapterPosition{BookID: 66, ChapterNumber: 22}) {
		t.Fatalf("window does not end at Revelation 22: %v", slots)
	}

	c.BeginSwipe()
	c.PageSettled(lastSlot)

	got, _ := store.Current()
	if got != (models.ChapterPosition{BookID: 66, ChapterNumber: 22}) {
		t.Errorf("store = %v, want Revelation 22", got)
	}
	if len(pager.snapped) != 0 {
		t.Errorf("true boundary issued snap commands: %v", pager.snapped)
	}
	if c.CanGoNext() {
		t.Error("CanGoNext = true at Revelation 22")
	}
	_ = idx
}

func TestControllerPastBoundaryIgnored(t *testing.T) {
	// Genesis 1 in a 3-page window [Gen1, Gen2]: there is no slot for
	// "before Genesis 1". Attempting it must not touch the store and
	// must not panic.
	c, store, pager, _, haptics := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 1}, 3)
	defer c.Close()

	slots, idx := c.Window()
	if len(slots) != 2 || idx != 0 {
		t.Fatalf("window = %d slots, current %d; want 2 slots, current 0", len(slots), idx)
	}

	updates := 0
	store.Subscribe(func(models.ChapterPosition, string) { updates++ })

	c.BeginSwipe()
	c.PageSettled(idx - 1)

	if updates != 0 {
		t.Errorf("state update path was called %d times, want 0", updates)
	}
	if haptics.pulses != 0 {
		t.Errorf("haptic pulses = %d, want 0", haptics.pulses)
	}
	if len(pager.snapped)+len(pager.animated) != 0 {
		t.Errorf("pager commands issued: %v %v", pager.animated, pager.snapped)
	}
	if c.CanGoPrevious() {
		t.Error("CanGoPrevious = true at Genesis 1")
	}
	if c.Phase() != PhaseSettled {
		t.Errorf("phase = %v, want settled", c.Phase())
	}
}

func TestControllerSettleBackIsNoop(t *testing.T) {
	c, store, _, _, haptics := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()

	updates := 0
	store.Subscribe(func(models.ChapterPosition, string) { updates++ })

	_, idx := c.Window()
	c.BeginSwipe()
	c.PageSettled(idx)

	if updates != 0 {
		t.Errorf("settle-back updated the store %d times, want 0", updates)
	}
	if haptics.pulses != 0 {
		t.Errorf("settle-back fired %d haptic pulses, want 0", haptics.pulses)
	}
}

func TestControllerExternalJump(t *testing.T) {
	c, store, pager, _, _ := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()

	target := models.ChapterPosition{BookID: 43, ChapterNumber: 3}
	store.Jump(target, "John")

	slots, idx := c.Window()
	if slots[idx] != target {
		t.Errorf("window center = %v, want %v", slots[idx], target)
	}
	if len(pager.snapped) != 1 || pager.snapped[0] != idx {
		t.Errorf("snap commands = %v, want one snap to %d", pager.snapped, idx)
	}
}

func TestControllerJumpPushesRoute(t *testing.T) {
	// An explicit jump must land in the route history immediately; the
	// persisted route may never lag behind the rendered page.
	c, _, _, router, _ := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()

	c.GoNext()

	if got := router.pushedPaths(); len(got) != 1 || got[0] != "/bible/1/4" {
		t.Fatalf("route pushes after GoNext = %v, want exactly /bible/1/4", got)
	}

	// A swipe replacement still pending when a jump arrives must be
	// cancelled, not applied on top of the pushed route.
	c.BeginSwipe()
	c.PageSettled(3) // Genesis 5
	c.GoPrevious()   // back to Genesis 4

	time.Sleep(RouteSyncDelay * 2)
	if got := router.replacedPaths(); len(got) != 0 {
		t.Errorf("stale swipe route applied after a jump: %v", got)
	}
	if got := router.pushedPaths(); len(got) != 2 || got[1] != "/bible/1/4" {
		t.Errorf("route pushes = %v, want a second /bible/1/4", got)
	}
}

func TestControllerRedundantJumpIgnored(t *testing.T) {
	start := models.ChapterPosition{BookID: 1, ChapterNumber: 3}
	c, store, pager, router, _ := newChapterController(start, 5)
	defer c.Close()

	// A re-render replays the same route params.
	store.Jump(start, "Genesis")

	if len(pager.snapped) != 0 {
		t.Errorf("redundant jump re-centered the pager: %v", pager.snapped)
	}

	// A different target and then the same one again: only the first
	// is processed.
	target := models.ChapterPosition{BookID: 19, ChapterNumber: 23}
	store.Jump(target, "Psalms")
	store.Jump(target, "Psalms")

	if len(pager.snapped) != 1 {
		t.Errorf("snap commands = %v, want exactly one", pager.snapped)
	}
	if got := router.pushedPaths(); len(got) != 1 {
		t.Errorf("route pushes = %v, want exactly one", got)
	}
}

func TestControllerJumpDroppedWhileSwiping(t *testing.T) {
	start := models.ChapterPosition{BookID: 1, ChapterNumber: 3}
	c, store, pager, _, _ := newChapterController(start, 5)
	defer c.Close()

	c.BeginSwipe()
	store.Jump(models.ChapterPosition{BookID: 43, ChapterNumber: 3}, "John")

	if len(pager.snapped) != 0 {
		t.Errorf("jump processed during a swipe: %v", pager.snapped)
	}
	// The window still belongs to the pre-jump position.
	slots, idx := c.Window()
	if slots[idx] != start {
		t.Errorf("window center = %v, want %v", slots[idx], start)
	}
	// The rejected jump must not move the store either: current
	// position and mounted window stay in agreement.
	if got, _ := store.Current(); got != start {
		t.Errorf("store = %v after dropped jump, want %v", got, start)
	}
}

func TestControllerNilPagerSafe(t *testing.T) {
	c, store, _, _, _ := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()
	c.AttachPager(nil)

	// Neither edge resolution nor external jumps may panic without a pager.
	c.BeginSwipe()
	c.PageSettled(4)
	store.Jump(models.ChapterPosition{BookID: 43, ChapterNumber: 3}, "John")
	c.SetPage(1)
	c.GoNext()
	c.GoPrevious()
}

func TestControllerGoNextGoPrevious(t *testing.T) {
	c, store, _, _, _ := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 50}, 5)
	defer c.Close()

	c.GoNext()
	got, _ := store.Current()
	if got != (models.ChapterPosition{BookID: 2, ChapterNumber: 1}) {
		t.Errorf("GoNext landed on %v, want Exodus 1", got)
	}

	c.GoPrevious()
	got, _ = store.Current()
	if got != (models.ChapterPosition{BookID: 1, ChapterNumber: 50}) {
		t.Errorf("GoPrevious landed on %v, want Genesis 50", got)
	}
}

func TestControllerGoPreviousAtStartIsNoop(t *testing.T) {
	start := models.ChapterPosition{BookID: 1, ChapterNumber: 1}
	c, store, pager, _, _ := newChapterController(start, 3)
	defer c.Close()

	c.GoPrevious()

	got, _ := store.Current()
	if got != start {
		t.Errorf("store = %v, want unchanged %v", got, start)
	}
	if len(pager.snapped) != 0 {
		t.Errorf("pager commands issued: %v", pager.snapped)
	}
}

func TestControllerDebouncedRouteSync(t *testing.T) {
	c, _, _, router, _ := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer c.Close()

	// Two rapid swipes: only the second route lands, once, and only
	// after the quiet period.
	c.BeginSwipe()
	c.PageSettled(3)
	c.BeginSwipe()
	c.PageSettled(2)

	if got := router.replacedPaths(); len(got) != 0 {
		t.Fatalf("route updated synchronously: %v", got)
	}

	time.Sleep(RouteSyncDelay / 2)
	c.BeginSwipe()
	c.PageSettled(4)
	time.Sleep(RouteSyncDelay / 2)
	if got := router.replacedPaths(); len(got) != 0 {
		t.Fatalf("route updated before the rescheduled delay elapsed: %v", got)
	}

	time.Sleep(RouteSyncDelay * 2)
	got := router.replacedPaths()
	if len(got) != 1 {
		t.Fatalf("route replacements = %v, want exactly one", got)
	}
	if got[0] != "/bible/1/5" {
		t.Errorf("route = %q, want /bible/1/5", got[0])
	}
}

func TestControllerTopicDomainCircular(t *testing.T) {
	ordered := FlattenTopics([]models.TopicListItem{
		topic("Creation", models.CategoryEvent, 0),
		topic("The Flood", models.CategoryEvent, 1),
		topic("The Messiah", models.CategoryProphecy, 1),
	})
	store := NewStore(ordered[0], ordered[0].Name)
	pager := &fakePager{}
	next, prev := TopicSteppers(ordered)

	c := NewController(ControllerConfig[models.TopicListItem]{
		Store:       store,
		WindowSize:  3,
		BuildWindow: TopicWindowBuilder(ordered),
		Next:        next,
		Prev:        prev,
		RoutePath:   TopicRoutePath,
		DisplayName: func(t models.TopicListItem) string { return t.Name },
	})
	c.AttachPager(pager)
	defer c.Close()

	// Window around the first topic wraps: [Messiah, Creation, Flood].
	slots, idx := c.Window()
	if len(slots) != 3 || idx != 1 {
		t.Fatalf("window = %d slots, current %d; want 3 slots, current 1", len(slots), idx)
	}
	if slots[0].Name != "The Messiah" {
		t.Errorf("slots[0] = %q, want wraparound to The Messiah", slots[0].Name)
	}

	// Previous is always possible in the circular domain.
	if !c.CanGoPrevious() || !c.CanGoNext() {
		t.Error("circular domain must keep both directions enabled")
	}

	// Swiping to the wrapped edge shifts the window, never truncates.
	c.BeginSwipe()
	c.PageSettled(0)

	got, _ := store.Current()
	if got.Name != "The Messiah" {
		t.Errorf("store = %q, want The Messiah", got.Name)
	}
	slots, idx = c.Window()
	if len(slots) != 3 || slots[idx].Name != "The Messiah" {
		t.Errorf("window center = %q of %d slots, want The Messiah of 3", slots[idx].Name, len(slots))
	}
	if len(pager.snapped) != 1 {
		t.Errorf("snap commands = %v, want one re-center", pager.snapped)
	}
}

func TestControllersAreIndependent(t *testing.T) {
	// Two controllers running side by side must not share dedup
	// markers or windows.
	a, storeA, pagerA, _, _ := newChapterController(models.ChapterPosition{BookID: 1, ChapterNumber: 3}, 5)
	defer a.Close()
	b, storeB, pagerB, _, _ := newChapterController(models.ChapterPosition{BookID: 40, ChapterNumber: 5}, 5)
	defer b.Close()

	target := models.ChapterPosition{BookID: 19, ChapterNumber: 1}
	storeA.Jump(target, "Psalms")

	if len(pagerA.snapped) != 1 {
		t.Errorf("controller A snaps = %v, want 1", pagerA.snapped)
	}
	if len(pagerB.snapped) != 0 {
		t.Errorf("controller B snapped on A's jump: %v", pagerB.snapped)
	}

	gotB, _ := storeB.Current()
	if gotB != (models.ChapterPosition{BookID: 40, ChapterNumber: 5}) {
		t.Errorf("controller B store = %v, want Matthew 5 unchanged", gotB)
	}

	// The same target jumped on B is not deduped by A's marker.
	storeB.Jump(target, "Psalms")
	if len(pagerB.snapped) != 1 {
		t.Errorf("controller B snaps = %v, want 1", pagerB.snapped)
	}
}
