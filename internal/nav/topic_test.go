package nav

import (
	"testing"

	"github.com/google/uuid"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

func topic(name, category string, sortOrder int) models.TopicListItem {
	return models.TopicListItem{
		TopicID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Name:      name,
		SortOrder: sortOrder,
		Category:  category,
	}
}

func TestFlattenTopics(t *testing.T) {
	// Deliberately shuffled input: themes first, out-of-order sort keys.
	in := []models.TopicListItem{
		topic("Grace", models.CategoryTheme, 2),
		topic("The Flood", models.CategoryEvent, 1),
		topic("Faith", models.CategoryTheme, 1),
		topic("The Prodigal Son", models.CategoryParable, 1),
		topic("Creation", models.CategoryEvent, 0),
		topic("The Messiah", models.CategoryProphecy, 1),
	}

	got := FlattenTopics(in)

	wantOrder := []string{"Creation", "The Flood", "The Messiah", "The Prodigal Son", "Faith", "Grace"}
	if len(got) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(got), len(wantOrder))
	}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("ordered[%d] = %q, want %q", i, got[i].Name, name)
		}
	}

	// Input must not be reordered in place.
	if in[0].Name != "Grace" {
		t.Errorf("FlattenTopics mutated its input")
	}
}

func TestFlattenTopicsUnknownCategory(t *testing.T) {
	in := []models.TopicListItem{
		topic("Mystery", "FUTURE_CATEGORY", 0),
		topic("Creation", models.CategoryEvent, 0),
	}
	got := FlattenTopics(in)
	if got[0].Name != "Creation" || got[1].Name != "Mystery" {
		t.Errorf("unknown category should sort after known buckets, got %v then %v", got[0].Name, got[1].Name)
	}
}

func TestComputeTopicNavigation(t *testing.T) {
	ordered := FlattenTopics([]models.TopicListItem{
		topic("Creation", models.CategoryEvent, 0),
		topic("The Flood", models.CategoryEvent, 1),
		topic("The Messiah", models.CategoryProphecy, 1),
	})

	t.Run("middle topic", func(t *testing.T) {
		nav := ComputeTopicNavigation(ordered[1].TopicID, ordered)
		if nav.CurrentIndex != 1 {
			t.Fatalf("CurrentIndex = %d, want 1", nav.CurrentIndex)
		}
		if nav.Next.Name != "The Messiah" || nav.Prev.Name != "Creation" {
			t.Errorf("Next/Prev = %q/%q", nav.Next.Name, nav.Prev.Name)
		}
	})

	t.Run("first topic wraps backward", func(t *testing.T) {
		nav := ComputeTopicNavigation(ordered[0].TopicID, ordered)
		if !nav.CanGoPrevious {
			t.Error("CanGoPrevious = false, want true (circular)")
		}
		if nav.Prev.Name != "The Messiah" {
			t.Errorf("Prev = %q, want wrap to last topic", nav.Prev.Name)
		}
	})

	t.Run("last topic wraps forward", func(t *testing.T) {
		nav := ComputeTopicNavigation(ordered[2].TopicID, ordered)
		if !nav.CanGoNext {
			t.Error("CanGoNext = false, want true (circular)")
		}
		if nav.Next.Name != "Creation" {
			t.Errorf("Next = %q, want wrap to first topic", nav.Next.Name)
		}
	})
}

func TestComputeTopicNavigationSingleTopic(t *testing.T) {
	only := topic("Creation", models.CategoryEvent, 0)
	ordered := []models.TopicListItem{only}

	nav := ComputeTopicNavigation(only.TopicID, ordered)

	if !nav.CanGoNext || !nav.CanGoPrevious {
		t.Errorf("single topic must stay navigable, got next=%v prev=%v", nav.CanGoNext, nav.CanGoPrevious)
	}
	if nav.Next == nil || nav.Next.TopicID != only.TopicID {
		t.Errorf("Next should wrap to the topic itself")
	}
	if nav.Prev == nil || nav.Prev.TopicID != only.TopicID {
		t.Errorf("Prev should wrap to the topic itself")
	}
	if nav.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", nav.CurrentIndex)
	}
}

func TestComputeTopicNavigationDisabled(t *testing.T) {
	ordered := []models.TopicListItem{topic("Creation", models.CategoryEvent, 0)}

	t.Run("unknown topic", func(t *testing.T) {
		nav := ComputeTopicNavigation(uuid.New(), ordered)
		if nav.CurrentIndex != -1 || nav.CanGoNext || nav.CanGoPrevious || nav.Next != nil || nav.Prev != nil {
			t.Errorf("want disabled result with CurrentIndex -1, got %+v", nav)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		nav := ComputeTopicNavigation(uuid.New(), nil)
		if nav.CurrentIndex != -1 || nav.CanGoNext || nav.CanGoPrevious {
			t.Errorf("want disabled result with CurrentIndex -1, got %+v", nav)
		}
	})
}
