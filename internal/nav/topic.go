package nav

import (
	"sort"

	"github.com/google/uuid"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

// TopicNavigation describes next/prev targets around a topic. Topic
// browsing is a closed loop over the global flattened order: both
// directions stay enabled whenever at least one topic exists, and a
// single topic wraps to itself.
type TopicNavigation struct {
	Next          *models.TopicListItem
	Prev          *models.TopicListItem
	CanGoNext     bool
	CanGoPrevious bool
	CurrentIndex  int
}

// FlattenTopics returns topics in their global navigation order:
// category bucket order first, then sort_order ascending within each
// bucket. Unknown categories sort after the known buckets, keeping
// the result total so every topic stays reachable.
func FlattenTopics(topics []models.TopicListItem) []models.TopicListItem {
	rank := make(map[string]int, len(models.CategoryOrder))
	for i, c := range models.CategoryOrder {
		rank[c] = i
	}
	bucket := func(cat string) int {
		if r, ok := rank[cat]; ok {
			return r
		}
		return len(models.CategoryOrder)
	}

	out := make([]models.TopicListItem, len(topics))
	copy(out, topics)
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := bucket(out[i].Category), bucket(out[j].Category)
		if bi != bj {
			return bi < bj
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

// ComputeTopicNavigation returns circular navigation metadata for the
// topic with the given ID within the flattened global order. A missing
// topic or empty list yields CurrentIndex -1 with both directions
// disabled.
func ComputeTopicNavigation(topicID uuid.UUID, ordered []models.TopicListItem) TopicNavigation {
	nav := TopicNavigation{CurrentIndex: -1}
	if len(ordered) == 0 {
		return nav
	}

	for i := range ordered {
		if ordered[i].TopicID == topicID {
			nav.CurrentIndex = i
			break
		}
	}
	if nav.CurrentIndex == -1 {
		return nav
	}

	next := WrapTopicIndex(nav.CurrentIndex+1, ordered)
	prev := WrapTopicIndex(nav.CurrentIndex-1, ordered)
	nav.Next = &ordered[next]
	nav.Prev = &ordered[prev]
	nav.CanGoNext = true
	nav.CanGoPrevious = true
	return nav
}
