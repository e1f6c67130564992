package ui

import (
	"testing"

	"github.com/google/uuid"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

func TestParseRoute(t *testing.T) {
	topicID := uuid.MustParse("5f9f1d4e-7c3a-4b2e-9d1a-2f8e6c0b4a17")

	tests := []struct {
		name    string
		path    string
		wantPos models.ChapterPosition
		wantID  uuid.UUID
		isTopic bool
		ok      bool
	}{
		{
			name:    "chapter route",
			path:    "/bible/43/3",
			wantPos: models.ChapterPosition{BookID: 43, ChapterNumber: 3},
			ok:      true,
		},
		{
			name:    "topic route",
			path:    "/topics/" + topicID.String(),
			wantID:  topicID,
			isTopic: true,
			ok:      true,
		},
		{
			name: "non-numeric chapter",
			path: "/bible/43/three",
		},
		{
			name: "bad uuid",
			path: "/topics/not-a-uuid",
		},
		{
			name: "unknown prefix",
			path: "/settings",
		},
		{
			name: "empty",
			path: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, id, isTopic, ok := ParseRoute(tt.path)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if isTopic != tt.isTopic {
				t.Errorf("isTopic = %v, want %v", isTopic, tt.isTopic)
			}
			if tt.isTopic && id != tt.wantID {
				t.Errorf("topicID = %v, want %v", id, tt.wantID)
			}
			if !tt.isTopic && pos != tt.wantPos {
				t.Errorf("pos = %+v, want %+v", pos, tt.wantPos)
			}
		})
	}
}
