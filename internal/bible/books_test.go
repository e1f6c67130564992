package bible

import "testing"

func TestBooksTable(t *testing.T) {
	if len(Books) != 66 {
		t.Fatalf("len(Books) = %d, want 66", len(Books))
	}

	for i, b := range Books {
		if b.ID != i+1 {
			t.Errorf("Books[%d].ID = %d, want %d (IDs must be contiguous)", i, b.ID, i+1)
		}
		if b.ChapterCount < 1 {
			t.Errorf("%s has chapter count %d, want >= 1", b.Name, b.ChapterCount)
		}
		if b.VerseCount < b.ChapterCount {
			t.Errorf("%s has %d verses but %d chapters", b.Name, b.VerseCount, b.ChapterCount)
		}
	}

	// Testament split at Malachi/Matthew
	for _, b := range Books {
		want := "OT"
		if b.ID >= 40 {
			want = "NT"
		}
		if b.Testament != want {
			t.Errorf("%s testament = %s, want %s", b.Name, b.Testament, want)
		}
	}
}

func TestByID(t *testing.T) {
	tests := []struct {
		id       int
		wantName string
	}{
		{1, "Genesis"},
		{31, "Obadiah"},
		{39, "Malachi"},
		{40, "Matthew"},
		{66, "Revelation"},
	}
	for _, tt := range tests {
		b := ByID(tt.id)
		if b == nil {
			t.Fatalf("ByID(%d) = nil", tt.id)
		}
		if b.Name != tt.wantName {
			t.Errorf("ByID(%d).Name = %q, want %q", tt.id, b.Name, tt.wantName)
		}
	}

	for _, id := range []int{0, -1, 67, 1000} {
		if b := ByID(id); b != nil {
			t.Errorf("ByID(%d) = %v, want nil", id, b)
		}
	}

	if got := Name(0); got != "" {
		t.Errorf("Name(0) = %q, want empty", got)
	}
	if got := Name(19); got != "Psalms" {
		t.Errorf("Name(19) = %q, want Psalms", got)
	}
}
