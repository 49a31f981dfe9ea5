package importer

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantTitle   string
		wantArtists []string
		wantErr     bool
	}{
		{
			name:        "title and single artist",
			line:        "Midnight City - M83",
			wantTitle:   "Midnight City",
			wantArtists: []string{"M83"},
		},
		{
			name:        "multiple artists",
			line:        "Some Duet - First Artist / Second Artist",
			wantTitle:   "Some Duet",
			wantArtists: []string{"First Artist", "Second Artist"},
		},
		{
			name:        "full-width artist separator",
			line:        "合唱歌曲 - 歌手一／歌手二",
			wantTitle:   "合唱歌曲",
			wantArtists: []string{"歌手一", "歌手二"},
		},
		{
			name:        "leading track number",
			line:        "12. Numbered Song - Artist",
			wantTitle:   "Numbered Song",
			wantArtists: []string{"Artist"},
		},
		{
			name:        "cjk enumeration numbering",
			line:        "3、中文歌名 - 中文歌手",
			wantTitle:   "中文歌名",
			wantArtists: []string{"中文歌手"},
		},
		{
			name:      "hyphen inside title survives",
			line:      "Twenty-One Guns - Green Day",
			wantTitle: "Twenty-One Guns", wantArtists: []string{"Green Day"},
		},
		{
			name:    "missing separator",
			line:    "Just A Title",
			wantErr: true,
		},
		{
			name:    "empty artists",
			line:    "Title -   ",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, artists, err := ParseLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", tt.line, err)
			}
			if title != tt.wantTitle {
				t.Fatalf("title = %q, want %q", title, tt.wantTitle)
			}
			if len(artists) != len(tt.wantArtists) {
				t.Fatalf("artists = %v, want %v", artists, tt.wantArtists)
			}
			for i := range artists {
				if artists[i] != tt.wantArtists[i] {
					t.Fatalf("artists = %v, want %v", artists, tt.wantArtists)
				}
			}
		})
	}
}

func TestParseLineMissingSeparatorSentinel(t *testing.T) {
	_, _, err := ParseLine("no separator here")
	if !errors.Is(err, ErrMissingSeparator) {
		t.Fatalf("expected ErrMissingSeparator, got %v", err)
	}
}

func TestParseLines(t *testing.T) {
	input := strings.Join([]string{
		"# favorites",
		"",
		"1. First Song - Artist A",
		"Broken Line Without Separator",
		"   ",
		"2. Second Song - Artist B / Artist C",
	}, "\n")

	entries, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3 (blank and comment lines skipped)", len(entries))
	}

	if entries[0].Line != 3 || entries[0].Title != "First Song" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Err == nil {
		t.Fatal("expected format error for the separator-less line")
	}
	if entries[2].Title != "Second Song" || len(entries[2].Artists) != 2 {
		t.Fatalf("unexpected last entry: %+v", entries[2])
	}
}
