package match

import (
	"math"
	"testing"

	"trackmatch/internal/textnorm"
)

func newTestScorer(t *testing.T) *scorer {
	t.Helper()
	return newScorer(0.6, 0.4, textnorm.New())
}

func TestTitleSimilarityIsSymmetric(t *testing.T) {
	s := newTestScorer(t)
	pairs := [][2]string{
		{"Midnight City", "Midnight City (Remastered)"},
		{"测试歌曲", "測試歌曲"},
		{"Hello World", "World Hello"},
	}
	for _, pair := range pairs {
		forward := s.titleSimilarity(pair[0], pair[1])
		backward := s.titleSimilarity(pair[1], pair[0])
		if math.Abs(forward-backward) > 0.001 {
			t.Fatalf("titleSimilarity(%q, %q) = %.2f but reversed = %.2f", pair[0], pair[1], forward, backward)
		}
	}
}

func TestTitleSimilarityIgnoresAnnotations(t *testing.T) {
	s := newTestScorer(t)
	plain := s.titleSimilarity("Song Title", "Song Title")
	annotated := s.titleSimilarity("Song Title (Live)", "Song Title [2011 Remaster]")
	if plain != 100.0 {
		t.Fatalf("identical titles scored %.2f, want 100", plain)
	}
	if annotated != 100.0 {
		t.Fatalf("titles differing only in annotations scored %.2f, want 100", annotated)
	}
}

func TestArtistSimilarityIsAsymmetric(t *testing.T) {
	s := newTestScorer(t)
	// Every query artist is present on the candidate side.
	subset, _ := s.artistSimilarity([]string{"beta"}, []string{"alpha", "beta"})
	// One query artist has no counterpart.
	superset, _ := s.artistSimilarity([]string{"gamma", "beta"}, []string{"beta"})
	if subset < 99.0 {
		t.Fatalf("covered query artist scored %.2f, want ~100", subset)
	}
	if superset >= subset {
		t.Fatalf("uncovered query artist scored %.2f, want below %.2f", superset, subset)
	}
}

func TestArtistSimilarityPrimaryArtistFloor(t *testing.T) {
	s := newTestScorer(t)
	score, _ := s.artistSimilarity(
		[]string{"The Band", "Nobody Anywhere", "Someone Else Entirely"},
		[]string{"The Band"},
	)
	if score < primaryArtistFloor {
		t.Fatalf("strong primary artist scored %.2f, want >= %.1f", score, primaryArtistFloor)
	}
}

func TestArtistSimilarityBlankPrimaryGetsNoFloor(t *testing.T) {
	s := newTestScorer(t)
	// The first-listed artist normalizes away entirely, so a later artist
	// matching the candidate must not trigger the primary short circuit.
	score, _ := s.artistSimilarity(
		[]string{"（）", "Band A", "Zzz Qqq"},
		[]string{"Band A"},
	)
	if score >= primaryArtistFloor {
		t.Fatalf("blank primary artist scored %.2f, want < %.1f", score, primaryArtistFloor)
	}
}

func TestArtistSimilarityPhoneticFallback(t *testing.T) {
	s := newTestScorer(t)
	// Homophones: different characters, identical pinyin.
	score, usedPhonetic := s.artistSimilarity([]string{"穿流"}, []string{"川流"})
	if !usedPhonetic {
		t.Fatal("expected phonetic fallback for weak direct CJK score")
	}
	if score < 99.0 {
		t.Fatalf("homophone artists scored %.2f, want ~100", score)
	}
}

func TestArtistSimilarityEmptySides(t *testing.T) {
	s := newTestScorer(t)
	if score, _ := s.artistSimilarity(nil, nil); score != 100.0 {
		t.Fatalf("both empty scored %.2f, want 100", score)
	}
	if score, _ := s.artistSimilarity([]string{"someone"}, nil); score != 0.0 {
		t.Fatalf("one empty scored %.2f, want 0", score)
	}
}

func TestQuickFilter(t *testing.T) {
	s := newTestScorer(t)
	tests := []struct {
		name      string
		query     Query
		candidate CandidateTrack
		want      bool
	}{
		{
			name:      "close lengths pass",
			query:     Query{Title: "Midnight City", Artists: []string{"M83"}},
			candidate: CandidateTrack{Title: "Midnight City", ArtistNames: []string{"M83"}},
			want:      true,
		},
		{
			name:      "wildly longer title rejected",
			query:     Query{Title: "Hello", Artists: []string{"Adele"}},
			candidate: CandidateTrack{Title: "A Completely Unrelated Extended Compilation Medley", ArtistNames: []string{"Adele"}},
			want:      false,
		},
		{
			name:      "disjoint artists tolerated when counts are close",
			query:     Query{Title: "Song", Artists: []string{"One"}},
			candidate: CandidateTrack{Title: "Song", ArtistNames: []string{"Two", "Three"}},
			want:      true,
		},
		{
			name:      "disjoint artists rejected when counts diverge",
			query:     Query{Title: "Song", Artists: []string{"One"}},
			candidate: CandidateTrack{Title: "Song", ArtistNames: []string{"A", "B", "C", "D"}},
			want:      false,
		},
		{
			name:      "substring overlap keeps diverging counts",
			query:     Query{Title: "Song", Artists: []string{"One"}},
			candidate: CandidateTrack{Title: "Song", ArtistNames: []string{"One feat. Guests", "B", "C", "D"}},
			want:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.quickFilter(tt.query, tt.candidate); got != tt.want {
				t.Fatalf("quickFilter = %v, want %v", got, tt.want)
			}
		})
	}
}
