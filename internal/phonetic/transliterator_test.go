package phonetic

import (
	"strings"
	"testing"
)

func TestContainsChinese(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"成都", true},
		{"hello", false},
		{"mixed 歌曲 text", true},
		{"", false},
		{"カタカナ", false},
	}
	for _, tc := range cases {
		if got := ContainsChinese(tc.input); got != tc.want {
			t.Fatalf("ContainsChinese(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestTransliterate(t *testing.T) {
	tr := NewTransliterator()
	if got := tr.Transliterate("成都"); got != "cheng du" {
		t.Fatalf("Transliterate(成都) = %q", got)
	}
	got := tr.Transliterate("hello 世界")
	if !strings.HasPrefix(got, "hello ") {
		t.Fatalf("non-Han text should pass through, got %q", got)
	}
	if !strings.Contains(got, "shi") || !strings.Contains(got, "jie") {
		t.Fatalf("expected pinyin syllables in %q", got)
	}
	if got := tr.Transliterate("plain"); got != "plain" {
		t.Fatalf("Transliterate(plain) = %q", got)
	}
}

func TestCompareSkipsPhoneticForStrongDirectScore(t *testing.T) {
	tr := NewTransliterator()
	score, usedPhonetic := tr.Compare("hello world", "hello world")
	if score != 100 || usedPhonetic {
		t.Fatalf("got %v, %v; want 100, false", score, usedPhonetic)
	}
}

func TestCompareUsesPhoneticForHomophones(t *testing.T) {
	tr := NewTransliterator()
	// Different characters, same pronunciation.
	score, usedPhonetic := tr.Compare("川流", "穿流")
	if !usedPhonetic {
		t.Fatalf("expected phonetic comparison, score %v", score)
	}
	if score != 100 {
		t.Fatalf("homophones should score 100 phonetically, got %v", score)
	}
}

func TestCompareStaysDirectForLatinText(t *testing.T) {
	tr := NewTransliterator()
	score, usedPhonetic := tr.Compare("abc", "xyz")
	if usedPhonetic {
		t.Fatal("no CJK present, phonetic path should not run")
	}
	if score >= directMatchThreshold {
		t.Fatalf("unexpected high score %v", score)
	}
}

func TestBestMatchPicksClosestCandidate(t *testing.T) {
	tr := NewTransliterator()
	match, score, usedPhonetic := tr.BestMatch("川流", []string{"completely different", "穿流"})
	if match != "穿流" {
		t.Fatalf("match = %q, want 穿流", match)
	}
	if score != 100 || !usedPhonetic {
		t.Fatalf("score=%v usedPhonetic=%v, want 100, true", score, usedPhonetic)
	}

	match, score, _ = tr.BestMatch("anything", nil)
	if match != "" || score != 0 {
		t.Fatalf("empty candidates should yield zero result, got %q, %v", match, score)
	}
}
