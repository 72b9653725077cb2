package pinyin

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single word", "ni3", []string{"ni3"}},
		{"letters and digits stay together", "Ni3hao3", []string{"Ni3hao3"}},
		{"spaces separate words", "ni3 hao3", []string{"ni3", " ", "hao3"}},
		{"punctuation separate", "hao3, ma5?", []string{"hao3", ",", " ", "ma5", "?"}},
		{"non latin passthrough", "你好 ni3", []string{"你", "好", " ", "ni3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q; want %q", tt.in, got, tt.want)
			}
			if joined := strings.Join(got, ""); joined != tt.in {
				t.Errorf("Split(%q) joined = %q", tt.in, joined)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whole syllable", "hao3", []string{"hao3"}},
		{"two syllables with tones", "Ni3hao3", []string{"Ni3", "hao3"}},
		{"two bare syllables", "nihao", []string{"ni", "hao"}},
		{"longest prefix wins", "xian1", []string{"xian1"}},
		{"greedy split", "xian1sheng5", []string{"xian1", "sheng5"}},
		{"trailing garbage kept whole", "ma1xyz", []string{"ma1", "xyz"}},
		{"unmatched word", "qwrt", []string{"qwrt"}},
		{"english word split where a prefix matches", "hello", []string{"he", "llo"}},
		{"single non syllable character", "q", []string{"q"}},
		{"digit only", "3", []string{"3"}},
		{"umlaut syllable", "nü3", []string{"nü3"}},
		{"umlaut inside word", "lüe4le5", []string{"lüe4", "le5"}},
		{"extra digit", "ma33", []string{"ma3", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSegment_ReconstructsInput(t *testing.T) {
	inputs := []string{
		"Ni3hao3", "zhong1guo2ren2", "abcdefg", "xiè", "lüe4x", "Wo3men5", "a1a1a1", "ü",
	}

	for _, in := range inputs {
		if joined := strings.Join(Segment(in), ""); joined != in {
			t.Errorf("Segment(%q) joined = %q", in, joined)
		}
	}
}

func TestSegment_NeverSplitsRunes(t *testing.T) {
	inv := BuildInventory()
	for _, piece := range inv.Segment("lüülü3") {
		if !utf8.ValidString(piece) {
			t.Errorf("piece %q is not valid UTF-8", piece)
		}
	}
}

func TestTokens(t *testing.T) {
	want := []string{"Ni3", "hao3", " ", "ni3", " ", "hao3"}

	got := DefaultInventory().Tokens("Ni3hao3 ni3 hao3")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %q; want %q", got, want)
	}
}
