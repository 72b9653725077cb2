package pinyin

import (
	"strconv"
	"strings"
	"testing"
)

func TestBuildInventory_ContainsEveryToneVariant(t *testing.T) {
	inv := BuildInventory()

	for _, family := range syllableTable {
		for _, s := range strings.Fields(family) {
			if !inv.Contains(s) {
				t.Errorf("inventory missing bare syllable %q", s)
			}
			for d := 0; d <= maxToneDigit; d++ {
				if !inv.Contains(s + strconv.Itoa(d)) {
					t.Errorf("inventory missing %q", s+strconv.Itoa(d))
				}
			}
			if inv.Contains(s + "6") {
				t.Errorf("inventory unexpectedly contains %q", s+"6")
			}
		}
	}
}

func TestBuildInventory_Size(t *testing.T) {
	seen := make(map[string]bool)
	for _, family := range syllableTable {
		for _, s := range strings.Fields(family) {
			seen[s] = true
		}
	}

	want := len(seen) * (maxToneDigit + 2)
	if got := BuildInventory().Len(); got != want {
		t.Errorf("Len() = %d; want %d", got, want)
	}
}

func TestBuildInventory_KeysAreLowercase(t *testing.T) {
	for key := range BuildInventory().set {
		if strings.ToLower(key) != key {
			t.Errorf("key %q is not lowercase", key)
		}
	}
}

func TestInventoryContains(t *testing.T) {
	inv := BuildInventory()

	tests := []struct {
		in   string
		want bool
	}{
		{"ma", true},
		{"ma3", true},
		{"MA3", true},
		{"Zhuang4", true},
		{"nü3", true},
		{"NÜ3", true},
		{"ma6", false},
		{"ma33", false},
		{"nihao", false},
		{"m", false},
		{"", false},
		{"3", false},
	}

	for _, tt := range tests {
		if got := inv.Contains(tt.in); got != tt.want {
			t.Errorf("Contains(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultInventory_IsShared(t *testing.T) {
	a := DefaultInventory()
	b := DefaultInventory()

	if a.Len() == 0 {
		t.Fatal("default inventory is empty")
	}
	if a.Len() != b.Len() {
		t.Errorf("default inventory changed size between calls: %d vs %d", a.Len(), b.Len())
	}
}
