package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefaultTiles(t *testing.T) {
	if n := len(Tiles.SolidIDs()); n != 146 {
		t.Errorf("solid ids = %d, want 146", n)
	}

	tests := []struct {
		kind SpecialKind
		want []int
	}{
		{SpecialTrampoline, []int{128}},
		{SpecialSpikes, []int{12, 105, 106, 107, 121, 127, 308, 310, 311, 312}},
		{SpecialCoin, []int{35, 37, 58, 59, 60, 61, 80}},
		{SpecialFlag, []int{49, 50}},
	}
	for _, tt := range tests {
		if got := Tiles.SpecialIDs(tt.kind); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v ids = %v, want %v", tt.kind, got, tt.want)
		}
		for _, id := range tt.want {
			if Tiles.IsSolid(id) {
				t.Errorf("special id %d is also solid", id)
			}
		}
	}
}

func TestLoadTileRules(t *testing.T) {
	doc := `
solid: [1, 2, 3]
special:
  trampoline: [9]
  Coin: [4, 5]
`
	rules, err := LoadTileRules(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadTileRules: %v", err)
	}
	if !reflect.DeepEqual(rules.SolidIDs(), []int{1, 2, 3}) {
		t.Errorf("SolidIDs = %v", rules.SolidIDs())
	}
	if kind, ok := rules.Special(9); !ok || kind != SpecialTrampoline {
		t.Errorf("Special(9) = %v, %v", kind, ok)
	}
	if !reflect.DeepEqual(rules.SpecialIDs(SpecialCoin), []int{4, 5}) {
		t.Errorf("coins = %v", rules.SpecialIDs(SpecialCoin))
	}
	if _, ok := rules.Special(1); ok {
		t.Error("solid id reported as special")
	}
}

func TestLoadTileRulesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", "special:\n  lava: [3]\n"},
		{"unknown field", "solids: [1]\n"},
		{"zero id", "solid: [0]\n"},
		{"negative special", "special:\n  coin: [-2]\n"},
		{"not yaml", "solid: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTileRules(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseSpecialKind(t *testing.T) {
	for _, kind := range []SpecialKind{SpecialTrampoline, SpecialSpikes, SpecialCoin, SpecialFlag} {
		got, err := ParseSpecialKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseSpecialKind(%q) = %v, %v", kind.String(), got, err)
		}
	}
	if _, err := ParseSpecialKind("none"); err == nil {
		t.Error("none parsed as a special kind")
	}
}
