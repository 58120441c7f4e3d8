package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpecialKind identifies the behaviour of a special tile.
type SpecialKind int

const (
	SpecialNone SpecialKind = iota
	SpecialTrampoline
	SpecialSpikes
	SpecialCoin
	SpecialFlag
)

var specialKindNames = map[SpecialKind]string{
	SpecialNone:       "none",
	SpecialTrampoline: "trampoline",
	SpecialSpikes:     "spikes",
	SpecialCoin:       "coin",
	SpecialFlag:       "flag",
}

func (k SpecialKind) String() string {
	if name, ok := specialKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SpecialKind(%d)", int(k))
}

// ParseSpecialKind maps a kind name (case-insensitive) to its SpecialKind.
func ParseSpecialKind(name string) (SpecialKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range specialKindNames {
		if kind != SpecialNone && n == name {
			return kind, nil
		}
	}
	return SpecialNone, fmt.Errorf("unknown special kind %q", name)
}

// TileRules classifies tile ids. It is built once and shared by pointer
// across every level; nothing mutates it after construction.
type TileRules struct {
	solid   map[int]struct{}
	special map[int]SpecialKind
}

// NewTileRules builds an immutable rule set. An id listed as both solid and
// special is treated as special.
func NewTileRules(solid []int, special map[int]SpecialKind) *TileRules {
	r := &TileRules{
		solid:   make(map[int]struct{}, len(solid)),
		special: make(map[int]SpecialKind, len(special)),
	}
	for _, id := range solid {
		r.solid[id] = struct{}{}
	}
	for id, kind := range special {
		r.special[id] = kind
	}
	return r
}

// IsSolid reports whether id blocks movement.
func (r *TileRules) IsSolid(id int) bool {
	_, ok := r.solid[id]
	return ok
}

// Special returns the special kind for id, if any.
func (r *TileRules) Special(id int) (SpecialKind, bool) {
	kind, ok := r.special[id]
	return kind, ok
}

// SolidIDs returns the solid ids in ascending order.
func (r *TileRules) SolidIDs() []int {
	ids := make([]int, 0, len(r.solid))
	for id := range r.solid {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SpecialIDs returns the ids mapped to kind in ascending order.
func (r *TileRules) SpecialIDs(kind SpecialKind) []int {
	var ids []int
	for id, k := range r.special {
		if k == kind {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// tileRulesFile is the YAML layout accepted by LoadTileRules.
//
//	solid: [1, 2, 3]
//	special:
//	  trampoline: [128]
//	  coin: [58, 59]
type tileRulesFile struct {
	Solid   []int            `yaml:"solid"`
	Special map[string][]int `yaml:"special"`
}

// LoadTileRules parses a YAML tile rules document.
func LoadTileRules(r io.Reader) (*TileRules, error) {
	var f tileRulesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode tile rules: %w", err)
	}

	special := make(map[int]SpecialKind)
	for name, ids := range f.Special {
		kind, err := ParseSpecialKind(name)
		if err != nil {
			return nil, fmt.Errorf("tile rules: %w", err)
		}
		for _, id := range ids {
			if id <= 0 {
				return nil, fmt.Errorf("tile rules: %s id %d must be positive", name, id)
			}
			special[id] = kind
		}
	}
	for _, id := range f.Solid {
		if id <= 0 {
			return nil, fmt.Errorf("tile rules: solid id %d must be positive", id)
		}
	}

	return NewTileRules(f.Solid, special), nil
}

// LoadTileRulesFile reads a YAML tile rules file from disk.
func LoadTileRulesFile(path string) (*TileRules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tile rules %s: %w", path, err)
	}
	defer f.Close()

	rules, err := LoadTileRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Tiles is the default rule set for the bundled tile pack.
var Tiles *TileRules

func init() {
	var solid []int
	for _, r := range [][2]int{
		{1, 11}, {13, 21}, {28, 29}, {31, 31}, {41, 41},
		{111, 114}, {139, 158}, {164, 186}, {192, 194},
		{220, 221}, {223, 238}, {240, 242}, {248, 270},
		{276, 298}, {304, 306}, {313, 314},
	} {
		for id := r[0]; id <= r[1]; id++ {
			solid = append(solid, id)
		}
	}

	special := map[int]SpecialKind{
		128: SpecialTrampoline,
	}
	for _, id := range []int{12, 105, 106, 107, 121, 127, 308, 310, 311, 312} {
		special[id] = SpecialSpikes
	}
	for _, id := range []int{35, 37, 58, 59, 60, 61, 80} {
		special[id] = SpecialCoin
	}
	for _, id := range []int{49, 50} {
		special[id] = SpecialFlag
	}

	Tiles = NewTileRules(solid, special)
}
