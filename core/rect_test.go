package core

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 64, H: 64}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 10, Y: 10, W: 10, H: 10}, true},
		{"partial", Rect{X: 60, Y: 60, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 64, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 64, W: 10, H: 10}, false},
		{"apart", Rect{X: 100, Y: 100, W: 10, H: 10}, false},
		{"empty", Rect{X: 10, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}.Translate(10, -2)
	if r != (Rect{X: 11, Y: 0, W: 3, H: 4}) {
		t.Errorf("Translate = %+v", r)
	}
}
