package systems

import (
	"ants-bot/internal/domain"
	"ants-bot/pkg/logger"
	"testing"
)

func TestComputeForageMove(t *testing.T) {
	logger.Silence()

	ant := domain.Point{Row: 5, Col: 5}

	tests := []struct {
		name     string
		food     []domain.Point
		water    []domain.Point
		reserved []domain.Point
		wantDir  domain.Direction
		wantOK   bool
	}{
		{
			name:   "No food visible",
			wantOK: false,
		},
		{
			name:    "Straight north",
			food:    []domain.Point{{Row: 2, Col: 5}},
			wantDir: domain.North,
			wantOK:  true,
		},
		{
			name:    "Longer axis first",
			food:    []domain.Point{{Row: 6, Col: 9}},
			wantDir: domain.East,
			wantOK:  true,
		},
		{
			name:    "Nearest of several",
			food:    []domain.Point{{Row: 0, Col: 0}, {Row: 5, Col: 3}},
			wantDir: domain.West,
			wantOK:  true,
		},
		{
			name:    "Across the edge",
			food:    []domain.Point{{Row: 5, Col: 19}},
			wantDir: domain.West,
			wantOK:  true,
		},
		{
			name:    "Slide around water",
			food:    []domain.Point{{Row: 2, Col: 6}},
			water:   []domain.Point{{Row: 4, Col: 5}},
			wantDir: domain.East,
			wantOK:  true,
		},
		{
			name:     "Destination reserved",
			food:     []domain.Point{{Row: 2, Col: 5}},
			reserved: []domain.Point{{Row: 4, Col: 5}},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMap(t, 20, 20)
			for _, w := range tt.water {
				m.Set(w, domain.WaterTile())
			}
			reserved := make(map[domain.Point]bool)
			for _, r := range tt.reserved {
				reserved[r] = true
			}

			dir, ok := ComputeForageMove(m, ant, tt.food, reserved)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && dir != tt.wantDir {
				t.Errorf("dir = %s, want %s", dir, tt.wantDir)
			}
		})
	}
}
