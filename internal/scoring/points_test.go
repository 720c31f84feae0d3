package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStablefordPoints(t *testing.T) {
	tests := []struct {
		name     string
		net, par int
		want     int
	}{
		{"albatross or better", 1, 4, 5},
		{"eagle", 2, 4, 4},
		{"birdie", 3, 4, 3},
		{"par", 4, 4, 2},
		{"bogey", 5, 4, 1},
		{"double bogey", 6, 4, 0},
		{"blowup hole", 10, 4, 0},
		{"birdie on a par 5", 4, 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StablefordPoints(tt.net, tt.par))
		})
	}
}

func TestStablefordPointsMonotone(t *testing.T) {
	// Points never increase as the net score gets worse.
	prev := StablefordPoints(-2, 4)
	for net := -1; net <= 12; net++ {
		p := StablefordPoints(net, 4)
		assert.LessOrEqual(t, p, prev, "net %d", net)
		prev = p
	}
}

func TestQuotaPointsDoubledScale(t *testing.T) {
	tests := []struct {
		name       string
		gross, par int
		want       int
	}{
		{"three under", 2, 5, 16},
		{"eagle", 2, 4, 8},
		{"birdie", 3, 4, 4},
		{"par", 4, 4, 2},
		{"bogey", 5, 4, 1},
		{"double or worse", 6, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuotaPoints(tt.gross, tt.par))
		})
	}
}

func TestQuotaAndStablefordScalesDiffer(t *testing.T) {
	// The side game pays on its own doubled scale. A regression here means
	// the two tables were accidentally unified.
	assert.NotEqual(t, StablefordPoints(2, 4), QuotaPoints(2, 4))
	assert.NotEqual(t, StablefordPoints(3, 4), QuotaPoints(3, 4))
	assert.Equal(t, 8, QuotaPoints(2, 4))
	assert.Equal(t, 4, StablefordPoints(2, 4))
}

func TestNetScore(t *testing.T) {
	assert.Equal(t, 4, NetScore(5, 1))
	assert.Equal(t, 3, NetScore(5, 2))
	assert.Equal(t, 5, NetScore(5, 0))
}
