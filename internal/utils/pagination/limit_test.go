package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-4, 1, 200))
	assert.Equal(t, 1, Clamp(0, 1, 200))
	assert.Equal(t, 50, Clamp(50, 1, 200))
	assert.Equal(t, 200, Clamp(500, 1, 200))
}

func TestNormalizeWindow(t *testing.T) {
	tests := []struct {
		name           string
		limit, offset  int
		wantL, wantOff int
	}{
		{name: "within bounds", limit: 100, offset: 20, wantL: 100, wantOff: 20},
		{name: "limit too large", limit: 1000, offset: 0, wantL: 200, wantOff: 0},
		{name: "zero limit", limit: 0, offset: 0, wantL: 1, wantOff: 0},
		{name: "negative offset", limit: 10, offset: -3, wantL: 10, wantOff: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NormalizeWindow(tt.limit, tt.offset, 200)
			assert.Equal(t, tt.wantL, w.Limit)
			assert.Equal(t, tt.wantOff, w.Offset)
		})
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt("", 100)
	assert.NoError(t, err)
	assert.Equal(t, 100, v)

	v, err = ParseInt("-7", 100)
	assert.NoError(t, err)
	assert.Equal(t, -7, v)

	_, err = ParseInt("ten", 100)
	assert.Error(t, err)
}
