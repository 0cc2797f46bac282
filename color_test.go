package honeybee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", White},
		{"000", Black},
		{"#f008", RGBA{255, 0, 0, 136}},
		{"#ffb000", Amber},
		{"FFB000", Amber},
		{"#12345678", RGBA{0x12, 0x34, 0x56, 0x78}},
		{"#00000000", Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#123456789", "#ggg", "#12 456"} {
		_, err := ParseHex(in)
		assert.ErrorIs(t, err, ErrInvalidColor, "ParseHex(%q)", in)
	}
}

func TestColorAccessors(t *testing.T) {
	c := RGBA{1, 2, 3, 4}
	assert.Equal(t, uint8(1), c.R())
	assert.Equal(t, uint8(2), c.G())
	assert.Equal(t, uint8(3), c.B())
	assert.Equal(t, uint8(4), c.A())
	assert.Equal(t, RGB{1, 2, 3}, c.RGB())
	assert.Equal(t, RGBA{1, 2, 3, 255}, c.RGB().Opaque())
	assert.Equal(t, "#01020304", c.String())
}
