package tinyclp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{token: "123", want: 123},
		{token: "  42", want: 42},
		{token: "-7", want: -7},
		{token: "+9", want: 9},
		{token: "12abc", want: 12},
		{token: "3.9", want: 3},
		{token: "abc", want: 0},
		{token: "", want: 0},
		{token: "-", want: 0},
		{token: "- 5", want: 0},
		{token: "99999999999999999999", want: math.MaxInt},
		{token: "-99999999999999999999", want: math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, leadingInt(tt.token))
		})
	}
}

func TestLeadingFloat(t *testing.T) {
	tests := []struct {
		token string
		want  float64
	}{
		{token: "2.5", want: 2.5},
		{token: "1e3", want: 1000},
		{token: " 3.14rad", want: 3.14},
		{token: "-2.5e-1", want: -0.25},
		{token: "+.5", want: 0.5},
		{token: "1e", want: 1},
		{token: "abc", want: 0},
		{token: "", want: 0},
		{token: ".", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, leadingFloat(tt.token))
		})
	}
}

func TestLeadingFloatRange(t *testing.T) {
	assert.True(t, math.IsInf(leadingFloat("1e999"), 1))
	assert.True(t, math.IsInf(leadingFloat("-1e999"), -1))
}

// A bool conversion never looks at its token: the flag being present on the
// command line is the whole signal.
func TestConvertBoolIgnoresToken(t *testing.T) {
	assert.True(t, convert[bool](""))
	assert.True(t, convert[bool]("false"))
	assert.True(t, convert[bool]("0"))
	assert.True(t, convert[bool]("anything"))
}

func TestConvertStringVerbatim(t *testing.T) {
	assert.Equal(t, "  photo.png ", convert[string]("  photo.png "))
	assert.Equal(t, "", convert[string](""))
}

func TestDefaultOf(t *testing.T) {
	assert.Equal(t, 0, DefaultOf[int]())
	assert.Equal(t, 0.0, DefaultOf[float64]())
	assert.Equal(t, "", DefaultOf[string]())
	assert.Equal(t, false, DefaultOf[bool]())
}
