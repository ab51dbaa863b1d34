package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Position_String(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"origin", Position{Row: 0, Col: 0}, "A1"},
		{"second column", Position{Row: 0, Col: 1}, "B1"},
		{"last single letter", Position{Row: 99, Col: 25}, "Z100"},
		{"double letter", Position{Row: 0, Col: 26}, "AA1"},
		{"max column", Position{Row: 0, Col: MaxCols - 1}, "XFD1"},
		{"max row", Position{Row: MaxRows - 1, Col: 0}, "A16384"},
		{"invalid", None, ""},
		{"negative row", Position{Row: -1, Col: 0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
		})
	}
}

func Test_ParsePosition(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Position
	}{
		{"origin", "A1", Position{Row: 0, Col: 0}},
		{"second column", "B1", Position{Row: 0, Col: 1}},
		{"double letter", "AA1", Position{Row: 0, Col: 26}},
		{"max column", "XFD1", Position{Row: 0, Col: MaxCols - 1}},
		{"empty", "", None},
		{"lowercase rejected", "a1", None},
		{"digits then letters rejected", "1A", None},
		{"row zero rejected", "A0", None},
		{"four letter column rejected", "ZZZZ1", None},
		{"three letter column out of range", "ZZZ1", None},
		{"no digits", "AB", None},
		{"no letters", "123", None},
		{"non alphanumeric", "A1!", None},
		{"row exceeds max", "A20000", None},
		{"leading zero row is fine", "A01", Position{Row: 0, Col: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePosition(tt.in))
		})
	}
}

func Test_Position_RoundTrip(t *testing.T) {
	// P1: from_string(to_string(p)) == p iff p.is_valid().
	valid := []Position{
		{Row: 0, Col: 0},
		{Row: 5, Col: 5},
		{Row: MaxRows - 1, Col: MaxCols - 1},
		{Row: 0, Col: 26},
	}
	for _, p := range valid {
		require.True(t, p.IsValid())
		assert.Equal(t, p, ParsePosition(p.String()))
	}

	assert.False(t, None.IsValid())
	assert.Equal(t, "", None.String())
}

func Test_Position_Less(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 1}.Less(Position{Row: 1, Col: 0}))
	assert.True(t, Position{Row: 0, Col: 0}.Less(Position{Row: 0, Col: 1}))
	assert.False(t, Position{Row: 1, Col: 0}.Less(Position{Row: 0, Col: 9}))
}
