package paging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorAdvance(t *testing.T) {
	req := require.New(t)

	c := Cursor{}
	c.Advance(50, 50)
	req.Equal(int32(1), c.Page)
	req.False(c.AtBound)

	c.Advance(12, 50)
	req.Equal(int32(1), c.Page)
	req.True(c.AtBound)

	// at bound, further transitions are no-ops
	c.Advance(50, 50)
	req.Equal(int32(1), c.Page)
	req.True(c.AtBound)
}

func TestCursorReset(t *testing.T) {
	req := require.New(t)

	c := Cursor{Page: 3, AtBound: true}
	c.Reset()
	req.Equal(Cursor{}, c)
}
