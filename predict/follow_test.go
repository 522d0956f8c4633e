package predict

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatf0xx/tempers/mt"
)

func TestFollow(t *testing.T) {
	cases := []struct {
		observed int
	}{
		{mt.StateSize + 1},
		{mt.StateSize + 2},
		{1000},
		{3 * mt.StateSize},
	}
	for _, c := range cases {
		all := outputs(8675309, c.observed+1)
		s := Slice(all[:c.observed])

		g, err := FromStream(s)
		require.NoError(t, err, "%d outputs", c.observed)
		n, err := Follow(g, s)
		require.NoError(t, err, "%d outputs", c.observed)
		assert.Equal(t, c.observed-mt.StateSize-1, n)
		assert.Equal(t, all[c.observed], g.Uint32(), "%d outputs", c.observed)
	}
}

func TestFollowDiverged(t *testing.T) {
	observed := outputs(4, 700)
	observed[650] ^= 1
	s := Slice(observed)

	g, err := FromStream(s)
	require.NoError(t, err)
	n, err := Follow(g, s)
	assert.ErrorIs(t, err, ErrDiverged)
	assert.Equal(t, 650-mt.StateSize-1, n)
}

func TestFollowReaderError(t *testing.T) {
	var b strings.Builder
	for _, n := range outputs(4, mt.StateSize+3) {
		b.WriteString(strconv.FormatUint(uint64(n), 10))
		b.WriteByte('\n')
	}
	b.WriteString("oops\n")
	r := NewReader(strings.NewReader(b.String()))

	g, err := FromStream(r)
	require.NoError(t, err)
	_, err = Follow(g, r)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}
