package gammas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTable(t *testing.T) {
	t.Run("single channel is broadcast", func(t *testing.T) {
		for _, n := range []int{1, 2, 17, 256} {
			data := make([]byte, n)
			for i := range data {
				data[i] = uint8(255 - i)
			}
			c := Curves{}
			require.NoError(t, c.decode_table(data, 1, n, 1))
			assert.Equal(t, n, c.Count)
			for ch := 1; ch < NumChannels; ch++ {
				if d := cmp.Diff(c.Table[0], c.Table[ch]); d != "" {
					t.Fatalf("channel %d differs for %d entries: %s", ch, n, d)
				}
			}
			assert.Equal(t, data, c.Table[2][:n])
		}
	})

	t.Run("uses the first byte of wide entries", func(t *testing.T) {
		data := make([]byte, 3*4*2)
		for i := range 12 {
			data[2*i], data[2*i+1] = uint8(10*i), 0xff
		}
		c := Curves{}
		require.NoError(t, c.decode_table(data, 3, 4, 2))
		assert.Equal(t, []uint8{0, 10, 20, 30}, c.Table[0][:4])
		assert.Equal(t, []uint8{40, 50, 60, 70}, c.Table[1][:4])
		assert.Equal(t, []uint8{80, 90, 100, 110}, c.Table[2][:4])
		assert.Equal(t, uint8(0), c.Table[0][4])
	})

	t.Run("oversized tables are left untouched", func(t *testing.T) {
		c := Curves{}
		c.Table[1][7] = 42
		before := c.Table
		require.NoError(t, c.decode_table(make([]byte, 3*300*2), 3, 300, 2))
		assert.Equal(t, 300, c.Count)
		assert.True(t, c.Overflowed())
		assert.Empty(t, cmp.Diff(before, c.Table))
	})

	t.Run("empty tables decode nothing", func(t *testing.T) {
		c := Curves{}
		require.NoError(t, c.decode_table(nil, 3, 0, 2))
		assert.Equal(t, 0, c.Count)
	})

	t.Run("truncated data", func(t *testing.T) {
		c := Curves{}
		err := c.decode_table(make([]byte, 3*256*2-2), 3, 256, 2)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}
