package bintree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	n := appendAll(1, 2, 3, 4, 5, 6, 7, 8)
	it := n.Iterator()
	var got []int
	for it.HasNext() {
		x, err := it.Next()
		require.NoError(t, err)
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, got)
	_, err := it.Next()
	assert.True(t, errors.Is(err, ErrNoSuchElement))
	assert.False(t, it.HasNext())
}

func TestIteratorIsRestartable(t *testing.T) {
	n := appendAll("x", "y")
	for round := 0; round < 2; round++ {
		it := n.Iterator()
		x, _ := it.Next() // without HasNext
		y, _ := it.Next()
		assert.Equal(t, "x", x)
		assert.Equal(t, "y", y)
	}
}

func TestEmptyIterator(t *testing.T) {
	it := Empty[int]().Iterator()
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
	assert.Empty(t, Empty[int]().Slice())
}

func TestAllAndBackward(t *testing.T) {
	n := appendAll(1, 2, 3, 4)
	var fwd, bwd []int
	for x := range n.All() {
		if x == 3 {
			break
		}
		fwd = append(fwd, x)
	}
	for x := range n.Backward() {
		bwd = append(bwd, x)
	}
	assert.Equal(t, []int{1, 2}, fwd)
	assert.Equal(t, []int{4, 3, 2, 1}, bwd)
}

func TestSeqEqualAndHash(t *testing.T) {
	a := appendAll(1, 2, 3)
	b := Empty[int]().InsertAt(0, 3).InsertAt(0, 2).InsertAt(0, 1)
	c := appendAll(3, 2, 1)
	assert.True(t, SeqEqual(a, b), "same sequence, different shapes")
	assert.False(t, SeqEqual(a, c))
	assert.Equal(t, SeqHash(a), SeqHash(b))
	assert.Equal(t, int32(((31+1)*31+2)*31+3), SeqHash(a))
	assert.Equal(t, int32(1), SeqHash(Empty[int]()))
}
