package list

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(100, DefaultMax, 0)
	b := Generate(100, DefaultMax, 0)
	assert.Equal(t, a, b)
	assert.Len(t, Generate(0, 10, 1), 0)
	assert.Panics(t, func() { Generate(-1, 10, 0) })
	assert.Panics(t, func() { Generate(1, 0, 0) })
}

func TestGenerateBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 500).Draw(rt, "n")
		limit := rapid.IntRange(1, 50).Draw(rt, "limit")
		seed := rapid.Int64().Draw(rt, "seed")
		for i, v := range Generate(n, limit, seed) {
			if v < 0 || v >= limit {
				rt.Fatalf("element %v = %v out of [0, %v)", i, v, limit)
			}
		}
	})
}

func TestRead(t *testing.T) {
	a, err := Read(strings.NewReader("5 1\n4 2\t8 3 7 99"), 7)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 4, 2, 8, 3, 7}, a)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("1 2"), 3)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "%v", err)

	_, err = Read(strings.NewReader("1 x 3"), 3)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "%v", err)
	assert.Contains(t, err.Error(), "element 1")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, "After sort", []int{1, 2, 3}))
	assert.Equal(t, "After sort:\n1 2 3 \n\n", buf.String())
}
