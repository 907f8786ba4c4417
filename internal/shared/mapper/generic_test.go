package mapper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testInput struct {
	Value int
}

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []string{}, MapSlice[int, string](nil, func(i int) string { return "" }))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, func(i int) string { return fmt.Sprint(i) }))
}

func TestMapSlicePtr_SkipsNil(t *testing.T) {
	items := []*testInput{{Value: 1}, nil, {Value: 3}}

	got := MapSlicePtr(items, func(in *testInput) int { return in.Value * 10 })

	assert.Equal(t, []int{10, 30}, got)
}

func TestMapSliceWithError(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := MapSliceWithError([]int{1, 2, 3}, func(i int) (string, error) { return fmt.Sprintf("num_%d", i), nil })
		require.NoError(t, err)
		assert.Equal(t, []string{"num_1", "num_2", "num_3"}, got)
	})

	t.Run("stops at first error", func(t *testing.T) {
		calls := 0
		got, err := MapSliceWithError([]int{1, 2, 3}, func(i int) (string, error) {
			calls++
			if i == 2 {
				return "", errors.New("error at element 2")
			}
			return "ok", nil
		})
		assert.Nil(t, got)
		assert.EqualError(t, err, "error at element 2")
		assert.Equal(t, 2, calls)
	})
}
