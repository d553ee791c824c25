package corpus

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSizes(t *testing.T) {
	tests := []struct {
		total   int
		weights []int
		want    []int
	}{
		{100, []int{3, 1, 1}, []int{60, 20, 20}},
		{101, []int{3, 1, 1}, []int{61, 20, 20}},
		{7, []int{1, 1}, []int{3, 4}},
		{10, []int{8, 1, 1}, []int{8, 1, 1}},
		{0, []int{3, 1, 1}, []int{0, 0, 0}},
		{5, []int{1}, []int{5}},
		{3, []int{1, 1, 1, 1}, []int{0, 1, 1, 1}},
		{2, []int{1, 1, 1, 1}, []int{0, 1, 1, 0}},
		{1, []int{1, 1, 1}, []int{1, 0, 0}},
	}
	for _, tc := range tests {
		got := SplitSizes(tc.total, tc.weights)
		assert.Equal(t, tc.want, got, "%d %v", tc.total, tc.weights)
		assert.Equal(t, tc.total, lo.Sum(got))
		assert.GreaterOrEqual(t, lo.Min(got), 0)
	}
}

func TestPartitions(t *testing.T) {
	assert.Equal(t, []Range{{0, 60}, {60, 80}, {80, 100}}, Partitions([]int{60, 20, 20}))
	assert.Empty(t, Partitions(nil))
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights("3:1:1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 1}, w)

	w, err = ParseWeights("5")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, w)

	for _, bad := range []string{"", "3::1", "a:1", "-1:2", "0:0"} {
		_, err := ParseWeights(bad)
		assert.Error(t, err, bad)
	}
}
