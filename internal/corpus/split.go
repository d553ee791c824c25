package corpus

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/unhappydog/tgen/internal/i18n"
)

// ParseWeights reads colon-separated relative part sizes such as "3:1:1".
func ParseWeights(text string) ([]int, error) {
	parts := strings.Split(text, ":")
	weights := make([]int, len(parts))
	for i, part := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || w < 0 {
			return nil, fmt.Errorf(i18n.T("split_error_weight"), part)
		}
		weights[i] = w
	}
	if lo.Sum(weights) == 0 {
		return nil, fmt.Errorf(i18n.T("split_error_weight"), text)
	}
	return weights, nil
}

// SplitSizes divides total examples proportionally to weights. All parts
// but the first are rounded to the nearest integer; the first part takes
// whatever remains, so the sizes always sum to total. When rounding up
// overshoots total, the excess is taken back from the last parts so no
// size is negative.
func SplitSizes(total int, weights []int) []int {
	sizes := make([]int, len(weights))
	if len(weights) == 0 {
		return sizes
	}
	sum := float64(lo.Sum(weights))
	remain := total
	for i := len(weights) - 1; i > 0; i-- {
		sizes[i] = int(math.Round(float64(total) * float64(weights[i]) / sum))
		remain -= sizes[i]
	}
	for i := len(sizes) - 1; i > 0 && remain < 0; i-- {
		take := min(sizes[i], -remain)
		sizes[i] -= take
		remain += take
	}
	sizes[0] = remain
	return sizes
}

// Partitions turns part sizes into consecutive ranges starting at 0.
func Partitions(sizes []int) []Range {
	ret := make([]Range, len(sizes))
	offset := 0
	for i, size := range sizes {
		ret[i] = Range{Start: offset, End: offset + size}
		offset += size
	}
	return ret
}
