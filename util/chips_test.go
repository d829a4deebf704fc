package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitChips(t *testing.T) {
	testCases := []struct {
		total     int64
		numSplits int
		expected  []int64
	}{
		{
			total:     0,
			numSplits: 1,
			expected:  []int64{0},
		},
		{
			total:     0,
			numSplits: 2,
			expected:  []int64{0, 0},
		},
		{
			total:     1,
			numSplits: 2,
			expected:  []int64{1, 0},
		},
		{
			total:     1,
			numSplits: 3,
			expected:  []int64{1, 0, 0},
		},
		{
			total:     2,
			numSplits: 3,
			expected:  []int64{1, 1, 0},
		},
		{
			total:     100,
			numSplits: 3,
			expected:  []int64{34, 33, 33},
		},
		{
			total:     101,
			numSplits: 2,
			expected:  []int64{51, 50},
		},
		{
			total:     999,
			numSplits: 1,
			expected:  []int64{999},
		},
	}

	for _, tc := range testCases {
		result := SplitChips(tc.total, tc.numSplits)
		if !cmp.Equal(result, tc.expected) {
			t.Errorf("SplitChips(%d, %d) = %v, want %v", tc.total, tc.numSplits, result, tc.expected)
		}
		var sum int64
		for _, s := range result {
			sum += s
		}
		if sum != tc.total {
			t.Errorf("SplitChips(%d, %d) leaked chips: splits sum to %d", tc.total, tc.numSplits, sum)
		}
	}
}
