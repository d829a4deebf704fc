package util

// Chips are tracked as int64 cents throughout the engine. Splitting a pot
// among n winners can leave a remainder of up to n-1 cents; those odd cents
// go to the earliest winners in the order the caller passes them (the first
// eligible seat clockwise from the button, by convention).
func SplitChips(total int64, numSplits int) []int64 {
	if numSplits <= 0 {
		return nil
	}
	splits := make([]int64, numSplits)
	share := total / int64(numSplits)
	remaining := total - share*int64(numSplits)
	for i := range splits {
		splits[i] = share
		if remaining > 0 {
			splits[i]++
			remaining--
		}
	}
	return splits
}

func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
