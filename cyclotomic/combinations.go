package cyclotomic

import "iter"

// CombinationsWithReplacement yields every non-decreasing selection of k
// values, taking values in the order given. For k = 0 a single empty selection
// is yielded. The yielded slice is reused; copy it to keep it.
func CombinationsWithReplacement(values []uint32, k int) iter.Seq[[]uint32] {
	return func(yield func([]uint32) bool) {
		if k < 0 || (k > 0 && len(values) == 0) {
			return
		}
		index := make([]int, k)
		out := make([]uint32, k)
		last := len(values) - 1
		for {
			for i, x := range index {
				out[i] = values[x]
			}
			if !yield(out) {
				return
			}
			// rightmost position that can still advance
			i := k - 1
			for i >= 0 && index[i] == last {
				i--
			}
			if i < 0 {
				return
			}
			index[i]++
			for j := i + 1; j < k; j++ {
				index[j] = index[i]
			}
		}
	}
}
