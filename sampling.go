package sylva

import (
	"math/rand"
	"sort"
)

// colStreamSalt decorrelates the column-sampling stream from the
// row-sampling stream of the same tree while keeping both
// deterministic functions of the tree index.
const colStreamSalt = 0x5bd1e995

/*
bootstrapRows returns the training row index for tree l of an
ensemble: ratio*m rows drawn with replacement from a stream seeded
with the tree index, so sequential and parallel builds sample
identically. A ratio of exactly 1 returns the identity index, no
resampling, which makes a single-tree ensemble reproduce its
underlying tree.
*/
func bootstrapRows(l, m int, ratio float64) []int {
	if ratio == 1 {
		rows := make([]int, m)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	size := int(ratio * float64(m))
	if size < 1 {
		size = 1
	}
	r := rand.New(rand.NewSource(int64(l)))
	rows := make([]int, size)
	for i := range rows {
		rows[i] = r.Intn(m)
	}
	return rows
}

/*
subspaceCols returns the column index for tree l of a random forest:
ratio*n columns drawn without replacement from a stream seeded with
the tree index salted to stay independent of the row stream. The
result is sorted, an ordered duplicate-free index like any other
column index.
*/
func subspaceCols(l, n int, ratio float64) []int {
	size := int(ratio * float64(n))
	if size < 1 {
		size = 1
	}
	if size > n {
		size = n
	}
	r := rand.New(rand.NewSource(int64(l) ^ colStreamSalt))
	cols := r.Perm(n)[:size]
	sort.Ints(cols)
	return cols
}
