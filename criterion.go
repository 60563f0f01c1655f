package sylva

import (
	"sort"

	"github.com/sylvaml/sylva/dataset"
	"github.com/sylvaml/sylva/tree"
)

/*
split is the outcome of a best-feature search over the columns
available to a node: the column to split on (tree.None when no column
yields strictly positive information gain), the gain it achieves, the
threshold for continuous columns and the aggregate class-frequency
vector of the rows the search ran over.
*/
type split struct {
	feature    int
	gain       float64
	threshold  float64
	continuous bool
	freq       []int
}

// classCounts tallies the labels of the given rows into a length-k vector
func classCounts(ds *dataset.Dataset, rows []int) []int {
	freq := make([]int, ds.Classes())
	for _, r := range rows {
		freq[ds.Y[r]]++
	}
	return freq
}

/*
bestSplit runs the split criterion over every column in cols,
restricted to the given rows, and returns the split with maximal
information gain. Ties are broken in favor of the first column
encountered in cols order. If no column yields strictly positive gain
the returned split has feature tree.None: the caller grows no child
for the branch that led here.
*/
func bestSplit(ds *dataset.Dataset, rows, cols []int) split {
	freq := classCounts(ds, rows)
	parentH := tree.Entropy(freq)
	best := split{feature: tree.None, freq: freq}
	for _, col := range cols {
		if ds.Schema.Continuous(col) {
			gain, threshold := continuousGain(ds, rows, col, parentH)
			if gain > best.gain {
				best = split{feature: col, gain: gain, threshold: threshold, continuous: true, freq: freq}
			}
		} else {
			gain := categoricalGain(ds, rows, col, parentH)
			if gain > best.gain {
				best = split{feature: col, gain: gain, freq: freq}
			}
		}
	}
	return best
}

/*
categoricalGain returns the information gain of splitting the given
rows on a categorical column: the parent entropy minus the row-weighted
sum of the entropies of the per-value groups. The sum runs over the
distinct values in ascending order, so the result is bitwise identical
across runs and ties between columns always resolve the same way.
*/
func categoricalGain(ds *dataset.Dataset, rows []int, col int, parentH float64) float64 {
	k := ds.Classes()
	byValue := make(map[int][]int)
	for _, r := range rows {
		v := int(ds.X[r][col])
		freq := byValue[v]
		if freq == nil {
			freq = make([]int, k)
			byValue[v] = freq
		}
		freq[ds.Y[r]]++
	}
	values := make([]int, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Ints(values)
	total := float64(len(rows))
	weighted := 0.0
	for _, v := range values {
		freq := byValue[v]
		count := 0
		for _, c := range freq {
			count += c
		}
		weighted += float64(count) / total * tree.Entropy(freq)
	}
	return parentH - weighted
}

/*
continuousGain searches the best binary threshold for a continuous
column over the given rows: it enumerates the midpoints between
consecutive values of the sorted distinct value set and keeps the one
minimizing the weighted entropy of the two sides. It returns the gain
at that threshold and the threshold itself, or zero gain when fewer
than two distinct values are present and no binary split exists.

Both the candidate search and the returned gain are computed on the
same row subset, the one passed in. Branch 0 of the resulting split
takes values at or below the threshold, branch 1 values above it.
*/
func continuousGain(ds *dataset.Dataset, rows []int, col int, parentH float64) (float64, float64) {
	values := ds.DistinctValues(col, rows)
	if len(values) < 2 {
		return 0, 0
	}
	k := ds.Classes()
	total := float64(len(rows))
	bestH := -1.0
	bestThreshold := 0.0
	low := make([]int, k)
	high := make([]int, k)
	for i := 0; i+1 < len(values); i++ {
		threshold := (values[i] + values[i+1]) / 2
		for c := range low {
			low[c], high[c] = 0, 0
		}
		nLow := 0
		for _, r := range rows {
			if ds.X[r][col] <= threshold {
				low[ds.Y[r]]++
				nLow++
			} else {
				high[ds.Y[r]]++
			}
		}
		weighted := float64(nLow)/total*tree.Entropy(low) +
			float64(len(rows)-nLow)/total*tree.Entropy(high)
		if bestH < 0 || weighted < bestH {
			bestH = weighted
			bestThreshold = threshold
		}
	}
	return parentH - bestH, bestThreshold
}
