package sylva

import "github.com/sylvaml/sylva/tree"

/*
Prune reduces tree size by collapsing low-information internal nodes
into leaves. Each of the up-to-nPrune iterations recomputes the
candidate set, the internal nodes whose every child is a leaf, picks
the candidate with the minimum gain recorded at induction time and, if
that gain is below the threshold, collapses it: the branch map is
cleared, the descendants drop out of the leaf set and the node itself
becomes a leaf predicting its majority class.

Once the minimum-gain candidate no longer clears the threshold no
later iteration can either, so Prune stops early. A tree with no
candidates, a single-leaf tree for instance, is left unchanged. The
number of nodes collapsed is returned.
*/
func Prune(t *tree.Tree, nPrune int, threshold float64) int {
	pruned := 0
	for i := 0; i < nPrune; i++ {
		candidates := t.PruneCandidates()
		if len(candidates) == 0 {
			break
		}
		best := candidates[0]
		for _, id := range candidates[1:] {
			if t.Node(id).Gain < t.Node(best).Gain {
				best = id
			}
		}
		if t.Node(best).Gain >= threshold {
			break
		}
		t.Collapse(best)
		pruned++
	}
	return pruned
}
