package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy([]int{10, 0}), "pure distributions carry no information")
	assert.Equal(t, 0.0, Entropy([]int{0, 0}))
	assert.Equal(t, 1.0, Entropy([]int{7, 7}), "an even binary split is one bit")
	assert.InDelta(t, 0.9403, Entropy([]int{5, 9}), 1e-4)
	assert.InDelta(t, 1.5849, Entropy([]int{3, 3, 3}), 1e-4)
}

func TestEntropySkipsZeroCounts(t *testing.T) {
	assert.Equal(t, Entropy([]int{4, 4}), Entropy([]int{4, 0, 4, 0}))
}
