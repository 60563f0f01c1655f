package tree

import "math"

/*
Entropy returns the Shannon entropy, in bits, of a class-frequency
vector. Zero-frequency classes contribute nothing: no log(0) term is
ever evaluated. A pure vector, all counts on one class, has entropy 0;
a uniform k-class vector has entropy log2(k).
*/
func Entropy(freq []int) float64 {
	total := 0
	for _, c := range freq {
		total += c
	}
	if total == 0 {
		return 0
	}
	e := 0.0
	for _, c := range freq {
		if c > 0 {
			p := float64(c) / float64(total)
			e -= p * math.Log2(p)
		}
	}
	return e
}
