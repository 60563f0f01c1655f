/*
Package eval computes quality-of-fit measures for trained classifiers:
prediction accuracy and the k-class confusion matrix. It works on
plain label vectors so it stays independent of how predictions were
produced.
*/
package eval

import (
	"fmt"
	"strings"
)

/*
Accuracy takes the actual and predicted label vectors and returns the
fraction of positions where they agree, or an error if their lengths
differ or they are empty.
*/
func Accuracy(actual, predicted []int) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("actual has %d labels, predicted has %d", len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, fmt.Errorf("cannot compute accuracy of zero predictions")
	}
	hits := 0
	for i, a := range actual {
		if a == predicted[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(actual)), nil
}

/*
ConfusionMatrix counts, for every pair of classes (a, p), how many
samples of actual class a were predicted as class p. Rows are actual
classes, columns predicted ones; correct predictions sit on the
diagonal.
*/
type ConfusionMatrix struct {
	Classes []string
	Counts  [][]int
}

/*
NewConfusionMatrix takes the class names and the actual and predicted
label vectors and returns the confusion matrix over them, or an error
if the vectors disagree in length or hold labels outside [0, k).
*/
func NewConfusionMatrix(classes []string, actual, predicted []int) (*ConfusionMatrix, error) {
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("actual has %d labels, predicted has %d", len(actual), len(predicted))
	}
	k := len(classes)
	counts := make([][]int, k)
	for i := range counts {
		counts[i] = make([]int, k)
	}
	for i, a := range actual {
		p := predicted[i]
		if a < 0 || a >= k || p < 0 || p >= k {
			return nil, fmt.Errorf("label pair (%d, %d) at position %d outside [0, %d)", a, p, i, k)
		}
		counts[a][p]++
	}
	return &ConfusionMatrix{Classes: classes, Counts: counts}, nil
}

/*
Accuracy returns the fraction of samples on the matrix diagonal.
*/
func (cm *ConfusionMatrix) Accuracy() float64 {
	total, diagonal := 0, 0
	for a, row := range cm.Counts {
		for p, c := range row {
			total += c
			if a == p {
				diagonal += c
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(diagonal) / float64(total)
}

/*
String renders the matrix as a table with actual classes on rows and
predicted classes on columns.
*/
func (cm *ConfusionMatrix) String() string {
	width := len("actual\\pred") + 1
	for _, c := range cm.Classes {
		if len(c)+1 > width {
			width = len(c) + 1
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s", width, "actual\\pred")
	for _, c := range cm.Classes {
		fmt.Fprintf(&sb, "%*s", width, c)
	}
	sb.WriteByte('\n')
	for a, row := range cm.Counts {
		fmt.Fprintf(&sb, "%*s", width, cm.Classes[a])
		for _, c := range row {
			fmt.Fprintf(&sb, "%*d", width, c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
