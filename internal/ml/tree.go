package ml

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// treeNode is one node of a CART decision tree. Leaves carry a predicted
// label; internal nodes split on feature <= threshold.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      bool
	label     int
}

// decisionTree is a depth-limited CART tree trained with gini impurity.
type decisionTree struct {
	root        *treeNode
	maxDepth    int
	minLeaf     int
	maxFeatures int
	rng         *rand.Rand
}

func (t *decisionTree) fit(features mat.Matrix, labels []int, rows []int) {
	t.root = t.build(features, labels, rows, 0)
}

func (t *decisionTree) build(features mat.Matrix, labels []int, rows []int, depth int) *treeNode {
	if depth >= t.maxDepth || len(rows) <= t.minLeaf || pure(labels, rows) {
		return &treeNode{leaf: true, label: majority(labels, rows)}
	}

	feature, threshold, ok := t.bestSplit(features, labels, rows)
	if !ok {
		return &treeNode{leaf: true, label: majority(labels, rows)}
	}

	var left, right []int

	for _, row := range rows {
		if features.At(row, feature) <= threshold {
			left = append(left, row)
		} else {
			right = append(right, row)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, label: majority(labels, rows)}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      t.build(features, labels, left, depth+1),
		right:     t.build(features, labels, right, depth+1),
	}
}

// bestSplit searches a random feature subset for the split with the lowest
// weighted gini impurity. Candidate thresholds are midpoints between
// consecutive distinct values.
func (t *decisionTree) bestSplit(features mat.Matrix, labels []int, rows []int) (int, float64, bool) {
	_, cols := features.Dims()

	candidates := t.rng.Perm(cols)
	if t.maxFeatures > 0 && t.maxFeatures < cols {
		candidates = candidates[:t.maxFeatures]
	}

	bestGini := 2.0
	bestFeature := -1
	bestThreshold := 0.0

	for _, feature := range candidates {
		values := make([]float64, 0, len(rows))
		for _, row := range rows {
			values = append(values, features.At(row, feature))
		}

		sort.Float64s(values)

		for i := 1; i < len(values); i++ {
			if values[i] == values[i-1] {
				continue
			}

			threshold := (values[i] + values[i-1]) / 2

			gini := splitGini(features, labels, rows, feature, threshold)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func (t *decisionTree) predict(features mat.Matrix, row int) int {
	node := t.root
	for !node.leaf {
		if features.At(row, node.feature) <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}

	return node.label
}

// splitGini returns the size-weighted gini impurity of the two partitions
// induced by feature <= threshold.
func splitGini(features mat.Matrix, labels []int, rows []int, feature int, threshold float64) float64 {
	var leftPos, leftTotal, rightPos, rightTotal float64

	for _, row := range rows {
		if features.At(row, feature) <= threshold {
			leftTotal++
			if labels[row] == 1 {
				leftPos++
			}
		} else {
			rightTotal++
			if labels[row] == 1 {
				rightPos++
			}
		}
	}

	total := leftTotal + rightTotal

	return (leftTotal/total)*gini(leftPos, leftTotal) + (rightTotal/total)*gini(rightPos, rightTotal)
}

func gini(positives, total float64) float64 {
	if total == 0 {
		return 0
	}

	p := positives / total

	return 2 * p * (1 - p)
}

func pure(labels []int, rows []int) bool {
	for i := 1; i < len(rows); i++ {
		if labels[rows[i]] != labels[rows[0]] {
			return false
		}
	}

	return true
}

func majority(labels []int, rows []int) int {
	positives := 0

	for _, row := range rows {
		if labels[row] == 1 {
			positives++
		}
	}

	if positives*2 >= len(rows) {
		return 1
	}

	return 0
}
