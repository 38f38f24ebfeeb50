package ml

const (
	boostRounds    = 25
	boostMaxDepth  = 3
	boostShrinkage = 0.3
)

// treeNode is one node of a depth-limited regression tree. Leaves
// carry the mean residual of their samples; internal nodes route rows
// with value < Threshold to the left child.
type treeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      *treeNode `json:"left,omitempty"`
	Right     *treeNode `json:"right,omitempty"`
	Value     float64   `json:"value"`
	Leaf      bool      `json:"leaf"`
}

func (n *treeNode) predict(row []float64) float64 {
	for !n.Leaf {
		if row[n.Feature] < n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

// boostedModel is a squared-error gradient-boosted tree ensemble. The
// split search is fully deterministic, so refitting the same data
// reproduces the same model.
type boostedModel struct {
	Base         float64     `json:"base"`
	LearningRate float64     `json:"learning_rate"`
	Trees        []*treeNode `json:"trees"`
	Gains        []float64   `json:"gains"`
}

func fitBoosted(x [][]float64, y []float64) *boostedModel {
	n := len(y)
	base := 0.0
	for _, v := range y {
		base += v
	}
	base /= float64(n)

	model := &boostedModel{
		Base:         base,
		LearningRate: boostShrinkage,
		Gains:        make([]float64, len(FeatureNames)),
	}

	pred := make([]float64, n)
	for i := range pred {
		pred[i] = base
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	residual := make([]float64, n)
	for round := 0; round < boostRounds; round++ {
		for i := range residual {
			residual[i] = y[i] - pred[i]
		}
		tree := growTree(x, residual, idx, 0, model.Gains)
		model.Trees = append(model.Trees, tree)
		for i, row := range x {
			pred[i] += boostShrinkage * tree.predict(row)
		}
	}
	return model
}

func (m *boostedModel) predict(row []float64) float64 {
	out := m.Base
	for _, tree := range m.Trees {
		out += m.LearningRate * tree.predict(row)
	}
	return out
}

func growTree(x [][]float64, target []float64, idx []int, depth int, gains []float64) *treeNode {
	node := &treeNode{Value: meanAt(target, idx), Leaf: true}
	if depth >= boostMaxDepth || len(idx) < 2 {
		return node
	}

	feature, threshold, gain, ok := bestSplit(x, target, idx)
	if !ok {
		return node
	}
	gains[feature] += gain

	var left, right []int
	for _, i := range idx {
		if x[i][feature] < threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	node.Leaf = false
	node.Feature = feature
	node.Threshold = threshold
	node.Left = growTree(x, target, left, depth+1, gains)
	node.Right = growTree(x, target, right, depth+1, gains)
	return node
}

// bestSplit scans every feature for the threshold with the largest
// reduction in squared error. Features are visited in column order and
// a candidate must strictly beat the incumbent, which keeps the search
// deterministic under ties.
func bestSplit(x [][]float64, target []float64, idx []int) (feature int, threshold float64, gain float64, ok bool) {
	parent := sumSquaredError(target, idx)
	n := len(idx)

	order := make([]int, n)
	for f := 0; f < len(FeatureNames); f++ {
		copy(order, idx)
		sortByFeature(x, order, f)

		leftSum, leftSq := 0.0, 0.0
		totalSum, totalSq := 0.0, 0.0
		for _, i := range order {
			totalSum += target[i]
			totalSq += target[i] * target[i]
		}

		for k := 1; k < n; k++ {
			v := target[order[k-1]]
			leftSum += v
			leftSq += v * v

			prev := x[order[k-1]][f]
			next := x[order[k]][f]
			if prev == next {
				continue
			}

			leftSSE := leftSq - leftSum*leftSum/float64(k)
			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			rightSSE := rightSq - rightSum*rightSum/float64(n-k)

			candidate := parent - leftSSE - rightSSE
			if candidate > gain+1e-12 {
				gain = candidate
				feature = f
				threshold = (prev + next) / 2
				ok = true
			}
		}
	}
	return feature, threshold, gain, ok
}

func sortByFeature(x [][]float64, order []int, f int) {
	// Insertion sort keeps equal keys in row order; the index sets at
	// depth 3 are tiny.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && x[order[j]][f] < x[order[j-1]][f]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}

func meanAt(vals []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += vals[i]
	}
	return sum / float64(len(idx))
}

func sumSquaredError(vals []float64, idx []int) float64 {
	mean := meanAt(vals, idx)
	sse := 0.0
	for _, i := range idx {
		d := vals[i] - mean
		sse += d * d
	}
	return sse
}
