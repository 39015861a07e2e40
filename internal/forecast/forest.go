package forecast

import (
	"math/rand"
	"sort"
)

const (
	forestSize = 100
	forestSeed = 42

	treeMaxDepth   = 24
	treeMinSamples = 2
)

// forestModel is a bagged ensemble of regression trees. Each tree is grown on
// a bootstrap sample of the training examples; leaves store the mean target
// vector, so the ensemble is natively multi-output. The fixed seed makes
// training deterministic.
type forestModel struct {
	size  int
	seed  int64
	trees []*treeNode
}

func newForestModel(size int, seed int64) *forestModel {
	return &forestModel{size: size, seed: seed}
}

func (m *forestModel) Name() string { return string(StrategyForest) }

func (m *forestModel) Fit(inputs, targets [][]float64) error {
	if err := checkTrainingData(StrategyForest, inputs, targets); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(m.seed))
	n := len(inputs)
	m.trees = make([]*treeNode, 0, m.size)
	for t := 0; t < m.size; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		m.trees = append(m.trees, growTree(inputs, targets, sample, 0))
	}
	return nil
}

func (m *forestModel) Predict(input []float64) []float64 {
	if len(m.trees) == 0 {
		return nil
	}
	var out []float64
	for _, tree := range m.trees {
		leaf := tree.lookup(input)
		if out == nil {
			out = make([]float64, len(leaf))
		}
		for i, v := range leaf {
			out[i] += v
		}
	}
	for i := range out {
		out[i] /= float64(len(m.trees))
	}
	return out
}

// treeNode is either an internal split on one input feature or a leaf holding
// the mean target vector of its samples.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      []float64
}

func (t *treeNode) lookup(input []float64) []float64 {
	for t.leaf == nil {
		if input[t.feature] <= t.threshold {
			t = t.left
		} else {
			t = t.right
		}
	}
	return t.leaf
}

func growTree(inputs, targets [][]float64, sample []int, depth int) *treeNode {
	if len(sample) < treeMinSamples || depth >= treeMaxDepth {
		return leafNode(targets, sample)
	}
	feature, threshold, ok := bestSplit(inputs, targets, sample)
	if !ok {
		return leafNode(targets, sample)
	}
	var left, right []int
	for _, idx := range sample {
		if inputs[idx][feature] <= threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(inputs, targets, left, depth+1),
		right:     growTree(inputs, targets, right, depth+1),
	}
}

func leafNode(targets [][]float64, sample []int) *treeNode {
	h := len(targets[sample[0]])
	mean := make([]float64, h)
	for _, idx := range sample {
		for i, v := range targets[idx] {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] /= float64(len(sample))
	}
	return &treeNode{leaf: mean}
}

// bestSplit picks the (feature, threshold) pair minimizing the summed squared
// error of the two children over all target outputs.
func bestSplit(inputs, targets [][]float64, sample []int) (int, float64, bool) {
	nFeatures := len(inputs[sample[0]])
	h := len(targets[sample[0]])
	n := len(sample)

	total := make([]float64, h)
	for _, idx := range sample {
		for t, v := range targets[idx] {
			total[t] += v
		}
	}

	bestScore := childScore(targets, sample, total, n) // parent impurity baseline
	bestFeature, bestThreshold := -1, 0.0
	found := false

	order := make([]int, n)
	leftSum := make([]float64, h)
	for f := 0; f < nFeatures; f++ {
		copy(order, sample)
		sort.Slice(order, func(a, b int) bool {
			return inputs[order[a]][f] < inputs[order[b]][f]
		})
		for t := range leftSum {
			leftSum[t] = 0
		}
		for i := 0; i < n-1; i++ {
			idx := order[i]
			for t, v := range targets[idx] {
				leftSum[t] += v
			}
			cur, next := inputs[idx][f], inputs[order[i+1]][f]
			if cur == next {
				continue
			}
			score := childScore(targets, order[:i+1], leftSum, i+1) +
				childScore(targets, order[i+1:], diff(total, leftSum), n-i-1)
			if score < bestScore {
				bestScore = score
				bestFeature = f
				bestThreshold = (cur + next) / 2
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}

// childScore computes the summed squared deviation from the mean over the
// sample, across every target output. sum holds the per-output target totals
// for the sample.
func childScore(targets [][]float64, sample []int, sum []float64, n int) float64 {
	score := 0.0
	for _, idx := range sample {
		for t, v := range targets[idx] {
			d := v - sum[t]/float64(n)
			score += d * d
		}
	}
	return score
}

func diff(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}
