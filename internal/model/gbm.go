package model

import (
	"math"
	"sort"

	"github.com/personato/talentlens/internal/util"
)

// gbmParams configures the gradient boosting fit.
type gbmParams struct {
	trees        int
	maxDepth     int
	minLeaf      int
	learningRate float64
}

func defaultGBMParams() gbmParams {
	return gbmParams{trees: 100, maxDepth: 3, minLeaf: 5, learningRate: 0.1}
}

// treeNode is a node of a regression tree fit to gradients. Leaves carry a
// Newton-step value; internal nodes route on feature <= threshold.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
}

func (n *treeNode) predict(row []float64) float64 {
	for n.left != nil {
		if row[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

// gbm is a gradient-boosted tree ensemble for binary logistic loss.
type gbm struct {
	bias  float64
	lr    float64
	trees []*treeNode
}

// fitGBM boosts regression trees on the logistic loss gradients of y
// (0 or 1 labels) over feature rows x.
func fitGBM(x [][]float64, y []float64, p gbmParams) *gbm {
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean = util.Clip(mean/float64(len(y)), 1e-6, 1-1e-6)

	g := &gbm{
		bias: math.Log(mean / (1 - mean)),
		lr:   p.learningRate,
	}

	scores := make([]float64, len(y))
	for i := range scores {
		scores[i] = g.bias
	}

	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}

	grad := make([]float64, len(y))
	hess := make([]float64, len(y))
	for t := 0; t < p.trees; t++ {
		for i := range y {
			prob := util.Sigmoid(scores[i])
			grad[i] = y[i] - prob
			hess[i] = prob * (1 - prob)
		}

		tree := buildTree(x, grad, hess, idx, p.maxDepth, p.minLeaf)
		for i := range scores {
			scores[i] += g.lr * tree.predict(x[i])
		}
		g.trees = append(g.trees, tree)
	}

	return g
}

func (g *gbm) predictProb(row []float64) float64 {
	score := g.bias
	for _, tree := range g.trees {
		score += g.lr * tree.predict(row)
	}
	return util.Sigmoid(score)
}

// maxThresholds bounds split search per feature to quantile candidates.
const maxThresholds = 16

func buildTree(x [][]float64, grad, hess []float64, idx []int, depth, minLeaf int) *treeNode {
	node := &treeNode{value: leafValue(grad, hess, idx)}
	if depth <= 0 || len(idx) < 2*minLeaf {
		return node
	}

	var sumG, sumH float64
	for _, i := range idx {
		sumG += grad[i]
		sumH += hess[i]
	}
	parentGain := gainTerm(sumG, sumH)

	bestGain := 0.0
	bestFeature := -1
	bestThreshold := 0.0

	nFeatures := len(x[idx[0]])
	values := make([]float64, 0, len(idx))
	for f := 0; f < nFeatures; f++ {
		values = values[:0]
		for _, i := range idx {
			values = append(values, x[i][f])
		}

		for _, threshold := range thresholds(values) {
			var leftG, leftH float64
			leftN := 0
			for _, i := range idx {
				if x[i][f] <= threshold {
					leftG += grad[i]
					leftH += hess[i]
					leftN++
				}
			}
			if leftN < minLeaf || len(idx)-leftN < minLeaf {
				continue
			}

			gain := gainTerm(leftG, leftH) + gainTerm(sumG-leftG, sumH-leftH) - parentGain
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = threshold
			}
		}
	}

	if bestFeature < 0 {
		return node
	}

	var left, right []int
	for _, i := range idx {
		if x[i][bestFeature] <= bestThreshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	node.feature = bestFeature
	node.threshold = bestThreshold
	node.left = buildTree(x, grad, hess, left, depth-1, minLeaf)
	node.right = buildTree(x, grad, hess, right, depth-1, minLeaf)
	return node
}

func leafValue(grad, hess []float64, idx []int) float64 {
	var g, h float64
	for _, i := range idx {
		g += grad[i]
		h += hess[i]
	}
	return g / (h + 1e-12)
}

func gainTerm(g, h float64) float64 {
	return g * g / (h + 1e-12)
}

// thresholds picks up to maxThresholds distinct split points from the
// sorted values, at evenly spaced quantiles.
func thresholds(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	distinct := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != distinct[len(distinct)-1] {
			distinct = append(distinct, v)
		}
	}
	// Splitting above the maximum would send everything left.
	if len(distinct) > 0 {
		distinct = distinct[:len(distinct)-1]
	}
	if len(distinct) <= maxThresholds {
		return distinct
	}

	out := make([]float64, 0, maxThresholds)
	step := float64(len(distinct)) / float64(maxThresholds)
	for i := 0; i < maxThresholds; i++ {
		out = append(out, distinct[int(float64(i)*step)])
	}
	return out
}
