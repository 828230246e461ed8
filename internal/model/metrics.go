package model

import "sort"

// Metrics summarizes held-out performance of a trained model.
type Metrics struct {
	F1  float64
	AUC float64
}

// f1Score computes the F1 of boolean predictions against labels.
func f1Score(labels, preds []bool) float64 {
	var tp, fp, fn float64
	for i := range labels {
		switch {
		case preds[i] && labels[i]:
			tp++
		case preds[i] && !labels[i]:
			fp++
		case !preds[i] && labels[i]:
			fn++
		}
	}
	if 2*tp+fp+fn == 0 {
		return 0
	}
	return 2 * tp / (2*tp + fp + fn)
}

// rocAUC computes the area under the ROC curve with the rank statistic,
// averaging ranks across tied scores. Degenerate label sets score 0.5.
func rocAUC(labels []bool, scores []float64) float64 {
	n := len(labels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && scores[order[j]] == scores[order[i]] {
			j++
		}
		// ranks are 1-based; ties share the average rank
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[order[k]] = avg
		}
		i = j
	}

	var pos, sumPosRanks float64
	for i, label := range labels {
		if label {
			pos++
			sumPosRanks += ranks[i]
		}
	}
	neg := float64(n) - pos
	if pos == 0 || neg == 0 {
		return 0.5
	}
	return (sumPosRanks - pos*(pos+1)/2) / (pos * neg)
}
