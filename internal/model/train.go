package model

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/personato/talentlens/internal/feature"
)

// TrainedModel is an immutable hiring success predictor. Once TrainOnce
// returns, the model only serves reads and is safe for concurrent use.
type TrainedModel struct {
	columns     []string
	sectorCols  map[string]int
	booster     *gbm
	metrics     Metrics
	sampleCount int
}

const testFraction = 0.25

// TrainOnce encodes the dataset, holds out a stratified quarter of it,
// fits a gradient-boosted classifier and reports held-out metrics. Gender
// is never part of the encoding.
func TrainOnce(ds *Dataset, seed uint64) (*TrainedModel, error) {
	if ds == nil || len(ds.Samples) == 0 {
		return nil, fmt.Errorf("training requires a non-empty dataset")
	}

	m := &TrainedModel{
		columns:     feature.NumericColumns(),
		sectorCols:  make(map[string]int, len(ds.Sectors)),
		sampleCount: len(ds.Samples),
	}
	for _, sector := range ds.Sectors {
		m.sectorCols[sector] = len(m.columns)
		m.columns = append(m.columns, "Sector_"+sector)
	}

	x := make([][]float64, len(ds.Samples))
	y := make([]float64, len(ds.Samples))
	for i, s := range ds.Samples {
		x[i] = m.encode(s.vector(), s.Sector)
		if s.Hired {
			y[i] = 1
		}
	}

	trainIdx, testIdx := stratifiedSplit(y, testFraction, seed)
	if len(trainIdx) == 0 {
		return nil, fmt.Errorf("dataset too small for a train/test split")
	}

	trainX := make([][]float64, len(trainIdx))
	trainY := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		trainX[i] = x[idx]
		trainY[i] = y[idx]
	}

	m.booster = fitGBM(trainX, trainY, defaultGBMParams())

	labels := make([]bool, len(testIdx))
	preds := make([]bool, len(testIdx))
	scores := make([]float64, len(testIdx))
	for i, idx := range testIdx {
		prob := m.booster.predictProb(x[idx])
		labels[i] = y[idx] == 1
		preds[i] = prob > 0.5
		scores[i] = prob
	}
	m.metrics = Metrics{F1: f1Score(labels, preds), AUC: rocAUC(labels, scores)}

	return m, nil
}

// stratifiedSplit separates indices into train and test sets, keeping the
// label balance of both classes.
func stratifiedSplit(y []float64, fraction float64, seed uint64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))

	var pos, neg []int
	for i, label := range y {
		if label == 1 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}

	for _, class := range [][]int{pos, neg} {
		rng.Shuffle(len(class), func(a, b int) {
			class[a], class[b] = class[b], class[a]
		})
		cut := int(float64(len(class)) * fraction)
		test = append(test, class[:cut]...)
		train = append(train, class[cut:]...)
	}
	return train, test
}

// encode renders a feature vector plus sector one-hot in column order.
// Unknown sectors leave all sector indicators at zero.
func (m *TrainedModel) encode(v feature.Vector, sector string) []float64 {
	row := make([]float64, len(m.columns))
	copy(row, v.NumericRow())
	if col, ok := m.sectorCols[sector]; ok {
		row[col] = 1
	}
	return row
}

// Predict returns the probability that a candidate with these features
// succeeds in the given sector. The result is always strictly inside (0, 1).
func (m *TrainedModel) Predict(v feature.Vector, sector string) float64 {
	return m.booster.predictProb(m.encode(v, sector))
}

// Columns returns the model input columns in canonical order.
func (m *TrainedModel) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// Metrics returns the held-out evaluation computed during training.
func (m *TrainedModel) Metrics() Metrics {
	return m.metrics
}

// SampleCount reports the size of the training population.
func (m *TrainedModel) SampleCount() int {
	return m.sampleCount
}
