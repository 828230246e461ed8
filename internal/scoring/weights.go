// Package scoring combines model predictions, recruiter-tunable weights
// and offer terms into the final candidate scores.
package scoring

import (
	"sync"

	"github.com/google/uuid"
)

// Weights are the recruiter-tunable factor weights of the blender.
// EmotionNegative counts against the candidate; all others in favor.
type Weights struct {
	Experience      float64 `mapstructure:"experience"`
	SkillMatch      float64 `mapstructure:"skill-match"`
	CultureFit      float64 `mapstructure:"culture-fit"`
	Motivation      float64 `mapstructure:"motivation"`
	Sentiment       float64 `mapstructure:"sentiment"`
	EmotionPositive float64 `mapstructure:"emotion-positive"`
	EmotionNegative float64 `mapstructure:"emotion-negative"`
}

// DefaultWeights returns the factory weight profile.
func DefaultWeights() Weights {
	return Weights{
		Experience:      0.6,
		SkillMatch:      1.4,
		CultureFit:      1.2,
		Motivation:      1.0,
		Sentiment:       0.8,
		EmotionPositive: 0.6,
		EmotionNegative: 0.4,
	}
}

// DefaultBlendFactor balances model probability and weighted score.
const DefaultBlendFactor = 0.4

// sanitized floors negative weights at zero.
func (w Weights) sanitized() Weights {
	for _, f := range []*float64{
		&w.Experience, &w.SkillMatch, &w.CultureFit, &w.Motivation,
		&w.Sentiment, &w.EmotionPositive, &w.EmotionNegative,
	} {
		if *f < 0 {
			*f = 0
		}
	}
	return w
}

// Normalized rescales the weights so they sum to one. Zero or negative
// totals leave the weights unchanged.
func (w Weights) Normalized() Weights {
	w = w.sanitized()
	total := w.positiveSum() + w.EmotionNegative
	if total <= 0 {
		return w
	}
	w.Experience /= total
	w.SkillMatch /= total
	w.CultureFit /= total
	w.Motivation /= total
	w.Sentiment /= total
	w.EmotionPositive /= total
	w.EmotionNegative /= total
	return w
}

// positiveSum is the normalizer of the blender: the sum of all weights
// that count in the candidate's favor.
func (w Weights) positiveSum() float64 {
	return w.Experience + w.SkillMatch + w.CultureFit + w.Motivation + w.Sentiment + w.EmotionPositive
}

// SessionStore keeps per-session, per-sector weight profiles. Sessions are
// identified by opaque IDs; unset combinations fall back to the defaults.
// It is safe for concurrent use.
type SessionStore struct {
	mu       sync.RWMutex
	defaults Weights
	sessions map[string]map[string]Weights
}

// NewSessionStore creates a store with the given fallback weights.
func NewSessionStore(defaults Weights) *SessionStore {
	return &SessionStore{
		defaults: defaults,
		sessions: make(map[string]map[string]Weights),
	}
}

// NewSession registers a fresh session and returns its ID.
func (s *SessionStore) NewSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = make(map[string]Weights)
	s.mu.Unlock()
	return id
}

// Weights returns the weights for a session and sector, falling back to
// the store defaults when the combination has never been set.
func (s *SessionStore) Weights(session, sector string) Weights {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sectors, ok := s.sessions[session]; ok {
		if w, ok := sectors[sector]; ok {
			return w
		}
	}
	return s.defaults
}

// SetWeights stores a weight profile for a session and sector. Unknown
// sessions are created implicitly.
func (s *SessionStore) SetWeights(session, sector string, w Weights) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sectors, ok := s.sessions[session]
	if !ok {
		sectors = make(map[string]Weights)
		s.sessions[session] = sectors
	}
	sectors[sector] = w
}
