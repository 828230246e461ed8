package feature

import (
	"regexp"
	"strings"
	"time"

	"github.com/personato/talentlens/internal/util"
)

// Emotion category names as they appear in EmotionVector results.
const (
	EmotionJoy          = "joy"
	EmotionTrust        = "trust"
	EmotionAnticipation = "anticipation"
	EmotionSurprise     = "surprise"
	EmotionSadness      = "sadness"
	EmotionAnger        = "anger"
	EmotionFear         = "fear"
	EmotionDisgust      = "disgust"
)

// emotionLexicon maps each category to its keyword list. Multi-word
// keywords are matched as phrases.
var emotionLexicon = map[string][]string{
	EmotionJoy:          {"happy", "delight", "enjoy", "excited", "proud", "satisfied", "enthusiastic", "passion"},
	EmotionTrust:        {"trust", "reliable", "integrity", "dependable", "responsible", "commitment"},
	EmotionAnticipation: {"eager", "looking forward", "anticipate", "expect", "curious", "aspire", "ambition"},
	EmotionSurprise:     {"surprise", "unexpected", "discovery", "novel", "breakthrough"},
	EmotionSadness:      {"sad", "regret", "unhappy", "disappointed", "loss", "depress"},
	EmotionAnger:        {"angry", "frustrated", "upset", "annoyed", "irritated"},
	EmotionFear:         {"afraid", "fear", "concern", "worried", "anxious", "risk"},
	EmotionDisgust:      {"disgust", "gross", "repulsed", "unethical", "unfair"},
}

var positiveEmotions = []string{EmotionJoy, EmotionTrust, EmotionAnticipation, EmotionSurprise}
var negativeEmotions = []string{EmotionSadness, EmotionAnger, EmotionFear, EmotionDisgust}

// skillVocab provides fallback skill vocabularies per job title, consulted
// when a vacancy profile lists no required skills of its own.
var skillVocab = map[string][]string{
	"Data Analyst":             {"Python", "SQL", "PowerBI", "Tableau", "Statistics", "ETL", "Pandas", "Numpy", "Visualization", "Dashboards"},
	"Data Engineer":            {"Python", "SQL", "ETL", "Airflow", "Cloud", "Pandas", "Spark"},
	"Software Developer":       {"Python", "JavaScript", "Git", "APIs", "Testing", "CI/CD"},
	"HR Consultant":            {"Recruitment", "Policy", "HRIS", "Stakeholder", "Coaching", "Onboarding", "Compensation", "Benefits", "Compliance", "Communication"},
	"Recruiter":                {"Sourcing", "Screening", "Interviewing", "ATS", "EmployerBranding", "LinkedIn"},
	"Marketing Manager":        {"Campaigns", "Brand", "SEO", "SEM", "Content", "Copywriting", "Analytics", "Social", "Leadership", "Strategy"},
	"Content Marketer":         {"Copywriting", "SEO", "Analytics", "Social", "CMS", "Content"},
	"Logistics Planner":        {"Planning", "WMS", "Excel", "Communication", "Problem-solving"},
	"Supply Chain Analyst":     {"SQL", "Forecasting", "PowerBI", "ERP", "Inventory"},
	"Financial Controller":     {"Accounting", "Excel", "Reporting", "IFRS", "Analysis"},
	"Business Analyst":         {"Modelling", "SQL", "PowerBI", "Stakeholder", "Budgeting"},
	"Account Manager":          {"Prospecting", "Negotiation", "CRM", "Forecasting", "Presentation"},
	"Mechanical Engineer":      {"CAD", "FEA", "Materials", "Testing", "Manufacturing"},
	"Legal Counsel":            {"Contract", "Compliance", "GDPR", "Negotiation", "Advisory"},
	"Healthcare Administrator": {"EMR", "Scheduling", "Compliance", "Communication", "Billing"},
}

var (
	experienceRe = regexp.MustCompile(`\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)
	yearRe       = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	positiveRe = regexp.MustCompile(`\b(excellent|achieved|improved|growth|success|impact|passion|motiv)\w*\b`)
	negativeRe = regexp.MustCompile(`\b(problem|issue|failure|struggle|weak)\w*\b`)

	eduWORe  = regexp.MustCompile(`\bwo\b|\bmaster\b|\bmsc\b|\buniversity\b|\buniversiteit\b`)
	eduHBORe = regexp.MustCompile(`\bhbo\b|\bbachelor\b`)
	eduMBORe = regexp.MustCompile(`\bmbo\b`)

	wordRes = map[string]*regexp.Regexp{}
)

func init() {
	for _, kws := range emotionLexicon {
		for _, kw := range kws {
			wordRes[kw] = wordRe(kw)
		}
	}
}

func wordRe(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// DetectExperienceYears extracts years of experience from free text. The
// strongest signal is an explicit "<n> years" phrase (the maximum wins).
// Failing that, two or more 4-digit years imply a span, and a single year
// is measured against the current year. The result is clipped to [0, 20].
func DetectExperienceYears(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	t := strings.ToLower(text)
	yrs := 0

	for _, m := range experienceRe.FindAllStringSubmatch(t, -1) {
		n := 0
		for _, r := range m[1] {
			n = n*10 + int(r-'0')
		}
		if n > yrs {
			yrs = n
		}
	}

	if yrs == 0 {
		years := yearRe.FindAllString(t, -1)
		switch {
		case len(years) >= 2:
			min, max := 9999, 0
			for _, y := range years {
				n := atoiYear(y)
				if n < min {
					min = n
				}
				if n > max {
					max = n
				}
			}
			yrs = clampInt(max-min, 0, 40)
		case len(years) == 1:
			yrs = clampInt(time.Now().Year()-atoiYear(years[0]), 0, 40)
		}
	}

	return clampInt(yrs, 0, 20)
}

func atoiYear(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SkillMatchScore returns the fraction of vocabulary skills found in the
// text as whole words, case-insensitively. An empty text or vocabulary
// scores zero.
func SkillMatchScore(text string, vocab []string) float64 {
	if strings.TrimSpace(text) == "" || len(vocab) == 0 {
		return 0
	}

	found := 0
	for _, skill := range vocab {
		if wordRe(skill).MatchString(text) {
			found++
		}
	}
	return float64(found) / float64(len(vocab))
}

// SkillVocabulary returns the skill vocabulary for a vacancy: the profile's
// own required skills when present, else the fallback list for the job
// title. Unknown titles without skills yield nil.
func SkillVocabulary(jobTitle string, requiredSkills []string) []string {
	if len(requiredSkills) > 0 {
		return requiredSkills
	}
	return skillVocab[jobTitle]
}

// CultureFitScore returns the fraction of vacancy value words present in
// the text. Without text or value words the neutral 0.5 is returned.
func CultureFitScore(text string, valueWords []string) float64 {
	if strings.TrimSpace(text) == "" || len(valueWords) == 0 {
		return 0.5
	}

	hits := 0
	for _, w := range valueWords {
		if wordRe(w).MatchString(text) {
			hits++
		}
	}
	return float64(hits) / float64(len(valueWords))
}

// EmotionVector scores the eight emotion categories. Each category counts
// keyword occurrences and saturates at ten hits.
func EmotionVector(text string) map[string]float64 {
	vec := make(map[string]float64, len(emotionLexicon))
	for emo, kws := range emotionLexicon {
		hits := 0
		for _, kw := range kws {
			hits += len(wordRes[kw].FindAllStringIndex(text, -1))
		}
		v := float64(hits) / 10
		if v > 1 {
			v = 1
		}
		vec[emo] = v
	}
	return vec
}

func meanOf(vec map[string]float64, keys []string) float64 {
	var sum float64
	for _, k := range keys {
		sum += vec[k]
	}
	return sum / float64(len(keys))
}

// LexiconSentiment scores sentiment from keyword stems. Texts shorter than
// 20 characters get the neutral 0.5; each surplus positive stem adds 0.03
// and each negative one subtracts it, clipped to the unit interval.
func LexiconSentiment(text string) float64 {
	if len(text) < 20 {
		return 0.5
	}

	t := strings.ToLower(text)
	pos := len(positiveRe.FindAllString(t, -1))
	neg := len(negativeRe.FindAllString(t, -1))
	return util.Clip01(0.5 + 0.03*float64(pos-neg))
}

// EducationLevel detects the highest education level mentioned in the text,
// following the Dutch MBO/HBO/WO ladder. HBO is assumed when nothing
// matches.
func EducationLevel(text string) string {
	t := strings.ToLower(text)
	switch {
	case eduWORe.MatchString(t):
		return EducationWO
	case eduHBORe.MatchString(t):
		return EducationHBO
	case eduMBORe.MatchString(t):
		return EducationMBO
	default:
		return EducationHBO
	}
}
