package ai

import (
	"context"
	"fmt"
)

// TemplateNarrator is the offline fallback: deterministic profile
// summaries and a fixed question bank instead of generated prose.
type TemplateNarrator struct{}

var _ Narrator = (*TemplateNarrator)(nil)

// NewTemplateNarrator returns the offline narrator.
func NewTemplateNarrator() *TemplateNarrator {
	return &TemplateNarrator{}
}

func profileSummary(req NarrativeRequest) string {
	if req.Lang == LangDutch {
		return fmt.Sprintf(
			"Profielschets:\n- Voorspelde succeskans: %.0f%%\n- Motivatie: %.0f%%\n"+
				"- Skills match: %.0f%%\n- Cultuurfit: %.0f%%\n- Ervaring: %d jaar\n- Rol: %s\n\n",
			req.Probability*100, req.Features.MotivationScore*100,
			req.Features.SkillMatch*100, req.Features.CultureFit*100,
			req.Features.ExperienceYears, req.Role,
		)
	}
	return fmt.Sprintf(
		"Profile:\n- Predicted success: %.0f%%\n- Motivation: %.0f%%\n"+
			"- Skill match: %.0f%%\n- Culture fit: %.0f%%\n- Experience: %d years\n- Role: %s\n\n",
		req.Probability*100, req.Features.MotivationScore*100,
		req.Features.SkillMatch*100, req.Features.CultureFit*100,
		req.Features.ExperienceYears, req.Role,
	)
}

// Narrative renders a feature-based profile summary.
func (n *TemplateNarrator) Narrative(_ context.Context, req NarrativeRequest) (string, error) {
	suffix := "Narrative (limited without model)."
	if req.Lang == LangDutch {
		suffix = "Narratief (beperkt zonder model)."
	}
	return profileSummary(req) + suffix, nil
}

// Answer explains that grounded Q&A needs an API key, alongside the
// profile summary so the caller still gets something useful.
func (n *TemplateNarrator) Answer(_ context.Context, req AnswerRequest) (string, error) {
	summary := profileSummary(NarrativeRequest{Lang: req.Lang, Role: req.Role})
	if req.Lang == LangDutch {
		return summary + "(Geen API-sleutel: Q&A/narratief beperkt.)", nil
	}
	return summary + "(No API key: Q&A/narrative limited.)", nil
}

// Questions returns the built-in recruiter question bank for the role.
func (n *TemplateNarrator) Questions(_ context.Context, req QuestionsRequest) ([]string, error) {
	return FallbackQuestions(req.Role), nil
}

// FallbackQuestions is the fixed assessment question bank used when no
// generative provider is configured or a provider call fails.
func FallbackQuestions(role string) []string {
	if role == "" {
		role = "open"
	}
	return []string{
		fmt.Sprintf("What motivated you to apply for the %s position?", role),
		"Which skills make you a strong fit for this role?",
		"Describe a past experience that shows your competence.",
		"How do you collaborate with others at work?",
		"What about our company culture appeals to you?",
		"Where do you see your growth potential?",
		"Imagine getting this job — what would you change or optimize first?",
	}
}
