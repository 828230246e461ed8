package ai

import "fmt"

// Outreach renders a personalized first-contact message for a candidate,
// in English or Dutch. It is a pure template and needs no provider.
func Outreach(lang, name, role string, cultureFit float64) string {
	if lang == LangDutch {
		return fmt.Sprintf(
			"Hi %s,\n\nJouw profiel sluit goed aan op onze rol **%s**. "+
				"Wat opvalt: sterke motivatie en een cultuurfit van %.0f%%. "+
				"Zullen we een (online) kennismaking plannen? Welke dag past voor jou?\n\nGroet,\nTeam Personato",
			name, role, cultureFit*100,
		)
	}
	return fmt.Sprintf(
		"Hi %s,\n\nYour profile aligns well with our **%s**. "+
			"What stands out: strong motivation and a culture fit of %.0f%%. "+
			"Shall we schedule a quick intro call? What day works for you?\n\nBest,\nPersonato Team",
		name, role, cultureFit*100,
	)
}
