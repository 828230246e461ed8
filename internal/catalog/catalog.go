// Package catalog holds the vacancy profiles the engine matches candidates
// against, grouped by sector.
package catalog

import "strings"

// Profile describes a single vacancy in the catalog.
type Profile struct {
	Sector         string
	JobTitle       string
	RequiredSkills []string
	ValueWords     []string
	ExpMin         int
	ExpMax         int
}

// Signature is the text the classifier indexes for this profile: the job
// title, required skills and value words joined into one string.
func (p Profile) Signature() string {
	parts := []string{p.JobTitle, strings.Join(p.RequiredSkills, " "), strings.Join(p.ValueWords, " ")}
	return strings.Join(parts, " ")
}

// Catalog is an ordered collection of vacancy profiles grouped by sector.
// It is immutable; overrides produce a new Catalog.
type Catalog struct {
	sectors  []string
	profiles map[string][]Profile
}

// DefaultSector is used when the caller does not pick a sector.
const DefaultSector = "IT"

// New builds a catalog from profiles, preserving first-seen sector order.
func New(profiles []Profile) *Catalog {
	c := &Catalog{profiles: make(map[string][]Profile)}
	for _, p := range profiles {
		if _, ok := c.profiles[p.Sector]; !ok {
			c.sectors = append(c.sectors, p.Sector)
		}
		c.profiles[p.Sector] = append(c.profiles[p.Sector], p)
	}
	return c
}

// Sectors returns the sector names in catalog order.
func (c *Catalog) Sectors() []string {
	out := make([]string, len(c.sectors))
	copy(out, c.sectors)
	return out
}

// Profiles returns every profile in catalog order.
func (c *Catalog) Profiles() []Profile {
	var out []Profile
	for _, sector := range c.sectors {
		out = append(out, c.profiles[sector]...)
	}
	return out
}

// SectorProfiles returns the profiles of one sector in catalog order.
func (c *Catalog) SectorProfiles(sector string) []Profile {
	out := make([]Profile, len(c.profiles[sector]))
	copy(out, c.profiles[sector])
	return out
}

// Find locates a profile by sector and job title.
func (c *Catalog) Find(sector, jobTitle string) (Profile, bool) {
	for _, p := range c.profiles[sector] {
		if strings.EqualFold(p.JobTitle, jobTitle) {
			return p, true
		}
	}
	return Profile{}, false
}

// HasSector reports whether the catalog contains the sector.
func (c *Catalog) HasSector(sector string) bool {
	_, ok := c.profiles[sector]
	return ok
}

// WithSectorProfiles returns a copy of the catalog with the given sector's
// profiles replaced. Unknown sectors are appended.
func (c *Catalog) WithSectorProfiles(sector string, profiles []Profile) *Catalog {
	next := &Catalog{profiles: make(map[string][]Profile, len(c.profiles))}
	next.sectors = append(next.sectors, c.sectors...)
	for s, ps := range c.profiles {
		next.profiles[s] = ps
	}

	if !c.HasSector(sector) {
		next.sectors = append(next.sectors, sector)
	}

	replaced := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		p.Sector = sector
		replaced = append(replaced, p)
	}
	next.profiles[sector] = replaced
	return next
}

// Builtin returns the default vacancy catalog.
func Builtin() *Catalog {
	return New([]Profile{
		{Sector: "IT", JobTitle: "Data Analyst",
			RequiredSkills: []string{"Python", "SQL", "PowerBI", "Visualization", "Statistics"},
			ValueWords:     []string{"analysis", "autonomy", "curiosity", "impact", "learning"},
			ExpMin:         2, ExpMax: 6},
		{Sector: "IT", JobTitle: "Data Engineer",
			RequiredSkills: []string{"Python", "SQL", "ETL", "Airflow", "Cloud"},
			ValueWords:     []string{"ownership", "craft", "quality", "scalability", "learning"},
			ExpMin:         3, ExpMax: 8},
		{Sector: "IT", JobTitle: "Software Developer",
			RequiredSkills: []string{"Python", "JavaScript", "Git", "APIs", "Testing"},
			ValueWords:     []string{"craft", "innovation", "autonomy", "teamwork", "impact"},
			ExpMin:         2, ExpMax: 7},
		{Sector: "HR", JobTitle: "HR Consultant",
			RequiredSkills: []string{"Stakeholder", "Advisory", "Recruitment", "Policy", "Communication"},
			ValueWords:     []string{"empathy", "collaboration", "trust", "structure", "clarity"},
			ExpMin:         3, ExpMax: 8},
		{Sector: "HR", JobTitle: "Recruiter",
			RequiredSkills: []string{"Sourcing", "Screening", "Interviewing", "ATS", "EmployerBranding"},
			ValueWords:     []string{"connection", "clarity", "speed", "quality", "partnership"},
			ExpMin:         1, ExpMax: 5},
		{Sector: "Marketing", JobTitle: "Marketing Manager",
			RequiredSkills: []string{"Campaigns", "Brand", "SEO", "Content", "Leadership"},
			ValueWords:     []string{"creativity", "ownership", "innovation", "storytelling", "growth"},
			ExpMin:         4, ExpMax: 10},
		{Sector: "Marketing", JobTitle: "Content Marketer",
			RequiredSkills: []string{"Copywriting", "SEO", "Analytics", "Social", "CMS"},
			ValueWords:     []string{"storytelling", "clarity", "growth", "curiosity", "impact"},
			ExpMin:         1, ExpMax: 5},
		{Sector: "Logistics", JobTitle: "Logistics Planner",
			RequiredSkills: []string{"Planning", "WMS", "Excel", "Communication", "Problem-solving"},
			ValueWords:     []string{"structure", "ownership", "reliability", "teamwork", "service"},
			ExpMin:         1, ExpMax: 6},
		{Sector: "Logistics", JobTitle: "Supply Chain Analyst",
			RequiredSkills: []string{"SQL", "Forecasting", "PowerBI", "ERP", "Inventory"},
			ValueWords:     []string{"analysis", "precision", "improvement", "collaboration", "impact"},
			ExpMin:         2, ExpMax: 7},
		{Sector: "Finance", JobTitle: "Financial Controller",
			RequiredSkills: []string{"Accounting", "Excel", "Reporting", "IFRS", "Analysis"},
			ValueWords:     []string{"accuracy", "integrity", "ownership", "clarity", "structure"},
			ExpMin:         3, ExpMax: 9},
		{Sector: "Finance", JobTitle: "Business Analyst",
			RequiredSkills: []string{"Modelling", "SQL", "PowerBI", "Stakeholder", "Budgeting"},
			ValueWords:     []string{"impact", "analysis", "learning", "partnership", "quality"},
			ExpMin:         2, ExpMax: 7},
		{Sector: "Sales", JobTitle: "Account Manager",
			RequiredSkills: []string{"Prospecting", "Negotiation", "CRM", "Forecasting", "Presentation"},
			ValueWords:     []string{"ownership", "growth", "relationship", "drive", "results"},
			ExpMin:         2, ExpMax: 8},
		{Sector: "Engineering", JobTitle: "Mechanical Engineer",
			RequiredSkills: []string{"CAD", "FEA", "Materials", "Testing", "Manufacturing"},
			ValueWords:     []string{"craft", "precision", "innovation", "safety", "quality"},
			ExpMin:         2, ExpMax: 8},
		{Sector: "Legal", JobTitle: "Legal Counsel",
			RequiredSkills: []string{"Contract", "Compliance", "GDPR", "Negotiation", "Advisory"},
			ValueWords:     []string{"integrity", "precision", "clarity", "risk", "trust"},
			ExpMin:         3, ExpMax: 9},
		{Sector: "Healthcare", JobTitle: "Healthcare Administrator",
			RequiredSkills: []string{"EMR", "Scheduling", "Compliance", "Communication", "Billing"},
			ValueWords:     []string{"care", "trust", "structure", "service", "quality"},
			ExpMin:         1, ExpMax: 6},
	})
}
