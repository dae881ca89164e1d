// Package entity holds the portfolio content types. The data itself is
// static and compiled in; there is no portfolio database.
package entity

// Stats summarizes the portfolio in headline figures.
type Stats struct {
	Projects        string
	Technologies    string
	Industries      string
	ExperienceYears string
}

// SkillCategory groups related skills with a proficiency level.
type SkillCategory struct {
	Title  string
	Skills []string
	Level  string
}

// Project describes one featured engagement.
type Project struct {
	ID           string
	Title        string
	Category     string
	Client       string
	Duration     string
	BudgetRange  string
	Description  string
	KeyOutcomes  []string
	Technologies []string
	Highlight    bool
}

// ProjectPortfolio is the curated project set with summary figures.
type ProjectPortfolio struct {
	Featured    []Project
	Categories  []string
	Total       int
	SuccessRate string
}
