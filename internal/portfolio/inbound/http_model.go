package inbound

type StatsResponse struct {
	Projects        string `json:"projects"`
	Technologies    string `json:"technologies"`
	Industries      string `json:"industries"`
	ExperienceYears string `json:"experience_years"`
}

type SkillCategoryResponse struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
	Level  string   `json:"level"`
}

type SkillsResponse struct {
	Categories []SkillCategoryResponse `json:"categories"`
}

type ProjectResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Client       string   `json:"client"`
	Duration     string   `json:"duration"`
	BudgetRange  string   `json:"budget_range"`
	Description  string   `json:"description"`
	KeyOutcomes  []string `json:"key_outcomes"`
	Technologies []string `json:"technologies"`
	Highlight    bool     `json:"highlight"`
}

type ProjectsResponse struct {
	FeaturedProjects  []ProjectResponse `json:"featured_projects"`
	ProjectCategories []string          `json:"project_categories"`
	TotalProjects     int               `json:"total_projects"`
	SuccessRate       string            `json:"success_rate"`
}
