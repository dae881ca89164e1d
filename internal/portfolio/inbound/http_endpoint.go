package inbound

import (
	"github.com/archsol/portfolio-api/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// GetStats returns the headline portfolio figures.
// @Summary Portfolio statistics
// @Description Returns the headline portfolio figures shown on the site.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} StatsResponse "Portfolio statistics"
// @Router /api/portfolio/stats [get]
func (h *HTTPEndpoint) GetStats(r *router.Request) (any, error) {
	stats, err := h.uc.GetStats(r.Context())
	if err != nil {
		return nil, err
	}

	return StatsResponse{
		Projects:        stats.Projects,
		Technologies:    stats.Technologies,
		Industries:      stats.Industries,
		ExperienceYears: stats.ExperienceYears,
	}, nil
}

// ListSkills returns the skill categories.
// @Summary Skill categories
// @Description Returns the grouped skill categories with proficiency levels.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} SkillsResponse "Skill categories"
// @Router /api/portfolio/skills [get]
func (h *HTTPEndpoint) ListSkills(r *router.Request) (any, error) {
	categories, err := h.uc.ListSkills(r.Context())
	if err != nil {
		return nil, err
	}

	resp := SkillsResponse{Categories: make([]SkillCategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, SkillCategoryResponse{
			Title:  c.Title,
			Skills: c.Skills,
			Level:  c.Level,
		})
	}

	return resp, nil
}

// GetProjects returns the curated project portfolio.
// @Summary Featured projects
// @Description Returns the featured projects with categories and summary figures.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} ProjectsResponse "Project portfolio"
// @Router /api/portfolio/projects [get]
func (h *HTTPEndpoint) GetProjects(r *router.Request) (any, error) {
	p, err := h.uc.GetProjects(r.Context())
	if err != nil {
		return nil, err
	}

	resp := ProjectsResponse{
		FeaturedProjects:  make([]ProjectResponse, 0, len(p.Featured)),
		ProjectCategories: p.Categories,
		TotalProjects:     p.Total,
		SuccessRate:       p.SuccessRate,
	}
	for _, pr := range p.Featured {
		resp.FeaturedProjects = append(resp.FeaturedProjects, ProjectResponse{
			ID:           pr.ID,
			Title:        pr.Title,
			Category:     pr.Category,
			Client:       pr.Client,
			Duration:     pr.Duration,
			BudgetRange:  pr.BudgetRange,
			Description:  pr.Description,
			KeyOutcomes:  pr.KeyOutcomes,
			Technologies: pr.Technologies,
			Highlight:    pr.Highlight,
		})
	}

	return resp, nil
}
