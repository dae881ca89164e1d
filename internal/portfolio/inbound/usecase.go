package inbound

import (
	"context"

	"github.com/archsol/portfolio-api/internal/portfolio/entity"
)

type uc interface {
	GetStats(ctx context.Context) (entity.Stats, error)
	ListSkills(ctx context.Context) ([]entity.SkillCategory, error)
	GetProjects(ctx context.Context) (entity.ProjectPortfolio, error)
}
