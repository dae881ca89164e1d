package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/portfolio/entity"
)

// Usecase serves the static portfolio content.
type Usecase struct {
	ins instrument.Instrumentation
}

type Dependency struct {
	Instrument instrument.Instrumentation
}

func NewPortfolio(dep Dependency) *Usecase {
	return &Usecase{ins: dep.Instrument}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("portfolio.usecase").Start(ctx, name)
}

// GetStats returns the headline portfolio figures.
func (s *Usecase) GetStats(ctx context.Context) (entity.Stats, error) {
	_, span := s.startSpan(ctx, "GetStats")
	defer span.End()

	return stats, nil
}

// ListSkills returns the skill categories.
func (s *Usecase) ListSkills(ctx context.Context) ([]entity.SkillCategory, error) {
	_, span := s.startSpan(ctx, "ListSkills")
	defer span.End()

	return skillCategories, nil
}

// GetProjects returns the curated project portfolio.
func (s *Usecase) GetProjects(ctx context.Context) (entity.ProjectPortfolio, error) {
	_, span := s.startSpan(ctx, "GetProjects")
	defer span.End()

	return projects, nil
}
