package portfolio

import (
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/pkg/router"
	"github.com/archsol/portfolio-api/internal/portfolio/inbound"
	"github.com/archsol/portfolio-api/internal/portfolio/usecase"
)

type Dependency struct {
	Instrument instrument.Instrumentation
	Router     *router.Router
}

func New(dep Dependency) error {
	uc := usecase.NewPortfolio(usecase.Dependency{Instrument: dep.Instrument})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
