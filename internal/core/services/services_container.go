package services

import (
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/platform/clock"
	"github.com/SscSPs/sopas_backend/internal/platform/config"
)

type containerOptions struct {
	clock        clock.Clock
	healthChecks []HealthCheck
}

// ContainerOption customizes NewServiceContainer
type ContainerOption func(*containerOptions)

// WithClock replaces the wall clock, e.g. with a clock.Fixed in tests.
func WithClock(c clock.Clock) ContainerOption {
	return func(o *containerOptions) {
		o.clock = c
	}
}

// WithHealthCheck adds a dependency to the health report, e.g. the redis cache.
func WithHealthCheck(name string, checker portsrepo.HealthChecker) ContainerOption {
	return func(o *containerOptions) {
		o.healthChecks = append(o.healthChecks, HealthCheck{Name: name, Checker: checker})
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ContainerOption) *portssvc.ServiceContainer {
	o := containerOptions{clock: clock.NewSystemClock(cfg.BusinessLocation)}
	for _, opt := range opts {
		opt(&o)
	}

	container := &portssvc.ServiceContainer{}

	// Catalog first, pedidos price against it
	container.Catalog = NewCatalogService(repos.CatalogRepo, o.clock)
	container.Jornada = NewJornadaService(repos.JornadaRepo, o.clock)
	container.Pedido = NewPedidoService(repos.PedidoRepo, repos.JornadaRepo, container.Catalog, o.clock)
	checks := append([]HealthCheck{{Name: "db", Checker: repos.Health}}, o.healthChecks...)
	container.Health = NewHealthService(checks...)

	return container
}
