package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Catalog CatalogSvcFacade
	Jornada JornadaSvcFacade
	Pedido  PedidoSvcFacade
	Health  HealthSvc
}

// HealthSvc reports whether the service's dependencies are reachable.
type HealthSvc interface {
	// Check pings every dependency. The map holds "connected" or "error" per dependency
	// and the error is the first failure, if any.
	Check(ctx context.Context) (map[string]string, error)
}
