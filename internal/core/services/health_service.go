package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
)

const (
	statusConnected = "connected"
	statusError     = "error"
)

// HealthCheck names a dependency to ping.
type HealthCheck struct {
	Name    string
	Checker portsrepo.HealthChecker
}

type healthService struct {
	checks []HealthCheck
}

func NewHealthService(checks ...HealthCheck) portssvc.HealthSvc {
	return &healthService{checks: checks}
}

func (s *healthService) Check(ctx context.Context) (map[string]string, error) {
	statuses := make(map[string]string, len(s.checks))
	var firstErr error
	for _, c := range s.checks {
		if c.Checker == nil {
			continue
		}
		if err := c.Checker.Ping(ctx); err != nil {
			statuses[c.Name] = statusError
			if firstErr == nil {
				firstErr = fmt.Errorf("%s unreachable: %w", c.Name, err)
			}
			continue
		}
		statuses[c.Name] = statusConnected
	}
	return statuses, firstErr
}
