// Package service implements the gateway's resolution orchestrator. Each
// public operation runs the same pipeline: authorize the caller for the
// requested tenant, resolve the tenant's vendor capability, dispatch the
// vendor operation, translate returned resources, hand raw payloads to the
// best-effort downstream publisher, and assemble a partial-success response.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"medgate/internal/ehr"
	gatewaymetrics "medgate/internal/gateway/metrics"
	"medgate/internal/publish"
	tenantmodels "medgate/internal/tenant/models"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// TenantLookup resolves a mnemonic to its tenant configuration record.
type TenantLookup interface {
	GetByMnemonic(ctx context.Context, mnemonic string) (*tenantmodels.Tenant, error)
}

// VendorResolver binds a tenant to its vendor capability.
type VendorResolver interface {
	ForTenant(tenant *tenantmodels.Tenant) (ehr.Service, error)
}

// Publisher is the best-effort downstream sink. Failures are swallowed and
// logged by the orchestrator, never surfaced to callers.
type Publisher interface {
	Publish(ctx context.Context, messages []publish.QueueMessage) error
}

// Authorization is the per-request authorization context supplied by the
// transport layer. Authorized is nil for machine-to-machine callers carrying
// no tenant claim.
type Authorization struct {
	Requested  string
	Authorized *string
}

// Service orchestrates the gateway's public operations.
type Service struct {
	tenants   TenantLookup
	vendors   VendorResolver
	publisher Publisher
	logger    *slog.Logger
	metrics   *gatewaymetrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *gatewaymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func New(tenants TenantLookup, vendors VendorResolver, opts ...Option) *Service {
	s := &Service{
		tenants: tenants,
		vendors: vendors,
		tracer:  otel.Tracer("medgate/gateway"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

func (s *Service) incrementRequest(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementRequest(operation, outcome)
	}
}
