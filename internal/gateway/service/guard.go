package service

import (
	"context"
	"errors"
	"fmt"

	tenantmodels "medgate/internal/tenant/models"
	domainerrors "medgate/pkg/domain-errors"
	"medgate/pkg/platform/sentinel"
)

// authorize validates the caller's authorization context against the
// requested tenant and resolves the tenant record. requireAuth encodes the
// per-operation policy: most operations demand a tenant claim, practitioner
// lookups allow trusted machine-to-machine callers without one. A present
// but mismatched claim is rejected regardless of requireAuth.
func (s *Service) authorize(ctx context.Context, auth Authorization, requireAuth bool) (*tenantmodels.Tenant, error) {
	if requireAuth && auth.Authorized == nil {
		return nil, domainerrors.New(domainerrors.CodeUnauthorized, "no Tenant authorized for request")
	}

	if auth.Authorized != nil && *auth.Authorized != auth.Requested {
		return nil, domainerrors.New(domainerrors.CodeForbidden,
			fmt.Sprintf("requested Tenant '%s' does not match authorized Tenant '%s'", auth.Requested, *auth.Authorized))
	}

	tenant, err := s.tenants.GetByMnemonic(ctx, auth.Requested)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, domainerrors.New(domainerrors.CodeNotFound, "invalid Tenant")
		}
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to resolve Tenant")
	}
	return tenant, nil
}
