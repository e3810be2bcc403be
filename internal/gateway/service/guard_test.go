package service

import (
	"context"

	"go.uber.org/mock/gomock"

	domainerrors "medgate/pkg/domain-errors"
	"medgate/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestAuthorizeRequiresClaim() {
	_, err := s.service.authorize(context.Background(), Authorization{Requested: "epic"}, true)
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeUnauthorized))
	s.Equal("no Tenant authorized for request", err.Error())
}

func (s *ServiceSuite) TestAuthorizeMismatchRejected() {
	auth := Authorization{Requested: "fake", Authorized: strp("epic")}

	_, err := s.service.authorize(context.Background(), auth, true)
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeForbidden))
	s.Contains(err.Error(), "does not match authorized Tenant 'epic'")
}

func (s *ServiceSuite) TestAuthorizeMismatchRejectedEvenWhenAuthOptional() {
	// A present but mismatched claim loses even on operations that allow
	// anonymous machine-to-machine access.
	auth := Authorization{Requested: "fake", Authorized: strp("epic")}

	_, err := s.service.authorize(context.Background(), auth, false)
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeForbidden))
}

func (s *ServiceSuite) TestAuthorizeUnknownTenant() {
	s.mockTenants.EXPECT().GetByMnemonic(gomock.Any(), "ghost").Return(nil, sentinel.ErrNotFound)

	auth := Authorization{Requested: "ghost", Authorized: strp("ghost")}
	_, err := s.service.authorize(context.Background(), auth, true)
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeNotFound))
	s.Equal("invalid Tenant", err.Error())
}

func (s *ServiceSuite) TestAuthorizeMatchedClaimResolves() {
	tenant := s.epicTenant()
	s.mockTenants.EXPECT().GetByMnemonic(gomock.Any(), "epic").Return(tenant, nil)

	got, err := s.service.authorize(context.Background(), Authorization{Requested: "epic", Authorized: strp("epic")}, true)
	s.Require().NoError(err)
	s.Equal(tenant, got)
}

func (s *ServiceSuite) TestAuthorizeUnscopedCallerAllowedWhenOptional() {
	tenant := s.epicTenant()
	s.mockTenants.EXPECT().GetByMnemonic(gomock.Any(), "epic").Return(tenant, nil)

	got, err := s.service.authorize(context.Background(), Authorization{Requested: "epic"}, false)
	s.Require().NoError(err)
	s.Equal(tenant, got)
}
