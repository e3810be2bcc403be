package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"medgate/internal/ehr"
	vendormodels "medgate/internal/ehr/models"
	gwmodels "medgate/internal/gateway/models"
	"medgate/internal/gateway/translate"
	"medgate/internal/publish"
	domainerrors "medgate/pkg/domain-errors"
)

const (
	opFindPatients     = "find_patients"
	opFindAppointments = "find_appointments"
	opFindConditions   = "find_conditions"
	opGetPractitioner  = "get_practitioner"
	opSendMessage      = "send_message"
	opSendNote         = "send_note"
)

const translateConcurrency = 8

// queryPlan captures the per-operation pieces of the shared query pipeline.
type queryPlan[V any, P any] struct {
	operation    string
	resourceType vendormodels.ResourceType
	dispatch     func(ctx context.Context, svc ehr.Service) ([]V, error)
	translate    func(src V, mnemonic string) (P, error)
	raw          func(src V) json.RawMessage
}

// runQuery is the orchestrator state machine for query operations. Guard and
// vendor failures become one collected error with empty data; per-resource
// translation failures drop only that resource; publish failures never reach
// the caller.
func runQuery[V any, P any](ctx context.Context, s *Service, auth Authorization, requireAuth bool, plan queryPlan[V, P]) gwmodels.Result[P] {
	tenant, err := s.authorize(ctx, auth, requireAuth)
	if err != nil {
		s.incrementRequest(plan.operation, outcome(err))
		return gwmodels.Failed[P](err)
	}

	svc, err := s.vendors.ForTenant(tenant)
	if err != nil {
		s.logger.Error("vendor capability resolution failed",
			"operation", plan.operation, "tenant", tenant.Mnemonic, "error", err)
		s.incrementRequest(plan.operation, outcome(err))
		return gwmodels.Failed[P](err)
	}

	dispatchCtx, span := s.tracer.Start(ctx, plan.operation, trace.WithAttributes(
		attribute.String("tenant", tenant.Mnemonic),
		attribute.String("vendor", string(tenant.Vendor)),
	))
	start := time.Now()
	resources, err := plan.dispatch(dispatchCtx, svc)
	span.End()
	if s.metrics != nil {
		s.metrics.ObserveVendorDispatch(plan.operation, string(tenant.Vendor), start)
	}
	if err != nil {
		s.logger.Warn("vendor dispatch failed",
			"operation", plan.operation, "tenant", tenant.Mnemonic, "vendor", tenant.Vendor, "error", err)
		s.incrementRequest(plan.operation, outcome(err))
		return gwmodels.Failed[P](err)
	}

	translated, raws := translateAll(ctx, s, tenant.Mnemonic, plan, resources)
	s.publishRaw(ctx, tenant.Mnemonic, plan.resourceType, raws)

	s.incrementRequest(plan.operation, "success")
	return gwmodels.OK(translated)
}

// translateAll maps vendor resources independently and in parallel while
// keeping the response in vendor order. A failed translation drops only its
// own resource; the raw payloads returned are those of resources that
// translated successfully.
func translateAll[V any, P any](ctx context.Context, s *Service, mnemonic string, plan queryPlan[V, P], resources []V) ([]P, []json.RawMessage) {
	type slot struct {
		value P
		ok    bool
	}
	slots := make([]slot, len(resources))

	g := new(errgroup.Group)
	g.SetLimit(translateConcurrency)
	for i := range resources {
		g.Go(func() error {
			p, err := plan.translate(resources[i], mnemonic)
			if err != nil {
				s.logger.Error("resource translation failed",
					"operation", plan.operation, "tenant", mnemonic,
					"resource_type", plan.resourceType, "error", err)
				if s.metrics != nil {
					s.metrics.IncrementTranslationDrop(string(plan.resourceType))
				}
				return nil
			}
			slots[i] = slot{value: p, ok: true}
			return nil
		})
	}
	_ = g.Wait()

	translated := make([]P, 0, len(resources))
	raws := make([]json.RawMessage, 0, len(resources))
	for i, sl := range slots {
		if !sl.ok {
			continue
		}
		translated = append(translated, sl.value)
		raws = append(raws, plan.raw(resources[i]))
	}
	return translated, raws
}

// publishRaw hands raw vendor payloads to the downstream sink. The sink is
// advisory; any failure is logged and counted, never surfaced.
func (s *Service) publishRaw(ctx context.Context, mnemonic string, resourceType vendormodels.ResourceType, raws []json.RawMessage) {
	if s.publisher == nil || len(raws) == 0 {
		return
	}

	messages := make([]publish.QueueMessage, len(raws))
	for i, raw := range raws {
		messages[i] = publish.QueueMessage{ResourceType: resourceType, Tenant: mnemonic, Payload: raw}
	}

	if err := s.publisher.Publish(ctx, messages); err != nil {
		s.logger.Warn("downstream publish failed",
			"tenant", mnemonic, "resource_type", resourceType, "count", len(messages), "error", err)
		if s.metrics != nil {
			s.metrics.IncrementPublishFailure()
		}
	}
}

func outcome(err error) string {
	var de *domainerrors.Error
	if errors.As(err, &de) {
		return string(de.Code)
	}
	return string(domainerrors.CodeVendorFailure)
}

// FindPatients searches the tenant's backend by MRN or by name and birth
// date.
func (s *Service) FindPatients(ctx context.Context, auth Authorization, q vendormodels.PatientQuery) gwmodels.Result[gwmodels.Patient] {
	return runQuery(ctx, s, auth, true, queryPlan[vendormodels.Patient, gwmodels.Patient]{
		operation:    opFindPatients,
		resourceType: vendormodels.ResourcePatient,
		dispatch: func(ctx context.Context, svc ehr.Service) ([]vendormodels.Patient, error) {
			return svc.FindPatients(ctx, q)
		},
		translate: translate.Patient,
		raw:       func(p vendormodels.Patient) json.RawMessage { return p.Raw },
	})
}

// FindAppointments searches the tenant's backend for a patient's
// appointments within a date range.
func (s *Service) FindAppointments(ctx context.Context, auth Authorization, q vendormodels.AppointmentQuery) gwmodels.Result[gwmodels.Appointment] {
	return runQuery(ctx, s, auth, true, queryPlan[vendormodels.Appointment, gwmodels.Appointment]{
		operation:    opFindAppointments,
		resourceType: vendormodels.ResourceAppointment,
		dispatch: func(ctx context.Context, svc ehr.Service) ([]vendormodels.Appointment, error) {
			return svc.FindAppointments(ctx, q)
		},
		translate: translate.Appointment,
		raw:       func(a vendormodels.Appointment) json.RawMessage { return a.Raw },
	})
}

// FindConditions searches the tenant's backend for a patient's conditions,
// optionally filtered by category. The patient ID argument is localized and
// is translated back to the vendor-local form before dispatch.
func (s *Service) FindConditions(ctx context.Context, auth Authorization, patientID, category string) gwmodels.Result[gwmodels.Condition] {
	return runQuery(ctx, s, auth, true, queryPlan[vendormodels.Condition, gwmodels.Condition]{
		operation:    opFindConditions,
		resourceType: vendormodels.ResourceCondition,
		dispatch: func(ctx context.Context, svc ehr.Service) ([]vendormodels.Condition, error) {
			vendorPatientID, err := translate.Delocalize(patientID, auth.Requested)
			if err != nil {
				return nil, err
			}
			return svc.FindConditions(ctx, vendormodels.ConditionQuery{PatientID: vendorPatientID, Category: category})
		},
		translate: translate.Condition,
		raw:       func(c vendormodels.Condition) json.RawMessage { return c.Raw },
	})
}

// GetPractitioner resolves a practitioner either by localized ID or by the
// vendor's provider identifier. Trusted machine-to-machine callers may call
// it without a tenant claim, so the guard runs without requiring one.
func (s *Service) GetPractitioner(ctx context.Context, auth Authorization, localizedID, providerID string) gwmodels.Result[gwmodels.Practitioner] {
	return runQuery(ctx, s, auth, false, queryPlan[vendormodels.Practitioner, gwmodels.Practitioner]{
		operation:    opGetPractitioner,
		resourceType: vendormodels.ResourcePractitioner,
		dispatch: func(ctx context.Context, svc ehr.Service) ([]vendormodels.Practitioner, error) {
			q := vendormodels.PractitionerQuery{ProviderID: providerID}
			if localizedID != "" {
				vendorLocalID, err := translate.Delocalize(localizedID, auth.Requested)
				if err != nil {
					return nil, err
				}
				q = vendormodels.PractitionerQuery{ID: vendorLocalID}
			}
			practitioner, err := svc.FindPractitioner(ctx, q)
			if err != nil {
				return nil, err
			}
			if practitioner == nil {
				return nil, nil
			}
			return []vendormodels.Practitioner{*practitioner}, nil
		},
		translate: translate.Practitioner,
		raw:       func(p vendormodels.Practitioner) json.RawMessage { return p.Raw },
	})
}
