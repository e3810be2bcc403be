package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	vendormodels "medgate/internal/ehr/models"
	gwmodels "medgate/internal/gateway/models"
	"medgate/internal/gateway/translate"
)

// Mutations have no meaningful partial outcome, so a guard failure fails the
// whole call instead of becoming a collected error. A vendor failure still
// comes back collected so callers always receive a well-formed response once
// they are authorized.

// SendMessage delivers a message into the tenant's backend inbox. Patient
// and recipient IDs are localized and are translated back before dispatch.
func (s *Service) SendMessage(ctx context.Context, auth Authorization, msg gwmodels.OutboundMessage) (gwmodels.Result[gwmodels.MessageOutcome], error) {
	tenant, err := s.authorize(ctx, auth, true)
	if err != nil {
		s.incrementRequest(opSendMessage, outcome(err))
		return gwmodels.Result[gwmodels.MessageOutcome]{}, err
	}

	svc, err := s.vendors.ForTenant(tenant)
	if err != nil {
		s.logger.Error("vendor capability resolution failed",
			"operation", opSendMessage, "tenant", tenant.Mnemonic, "error", err)
		s.incrementRequest(opSendMessage, outcome(err))
		return gwmodels.Failed[gwmodels.MessageOutcome](err), nil
	}

	patientID, err := translate.Delocalize(msg.PatientID, tenant.Mnemonic)
	if err != nil {
		s.incrementRequest(opSendMessage, outcome(err))
		return gwmodels.Failed[gwmodels.MessageOutcome](err), nil
	}
	recipientID, err := translate.Delocalize(msg.RecipientID, tenant.Mnemonic)
	if err != nil {
		s.incrementRequest(opSendMessage, outcome(err))
		return gwmodels.Failed[gwmodels.MessageOutcome](err), nil
	}

	dispatchCtx, span := s.tracer.Start(ctx, opSendMessage, trace.WithAttributes(
		attribute.String("tenant", tenant.Mnemonic),
		attribute.String("vendor", string(tenant.Vendor)),
	))
	start := time.Now()
	ack, err := svc.SendMessage(dispatchCtx, vendormodels.OutboundMessage{
		PatientID:   patientID,
		RecipientID: recipientID,
		SenderID:    msg.SenderID,
		MessageType: msg.MessageType,
		Subject:     msg.Subject,
		Body:        msg.Body,
	})
	span.End()
	if s.metrics != nil {
		s.metrics.ObserveVendorDispatch(opSendMessage, string(tenant.Vendor), start)
	}
	if err != nil {
		s.logger.Warn("vendor dispatch failed",
			"operation", opSendMessage, "tenant", tenant.Mnemonic, "vendor", tenant.Vendor, "error", err)
		s.incrementRequest(opSendMessage, outcome(err))
		return gwmodels.Failed[gwmodels.MessageOutcome](err), nil
	}

	s.incrementRequest(opSendMessage, "success")
	return gwmodels.OK([]gwmodels.MessageOutcome{{ID: ack.ID, Status: ack.Status}}), nil
}

// SendNote files a clinical note against a patient encounter in the
// tenant's backend.
func (s *Service) SendNote(ctx context.Context, auth Authorization, note gwmodels.OutboundNote) (gwmodels.Result[gwmodels.NoteOutcome], error) {
	tenant, err := s.authorize(ctx, auth, true)
	if err != nil {
		s.incrementRequest(opSendNote, outcome(err))
		return gwmodels.Result[gwmodels.NoteOutcome]{}, err
	}

	svc, err := s.vendors.ForTenant(tenant)
	if err != nil {
		s.logger.Error("vendor capability resolution failed",
			"operation", opSendNote, "tenant", tenant.Mnemonic, "error", err)
		s.incrementRequest(opSendNote, outcome(err))
		return gwmodels.Failed[gwmodels.NoteOutcome](err), nil
	}

	patientID, err := translate.Delocalize(note.PatientID, tenant.Mnemonic)
	if err != nil {
		s.incrementRequest(opSendNote, outcome(err))
		return gwmodels.Failed[gwmodels.NoteOutcome](err), nil
	}

	dispatchCtx, span := s.tracer.Start(ctx, opSendNote, trace.WithAttributes(
		attribute.String("tenant", tenant.Mnemonic),
		attribute.String("vendor", string(tenant.Vendor)),
	))
	start := time.Now()
	ack, err := svc.SendNote(dispatchCtx, vendormodels.OutboundNote{
		PatientID:   patientID,
		EncounterID: note.EncounterID,
		AuthorID:    note.AuthorID,
		NoteType:    note.NoteType,
		Text:        note.Text,
	})
	span.End()
	if s.metrics != nil {
		s.metrics.ObserveVendorDispatch(opSendNote, string(tenant.Vendor), start)
	}
	if err != nil {
		s.logger.Warn("vendor dispatch failed",
			"operation", opSendNote, "tenant", tenant.Mnemonic, "vendor", tenant.Vendor, "error", err)
		s.incrementRequest(opSendNote, outcome(err))
		return gwmodels.Failed[gwmodels.NoteOutcome](err), nil
	}

	s.incrementRequest(opSendNote, "success")
	return gwmodels.OK([]gwmodels.NoteOutcome{{ID: ack.ID, Status: ack.Status}}), nil
}
