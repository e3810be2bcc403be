// Package models defines the vendor-native representations of clinical
// resources as returned by EHR backends. Instances are constructed per
// request from vendor responses and are never persisted or mutated.
package models

import "encoding/json"

// ResourceType labels a clinical resource family.
type ResourceType string

const (
	ResourcePatient      ResourceType = "Patient"
	ResourceAppointment  ResourceType = "Appointment"
	ResourceCondition    ResourceType = "Condition"
	ResourcePractitioner ResourceType = "Practitioner"
)

// Identifier is a secondary identifier attached to a resource,
// a system/value pair copied verbatim from the vendor payload.
type Identifier struct {
	System string `json:"system"`
	Value  string `json:"value"`
}

// Coding is a single code from a terminology system.
type Coding struct {
	System  *string `json:"system,omitempty"`
	Code    *string `json:"code,omitempty"`
	Display *string `json:"display,omitempty"`
}

// CodeableConcept is a set of codings plus optional free text.
type CodeableConcept struct {
	Codings []Coding `json:"codings,omitempty"`
	Text    *string  `json:"text,omitempty"`
}

// Quantity is a measured amount with optional comparator and unit coding.
type Quantity struct {
	Value      *float64 `json:"value,omitempty"`
	Comparator *string  `json:"comparator,omitempty"`
	Unit       *string  `json:"unit,omitempty"`
	System     *string  `json:"system,omitempty"`
	Code       *string  `json:"code,omitempty"`
}

// Age is a quantity measured in units of time since birth.
type Age struct {
	Quantity
}

// Period is a time range bounded by optional start and end instants.
// Values are opaque date-time strings in the vendor's normalized format.
type Period struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// Range is a numeric interval with optional low and high bounds.
type Range struct {
	Low  *Quantity `json:"low,omitempty"`
	High *Quantity `json:"high,omitempty"`
}

// Reference points at another resource. ID is the vendor-local identifier
// of the target when the vendor resolved it, nil otherwise; Display is the
// human-readable label and survives even when the target is unresolvable.
type Reference struct {
	ID      *string `json:"id,omitempty"`
	Type    *string `json:"type,omitempty"`
	Display *string `json:"display,omitempty"`
}

// Annotation is a note attached to a resource, authored by a reference
// or a plain string depending on what the vendor recorded.
type Annotation struct {
	Author AnnotationAuthor `json:"-"`
	Time   *string          `json:"time,omitempty"`
	Text   string           `json:"text"`
}

// HumanName is a structured person name.
type HumanName struct {
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
	Suffix []string `json:"suffix,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Patient is the vendor-native patient record.
type Patient struct {
	ID          string       `json:"id"`
	Identifiers []Identifier `json:"identifiers,omitempty"`
	Names       []HumanName  `json:"names,omitempty"`
	BirthDate   *string      `json:"birthDate,omitempty"`
	Gender      *string      `json:"gender,omitempty"`

	// Raw is the untranslated vendor payload, carried through so the
	// downstream indexing queue receives the vendor's native shape.
	Raw json.RawMessage `json:"-"`
}

// AppointmentParticipant is one actor involved in an appointment.
type AppointmentParticipant struct {
	Actor    Reference `json:"actor"`
	Required *string   `json:"required,omitempty"`
	Status   string    `json:"status"`
}

// Appointment is the vendor-native appointment record.
type Appointment struct {
	ID           string                   `json:"id"`
	Identifiers  []Identifier             `json:"identifiers,omitempty"`
	Status       string                   `json:"status"`
	ServiceType  []CodeableConcept        `json:"serviceType,omitempty"`
	Start        *string                  `json:"start,omitempty"`
	End          *string                  `json:"end,omitempty"`
	Participants []AppointmentParticipant `json:"participants,omitempty"`
	Comment      *string                  `json:"comment,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Condition is the vendor-native condition/problem record. Onset and
// Abatement are variant fields holding exactly one of several shapes.
type Condition struct {
	ID             string            `json:"id"`
	Identifiers    []Identifier      `json:"identifiers,omitempty"`
	ClinicalStatus *CodeableConcept  `json:"clinicalStatus,omitempty"`
	Categories     []CodeableConcept `json:"categories,omitempty"`
	Code           *CodeableConcept  `json:"code,omitempty"`
	Subject        Reference         `json:"subject"`
	Onset          Onset             `json:"-"`
	Abatement      Abatement         `json:"-"`
	RecordedDate   *string           `json:"recordedDate,omitempty"`
	Notes          []Annotation      `json:"notes,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Practitioner is the vendor-native practitioner record.
type Practitioner struct {
	ID          string       `json:"id"`
	Identifiers []Identifier `json:"identifiers,omitempty"`
	Names       []HumanName  `json:"names,omitempty"`
	Active      *bool        `json:"active,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// PatientQuery selects patients either by MRN or by name and birth date.
type PatientQuery struct {
	MRN        string
	FamilyName string
	GivenName  string
	BirthDate  string
}

// AppointmentQuery selects appointments for a patient MRN within a date range.
type AppointmentQuery struct {
	MRN   string
	Start string
	End   string
}

// ConditionQuery selects conditions for a patient, optionally by category.
type ConditionQuery struct {
	PatientID string
	Category  string
}

// PractitionerQuery selects a practitioner by vendor-local ID or by the
// vendor's provider identifier. Exactly one should be set.
type PractitionerQuery struct {
	ID         string
	ProviderID string
}

// OutboundMessage is a message to be delivered into the vendor's inbox.
type OutboundMessage struct {
	PatientID   string
	RecipientID string
	SenderID    string
	MessageType string
	Subject     string
	Body        string
}

// MessageOutcome reports the vendor's acknowledgement of a sent message.
type MessageOutcome struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OutboundNote is a clinical note to be filed against a patient encounter.
type OutboundNote struct {
	PatientID   string
	EncounterID string
	AuthorID    string
	NoteType    string
	Text        string
}

// NoteOutcome reports the vendor's acknowledgement of a filed note.
type NoteOutcome struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
