// Package models defines the externally visible resource shapes and the
// partial-success result envelope the gateway returns. Resource IDs here are
// always localized, tenant mnemonic plus the vendor-local identifier, so one
// logical resource maps to one stable public ID.
package models

// Identifier is a secondary identifier copied verbatim from the vendor.
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

// Period is a time range with optional start and end date-time strings.
type Period struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// Range is a numeric interval with optional low and high bounds.
type Range struct {
	Low  *Quantity `json:"low,omitempty"`
	High *Quantity `json:"high,omitempty"`
}

// Reference points at another public resource. ID carries the localized
// identifier of the target when it could be resolved; when it could not,
// ID is nil and the display text is still preserved.
type Reference struct {
	ID      *string `json:"id,omitempty"`
	Type    *string `json:"type,omitempty"`
	Display *string `json:"display,omitempty"`
}

// Annotation is a note with its author flattened into the two possible
// shapes. Exactly one of AuthorReference and AuthorString is set when the
// vendor recorded an author.
type Annotation struct {
	AuthorReference *Reference `json:"authorReference,omitempty"`
	AuthorString    *string    `json:"authorString,omitempty"`
	Time            *string    `json:"time,omitempty"`
	Text            string     `json:"text"`
}

// HumanName is a structured person name.
type HumanName struct {
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
	Suffix []string `json:"suffix,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Patient is the public patient resource.
type Patient struct {
	ID          string       `json:"id"`
	Identifiers []Identifier `json:"identifiers,omitempty"`
	Names       []HumanName  `json:"names,omitempty"`
	BirthDate   *string      `json:"birthDate,omitempty"`
	Gender      *string      `json:"gender,omitempty"`
}

// AppointmentParticipant is one actor involved in an appointment.
type AppointmentParticipant struct {
	Actor    Reference `json:"actor"`
	Required *string   `json:"required,omitempty"`
	Status   string    `json:"status"`
}

// Appointment is the public appointment resource.
type Appointment struct {
	ID           string                   `json:"id"`
	Identifiers  []Identifier             `json:"identifiers,omitempty"`
	Status       string                   `json:"status"`
	ServiceType  []CodeableConcept        `json:"serviceType,omitempty"`
	Start        *string                  `json:"start,omitempty"`
	End          *string                  `json:"end,omitempty"`
	Participants []AppointmentParticipant `json:"participants,omitempty"`
	Comment      *string                  `json:"comment,omitempty"`
}

// Condition is the public condition resource. The onset and abatement
// variants are flattened into mutually exclusive pointer fields; at most
// one Onset* and one Abatement* field is non-nil per instance.
type Condition struct {
	ID             string            `json:"id"`
	Identifiers    []Identifier      `json:"identifiers,omitempty"`
	ClinicalStatus *CodeableConcept  `json:"clinicalStatus,omitempty"`
	Categories     []CodeableConcept `json:"categories,omitempty"`
	Code           *CodeableConcept  `json:"code,omitempty"`
	Subject        Reference         `json:"subject"`
	RecordedDate   *string           `json:"recordedDate,omitempty"`
	Notes          []Annotation      `json:"notes,omitempty"`

	OnsetDateTime *string `json:"onsetDateTime,omitempty"`
	OnsetAge      *Age    `json:"onsetAge,omitempty"`
	OnsetPeriod   *Period `json:"onsetPeriod,omitempty"`
	OnsetRange    *Range  `json:"onsetRange,omitempty"`
	OnsetString   *string `json:"onsetString,omitempty"`

	AbatementDateTime *string `json:"abatementDateTime,omitempty"`
	AbatementAge      *Age    `json:"abatementAge,omitempty"`
	AbatementPeriod   *Period `json:"abatementPeriod,omitempty"`
	AbatementRange    *Range  `json:"abatementRange,omitempty"`
	AbatementString   *string `json:"abatementString,omitempty"`
}

// Practitioner is the public practitioner resource.
type Practitioner struct {
	ID          string       `json:"id"`
	Identifiers []Identifier `json:"identifiers,omitempty"`
	Names       []HumanName  `json:"names,omitempty"`
	Active      *bool        `json:"active,omitempty"`
}

// OutboundMessage is a caller-supplied message bound for the tenant's
// backend inbox. Patient and recipient IDs arrive localized.
type OutboundMessage struct {
	PatientID   string `json:"patientId"`
	RecipientID string `json:"recipientId"`
	SenderID    string `json:"senderId,omitempty"`
	MessageType string `json:"messageType,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Body        string `json:"body"`
}

// MessageOutcome is the backend's acknowledgement of a sent message.
type MessageOutcome struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OutboundNote is a caller-supplied clinical note to file against a patient
// encounter. The patient ID arrives localized.
type OutboundNote struct {
	PatientID   string `json:"patientId"`
	EncounterID string `json:"encounterId,omitempty"`
	AuthorID    string `json:"authorId,omitempty"`
	NoteType    string `json:"noteType,omitempty"`
	Text        string `json:"text"`
}

// NoteOutcome is the backend's acknowledgement of a filed note.
type NoteOutcome struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ResultError is one collected failure attached to a response.
type ResultError struct {
	Message string `json:"message"`
}

// Result is the partial-success envelope for query operations. Errors are
// additive context; non-empty Errors does not imply empty Data and callers
// must not assume mutual exclusivity.
type Result[T any] struct {
	Data   []T           `json:"data"`
	Errors []ResultError `json:"errors"`
}

// OK returns a Result carrying data and no errors.
func OK[T any](data []T) Result[T] {
	if data == nil {
		data = []T{}
	}
	return Result[T]{Data: data, Errors: []ResultError{}}
}

// Failed returns a Result with empty data and one collected error.
func Failed[T any](err error) Result[T] {
	return Result[T]{Data: []T{}, Errors: []ResultError{{Message: err.Error()}}}
}
