package cerner

import (
	"encoding/json"
	"fmt"

	"medgate/internal/ehr"
	"medgate/internal/ehr/models"
)

// Wire shapes for the proprietary Cerner API. Names come flat, identifiers
// are typed pairs, and variant fields arrive as a discriminated object with
// a "kind" tag instead of FHIR choice keys.

type wireIdentifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type wireVariant struct {
	Kind     string   `json:"kind"`
	DateTime *string  `json:"date_time"`
	Text     *string  `json:"text"`
	Value    *float64 `json:"value"`
	Unit     *string  `json:"unit"`
	Start    *string  `json:"start"`
	End      *string  `json:"end"`
	Low      *float64 `json:"low"`
	High     *float64 `json:"high"`
}

func convertIdentifiers(in []wireIdentifier) []models.Identifier {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Identifier, len(in))
	for i, id := range in {
		out[i] = models.Identifier{System: id.Type, Value: id.Value}
	}
	return out
}

func convertName(first, last string) []models.HumanName {
	if first == "" && last == "" {
		return nil
	}
	var given []string
	if first != "" {
		given = []string{first}
	}
	return []models.HumanName{{Family: last, Given: given}}
}

type patientRecord struct {
	PatientID   string           `json:"patient_id"`
	Identifiers []wireIdentifier `json:"identifiers"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	DOB         *string          `json:"dob"`
	Sex         *string          `json:"sex"`
}

func (r patientRecord) toModel(raw json.RawMessage) models.Patient {
	return models.Patient{
		ID:          r.PatientID,
		Identifiers: convertIdentifiers(r.Identifiers),
		Names:       convertName(r.FirstName, r.LastName),
		BirthDate:   r.DOB,
		Gender:      r.Sex,
		Raw:         raw,
	}
}

type appointmentRecord struct {
	AppointmentID string           `json:"appointment_id"`
	Identifiers   []wireIdentifier `json:"identifiers"`
	State         string           `json:"state"`
	Reason        *string          `json:"reason"`
	Begins        *string          `json:"begins"`
	Ends          *string          `json:"ends"`
	ProviderID    *string          `json:"provider_id"`
	ProviderName  *string          `json:"provider_name"`
	Comment       *string          `json:"comment"`
}

func (r appointmentRecord) toModel(raw json.RawMessage) models.Appointment {
	appt := models.Appointment{
		ID:          r.AppointmentID,
		Identifiers: convertIdentifiers(r.Identifiers),
		Status:      r.State,
		Start:       r.Begins,
		End:         r.Ends,
		Comment:     r.Comment,
		Raw:         raw,
	}
	if r.Reason != nil {
		appt.ServiceType = []models.CodeableConcept{{Text: r.Reason}}
	}
	if r.ProviderID != nil || r.ProviderName != nil {
		practitionerType := "Practitioner"
		appt.Participants = []models.AppointmentParticipant{{
			Actor: models.Reference{
				ID:      r.ProviderID,
				Type:    &practitionerType,
				Display: r.ProviderName,
			},
			Status: "accepted",
		}}
	}
	return appt
}

type problemRecord struct {
	ProblemID   string           `json:"problem_id"`
	Identifiers []wireIdentifier `json:"identifiers"`
	Status      *string          `json:"status"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	PatientID   string           `json:"patient_id"`
	Recorded    *string          `json:"recorded"`
	Onset       *wireVariant     `json:"onset"`
	Abatement   *wireVariant     `json:"abatement"`
	Notes       []struct {
		Author *string `json:"author"`
		When   *string `json:"when"`
		Text   string  `json:"text"`
	} `json:"notes"`
}

func (r problemRecord) toModel(raw json.RawMessage) (models.Condition, error) {
	patientType := "Patient"
	cond := models.Condition{
		ID:           r.ProblemID,
		Identifiers:  convertIdentifiers(r.Identifiers),
		Subject:      models.Reference{ID: &r.PatientID, Type: &patientType},
		RecordedDate: r.Recorded,
		Raw:          raw,
	}
	if r.Status != nil {
		cond.ClinicalStatus = &models.CodeableConcept{Text: r.Status}
	}
	if r.Category != nil {
		cond.Categories = []models.CodeableConcept{{Text: r.Category}}
	}
	if r.Description != nil {
		cond.Code = &models.CodeableConcept{Text: r.Description}
	}

	onset, err := convertVariant(r.Onset, "onset")
	if err != nil {
		return models.Condition{}, err
	}
	if onset != nil {
		cond.Onset = onset.(models.Onset)
	}
	abatement, err := convertVariant(r.Abatement, "abatement")
	if err != nil {
		return models.Condition{}, err
	}
	if abatement != nil {
		cond.Abatement = toAbatement(abatement)
	}

	for _, n := range r.Notes {
		note := models.Annotation{Time: n.When, Text: n.Text}
		if n.Author != nil {
			note.Author = models.AuthorString{Value: *n.Author}
		}
		cond.Notes = append(cond.Notes, note)
	}
	return cond, nil
}

// convertVariant folds a tagged wire object into the onset shape family.
// Returned values are converted to the abatement family at the call site
// since both families share the same structural shapes.
func convertVariant(in *wireVariant, field string) (any, error) {
	if in == nil {
		return nil, nil
	}
	switch in.Kind {
	case "date_time":
		if in.DateTime == nil {
			return nil, badVariant(field, in.Kind)
		}
		return models.OnsetDateTime{Value: *in.DateTime}, nil
	case "age":
		return models.OnsetAge{Value: models.Age{Quantity: models.Quantity{Value: in.Value, Unit: in.Unit}}}, nil
	case "period":
		return models.OnsetPeriod{Value: models.Period{Start: in.Start, End: in.End}}, nil
	case "range":
		rng := models.Range{}
		if in.Low != nil {
			rng.Low = &models.Quantity{Value: in.Low, Unit: in.Unit}
		}
		if in.High != nil {
			rng.High = &models.Quantity{Value: in.High, Unit: in.Unit}
		}
		return models.OnsetRange{Value: rng}, nil
	case "text":
		if in.Text == nil {
			return nil, badVariant(field, in.Kind)
		}
		return models.OnsetString{Value: *in.Text}, nil
	default:
		return nil, ehr.NewError(ehr.ErrorBadData, vendorName,
			fmt.Sprintf("unrecognized %s kind %q", field, in.Kind), nil)
	}
}

func toAbatement(v any) models.Abatement {
	switch s := v.(type) {
	case models.OnsetDateTime:
		return models.AbatementDateTime{Value: s.Value}
	case models.OnsetAge:
		return models.AbatementAge{Value: s.Value}
	case models.OnsetPeriod:
		return models.AbatementPeriod{Value: s.Value}
	case models.OnsetRange:
		return models.AbatementRange{Value: s.Value}
	case models.OnsetString:
		return models.AbatementString{Value: s.Value}
	}
	return nil
}

func badVariant(field, kind string) error {
	return ehr.NewError(ehr.ErrorBadData, vendorName,
		fmt.Sprintf("%s variant %q missing its value", field, kind), nil)
}

type providerRecord struct {
	ProviderID  string           `json:"provider_id"`
	Identifiers []wireIdentifier `json:"identifiers"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Active      *bool            `json:"active"`
}

func (r providerRecord) toModel(raw json.RawMessage) models.Practitioner {
	return models.Practitioner{
		ID:          r.ProviderID,
		Identifiers: convertIdentifiers(r.Identifiers),
		Names:       convertName(r.FirstName, r.LastName),
		Active:      r.Active,
		Raw:         raw,
	}
}
