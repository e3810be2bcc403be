package epic

import (
	"encoding/json"

	"medgate/internal/ehr/models"
)

// Wire shapes for the FHIR R4 resources the gateway consumes. Choice fields
// (onset[x], abatement[x], author[x]) arrive as mutually exclusive JSON keys
// and are folded into the closed variant types during conversion.

type wireIdentifier struct {
	System string `json:"system"`
	Value  string `json:"value"`
}

type wireCoding struct {
	System  *string `json:"system"`
	Code    *string `json:"code"`
	Display *string `json:"display"`
}

type wireCodeableConcept struct {
	Coding []wireCoding `json:"coding"`
	Text   *string      `json:"text"`
}

type wireQuantity struct {
	Value      *float64 `json:"value"`
	Comparator *string  `json:"comparator"`
	Unit       *string  `json:"unit"`
	System     *string  `json:"system"`
	Code       *string  `json:"code"`
}

type wirePeriod struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type wireRange struct {
	Low  *wireQuantity `json:"low"`
	High *wireQuantity `json:"high"`
}

type wireReference struct {
	Reference *string `json:"reference"`
	Type      *string `json:"type"`
	Display   *string `json:"display"`
}

type wireHumanName struct {
	Family string   `json:"family"`
	Given  []string `json:"given"`
	Prefix []string `json:"prefix"`
	Suffix []string `json:"suffix"`
	Text   string   `json:"text"`
}

func convertIdentifiers(in []wireIdentifier) []models.Identifier {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Identifier, len(in))
	for i, id := range in {
		out[i] = models.Identifier{System: id.System, Value: id.Value}
	}
	return out
}

func convertConcept(in *wireCodeableConcept) *models.CodeableConcept {
	if in == nil {
		return nil
	}
	concept := models.CodeableConcept{Text: in.Text}
	for _, c := range in.Coding {
		concept.Codings = append(concept.Codings, models.Coding{System: c.System, Code: c.Code, Display: c.Display})
	}
	return &concept
}

func convertConcepts(in []wireCodeableConcept) []models.CodeableConcept {
	out := make([]models.CodeableConcept, 0, len(in))
	for i := range in {
		out = append(out, *convertConcept(&in[i]))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func convertQuantity(in *wireQuantity) *models.Quantity {
	if in == nil {
		return nil
	}
	return &models.Quantity{
		Value:      in.Value,
		Comparator: in.Comparator,
		Unit:       in.Unit,
		System:     in.System,
		Code:       in.Code,
	}
}

func convertPeriod(in wirePeriod) models.Period {
	return models.Period{Start: in.Start, End: in.End}
}

func convertRange(in wireRange) models.Range {
	return models.Range{Low: convertQuantity(in.Low), High: convertQuantity(in.High)}
}

// convertReference splits a FHIR "Type/id" reference literal into our model.
// Unresolvable references keep their display text with a nil ID.
func convertReference(in wireReference) models.Reference {
	ref := models.Reference{Type: in.Type, Display: in.Display}
	if in.Reference != nil {
		refType, id := splitReference(*in.Reference)
		if id != "" {
			ref.ID = &id
		}
		if ref.Type == nil && refType != "" {
			ref.Type = &refType
		}
	}
	return ref
}

func splitReference(literal string) (refType, id string) {
	for i := len(literal) - 1; i >= 0; i-- {
		if literal[i] == '/' {
			return literal[:i], literal[i+1:]
		}
	}
	return "", literal
}

func convertNames(in []wireHumanName) []models.HumanName {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.HumanName, len(in))
	for i, n := range in {
		out[i] = models.HumanName{Family: n.Family, Given: n.Given, Prefix: n.Prefix, Suffix: n.Suffix, Text: n.Text}
	}
	return out
}

type patientResource struct {
	ID         string           `json:"id"`
	Identifier []wireIdentifier `json:"identifier"`
	Name       []wireHumanName  `json:"name"`
	BirthDate  *string          `json:"birthDate"`
	Gender     *string          `json:"gender"`
}

func (r patientResource) toModel(raw json.RawMessage) models.Patient {
	return models.Patient{
		ID:          r.ID,
		Identifiers: convertIdentifiers(r.Identifier),
		Names:       convertNames(r.Name),
		BirthDate:   r.BirthDate,
		Gender:      r.Gender,
		Raw:         raw,
	}
}

type appointmentResource struct {
	ID          string                `json:"id"`
	Identifier  []wireIdentifier      `json:"identifier"`
	Status      string                `json:"status"`
	ServiceType []wireCodeableConcept `json:"serviceType"`
	Start       *string               `json:"start"`
	End         *string               `json:"end"`
	Participant []struct {
		Actor    wireReference `json:"actor"`
		Required *string       `json:"required"`
		Status   string        `json:"status"`
	} `json:"participant"`
	Comment *string `json:"comment"`
}

func (r appointmentResource) toModel(raw json.RawMessage) models.Appointment {
	appt := models.Appointment{
		ID:          r.ID,
		Identifiers: convertIdentifiers(r.Identifier),
		Status:      r.Status,
		ServiceType: convertConcepts(r.ServiceType),
		Start:       r.Start,
		End:         r.End,
		Comment:     r.Comment,
		Raw:         raw,
	}
	for _, p := range r.Participant {
		appt.Participants = append(appt.Participants, models.AppointmentParticipant{
			Actor:    convertReference(p.Actor),
			Required: p.Required,
			Status:   p.Status,
		})
	}
	return appt
}

type conditionResource struct {
	ID             string                `json:"id"`
	Identifier     []wireIdentifier      `json:"identifier"`
	ClinicalStatus *wireCodeableConcept  `json:"clinicalStatus"`
	Category       []wireCodeableConcept `json:"category"`
	Code           *wireCodeableConcept  `json:"code"`
	Subject        wireReference         `json:"subject"`
	RecordedDate   *string               `json:"recordedDate"`

	OnsetDateTime *string       `json:"onsetDateTime"`
	OnsetAge      *wireQuantity `json:"onsetAge"`
	OnsetPeriod   *wirePeriod   `json:"onsetPeriod"`
	OnsetRange    *wireRange    `json:"onsetRange"`
	OnsetString   *string       `json:"onsetString"`

	AbatementDateTime *string       `json:"abatementDateTime"`
	AbatementAge      *wireQuantity `json:"abatementAge"`
	AbatementPeriod   *wirePeriod   `json:"abatementPeriod"`
	AbatementRange    *wireRange    `json:"abatementRange"`
	AbatementString   *string       `json:"abatementString"`

	Note []struct {
		AuthorReference *wireReference `json:"authorReference"`
		AuthorString    *string        `json:"authorString"`
		Time            *string        `json:"time"`
		Text            string         `json:"text"`
	} `json:"note"`
}

func (r conditionResource) toModel(raw json.RawMessage) models.Condition {
	cond := models.Condition{
		ID:             r.ID,
		Identifiers:    convertIdentifiers(r.Identifier),
		ClinicalStatus: convertConcept(r.ClinicalStatus),
		Categories:     convertConcepts(r.Category),
		Code:           convertConcept(r.Code),
		Subject:        convertReference(r.Subject),
		RecordedDate:   r.RecordedDate,
		Onset:          r.onset(),
		Abatement:      r.abatement(),
		Raw:            raw,
	}
	for _, n := range r.Note {
		note := models.Annotation{Time: n.Time, Text: n.Text}
		switch {
		case n.AuthorReference != nil:
			note.Author = models.AuthorReference{Value: convertReference(*n.AuthorReference)}
		case n.AuthorString != nil:
			note.Author = models.AuthorString{Value: *n.AuthorString}
		}
		cond.Notes = append(cond.Notes, note)
	}
	return cond
}

func (r conditionResource) onset() models.Onset {
	switch {
	case r.OnsetDateTime != nil:
		return models.OnsetDateTime{Value: *r.OnsetDateTime}
	case r.OnsetAge != nil:
		return models.OnsetAge{Value: models.Age{Quantity: *convertQuantity(r.OnsetAge)}}
	case r.OnsetPeriod != nil:
		return models.OnsetPeriod{Value: convertPeriod(*r.OnsetPeriod)}
	case r.OnsetRange != nil:
		return models.OnsetRange{Value: convertRange(*r.OnsetRange)}
	case r.OnsetString != nil:
		return models.OnsetString{Value: *r.OnsetString}
	}
	return nil
}

func (r conditionResource) abatement() models.Abatement {
	switch {
	case r.AbatementDateTime != nil:
		return models.AbatementDateTime{Value: *r.AbatementDateTime}
	case r.AbatementAge != nil:
		return models.AbatementAge{Value: models.Age{Quantity: *convertQuantity(r.AbatementAge)}}
	case r.AbatementPeriod != nil:
		return models.AbatementPeriod{Value: convertPeriod(*r.AbatementPeriod)}
	case r.AbatementRange != nil:
		return models.AbatementRange{Value: convertRange(*r.AbatementRange)}
	case r.AbatementString != nil:
		return models.AbatementString{Value: *r.AbatementString}
	}
	return nil
}

type practitionerResource struct {
	ID         string           `json:"id"`
	Identifier []wireIdentifier `json:"identifier"`
	Name       []wireHumanName  `json:"name"`
	Active     *bool            `json:"active"`
}

func (r practitionerResource) toModel(raw json.RawMessage) models.Practitioner {
	return models.Practitioner{
		ID:          r.ID,
		Identifiers: convertIdentifiers(r.Identifier),
		Names:       convertNames(r.Name),
		Active:      r.Active,
		Raw:         raw,
	}
}
