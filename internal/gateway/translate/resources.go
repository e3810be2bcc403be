package translate

import (
	vendormodels "medgate/internal/ehr/models"
	"medgate/internal/gateway/models"
)

// Patient translates a vendor patient for the given tenant.
func Patient(src vendormodels.Patient, mnemonic string) (models.Patient, error) {
	return models.Patient{
		ID:          Localize(src.ID, mnemonic),
		Identifiers: identifiers(src.Identifiers),
		Names:       names(src.Names),
		BirthDate:   src.BirthDate,
		Gender:      src.Gender,
	}, nil
}

// Appointment translates a vendor appointment for the given tenant.
func Appointment(src vendormodels.Appointment, mnemonic string) (models.Appointment, error) {
	out := models.Appointment{
		ID:          Localize(src.ID, mnemonic),
		Identifiers: identifiers(src.Identifiers),
		Status:      src.Status,
		ServiceType: concepts(src.ServiceType),
		Start:       src.Start,
		End:         src.End,
		Comment:     src.Comment,
	}
	for _, p := range src.Participants {
		out.Participants = append(out.Participants, models.AppointmentParticipant{
			Actor:    reference(p.Actor, mnemonic),
			Required: p.Required,
			Status:   p.Status,
		})
	}
	return out, nil
}

// Condition translates a vendor condition for the given tenant. Onset,
// abatement and note authors go through the variant translators and an
// unhandled shape fails the whole resource.
func Condition(src vendormodels.Condition, mnemonic string) (models.Condition, error) {
	out := models.Condition{
		ID:             Localize(src.ID, mnemonic),
		Identifiers:    identifiers(src.Identifiers),
		ClinicalStatus: concept(src.ClinicalStatus),
		Categories:     concepts(src.Categories),
		Code:           concept(src.Code),
		Subject:        reference(src.Subject, mnemonic),
		RecordedDate:   src.RecordedDate,
	}

	if err := applyOnset(src.Onset, &out); err != nil {
		return models.Condition{}, err
	}
	if err := applyAbatement(src.Abatement, &out); err != nil {
		return models.Condition{}, err
	}

	for _, n := range src.Notes {
		note, err := annotation(n, mnemonic)
		if err != nil {
			return models.Condition{}, err
		}
		out.Notes = append(out.Notes, note)
	}
	return out, nil
}

// Practitioner translates a vendor practitioner for the given tenant.
func Practitioner(src vendormodels.Practitioner, mnemonic string) (models.Practitioner, error) {
	return models.Practitioner{
		ID:          Localize(src.ID, mnemonic),
		Identifiers: identifiers(src.Identifiers),
		Names:       names(src.Names),
		Active:      src.Active,
	}, nil
}
