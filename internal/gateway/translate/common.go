package translate

import (
	vendormodels "medgate/internal/ehr/models"
	"medgate/internal/gateway/models"
)

func identifiers(in []vendormodels.Identifier) []models.Identifier {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Identifier, len(in))
	for i, id := range in {
		out[i] = models.Identifier{System: id.System, Value: id.Value}
	}
	return out
}

func names(in []vendormodels.HumanName) []models.HumanName {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.HumanName, len(in))
	for i, n := range in {
		out[i] = models.HumanName{Family: n.Family, Given: n.Given, Prefix: n.Prefix, Suffix: n.Suffix, Text: n.Text}
	}
	return out
}

func concept(in *vendormodels.CodeableConcept) *models.CodeableConcept {
	if in == nil {
		return nil
	}
	out := models.CodeableConcept{Text: in.Text}
	for _, c := range in.Codings {
		out.Codings = append(out.Codings, models.Coding{System: c.System, Code: c.Code, Display: c.Display})
	}
	return &out
}

func concepts(in []vendormodels.CodeableConcept) []models.CodeableConcept {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.CodeableConcept, 0, len(in))
	for i := range in {
		out = append(out, *concept(&in[i]))
	}
	return out
}

// reference translates a vendor reference. When the target is resolvable
// (the vendor gave a local ID) the ID is localized; when it is not, the ID
// stays nil and the display text survives so callers still see partial
// information instead of losing the field.
func reference(in vendormodels.Reference, mnemonic string) models.Reference {
	out := models.Reference{Type: in.Type, Display: in.Display}
	if in.ID != nil && *in.ID != "" {
		localized := Localize(*in.ID, mnemonic)
		out.ID = &localized
	}
	return out
}
