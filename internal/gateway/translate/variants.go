package translate

import (
	"fmt"

	vendormodels "medgate/internal/ehr/models"
	"medgate/internal/gateway/models"
	domainerrors "medgate/pkg/domain-errors"
)

// The variant translators match their closed shape sets exhaustively. A nil
// variant means the vendor did not record the field and is not an error; a
// concrete type outside the declared set is a defect in this layer and must
// fail loudly rather than silently drop clinical data.

func applyOnset(src vendormodels.Onset, dst *models.Condition) error {
	switch v := src.(type) {
	case nil:
	case vendormodels.OnsetDateTime:
		dst.OnsetDateTime = &v.Value
	case vendormodels.OnsetAge:
		dst.OnsetAge = &models.Age{Quantity: quantity(v.Value.Quantity)}
	case vendormodels.OnsetPeriod:
		p := period(v.Value)
		dst.OnsetPeriod = &p
	case vendormodels.OnsetRange:
		r := numericRange(v.Value)
		dst.OnsetRange = &r
	case vendormodels.OnsetString:
		dst.OnsetString = &v.Value
	default:
		return domainerrors.New(domainerrors.CodeUnknownVariant,
			fmt.Sprintf("unhandled onset shape %T", src))
	}
	return nil
}

func applyAbatement(src vendormodels.Abatement, dst *models.Condition) error {
	switch v := src.(type) {
	case nil:
	case vendormodels.AbatementDateTime:
		dst.AbatementDateTime = &v.Value
	case vendormodels.AbatementAge:
		dst.AbatementAge = &models.Age{Quantity: quantity(v.Value.Quantity)}
	case vendormodels.AbatementPeriod:
		p := period(v.Value)
		dst.AbatementPeriod = &p
	case vendormodels.AbatementRange:
		r := numericRange(v.Value)
		dst.AbatementRange = &r
	case vendormodels.AbatementString:
		dst.AbatementString = &v.Value
	default:
		return domainerrors.New(domainerrors.CodeUnknownVariant,
			fmt.Sprintf("unhandled abatement shape %T", src))
	}
	return nil
}

func annotation(src vendormodels.Annotation, mnemonic string) (models.Annotation, error) {
	note := models.Annotation{Time: src.Time, Text: src.Text}
	switch v := src.Author.(type) {
	case nil:
	case vendormodels.AuthorReference:
		ref := reference(v.Value, mnemonic)
		note.AuthorReference = &ref
	case vendormodels.AuthorString:
		note.AuthorString = &v.Value
	default:
		return models.Annotation{}, domainerrors.New(domainerrors.CodeUnknownVariant,
			fmt.Sprintf("unhandled annotation author shape %T", src.Author))
	}
	return note, nil
}

func quantity(src vendormodels.Quantity) models.Quantity {
	return models.Quantity{
		Value:      src.Value,
		Comparator: src.Comparator,
		Unit:       src.Unit,
		System:     src.System,
		Code:       src.Code,
	}
}

func period(src vendormodels.Period) models.Period {
	return models.Period{Start: src.Start, End: src.End}
}

func numericRange(src vendormodels.Range) models.Range {
	out := models.Range{}
	if src.Low != nil {
		q := quantity(*src.Low)
		out.Low = &q
	}
	if src.High != nil {
		q := quantity(*src.High)
		out.High = &q
	}
	return out
}
