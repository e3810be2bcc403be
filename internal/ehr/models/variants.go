package models

// Onset is the closed set of shapes a condition's onset may take. Exactly
// one concrete type is populated per condition; translators match the set
// exhaustively and reject anything outside it.
type Onset interface {
	isOnset()
}

// OnsetDateTime is an onset recorded as an opaque date-time string.
type OnsetDateTime struct {
	Value string
}

// OnsetAge is an onset recorded as the patient's age.
type OnsetAge struct {
	Value Age
}

// OnsetPeriod is an onset recorded as a time range.
type OnsetPeriod struct {
	Value Period
}

// OnsetRange is an onset recorded as a numeric interval.
type OnsetRange struct {
	Value Range
}

// OnsetString is an onset recorded as free text.
type OnsetString struct {
	Value string
}

func (OnsetDateTime) isOnset() {}
func (OnsetAge) isOnset()      {}
func (OnsetPeriod) isOnset()   {}
func (OnsetRange) isOnset()    {}
func (OnsetString) isOnset()   {}

// Abatement is the closed set of shapes a condition's abatement may take.
type Abatement interface {
	isAbatement()
}

// AbatementDateTime is an abatement recorded as an opaque date-time string.
type AbatementDateTime struct {
	Value string
}

// AbatementAge is an abatement recorded as the patient's age.
type AbatementAge struct {
	Value Age
}

// AbatementPeriod is an abatement recorded as a time range.
type AbatementPeriod struct {
	Value Period
}

// AbatementRange is an abatement recorded as a numeric interval.
type AbatementRange struct {
	Value Range
}

// AbatementString is an abatement recorded as free text.
type AbatementString struct {
	Value string
}

func (AbatementDateTime) isAbatement() {}
func (AbatementAge) isAbatement()      {}
func (AbatementPeriod) isAbatement()   {}
func (AbatementRange) isAbatement()    {}
func (AbatementString) isAbatement()   {}

// AnnotationAuthor is the closed set of shapes an annotation's author may
// take, either a reference to a practitioner resource or a plain string.
type AnnotationAuthor interface {
	isAnnotationAuthor()
}

// AuthorReference is an author recorded as a resource reference.
type AuthorReference struct {
	Value Reference
}

// AuthorString is an author recorded as a plain name string.
type AuthorString struct {
	Value string
}

func (AuthorReference) isAnnotationAuthor() {}
func (AuthorString) isAnnotationAuthor()    {}
