// Package schema supplies the per-entity configuration consumed by the
// generic table: column descriptors, form field descriptors and the two
// transforms between records and form state. Everything here is pure and
// stateless; appointment descriptors additionally derive from the current
// patient and doctor collections passed in by the caller.
package schema

import (
	"strconv"
	"strings"

	"healthcare-admin/internal/crud"
	"healthcare-admin/internal/domain/entity"
)

func PatientColumns() []crud.Column[entity.Patient] {
	return []crud.Column[entity.Patient]{
		{Key: "id", Header: "ID", Class: "nowrap"},
		{Key: "name", Header: "Name", Class: "nowrap strong"},
		{Key: "age", Header: "Age", Class: "nowrap"},
		{Key: "gender", Header: "Gender", Class: "nowrap"},
		{Key: "medicalHistory", Header: "Medical History", Class: "truncate"},
	}
}

func PatientFormFields() []crud.FormField {
	return []crud.FormField{
		{Key: "name", Label: "Name", Kind: crud.FieldText, Required: true},
		{Key: "age", Label: "Age", Kind: crud.FieldNumber},
		{
			Key:   "gender",
			Label: "Gender",
			Kind:  crud.FieldSelect,
			Options: []crud.Option{
				{Value: "Male", Label: "Male"},
				{Value: "Female", Label: "Female"},
				{Value: "Other", Label: "Other"},
			},
		},
		{Key: "medicalHistory", Label: "Medical History", Kind: crud.FieldTextarea, Rows: 3},
	}
}

// PatientToFormData maps a patient to its form state. A nil patient means
// "new record": every field key is still present, holding its zero value,
// so the form never reads a missing key.
func PatientToFormData(p *entity.Patient) crud.FormState {
	if p == nil {
		return crud.FormState{"name": "", "age": "", "gender": "", "medicalHistory": ""}
	}
	return crud.FormState{
		"name":           p.Name,
		"age":            intString(p.Age),
		"gender":         strDeref(p.Gender),
		"medicalHistory": strDeref(p.MedicalHistory),
	}
}

// ParsePatientFormData converts the string-typed form back to a partial
// patient. Blank optional fields become nil so they are omitted from the
// payload rather than overwriting stored values with blanks; an
// unparsable age is likewise dropped, never submitted as a zero.
func ParsePatientFormData(f crud.FormState) (entity.PatientInput, error) {
	in := entity.PatientInput{
		Name:           strPtr(f.Get("name")),
		Age:            optionalInt(f.Get("age")),
		Gender:         optionalStr(f.Get("gender")),
		MedicalHistory: optionalStr(f.Get("medicalHistory")),
	}
	return in, nil
}

func strPtr(s string) *string {
	return &s
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// optionalStr maps the empty string to nil.
func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optionalInt parses a base-10 integer; blank or unparsable input maps to
// nil, never to a sentinel value.
func optionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
