package schema

import (
	"healthcare-admin/internal/crud"
	"healthcare-admin/internal/domain/entity"
)

func DoctorColumns() []crud.Column[entity.Doctor] {
	return []crud.Column[entity.Doctor]{
		{Key: "id", Header: "ID", Class: "nowrap"},
		{Key: "name", Header: "Name", Class: "nowrap strong"},
		{Key: "specialty", Header: "Specialty", Class: "nowrap"},
		{Key: "bio", Header: "Bio", Class: "truncate"},
	}
}

func DoctorFormFields() []crud.FormField {
	return []crud.FormField{
		{Key: "name", Label: "Name", Kind: crud.FieldText, Required: true},
		{Key: "specialty", Label: "Specialty", Kind: crud.FieldText, Required: true},
		{Key: "bio", Label: "Bio", Kind: crud.FieldTextarea, Rows: 3},
	}
}

func DoctorToFormData(d *entity.Doctor) crud.FormState {
	if d == nil {
		return crud.FormState{"name": "", "specialty": "", "bio": ""}
	}
	return crud.FormState{
		"name":      d.Name,
		"specialty": d.Specialty,
		"bio":       strDeref(d.Bio),
	}
}

func ParseDoctorFormData(f crud.FormState) (entity.DoctorInput, error) {
	in := entity.DoctorInput{
		Name:      strPtr(f.Get("name")),
		Specialty: strPtr(f.Get("specialty")),
		Bio:       optionalStr(f.Get("bio")),
	}
	return in, nil
}
