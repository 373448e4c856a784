package schema

import (
	"fmt"
	"strconv"
	"time"

	"healthcare-admin/internal/crud"
	"healthcare-admin/internal/domain/entity"
)

// DefaultSelectLimit caps foreign-key select options at a prefix of the
// candidate collection. This is a display-scale limit to keep the control
// usable, not a business rule; pass a different limit to
// AppointmentFormFields to change it.
const DefaultSelectLimit = 100

// ResolvePatientName resolves a patient id to a display name. A dangling
// id falls back to a synthetic label instead of blank output.
func ResolvePatientName(id int, patients []entity.Patient) string {
	for _, p := range patients {
		if p.ID == id {
			return p.Name
		}
	}
	return fmt.Sprintf("Patient #%d", id)
}

// ResolveDoctorName resolves a doctor id to a display name, with the same
// fallback behavior as ResolvePatientName.
func ResolveDoctorName(id int, doctors []entity.Doctor) string {
	for _, d := range doctors {
		if d.ID == id {
			return d.Name
		}
	}
	return fmt.Sprintf("Doctor #%d", id)
}

// AppointmentColumns derives the appointment column set from the current
// patient and doctor collections, so foreign keys render as names at
// display time.
func AppointmentColumns(patients []entity.Patient, doctors []entity.Doctor) []crud.Column[entity.Appointment] {
	return []crud.Column[entity.Appointment]{
		{Key: "id", Header: "ID", Class: "nowrap"},
		{
			Key:    "patientId",
			Header: "Patient",
			Class:  "nowrap strong",
			Render: func(a entity.Appointment) string {
				return ResolvePatientName(a.PatientID, patients)
			},
		},
		{
			Key:    "doctorId",
			Header: "Doctor",
			Class:  "nowrap",
			Render: func(a entity.Appointment) string {
				return ResolveDoctorName(a.DoctorID, doctors)
			},
		},
		{
			Key:    "dateTime",
			Header: "Date/Time",
			Class:  "nowrap",
			Render: func(a entity.Appointment) string {
				return formatDateTime(a.DateTime)
			},
		},
		{Key: "reason", Header: "Reason", Class: "truncate"},
	}
}

// AppointmentFormFields derives the appointment form from the current
// collections: the patient and doctor pickers list names, capped at
// selectLimit entries (DefaultSelectLimit when <= 0).
func AppointmentFormFields(patients []entity.Patient, doctors []entity.Doctor, selectLimit int) []crud.FormField {
	if selectLimit <= 0 {
		selectLimit = DefaultSelectLimit
	}

	patientOpts := make([]crud.Option, 0, min(len(patients), selectLimit))
	for _, p := range patients {
		if len(patientOpts) == selectLimit {
			break
		}
		patientOpts = append(patientOpts, crud.Option{
			Value: strconv.Itoa(p.ID),
			Label: fmt.Sprintf("%s (ID: %d)", p.Name, p.ID),
		})
	}

	doctorOpts := make([]crud.Option, 0, min(len(doctors), selectLimit))
	for _, d := range doctors {
		if len(doctorOpts) == selectLimit {
			break
		}
		doctorOpts = append(doctorOpts, crud.Option{
			Value: strconv.Itoa(d.ID),
			Label: fmt.Sprintf("%s - %s", d.Name, d.Specialty),
		})
	}

	return []crud.FormField{
		{Key: "patientId", Label: "Patient", Kind: crud.FieldSelect, Required: true, Options: patientOpts},
		{Key: "doctorId", Label: "Doctor", Kind: crud.FieldSelect, Required: true, Options: doctorOpts},
		{Key: "dateTime", Label: "Date/Time", Kind: crud.FieldDateTime, Required: true},
		{Key: "reason", Label: "Reason", Kind: crud.FieldTextarea, Rows: 2},
	}
}

func AppointmentToFormData(a *entity.Appointment) crud.FormState {
	if a == nil {
		return crud.FormState{"patientId": "", "doctorId": "", "dateTime": "", "reason": ""}
	}
	return crud.FormState{
		"patientId": strconv.Itoa(a.PatientID),
		"doctorId":  strconv.Itoa(a.DoctorID),
		"dateTime":  a.DateTime,
		"reason":    strDeref(a.Reason),
	}
}

func ParseAppointmentFormData(f crud.FormState) (entity.AppointmentInput, error) {
	patientID, err := strconv.Atoi(f.Get("patientId"))
	if err != nil {
		return entity.AppointmentInput{}, fmt.Errorf("invalid patient id %q", f.Get("patientId"))
	}
	doctorID, err := strconv.Atoi(f.Get("doctorId"))
	if err != nil {
		return entity.AppointmentInput{}, fmt.Errorf("invalid doctor id %q", f.Get("doctorId"))
	}
	dateTime := f.Get("dateTime")
	return entity.AppointmentInput{
		PatientID: &patientID,
		DoctorID:  &doctorID,
		DateTime:  &dateTime,
		Reason:    optionalStr(f.Get("reason")),
	}, nil
}

// datetimeLayouts are the accepted appointment timestamp shapes: RFC 3339
// and the shorter forms produced by datetime-local inputs.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// formatDateTime renders a stored timestamp for display. Input that
// matches no known layout renders as-is rather than erroring.
func formatDateTime(s string) string {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006 3:04 PM")
		}
	}
	return s
}
