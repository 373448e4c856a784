package schema

import (
	"fmt"
	"strconv"
	"testing"

	"healthcare-admin/internal/crud"
	"healthcare-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePatients() []entity.Patient {
	return []entity.Patient{
		{ID: 1, Name: "Ada Lovelace"},
		{ID: 2, Name: "Grace Hopper"},
	}
}

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: 10, Name: "Gregory House", Specialty: "Diagnostics"},
		{ID: 11, Name: "Meredith Grey", Specialty: "Surgery"},
	}
}

func TestResolvePatientName(t *testing.T) {
	patients := samplePatients()
	assert.Equal(t, "Ada Lovelace", ResolvePatientName(1, patients))
	// a dangling foreign key falls back to a synthetic label
	assert.Equal(t, "Patient #99", ResolvePatientName(99, patients))
	assert.Equal(t, "Patient #5", ResolvePatientName(5, nil))
}

func TestResolveDoctorName(t *testing.T) {
	doctors := sampleDoctors()
	assert.Equal(t, "Meredith Grey", ResolveDoctorName(11, doctors))
	assert.Equal(t, "Doctor #404", ResolveDoctorName(404, doctors))
}

func TestAppointmentColumnsRenderNames(t *testing.T) {
	cols := AppointmentColumns(samplePatients(), sampleDoctors())
	appt := entity.Appointment{ID: 1, PatientID: 2, DoctorID: 10, DateTime: "2026-03-14T09:30"}

	byKey := map[string]crud.Column[entity.Appointment]{}
	for _, c := range cols {
		byKey[c.Key] = c
	}

	assert.Equal(t, "Grace Hopper", crud.CellValue(appt, byKey["patientId"]))
	assert.Equal(t, "Gregory House", crud.CellValue(appt, byKey["doctorId"]))
	assert.Equal(t, "Mar 14, 2026 9:30 AM", crud.CellValue(appt, byKey["dateTime"]))
}

func TestAppointmentColumnsDanglingIDs(t *testing.T) {
	cols := AppointmentColumns(nil, nil)
	appt := entity.Appointment{ID: 1, PatientID: 7, DoctorID: 8, DateTime: "whenever"}

	assert.Equal(t, "Patient #7", crud.CellValue(appt, cols[1]))
	assert.Equal(t, "Doctor #8", crud.CellValue(appt, cols[2]))
	// an unparsable timestamp renders verbatim
	assert.Equal(t, "whenever", crud.CellValue(appt, cols[3]))
}

func TestAppointmentFormFieldsOptionLabels(t *testing.T) {
	fields := AppointmentFormFields(samplePatients(), sampleDoctors(), 0)
	require.Len(t, fields, 4)

	patientField := fields[0]
	require.Len(t, patientField.Options, 2)
	assert.Equal(t, "1", patientField.Options[0].Value)
	assert.Equal(t, "Ada Lovelace (ID: 1)", patientField.Options[0].Label)

	doctorField := fields[1]
	require.Len(t, doctorField.Options, 2)
	assert.Equal(t, "10", doctorField.Options[0].Value)
	assert.Equal(t, "Gregory House - Diagnostics", doctorField.Options[0].Label)
}

func TestAppointmentFormFieldsSelectLimit(t *testing.T) {
	var patients []entity.Patient
	for i := 1; i <= DefaultSelectLimit+20; i++ {
		patients = append(patients, entity.Patient{ID: i, Name: fmt.Sprintf("P%d", i)})
	}

	fields := AppointmentFormFields(patients, nil, 0)
	assert.Len(t, fields[0].Options, DefaultSelectLimit)
	// the cap keeps the leading prefix of the collection
	assert.Equal(t, "1", fields[0].Options[0].Value)
	assert.Equal(t, strconv.Itoa(DefaultSelectLimit), fields[0].Options[DefaultSelectLimit-1].Value)

	fields = AppointmentFormFields(patients, nil, 5)
	assert.Len(t, fields[0].Options, 5)
}

func TestAppointmentFormDataRoundTrip(t *testing.T) {
	reason := "annual checkup"
	a := &entity.Appointment{ID: 4, PatientID: 2, DoctorID: 11, DateTime: "2026-05-01T14:00", Reason: &reason}

	form := AppointmentToFormData(a)
	assert.Equal(t, "2", form.Get("patientId"))
	assert.Equal(t, "11", form.Get("doctorId"))
	assert.Equal(t, "2026-05-01T14:00", form.Get("dateTime"))
	assert.Equal(t, reason, form.Get("reason"))

	in, err := ParseAppointmentFormData(form)
	require.NoError(t, err)
	require.NotNil(t, in.PatientID)
	assert.Equal(t, 2, *in.PatientID)
	require.NotNil(t, in.DoctorID)
	assert.Equal(t, 11, *in.DoctorID)
	require.NotNil(t, in.DateTime)
	assert.Equal(t, a.DateTime, *in.DateTime)
	require.NotNil(t, in.Reason)
	assert.Equal(t, reason, *in.Reason)
}

func TestParseAppointmentFormDataRejectsBadIDs(t *testing.T) {
	form := AppointmentToFormData(nil)
	form["doctorId"] = "10"
	form["dateTime"] = "2026-05-01T14:00"

	_, err := ParseAppointmentFormData(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patient id")

	form["patientId"] = "2"
	form["doctorId"] = "x"
	_, err = ParseAppointmentFormData(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctor id")
}

func TestFormatDateTimeLayouts(t *testing.T) {
	assert.Equal(t, "Mar 14, 2026 9:30 AM", formatDateTime("2026-03-14T09:30"))
	assert.Equal(t, "Mar 14, 2026 9:30 AM", formatDateTime("2026-03-14T09:30:00"))
	assert.Equal(t, "Mar 14, 2026 9:30 AM", formatDateTime("2026-03-14T09:30:00Z"))
	assert.Equal(t, "not a date", formatDateTime("not a date"))
	assert.Equal(t, "", formatDateTime(""))
}
