package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// At most one of the two ids is applied; PatientID wins when both are set.
type AppointmentFilter struct {
	PatientID *int
	DoctorID  *int
}
