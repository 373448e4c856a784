package entity

// Appointment links a patient and a doctor at a point in time.
//
// PatientID and DoctorID are foreign keys by convention only; this layer
// does not enforce referential integrity, and readers must tolerate ids
// that no longer resolve. DateTime is an ISO-8601 string and is stored as
// received.
type Appointment struct {
	ID        int     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int     `gorm:"not null;index" json:"patientId"`
	DoctorID  int     `gorm:"not null;index" json:"doctorId"`
	DateTime  string  `gorm:"type:varchar(40);not null" json:"dateTime"`
	Reason    *string `gorm:"type:text" json:"reason,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a Appointment) GetID() int {
	return a.ID
}

// AppointmentInput is a partial appointment used for create and update
// payloads.
type AppointmentInput struct {
	PatientID *int    `json:"patientId,omitempty"`
	DoctorID  *int    `json:"doctorId,omitempty"`
	DateTime  *string `json:"dateTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}
