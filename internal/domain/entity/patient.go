package entity

// Patient represents a patient record.
//
// JSON field names are camelCase because they are the wire contract shared
// with the admin console and the proxy. Optional fields are pointers so an
// absent value is omitted from JSON instead of being sent as a blank.
type Patient struct {
	ID             int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string  `gorm:"type:varchar(100);not null" json:"name"`
	Age            *int    `json:"age,omitempty"`
	Gender         *string `gorm:"type:varchar(20)" json:"gender,omitempty"`
	MedicalHistory *string `gorm:"type:text" json:"medicalHistory,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p Patient) GetID() int {
	return p.ID
}

// PatientInput is a partial patient used for create and update payloads.
// Nil fields are omitted on the wire.
type PatientInput struct {
	Name           *string `json:"name,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	MedicalHistory *string `json:"medicalHistory,omitempty"`
}
