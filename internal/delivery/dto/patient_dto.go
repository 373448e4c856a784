package dto

// CreatePatientRequest carries a new patient. Only required-field presence
// is validated; value shapes are the caller's business.
type CreatePatientRequest struct {
	Name           string  `json:"name" validate:"required"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	MedicalHistory *string `json:"medicalHistory"`
}

// UpdatePatientRequest carries a partial patient; nil fields are left
// untouched.
type UpdatePatientRequest struct {
	Name           *string `json:"name"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	MedicalHistory *string `json:"medicalHistory"`
}
