package dto

type CreateAppointmentRequest struct {
	PatientID int     `json:"patientId" validate:"required"`
	DoctorID  int     `json:"doctorId" validate:"required"`
	DateTime  string  `json:"dateTime" validate:"required"`
	Reason    *string `json:"reason"`
}

type UpdateAppointmentRequest struct {
	PatientID *int    `json:"patientId"`
	DoctorID  *int    `json:"doctorId"`
	DateTime  *string `json:"dateTime"`
	Reason    *string `json:"reason"`
}
