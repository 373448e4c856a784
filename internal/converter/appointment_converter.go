package converter

import (
	"healthcare-admin/internal/delivery/dto"
	"healthcare-admin/internal/domain/entity"
)

func AppointmentFromCreate(req *dto.CreateAppointmentRequest) *entity.Appointment {
	return &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		DateTime:  req.DateTime,
		Reason:    req.Reason,
	}
}

func ApplyAppointmentUpdate(appointment *entity.Appointment, req *dto.UpdateAppointmentRequest) {
	if req.PatientID != nil {
		appointment.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		appointment.DoctorID = *req.DoctorID
	}
	if req.DateTime != nil {
		appointment.DateTime = *req.DateTime
	}
	if req.Reason != nil {
		appointment.Reason = req.Reason
	}
}
