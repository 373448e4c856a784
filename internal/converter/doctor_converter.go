package converter

import (
	"healthcare-admin/internal/delivery/dto"
	"healthcare-admin/internal/domain/entity"
)

func DoctorFromCreate(req *dto.CreateDoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Bio:       req.Bio,
	}
}

func ApplyDoctorUpdate(doctor *entity.Doctor, req *dto.UpdateDoctorRequest) {
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Bio != nil {
		doctor.Bio = req.Bio
	}
}
