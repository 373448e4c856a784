package converter

import (
	"healthcare-admin/internal/delivery/dto"
	"healthcare-admin/internal/domain/entity"
)

// PatientFromCreate maps a create request to a new patient entity.
func PatientFromCreate(req *dto.CreatePatientRequest) *entity.Patient {
	return &entity.Patient{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		MedicalHistory: req.MedicalHistory,
	}
}

// ApplyPatientUpdate copies the set fields of a partial update onto an
// existing patient. Nil request fields leave the stored value untouched.
func ApplyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) {
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = req.Age
	}
	if req.Gender != nil {
		patient.Gender = req.Gender
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = req.MedicalHistory
	}
}
