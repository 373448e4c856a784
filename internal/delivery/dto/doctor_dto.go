package dto

type CreateDoctorRequest struct {
	Name      string  `json:"name" validate:"required"`
	Specialty string  `json:"specialty" validate:"required"`
	Bio       *string `json:"bio"`
}

type UpdateDoctorRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Bio       *string `json:"bio"`
}
