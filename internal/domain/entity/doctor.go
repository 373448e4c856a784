package entity

// Doctor represents a doctor record.
type Doctor struct {
	ID        int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Specialty string  `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Bio       *string `gorm:"type:text" json:"bio,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d Doctor) GetID() int {
	return d.ID
}

// DoctorInput is a partial doctor used for create and update payloads.
type DoctorInput struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}
