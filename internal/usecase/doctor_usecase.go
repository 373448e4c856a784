package usecase

import (
	"context"
	"errors"

	"healthcare-admin/internal/converter"
	"healthcare-admin/internal/delivery/dto"
	"healthcare-admin/internal/domain/entity"
	"healthcare-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	Get(ctx context.Context, id int) (*entity.Doctor, error)
	List(ctx context.Context) ([]entity.Doctor, error)
	Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*entity.Doctor, error)
	Delete(ctx context.Context, id int) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := converter.DoctorFromCreate(req)
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return doctor, nil
}

func (u *doctorUsecase) Get(ctx context.Context, id int) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (u *doctorUsecase) List(ctx context.Context) ([]entity.Doctor, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}
	return doctors, nil
}

func (u *doctorUsecase) Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*entity.Doctor, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	converter.ApplyDoctorUpdate(doctor, req)

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return doctor, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
