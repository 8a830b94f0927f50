package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hradmin/employee-admin/models"
)

type GormEmployeeStore struct {
	db *gorm.DB
}

func NewGormEmployeeStore(db *gorm.DB) *GormEmployeeStore {
	return &GormEmployeeStore{db: db}
}

// Insert persists a new record; the generated id is written back to e.
func (s *GormEmployeeStore) Insert(ctx context.Context, e *models.Employee) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *GormEmployeeStore) Update(ctx context.Context, e *models.Employee) error {
	res := s.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", e.ID).Updates(map[string]any{
		"name":        e.Name,
		"email":       e.Email,
		"mobile":      e.Mobile,
		"designation": e.Designation,
		"gender":      e.Gender,
		"course":      e.Course,
		"image":       e.Image,
		"active":      e.Active,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormEmployeeStore) Get(ctx context.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := s.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
