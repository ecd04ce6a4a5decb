package repository

import (
	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithProfile creates a user and the profile matching their role
// within a single transaction. Role and profile type stay consistent by
// construction: only employee-role users get an EmployeeProfile and only
// supervisor-role users get a SupervisorProfile.
func (r *GormUserRepository) CreateWithProfile(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		switch user.Role {
		case models.RoleEmployee:
			profile := &models.EmployeeProfile{UserID: user.ID}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
			user.EmployeeProfile = profile
		case models.RoleSupervisor:
			profile := &models.SupervisorProfile{UserID: user.ID}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
			user.SupervisorProfile = profile
		}

		return nil
	})
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(id uint64, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by email with optional preloading
func (r *GormUserRepository) FindByEmail(email string, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves all users
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Preload("EmployeeProfile").
		Preload("SupervisorProfile").
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
