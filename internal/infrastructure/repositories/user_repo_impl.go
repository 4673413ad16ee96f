package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/infrastructure/models"
)

// UserRepository implements operator data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new operator
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateUser
		}
		return err
	}
	user.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets an operator by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUsername gets an operator by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List lists all operators in creation order
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var ms []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, nil
}

// UpdateLastLogin records a successful authentication
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
		LastLogin:    null.TimeFromPtr(m.LastLogin),
	}
}
