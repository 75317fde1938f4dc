package userrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := user.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "user", id, "id = ?", id.Int64())
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return r.first(ctx, "email", email, "email = ?", email)
}

func (r *GormUserRepository) FindRoleByName(ctx context.Context, name string) (identity.Role, error) {
	var dto RoleDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identity.Role{}, errs.NewObjectNotFoundError("role", name)
		}
		return identity.Role{}, err
	}

	return identity.Role{ID: kernel.ID(dto.ID), Name: dto.Name}, nil
}

func (r *GormUserRepository) first(ctx context.Context, param string, id any, query string, args ...any) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}

	return toDomain(dto)
}
