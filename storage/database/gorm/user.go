package gormrepos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic/core/user"
)

type userRepo struct {
	db *gorm.DB
}

var _ user.Repository = (*userRepo)(nil)

func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepo{db: db}
}

func (repo *userRepo) CheckEmailUniqueness(ctx context.Context, email string, excludedUsers ...user.User) error {
	query := repo.db.WithContext(ctx).Model(&userRow{}).
		Where("lower(email) = ?", strings.ToLower(email))
	if len(excludedUsers) > 0 {
		ids := make([]string, 0, len(excludedUsers))
		for _, usr := range excludedUsers {
			ids = append(ids, usr.ID)
		}
		query = query.Where("id NOT IN ?", ids)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return errors.Wrap(err, "checking email uniqueness")
	}
	if count > 0 {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *userRepo) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	row := mapUser(usr)
	row.ID = uuid.New().String()
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return user.User{}, errors.Wrap(err, "creating user")
	}
	return row.unmap(), nil
}

func (repo *userRepo) GetUserByID(ctx context.Context, id string) (user.User, error) {
	var row userRow
	err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return user.User{}, trapNotFoundErr(err, user.ErrNotFound, "retrieving user by id")
	}
	return row.unmap(), nil
}

func (repo *userRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var row userRow
	err := repo.db.WithContext(ctx).
		First(&row, "lower(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return user.User{}, trapNotFoundErr(err, user.ErrNotFound, "retrieving user by email")
	}
	return row.unmap(), nil
}

func (repo *userRepo) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	row := mapUser(usr)
	res := repo.db.WithContext(ctx).Model(&userRow{}).
		Where("id = ?", usr.ID).
		Select("*").Omit("id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return user.User{}, errors.Wrap(res.Error, "updating user")
	}
	if res.RowsAffected == 0 {
		return user.User{}, user.ErrNotFound
	}
	return repo.GetUserByID(ctx, usr.ID)
}
