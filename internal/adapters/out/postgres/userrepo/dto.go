// Package userrepo is the GORM-backed user directory.
package userrepo

import (
	"time"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
)

type UserDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	RoleID    int64  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

type RoleDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (RoleDTO) TableName() string {
	return "roles"
}

func fromDomain(u *identity.User) UserDTO {
	return UserDTO{
		ID:       u.ID().Int64(),
		Username: u.Username(),
		Email:    u.Email(),
		Password: u.PasswordHash(),
		RoleID:   u.RoleID().Int64(),
	}
}

func toDomain(dto UserDTO) (*identity.User, error) {
	return identity.RestoreUser(kernel.ID(dto.ID), dto.Username, dto.Email, dto.Password, kernel.ID(dto.RoleID))
}
