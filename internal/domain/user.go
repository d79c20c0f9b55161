package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID      `json:"tenant_id" gorm:"type:uuid;index;uniqueIndex:idx_tenant_email"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex:idx_tenant_email"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone"`
	Role         Role           `json:"role" gorm:"not null;default:'member'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
