package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 generated by the application.
type AccountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email;not null"`
	PasswordHash  *string   `gorm:"type:varchar(255)"`
	Activated     bool      `gorm:"not null;default:false"`
	ActivationKey *string   `gorm:"type:varchar(64);uniqueIndex:idx_accounts_activation_key"`
	ResetKey      *string   `gorm:"type:varchar(64);uniqueIndex:idx_accounts_reset_key"`
	CreatedAt     time.Time `gorm:"not null"`
	LastLoginAt   *time.Time

	Roles              []RoleModel             `gorm:"many2many:account_roles;joinForeignKey:AccountID;joinReferences:RoleID;constraint:OnDelete:CASCADE"`
	RefreshTokens      []RefreshTokenModel     `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	ExternalIdentities []ExternalIdentityModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex:idx_roles_name;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// AccountRoleModel mirrors the 'account_roles' join table. The composite key makes assignment idempotent.
type AccountRoleModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID    int64     `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (AccountRoleModel) TableName() string {
	return "account_roles"
}
