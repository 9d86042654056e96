package model

import (
	"time"

	"github.com/google/uuid"
)

// ExternalIdentityModel mirrors the 'external_identities' table.
type ExternalIdentityModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Provider          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_external_identities_provider_subject"`
	ProviderSubjectID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_external_identities_provider_subject"`
	AccountID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ExternalIdentityModel) TableName() string {
	return "external_identities"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the SHA-256 digest of the token is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex:idx_refresh_tokens_token_hash;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Revoked   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&RoleModel{},
		&AccountModel{},
		&AccountRoleModel{},
		&RefreshTokenModel{},
		&ExternalIdentityModel{},
	}
}
