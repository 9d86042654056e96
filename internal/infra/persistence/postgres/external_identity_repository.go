package postgres

import (
	"context"

	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type externalIdentityRepository struct {
	db *gorm.DB
}

// NewExternalIdentityRepository is the constructor for externalIdentityRepository.
func NewExternalIdentityRepository(db *gorm.DB) repository.ExternalIdentityRepository {
	return &externalIdentityRepository{db: db}
}

// Create links a provider subject to an account inside a savepoint, so a lost race can be re-read.
func (repo *externalIdentityRepository) Create(ctx context.Context, identity *entity.ExternalIdentity) error {
	if identity.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate external identity id")
		}
		identity.ID = id
	}

	identityM := fromExternalIdentityDomain(identity)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(identityM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrExternalIdentityExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create external identity")
	}

	identity.CreatedAt = identityM.CreatedAt

	return nil
}

func (repo *externalIdentityRepository) Find(ctx context.Context, provider entity.ProviderType, subjectID string) (*entity.ExternalIdentity, error) {
	var identityM model.ExternalIdentityModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_subject_id = ?", provider.String(), subjectID).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExternalIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find external identity")
	}

	return toExternalIdentityDomain(&identityM), nil
}

func (repo *externalIdentityRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.ExternalIdentity, error) {
	var identityModels []*model.ExternalIdentityModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&identityModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list external identities")
	}

	identities := make([]*entity.ExternalIdentity, 0, len(identityModels))
	for _, identityM := range identityModels {
		identities = append(identities, toExternalIdentityDomain(identityM))
	}

	return identities, nil
}

// --- Mapper Functions ---

func toExternalIdentityDomain(data *model.ExternalIdentityModel) *entity.ExternalIdentity {
	if data == nil {
		return nil
	}

	return &entity.ExternalIdentity{
		ID:                data.ID,
		Provider:          entity.ProviderType(data.Provider),
		ProviderSubjectID: data.ProviderSubjectID,
		AccountID:         data.AccountID,
		CreatedAt:         data.CreatedAt,
	}
}

func fromExternalIdentityDomain(data *entity.ExternalIdentity) *model.ExternalIdentityModel {
	if data == nil {
		return nil
	}

	return &model.ExternalIdentityModel{
		ID:                data.ID,
		Provider:          data.Provider.String(),
		ProviderSubjectID: data.ProviderSubjectID,
		AccountID:         data.AccountID,
		CreatedAt:         data.CreatedAt,
	}
}
