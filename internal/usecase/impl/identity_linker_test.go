package impl

import (
	"context"
	"encoding/json"
	"testing"

	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// racingIdentityRepo lets another sign-in win the first link insert.
type racingIdentityRepo struct {
	repository.ExternalIdentityRepository
	winner *entity.Account
	raced  bool
}

func (r *racingIdentityRepo) Create(ctx context.Context, identity *entity.ExternalIdentity) error {
	if !r.raced {
		r.raced = true
		competing := *identity
		competing.AccountID = r.winner.ID
		if err := r.ExternalIdentityRepository.Create(ctx, &competing); err != nil {
			return err
		}
	}

	return r.ExternalIdentityRepository.Create(ctx, identity)
}

func TestIdentityLinker_ResolveIsIdempotent(t *testing.T) {
	env := newTestEnv()
	linker := env.components().linker
	ctx := context.Background()
	profile := externalProfile{Subject: "sub-1", Email: "linker@example.com"}

	first, created, err := linker.Resolve(ctx, entity.ProviderGoogle, profile)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := linker.Resolve(ctx, entity.ProviderGoogle, profile)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// The same subject at another provider is a different identity but the same email.
	third, created, err := linker.Resolve(ctx, entity.ProviderFacebook, profile)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, third.ID)

	links, err := env.store.NewExternalIdentityRepository().ListByAccountID(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestIdentityLinker_ResolveAfterLostRace(t *testing.T) {
	env := newTestEnv()
	c := env.components()
	ctx := context.Background()

	winner, err := c.directory.CreateProvisioned(ctx, "winner@example.com")
	require.NoError(t, err)

	c.linker.identities = &racingIdentityRepo{
		ExternalIdentityRepository: env.store.NewExternalIdentityRepository(),
		winner:                     winner,
	}

	account, created, err := c.linker.Resolve(ctx, entity.ProviderGoogle, externalProfile{Subject: "sub-race", Email: "loser@example.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner.ID, account.ID)
}

func TestIdentityLinker_RequiresSubjectAndEmail(t *testing.T) {
	env := newTestEnv()
	linker := env.components().linker

	for _, profile := range []externalProfile{
		{Email: "no-subject@example.com"},
		{Subject: "no-email"},
	} {
		_, _, err := linker.Resolve(context.Background(), entity.ProviderGoogle, profile)
		require.ErrorIs(t, err, domainerrors.ErrInvalidExternalIdentity)
	}
}

func TestAttributeExtractors(t *testing.T) {
	tests := []struct {
		name       string
		provider   entity.ProviderType
		attributes map[string]any
		want       externalProfile
	}{
		{
			name:       "google uses sub",
			provider:   entity.ProviderGoogle,
			attributes: map[string]any{"sub": " 1089 ", "email": "g@example.com", "name": "G", "id": "ignored"},
			want:       externalProfile{Subject: "1089", Email: "g@example.com", Name: "G"},
		},
		{
			name:       "facebook uses id",
			provider:   entity.ProviderFacebook,
			attributes: map[string]any{"id": "4412", "email": "f@example.com", "sub": "ignored"},
			want:       externalProfile{Subject: "4412", Email: "f@example.com"},
		},
		{
			name:       "numeric ids",
			provider:   entity.ProviderFacebook,
			attributes: map[string]any{"id": json.Number("10223344556677"), "email": "n@example.com"},
			want:       externalProfile{Subject: "10223344556677", Email: "n@example.com"},
		},
		{
			name:       "non-string values are ignored",
			provider:   entity.ProviderGoogle,
			attributes: map[string]any{"sub": []string{"x"}, "email": true},
			want:       externalProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extract, ok := attributeExtractors[tt.provider]
			require.True(t, ok)
			assert.Equal(t, tt.want, extract(tt.attributes))
		})
	}
}

func TestProfileFromOAuthUser(t *testing.T) {
	profile := profileFromOAuthUser(&service.OAuthUser{ID: " abc ", Email: " u@example.com ", Name: "U"})

	assert.Equal(t, externalProfile{Subject: "abc", Email: "u@example.com", Name: "U"}, profile)
}
