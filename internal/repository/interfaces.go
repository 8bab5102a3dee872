package repository

import (
	"context"

	"github.com/limbo/eventtracker/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type CredentialsRepositoryI interface {
	// Stores a new credential record. Fails with ErrDuplicateUser if the username is taken
	Create(ctx context.Context, cred *entity.Credential) error
	// Looks up a credential by username. Used for login
	FindByName(ctx context.Context, username string) (*entity.Credential, error)
}

type CatalogRepositoryI interface {
	// Reads every category of the account in display order. A missing catalog is empty, not an error
	Load(ctx context.Context, account string) ([]entity.Category, error)
	// Replaces the whole catalog of the account
	Save(ctx context.Context, account string, categories []entity.Category) error
}

type LegacySourceI interface {
	// Returns the date payloads of the legacy flat log, or os.ErrNotExist if there is none
	Lines(ctx context.Context) ([]string, error)
}
