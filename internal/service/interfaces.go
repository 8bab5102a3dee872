package service

import (
	"context"
	"time"

	"github.com/limbo/eventtracker/pkg/entity"
)

type CredentialServiceI interface {
	// Validates credentials and stores a salted hash. Fails on taken usernames and empty fields
	Register(ctx context.Context, username, password string) error
	// Re-derives the hash with the stored salt and compares in constant time
	Authenticate(ctx context.Context, username, password string) bool
}

type CatalogServiceI interface {
	// Reads the account's catalog, offers the legacy import and seeds the default category
	Load(ctx context.Context, account string, confirmImport ConfirmImportFunc) error
	Account() string
	ListCategories() []string
	CreateCategory(ctx context.Context, name string) error
	RenameCategory(ctx context.Context, oldName, newName string) error
	DeleteCategory(ctx context.Context, name string) error
	AddDate(ctx context.Context, category, raw string) error
	RemoveDate(ctx context.Context, category, raw string) error
	EditDate(ctx context.Context, category, oldRaw, newRaw string) error
	Dates(category string) ([]string, error)
	ParseReport(category string) (entity.Series, error)
	ActiveSeries(category string, year entity.YearFilter) ([]time.Time, error)
	AvailableYears(category string) ([]int, error)
}
