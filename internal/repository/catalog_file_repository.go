package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/pkg/entity"
)

// CatalogFileRepository stores one JSON file per account under dir.
type CatalogFileRepository struct {
	dir string
}

func NewCatalogFileRepo(dir string) *CatalogFileRepository {
	return &CatalogFileRepository{dir: dir}
}

func (cr *CatalogFileRepository) Path(account string) string {
	return filepath.Join(cr.dir, AccountFileName(account))
}

func (cr *CatalogFileRepository) Load(ctx context.Context, account string) ([]entity.Category, error) {
	data, err := os.ReadFile(cr.Path(account))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []entity.Category{}, nil
		}
		return nil, errors.New("reading catalog error: " + err.Error())
	}
	var doc catalogDocument
	if err := doc.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrCorruptStore, err)
	}
	return []entity.Category(doc), nil
}

func (cr *CatalogFileRepository) Save(ctx context.Context, account string, categories []entity.Category) error {
	data, err := sonic.ConfigStd.MarshalIndent(catalogDocument(categories), "", "    ")
	if err != nil {
		return errors.New("encoding catalog error: " + err.Error())
	}
	if err = writeFileAtomic(cr.Path(account), data); err != nil {
		return errors.New("writing catalog error: " + err.Error())
	}
	return nil
}
