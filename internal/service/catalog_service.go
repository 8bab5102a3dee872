package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/internal/repository"
	"github.com/limbo/eventtracker/pkg/entity"
)

// ConfirmImportFunc is asked once, with the number of legacy records found,
// whether they should be imported into an empty catalog.
type ConfirmImportFunc func(records int) bool

// CatalogService owns the categories of one account. Every change is saved
// before the call returns, and a failed save leaves the in-memory catalog as
// it was.
type CatalogService struct {
	repo   repository.CatalogRepositoryI
	legacy repository.LegacySourceI
	logger *zap.Logger

	account    string
	categories []entity.Category
	loaded     bool
}

func NewCatalogService(repo repository.CatalogRepositoryI, legacy repository.LegacySourceI, logger *zap.Logger) *CatalogService {
	InitValidator()
	return &CatalogService{
		repo:   repo,
		legacy: legacy,
		logger: logger,
	}
}

func (cs *CatalogService) Load(ctx context.Context, account string, confirmImport ConfirmImportFunc) error {
	categories, err := cs.repo.Load(ctx, account)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrCorruptStore) {
			return err
		}
		cs.logger.Warn("catalog is corrupt, starting empty", zap.String("account", account), zap.Error(err))
		categories = nil
	}
	cs.account = account
	cs.categories = categories
	cs.loaded = true

	if len(cs.categories) == 0 {
		seeded := []entity.Category{{
			Name:  entity.DefaultCategoryName,
			Dates: cs.legacyDates(ctx, confirmImport),
		}}
		if err = cs.replace(ctx, seeded); err != nil {
			cs.loaded = false
			return err
		}
	}

	for _, c := range cs.categories {
		if s := entity.BuildSeries(c.Dates); len(s.Skipped) > 0 {
			cs.logger.Warn("skipping malformed dates",
				zap.String("account", account),
				zap.String("category", c.Name),
				zap.Strings("raw", s.Skipped),
			)
		}
	}
	return nil
}

// legacyDates returns the legacy records if there are any and the user agrees
// to import them, otherwise an empty list.
func (cs *CatalogService) legacyDates(ctx context.Context, confirmImport ConfirmImportFunc) []string {
	if cs.legacy == nil || confirmImport == nil {
		return []string{}
	}
	lines, err := cs.legacy.Lines(ctx)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			cs.logger.Warn("reading legacy log", zap.Error(err))
		}
		return []string{}
	}
	if len(lines) == 0 || !confirmImport(len(lines)) {
		return []string{}
	}
	cs.logger.Info("imported legacy log", zap.String("account", cs.account), zap.Int("records", len(lines)))
	return lines
}

func (cs *CatalogService) Account() string {
	return cs.account
}

func (cs *CatalogService) ListCategories() []string {
	names := make([]string, len(cs.categories))
	for i, c := range cs.categories {
		names[i] = c.Name
	}
	return names
}

func (cs *CatalogService) CreateCategory(ctx context.Context, name string) error {
	if !cs.loaded {
		return errorvalues.ErrNotLoaded
	}
	name, err := validateCategoryName(name)
	if err != nil {
		return err
	}
	if cs.index(name) >= 0 {
		return errorvalues.ErrAlreadyExists
	}
	next := cs.snapshot()
	next = append(next, entity.Category{Name: name, Dates: []string{}})
	return cs.replace(ctx, next)
}

// RenameCategory keeps the category at its display position.
func (cs *CatalogService) RenameCategory(ctx context.Context, oldName, newName string) error {
	if !cs.loaded {
		return errorvalues.ErrNotLoaded
	}
	i := cs.index(oldName)
	if i < 0 {
		return errorvalues.ErrCategoryNotFound
	}
	newName, err := validateCategoryName(newName)
	if err != nil {
		return err
	}
	if newName == oldName {
		return nil
	}
	if cs.index(newName) >= 0 {
		return errorvalues.ErrAlreadyExists
	}
	next := cs.snapshot()
	next[i].Name = newName
	return cs.replace(ctx, next)
}

func (cs *CatalogService) DeleteCategory(ctx context.Context, name string) error {
	if !cs.loaded {
		return errorvalues.ErrNotLoaded
	}
	// The last event is refused whatever name is given.
	if len(cs.categories) == 1 {
		return errorvalues.ErrLastCategory
	}
	i := cs.index(name)
	if i < 0 {
		return errorvalues.ErrCategoryNotFound
	}
	next := cs.snapshot()
	next = append(next[:i], next[i+1:]...)
	return cs.replace(ctx, next)
}

// AddDate records raw as given. The format is not validated here; strings the
// views cannot parse are skipped by them.
func (cs *CatalogService) AddDate(ctx context.Context, category, raw string) error {
	i, err := cs.category(category)
	if err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errorvalues.ErrEmptyDate
	}
	if indexOfDate(cs.categories[i].Dates, raw) >= 0 {
		return errorvalues.ErrDuplicateDate
	}
	if entity.ParseDate(raw).Skipped {
		cs.logger.Warn("recorded date is not DD.MM.YYYY and will be skipped by views",
			zap.String("category", category),
			zap.String("raw", raw),
		)
	}
	next := cs.snapshot()
	next[i].Dates = append(next[i].Dates, raw)
	return cs.replace(ctx, next)
}

// RemoveDate drops the first entry equal to raw. Removing an absent date is a
// no-op.
func (cs *CatalogService) RemoveDate(ctx context.Context, category, raw string) error {
	i, err := cs.category(category)
	if err != nil {
		return err
	}
	j := indexOfDate(cs.categories[i].Dates, strings.TrimSpace(raw))
	if j < 0 {
		return nil
	}
	next := cs.snapshot()
	next[i].Dates = append(next[i].Dates[:j], next[i].Dates[j+1:]...)
	return cs.replace(ctx, next)
}

// EditDate replaces oldRaw by newRaw. The new entry goes to the end of the
// list, as if removed and added again.
func (cs *CatalogService) EditDate(ctx context.Context, category, oldRaw, newRaw string) error {
	i, err := cs.category(category)
	if err != nil {
		return err
	}
	oldRaw, newRaw = strings.TrimSpace(oldRaw), strings.TrimSpace(newRaw)
	dates := cs.categories[i].Dates
	j := indexOfDate(dates, oldRaw)
	if j < 0 {
		return errorvalues.ErrDateNotFound
	}
	if entity.SameDateEntry(oldRaw, newRaw) {
		return nil
	}
	if newRaw == "" {
		return errorvalues.ErrEmptyDate
	}
	if indexOfDate(dates, newRaw) >= 0 {
		return errorvalues.ErrDuplicateDate
	}
	next := cs.snapshot()
	next[i].Dates = append(next[i].Dates[:j], next[i].Dates[j+1:]...)
	next[i].Dates = append(next[i].Dates, newRaw)
	return cs.replace(ctx, next)
}

// Dates returns a copy of the raw date strings in insertion order.
func (cs *CatalogService) Dates(category string) ([]string, error) {
	i, err := cs.category(category)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), cs.categories[i].Dates...), nil
}

func (cs *CatalogService) ParseReport(category string) (entity.Series, error) {
	i, err := cs.category(category)
	if err != nil {
		return entity.Series{}, err
	}
	return entity.BuildSeries(cs.categories[i].Dates), nil
}

// ActiveSeries is the ascending parsed series of category, restricted to year
// unless it is entity.AllYears.
func (cs *CatalogService) ActiveSeries(category string, year entity.YearFilter) ([]time.Time, error) {
	s, err := cs.ParseReport(category)
	if err != nil {
		return nil, err
	}
	return s.Filter(year), nil
}

// AvailableYears lists the years with at least one parsed date, newest first.
func (cs *CatalogService) AvailableYears(category string) ([]int, error) {
	s, err := cs.ParseReport(category)
	if err != nil {
		return nil, err
	}
	return s.Years(), nil
}

func (cs *CatalogService) category(name string) (int, error) {
	if !cs.loaded {
		return -1, errorvalues.ErrNotLoaded
	}
	i := cs.index(name)
	if i < 0 {
		return -1, errorvalues.ErrCategoryNotFound
	}
	return i, nil
}

func (cs *CatalogService) index(name string) int {
	for i, c := range cs.categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// snapshot deep-copies the catalog so a mutation can be discarded if saving
// it fails.
func (cs *CatalogService) snapshot() []entity.Category {
	out := make([]entity.Category, len(cs.categories))
	for i, c := range cs.categories {
		out[i] = entity.Category{Name: c.Name, Dates: append([]string{}, c.Dates...)}
	}
	return out
}

func (cs *CatalogService) replace(ctx context.Context, next []entity.Category) error {
	if err := cs.repo.Save(ctx, cs.account, next); err != nil {
		cs.logger.Error("saving catalog", zap.String("account", cs.account), zap.Error(err))
		return err
	}
	cs.categories = next
	return nil
}

func validateCategoryName(name string) (string, error) {
	req := CategoryNameRequest{Name: strings.TrimSpace(name)}
	if err := validate.Struct(req); err != nil {
		if req.Name == "" {
			return "", errorvalues.ErrEmptyName
		}
		return "", errorvalues.ErrUnprintableName
	}
	return req.Name, nil
}

func indexOfDate(dates []string, raw string) int {
	for i, d := range dates {
		if entity.SameDateEntry(d, raw) {
			return i
		}
	}
	return -1
}
