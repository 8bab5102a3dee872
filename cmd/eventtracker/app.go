package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limbo/eventtracker/internal/analytics"
	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/internal/repository"
	"github.com/limbo/eventtracker/internal/service"
	"github.com/limbo/eventtracker/pkg/config"
	jwtservice "github.com/limbo/eventtracker/pkg/jwt_service"
)

const sessionFileName = ".session"

// app is what a single command invocation works with.
type app struct {
	credentials service.CredentialServiceI
	catalog     service.CatalogServiceI
	engine      *analytics.Engine
	sessions    *jwtservice.JWTService
	prompt      *prompter
	sessionPath string
}

func newApp(cmd *cobra.Command) (*app, error) {
	scheme, err := analytics.NewTierScheme(cfg.TierCount)
	if err != nil {
		return nil, err
	}
	credRepo, catalogRepo, err := openRepositories(cmd.Context())
	if err != nil {
		return nil, err
	}
	a := &app{
		credentials: service.NewCredentialService(credRepo, logger),
		catalog:     service.NewCatalogService(catalogRepo, repository.NewLegacyFile(cfg.LegacyFile), logger),
		engine:      analytics.NewEngine(scheme, nil),
		prompt:      newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()),
		sessionPath: filepath.Join(cfg.DataDir, sessionFileName),
	}
	if cfg.SessionSecret != "" {
		a.sessions = jwtservice.New(cfg.SessionSecret, cfg.SessionTTL)
	}
	return a, nil
}

func openRepositories(ctx context.Context) (repository.CredentialsRepositoryI, repository.CatalogRepositoryI, error) {
	if cfg.Storage == config.StoragePostgres {
		pool, err := repository.OpenPool(ctx, pgConfig())
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPgCredentialsRepo(pool), repository.NewPgCatalogRepo(pool), nil
	}
	return repository.NewCredentialsFileRepo(cfg.UsersFile, logger), repository.NewCatalogFileRepo(cfg.DataDir), nil
}

func pgConfig() *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	}
}

// signIn returns the account to work with. A remembered session is used when
// it is valid and matches --user; otherwise the password is asked for.
func (a *app) signIn(ctx context.Context, allowSession bool) (string, error) {
	if allowSession {
		if account, ok := a.remembered(); ok && (userFlag == "" || userFlag == account) {
			return account, nil
		}
	}
	username := strings.TrimSpace(userFlag)
	if username == "" {
		var err error
		if username, err = a.prompt.Line("Username: "); err != nil {
			return "", err
		}
		username = strings.TrimSpace(username)
	}
	password, err := a.prompt.Secret("Password: ")
	if err != nil {
		return "", err
	}
	if !a.credentials.Authenticate(ctx, username, password) {
		return "", errorvalues.ErrWrongPassword
	}
	return username, nil
}

// openCatalog signs in and loads the account's catalog, offering the legacy
// import when the catalog is new.
func (a *app) openCatalog(ctx context.Context) error {
	account, err := a.signIn(ctx, true)
	if err != nil {
		return err
	}
	return a.catalog.Load(ctx, account, a.confirmImport)
}

func (a *app) confirmImport(records int) bool {
	return a.prompt.Confirm(fmt.Sprintf("Found %d records from an older version. Import them into this account?", records))
}

func (a *app) remembered() (string, bool) {
	if a.sessions == nil {
		return "", false
	}
	data, err := os.ReadFile(a.sessionPath)
	if err != nil {
		return "", false
	}
	claims, err := a.sessions.ParseToken(strings.TrimSpace(string(data)))
	if err != nil {
		logger.Debug("stored session rejected", zap.Error(err))
		return "", false
	}
	return claims.Username, true
}

// remember is a no-op without SESSION_SECRET: every command then asks for the
// password.
func (a *app) remember(account string) error {
	if a.sessions == nil {
		return nil
	}
	token, err := a.sessions.GenerateToken(account)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(a.sessionPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(a.sessionPath, []byte(token+"\n"), 0o600)
}

func forgetSession() error {
	err := os.Remove(filepath.Join(cfg.DataDir, sessionFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// activeCategory resolves --category, defaulting to the first event.
func (a *app) activeCategory(name string) (string, error) {
	if name = strings.TrimSpace(name); name != "" {
		return name, nil
	}
	names := a.catalog.ListCategories()
	if len(names) == 0 {
		return "", errorvalues.ErrCategoryNotFound
	}
	return names[0], nil
}
