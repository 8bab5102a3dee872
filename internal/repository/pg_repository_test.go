package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/internal/repository"
	"github.com/limbo/eventtracker/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPgCreateCredential(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	cred := entity.Credential{
		Username: "test_user",
		Record:   "0011:aabb",
	}
	query := regexp.QuoteMeta(`INSERT INTO credentials (username, record) VALUES ($1, $2);`)
	ctx := context.Background()
	repo := repository.NewPgCredentialsRepo(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(cred.Username, cred.Record).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &cred)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(cred.Username, cred.Record).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &cred)
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateUser)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(cred.Username, cred.Record).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &cred)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestPgFindCredentialByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewPgCredentialsRepo(conn)
	cred := entity.Credential{
		Username: "test_user",
		Record:   "0011:aabb",
	}
	query := regexp.QuoteMeta(`SELECT record FROM credentials WHERE username = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(cred.Username).
			WillReturnRows(pgxmock.NewRows([]string{"record"}).AddRow(cred.Record))
		result, err := repo.FindByName(ctx, cred.Username)
		assert.NoError(t, err)
		assert.Equal(t, cred, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(cred.Username).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, cred.Username)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(cred.Username).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, cred.Username)
		assert.Error(t, err)
	})
}

func TestPgLoadCatalog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPgCatalogRepo(mock)
	ctx := context.Background()
	account := "alice"
	first, second := uuid.New(), uuid.New()
	categoriesQuery := regexp.QuoteMeta(`SELECT id, name FROM categories WHERE account = $1 ORDER BY position;`)
	datesQuery := regexp.QuoteMeta(`SELECT d.category_id, d.raw_date FROM category_dates d`)

	t.Run("loaded", func(t *testing.T) {
		mock.ExpectQuery(categoriesQuery).
			WithArgs(account).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
				AddRow(first, "Running").
				AddRow(second, "Reading"))
		mock.ExpectQuery(datesQuery).
			WithArgs(account).
			WillReturnRows(pgxmock.NewRows([]string{"category_id", "raw_date"}).
				AddRow(first, "01.01.2024").
				AddRow(first, "03.01.2024"))
		got, err := repo.Load(ctx, account)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Category{
			{Name: "Running", Dates: []string{"01.01.2024", "03.01.2024"}},
			{Name: "Reading", Dates: []string{}},
		}, got)
	})
	t.Run("empty catalog skips dates query", func(t *testing.T) {
		mock.ExpectQuery(categoriesQuery).
			WithArgs(account).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))
		got, err := repo.Load(ctx, account)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(categoriesQuery).
			WithArgs(account).
			WillReturnError(errors.New("db error"))
		_, err := repo.Load(ctx, account)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSaveCatalog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPgCatalogRepo(mock)
	ctx := context.Background()
	account := "alice"
	catalog := []entity.Category{
		{Name: "Running", Dates: []string{"01.01.2024"}},
		{Name: "Reading", Dates: []string{}},
	}
	deleteQuery := regexp.QuoteMeta(`DELETE FROM categories WHERE account = $1;`)
	categoryQuery := regexp.QuoteMeta(`INSERT INTO categories (id, account, name, position) VALUES ($1, $2, $3, $4);`)
	dateQuery := regexp.QuoteMeta(`INSERT INTO category_dates (category_id, raw_date, position) VALUES ($1, $2, $3);`)

	t.Run("saved", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).WithArgs(account).WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(categoryQuery).
			WithArgs(pgxmock.AnyArg(), account, "Running", 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(dateQuery).
			WithArgs(pgxmock.AnyArg(), "01.01.2024", 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(categoryQuery).
			WithArgs(pgxmock.AnyArg(), account, "Reading", 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		err := repo.Save(ctx, account, catalog)
		assert.NoError(t, err)
	})
	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).WithArgs(account).WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(categoryQuery).
			WithArgs(pgxmock.AnyArg(), account, "Running", 0).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		err := repo.Save(ctx, account, catalog)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyExists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).WithArgs(account).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.Save(ctx, account, catalog)
		assert.Error(t, err)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		err := repo.Save(ctx, account, catalog)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresIntegrational(t *testing.T) {
	if os.Getenv("EVENTTRACKER_INTEGRATION") != "1" {
		t.Skip("set EVENTTRACKER_INTEGRATION=1 to run against a postgres container")
	}
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.OpenPool(ctx, cfg)
	require.NoError(t, err)
	creds := repository.NewPgCredentialsRepo(pool)
	catalogs := repository.NewPgCatalogRepo(pool)

	t.Run("credentials", func(t *testing.T) {
		cred := &entity.Credential{Username: "alice", Record: "aa:bb"}
		assert.NoError(t, creds.Create(ctx, cred))
		assert.ErrorIs(t, creds.Create(ctx, cred), errorvalues.ErrDuplicateUser)
		got, err := creds.FindByName(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, *cred, *got)
		_, err = creds.FindByName(ctx, "bob")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("catalog", func(t *testing.T) {
		catalog := []entity.Category{
			{Name: "Zeta", Dates: []string{"02.01.2024", "01.01.2024"}},
			{Name: "Alpha", Dates: []string{}},
		}
		require.NoError(t, catalogs.Save(ctx, "alice", catalog))
		got, err := catalogs.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, catalog, got)

		catalog = catalog[:1]
		require.NoError(t, catalogs.Save(ctx, "alice", catalog))
		got, err = catalogs.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, catalog, got)

		got, err = catalogs.Load(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("events"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
