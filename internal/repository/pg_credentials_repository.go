package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/pkg/entity"
)

type PgCredentialsRepository struct {
	conn PgConnection
}

func NewPgCredentialsRepo(conn PgConnection) *PgCredentialsRepository {
	return &PgCredentialsRepository{
		conn: conn,
	}
}

func (pr *PgCredentialsRepository) Create(ctx context.Context, cred *entity.Credential) error {
	if cred == nil {
		return errors.New("credential is nil")
	}
	_, err := pr.conn.Exec(ctx, `INSERT INTO credentials (username, record) VALUES ($1, $2);`, cred.Username, cred.Record)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrDuplicateUser
			}
		}
		return errors.New("creating credential db error: " + err.Error())
	}
	return nil
}

func (pr *PgCredentialsRepository) FindByName(ctx context.Context, username string) (*entity.Credential, error) {
	cred := entity.Credential{Username: username}
	row := pr.conn.QueryRow(ctx, `SELECT record FROM credentials WHERE username = $1;`, username)
	if err := row.Scan(&cred.Record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching credential by name error: " + err.Error())
	}
	return &cred, nil
}
