package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/pkg/entity"
)

type PgCatalogRepository struct {
	conn PgConnection
}

func NewPgCatalogRepo(conn PgConnection) *PgCatalogRepository {
	return &PgCatalogRepository{
		conn: conn,
	}
}

func (pr *PgCatalogRepository) Load(ctx context.Context, account string) ([]entity.Category, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT id, name FROM categories WHERE account = $1 ORDER BY position;`, account)
	if err != nil {
		return nil, errors.New("getting categories error: " + err.Error())
	}
	categories := make([]entity.Category, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var id uuid.UUID
		c := entity.Category{Dates: []string{}}
		if err = rows.Scan(&id, &c.Name); err != nil {
			rows.Close()
			return nil, errors.New("category row parsing error: " + err.Error())
		}
		index[id] = len(categories)
		categories = append(categories, c)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected category rows error: " + err.Error())
	}
	if len(categories) == 0 {
		return categories, nil
	}

	rows, err = pr.conn.Query(ctx,
		`SELECT d.category_id, d.raw_date FROM category_dates d
		JOIN categories c ON c.id = d.category_id
		WHERE c.account = $1 ORDER BY d.category_id, d.position;`, account)
	if err != nil {
		return nil, errors.New("getting category dates error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id  uuid.UUID
			raw string
		)
		if err = rows.Scan(&id, &raw); err != nil {
			return nil, errors.New("date row parsing error: " + err.Error())
		}
		i, ok := index[id]
		if !ok {
			continue
		}
		categories[i].Dates = append(categories[i].Dates, raw)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected date rows error: " + err.Error())
	}
	return categories, nil
}

// Save replaces the account's catalog in one transaction. Category dates go
// with their category through ON DELETE CASCADE.
func (pr *PgCatalogRepository) Save(ctx context.Context, account string, categories []entity.Category) error {
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting catalog transaction error: " + err.Error())
	}
	if err = replaceCatalog(ctx, tx, account, categories); err != nil {
		tx.Rollback(ctx)
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing catalog error: " + err.Error())
	}
	return nil
}

func replaceCatalog(ctx context.Context, tx pgx.Tx, account string, categories []entity.Category) error {
	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE account = $1;`, account); err != nil {
		return errors.New("clearing catalog error: " + err.Error())
	}
	for pos, c := range categories {
		id := uuid.New()
		_, err := tx.Exec(ctx,
			`INSERT INTO categories (id, account, name, position) VALUES ($1, $2, $3, $4);`,
			id, account, c.Name, pos,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				// Unique violation
				case "23505":
					return errorvalues.ErrAlreadyExists
				}
			}
			return errors.New("inserting category error: " + err.Error())
		}
		for datePos, raw := range c.Dates {
			_, err = tx.Exec(ctx,
				`INSERT INTO category_dates (category_id, raw_date, position) VALUES ($1, $2, $3);`,
				id, raw, datePos,
			)
			if err != nil {
				return errors.New("inserting category date error: " + err.Error())
			}
		}
	}
	return nil
}
