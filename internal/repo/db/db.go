package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	conf "github.com/KeivinIsmaili/cashcard/internal/config"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"github.com/KeivinIsmaili/cashcard/internal/repo"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"path/filepath"
)

type Repository struct {
	conn *sql.DB
}

func New(conf *conf.DBConfig) *Repository {
	conn, err := sql.Open(
		"postgres", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.User,
			conf.Password,
			conf.Host,
			conf.Port,
			conf.Database,
		),
	)
	if err != nil {
		zap.L().Fatal("Failed to connect to the database", zap.Error(err))
	}

	if err = conn.Ping(); err != nil {
		zap.L().Fatal("Failed to ping the database", zap.Error(err))
	}

	if err = applyMigrations(conn, conf); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	return &Repository{conn: conn}
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

func applyMigrations(db *sql.DB, conf *conf.DBConfig) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	root, err := findRootDir()
	if err != nil {
		return err
	}
	path := filepath.ToSlash(filepath.Join(root, "internal", "repo", "db", "migration"))

	m, err := migrate.NewWithDatabaseInstance("file://"+path, conf.Database, driver)
	if err != nil {
		return err
	}

	if err = m.Up(); err != nil && errors.Is(err, migrate.ErrNoChange) {
		zap.L().Info("No migrations to apply")
		return nil
	} else if err != nil {
		return err
	}

	zap.L().Info("Applied migrations")
	return nil
}

func (r *Repository) FindByIDAndOwner(ctx context.Context, id int64, owner string) (*model.CashCard, error) {
	const op = "cashcard.FindByIDAndOwner.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &model.CashCard{}
	err := r.conn.QueryRowContext(ctx, cashCardGetByIDAndOwner, id, owner).Scan(&res.ID, &res.Amount, &res.Owner)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return nil, repo.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) FindByOwner(ctx context.Context, owner string, page *model.PageRequest) ([]*model.CashCard, error) {
	const op = "cashcard.FindByOwner.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rows, err := r.conn.QueryContext(ctx, listQuery(page.Sort), owner, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Error("Error while closing rows", zap.Error(err))
		}
	}(rows)

	res := make([]*model.CashCard, 0, page.Size)
	for rows.Next() {
		c := &model.CashCard{}
		if err = rows.Scan(&c.ID, &c.Amount, &c.Owner); err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) ExistsByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error) {
	const op = "cashcard.ExistsByIDAndOwner.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var exists bool
	if err := r.conn.QueryRowContext(ctx, cashCardExistsByIDAndOwner, id, owner).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) Create(ctx context.Context, card *model.CashCard) (int64, error) {
	const op = "cashcard.Create.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id int64
	if err := r.conn.QueryRowContext(ctx, cashCardCreate, card.Amount, card.Owner).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, card *model.CashCard) error {
	const op = "cashcard.Update.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, cashCardUpdate, card.ID, card.Amount, card.Owner)
	if err != nil {
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	const op = "cashcard.DeleteByID.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, cashCardDelete, id); err != nil {
		return err
	}

	return nil
}
