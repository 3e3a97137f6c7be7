package category

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"
	"storefront-be/internal/pagination"

	"go.uber.org/zap"
)

type Repository interface {
	FindPage(ctx context.Context, p pagination.Params) ([]Category, int64, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	Insert(ctx context.Context, name string) (Category, error)
	Update(ctx context.Context, id int64, name string) (Category, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

var sortColumns = map[string]string{
	"categoryId":   "c.id",
	"categoryName": "c.name",
}

func (r *repository) FindPage(ctx context.Context, p pagination.Params) ([]Category, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FindPage"),
		zap.Int("page", p.PageNumber),
		zap.Int("size", p.Limit()),
	)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories c`).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT c.id, c.name FROM categories c ORDER BY ` +
		p.OrderClause(sortColumns, "c.id") + ` LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, p.Limit(), p.Offset())
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]Category, 0, p.Limit())
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE name = $1`, name,
	).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Insert(ctx context.Context, name string) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name
	`, name).Scan(&c.ID, &c.Name)
	return c, err
}

func (r *repository) Update(ctx context.Context, id int64, name string) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`, name, id).Scan(&c.ID, &c.Name)
	return c, err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
