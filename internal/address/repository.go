package address

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, a Address) (Address, error)
	FindByID(ctx context.Context, id int64) (*Address, error)
	FindAll(ctx context.Context) ([]Address, error)
	FindByUserID(ctx context.Context, userID int64) ([]Address, error)
	Update(ctx context.Context, a Address) (Address, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const addressColumns = `id, user_id, street, building_name, city, state, country, pincode`

func scanAddress(row interface{ Scan(...any) error }) (Address, error) {
	var a Address
	err := row.Scan(&a.ID, &a.UserID, &a.Street, &a.BuildingName, &a.City, &a.State, &a.Country, &a.Pincode)
	return a, err
}

func (r *repository) Create(ctx context.Context, a Address) (Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Int64("user_id", a.UserID),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO addresses (user_id, street, building_name, city, state, country, pincode)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+addressColumns,
		a.UserID, a.Street, a.BuildingName, a.City, a.State, a.Country, a.Pincode,
	)

	created, err := scanAddress(row)
	if err != nil {
		log.Error("db: failed to insert address", zap.Error(err))
		return Address{}, err
	}
	return created, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Address, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id)

	a, err := scanAddress(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Address, error) {
	return r.query(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY id`)
}

func (r *repository) FindByUserID(ctx context.Context, userID int64) ([]Address, error) {
	return r.query(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *repository) query(ctx context.Context, q string, args ...any) ([]Address, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *repository) Update(ctx context.Context, a Address) (Address, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE addresses
		SET street = $1, building_name = $2, city = $3, state = $4, country = $5, pincode = $6
		WHERE id = $7
		RETURNING `+addressColumns,
		a.Street, a.BuildingName, a.City, a.State, a.Country, a.Pincode, a.ID,
	)
	return scanAddress(row)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
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
