package product

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"
	"storefront-be/internal/pagination"

	"go.uber.org/zap"
)

type Repository interface {
	FindPage(ctx context.Context, p pagination.Params) ([]Product, int64, error)
	FindPageByCategory(ctx context.Context, categoryID int64, p pagination.Params) ([]Product, int64, error)
	FindPageByKeyword(ctx context.Context, keyword string, p pagination.Params) ([]Product, int64, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	ExistsByNameInCategory(ctx context.Context, categoryID int64, name string) (bool, error)
	Insert(ctx context.Context, prod Product) (Product, error)
	Update(ctx context.Context, prod Product) (Product, error)
	UpdateImage(ctx context.Context, id int64, image string) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `p.id, p.name, p.description, p.image, p.quantity, p.price, p.discount, p.special_price, p.category_id, p.seller_id`

var sortColumns = map[string]string{
	"productId":    "p.id",
	"productName":  "p.name",
	"price":        "p.price",
	"quantity":     "p.quantity",
	"specialPrice": "p.special_price",
}

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Image, &p.Quantity,
		&p.Price, &p.Discount, &p.SpecialPrice, &p.CategoryID, &p.SellerID,
	)
	return p, err
}

func (r *repository) FindPage(ctx context.Context, p pagination.Params) ([]Product, int64, error) {
	return r.page(ctx, p,
		`SELECT COUNT(*) FROM products p`,
		`SELECT `+productColumns+` FROM products p ORDER BY `+
			p.OrderClause(sortColumns, "p.id")+` LIMIT $1 OFFSET $2`,
	)
}

// FindPageByCategory lists a category's products cheapest first; the
// caller's sort is ignored for this scope.
func (r *repository) FindPageByCategory(ctx context.Context, categoryID int64, p pagination.Params) ([]Product, int64, error) {
	return r.page(ctx, p,
		`SELECT COUNT(*) FROM products p WHERE p.category_id = $1`,
		`SELECT `+productColumns+` FROM products p WHERE p.category_id = $1 ORDER BY p.price ASC LIMIT $2 OFFSET $3`,
		categoryID,
	)
}

func (r *repository) FindPageByKeyword(ctx context.Context, keyword string, p pagination.Params) ([]Product, int64, error) {
	return r.page(ctx, p,
		`SELECT COUNT(*) FROM products p WHERE p.name ILIKE $1`,
		`SELECT `+productColumns+` FROM products p WHERE p.name ILIKE $1 ORDER BY `+
			p.OrderClause(sortColumns, "p.id")+` LIMIT $2 OFFSET $3`,
		"%"+keyword+"%",
	)
}

// page runs the count query with the filter args, then the listing
// query with LIMIT/OFFSET appended after them.
func (r *repository) page(ctx context.Context, p pagination.Params, countQuery, listQuery string, args ...any) ([]Product, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "page"),
		zap.Int("page", p.PageNumber),
		zap.Int("size", p.Limit()),
	)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, listQuery, append(args, p.Limit(), p.Offset())...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]Product, 0, p.Limit())
	for rows.Next() {
		prod, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, prod)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ExistsByNameInCategory(ctx context.Context, categoryID int64, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1 AND name = $2)`,
		categoryID, name,
	).Scan(&exists)
	return exists, err
}

func (r *repository) Insert(ctx context.Context, prod Product) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Insert"),
		zap.String("name", prod.Name),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, image, quantity, price, discount, special_price, category_id, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+productColumns,
		prod.Name, prod.Description, prod.Image, prod.Quantity,
		prod.Price, prod.Discount, prod.SpecialPrice, prod.CategoryID, prod.SellerID,
	)
	created, err := scanProduct(row)
	if err != nil {
		log.Error("db: failed to insert product", zap.Error(err))
		return Product{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, prod Product) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE products p
		SET name = $1, description = $2, quantity = $3, price = $4, discount = $5, special_price = $6
		WHERE id = $7
		RETURNING `+productColumns,
		prod.Name, prod.Description, prod.Quantity, prod.Price, prod.Discount, prod.SpecialPrice, prod.ID,
	)
	return scanProduct(row)
}

func (r *repository) UpdateImage(ctx context.Context, id int64, image string) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE products p
		SET image = $1
		WHERE id = $2
		RETURNING `+productColumns,
		image, id,
	)
	return scanProduct(row)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
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
