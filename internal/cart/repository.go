package cart

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Cart, error)
	FindByUserID(ctx context.Context, userID int64) (*Cart, error)
	FindByEmail(ctx context.Context, email string) (*Cart, error)
	FindAll(ctx context.Context) ([]Cart, error)
	FindCartsByProductID(ctx context.Context, productID int64) ([]Cart, error)
	Create(ctx context.Context, userID int64) (Cart, error)

	FindItem(ctx context.Context, cartID, productID int64) (*CartItem, error)
	FindItems(ctx context.Context, cartID int64) ([]CartItem, error)

	AddItemTx(ctx context.Context, item CartItem, newTotal float64) error
	UpdateItemTx(ctx context.Context, item CartItem, newTotal float64) error
	RemoveItemTx(ctx context.Context, cartID, productID int64, newTotal float64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanCart(row interface{ Scan(...any) error }) (Cart, error) {
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.TotalPrice)
	return c, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Cart, error) {
	return r.one(ctx, `SELECT id, user_id, total_price FROM carts WHERE id = $1`, id)
}

func (r *repository) FindByUserID(ctx context.Context, userID int64) (*Cart, error) {
	return r.one(ctx, `SELECT id, user_id, total_price FROM carts WHERE user_id = $1`, userID)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Cart, error) {
	return r.one(ctx, `
		SELECT c.id, c.user_id, c.total_price
		FROM carts c
		JOIN users u ON u.id = c.user_id
		WHERE u.email = $1
	`, email)
}

func (r *repository) one(ctx context.Context, query string, args ...any) (*Cart, error) {
	c, err := scanCart(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Cart, error) {
	return r.query(ctx, `SELECT id, user_id, total_price FROM carts ORDER BY id`)
}

func (r *repository) FindCartsByProductID(ctx context.Context, productID int64) ([]Cart, error) {
	return r.query(ctx, `
		SELECT c.id, c.user_id, c.total_price
		FROM carts c
		JOIN cart_items ci ON ci.cart_id = c.id
		WHERE ci.product_id = $1
		ORDER BY c.id
	`, productID)
}

func (r *repository) query(ctx context.Context, q string, args ...any) ([]Cart, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carts []Cart
	for rows.Next() {
		c, err := scanCart(rows)
		if err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}
	return carts, rows.Err()
}

func (r *repository) Create(ctx context.Context, userID int64) (Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Int64("user_id", userID),
	)

	var c Cart
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO carts (user_id, total_price)
		VALUES ($1, 0)
		RETURNING id, user_id, total_price
	`, userID).Scan(&c.ID, &c.UserID, &c.TotalPrice)
	if err != nil {
		log.Error("db: failed to create cart", zap.Error(err))
		return Cart{}, err
	}
	return c, nil
}

const itemColumns = `
	ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.discount, ci.product_price,
	p.id, p.name, p.description, p.image, p.quantity, p.price, p.discount, p.special_price, p.category_id, p.seller_id`

func scanItem(row interface{ Scan(...any) error }) (CartItem, error) {
	var item CartItem
	err := row.Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.Discount, &item.ProductPrice,
		&item.Product.ID, &item.Product.Name, &item.Product.Description, &item.Product.Image,
		&item.Product.Quantity, &item.Product.Price, &item.Product.Discount,
		&item.Product.SpecialPrice, &item.Product.CategoryID, &item.Product.SellerID,
	)
	return item, err
}

func (r *repository) FindItem(ctx context.Context, cartID, productID int64) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1 AND ci.product_id = $2
	`, cartID, productID)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) FindItems(ctx context.Context, cartID int64) ([]CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CartItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddItemTx inserts the line and writes the new cart total in one
// transaction. A unique violation on (cart_id, product_id) surfaces
// as the driver error for the service to translate.
func (r *repository) AddItemTx(ctx context.Context, item CartItem, newTotal float64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (cart_id, product_id, quantity, discount, product_price)
			VALUES ($1, $2, $3, $4, $5)
		`, item.CartID, item.ProductID, item.Quantity, item.Discount, item.ProductPrice); err != nil {
			return err
		}
		return r.setTotal(ctx, tx, item.CartID, newTotal)
	})
}

func (r *repository) UpdateItemTx(ctx context.Context, item CartItem, newTotal float64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE cart_items
			SET quantity = $1, discount = $2, product_price = $3
			WHERE cart_id = $4 AND product_id = $5
		`, item.Quantity, item.Discount, item.ProductPrice, item.CartID, item.ProductID)
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
		return r.setTotal(ctx, tx, item.CartID, newTotal)
	})
}

func (r *repository) RemoveItemTx(ctx context.Context, cartID, productID int64, newTotal float64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
			cartID, productID)
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
		return r.setTotal(ctx, tx, cartID, newTotal)
	})
}

func (r *repository) setTotal(ctx context.Context, tx *sql.Tx, cartID int64, total float64) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE carts SET total_price = $1 WHERE id = $2`, total, cartID)
	return err
}

func (r *repository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "inTx"),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("db: failed to begin tx", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("db: failed to commit tx", zap.Error(err))
		return err
	}
	return nil
}
