package order

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-be/internal/logger"
	"storefront-be/internal/payment"

	"go.uber.org/zap"
)

type Repository interface {
	// PlaceOrderTx writes the order, its payment and items, decrements
	// stock and drains the cart in a single transaction. Stock
	// decrements are guarded; a product with too little stock left
	// fails the whole checkout with ErrInsufficientStock.
	PlaceOrderTx(ctx context.Context, o Order, items []OrderItem, pay payment.Payment, cartID int64) (Order, []OrderItem, payment.Payment, error)
	FindByEmail(ctx context.Context, email string) ([]Order, error)
	FindItems(ctx context.Context, orderID int64) ([]OrderItem, error)
}

type repository struct {
	db       *sql.DB
	payments payment.Repository
}

func NewRepository(db *sql.DB, payments payment.Repository) Repository {
	return &repository{db: db, payments: payments}
}

const orderColumns = `id, email, order_date, total_amount, status, address_id`

func (r *repository) PlaceOrderTx(ctx context.Context, o Order, items []OrderItem, pay payment.Payment, cartID int64) (Order, []OrderItem, payment.Payment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PlaceOrderTx"),
		zap.Int64("cart_id", cartID),
	)

	fail := func(err error) (Order, []OrderItem, payment.Payment, error) {
		return Order{}, nil, payment.Payment{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("db: failed to begin tx", zap.Error(err))
		return fail(err)
	}
	defer tx.Rollback()

	var created Order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (email, order_date, total_amount, status, address_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		o.Email, o.OrderDate, o.TotalAmount, o.Status, o.AddressID,
	).Scan(&created.ID, &created.Email, &created.OrderDate, &created.TotalAmount, &created.Status, &created.AddressID)
	if err != nil {
		log.Error("db: failed to insert order", zap.Error(err))
		return fail(err)
	}

	pay.OrderID = created.ID
	createdPay, err := r.payments.InsertTx(ctx, tx, pay)
	if err != nil {
		log.Error("db: failed to insert payment", zap.Error(err))
		return fail(err)
	}

	createdItems := make([]OrderItem, 0, len(items))
	for _, item := range items {
		item.OrderID = created.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, discount, ordered_product_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Quantity, item.Discount, item.OrderedProductPrice).Scan(&item.ID)
		if err != nil {
			log.Error("db: failed to insert order item", zap.Error(err))
			return fail(err)
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET quantity = quantity - $1
			WHERE id = $2 AND quantity >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			log.Error("db: failed to decrement stock", zap.Error(err))
			return fail(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fail(err)
		}
		if affected == 0 {
			return fail(fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock))
		}

		createdItems = append(createdItems, item)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		log.Error("db: failed to drain cart", zap.Error(err))
		return fail(err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE carts SET total_price = 0 WHERE id = $1`, cartID); err != nil {
		log.Error("db: failed to reset cart total", zap.Error(err))
		return fail(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("db: failed to commit tx", zap.Error(err))
		return fail(err)
	}
	return created, createdItems, createdPay, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE email = $1 ORDER BY id DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Email, &o.OrderDate, &o.TotalAmount, &o.Status, &o.AddressID); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) FindItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.discount, oi.ordered_product_price,
		       p.id, p.name, p.description, p.image, p.quantity, p.price, p.discount, p.special_price, p.category_id, p.seller_id
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Discount, &item.OrderedProductPrice,
			&item.Product.ID, &item.Product.Name, &item.Product.Description, &item.Product.Image,
			&item.Product.Quantity, &item.Product.Price, &item.Product.Discount,
			&item.Product.SpecialPrice, &item.Product.CategoryID, &item.Product.SellerID,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
