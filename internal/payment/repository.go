package payment

import (
	"context"
	"database/sql"
)

type Repository interface {
	// InsertTx runs inside the caller's transaction; checkout writes
	// the payment and the order atomically.
	InsertTx(ctx context.Context, tx *sql.Tx, p Payment) (Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) (*Payment, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const paymentColumns = `id, order_id, payment_method, pg_name, pg_payment_id, pg_status, pg_response_message`

func (r *repository) InsertTx(ctx context.Context, tx *sql.Tx, p Payment) (Payment, error) {
	var created Payment
	err := tx.QueryRowContext(ctx, `
		INSERT INTO payments (order_id, payment_method, pg_name, pg_payment_id, pg_status, pg_response_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+paymentColumns,
		p.OrderID, p.PaymentMethod, p.PgName, p.PgPaymentID, p.PgStatus, p.PgResponseMessage,
	).Scan(
		&created.ID, &created.OrderID, &created.PaymentMethod,
		&created.PgName, &created.PgPaymentID, &created.PgStatus, &created.PgResponseMessage,
	)
	return created, err
}

func (r *repository) FindByOrderID(ctx context.Context, orderID int64) (*Payment, error) {
	var p Payment
	err := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID,
	).Scan(
		&p.ID, &p.OrderID, &p.PaymentMethod,
		&p.PgName, &p.PgPaymentID, &p.PgStatus, &p.PgResponseMessage,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
