package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"shipdesk/internal/entity"
	inerr "shipdesk/internal/errors"
	"time"
)

type Order struct {
	db *sql.DB
}

func NewOrder(db *sql.DB) *Order {
	return &Order{db: db}
}

// Upsert saves an order fetched from the order API. Orders are keyed by
// their upstream identifier; a re-fetched order overwrites the stored
// row so the dashboard reflects the latest poll. An order the database
// rejects for missing timestamps is reported as MalformedOrderError.
func (r *Order) Upsert(ctx context.Context, o entity.Order) error {
	var createdAt, approvedAt, deliveryDate sql.NullTime
	if !o.CreatedAt.IsZero() {
		createdAt = sql.NullTime{Time: o.CreatedAt, Valid: true}
	}
	if o.ApprovedAt != nil {
		approvedAt = sql.NullTime{Time: *o.ApprovedAt, Valid: true}
	}
	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		deliveryDate = sql.NullTime{
			Time:  time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC),
			Valid: true,
		}
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO orders (id, created_at, approved_at, delivery_date, provincial)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
    SET created_at    = excluded.created_at,
        approved_at   = excluded.approved_at,
        delivery_date = excluded.delivery_date,
        provincial    = excluded.provincial,
        fetched_at    = now()
	`, o.ID, createdAt, approvedAt, deliveryDate, o.Provincial)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return &inerr.MalformedOrderError{OrderID: o.ID}
	}

	return err
}

// FindAll returns every stored order, oldest first.
func (r *Order) FindAll(ctx context.Context) (orders []entity.Order, err error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, created_at, approved_at, delivery_date, provincial
FROM orders
ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}

	defer func(rows *sql.Rows) {
		err = rows.Close()
	}(rows)

	for rows.Next() {
		var (
			order                             entity.Order
			createdAt, approvedAt, deliveryAt sql.NullTime
		)
		if err := rows.Scan(&order.ID, &createdAt, &approvedAt, &deliveryAt, &order.Provincial); err != nil {
			continue
		}

		if createdAt.Valid {
			order.CreatedAt = createdAt.Time.UTC()
		}
		if approvedAt.Valid {
			t := approvedAt.Time.UTC()
			order.ApprovedAt = &t
		}
		if deliveryAt.Valid {
			d := entity.DateOf(deliveryAt.Time, time.UTC)
			order.DeliveryDate = &d
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, err
}
