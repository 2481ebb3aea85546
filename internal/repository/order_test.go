package repository

import (
	"context"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shipdesk/internal/entity"
	inerr "shipdesk/internal/errors"
	"testing"
	"time"
)

const upsertQuery = `
INSERT INTO orders (id, created_at, approved_at, delivery_date, provincial)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
    SET created_at    = excluded.created_at,
        approved_at   = excluded.approved_at,
        delivery_date = excluded.delivery_date,
        provincial    = excluded.provincial,
        fetched_at    = now()
`

const findAllQuery = `
SELECT id, created_at, approved_at, delivery_date, provincial
FROM orders
ORDER BY created_at
`

func TestOrder_Upsert(t *testing.T) {
	var (
		ctx          = context.Background()
		createdAt    = time.Date(2023, 4, 3, 1, 0, 0, 0, time.UTC)
		approvedAt   = time.Date(2023, 4, 3, 2, 30, 0, 0, time.UTC)
		deliveryDate = time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC)
	)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	r := NewOrder(db)

	mock.ExpectExec(upsertQuery).
		WithArgs("10001", createdAt, approvedAt, deliveryDate, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertQuery).
		WithArgs("10002", createdAt, nil, nil, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertQuery).
		WithArgs("10003", nil, nil, nil, false).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation})

	assert.NoError(t, r.Upsert(ctx, entity.Order{
		ID:           "10001",
		CreatedAt:    createdAt,
		ApprovedAt:   &approvedAt,
		DeliveryDate: &entity.Date{Year: 2023, Month: time.April, Day: 5},
		Provincial:   true,
	}), "order with all fields is saved")

	assert.NoError(t, r.Upsert(ctx, entity.Order{
		ID:        "10002",
		CreatedAt: createdAt,
	}), "optional fields are stored as NULL")

	var malformed *inerr.MalformedOrderError
	assert.ErrorAs(
		t,
		r.Upsert(ctx, entity.Order{ID: "10003"}),
		&malformed,
		"check violation surfaces as a malformed order",
	)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrder_FindAll(t *testing.T) {
	var (
		ctx          = context.Background()
		createdAt    = time.Date(2023, 4, 3, 1, 0, 0, 0, time.UTC)
		approvedAt   = time.Date(2023, 4, 3, 2, 30, 0, 0, time.UTC)
		deliveryDate = time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC)
		want         = []entity.Order{
			{
				ID:           "10001",
				CreatedAt:    createdAt,
				ApprovedAt:   &approvedAt,
				DeliveryDate: &entity.Date{Year: 2023, Month: time.April, Day: 5},
				Provincial:   true,
			},
			{
				ID:        "10002",
				CreatedAt: createdAt,
			},
		}
	)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	r := NewOrder(db)

	rows := sqlmock.NewRows([]string{"id", "created_at", "approved_at", "delivery_date", "provincial"}).
		AddRow("10001", createdAt, approvedAt, deliveryDate, true).
		AddRow("10002", createdAt, nil, nil, false)
	mock.ExpectQuery(findAllQuery).WillReturnRows(rows)
	mock.ExpectQuery(findAllQuery).WillReturnError(errors.New(""))

	orders, err := r.FindAll(ctx)
	assert.NoError(t, err, "stored orders are returned")
	assert.Equal(t, want, orders, "stored orders are returned")

	_, err = r.FindAll(ctx)
	assert.Error(t, err, "query error is propagated")

	assert.NoError(t, mock.ExpectationsWereMet())
}
