package migrations

import (
	"database/sql"
	"github.com/lopezator/migrator"
)

func Up(db *sql.DB) error {
	m, err := migrator.New(
		migrator.Migrations(
			&migrator.MigrationNoTx{
				Name: "Create orders table",
				Func: createOrdersTable,
			},
		),
	)
	if err != nil {
		return err
	}

	return m.Migrate(db)
}

func createOrdersTable(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE orders
(
    id            varchar(40) PRIMARY KEY,
    created_at    timestamptz,
    approved_at   timestamptz,
    delivery_date date,
    provincial    boolean     NOT NULL DEFAULT false,
    fetched_at    timestamptz NOT NULL DEFAULT now(),
    CHECK (created_at IS NOT NULL OR approved_at IS NOT NULL)
)
	`)

	return err
}
