package readings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type NewMysqlOpts struct {
	Db *sql.DB
}

func NewMysql(opts NewMysqlOpts) (*Mysql, error) {
	if opts.Db == nil {
		return nil, fmt.Errorf("failed to receive a mysql connection")
	}
	return &Mysql{db: opts.Db}, nil
}

// Mysql stores readings in the `moisture_readings` table created by
// the migrations in internal/database
type Mysql struct {
	db *sql.DB
}

func (m *Mysql) Append(ctx context.Context, reading Reading) error {
	if err := validateReading(reading); err != nil {
		return err
	}
	stmt, err := m.db.PrepareContext(ctx, `
	INSERT INTO moisture_readings(
		id,
		username,
		timestamp,
		moisture_value,
		latitude,
		longitude
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return storageError("prepare insert statement", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(
		ctx,
		uuid.NewString(),
		reading.Username,
		reading.Timestamp,
		reading.MoistureValue,
		toNullFloat(reading.Latitude),
		toNullFloat(reading.Longitude),
	)
	if err != nil {
		return storageError("execute insert statement", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageError("retrieve the number of rows affected", err)
	}
	if rowsAffected != 1 {
		return storageError("insert only 1 reading", fmt.Errorf("%v rows affected", rowsAffected))
	}
	return nil
}

func (m *Mysql) ListByUser(ctx context.Context, username string) ([]HistoryEntry, error) {
	stmt, err := m.db.PrepareContext(ctx, `
	SELECT
		timestamp,
		moisture_value
		FROM moisture_readings
		WHERE username = ?
		ORDER BY timestamp ASC, seq ASC`)
	if err != nil {
		return nil, storageError("prepare select statement", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, username)
	if err != nil {
		return nil, storageError("query statement", err)
	}
	defer rows.Close()

	output := []HistoryEntry{}
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.Timestamp, &entry.MoistureValue); err != nil {
			return nil, storageError("get reading row", err)
		}
		output = append(output, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate reading rows", err)
	}
	return output, nil
}

func toNullFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}
