// Package mysql implements registry record persistence for MySQL databases.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/allisson/ibancheck/internal/database"
	apperrors "github.com/allisson/ibancheck/internal/errors"
	"github.com/allisson/ibancheck/internal/iban/domain"
)

// MySQLSpecRepository implements registry record persistence for MySQL databases.
type MySQLSpecRepository struct {
	db *sql.DB
}

// ListRecords returns every stored record ordered by country code.
func (m *MySQLSpecRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT country, country_name, bban_length, examples 
			  FROM iban_specs 
			  ORDER BY country ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list iban specs")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var record domain.Record
		var examples []byte

		if err := rows.Scan(&record.Country, &record.CountryName, &record.BBANLength, &examples); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan iban spec")
		}

		if len(examples) > 0 {
			var decoded map[string]string
			if err := json.Unmarshal(examples, &decoded); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal iban spec examples")
			}
			if len(decoded) > 0 {
				record.Examples = decoded
			}
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate iban specs")
	}

	return records, nil
}

// Upsert inserts record or replaces the stored record for the same country.
func (m *MySQLSpecRepository) Upsert(ctx context.Context, record domain.Record) error {
	querier := database.GetTx(ctx, m.db)

	examples := record.Examples
	if examples == nil {
		examples = map[string]string{}
	}
	data, err := json.Marshal(examples)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal iban spec examples")
	}

	query := `INSERT INTO iban_specs (country, country_name, bban_length, examples) 
			  VALUES (?, ?, ?, ?) 
			  ON DUPLICATE KEY UPDATE 
			  country_name = VALUES(country_name), 
			  bban_length = VALUES(bban_length), 
			  examples = VALUES(examples), 
			  updated_at = CURRENT_TIMESTAMP(6)`

	_, err = querier.ExecContext(
		ctx,
		query,
		record.Country,
		record.CountryName,
		record.BBANLength,
		data,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert iban spec")
	}
	return nil
}

// Delete removes the record for country. Deleting an unknown country returns
// *domain.UnknownCountryError.
func (m *MySQLSpecRepository) Delete(ctx context.Context, country string) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM iban_specs WHERE country = ?`, country)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete iban spec")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return &domain.UnknownCountryError{Country: country}
	}
	return nil
}

// NewMySQLSpecRepository creates a new MySQL spec repository.
func NewMySQLSpecRepository(db *sql.DB) *MySQLSpecRepository {
	return &MySQLSpecRepository{db: db}
}
