// Package postgresql implements registry record persistence for PostgreSQL databases, so the
// registry can be served from a shared database instead of the embedded data set.
package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/allisson/ibancheck/internal/database"
	apperrors "github.com/allisson/ibancheck/internal/errors"
	"github.com/allisson/ibancheck/internal/iban/domain"
)

// PostgreSQLSpecRepository implements registry record persistence for PostgreSQL databases.
type PostgreSQLSpecRepository struct {
	db *sql.DB
}

// ListRecords returns every stored record ordered by country code.
func (p *PostgreSQLSpecRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	querier := database.GetTx(ctx, p.db)

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
		if err := decodeExamples(examples, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate iban specs")
	}

	return records, nil
}

// Upsert inserts record or replaces the stored record for the same country.
func (p *PostgreSQLSpecRepository) Upsert(ctx context.Context, record domain.Record) error {
	querier := database.GetTx(ctx, p.db)

	examples, err := encodeExamples(record)
	if err != nil {
		return err
	}

	query := `INSERT INTO iban_specs (country, country_name, bban_length, examples) 
			  VALUES ($1, $2, $3, $4) 
			  ON CONFLICT (country) DO UPDATE SET 
			  country_name = EXCLUDED.country_name, 
			  bban_length = EXCLUDED.bban_length, 
			  examples = EXCLUDED.examples, 
			  updated_at = NOW()`

	_, err = querier.ExecContext(
		ctx,
		query,
		record.Country,
		record.CountryName,
		record.BBANLength,
		examples,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert iban spec")
	}
	return nil
}

// Delete removes the record for country. Deleting an unknown country returns
// *domain.UnknownCountryError.
func (p *PostgreSQLSpecRepository) Delete(ctx context.Context, country string) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM iban_specs WHERE country = $1`, country)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete iban spec")
	}

	return checkAffected(result, country)
}

// NewPostgreSQLSpecRepository creates a new PostgreSQL spec repository.
func NewPostgreSQLSpecRepository(db *sql.DB) *PostgreSQLSpecRepository {
	return &PostgreSQLSpecRepository{db: db}
}

func encodeExamples(record domain.Record) ([]byte, error) {
	examples := record.Examples
	if examples == nil {
		examples = map[string]string{}
	}

	data, err := json.Marshal(examples)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal iban spec examples")
	}
	return data, nil
}

func decodeExamples(data []byte, record *domain.Record) error {
	if len(data) == 0 {
		return nil
	}

	var examples map[string]string
	if err := json.Unmarshal(data, &examples); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal iban spec examples")
	}
	if len(examples) > 0 {
		record.Examples = examples
	}
	return nil
}

func checkAffected(result sql.Result, country string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return &domain.UnknownCountryError{Country: country}
	}
	return nil
}
