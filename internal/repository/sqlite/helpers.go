package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"astroloh/internal/domain"
)

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanChart reads one chart row. The JSON blob is the document of record;
// the indexed columns override it so renames done via UPDATE stay authoritative.
func scanChart(s scanner) (*domain.Chart, error) {
	var (
		id, name             string
		birthDate            time.Time
		data                 []byte
		createdAt, updatedAt time.Time
	)

	if err := s.Scan(&id, &name, &birthDate, &data, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	chart := &domain.Chart{}
	if err := json.Unmarshal(data, chart); err != nil {
		return nil, err
	}

	chart.ID = id
	chart.Name = name
	chart.BirthDate = birthDate
	chart.CreatedAt = createdAt
	chart.UpdatedAt = updatedAt
	return chart, nil
}

func collectCharts(rows *sql.Rows) ([]domain.Chart, error) {
	charts := make([]domain.Chart, 0)
	for rows.Next() {
		chart, err := scanChart(rows)
		if err != nil {
			return nil, err
		}
		charts = append(charts, *chart)
	}
	return charts, rows.Err()
}
