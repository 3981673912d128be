package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

type postgresBackend struct {
	db *sqlx.DB
}

const sqlCreateAppointmentsTable = `
CREATE TABLE IF NOT EXISTS appointments (
    id          UUID PRIMARY KEY,
    client_name TEXT NOT NULL,
    doctor_name TEXT NOT NULL,
    time        TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func connectPostgres(ctx context.Context, creds Credentials) (backend, error) {
	db, err := sqlx.Open("pgx", creds.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqlCreateAppointmentsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create appointments table: %w", err)
	}
	return &postgresBackend{db: db}, nil
}

const sqlInsertAppointment = `
INSERT INTO appointments (id, client_name, doctor_name, time)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (p *postgresBackend) insertAppointment(ctx context.Context, params CreateAppointmentParams) (string, error) {
	var id uuid.UUID
	err := p.db.GetContext(ctx, &id, sqlInsertAppointment, uuid.New(), params.ClientName, params.DoctorName, params.Time)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

const sqlGetAppointmentByID = `
SELECT id::text AS id, client_name, doctor_name, time
FROM appointments
WHERE id = $1`

func (p *postgresBackend) getAppointmentByID(ctx context.Context, id string) (Appointment, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}

	var appointment Appointment
	err = p.db.GetContext(ctx, &appointment, sqlGetAppointmentByID, parsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

func (p *postgresBackend) close(context.Context) error {
	return p.db.Close()
}
