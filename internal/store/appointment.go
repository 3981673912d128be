package store

import (
	"context"

	"speakeasy/internal/observability"
)

const AppointmentsCollection = "appointments"

// Appointment is a stored appointment. Fields are kept exactly as submitted;
// Time in particular is never parsed.
type Appointment struct {
	ID         string `json:"id" db:"id"`
	ClientName string `json:"client_name" db:"client_name"`
	DoctorName string `json:"doctor_name" db:"doctor_name"`
	Time       string `json:"time" db:"time"`
}

type CreateAppointmentParams struct {
	ClientName string
	DoctorName string
	Time       string
}

// CreateAppointment appends a new appointment and returns it with its generated id.
func (s *Store) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (Appointment, error) {
	b, err := s.open(ctx)
	if err != nil {
		return Appointment{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := b.insertAppointment(ctx, params)
	if err != nil {
		s.logger.Error(ctx, "failed to insert appointment", err)
		return Appointment{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "appointment_id", Value: id})
	s.logger.Info(ctx, "appointment inserted")

	return Appointment{
		ID:         id,
		ClientName: params.ClientName,
		DoctorName: params.DoctorName,
		Time:       params.Time,
	}, nil
}

// GetAppointmentByID reads back a stored appointment. Returns ErrNotFound if absent.
func (s *Store) GetAppointmentByID(ctx context.Context, id string) (Appointment, error) {
	b, err := s.open(ctx)
	if err != nil {
		return Appointment{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return b.getAppointmentByID(ctx, id)
}
