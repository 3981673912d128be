package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"

	"speakeasy/internal/observability"
	"speakeasy/internal/store"
)

type AppointmentStore interface {
	CreateAppointment(ctx context.Context, params store.CreateAppointmentParams) (store.Appointment, error)
}

type AppointmentProcessor struct {
	store  AppointmentStore
	logger *observability.Logger
}

func New(store AppointmentStore, logger *observability.Logger) AppointmentProcessor {
	return AppointmentProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateAppointment stores the three fields verbatim and returns the generated id.
// Store errors are returned as is.
func (p *AppointmentProcessor) CreateAppointment(ctx context.Context, clientName, doctorName, appointmentTime string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "client_name", Value: clientName},
		observability.Field{Key: "doctor_name", Value: doctorName},
	)

	appointment, err := p.store.CreateAppointment(ctx, store.CreateAppointmentParams{
		ClientName: clientName,
		DoctorName: doctorName,
		Time:       appointmentTime,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create appointment", err)
		return "", err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "appointment_id", Value: appointment.ID})
	p.logger.Info(ctx, "appointment created")
	return appointment.ID, nil
}
