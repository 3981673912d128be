package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"speakeasy/internal/observability"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedDriver = errors.New("unsupported document store driver")
)

// backend is implemented by each document store driver.
type backend interface {
	insertAppointment(ctx context.Context, params CreateAppointmentParams) (string, error)
	getAppointmentByID(ctx context.Context, id string) (Appointment, error)
	close(ctx context.Context) error
}

type connectFunc func(ctx context.Context, creds Credentials) (backend, error)

// Config selects the driver and where its credentials live.
type Config struct {
	Driver          string
	CredentialsFile string
	Timeout         time.Duration
}

// Store connects to the document store on first use and reuses that
// connection for the life of the process. A failed connection attempt is
// not cached; the next operation tries again.
type Store struct {
	config  Config
	connect connectFunc
	logger  *observability.Logger

	mu      sync.Mutex
	backend backend
}

func New(config Config, logger *observability.Logger) (*Store, error) {
	var connect connectFunc
	switch config.Driver {
	case DriverMongo, "":
		connect = connectMongo
	case DriverPostgres:
		connect = connectPostgres
	default:
		return nil, fmt.Errorf("%q: %w", config.Driver, ErrUnsupportedDriver)
	}
	return &Store{config: config, connect: connect, logger: logger}, nil
}

// open returns the shared backend, connecting on the first call.
func (s *Store) open(ctx context.Context) (backend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		return s.backend, nil
	}

	creds, err := LoadCredentials(s.config.CredentialsFile)
	if err != nil {
		s.logger.Error(ctx, "failed to load document store credentials", err)
		return nil, err
	}

	// Detached from the request so a cancelled first caller cannot poison the connection.
	connectCtx, cancel := s.withTimeout(context.WithoutCancel(ctx))
	defer cancel()

	b, err := s.connect(connectCtx, creds)
	if err != nil {
		s.logger.Error(ctx, "failed to connect to document store", err)
		return nil, err
	}

	s.logger.Info(ctx, fmt.Sprintf("connected to %s document store", s.driverName()))
	s.backend = b
	return b, nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}

func (s *Store) driverName() string {
	if s.config.Driver == "" {
		return DriverMongo
	}
	return s.config.Driver
}

// Close disconnects the backend if one was opened.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return nil
	}
	err := s.backend.close(ctx)
	s.backend = nil
	return err
}
