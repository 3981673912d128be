package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type appointmentDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ClientName string             `bson:"client_name"`
	DoctorName string             `bson:"doctor_name"`
	Time       string             `bson:"time"`
}

type mongoBackend struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func connectMongo(ctx context.Context, creds Credentials) (backend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(creds.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return newMongoBackend(client, creds.Database), nil
}

func newMongoBackend(client *mongo.Client, database string) *mongoBackend {
	return &mongoBackend{
		client:     client,
		collection: client.Database(database).Collection(AppointmentsCollection),
	}
}

func (m *mongoBackend) insertAppointment(ctx context.Context, params CreateAppointmentParams) (string, error) {
	res, err := m.collection.InsertOne(ctx, appointmentDocument{
		ClientName: params.ClientName,
		DoctorName: params.DoctorName,
		Time:       params.Time,
	})
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (m *mongoBackend) getAppointmentByID(ctx context.Context, id string) (Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}

	var doc appointmentDocument
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, fmt.Errorf("failed to find appointment: %w", err)
	}

	return Appointment{
		ID:         doc.ID.Hex(),
		ClientName: doc.ClientName,
		DoctorName: doc.DoctorName,
		Time:       doc.Time,
	}, nil
}

func (m *mongoBackend) close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
