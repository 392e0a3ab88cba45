package database

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PatientCollection       = "patients"
	BillCollection          = "bills"
	DoctorSummaryCollection = "doctorsummaries"
)

// Connect opens the MongoDB client and returns it together with the
// database handle. The handle is passed down explicitly; there is no
// package-level collection registry.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	log.Println("MongoDB connection initialized successfully.")
	return client, client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the application relies on: the unique
// patientId business key and the patientId+createdAt listing order for
// bills and doctor summaries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(PatientCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "patientId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create patient index")
	}

	for _, coll := range []string{BillCollection, DoctorSummaryCollection} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create %s index", coll)
		}
	}
	return nil
}

// TxRunner executes a function inside a single MongoDB session
// transaction. Repository calls made with the callback context join the
// transaction, so a multi-step sequence either commits or rolls back as
// one unit.
type TxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{client: client}
}

func (r *TxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
