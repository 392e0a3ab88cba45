package repositories

import (
	"context"
	"time"

	"CarePoint/database"
	"CarePoint/httperr"
	"CarePoint/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorSummaryRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewDoctorSummaryRepository(db *mongo.Database, timeout time.Duration) *DoctorSummaryRepository {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &DoctorSummaryRepository{coll: db.Collection(database.DoctorSummaryCollection), timeout: timeout}
}

func (r *DoctorSummaryRepository) Create(ctx context.Context, summary *models.DoctorSummary) (*models.DoctorSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	summary.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, summary)
	if err != nil {
		return nil, httperr.Store(err)
	}
	summary.ID = res.InsertedID.(primitive.ObjectID)
	return summary, nil
}

func (r *DoctorSummaryRepository) ListByPatientID(ctx context.Context, patientID string) ([]models.DoctorSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx,
		bson.M{"patientId": patientID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, httperr.Store(err)
	}

	summaries := []models.DoctorSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, httperr.Store(err)
	}
	return summaries, nil
}
