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

type BillRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewBillRepository(db *mongo.Database, timeout time.Duration) *BillRepository {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &BillRepository{coll: db.Collection(database.BillCollection), timeout: timeout}
}

func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, bill)
	if err != nil {
		return nil, httperr.Store(err)
	}
	bill.ID = res.InsertedID.(primitive.ObjectID)
	return bill, nil
}

// UpdateByID merges fields into one bill and returns the updated record.
func (r *BillRepository) UpdateByID(ctx context.Context, billID string, set bson.M) (*models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(billID)
	if err != nil {
		return nil, httperr.NotFound("Bill not found")
	}

	set["updatedAt"] = time.Now().UTC()

	var updated models.Bill
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.NotFound("Bill not found")
	}
	if err != nil {
		return nil, httperr.Store(err)
	}
	return &updated, nil
}

func (r *BillRepository) DeleteByID(ctx context.Context, billID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(billID)
	if err != nil {
		return httperr.NotFound("Bill not found")
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return httperr.Store(err)
	}
	if res.DeletedCount == 0 {
		return httperr.NotFound("Bill not found")
	}
	return nil
}

// DeleteAllPaid removes every paid bill in the collection, across all
// patients. See the paid-bill sweep notes in DESIGN.md before widening or
// narrowing this filter.
func (r *BillRepository) DeleteAllPaid(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"paid": true})
	if err != nil {
		return 0, httperr.Store(err)
	}
	return res.DeletedCount, nil
}

func (r *BillRepository) ListByPatientID(ctx context.Context, patientID string) ([]models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx,
		bson.M{"patientId": patientID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, httperr.Store(err)
	}

	bills := []models.Bill{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, httperr.Store(err)
	}
	return bills, nil
}
