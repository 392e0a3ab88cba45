package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"CarePoint/cache"
	"CarePoint/database"
	"CarePoint/httperr"
	"CarePoint/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultStoreTimeout = 5 * time.Second
	patientCacheExpiry  = 15 * time.Minute
)

type PatientRepository struct {
	coll    *mongo.Collection
	cache   *cache.Cache
	timeout time.Duration
}

func NewPatientRepository(db *mongo.Database, cache *cache.Cache, timeout time.Duration) *PatientRepository {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &PatientRepository{coll: db.Collection(database.PatientCollection), cache: cache, timeout: timeout}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, httperr.Conflict("Patient ID exists")
		}
		return nil, httperr.Store(err)
	}
	patient.ID = res.InsertedID.(primitive.ObjectID)

	r.invalidate(ctx, patient.PatientID)
	return patient, nil
}

func (r *PatientRepository) FindByPatientID(ctx context.Context, patientID string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cacheKey := r.cacheKey(patientID)
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, cacheKey)
		if err == nil {
			var patient models.Patient
			if err := json.Unmarshal([]byte(cached), &patient); err == nil {
				return &patient, nil
			}
		} else if err != redis.Nil {
			log.Printf("Failed to get patient from cache: %v", err)
		}
	}

	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"patientId": patientID}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.NotFound("Patient not found")
	}
	if err != nil {
		return nil, httperr.Store(err)
	}

	if r.cache != nil {
		if payload, err := json.Marshal(patient); err == nil {
			if err := r.cache.Set(ctx, cacheKey, payload, patientCacheExpiry); err != nil {
				log.Printf("Failed to set patient in cache: %v", err)
			}
		}
	}
	return &patient, nil
}

// UpdateByPatientID merges the given fields into the patient document and
// returns the updated record, mirroring a findOneAndUpdate with the
// "return new" option.
func (r *PatientRepository) UpdateByPatientID(ctx context.Context, patientID string, set bson.M) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()

	var updated models.Patient
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"patientId": patientID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, httperr.NotFound("Patient not found")
	}
	if err != nil {
		return nil, httperr.Store(err)
	}

	r.invalidate(ctx, patientID)
	return &updated, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, httperr.Store(err)
	}

	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, httperr.Store(err)
	}
	return patients, nil
}

func (r *PatientRepository) invalidate(ctx context.Context, patientID string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, r.cacheKey(patientID)); err != nil {
		log.Printf("Failed to delete patient cache: %v", err)
	}
}

func (r *PatientRepository) cacheKey(patientID string) string {
	return fmt.Sprintf("patient_cache:%s", patientID)
}
