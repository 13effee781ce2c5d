package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

const collectionDoctorProfiles = "doctor_profiles"

type DoctorProfileRepository struct {
	col *mongo.Collection
}

func NewDoctorProfileRepository(db *mongo.Database) *DoctorProfileRepository {
	return &DoctorProfileRepository{col: db.Collection(collectionDoctorProfiles)}
}

func (r *DoctorProfileRepository) Create(ctx context.Context, d *domain.DoctorProfile) (*domain.DoctorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	d.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert doctor profile: %w", err)
	}
	return d, nil
}

func (r *DoctorProfileRepository) FindByID(ctx context.Context, id string) (*domain.DoctorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.DoctorProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDoctorProfileNotFound
		}
		return nil, fmt.Errorf("find doctor profile: %w", err)
	}
	return &d, nil
}

func (r *DoctorProfileRepository) Update(ctx context.Context, d *domain.DoctorProfile) (*domain.DoctorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return nil, fmt.Errorf("update doctor profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDoctorProfileNotFound
	}
	return d, nil
}

func (r *DoctorProfileRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete doctor profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDoctorProfileNotFound
	}
	return nil
}

func (r *DoctorProfileRepository) List(ctx context.Context) ([]domain.DoctorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctor profiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.DoctorProfile
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode doctor profiles: %w", err)
	}
	return out, nil
}
