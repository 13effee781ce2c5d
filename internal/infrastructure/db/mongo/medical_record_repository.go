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

const collectionMedicalRecords = "medical_records"

type MedicalRecordRepository struct {
	col *mongo.Collection
}

func NewMedicalRecordRepository(db *mongo.Database) *MedicalRecordRepository {
	return &MedicalRecordRepository{col: db.Collection(collectionMedicalRecords)}
}

func (r *MedicalRecordRepository) Create(ctx context.Context, m *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("insert medical record: %w", err)
	}
	return m, nil
}

func (r *MedicalRecordRepository) FindByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.MedicalRecord
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMedicalRecordNotFound
		}
		return nil, fmt.Errorf("find medical record: %w", err)
	}
	return &m, nil
}

func (r *MedicalRecordRepository) Update(ctx context.Context, m *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return nil, fmt.Errorf("update medical record: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMedicalRecordNotFound
	}
	return m, nil
}

func (r *MedicalRecordRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete medical record: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMedicalRecordNotFound
	}
	return nil
}

func (r *MedicalRecordRepository) List(ctx context.Context) ([]domain.MedicalRecord, error) {
	return r.find(ctx, bson.M{})
}

func (r *MedicalRecordRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error) {
	return r.find(ctx, bson.M{"patient_id": patientID})
}

func (r *MedicalRecordRepository) find(ctx context.Context, filter bson.M) ([]domain.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.MedicalRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode medical records: %w", err)
	}
	return out, nil
}
