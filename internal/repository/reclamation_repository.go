package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/reclamation-service/internal/domain"
	apperrors "github.com/spec-kit/reclamation-service/pkg/util"
)

// ReclamationUpdate carries the optional fields of a generic reclamation
// update. Nil fields are left untouched in the stored document.
type ReclamationUpdate struct {
	Subject     *string
	Description *string
	RoomNumber  *string
	Category    *string
	GuestName   *string
	Status      *domain.ReclamationStatus
}

// ReclamationRepository encapsulates reclamation persistence.
type ReclamationRepository interface {
	Create(ctx context.Context, reclamation *domain.Reclamation) error
	List(ctx context.Context) ([]domain.Reclamation, error)
	GetByID(ctx context.Context, id string) (*domain.Reclamation, error)
	UpdateFields(ctx context.Context, id string, update ReclamationUpdate) (*domain.Reclamation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReclamationStatus, assignedTo *string) (*domain.Reclamation, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type reclamationRepository struct {
	collection *mongo.Collection
}

// NewReclamationRepository instantiates repository.
func NewReclamationRepository(db *mongo.Database) ReclamationRepository {
	return &reclamationRepository{collection: db.Collection("reclamations")}
}

type reclamationDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	ReferenceKey string              `bson:"referenceKey"`
	Subject      string              `bson:"subject"`
	Description  string              `bson:"description,omitempty"`
	RoomNumber   string              `bson:"roomNumber,omitempty"`
	Category     string              `bson:"category,omitempty"`
	GuestName    string              `bson:"guestName,omitempty"`
	Status       string              `bson:"status"`
	AssignedTo   *primitive.ObjectID `bson:"assignedTo,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"`
}

func (d *reclamationDocument) toDomain() *domain.Reclamation {
	rec := &domain.Reclamation{
		ID:           d.ID.Hex(),
		ReferenceKey: d.ReferenceKey,
		Subject:      d.Subject,
		Description:  d.Description,
		RoomNumber:   d.RoomNumber,
		Category:     d.Category,
		GuestName:    d.GuestName,
		Status:       domain.ReclamationStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.AssignedTo != nil {
		hex := d.AssignedTo.Hex()
		rec.AssignedTo = &hex
	}
	return rec
}

func (r *reclamationRepository) Create(ctx context.Context, reclamation *domain.Reclamation) error {
	now := time.Now().UTC()
	doc := reclamationDocument{
		ReferenceKey: reclamation.ReferenceKey,
		Subject:      reclamation.Subject,
		Description:  reclamation.Description,
		RoomNumber:   reclamation.RoomNumber,
		Category:     reclamation.Category,
		GuestName:    reclamation.GuestName,
		Status:       string(reclamation.Status),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if reclamation.AssignedTo != nil {
		oid, err := parseObjectID(*reclamation.AssignedTo)
		if err != nil {
			return err
		}
		doc.AssignedTo = &oid
	}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return apperrors.NewInternalError(nil)
	}
	reclamation.ID = oid.Hex()
	reclamation.CreatedAt = now
	reclamation.UpdatedAt = now
	return nil
}

func (r *reclamationRepository) List(ctx context.Context) ([]domain.Reclamation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Reclamation
	for cursor.Next(ctx) {
		var doc reclamationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, *doc.toDomain())
	}
	return result, cursor.Err()
}

func (r *reclamationRepository) GetByID(ctx context.Context, id string) (*domain.Reclamation, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc reclamationDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *reclamationRepository) UpdateFields(ctx context.Context, id string, update ReclamationUpdate) (*domain.Reclamation, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Subject != nil {
		set["subject"] = *update.Subject
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.RoomNumber != nil {
		set["roomNumber"] = *update.RoomNumber
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.GuestName != nil {
		set["guestName"] = *update.GuestName
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}

	return r.findOneAndUpdate(ctx, oid, set)
}

func (r *reclamationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReclamationStatus, assignedTo *string) (*domain.Reclamation, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"status":    string(status),
		"updatedAt": time.Now().UTC(),
	}
	if assignedTo != nil {
		assigneeOID, err := parseObjectID(*assignedTo)
		if err != nil {
			return nil, err
		}
		set["assignedTo"] = assigneeOID
	}

	return r.findOneAndUpdate(ctx, oid, set)
}

func (r *reclamationRepository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, set bson.M) (*domain.Reclamation, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc reclamationDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *reclamationRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
