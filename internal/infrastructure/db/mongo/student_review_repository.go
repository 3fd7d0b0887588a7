package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

const studentReviewsCollection = "student_reviews"

type StudentReviewRepository struct {
	coll *mongo.Collection
}

func NewStudentReviewRepository(db *mongo.Database) *StudentReviewRepository {
	return &StudentReviewRepository{coll: db.Collection(studentReviewsCollection)}
}

type mongoStudentReview struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name"`
	Course string             `bson:"course"`
	Text   string             `bson:"text"`
}

func (ms *mongoStudentReview) toDomain() *domain.StudentReview {
	return &domain.StudentReview{
		ID:     ms.ID.Hex(),
		Name:   ms.Name,
		Course: ms.Course,
		Text:   ms.Text,
	}
}

func (r *StudentReviewRepository) List(ctx context.Context) ([]*domain.StudentReview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list student reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*domain.StudentReview
	for cursor.Next(ctx) {
		var ms mongoStudentReview
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode student review: %w", err)
		}
		reviews = append(reviews, ms.toDomain())
	}
	return reviews, cursor.Err()
}

func (r *StudentReviewRepository) Create(ctx context.Context, review *domain.StudentReview) (*domain.StudentReview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoStudentReview{
		Name:   review.Name,
		Course: review.Course,
		Text:   review.Text,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert student review: %w", err)
	}

	created := *review
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}
