package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

const teachersCollection = "teachers"

type TeacherRepository struct {
	coll *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{coll: db.Collection(teachersCollection)}
}

type mongoTeacher struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Image string             `bson:"image"`
	Bio   string             `bson:"bio,omitempty"`
}

func (mt *mongoTeacher) toDomain() *domain.Teacher {
	return &domain.Teacher{
		ID:    mt.ID.Hex(),
		Name:  mt.Name,
		Image: mt.Image,
		Bio:   mt.Bio,
	}
}

func (r *TeacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer cursor.Close(ctx)

	var teachers []*domain.Teacher
	for cursor.Next(ctx) {
		var mt mongoTeacher
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode teacher: %w", err)
		}
		teachers = append(teachers, mt.toDomain())
	}
	return teachers, cursor.Err()
}

func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*domain.Teacher, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTeacherNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTeacher
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TeacherRepository) Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTeacher{
		Name:  teacher.Name,
		Image: teacher.Image,
		Bio:   teacher.Bio,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert teacher: %w", err)
	}

	created := *teacher
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	oid, err := primitive.ObjectIDFromHex(teacher.ID)
	if err != nil {
		return domain.ErrTeacherNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":  teacher.Name,
		"image": teacher.Image,
		"bio":   teacher.Bio,
	}})
	if err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTeacherNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}
