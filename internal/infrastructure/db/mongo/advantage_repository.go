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

const advantagesCollection = "advantages"

type AdvantageRepository struct {
	coll *mongo.Collection
}

func NewAdvantageRepository(db *mongo.Database) *AdvantageRepository {
	return &AdvantageRepository{coll: db.Collection(advantagesCollection)}
}

type mongoAdvantage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
}

func (ma *mongoAdvantage) toDomain() *domain.Advantage {
	return &domain.Advantage{
		ID:          ma.ID.Hex(),
		Title:       ma.Title,
		Description: ma.Description,
	}
}

func (r *AdvantageRepository) List(ctx context.Context) ([]*domain.Advantage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list advantages: %w", err)
	}
	defer cursor.Close(ctx)

	var advantages []*domain.Advantage
	for cursor.Next(ctx) {
		var ma mongoAdvantage
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode advantage: %w", err)
		}
		advantages = append(advantages, ma.toDomain())
	}
	return advantages, cursor.Err()
}

func (r *AdvantageRepository) FindByID(ctx context.Context, id string) (*domain.Advantage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdvantageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAdvantage
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdvantageNotFound
		}
		return nil, fmt.Errorf("find advantage: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AdvantageRepository) Create(ctx context.Context, advantage *domain.Advantage) (*domain.Advantage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAdvantage{
		Title:       advantage.Title,
		Description: advantage.Description,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert advantage: %w", err)
	}

	created := *advantage
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AdvantageRepository) Update(ctx context.Context, advantage *domain.Advantage) error {
	oid, err := primitive.ObjectIDFromHex(advantage.ID)
	if err != nil {
		return domain.ErrAdvantageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":       advantage.Title,
		"description": advantage.Description,
	}})
	if err != nil {
		return fmt.Errorf("update advantage: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdvantageNotFound
	}
	return nil
}

func (r *AdvantageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdvantageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete advantage: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdvantageNotFound
	}
	return nil
}
