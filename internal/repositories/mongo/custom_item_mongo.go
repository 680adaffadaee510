package mongo

import (
	"context"
	"fmt"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const customItemCollection = "custom_items"

// customItemDoc mirrors the caregiver-authored documents. Score is decoded
// loosely because caregiver tooling has stored it as several numeric types
// (and occasionally as text); anything non-numeric falls back to the
// catalog default.
type customItemDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	SubjectID       string             `bson:"subject_id"`
	Title           string             `bson:"question"`
	Type            string             `bson:"type"`
	Score           interface{}        `bson:"score"`
	Options         []string           `bson:"options"`
	ExpectedWords   []string           `bson:"expectedWords"`
	ImageURL        string             `bson:"imageUrl"`
	ExpectedAnswer  *string            `bson:"expectedAnswer"`
	AcceptedAnswers []string           `bson:"acceptedAnswers"`
	CorrectOption   *string            `bson:"correctOption"`
}

type customItemRepository struct {
	coll *mongo.Collection
}

func NewCustomItemRepository(db *mongo.Database) repositories.CustomItemRepository {
	return &customItemRepository{coll: db.Collection(customItemCollection)}
}

func (r *customItemRepository) FindBySubject(ctx context.Context, subjectID string) ([]models.ItemDefinition, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"subject_id": subjectID})
	if err != nil {
		return nil, fmt.Errorf("failed to query custom items: %w", err)
	}
	defer cursor.Close(ctx)

	var defs []models.ItemDefinition
	for cursor.Next(ctx) {
		var doc customItemDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode custom item: %w", err)
		}
		defs = append(defs, models.ItemDefinition{
			ID:              doc.ID.Hex(),
			Title:           doc.Title,
			Type:            doc.Type,
			Score:           coerceScore(doc.Score),
			Options:         doc.Options,
			ExpectedWords:   doc.ExpectedWords,
			ImageURL:        doc.ImageURL,
			ExpectedAnswer:  doc.ExpectedAnswer,
			AcceptedAnswers: doc.AcceptedAnswers,
			CorrectOption:   doc.CorrectOption,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read custom items: %w", err)
	}
	return defs, nil
}

func coerceScore(raw interface{}) *int {
	var score int
	switch v := raw.(type) {
	case int32:
		score = int(v)
	case int64:
		score = int(v)
	case int:
		score = v
	case float64:
		score = int(v)
	default:
		return nil
	}
	return &score
}
