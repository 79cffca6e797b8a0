// File: database/repository/knowledge/interface.go
package knowledgeRepo

import (
	"context"

	"innocurve/database"
	"innocurve/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// KnowledgeRepository provides read access for the chat lookup and full CRUD
// for the admin surface.
type KnowledgeRepository interface {
	Search(ctx context.Context, terms []string) ([]models.KnowledgeEntry, error)
	GetAll(ctx context.Context) ([]models.KnowledgeEntry, error)
	GetByID(ctx context.Context, id string) (*models.KnowledgeEntry, error)
	Create(ctx context.Context, entry models.KnowledgeEntry) (string, error)
	Update(ctx context.Context, entry models.KnowledgeEntry) error
	Delete(ctx context.Context, id string) error
}

type mongoKnowledgeRepo struct {
	coll *mongo.Collection
}

// NewMongoKnowledgeRepo constructs a new MongoDB KnowledgeRepository.
func NewMongoKnowledgeRepo() KnowledgeRepository {
	db := database.MongoClient.Database("innocurve")
	return &mongoKnowledgeRepo{
		coll: db.Collection("chatbot_responses"),
	}
}
