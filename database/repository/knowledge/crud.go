// File: database/repository/knowledge/crud.go
package knowledgeRepo

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"innocurve/models"
)

// Search returns every entry whose question contains any term as a
// case-insensitive substring, or whose keywords set contains any term. This
// is a recall-oriented filter; the caller scores the candidates.
func (r *mongoKnowledgeRepo) Search(ctx context.Context, terms []string) ([]models.KnowledgeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var clauses []bson.M
	for _, term := range terms {
		if term == "" {
			continue
		}
		quoted := regexp.QuoteMeta(term)
		clauses = append(clauses,
			bson.M{"question": primitive.Regex{Pattern: quoted, Options: "i"}},
			bson.M{"keywords": primitive.Regex{Pattern: "^" + quoted + "$", Options: "i"}},
		)
	}
	if len(clauses) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"$or": clauses})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.KnowledgeEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Normalize()
	}
	return entries, nil
}

// GetAll returns every entry, used for the fallback grounding context and the
// admin listing.
func (r *mongoKnowledgeRepo) GetAll(ctx context.Context) ([]models.KnowledgeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.KnowledgeEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Normalize()
	}
	return entries, nil
}

func (r *mongoKnowledgeRepo) GetByID(ctx context.Context, id string) (*models.KnowledgeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.KnowledgeEntry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry); err != nil {
		return nil, err
	}
	entry.Normalize()
	return &entry, nil
}

func (r *mongoKnowledgeRepo) Create(ctx context.Context, entry models.KnowledgeEntry) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *mongoKnowledgeRepo) Update(ctx context.Context, entry models.KnowledgeEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"question": entry.Question,
		"answer":   entry.Answer,
		"keywords": entry.Keywords,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": entry.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoKnowledgeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
