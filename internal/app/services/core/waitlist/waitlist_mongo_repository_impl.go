package waitlist

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WaitlistMongoRepository struct {
	Collection *mongo.Collection
}

func NewWaitlistMongoRepository(db *mongo.Client, dbName string) WaitlistRepository {
	return &WaitlistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWaitlist),
	}
}

func (r *WaitlistMongoRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (string, error) {
	result, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *WaitlistMongoRepository) FindByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &entry, nil
}

func (r *WaitlistMongoRepository) FindAll(ctx context.Context) ([]models.WaitlistEntry, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.WaitlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}
