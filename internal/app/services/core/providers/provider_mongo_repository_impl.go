package providers

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) ProviderRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func (r *ProviderMongoRepository) CreateProvider(ctx context.Context, provider *models.Provider) (string, error) {
	result, err := r.Collection.InsertOne(ctx, provider)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProviderMongoRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	var provider models.Provider
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return nil, nil
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (r *ProviderMongoRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var providerList []models.Provider
	if err := cursor.All(ctx, &providerList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providerList, nil
}

func (r *ProviderMongoRepository) UpdateProvider(ctx context.Context, providerID string, updateData map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": updateData}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) DeleteByID(ctx context.Context, providerID string) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
