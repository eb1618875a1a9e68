package images

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ImageMongoRepository struct {
	Collection *mongo.Collection
}

func NewImageMongoRepository(db *mongo.Client, dbName string) ImageRepository {
	return &ImageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionImageSets),
	}
}

func (r *ImageMongoRepository) CreateImageSet(ctx context.Context, imageSet *models.ImageSet) (string, error) {
	result, err := r.Collection.InsertOne(ctx, imageSet)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
