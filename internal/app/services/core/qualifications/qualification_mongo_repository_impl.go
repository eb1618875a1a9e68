package qualifications

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

type QualificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewQualificationMongoRepository(db *mongo.Client, dbName string) QualificationRepository {
	return &QualificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQualifications),
	}
}

func (r *QualificationMongoRepository) CreateQualification(ctx context.Context, qualification *models.Qualification) (string, error) {
	result, err := r.Collection.InsertOne(ctx, qualification)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QualificationMongoRepository) FindByID(ctx context.Context, qualificationID string) (*models.Qualification, error) {
	var qualification models.Qualification
	objectID, err := primitive.ObjectIDFromHex(qualificationID)
	if err != nil {
		return nil, nil
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&qualification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &qualification, nil
}

func (r *QualificationMongoRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.Qualification, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var qualificationList []models.Qualification
	if err := cursor.All(ctx, &qualificationList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return qualificationList, nil
}

func (r *QualificationMongoRepository) UpdateQualification(ctx context.Context, qualificationID string, updateData map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(qualificationID)
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

func (r *QualificationMongoRepository) DeleteByID(ctx context.Context, qualificationID string) error {
	objectID, err := primitive.ObjectIDFromHex(qualificationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
