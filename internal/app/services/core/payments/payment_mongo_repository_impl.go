package payments

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

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PaymentMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var paymentList []models.Payment
	if err := cursor.All(ctx, &paymentList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return paymentList, nil
}
