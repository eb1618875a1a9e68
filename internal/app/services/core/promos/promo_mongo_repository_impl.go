package promos

import (
	"context"
	"time"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PromoMongoRepository struct {
	Collection *mongo.Collection
}

func NewPromoMongoRepository(db *mongo.Client, dbName string) PromoRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionPromoCodes)

	// Codes are unique match keys; the index makes the store reject
	// duplicates instead of leaving lookup order to decide which record wins.
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	collection.Indexes().CreateOne(ctx, indexModel)

	return &PromoMongoRepository{
		Collection: collection,
	}
}

func (r *PromoMongoRepository) CreatePromoCode(ctx context.Context, promo *models.PromoCode) (string, error) {
	result, err := r.Collection.InsertOne(ctx, promo)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrPromoCodeAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PromoMongoRepository) FindByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := r.Collection.FindOne(ctx, bson.M{"code": code}).Decode(&promo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &promo, nil
}

func (r *PromoMongoRepository) FindActiveByCode(ctx context.Context, code string, now time.Time) (*models.PromoCode, error) {
	var promo models.PromoCode
	filter := bson.M{
		"code":       code,
		"isActive":   true,
		"expiryDate": bson.M{"$gte": now},
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&promo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &promo, nil
}

func (r *PromoMongoRepository) FindAll(ctx context.Context) ([]models.PromoCode, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var promoCodes []models.PromoCode
	if err := cursor.All(ctx, &promoCodes); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return promoCodes, nil
}

func (r *PromoMongoRepository) DeleteByCode(ctx context.Context, code string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrPromoCodeNotExist(nil)
	}
	return nil
}
