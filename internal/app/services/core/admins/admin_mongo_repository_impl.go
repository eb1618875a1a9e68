package admins

import (
	"context"

	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmins),
	}
}

func (r *AdminMongoRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (string, error) {
	result, err := r.Collection.InsertOne(ctx, admin)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AdminMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}

func (r *AdminMongoRepository) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	var admin models.Admin
	objectID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, nil
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}
