package babies

import (
	"context"
	"regexp"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BabyMongoRepository struct {
	Collection *mongo.Collection
}

func NewBabyMongoRepository(db *mongo.Database) contracts.BabyRepository {
	return &BabyMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBabies),
	}
}

func (repo *BabyMongoRepository) Create(ctx context.Context, baby *models.Baby) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, baby)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *BabyMongoRepository) FindByID(ctx context.Context, babyID string) (*models.Baby, error) {
	objectID, err := primitive.ObjectIDFromHex(babyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var baby models.Baby
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&baby)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &baby, nil
}

func (repo *BabyMongoRepository) Find(ctx context.Context, query *models.BabyQuery) ([]models.Baby, int64, error) {
	filter := buildBabyFilter(query)

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(query.Skip).
		SetLimit(query.Limit)

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	babies := make([]models.Baby, 0)
	if err := cursor.All(ctx, &babies); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return babies, total, nil
}

func (repo *BabyMongoRepository) Update(ctx context.Context, baby *models.Baby) error {
	objectID, err := primitive.ObjectIDFromHex(baby.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": baby.ConvertToBsonM()}

	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *BabyMongoRepository) DeleteByID(ctx context.Context, babyID string) error {
	objectID, err := primitive.ObjectIDFromHex(babyID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func buildBabyFilter(query *models.BabyQuery) bson.M {
	filter := bson.M{}
	if query.ParentID != "" {
		filter["parentId"] = query.ParentID
	}
	if query.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
		}
	}
	return filter
}
