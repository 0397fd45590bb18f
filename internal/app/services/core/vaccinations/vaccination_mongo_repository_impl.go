package vaccinations

import (
	"context"
	"time"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VaccinationMongoRepository struct {
	Collection *mongo.Collection
}

func NewVaccinationMongoRepository(db *mongo.Database) contracts.VaccinationRepository {
	return &VaccinationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionVaccinations),
	}
}

func (repo *VaccinationMongoRepository) Create(ctx context.Context, vaccination *models.Vaccination) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, vaccination)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *VaccinationMongoRepository) FindByID(ctx context.Context, vaccinationID string) (*models.Vaccination, error) {
	objectID, err := primitive.ObjectIDFromHex(vaccinationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var vaccination models.Vaccination
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vaccination)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &vaccination, nil
}

func (repo *VaccinationMongoRepository) FindByBabyID(ctx context.Context, babyID string) ([]models.Vaccination, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "dateAdministered", Value: -1}})
	return repo.find(ctx, bson.M{"babyId": babyID}, findOptions)
}

// FindDueBetween returns vaccinations whose next dose falls in [from, to],
// earliest first.
func (repo *VaccinationMongoRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]models.Vaccination, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "nextDueDate", Value: 1}})
	return repo.find(ctx, dueBetweenFilter(from, to), findOptions)
}

func (repo *VaccinationMongoRepository) Update(ctx context.Context, vaccination *models.Vaccination) error {
	objectID, err := primitive.ObjectIDFromHex(vaccination.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": vaccination.ConvertToBsonM()}

	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *VaccinationMongoRepository) DeleteByBabyID(ctx context.Context, babyID string) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"babyId": babyID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (repo *VaccinationMongoRepository) CountByVaccineType(ctx context.Context) ([]models.VaccinationStat, error) {
	cursor, err := repo.Collection.Aggregate(ctx, vaccineTypeStatsPipeline())
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	stats := make([]models.VaccinationStat, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return stats, nil
}

func (repo *VaccinationMongoRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Vaccination, error) {
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	vaccinations := make([]models.Vaccination, 0)
	if err := cursor.All(ctx, &vaccinations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return vaccinations, nil
}

func dueBetweenFilter(from, to time.Time) bson.M {
	return bson.M{"nextDueDate": bson.M{"$gte": from, "$lte": to}}
}

func vaccineTypeStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":              "$vaccineType",
			"count":            bson.M{"$sum": 1},
			"lastAdministered": bson.M{"$max": "$dateAdministered"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}
