package ncd_patients

import (
	"context"
	"regexp"
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

const millisecondsPerYear = 365.25 * 24 * 60 * 60 * 1000

type NCDPatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewNCDPatientMongoRepository(db *mongo.Database) contracts.NCDPatientRepository {
	return &NCDPatientMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionNCDPatients),
	}
}

func (repo *NCDPatientMongoRepository) Create(ctx context.Context, patient *models.NCDPatient) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrNCDPatientAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *NCDPatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.NCDPatient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{"_id": objectID}}}}
	pipeline = append(pipeline, userLookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$limit", Value: 1}})

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var patients []models.NCDPatient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(patients) == 0 {
		return nil, nil
	}
	return &patients[0], nil
}

type ncdPatientPage struct {
	Items []models.NCDPatient `bson:"items"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

func (repo *NCDPatientMongoRepository) Find(ctx context.Context, query *models.NCDPatientQuery) ([]models.NCDPatient, int64, error) {
	cursor, err := repo.Collection.Aggregate(ctx, buildFindPipeline(query))
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var pages []ncdPatientPage
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	patients := make([]models.NCDPatient, 0)
	var total int64
	if len(pages) > 0 {
		patients = append(patients, pages[0].Items...)
		if len(pages[0].Total) > 0 {
			total = pages[0].Total[0].Count
		}
	}
	return patients, total, nil
}

func (repo *NCDPatientMongoRepository) Update(ctx context.Context, patient *models.NCDPatient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": patient.ConvertToBsonM()}

	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *NCDPatientMongoRepository) CountByNCDType(ctx context.Context) ([]models.NCDTypeCount, error) {
	cursor, err := repo.Collection.Aggregate(ctx, ncdTypeStatsPipeline())
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	counts := make([]models.NCDTypeCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return counts, nil
}

func (repo *NCDPatientMongoRepository) CountByAgeGroup(ctx context.Context, now time.Time) ([]models.AgeGroupCount, error) {
	cursor, err := repo.Collection.Aggregate(ctx, ageGroupStatsPipeline(now))
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	counts := make([]models.AgeGroupCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return counts, nil
}

// userLookupStages joins the owning user; userId is stored as a hex string.
func userLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"userObjectId": bson.M{"$toObjectId": "$userId"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionUsers,
			"localField":   "userObjectId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{"userObjectId": 0, "user.password": 0}}},
	}
}

func buildFindPipeline(query *models.NCDPatientQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if query.UserID != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"userId": query.UserID}}})
	}
	pipeline = append(pipeline, userLookupStages()...)

	if query.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Search), Options: "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"user.firstName": pattern},
			bson.M{"user.lastName": pattern},
			bson.M{"user.email": pattern},
		}}}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$facet", Value: bson.M{
		"items": bson.A{
			bson.M{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
			bson.M{"$skip": query.Skip},
			bson.M{"$limit": query.Limit},
		},
		"total": bson.A{
			bson.M{"$count": "count"},
		},
	}}})
	return pipeline
}

func ncdTypeStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$medicalHistory.ncdTypes"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$medicalHistory.ncdTypes",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

func ageGroupStatsPipeline(now time.Time) mongo.Pipeline {
	age := func(op string, years int) bson.M {
		return bson.M{op: bson.A{"$age", years}}
	}
	return mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"age": bson.M{"$floor": bson.M{
				"$divide": bson.A{bson.M{"$subtract": bson.A{now, "$dateOfBirth"}}, millisecondsPerYear},
			}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$switch": bson.M{
				"branches": bson.A{
					// $lt ranks null below every number, so a missing birth date must be caught first
					bson.M{"case": bson.M{"$not": bson.A{bson.M{"$isNumber": "$age"}}}, "then": constvars.AgeGroupUnknown},
					bson.M{"case": age("$lt", 30), "then": constvars.AgeGroup18To29},
					bson.M{"case": age("$lt", 40), "then": constvars.AgeGroup30To39},
					bson.M{"case": age("$lt", 50), "then": constvars.AgeGroup40To49},
					bson.M{"case": age("$lt", 60), "then": constvars.AgeGroup50To59},
					bson.M{"case": age("$gte", 60), "then": constvars.AgeGroup60Plus},
				},
				"default": constvars.AgeGroupUnknown,
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
