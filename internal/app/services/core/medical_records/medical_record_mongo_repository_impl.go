package medical_records

import (
	"context"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicalRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalRecordMongoRepository(db *mongo.Database) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (repo *MedicalRecordMongoRepository) Create(ctx context.Context, record *models.MedicalRecord) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *MedicalRecordMongoRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var record models.MedicalRecord
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (repo *MedicalRecordMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "recordDate", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.MedicalRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (repo *MedicalRecordMongoRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	objectID, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": record.ConvertToBsonM()}

	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *MedicalRecordMongoRepository) AddAttachment(ctx context.Context, recordID, objectName string) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, addAttachmentUpdate(objectName))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func addAttachmentUpdate(objectName string) bson.M {
	return bson.M{
		"$push": bson.M{"attachments": objectName},
		"$currentDate": bson.M{"updatedAt": true},
	}
}
