package database

import (
	"context"

	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexDefinitions() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: constvars.MongoCollectionUsers,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			}},
		},
		{
			collection: constvars.MongoCollectionNCDPatients,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_id"),
			}},
		},
		{
			collection: constvars.MongoCollectionBabies,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "parentId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("parent_id_created_at"),
			}},
		},
		{
			collection: constvars.MongoCollectionVaccinations,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "babyId", Value: 1}, {Key: "dateAdministered", Value: -1}},
					Options: options.Index().SetName("baby_id_date_administered"),
				},
				{
					Keys:    bson.D{{Key: "nextDueDate", Value: 1}},
					Options: options.Index().SetName("next_due_date").SetSparse(true),
				},
			},
		},
		{
			collection: constvars.MongoCollectionMedicalRecords,
			models: []mongo.IndexModel{{
				Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "recordDate", Value: -1}},
				Options: options.Index().SetName("patient_id_record_date"),
			}},
		},
	}
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// indexes back the duplicate email and duplicate NCD profile checks.
// Creating an existing index with the same definition is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	for _, definition := range indexDefinitions() {
		names, err := db.Collection(definition.collection).Indexes().CreateMany(ctx, definition.models)
		if err != nil {
			log.Error("database.EnsureIndexes failed",
				zap.String("collection", definition.collection),
				zap.Error(err),
			)
			return exceptions.ErrMongoDBCreateIndexes(err)
		}
		log.Info("database.EnsureIndexes succeeded",
			zap.String("collection", definition.collection),
			zap.Strings("indexes", names),
		)
	}
	return nil
}
