package ncd_patients

import (
	"testing"
	"time"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func stageNames(t *testing.T, stages []bson.D) []string {
	t.Helper()
	names := make([]string, 0, len(stages))
	for _, stage := range stages {
		require.Len(t, stage, 1)
		names = append(names, stage[0].Key)
	}
	return names
}

func TestBuildFindPipeline(t *testing.T) {
	t.Run("Owner Filter Runs Before Lookup", func(t *testing.T) {
		pipeline := buildFindPipeline(&models.NCDPatientQuery{UserID: "maria", Limit: 10})

		assert.Equal(t, []string{"$match", "$addFields", "$lookup", "$unwind", "$project", "$facet"}, stageNames(t, pipeline))
		assert.Equal(t, bson.M{"userId": "maria"}, pipeline[0][0].Value)
	})

	t.Run("Search Matches Linked User", func(t *testing.T) {
		pipeline := buildFindPipeline(&models.NCDPatientQuery{Search: "a.b", Limit: 10})

		assert.Equal(t, []string{"$addFields", "$lookup", "$unwind", "$project", "$match", "$facet"}, stageNames(t, pipeline))
		match := pipeline[4][0].Value.(bson.M)
		clauses := match["$or"].(bson.A)
		require.Len(t, clauses, 3)
		assert.Equal(t, bson.M{"user.email": primitive.Regex{Pattern: `a\.b`, Options: "i"}}, clauses[2])
	})

	t.Run("Facet Pages Results", func(t *testing.T) {
		pipeline := buildFindPipeline(&models.NCDPatientQuery{Skip: 20, Limit: 10})

		facet := pipeline[len(pipeline)-1][0].Value.(bson.M)
		items := facet["items"].(bson.A)
		assert.Equal(t, bson.M{"$skip": int64(20)}, items[1])
		assert.Equal(t, bson.M{"$limit": int64(10)}, items[2])
	})
}

func TestUserLookupStages_HidesPassword(t *testing.T) {
	stages := userLookupStages()

	project := stages[len(stages)-1][0]
	assert.Equal(t, "$project", project.Key)
	assert.Equal(t, 0, project.Value.(bson.M)["user.password"])
}

func TestNCDTypeStatsPipeline(t *testing.T) {
	pipeline := ncdTypeStatsPipeline()

	assert.Equal(t, []string{"$unwind", "$group", "$sort"}, stageNames(t, pipeline))
	assert.Equal(t, "$medicalHistory.ncdTypes", pipeline[0][0].Value)
}

func TestAgeGroupStatsPipeline(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pipeline := ageGroupStatsPipeline(now)

	assert.Equal(t, []string{"$addFields", "$group", "$sort"}, stageNames(t, pipeline))

	group := pipeline[1][0].Value.(bson.M)
	switchExpr := group["_id"].(bson.M)["$switch"].(bson.M)
	branches := switchExpr["branches"].(bson.A)
	require.Len(t, branches, 6)
	assert.Equal(t, bson.M{"$not": bson.A{bson.M{"$isNumber": "$age"}}}, branches[0].(bson.M)["case"])
	assert.Equal(t, constvars.AgeGroupUnknown, branches[0].(bson.M)["then"])
	assert.Equal(t, constvars.AgeGroup18To29, branches[1].(bson.M)["then"])
	assert.Equal(t, constvars.AgeGroup60Plus, branches[5].(bson.M)["then"])
	assert.Equal(t, constvars.AgeGroupUnknown, switchExpr["default"])
}
