package babies

import (
	"testing"

	"barangay-health-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildBabyFilter(t *testing.T) {
	t.Run("Empty Query Matches All", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildBabyFilter(&models.BabyQuery{}))
	})

	t.Run("Parent Scope", func(t *testing.T) {
		filter := buildBabyFilter(&models.BabyQuery{ParentID: "parent-1"})
		assert.Equal(t, "parent-1", filter["parentId"])
	})

	t.Run("Search Is Escaped And Case Insensitive", func(t *testing.T) {
		filter := buildBabyFilter(&models.BabyQuery{Search: "a.b"})

		pattern := primitive.Regex{Pattern: `a\.b`, Options: "i"}
		assert.Equal(t, bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
		}, filter["$or"])
	})
}
