package access

import (
	"net/http"
	"testing"

	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	gate, err := NewGate(DefaultPolicies, zap.NewNop())
	require.NoError(t, err)
	return gate
}

func TestGate_Decide_PolicyMatrix(t *testing.T) {
	gate := newTestGate(t)

	provider := &models.Actor{UserID: "provider-1", Role: constvars.RoleHealthcareProvider}
	parent := &models.Actor{UserID: "parent-1", Role: constvars.RoleParent}
	patient := &models.Actor{UserID: "patient-1", Role: constvars.RoleNCDPatient}

	tests := []struct {
		name     string
		actor    *models.Actor
		resource string
		action   string
		allowed  bool
		scope    string
	}{
		{"Parent Creates Baby", parent, constvars.ResourceBaby, constvars.ActionCreate, true, constvars.ScopeOwn},
		{"Provider Cannot Create Baby", provider, constvars.ResourceBaby, constvars.ActionCreate, false, ""},
		{"Provider Lists Babies", provider, constvars.ResourceBaby, constvars.ActionList, true, constvars.ScopeAny},
		{"Provider Deletes Baby", provider, constvars.ResourceBaby, constvars.ActionDelete, true, constvars.ScopeAny},
		{"NCD Patient Cannot Read Baby", patient, constvars.ResourceBaby, constvars.ActionRead, false, ""},
		{"Provider Creates Vaccination", provider, constvars.ResourceVaccination, constvars.ActionCreate, true, constvars.ScopeAny},
		{"Parent Cannot Create Vaccination", parent, constvars.ResourceVaccination, constvars.ActionCreate, false, ""},
		{"Parent Lists Vaccinations", parent, constvars.ResourceVaccination, constvars.ActionList, true, constvars.ScopeOwn},
		{"Parent Cannot Read Vaccination Stats", parent, constvars.ResourceVaccination, constvars.ActionStats, false, ""},
		{"NCD Patient Creates Own Profile", patient, constvars.ResourceNCDPatient, constvars.ActionCreate, true, constvars.ScopeOwn},
		{"NCD Patient Cannot Read Stats", patient, constvars.ResourceNCDPatient, constvars.ActionStats, false, ""},
		{"Parent Cannot List NCD Patients", parent, constvars.ResourceNCDPatient, constvars.ActionList, false, ""},
		{"Provider Attaches File", provider, constvars.ResourceMedicalRecord, constvars.ActionAttach, true, constvars.ScopeAny},
		{"NCD Patient Cannot Create Medical Record", patient, constvars.ResourceMedicalRecord, constvars.ActionCreate, false, ""},
		{"NCD Patient Reads Medical Record", patient, constvars.ResourceMedicalRecord, constvars.ActionRead, true, constvars.ScopeOwn},
		{"Provider Reads Own User", provider, constvars.ResourceUser, constvars.ActionRead, true, constvars.ScopeOwn},
		{"Unknown Role Is Denied", &models.Actor{UserID: "x", Role: "admin"}, constvars.ResourceBaby, constvars.ActionRead, false, ""},
		{"Unknown Action Is Denied", provider, constvars.ResourceBaby, "archive", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := gate.Decide(tt.actor, tt.resource, tt.action, nil)

			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, tt.scope, decision.Scope)
			if !tt.allowed {
				assert.Equal(t, models.ReasonInsufficientRole, decision.Reason)
			}
		})
	}
}

func TestGate_Decide_Ordering(t *testing.T) {
	gate := newTestGate(t)
	alice := &models.Actor{UserID: "alice", Role: constvars.RoleParent}
	provider := &models.Actor{UserID: "provider-1", Role: constvars.RoleHealthcareProvider}

	t.Run("Missing Actor Is Unauthenticated", func(t *testing.T) {
		decision := gate.Decide(nil, constvars.ResourceBaby, constvars.ActionRead, models.TargetOf(false, ""))
		assert.False(t, decision.Allowed)
		assert.Equal(t, models.ReasonUnauthenticated, decision.Reason)
	})

	t.Run("Role Is Checked Before Existence", func(t *testing.T) {
		patient := &models.Actor{UserID: "p", Role: constvars.RoleNCDPatient}
		decision := gate.Decide(patient, constvars.ResourceBaby, constvars.ActionRead, models.TargetOf(false, ""))
		assert.Equal(t, models.ReasonInsufficientRole, decision.Reason)
	})

	t.Run("Existence Is Checked Before Ownership", func(t *testing.T) {
		decision := gate.Decide(alice, constvars.ResourceBaby, constvars.ActionRead, models.TargetOf(false, "bob"))
		assert.Equal(t, models.ReasonNotFound, decision.Reason)
	})

	t.Run("Own Scope Rejects Other Owner", func(t *testing.T) {
		decision := gate.Decide(alice, constvars.ResourceBaby, constvars.ActionRead, models.TargetOf(true, "bob"))
		assert.False(t, decision.Allowed)
		assert.Equal(t, models.ReasonNotOwner, decision.Reason)
	})

	t.Run("Own Scope Accepts Owner", func(t *testing.T) {
		decision := gate.Decide(alice, constvars.ResourceBaby, constvars.ActionUpdate, models.TargetOf(true, "alice"))
		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.Reason)
	})

	t.Run("Any Scope Ignores Owner", func(t *testing.T) {
		decision := gate.Decide(provider, constvars.ResourceBaby, constvars.ActionRead, models.TargetOf(true, "alice"))
		assert.True(t, decision.Allowed)
		assert.Equal(t, constvars.ScopeAny, decision.Scope)
	})
}

func TestGate_EmptyPolicyDeniesEverything(t *testing.T) {
	gate, err := NewGate(nil, zap.NewNop())
	require.NoError(t, err)

	decision := gate.Decide(&models.Actor{UserID: "u", Role: constvars.RoleHealthcareProvider}, constvars.ResourceBaby, constvars.ActionList, nil)

	assert.False(t, decision.Allowed)
	assert.Equal(t, models.ReasonInsufficientRole, decision.Reason)
}

func TestGate_Authorize(t *testing.T) {
	gate := newTestGate(t)
	alice := &models.Actor{UserID: "alice", Role: constvars.RoleParent}

	tests := []struct {
		name       string
		actor      *models.Actor
		target     *models.Target
		statusCode int
	}{
		{"Unauthenticated", nil, nil, http.StatusUnauthorized},
		{"Not Found", alice, models.TargetOf(false, ""), http.StatusNotFound},
		{"Not Owner", alice, models.TargetOf(true, "bob"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gate.Authorize(tt.actor, constvars.ResourceBaby, constvars.ActionRead, tt.target)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.statusCode, customErr.StatusCode)
		})
	}

	t.Run("Allowed", func(t *testing.T) {
		decision, err := gate.Authorize(alice, constvars.ResourceBaby, constvars.ActionRead, models.TargetOf(true, "alice"))
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})
}

func TestDecisionError_InsufficientRoleIsForbidden(t *testing.T) {
	err := DecisionError(models.Decision{
		Role:     constvars.RoleParent,
		Resource: constvars.ResourceVaccination,
		Action:   constvars.ActionCreate,
		Reason:   models.ReasonInsufficientRole,
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusForbidden, customErr.StatusCode)
}
