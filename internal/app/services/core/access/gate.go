package access

import (
	"fmt"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
	"barangay-health-service/internal/pkg/exceptions"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var deniedDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "access_gate_denied_total",
	Help: "Access gate denials by reason.",
}, []string{"resource", "action", "reason"})

type Gate struct {
	enforcer *casbin.Enforcer
	Log      *zap.Logger
}

func NewGate(permissions []models.Permission, logger *zap.Logger) (*Gate, error) {
	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, fmt.Errorf("load access model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create access enforcer: %w", err)
	}

	if len(permissions) > 0 {
		if _, err := enforcer.AddPolicies(toRules(permissions)); err != nil {
			return nil, fmt.Errorf("load access policies: %w", err)
		}
	}

	return &Gate{enforcer: enforcer, Log: logger}, nil
}

// Decide evaluates the checks in a fixed order: authentication, role
// permission, target existence, then ownership for own-scoped permissions.
func (g *Gate) Decide(actor *models.Actor, resource, action string, target *models.Target) models.Decision {
	decision := models.Decision{Resource: resource, Action: action}
	if actor == nil {
		decision.Reason = models.ReasonUnauthenticated
		return decision
	}
	decision.Role = actor.Role

	scope, ok := g.matchScope(actor.Role, resource, action)
	if !ok {
		decision.Reason = models.ReasonInsufficientRole
		return decision
	}
	decision.Scope = scope

	if target == nil {
		decision.Allowed = true
		return decision
	}

	if !target.Found {
		decision.Reason = models.ReasonNotFound
		return decision
	}

	if scope == constvars.ScopeOwn && target.OwnerID != actor.UserID {
		decision.Reason = models.ReasonNotOwner
		return decision
	}

	decision.Allowed = true
	return decision
}

// Authorize runs Decide and converts a denial into the matching transport error.
func (g *Gate) Authorize(actor *models.Actor, resource, action string, target *models.Target) (models.Decision, error) {
	decision := g.Decide(actor, resource, action, target)
	if decision.Allowed {
		return decision, nil
	}

	deniedDecisions.WithLabelValues(resource, action, decision.Reason).Inc()
	g.Log.Info("Gate.Authorize denied",
		zap.String(constvars.LoggingRoleKey, decision.Role),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingActionKey, action),
		zap.String(constvars.LoggingReasonKey, decision.Reason),
	)
	return decision, DecisionError(decision)
}

func DecisionError(decision models.Decision) error {
	switch decision.Reason {
	case "":
		return nil
	case models.ReasonUnauthenticated:
		return exceptions.ErrUnauthenticated(decision.Resource, decision.Action)
	case models.ReasonNotFound:
		return exceptions.ErrResourceNotFound(decision.Resource)
	default:
		return exceptions.ErrForbidden(decision.Role, decision.Resource, decision.Action, decision.Reason)
	}
}

func (g *Gate) matchScope(role, resource, action string) (string, bool) {
	ok, explain, err := g.enforcer.EnforceEx(role, resource, action)
	if err != nil {
		g.Log.Error("Gate.matchScope error calling enforcer.EnforceEx",
			zap.String(constvars.LoggingRoleKey, role),
			zap.Error(err),
		)
		return "", false
	}
	if !ok || len(explain) < 4 {
		return "", false
	}
	return explain[3], true
}

var _ contracts.AccessGate = (*Gate)(nil)
