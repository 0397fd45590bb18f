package access

import (
	"barangay-health-service/internal/app/models"
	"barangay-health-service/internal/pkg/constvars"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, scope

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies is the permission table enforced by the gate. Anything not
// listed here is denied.
var DefaultPolicies = buildPolicies(
	grant(constvars.RoleHealthcareProvider, constvars.ResourceBaby, constvars.ScopeAny,
		constvars.ActionRead, constvars.ActionList, constvars.ActionUpdate, constvars.ActionDelete),
	grant(constvars.RoleHealthcareProvider, constvars.ResourceVaccination, constvars.ScopeAny,
		constvars.ActionCreate, constvars.ActionRead, constvars.ActionList, constvars.ActionUpdate, constvars.ActionStats),
	grant(constvars.RoleHealthcareProvider, constvars.ResourceNCDPatient, constvars.ScopeAny,
		constvars.ActionCreate, constvars.ActionRead, constvars.ActionList, constvars.ActionUpdate, constvars.ActionStats),
	grant(constvars.RoleHealthcareProvider, constvars.ResourceMedicalRecord, constvars.ScopeAny,
		constvars.ActionCreate, constvars.ActionRead, constvars.ActionList, constvars.ActionUpdate, constvars.ActionAttach),
	grant(constvars.RoleHealthcareProvider, constvars.ResourceUser, constvars.ScopeOwn,
		constvars.ActionRead, constvars.ActionUpdate),

	grant(constvars.RoleParent, constvars.ResourceBaby, constvars.ScopeOwn,
		constvars.ActionCreate, constvars.ActionRead, constvars.ActionList, constvars.ActionUpdate, constvars.ActionDelete),
	grant(constvars.RoleParent, constvars.ResourceVaccination, constvars.ScopeOwn,
		constvars.ActionRead, constvars.ActionList),
	grant(constvars.RoleParent, constvars.ResourceUser, constvars.ScopeOwn,
		constvars.ActionRead, constvars.ActionUpdate),

	grant(constvars.RoleNCDPatient, constvars.ResourceNCDPatient, constvars.ScopeOwn,
		constvars.ActionCreate, constvars.ActionRead, constvars.ActionList, constvars.ActionUpdate),
	grant(constvars.RoleNCDPatient, constvars.ResourceMedicalRecord, constvars.ScopeOwn,
		constvars.ActionRead, constvars.ActionList),
	grant(constvars.RoleNCDPatient, constvars.ResourceUser, constvars.ScopeOwn,
		constvars.ActionRead, constvars.ActionUpdate),
)

func grant(role, resource, scope string, actions ...string) []models.Permission {
	permissions := make([]models.Permission, 0, len(actions))
	for _, action := range actions {
		permissions = append(permissions, models.Permission{
			Role:     role,
			Resource: resource,
			Action:   action,
			Scope:    scope,
		})
	}
	return permissions
}

func buildPolicies(groups ...[]models.Permission) []models.Permission {
	var policies []models.Permission
	for _, group := range groups {
		policies = append(policies, group...)
	}
	return policies
}

func toRules(permissions []models.Permission) [][]string {
	rules := make([][]string, 0, len(permissions))
	for _, p := range permissions {
		rules = append(rules, []string{p.Role, p.Resource, p.Action, p.Scope})
	}
	return rules
}
