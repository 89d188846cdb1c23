package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleEmployee   = "EMPLOYEE"
	RoleSupervisor = "SUPERVISOR"
	RoleHR         = "HR"
)

// Resources and actions checked by route guards.
const (
	ResourceLeave      = "leave"
	ResourceReport     = "report"
	ResourceEmployee   = "employee"
	ResourceSupervisor = "supervisor"

	ActionCreate    = "create"
	ActionReadOwn   = "read_own"
	ActionSupervise = "supervise"
	ActionReview    = "hr_review"
	ActionExport    = "export"
	ActionReadTeam  = "read_team"
	ActionManage    = "manage"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{RoleEmployee, ResourceLeave, ActionCreate},
	{RoleEmployee, ResourceLeave, ActionReadOwn},
	{RoleEmployee, ResourceReport, ActionCreate},
	{RoleEmployee, ResourceEmployee, ActionReadOwn},

	{RoleSupervisor, ResourceLeave, ActionSupervise},
	{RoleSupervisor, ResourceReport, ActionReadTeam},

	{RoleHR, ResourceLeave, ActionReview},
	{RoleHR, ResourceLeave, ActionExport},
	{RoleHR, ResourceEmployee, ActionManage},
	{RoleHR, ResourceSupervisor, ActionManage},
}

// Supervisors and HR are employees too.
var inheritance = [][]string{
	{RoleSupervisor, RoleEmployee},
	{RoleHR, RoleEmployee},
}

// NewEnforcer builds an in-memory enforcer seeded with the static role policy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(inheritance); err != nil {
		return nil, err
	}
	return e, nil
}
