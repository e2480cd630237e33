package rbac

import (
	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

// Roles are static in this product (admin, member), so the policy set
// is seeded in memory instead of loaded from storage.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

var rolePolicies = [][]string{
	{"admin", "*", "*"},
	{"member", "time_entry", "read"},
	{"member", "time_entry", "create"},
	{"member", "time_entry", "update"},
	{"member", "time_entry", "delete"},
	{"member", "employee", "read"},
	{"member", "project", "read"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Can(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Can(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
