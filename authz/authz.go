// Package authz decides whether an authenticated caller may mutate a
// resource. The rule lives in one casbin ABAC model instead of being
// re-derived in every handler.
package authz

import (
	"sync"

	"github.com/casbin/casbin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rootroutes-service/domain"
)

// Policy says who besides the owner may touch a resource.
type Policy int

const (
	// OwnerOrAdmin lets admins act on anyone's resource.
	OwnerOrAdmin Policy = iota
	// OwnerOnly has no admin override.
	OwnerOnly
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub.ID == r.obj.Owner || (r.sub.Role == "admin" && r.obj.AdminOverride == true)
`

// Subject and Resource are the request attributes the matcher reads.
type Subject struct {
	ID   string
	Role string
}

type Resource struct {
	Owner         string
	AdminOverride bool
}

type Authorizer struct {
	mu       sync.Mutex
	enforcer *casbin.Enforcer
}

func NewAuthorizer() *Authorizer {
	m := casbin.NewModel(modelText)
	return &Authorizer{enforcer: casbin.NewEnforcer(m)}
}

// CanModify reports whether identity may update or delete a resource owned
// by owner under the given policy.
func (a *Authorizer) CanModify(identity domain.Identity, owner primitive.ObjectID, policy Policy) bool {
	if identity.ID.IsZero() {
		return false
	}
	sub := Subject{ID: identity.ID.Hex(), Role: string(identity.Role)}
	obj := Resource{Owner: owner.Hex(), AdminOverride: policy == OwnerOrAdmin}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enforcer.Enforce(sub, obj, "modify")
}
