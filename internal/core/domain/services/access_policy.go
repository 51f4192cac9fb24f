package services

import (
	_ "embed"
	"fmt"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Action is something a principal asks to do.
type Action string

const (
	ViewCatalog        Action = "view_catalog"
	RateMenuItem       Action = "rate_menu_item"
	ManageCatalog      Action = "manage_catalog"
	ManageRoles        Action = "manage_roles"
	ViewAllOrders      Action = "view_all_orders"
	ViewOwnOrders      Action = "view_own_orders"
	ViewAssignedOrders Action = "view_assigned_orders"
	PlaceOrder         Action = "place_order"
	UpdateOrderStatus  Action = "update_order_status"
	AssignDelivery     Action = "assign_delivery"
	DeleteOrder        Action = "delete_order"
	ManageOwnCart      Action = "manage_own_cart"
)

var knownActions = map[Action]struct{}{
	ViewCatalog: {}, RateMenuItem: {}, ManageCatalog: {}, ManageRoles: {},
	ViewAllOrders: {}, ViewOwnOrders: {}, ViewAssignedOrders: {}, PlaceOrder: {},
	UpdateOrderStatus: {}, AssignDelivery: {}, DeleteOrder: {}, ManageOwnCart: {},
}

//go:embed policy.yaml
var defaultPolicy []byte

// AccessPolicy is a dispatch table keyed by (role, action). It is the only
// place role checks are made; use cases ask it once per operation.
type AccessPolicy struct {
	grants map[identity.Role]map[Action]struct{}
}

type policyDocument struct {
	Roles map[string][]string `yaml:"roles"`
}

// DefaultAccessPolicy returns the built-in policy.
func DefaultAccessPolicy() *AccessPolicy {
	p, err := AccessPolicyFromYAML(defaultPolicy)
	if err != nil {
		panic(fmt.Sprintf("embedded access policy is invalid: %v", err))
	}
	return p
}

// AccessPolicyFromYAML parses a policy document. Unknown roles and actions
// are rejected so that a typo cannot silently revoke a permission.
func AccessPolicyFromYAML(data []byte) (*AccessPolicy, error) {
	var doc policyDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("access policy", err)
	}

	grants := make(map[identity.Role][]Action, len(doc.Roles))
	for role, actions := range doc.Roles {
		for _, a := range actions {
			grants[identity.Role(role)] = append(grants[identity.Role(role)], Action(a))
		}
	}
	return NewAccessPolicy(grants)
}

func NewAccessPolicy(grants map[identity.Role][]Action) (*AccessPolicy, error) {
	p := &AccessPolicy{grants: make(map[identity.Role]map[Action]struct{}, len(grants))}
	for role, actions := range grants {
		if role != identity.Customer {
			if err := role.Validate(); err != nil {
				return nil, err
			}
		}
		set := make(map[Action]struct{}, len(actions))
		for _, a := range actions {
			if _, ok := knownActions[a]; !ok {
				return nil, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a known action", a))
			}
			set[a] = struct{}{}
		}
		p.grants[role] = set
	}
	return p, nil
}

// Allows reports whether any effective role in roles grants action.
func (p *AccessPolicy) Allows(roles identity.RoleSet, action Action) bool {
	for _, r := range roles.Effective() {
		if _, ok := p.grants[r][action]; ok {
			return true
		}
	}
	return false
}

// Authorize returns a ForbiddenError unless principal is authenticated and
// allowed to perform action.
func (p *AccessPolicy) Authorize(principal identity.Principal, action Action) error {
	if !principal.IsAuthenticated() || !p.Allows(principal.Roles(), action) {
		return errs.NewForbiddenError(string(action))
	}
	return nil
}

// CanAccessOrder scopes order visibility: managers see every order, crew
// members the orders assigned to them and customers their own.
func (p *AccessPolicy) CanAccessOrder(principal identity.Principal, o *order.Order) bool {
	if !principal.IsAuthenticated() {
		return false
	}
	roles, userID := principal.Roles(), principal.UserID()
	switch {
	case p.Allows(roles, ViewAllOrders):
		return true
	case p.Allows(roles, ViewAssignedOrders) && o.IsAssignedTo(userID):
		return true
	case p.Allows(roles, ViewOwnOrders) && o.IsOwnedBy(userID):
		return true
	default:
		return false
	}
}

// AuthorizeOrder is Authorize narrowed to a single order the principal
// must be able to access.
func (p *AccessPolicy) AuthorizeOrder(principal identity.Principal, action Action, o *order.Order) error {
	if err := p.Authorize(principal, action); err != nil {
		return err
	}
	if !p.CanAccessOrder(principal, o) {
		return errs.NewForbiddenError(string(action))
	}
	return nil
}
