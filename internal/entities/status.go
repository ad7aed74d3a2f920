package entities

import (
	"fmt"

	"github.com/mgalvezc/delivery-core/internal/rbac"
)

// OrderStatus is the closed set of lifecycle states an order moves through.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var knownStatuses = map[OrderStatus]struct{}{
	StatusPending:        {},
	StatusConfirmed:      {},
	StatusPreparing:      {},
	StatusReady:          {},
	StatusOutForDelivery: {},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// ParseOrderStatus converts a raw string into an OrderStatus,
// failing with ErrInvalidStatus for anything outside the known set.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if _, ok := knownStatuses[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := knownStatuses[s]
	return ok
}

// Terminal reports whether the status admits no outgoing transition.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type statusEdge struct {
	from OrderStatus
	to   OrderStatus
}

// transitionRoles is the lifecycle adjacency table. Each legal edge carries
// the set of roles allowed to trigger it. Edges absent from the table are
// illegal for every role; delivered and cancelled have no outgoing edges.
var transitionRoles = map[statusEdge][]rbac.Role{
	{StatusPending, StatusConfirmed}:        {rbac.RoleStore, rbac.RoleAdmin},
	{StatusPending, StatusCancelled}:        {rbac.RoleCustomer, rbac.RoleStore, rbac.RoleAdmin},
	{StatusConfirmed, StatusPreparing}:      {rbac.RoleStore, rbac.RoleAdmin},
	{StatusConfirmed, StatusCancelled}:      {rbac.RoleCustomer, rbac.RoleStore, rbac.RoleAdmin},
	{StatusPreparing, StatusReady}:          {rbac.RoleStore, rbac.RoleAdmin},
	{StatusPreparing, StatusCancelled}:      {rbac.RoleStore, rbac.RoleAdmin},
	{StatusReady, StatusOutForDelivery}:     {rbac.RoleCourier, rbac.RoleAdmin},
	{StatusOutForDelivery, StatusDelivered}: {rbac.RoleCourier, rbac.RoleAdmin},
}

// Transition validates a requested status change. Checks run in order:
// target shape, edge legality, actor authority. A nil return means the
// edge is legal and the role may trigger it.
func Transition(from, to OrderStatus, role rbac.Role) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(to))
	}
	roles, ok := transitionRoles[statusEdge{from, to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	if !rbac.AnyRole(role, roles...) {
		return fmt.Errorf("%w: role %q may not move order %s -> %s", ErrForbidden, role, from, to)
	}
	return nil
}

// CanTransition reports edge legality only, ignoring actor authority.
func CanTransition(from, to OrderStatus) bool {
	_, ok := transitionRoles[statusEdge{from, to}]
	return ok
}
