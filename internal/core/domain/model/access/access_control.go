package access

import (
	"errors"
	"sort"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrAccessControlIsNotConstructed is returned when an AccessControl
// instance was not created through NewAccessControl or
// RestoreAccessControl.
var ErrAccessControlIsNotConstructed = errors.New(
	"AccessControl must be created via NewAccessControl or RestoreAccessControl")

// AccessControl is the aggregate root owning all authority state of the
// tracker: the administrator identity, the manager and employee role sets,
// and the pending ownership-transfer slot.
//
// AccessControl maintains these invariants:
//   - Exactly one administrator exists at all times after construction
//   - At most one pending transfer nomination exists; a new nomination
//     overwrites the previous one, and acceptance consumes the slot
//   - Role membership changes are idempotently guarded: adding a present
//     member or removing an absent one fails without side effects
//
// Every mutating method takes the caller identity explicitly and checks it
// against the role the operation requires before touching any state.
type AccessControl struct {
	admin     kernel.Identity
	managers  map[kernel.Identity]struct{}
	employees map[kernel.Identity]struct{}

	// pendingOwner is the nominated successor administrator awaiting
	// self-confirmation; nil when no transfer is outstanding.
	pendingOwner *kernel.Identity

	events        []kernel.DomainEvent
	isConstructed bool
}

// NewAccessControl creates the aggregate with its initial administrator.
// The administrator identity must be valid.
func NewAccessControl(admin kernel.Identity) (*AccessControl, error) {
	if err := admin.Validate(); err != nil {
		return nil, err
	}

	return &AccessControl{
		admin:         admin,
		managers:      make(map[kernel.Identity]struct{}),
		employees:     make(map[kernel.Identity]struct{}),
		isConstructed: true,
	}, nil
}

// RestoreAccessControl reconstructs the aggregate from persistence.
// All identities must be valid; duplicate entries in the member slices are
// collapsed.
func RestoreAccessControl(
	admin kernel.Identity,
	managers []kernel.Identity,
	employees []kernel.Identity,
	pendingOwner *kernel.Identity,
) (*AccessControl, error) {
	ac, err := NewAccessControl(admin)
	if err != nil {
		return nil, err
	}

	for _, m := range managers {
		if err = m.Validate(); err != nil {
			return nil, err
		}
		ac.managers[m] = struct{}{}
	}

	for _, e := range employees {
		if err = e.Validate(); err != nil {
			return nil, err
		}
		ac.employees[e] = struct{}{}
	}

	if pendingOwner != nil {
		if err = pendingOwner.Validate(); err != nil {
			return nil, err
		}
		p := *pendingOwner
		ac.pendingOwner = &p
	}

	return ac, nil
}

// Validate ensures the aggregate was created through a constructor.
func (a *AccessControl) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccessControlIsNotConstructed
	}
	return nil
}

// Admin returns the current administrator identity.
func (a *AccessControl) Admin() kernel.Identity {
	return a.admin
}

// PendingOwner returns the nominated successor administrator, or nil when
// no transfer is outstanding.
func (a *AccessControl) PendingOwner() *kernel.Identity {
	if a.pendingOwner == nil {
		return nil
	}
	p := *a.pendingOwner
	return &p
}

// Managers returns the manager identities sorted by token for determinism.
func (a *AccessControl) Managers() []kernel.Identity {
	return sortedMembers(a.managers)
}

// Employees returns the employee identities sorted by token for determinism.
func (a *AccessControl) Employees() []kernel.Identity {
	return sortedMembers(a.employees)
}

// IsAdmin reports whether id is the current administrator.
func (a *AccessControl) IsAdmin(id kernel.Identity) bool {
	return a.admin.IsEqual(id)
}

// IsManagerOrAdmin reports whether id holds manager or administrator
// authority.
func (a *AccessControl) IsManagerOrAdmin(id kernel.Identity) bool {
	if a.IsAdmin(id) {
		return true
	}
	_, ok := a.managers[id]
	return ok
}

// IsEmployeeManagerOrAdmin reports whether id holds any authority tier.
func (a *AccessControl) IsEmployeeManagerOrAdmin(id kernel.Identity) bool {
	if a.IsManagerOrAdmin(id) {
		return true
	}
	_, ok := a.employees[id]
	return ok
}

// TransferOwnership nominates candidate as the successor administrator.
// Only the current administrator may nominate. The nomination overwrites
// any prior pending candidate and does not itself change the administrator;
// the candidate must accept via AcceptOwnership. No event is raised until
// acceptance.
func (a *AccessControl) TransferOwnership(caller, candidate kernel.Identity) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	if !a.IsAdmin(caller) {
		return errs.NewUnauthorizedError(caller.String(), "transfer ownership")
	}

	c := candidate
	a.pendingOwner = &c
	return nil
}

// AcceptOwnership completes the two-phase transfer. The caller must be
// the pending candidate; on success the administrator identity is replaced,
// the pending slot is consumed, and OwnershipTransferred is raised.
func (a *AccessControl) AcceptOwnership(caller kernel.Identity) error {
	if a.pendingOwner == nil || !a.pendingOwner.IsEqual(caller) {
		return errs.NewUnauthorizedError(caller.String(), "accept ownership")
	}

	previous := a.admin
	a.admin = caller
	a.pendingOwner = nil
	a.raise(OwnershipTransferred{Previous: previous, New: caller})
	return nil
}

// AddManager grants id the manager role. Admin-only; fails with
// AlreadyExists when id is already a manager.
func (a *AccessControl) AddManager(caller, id kernel.Identity) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !a.IsAdmin(caller) {
		return errs.NewUnauthorizedError(caller.String(), "add manager")
	}
	if _, ok := a.managers[id]; ok {
		return errs.NewAlreadyExistsError("manager", id.String())
	}

	a.managers[id] = struct{}{}
	a.raise(ManagerAdded{Identity: id})
	return nil
}

// FireManager revokes the manager role from id. Admin-only; fails with
// NotFound when id is not currently a manager.
func (a *AccessControl) FireManager(caller, id kernel.Identity) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !a.IsAdmin(caller) {
		return errs.NewUnauthorizedError(caller.String(), "fire manager")
	}
	if _, ok := a.managers[id]; !ok {
		return errs.NewObjectNotFoundError("manager", id.String())
	}

	delete(a.managers, id)
	a.raise(ManagerRemoved{Identity: id})
	return nil
}

// AddEmployee grants id the employee role. Manager-or-admin; fails with
// AlreadyExists when id is already an employee.
func (a *AccessControl) AddEmployee(caller, id kernel.Identity) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !a.IsManagerOrAdmin(caller) {
		return errs.NewUnauthorizedError(caller.String(), "add employee")
	}
	if _, ok := a.employees[id]; ok {
		return errs.NewAlreadyExistsError("employee", id.String())
	}

	a.employees[id] = struct{}{}
	a.raise(EmployeeAdded{Identity: id})
	return nil
}

// FireEmployee revokes the employee role from id. Callable by any employee,
// manager, or the administrator. The policy is deliberately permissive: any
// employee may remove any other employee, including itself and peers.
// Fails with NotFound when id is not currently an employee.
func (a *AccessControl) FireEmployee(caller, id kernel.Identity) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !a.IsEmployeeManagerOrAdmin(caller) {
		return errs.NewUnauthorizedError(caller.String(), "fire employee")
	}
	if _, ok := a.employees[id]; !ok {
		return errs.NewObjectNotFoundError("employee", id.String())
	}

	delete(a.employees, id)
	a.raise(EmployeeRemoved{Identity: id})
	return nil
}

// DomainEvents returns the events raised since construction or the last
// ClearDomainEvents call.
func (a *AccessControl) DomainEvents() []kernel.DomainEvent {
	return a.events
}

// ClearDomainEvents discards collected events, typically after publishing.
func (a *AccessControl) ClearDomainEvents() {
	a.events = nil
}

func (a *AccessControl) raise(event kernel.DomainEvent) {
	a.events = append(a.events, event)
}

func sortedMembers(set map[kernel.Identity]struct{}) []kernel.Identity {
	members := make([]kernel.Identity, 0, len(set))
	for id := range set {
		members = append(members, id)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].String() < members[j].String()
	})
	return members
}
