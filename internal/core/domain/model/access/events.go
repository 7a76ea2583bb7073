package access

import "shiptrack/internal/core/domain/model/kernel"

// OwnershipTransferred is raised when a pending nomination is accepted and
// administrator authority moves from Previous to New.
type OwnershipTransferred struct {
	Previous kernel.Identity
	New      kernel.Identity
}

// EventName implements kernel.DomainEvent.
func (OwnershipTransferred) EventName() string { return "ownership-changed" }

// ManagerAdded is raised when an identity is granted the manager role.
type ManagerAdded struct {
	Identity kernel.Identity
}

// EventName implements kernel.DomainEvent.
func (ManagerAdded) EventName() string { return "manager-added" }

// ManagerRemoved is raised when an identity loses the manager role.
type ManagerRemoved struct {
	Identity kernel.Identity
}

// EventName implements kernel.DomainEvent.
func (ManagerRemoved) EventName() string { return "manager-removed" }

// EmployeeAdded is raised when an identity is granted the employee role.
type EmployeeAdded struct {
	Identity kernel.Identity
}

// EventName implements kernel.DomainEvent.
func (EmployeeAdded) EventName() string { return "employee-added" }

// EmployeeRemoved is raised when an identity loses the employee role.
type EmployeeRemoved struct {
	Identity kernel.Identity
}

// EventName implements kernel.DomainEvent.
func (EmployeeRemoved) EventName() string { return "employee-removed" }
