// Package accessrepo provides data transfer objects and mapping functions
// for persisting the singleton AccessControl aggregate: a single ownership
// row carrying the administrator and the pending-transfer slot, plus one
// row per role membership.
package accessrepo

import (
	"shiptrack/internal/core/domain/model/access"
	"shiptrack/internal/core/domain/model/kernel"
)

// ownershipRowID is the fixed key of the single ownership row.
const ownershipRowID = int64(1)

// Role discriminators for membership rows.
const (
	roleManager  = "manager"
	roleEmployee = "employee"
)

// OwnershipDTO is the single-row record of administrator authority and the
// pending-transfer slot.
type OwnershipDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement:false"`
	Admin        string  `gorm:"type:varchar(255);not null"`
	PendingOwner *string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for the ownership row.
func (OwnershipDTO) TableName() string {
	return "ownership"
}

// RoleMemberDTO is one role membership: an identity holding the manager or
// employee role. An identity holding both roles has two rows.
type RoleMemberDTO struct {
	Identity string `gorm:"primaryKey;type:varchar(255)"`
	Role     string `gorm:"primaryKey;type:varchar(16)"`
}

// TableName specifies the database table name for role memberships.
func (RoleMemberDTO) TableName() string {
	return "role_members"
}

// fromDomain converts the aggregate to its database representation.
func fromDomain(aggregate *access.AccessControl) (OwnershipDTO, []RoleMemberDTO) {
	var pending *string
	if p := aggregate.PendingOwner(); p != nil {
		token := p.String()
		pending = &token
	}

	ownership := OwnershipDTO{
		ID:           ownershipRowID,
		Admin:        aggregate.Admin().String(),
		PendingOwner: pending,
	}

	managers := aggregate.Managers()
	employees := aggregate.Employees()
	members := make([]RoleMemberDTO, 0, len(managers)+len(employees))
	for _, m := range managers {
		members = append(members, RoleMemberDTO{Identity: m.String(), Role: roleManager})
	}
	for _, e := range employees {
		members = append(members, RoleMemberDTO{Identity: e.String(), Role: roleEmployee})
	}

	return ownership, members
}

// toDomain reconstructs the aggregate from its database representation.
func toDomain(ownership OwnershipDTO, members []RoleMemberDTO) (*access.AccessControl, error) {
	admin, err := kernel.NewIdentity(ownership.Admin)
	if err != nil {
		return nil, err
	}

	var pending *kernel.Identity
	if ownership.PendingOwner != nil {
		p, pendingErr := kernel.NewIdentity(*ownership.PendingOwner)
		if pendingErr != nil {
			return nil, pendingErr
		}
		pending = &p
	}

	managers := make([]kernel.Identity, 0)
	employees := make([]kernel.Identity, 0)
	for _, member := range members {
		id, memberErr := kernel.NewIdentity(member.Identity)
		if memberErr != nil {
			return nil, memberErr
		}
		switch member.Role {
		case roleManager:
			managers = append(managers, id)
		case roleEmployee:
			employees = append(employees, id)
		}
	}

	return access.RestoreAccessControl(admin, managers, employees, pending)
}
