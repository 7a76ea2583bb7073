// Package access contains the AccessControl aggregate: the single
// administrator identity, the manager and employee role sets, and the
// pending ownership-transfer slot.
//
// Roles form a strict authority hierarchy - administrator authority is a
// superset of manager authority, which is a superset of employee authority.
// Managers and employees are independent sets; an identity may hold
// neither, either, or both. There is exactly one administrator at all
// times, and administrator authority moves only through the two-phase
// transfer protocol: the current administrator nominates a successor, and
// the successor must actively accept before authority changes hands. This
// prevents transferring authority to a mistyped or unreachable identity.
//
// Every successful mutation raises a domain event; failed operations leave
// the aggregate untouched and raise nothing.
package access
