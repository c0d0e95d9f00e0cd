// Package policy decides whether an identity may perform an operation on a
// resource kind, and which branch filter a read must carry.
//
// Evaluate is pure: it performs no I/O, keeps no state and is safe to call
// from any goroutine. Services call it before touching storage.
package policy

import (
	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// Kind is a resource kind with its own row in the decision table.
type Kind string

const (
	KindBranch          Kind = "branch"
	KindEmployee        Kind = "employee"
	KindAttendance      Kind = "attendance"
	KindPayroll         Kind = "payroll"
	KindIncome          Kind = "income"
	KindExpense         Kind = "expense"
	KindExpenseCategory Kind = "expense_category"
	KindSale            Kind = "sale"
	KindUser            Kind = "user"
	// KindProfitLoss is the derived aggregate over income and expense. It is read-only.
	KindProfitLoss Kind = "profit_loss"
)

// Op is the operation being attempted.
type Op string

const (
	OpCreate Op = "CREATE"
	OpRead   Op = "READ"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Effect is the outcome of an evaluation.
type Effect int

const (
	Deny Effect = iota
	Allow
	AllowWithBranchFilter
)

func (e Effect) String() string {
	switch e {
	case Allow:
		return "ALLOW"
	case AllowWithBranchFilter:
		return "ALLOW_WITH_BRANCH_FILTER"
	default:
		return "DENY"
	}
}

// Request describes what the caller is trying to do.
//
// TargetBranchID is the branch a CREATE writes to, or the branch filter a
// READ asked for. OwnerBranchID is the stored branch of the record an
// UPDATE or DELETE touches. TargetUserID is only used for User requests.
type Request struct {
	Kind           Kind
	Op             Op
	TargetBranchID string
	OwnerBranchID  string
	TargetUserID   string
}

// Decision is the engine's answer.
//
// For AllowWithBranchFilter, BranchID is the filter the read must apply.
// For an allowed CREATE, BranchID is the branch the record must be written to
// (the home branch is injected for STAFF when none was supplied).
// For Deny, Reason is the message returned to the client.
type Decision struct {
	Effect   Effect
	BranchID string
	Reason   string
}

// Allowed reports whether the decision is Allow or AllowWithBranchFilter.
func (d Decision) Allowed() bool {
	return d.Effect != Deny
}

// Err returns a forbidden error carrying Reason, or nil if the decision allows.
func (d Decision) Err() error {
	if d.Allowed() {
		return nil
	}
	return apperrors.NewForbiddenError(d.Reason)
}

// Admits reports whether a record owned by branchID passes the decision's
// branch filter. Unfiltered allows admit everything.
func (d Decision) Admits(branchID string) bool {
	switch d.Effect {
	case Allow:
		return true
	case AllowWithBranchFilter:
		return d.BranchID == branchID
	default:
		return false
	}
}

func allow() Decision { return Decision{Effect: Allow} }

func allowIn(branchID string) Decision { return Decision{Effect: Allow, BranchID: branchID} }

func filterTo(branchID string) Decision {
	return Decision{Effect: AllowWithBranchFilter, BranchID: branchID}
}

func deny(reason string) Decision { return Decision{Effect: Deny, Reason: reason} }

// Evaluate applies the decision table for req.Kind to identity.
// A nil identity is always denied.
func Evaluate(identity domain.Identity, req Request) Decision {
	if identity == nil {
		return deny(msgUnauthenticated)
	}

	switch req.Kind {
	case KindBranch:
		return evaluateBranch(identity, req)
	case KindExpenseCategory:
		return evaluateExpenseCategory(identity, req)
	case KindUser:
		return evaluateUser(identity, req)
	case KindProfitLoss:
		if req.Op != OpRead {
			return deny(msgReadOnly)
		}
		return evaluateRead(identity, req)
	case KindEmployee, KindAttendance, KindPayroll, KindIncome, KindExpense, KindSale:
		return evaluateScoped(identity, req)
	default:
		return deny(msgUnknownResource)
	}
}

// evaluateRead is shared by every kind whose reads are branch scoped.
// Reads never deny: STAFF is pinned to the home branch, everyone else gets
// the filter they asked for, or none.
func evaluateRead(identity domain.Identity, req Request) Decision {
	if home, ok := domain.HomeBranchOf(identity); ok {
		return filterTo(home)
	}
	if req.TargetBranchID != "" {
		return filterTo(req.TargetBranchID)
	}
	return allow()
}

func evaluateScoped(identity domain.Identity, req Request) Decision {
	if req.Op == OpRead {
		return evaluateRead(identity, req)
	}

	switch id := identity.(type) {
	case domain.Admin:
		if req.Op == OpCreate {
			return allowIn(req.TargetBranchID)
		}
		return allow()
	case domain.Manager:
		return deny(managerDenied(req.Kind, req.Op))
	case domain.Staff:
		switch req.Op {
		case OpCreate:
			if req.TargetBranchID == "" || req.TargetBranchID == id.HomeBranchID {
				return allowIn(id.HomeBranchID)
			}
		case OpUpdate, OpDelete:
			if req.OwnerBranchID == id.HomeBranchID {
				return allow()
			}
		}
		return deny(staffDenied(req.Kind, req.Op))
	}
	return deny(msgUnknownResource)
}

func evaluateBranch(identity domain.Identity, req Request) Decision {
	if req.Op == OpRead {
		if home, ok := domain.HomeBranchOf(identity); ok {
			return filterTo(home)
		}
		return allow()
	}
	if _, ok := identity.(domain.Admin); ok {
		return allow()
	}
	return deny(adminOnly(req.Op, "branches"))
}

func evaluateExpenseCategory(identity domain.Identity, req Request) Decision {
	if req.Op == OpRead {
		return allow()
	}
	if _, ok := identity.(domain.Admin); ok {
		return allow()
	}
	return deny(adminOnly(req.Op, "expense categories"))
}

func evaluateUser(identity domain.Identity, req Request) Decision {
	if req.Op == OpDelete && req.TargetUserID != "" && req.TargetUserID == identity.UserID() {
		return deny(msgSelfDelete)
	}
	if _, ok := identity.(domain.Admin); ok {
		return allow()
	}
	return deny(userDenied(req))
}

// Precheck evaluates req as if the record belonged to the caller's own home
// branch. A Deny here means no stored record could make the request allowed,
// so callers can refuse before looking the record up.
func Precheck(identity domain.Identity, req Request) Decision {
	if home, ok := domain.HomeBranchOf(identity); ok {
		req.OwnerBranchID = home
	}
	return Evaluate(identity, req)
}
