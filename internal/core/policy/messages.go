package policy

import "fmt"

const (
	msgUnauthenticated = "Unauthorized"
	msgUnknownResource = "Access denied"
	msgReadOnly        = "This resource is read-only"
	msgSelfDelete      = "You cannot delete your own account"
)

// nouns holds the wording used in denials for the branch-scoped kinds.
// create is used by the manager CREATE message, which names records.
var nouns = map[Kind]struct{ create, other string }{
	KindEmployee:   {create: "employees", other: "employees"},
	KindAttendance: {create: "attendance records", other: "attendance"},
	KindPayroll:    {create: "payroll records", other: "payroll"},
	KindIncome:     {create: "income records", other: "income"},
	KindExpense:    {create: "expense records", other: "expenses"},
	KindSale:       {create: "sales records", other: "sales"},
}

func verb(op Op) string {
	switch op {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "view"
	}
}

func managerDenied(kind Kind, op Op) string {
	n := nouns[kind]
	if op == OpCreate {
		return fmt.Sprintf("Managers cannot create %s", n.create)
	}
	return fmt.Sprintf("Managers cannot %s %s", verb(op), n.other)
}

func staffDenied(kind Kind, op Op) string {
	return fmt.Sprintf("You can only %s %s in your branch", verb(op), nouns[kind].other)
}

func adminOnly(op Op, noun string) string {
	return fmt.Sprintf("Only admins can %s %s", verb(op), noun)
}

func userDenied(req Request) string {
	switch req.Op {
	case OpRead:
		if req.TargetUserID != "" {
			return "Only admins can view user details"
		}
		return "Only admins can view user list"
	default:
		return fmt.Sprintf("Only admins can %s users", verb(req.Op))
	}
}
