package domain

import "regexp"

// objectIDPattern matches the identifier shape issued by the store.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// AssigneeKind discriminates how an assignee was referenced by the caller.
type AssigneeKind string

const (
	AssigneeKindID   AssigneeKind = "ID"
	AssigneeKindName AssigneeKind = "NAME"
)

// AssigneeRef is a tagged reference to a staff member: either a stable
// identifier or a human-readable name that still needs resolution. Callers
// classify the raw input exactly once, at the boundary, instead of sniffing
// the shape at point of use.
type AssigneeRef struct {
	kind  AssigneeKind
	value string
}

// ParseAssigneeRef classifies a raw assignee value. A 24-character hex string
// is treated as an identifier; anything else is a name.
func ParseAssigneeRef(raw string) AssigneeRef {
	if IsObjectIDHex(raw) {
		return AssigneeRef{kind: AssigneeKindID, value: raw}
	}
	return AssigneeRef{kind: AssigneeKindName, value: raw}
}

// AssigneeID builds a reference that is already an identifier.
func AssigneeID(id string) AssigneeRef {
	return AssigneeRef{kind: AssigneeKindID, value: id}
}

// AssigneeName builds a reference that requires name resolution.
func AssigneeName(name string) AssigneeRef {
	return AssigneeRef{kind: AssigneeKindName, value: name}
}

// Kind reports how the assignee was referenced.
func (r AssigneeRef) Kind() AssigneeKind {
	return r.kind
}

// Value returns the raw identifier or name.
func (r AssigneeRef) Value() string {
	return r.value
}

// IsObjectIDHex reports whether s has the store's identifier shape.
func IsObjectIDHex(s string) bool {
	return objectIDPattern.MatchString(s)
}
