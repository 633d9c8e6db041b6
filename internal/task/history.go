package task

// Field names the part of a task that a history entry records a change to.
type Field string

const (
	FieldLifecycle Field = "lifecycle"
	FieldStatus    Field = "status"
	FieldPriority  Field = "priority"
	FieldAssignee  Field = "assigned_user_id"
)

// Actor is the user embedded in a history entry. Entries written without
// one are attributed to the system.
type Actor struct {
	FullName string `json:"full_name"`
}

// HistoryEntry is one immutable field-change record in a task's audit
// trail. Old and new values are opaque strings; for FieldAssignee the
// value holds a user id rather than a display string.
type HistoryEntry struct {
	ID        ID     `json:"history_id"`
	Field     Field  `json:"field_name"`
	Action    string `json:"action"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	ChangedAt Time   `json:"changed_at"`
	User      *Actor `json:"user"`
}
