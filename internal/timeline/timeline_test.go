package timeline

import (
	"testing"
	"time"

	"taskdeck/internal/task"
)

func ts(t *testing.T, value string) task.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse timestamp %s: %v", value, err)
	}
	return task.Time{Time: parsed}
}

func TestIconAndToneMapping(t *testing.T) {
	tests := []struct {
		name     string
		field    task.Field
		newValue string
		wantIcon Icon
		wantTone Tone
	}{
		{"lifecycle", task.FieldLifecycle, "Task Created", IconDocument, ToneCreated},
		{"status completed", task.FieldStatus, "Completed", IconCheck, ToneSuccess},
		{"status in progress", task.FieldStatus, "In Progress", IconClock, ToneInfo},
		{"status pending", task.FieldStatus, "Pending", IconClock, ToneInfo},
		{"priority", task.FieldPriority, "Critical", IconAlert, ToneWarn},
		{"assignee", task.FieldAssignee, "7", IconPerson, TonePerson},
		{"unknown field", task.Field("target_qty"), "500", IconEdit, ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iconFor(tt.field, tt.newValue); got != tt.wantIcon {
				t.Errorf("iconFor(%q, %q) = %v, want %v", tt.field, tt.newValue, got, tt.wantIcon)
			}
			if got := toneFor(tt.field, tt.newValue); got != tt.wantTone {
				t.Errorf("toneFor(%q, %q) = %v, want %v", tt.field, tt.newValue, got, tt.wantTone)
			}
		})
	}
}

func TestRenderValue_Assignee(t *testing.T) {
	users := task.Directory{
		{ID: "7", FullName: "Priya Shah", Role: task.RoleAnalyst},
	}

	tests := []struct {
		name     string
		newValue string
		want     string
	}{
		{"resolved", "7", "Assigned to Priya Shah"},
		{"unresolved falls back to id", "99", "Assigned to 99"},
		{"empty means unassigned", "", "Assigned to Unassigned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := task.HistoryEntry{Field: task.FieldAssignee, NewValue: tt.newValue}
			if got := renderValue(entry, users); got != tt.want {
				t.Errorf("renderValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderValue_Transition(t *testing.T) {
	entry := task.HistoryEntry{
		Field:    task.FieldStatus,
		OldValue: "Pending",
		NewValue: "In Progress",
	}
	got := renderValue(entry, nil)
	if got != "Pending → In Progress" {
		t.Errorf("expected transition rendering, got %q", got)
	}
}

func TestRenderValue_SetTo(t *testing.T) {
	entry := task.HistoryEntry{Field: task.FieldPriority, NewValue: "High"}
	if got := renderValue(entry, nil); got != "Set to High" {
		t.Errorf("expected \"Set to High\", got %q", got)
	}
}

func TestActorResolution(t *testing.T) {
	withActor := task.HistoryEntry{User: &task.Actor{FullName: "Dev Patel"}}
	if got := actorName(withActor); got != "Dev Patel" {
		t.Errorf("expected embedded actor name, got %q", got)
	}

	withoutActor := task.HistoryEntry{}
	if got := actorName(withoutActor); got != "System" {
		t.Errorf("expected System for missing actor, got %q", got)
	}
}

func TestActionFallsBackToUpdate(t *testing.T) {
	if got := actionText(""); got != "Update" {
		t.Errorf("expected Update fallback, got %q", got)
	}
	if got := actionText("Status Changed"); got != "Status Changed" {
		t.Errorf("expected action preserved, got %q", got)
	}
}

func TestFieldLabelHumanized(t *testing.T) {
	if got := fieldLabel(task.FieldAssignee); got != "assigned user id" {
		t.Errorf("expected underscores replaced, got %q", got)
	}
}

func TestBuild_Empty(t *testing.T) {
	items := Build(nil, nil)
	if items == nil {
		t.Fatal("expected non-nil empty result")
	}
	if len(items) != 0 {
		t.Errorf("expected 0 items, got %d", len(items))
	}
}

func TestBuild_LatestFlag(t *testing.T) {
	entries := []task.HistoryEntry{
		{ID: "3", Field: task.FieldStatus, NewValue: "Completed", ChangedAt: ts(t, "2024-03-16T10:00:00Z")},
		{ID: "2", Field: task.FieldStatus, NewValue: "In Progress", ChangedAt: ts(t, "2024-03-15T10:00:00Z")},
		{ID: "1", Field: task.FieldPriority, NewValue: "High", ChangedAt: ts(t, "2024-03-14T10:00:00Z")},
	}

	items := Build(entries, nil)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if !items[0].Latest {
		t.Error("expected first item flagged latest")
	}
	for i := 1; i < len(items); i++ {
		if items[i].Latest {
			t.Errorf("expected item %d not flagged latest", i)
		}
	}
}

func TestWithCreation_InjectsAndSorts(t *testing.T) {
	created := ts(t, "2024-03-10T09:00:00Z")
	history := []task.HistoryEntry{
		{ID: "1", Field: task.FieldStatus, NewValue: "In Progress", ChangedAt: ts(t, "2024-03-12T10:00:00Z")},
		{ID: "2", Field: task.FieldStatus, NewValue: "Completed", ChangedAt: ts(t, "2024-03-14T10:00:00Z")},
	}
	tk := task.Task{ID: "42", CreatedAt: created}

	merged := WithCreation(history, tk)
	if len(merged) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(merged))
	}

	// Newest first
	for i := 1; i < len(merged); i++ {
		if merged[i].ChangedAt.After(merged[i-1].ChangedAt.Time) {
			t.Errorf("entries not in descending order at index %d", i)
		}
	}

	last := merged[len(merged)-1]
	if last.ID != CreatedEntryID {
		t.Errorf("expected synthetic entry last, got id %s", last.ID)
	}
	if last.Field != task.FieldLifecycle || last.NewValue != "Task Created" {
		t.Errorf("unexpected synthetic entry: %+v", last)
	}
	if !last.ChangedAt.Equal(created.Time) {
		t.Errorf("synthetic entry timestamp = %v, want task creation %v", last.ChangedAt, created)
	}
	if actorName(last) != "System" {
		t.Errorf("expected synthetic entry attributed to System, got %q", actorName(last))
	}

	seen := map[task.ID]bool{}
	for _, e := range merged {
		if seen[e.ID] {
			t.Errorf("duplicate history id %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestWithCreation_Idempotent(t *testing.T) {
	history := []task.HistoryEntry{
		{ID: "1", Field: task.FieldStatus, NewValue: "Completed", ChangedAt: ts(t, "2024-03-14T10:00:00Z")},
	}
	tk := task.Task{ID: "42", CreatedAt: ts(t, "2024-03-10T09:00:00Z")}

	once := WithCreation(history, tk)
	twice := WithCreation(once, tk)

	if len(once) != len(twice) {
		t.Fatalf("re-application changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("re-application changed order at index %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestWithCreation_ZeroHistory(t *testing.T) {
	tk := task.Task{ID: "42", CreatedAt: ts(t, "2024-03-10T09:00:00Z")}

	merged := WithCreation(nil, tk)
	if len(merged) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(merged))
	}
	if merged[0].ID != CreatedEntryID {
		t.Errorf("expected the synthetic creation entry, got id %s", merged[0].ID)
	}

	items := Build(merged, nil)
	if len(items) != 1 {
		t.Fatalf("expected one timeline item, got %d", len(items))
	}
	if items[0].Value != "Set to Task Created" {
		t.Errorf("unexpected value rendering %q", items[0].Value)
	}
	if items[0].Actor != "System" {
		t.Errorf("expected System actor, got %q", items[0].Actor)
	}
	if !items[0].Latest {
		t.Error("expected the only entry to be flagged latest")
	}
}
