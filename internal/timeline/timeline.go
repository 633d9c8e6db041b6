// Package timeline turns a task's audit history into display records for
// the chronological activity view. It is pure data transformation and has
// no rendering dependencies.
package timeline

import (
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"taskdeck/internal/task"
)

// Icon categorizes the symbol shown next to a timeline item. Mapping a
// category to an actual glyph belongs to the rendering layer.
type Icon int

const (
	IconDocument Icon = iota
	IconCheck
	IconClock
	IconAlert
	IconPerson
	IconEdit
)

// Tone categorizes the accent color of a timeline item.
type Tone int

const (
	ToneCreated Tone = iota
	ToneSuccess
	ToneInfo
	ToneWarn
	TonePerson
	ToneNeutral
)

// Item is one rendered entry of the audit timeline.
type Item struct {
	Icon       Icon
	Tone       Tone
	FieldLabel string
	Action     string
	When       string
	Ago        string
	Value      string
	Actor      string
	Latest     bool
}

const whenLayout = "Jan 2, 3:04 PM"

// CreatedEntryID identifies the client-synthesized creation entry. The
// backend issues numeric history ids, so it can never collide.
const CreatedEntryID task.ID = "created"

// Build produces display items for the given history, in order. The first
// entry is flagged as latest. Empty history yields an empty, non-nil slice.
func Build(entries []task.HistoryEntry, users task.Directory) []Item {
	items := make([]Item, 0, len(entries))
	for i, e := range entries {
		items = append(items, Item{
			Icon:       iconFor(e.Field, e.NewValue),
			Tone:       toneFor(e.Field, e.NewValue),
			FieldLabel: fieldLabel(e.Field),
			Action:     actionText(e.Action),
			When:       e.ChangedAt.Local().Format(whenLayout),
			Ago:        humanize.Time(e.ChangedAt.Time),
			Value:      renderValue(e, users),
			Actor:      actorName(e),
			Latest:     i == 0,
		})
	}
	return items
}

// WithCreation injects the synthetic creation entry for t into history and
// returns the combined list sorted newest first. Applying it to an already
// merged list neither duplicates the entry nor changes the order.
func WithCreation(history []task.HistoryEntry, t task.Task) []task.HistoryEntry {
	merged := make([]task.HistoryEntry, 0, len(history)+1)
	for _, e := range history {
		if e.ID == CreatedEntryID {
			continue
		}
		merged = append(merged, e)
	}
	merged = append(merged, task.HistoryEntry{
		ID:        CreatedEntryID,
		Field:     task.FieldLifecycle,
		Action:    "Task Created",
		NewValue:  "Task Created",
		ChangedAt: t.CreatedAt,
	})
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ChangedAt.After(merged[j].ChangedAt.Time)
	})
	return merged
}

func iconFor(field task.Field, newValue string) Icon {
	switch field {
	case task.FieldLifecycle:
		return IconDocument
	case task.FieldStatus:
		if newValue == string(task.StatusCompleted) {
			return IconCheck
		}
		return IconClock
	case task.FieldPriority:
		return IconAlert
	case task.FieldAssignee:
		return IconPerson
	default:
		return IconEdit
	}
}

func toneFor(field task.Field, newValue string) Tone {
	switch field {
	case task.FieldLifecycle:
		return ToneCreated
	case task.FieldStatus:
		if newValue == string(task.StatusCompleted) {
			return ToneSuccess
		}
		return ToneInfo
	case task.FieldPriority:
		return ToneWarn
	case task.FieldAssignee:
		return TonePerson
	default:
		return ToneNeutral
	}
}

func fieldLabel(field task.Field) string {
	return strings.ReplaceAll(string(field), "_", " ")
}

func actionText(action string) string {
	if action == "" {
		return "Update"
	}
	return action
}

func renderValue(e task.HistoryEntry, users task.Directory) string {
	if e.Field == task.FieldAssignee {
		if e.NewValue == "" {
			return "Assigned to Unassigned"
		}
		name, ok := users.NameFor(task.ID(e.NewValue))
		if !ok {
			name = e.NewValue
		}
		return "Assigned to " + name
	}
	if e.OldValue != "" && e.NewValue != "" {
		return e.OldValue + " → " + e.NewValue
	}
	return "Set to " + e.NewValue
}

func actorName(e task.HistoryEntry) string {
	if e.User != nil && e.User.FullName != "" {
		return e.User.FullName
	}
	return "System"
}
