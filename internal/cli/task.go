package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdeck/internal/task"
	"taskdeck/internal/timeline"
	"taskdeck/internal/tui/components"
)

var taskCmd = &cobra.Command{
	Use:   "task <id>",
	Short: "Show one task with its audit timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runTask,
}

func runTask(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	id := task.ID(args[0])

	t, err := client.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch task %s: %w", id, err)
	}
	comments, err := client.ListComments(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}
	history, err := client.ListHistory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}
	users, err := client.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}
	directory := task.Directory(users)

	fmt.Printf("%s  #%s\n", t.CompanyName, t.ID)
	fmt.Printf("%s • %s • %s\n", t.DocumentType, t.Status, t.Priority)
	if !t.AssignedUserID.IsZero() {
		analyst := string(t.AssignedUserID)
		if name, ok := directory.NameFor(t.AssignedUserID); ok {
			analyst = name
		}
		fmt.Printf("Assigned to %s\n", analyst)
	}
	if t.Rating != nil {
		fmt.Printf("Review: %s", components.Stars(*t.Rating))
		if t.ErrorStatus != nil {
			fmt.Printf("  %s", *t.ErrorStatus)
		}
		fmt.Println()
	}
	if t.Description != "" {
		fmt.Printf("\n%s\n", t.Description)
	}

	if len(comments) > 0 {
		fmt.Println("\nComments:")
		for _, comment := range comments {
			author := string(comment.UserID)
			if name, ok := directory.NameFor(comment.UserID); ok {
				author = name
			}
			fmt.Printf("  %s (%s): %s\n", author, comment.CreatedAt.Local().Format("Jan 2, 3:04 PM"), comment.Text)
		}
	}

	fmt.Println("\nActivity:")
	merged := timeline.WithCreation(history, t)
	for _, item := range timeline.Build(merged, directory) {
		fmt.Printf("  %s — %s\n", item.FieldLabel, item.Action)
		fmt.Printf("    %s\n", item.Value)
		fmt.Printf("    %s (%s) • by %s\n", item.When, item.Ago, item.Actor)
	}

	return nil
}
