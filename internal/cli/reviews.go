package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskdeck/internal/review"
	"taskdeck/internal/task"
	"taskdeck/internal/tui/components"
)

var (
	reviewsReviewed bool
	reviewsAnalyst  string
	reviewsDate     string
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List the review queue",
	Long:  `List completed tasks pending review, or with --reviewed the ones already reviewed. Filters compose with AND.`,
	RunE:  runReviews,
}

func init() {
	reviewsCmd.Flags().BoolVar(&reviewsReviewed, "reviewed", false, "show reviewed tasks instead of pending ones")
	reviewsCmd.Flags().StringVar(&reviewsAnalyst, "analyst", "", "restrict to tasks assigned to this user id")
	reviewsCmd.Flags().StringVar(&reviewsDate, "date", "", "restrict to tasks created on this local calendar date (YYYY-MM-DD)")
}

func runReviews(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tasks, err := client.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	users, err := client.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	filter := review.Filter{
		Reviewed: reviewsReviewed,
		Analyst:  task.ID(reviewsAnalyst),
		Date:     reviewsDate,
	}
	matched := review.Apply(tasks, filter)
	if len(matched) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	directory := task.Directory(users)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if reviewsReviewed {
		fmt.Fprintln(w, "ID\tDATE\tCOMPANY\tANALYST\tQTY\tRATING\tERROR STATUS")
	} else {
		fmt.Fprintln(w, "ID\tDATE\tCOMPANY\tANALYST\tQTY")
	}

	for _, t := range matched {
		analyst := "-"
		if !t.AssignedUserID.IsZero() {
			if name, ok := directory.NameFor(t.AssignedUserID); ok {
				analyst = name
			} else {
				analyst = string(t.AssignedUserID)
			}
		}

		if reviewsReviewed {
			rating := "-"
			if t.Rating != nil {
				rating = components.Stars(*t.Rating)
			}
			errStatus := "-"
			if t.ErrorStatus != nil {
				errStatus = string(*t.ErrorStatus)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\t%s\n",
				t.ID, t.CreatedAt.Local().Format(review.DateLayout),
				t.CompanyName, analyst, t.AchievedQty, t.TargetQty, rating, errStatus)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\n",
				t.ID, t.CreatedAt.Local().Format(review.DateLayout),
				t.CompanyName, analyst, t.AchievedQty, t.TargetQty)
		}
	}

	return w.Flush()
}
