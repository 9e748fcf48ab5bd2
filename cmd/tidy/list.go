// List command queries tasks with optional filters and sorting.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/tidy/internal/app"
	"github.com/dukaforge/tidy/pkg/types"
)

var (
	listStatus   string
	listProject  string
	listTag      string
	listSearch   string
	listPriority string
	listOverdue  bool
	listSort     string
	listDesc     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks with optional filters",
	Long: `List prints tasks matching every given filter, sorted by one key.

Example:
  tidy list
  tidy list --status open --project Work
  tidy list --tag go --sort priority
  tidy list --overdue
  tidy list --search milk --sort created --desc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := buildListQuery()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitUserError)
		}

		store, closeStore, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer closeStore()

		svc := app.NewService(store)
		tasks := app.ApplyListQuery(svc.List(), query, time.Now().UTC())
		printTaskList(tasks)
		return nil
	},
}

func buildListQuery() (app.ListQuery, error) {
	q := app.ListQuery{
		Project: listProject,
		Tag:     listTag,
		Search:  listSearch,
		Overdue: listOverdue,
		Desc:    listDesc,
	}

	switch listStatus {
	case "all":
		q.Status = app.StatusAny
	case "open":
		q.Status = app.StatusOpenOnly
	case "done":
		q.Status = app.StatusDoneOnly
	default:
		return app.ListQuery{}, fmt.Errorf("invalid status %q (valid: open, done, all)", listStatus)
	}

	if listPriority != "" {
		priority, err := types.ParsePriority(listPriority)
		if err != nil {
			return app.ListQuery{}, err
		}
		q.Priority = &priority
	}

	switch listSort {
	case "due":
		q.Sort = app.SortDue
	case "priority":
		q.Sort = app.SortPriority
	case "created":
		q.Sort = app.SortCreated
	default:
		return app.ListQuery{}, fmt.Errorf("invalid sort %q (valid: due, priority, created)", listSort)
	}

	return q, nil
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "all", "status filter: open, done, all")
	listCmd.Flags().StringVar(&listProject, "project", "", "project filter (case-insensitive exact match)")
	listCmd.Flags().StringVar(&listTag, "tag", "", "tag filter")
	listCmd.Flags().StringVar(&listSearch, "search", "", "substring search over title and notes")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "priority filter P1-P4")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "only open tasks past their due instant")
	listCmd.Flags().StringVar(&listSort, "sort", "due", "sort key: due, priority, created")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "reverse the sort order")
}
