// Output rendering for tidy CLI commands, in human and JSON form.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dukaforge/tidy/pkg/types"
)

// taskView is the JSON shape emitted by --json output.
type taskView struct {
	ID          string   `json:"id"`
	ShortID     string   `json:"short_id"`
	Title       string   `json:"title"`
	Notes       *string  `json:"notes,omitempty"`
	Project     string   `json:"project"`
	Tags        []string `json:"tags,omitempty"`
	Status      string   `json:"status"`
	CompletedAt *string  `json:"completed_at,omitempty"`
	Priority    string   `json:"priority"`
	Due         *string  `json:"due,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func viewOf(t types.Task) taskView {
	v := taskView{
		ID:        t.ID.String(),
		ShortID:   t.ID.Short(),
		Title:     t.Title.String(),
		Project:   t.Project.String(),
		Status:    t.Status.Label(),
		Priority:  t.Priority.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	if t.Notes != nil {
		notes := t.Notes.String()
		v.Notes = &notes
	}
	for _, tag := range t.Tags {
		v.Tags = append(v.Tags, tag.String())
	}
	if completed, ok := t.Status.CompletedAt(); ok {
		s := completed.Format(time.RFC3339)
		v.CompletedAt = &s
	}
	if t.Due != nil {
		s := t.Due.Time().Format(time.RFC3339)
		v.Due = &s
	}
	return v
}

// printJSON marshals v with indentation to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// printTaskList renders tasks one per line in aligned columns.
func printTaskList(tasks []types.Task) {
	if flagJSON {
		views := make([]taskView, len(tasks))
		for i, t := range tasks {
			views[i] = viewOf(t)
		}
		printJSON(views)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, t := range tasks {
		due := ""
		if t.Due != nil {
			due = t.Due.Time().Format("2006-01-02 15:04")
		}
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = "#" + tag.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID.Short(), t.Status.Label(), t.Priority.String(),
			t.Title.String(), t.Project.String(), due, strings.Join(tags, " "))
	}
	w.Flush()
}

// printTaskDetail renders one task as a multi-line record.
func printTaskDetail(t types.Task) {
	if flagJSON {
		printJSON(viewOf(t))
		return
	}

	fmt.Printf("id:        %s\n", t.ID)
	fmt.Printf("title:     %s\n", t.Title)
	fmt.Printf("status:    %s\n", t.Status.Label())
	if completed, ok := t.Status.CompletedAt(); ok {
		fmt.Printf("completed: %s\n", completed.Format(time.RFC3339))
	}
	fmt.Printf("priority:  %s\n", t.Priority)
	fmt.Printf("project:   %s\n", t.Project)
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = tag.String()
		}
		fmt.Printf("tags:      %s\n", strings.Join(tags, ", "))
	}
	if t.Due != nil {
		fmt.Printf("due:       %s\n", t.Due.Time().Format(time.RFC3339))
	}
	if t.Notes != nil {
		fmt.Printf("notes:     %s\n", t.Notes)
	}
	fmt.Printf("created:   %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Printf("updated:   %s\n", t.UpdatedAt.Format(time.RFC3339))
}
