package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/mesh-intelligence/questions/pkg/types"
)

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a borderless table writer with the given header.
func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func itoa[T ~int64](id T) string {
	return strconv.FormatInt(int64(id), 10)
}

func (a *app) printUsers(w io.Writer, users []types.User) error {
	if a.jsonMode {
		return writeJSON(w, users)
	}
	table := newTable(w, "ID", "First Name", "Last Name")
	for _, u := range users {
		table.Append([]string{itoa(u.ID), u.FirstName, u.LastName})
	}
	table.Render()
	return nil
}

func (a *app) printQuestions(w io.Writer, questions []types.Question) error {
	if a.jsonMode {
		return writeJSON(w, questions)
	}
	table := newTable(w, "ID", "Title", "Author", "Body")
	for _, q := range questions {
		table.Append([]string{itoa(q.ID), q.Title, itoa(q.Author), q.Body})
	}
	table.Render()
	return nil
}

func (a *app) printReplies(w io.Writer, replies []types.Reply) error {
	if a.jsonMode {
		return writeJSON(w, replies)
	}
	table := newTable(w, "ID", "Question", "Parent", "User", "Body")
	for _, r := range replies {
		parent := "-"
		if id, ok := r.ParentReply(); ok {
			parent = itoa(id)
		}
		table.Append([]string{itoa(r.ID), itoa(r.Question()), parent, itoa(r.Author()), r.Body})
	}
	table.Render()
	return nil
}

func (a *app) printFollows(w io.Writer, follows []types.QuestionFollow) error {
	if a.jsonMode {
		return writeJSON(w, follows)
	}
	table := newTable(w, "ID", "Question", "Follower")
	for _, f := range follows {
		table.Append([]string{itoa(f.ID), itoa(f.QuestionID), itoa(f.Follower)})
	}
	table.Render()
	return nil
}

func (a *app) printLikes(w io.Writer, likes []types.QuestionLike) error {
	if a.jsonMode {
		return writeJSON(w, likes)
	}
	table := newTable(w, "ID", "User", "Question")
	for _, l := range likes {
		table.Append([]string{itoa(l.ID), itoa(l.UserID), itoa(l.QuestionID)})
	}
	table.Render()
	return nil
}

// printOne prints a single record. JSON mode emits the object rather than a
// one-element array; table mode reuses the list printer.
func printOne[T any](a *app, w io.Writer, rec *T, list func(io.Writer, []T) error) error {
	if a.jsonMode {
		return writeJSON(w, rec)
	}
	return list(w, []T{*rec})
}
