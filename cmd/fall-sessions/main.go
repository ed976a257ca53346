// Command fall-sessions is a devtool for inspecting the shape of the
// Session Store (spec §4.13): since sessions are process-lifetime only
// (no durable cross-process storage, by design), this prints a table of
// whatever sessions a Store holds at the point main runs rather than
// reading another process's live state. Wired here with a handful of
// representative sample saves so the table formatting itself can be
// exercised and reviewed independently of a real fallpick run.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/session"
)

func main() {
	store := session.NewStore(0)
	seedSampleSessions(store)

	sessions := store.List()
	if len(sessions) == 0 {
		fmt.Println("no sessions")
		return
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"#", "name", "args", "query", "items"})
	for i, sess := range sessions {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			sess.Name,
			strings.Join(sess.Args, " "),
			sess.Context.Query,
			fmt.Sprintf("%d", len(sess.Context.FilteredItems)),
		})
	}
	table.Render()
}

func seedSampleSessions(store *session.Store) {
	samples := []struct {
		name  string
		args  []string
		query string
		items int
	}{
		{"grep", []string{"internal/"}, "TODO", 3},
		{"files", []string{"."}, "main.go", 1},
	}
	for _, s := range samples {
		items := make([]item.Item, s.items)
		for i := range items {
			items[i] = item.Item{Value: fmt.Sprintf("sample-%d", i)}
		}
		ctx := item.Context{Query: s.query, FilteredItems: items}
		_ = store.Save(s.name, s.args, ctx)
	}
}
