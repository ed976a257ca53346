// Command fallpick is a standalone, terminal-native picker: a thin CLI
// bootstrap wiring the picker engine's core against the reference
// strategies in strategy/, the cell-buffer Host Interface in hostui/, and
// a process-lifetime session store (spec §6's "a real host embeds these
// pieces" made concrete). A denops/editor embedding would wire the exact
// same Options and Host Interface against its own component set instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/vim-fall/fall.vim/action"
	"github.com/vim-fall/fall.vim/core"
	"github.com/vim-fall/fall.vim/hostui"
	"github.com/vim-fall/fall.vim/item"
	"github.com/vim-fall/fall.vim/logsink"
	"github.com/vim-fall/fall.vim/match"
	"github.com/vim-fall/fall.vim/picker"
	"github.com/vim-fall/fall.vim/preview"
	"github.com/vim-fall/fall.vim/render"
	"github.com/vim-fall/fall.vim/session"
	"github.com/vim-fall/fall.vim/sortstage"
	"github.com/vim-fall/fall.vim/strategy"
	"github.com/vim-fall/fall.vim/terminal"
)

// sessions is kept in memory for this process's lifetime only, matching
// spec §4.13's Non-goal of durable cross-process session storage.
var sessions = session.NewStore(0)

func main() {
	root := flag.String("root", ".", "directory to walk for picker items")
	saveAs := flag.String("save", "", "save the accepted query as a named session")
	resume := flag.String("resume", "", "resume a saved session by name or #number")
	flag.Parse()

	sink := logsink.New(os.Stderr, os.Stderr)

	query, err := resumeQuery(*resume)
	if err != nil {
		sink.Expected(err)
		os.Exit(1)
	}

	result, err := runPicker(*root, query)
	if err != nil {
		sink.Developer(err)
		os.Exit(1)
	}

	if result.Cancelled {
		return
	}

	if *saveAs != "" {
		ctx := item.Context{
			Query:         result.Query,
			FilteredItems: result.FilteredItems,
		}
		if err := sessions.Save(*saveAs, flag.Args(), ctx); err != nil {
			sink.Expected(err)
		} else {
			sink.Notice("session %q saved", *saveAs)
		}
	}

	printResult(result)
}

// resumeQuery parses the -resume flag per spec §6's "resume by
// {name?}[#{number}]": "name", "#number", and "name#number" are all
// accepted, name and number composing rather than being mutually
// exclusive.
func resumeQuery(resume string) (string, error) {
	if resume == "" {
		return "", nil
	}
	name, numberPart, hasHash := strings.Cut(resume, "#")
	q := session.LoadQuery{Name: name}
	if hasHash {
		n, err := strconv.Atoi(numberPart)
		if err != nil {
			return "", fmt.Errorf("fallpick: invalid -resume number %q", numberPart)
		}
		q.Number = n
	}
	sess, err := sessions.Load(q)
	if err != nil {
		return "", err
	}
	return sess.Context.Query, nil
}

func runPicker(root, initialQuery string) (picker.Result, error) {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return picker.Result{}, fmt.Errorf("fallpick: terminal init: %w", err)
	}
	core.RegisterCrashTerminal(term)
	defer core.RegisterCrashTerminal(nil)
	defer term.Fini()

	actions := action.NewMap()
	actions.Register("default", action.Func(func(_ context.Context, actx action.Context) (bool, error) {
		return false, nil
	}))

	p, err := picker.New(picker.Options{
		Matchers:   []match.Matcher{strategy.NewSubstrMatch()},
		Sorters:    []sortstage.Sorter{strategy.NewByScore(), strategy.NewByValue()},
		Renderers:  []render.Renderer{strategy.NewPlainText()},
		Previewers: []preview.Previewer{strategy.NewTextPreview(500)},
		Actions:    actions,
	})
	if err != nil {
		return picker.Result{}, err
	}

	screen := hostui.New(term)
	screen.SetHelpText(hostui.DefaultHelpText(actions.Names()))
	if initialQuery != "" {
		screen.SeedCmdline(initialQuery)
	}
	screen.Bind(p)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closerStack := p.Open(ctx, strategy.NewWalkSource(root), screen, screen, screen, screen, screen, screen)
	defer closerStack.Close()

	screen.Run(ctx)

	return p.Run(ctx), nil
}

func printResult(result picker.Result) {
	if len(result.SelectedItems) > 0 {
		for _, it := range result.SelectedItems {
			fmt.Println(it.Value)
		}
		return
	}
	if result.Item != nil {
		fmt.Println(result.Item.Value)
	}
}
