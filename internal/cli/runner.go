package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/kingrocfella/todolist/internal/config"
	"github.com/kingrocfella/todolist/internal/logging"
	"github.com/kingrocfella/todolist/internal/model"
	"github.com/kingrocfella/todolist/internal/store"
	"github.com/kingrocfella/todolist/internal/tui"
	"github.com/kingrocfella/todolist/internal/ui"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// runTUI is swapped out in tests.
var runTUI = tui.Run

// Run parses flags, dispatches subcommands and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Parse errors are reported through ui.Fail below.
	fs := config.NewFlagSet("todo", io.Discard)
	cfg, rest, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			PrintHelp(stdout, fs)
			return 0
		}
		ui.Fail(stderr, err.Error())
		return 2
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		ui.Fail(stderr, err.Error())
		return 2
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Prefix: "todo"})
	if err != nil {
		ui.Fail(stderr, "logging: "+err.Error())
		return 1
	}
	defer closer.Close()
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	opts := []store.Option{store.WithLogger(logger)}
	if !cfg.Seed {
		opts = append(opts, store.WithSeed(nil))
	}
	s := store.New(opts...)

	cmd := "tui"
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}
	logger.Debug("run", "cmd", cmd, "args", rest)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(stdout, fs)
		return 0

	case "version":
		fmt.Fprintln(stdout, "todo "+Version)
		return 0

	case "tui":
		if err := runTUI(ctx, s, tui.Options{AltScreen: cfg.AltScreen, Logger: logger}); err != nil {
			logger.Error("tui exited", "err", err)
			ui.Fail(stderr, "tui: "+err.Error())
			return 1
		}
		return 0

	case "ls":
		if len(rest) != 0 {
			ui.Fail(stderr, "usage: todo ls")
			return 2
		}
		return doList(stdout, s, cfg.Group)
	}

	ui.Fail(stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(stderr)
	PrintHelp(stderr, fs)
	return 2
}

func PrintHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `todo - a tiny todo list

Usage:
  todo [flags] [subcommand]

Subcommands:
  tui                Open the interactive list (default)
  ls                 Print the starting list and exit
  version            Print the version
  help               Show this help

Keys (tui):
  space/enter        Complete or reopen the selected todo
  a                  Add a todo
  e                  Edit the selected todo (open todos only)
  d                  Delete the selected todo (asks first)
  /                  Filter
  q                  Quit

Flags:
%s
Config file: $XDG_CONFIG_HOME/todo/config.toml or ~/.todo.toml
Environment: TODO_THEME, TODO_LOG_LEVEL, TODO_LOG_FILE, TODO_NO_SEED
`, fs.FlagUsages())
}

// -------------- subcommand impls ----------------

func doList(w io.Writer, s *store.Store, group bool) int {
	todos := s.Todos()
	t := ui.Current()

	// Header + progress
	d, p := model.Stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todo List"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: run `todo` to edit the list"))
	ui.Panel(w, lines)
	return 0
}

// -------------- rendering helpers --------------

func flatLines(todos []model.Todo) []string {
	t := ui.Current()
	if len(todos) == 0 {
		return []string{t.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(todos))
	for i, it := range todos {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.BoxUnchecked)
		name, desc := it.Name, it.Description
		if r := []rune(desc); len(r) > 80 {
			desc = string(r[:77]) + "..."
		}
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
			name, desc = t.Done.Render(name), t.Done.Render(desc)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, name))
		if it.Description != "" {
			out = append(out, "       "+t.Muted.Render(desc))
		}
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	var pend, done []model.Todo
	for _, it := range todos {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
