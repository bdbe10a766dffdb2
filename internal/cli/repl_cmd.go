// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/daynight-tui/internal/config"
	"github.com/jeranaias/daynight-tui/internal/daynight"
	"github.com/jeranaias/daynight-tui/internal/storage"
)

const replHelp = `Commands:
  N          move the slider to N (0-100)
  +N / -N    move the slider by N
  t, toggle  switch between night and day
  show       print the current frame
  help       print this help
  quit, exit leave
`

// =============================================================================
// LINE EDITOR
// =============================================================================

// lineReader provides input history and line editing for the REPL.
type lineReader struct {
	line        *liner.State
	historyFile string
}

func newLineReader() *lineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	r := &lineReader{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
	return r
}

// ReadInput reads a line of input with the given prompt.
func (r *lineReader) ReadInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history with owner-only permissions and closes the liner.
func (r *lineReader) Close() {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			r.line.WriteHistory(f)
			f.Close()
		}
	}
	r.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// replSession applies REPL commands to the state and persists every change.
type replSession struct {
	rt    *runtime
	store storage.Store
	state daynight.State
	out   io.Writer
	st    *outputStyles
}

// errQuit ends the REPL loop.
var errQuit = errors.New("quit")

// exec runs one input line. It returns errQuit for quit/exit.
func (s *replSession) exec(input string) error {
	input = strings.TrimSpace(input)
	eng := s.rt.engine

	switch strings.ToLower(input) {
	case "":
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprint(s.out, replHelp)
		return nil
	case "show":
		s.show()
		return nil
	case "t", "toggle":
		return s.update(eng.Toggle(s.state), "toggle")
	}

	if input[0] == '+' || input[0] == '-' {
		delta, err := strconv.Atoi(input)
		if err != nil {
			return fmt.Errorf("invalid step %q", input)
		}
		return s.update(eng.Nudge(s.state, delta), "slide")
	}

	v, err := parseValue(input)
	if err != nil {
		return fmt.Errorf("%w (type 'help' for commands)", err)
	}
	return s.update(eng.Slide(s.state, v), "slide")
}

func (s *replSession) update(next daynight.State, action string) error {
	s.state = next
	if err := saveState(s.rt, s.store, s.state, action); err != nil {
		// The state change stands even when it could not be stored.
		s.show()
		return err
	}
	s.show()
	return nil
}

func (s *replSession) show() {
	f := s.rt.engine.Render(s.state)
	fmt.Fprintf(s.out, "%s  %s  bg %s  text %s\n",
		s.st.Swatch(f, 8), s.state, f.Background.Hex(), f.Text.Hex())
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Drive the widget line by line",
		Long:  "Reads commands from the terminal: a number moves the slider, 't' toggles,\n'show' prints the frame. Every change is stored.\n\n" + replHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonMode(cmd) {
				return fmt.Errorf("the REPL has no JSON output")
			}
			return withStore(cmd, func(rt *runtime, store storage.Store, state daynight.State, warning string) error {
				w := cmd.OutOrStdout()
				sess := &replSession{rt: rt, store: store, state: state, out: w, st: newOutputStyles(w)}
				if warning != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), sess.st.Warning.Render("Warning: "+warning))
				}
				sess.show()

				reader := newLineReader()
				defer reader.Close()

				for {
					input, err := reader.ReadInput("daynight> ")
					if err != nil {
						// Ctrl+C, Ctrl+D or a closed stdin end the session.
						fmt.Fprintln(w)
						return nil
					}
					if err := sess.exec(input); err != nil {
						if errors.Is(err, errQuit) {
							return nil
						}
						fmt.Fprintln(cmd.ErrOrStderr(), sess.st.Warning.Render("Error: "+err.Error()))
					}
				}
			})
		},
	}
}
