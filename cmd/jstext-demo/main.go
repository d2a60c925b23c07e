package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/iw2rmb/jstext"
	"github.com/iw2rmb/jstext/internal/repl"
	"github.com/iw2rmb/jstext/str"
)

type flags struct {
	locale  string
	history int
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "jstext-demo [text]",
		Short:         "Interactive playground for jstext string operations",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       jstext.Version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := f.config(firstArg(args, "Hello, world"))
			p := tea.NewProgram(newModel(cfg, DefaultStyle()),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
	root.PersistentFlags().StringVar(&f.locale, "locale", "", "locale for toLocale* commands (default en-US)")
	root.PersistentFlags().IntVar(&f.history, "history", 0, "undo depth; negative disables undo")

	root.AddCommand(newEvalCmd(&f))
	root.AddCommand(newVersionCmd())
	return root
}

func (f flags) config(text string) repl.Config {
	return repl.Config{
		Text:         text,
		Options:      str.Options{Locale: f.locale},
		HistoryLimit: f.history,
	}
}

// newEvalCmd runs commands without the UI. Commands come from -e flags, or
// from stdin one per line when none are given.
func newEvalCmd(f *flags) *cobra.Command {
	var lines []string
	cmd := &cobra.Command{
		Use:   "eval <text>",
		Short: "Apply commands to text and print each result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := repl.New(f.config(args[0]))
			if len(lines) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					lines = append(lines, sc.Text())
				}
				if err := sc.Err(); err != nil {
					return zerr.Wrap(err, "read commands")
				}
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				res := s.Exec(line)
				if res.Err != nil {
					return zerr.With(res.Err, "line", line)
				}
				_, _ = fmt.Fprintf(out, "%s => %s\n", line, res.Output)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&lines, "exec", "e", nil, "command to run (repeatable)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), jstext.About())
		},
	}
}

func firstArg(args []string, def string) string {
	if len(args) == 0 {
		return def
	}
	return args[0]
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
