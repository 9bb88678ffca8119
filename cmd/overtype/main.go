// Package main provides the CLI entrypoint for overtype.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/typefirst/overtype/internal/config"
	"github.com/typefirst/overtype/internal/diag"
	"github.com/typefirst/overtype/internal/lexer"
	"github.com/typefirst/overtype/internal/recentui"
	"github.com/typefirst/overtype/internal/source"
	"github.com/typefirst/overtype/internal/store"
	"github.com/typefirst/overtype/internal/theme"
	"github.com/typefirst/overtype/internal/tui"
)

const fallbackTermWidth = 80

var (
	practiceLang      string
	practiceClipboard bool
	practicePlain     bool
	practiceDebug     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "overtype [file]",
		Short:         "Typing practice over your own files",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", "", "lexer name (default: detect from file name)")
	rootCmd.Flags().BoolVar(&practiceClipboard, "clipboard", false, "take target text from the clipboard")
	rootCmd.Flags().BoolVar(&practicePlain, "plain", false, "disable syntax highlighting")
	rootCmd.Flags().BoolVar(&practiceDebug, "debug", false, "write a debug log")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newRecentCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyBoolConfig(cmd, "plain", &practicePlain, fileCfg.Practice.Plain)

	if practiceDebug {
		if err := diag.EnableFile(config.DefaultDebugLogPath()); err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
	}

	if practiceClipboard {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine --clipboard with a file argument")
		}
		text, err := source.FromClipboard()
		if err != nil {
			return err
		}
		return runPractice(text, "clipboard", practiceLang, practicePlain)
	}

	if len(args) == 0 {
		return fmt.Errorf("a file argument is required (or --clipboard)")
	}
	return practiceFile(args[0], practiceLang, practicePlain)
}

func practiceFile(path, language string, plain bool) error {
	text, err := source.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load target text: %w", err)
	}
	if language == "" {
		language = lexer.DetectLanguage(path)
	}
	recordRecent(path, language)
	return runPractice(text, filepath.Base(path), language, plain)
}

func runPractice(text, name, language string, plain bool) error {
	lexed := lexer.Tokenize(text, language)
	model := tui.NewModel(text, name, language, lexed, plain, theme.Default())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// recordRecent updates the recents store. Failures are logged and ignored:
// history must never block practice.
func recordRecent(path, language string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.Touch(context.Background(), abs, language); err != nil {
		logErrf("failed to record recent file: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available lexers",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	names := lexer.Names()
	if len(names) == 0 {
		return fmt.Errorf("no lexers available")
	}

	colWidth := 0
	for _, name := range names {
		if len(name) > colWidth {
			colWidth = len(name)
		}
	}
	colWidth += 2
	cols := terminalWidth() / colWidth
	if cols < 1 {
		cols = 1
	}

	out := cmd.OutOrStdout()
	for i, name := range names {
		if _, err := fmt.Fprintf(out, "%-*s", colWidth, name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if (i+1)%cols == 0 || i == len(names)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Pick from recently practiced files",
		Args:  cobra.NoArgs,
		RunE:  runRecentCmd,
	}
}

func runRecentCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "plain", &practicePlain, fileCfg.Practice.Plain)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	model := recentui.NewModel(st)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := program.Run()
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
	if runErr != nil {
		return fmt.Errorf("failed to run recent picker: %w", runErr)
	}

	choice := model.Choice()
	if choice == nil {
		return nil
	}
	return practiceFile(choice.Path, choice.Language, practicePlain)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# overtype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = ""       # Default lexer name (empty: detect from file name)
# plain = false   # Disable syntax highlighting
`
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
