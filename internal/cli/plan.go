package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/modu-ai/flutterkit/internal/core/plan"
	"github.com/modu-ai/flutterkit/internal/core/project"
)

// Plan output formats.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
)

var planCmd = &cobra.Command{
	Use:   "plan [directory]",
	Short: "Print the directories and files a create would generate",
	Long: `Resolve the configuration into a generation plan and print it without
touching the filesystem.

Use --filter with a glob such as "lib/features/**" to narrow the listing
and --format markdown for a rendered report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	addInputFlags(planCmd)
	planCmd.Flags().String("filter", "", "Glob pattern restricting listed paths (e.g. lib/**/*.dart)")
	planCmd.Flags().String("format", formatText, "Output format: text or markdown")
}

func runPlan(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	out := cmd.OutOrStdout()

	format := strings.ToLower(getStringFlag(cmd, "format"))
	if format != formatText && format != formatMarkdown {
		return fmt.Errorf("invalid format %q: must be %s or %s", format, formatText, formatMarkdown)
	}
	filter := getStringFlag(cmd, "filter")
	if filter != "" && !doublestar.ValidatePattern(filter) {
		return fmt.Errorf("invalid filter pattern %q", filter)
	}

	raw, err := resolveInput(cmd, dir)
	if err != nil {
		return err
	}

	result, err := deps.Generator(validationOptions(cmd), newConsoleReporter(cmd.ErrOrStderr())).
		Plan(cmd.Context(), raw)
	if err != nil {
		return err
	}

	dirs, files := filterPlan(result.Plan, filter)
	if format == formatMarkdown {
		return writeMarkdownPlan(out, result, dirs, files)
	}
	writeTextPlan(out, dirs, files)
	return nil
}

// filterPlan returns the plan's directory and file paths matching pattern.
// An empty pattern matches everything.
func filterPlan(p *plan.Plan, pattern string) (dirs, files []string) {
	match := func(path string) bool {
		if pattern == "" {
			return true
		}
		ok, err := doublestar.Match(pattern, path)
		return err == nil && ok
	}
	for _, d := range p.DirPaths() {
		if match(d) {
			dirs = append(dirs, d)
		}
	}
	for _, f := range p.FilePaths() {
		if match(f) {
			files = append(files, f)
		}
	}
	return dirs, files
}

func writeTextPlan(w io.Writer, dirs, files []string) {
	for _, d := range dirs {
		_, _ = fmt.Fprintf(w, "%s/\n", d)
	}
	for _, f := range files {
		_, _ = fmt.Fprintln(w, f)
	}
}

// planMarkdown builds a markdown report of the plan.
func planMarkdown(result *project.Result, dirs, files []string) string {
	var b strings.Builder
	cfg := result.Config
	fmt.Fprintf(&b, "# %s\n\n", cfg.ProjectName)
	fmt.Fprintf(&b, "- **Architecture:** %s\n", cfg.Architecture.DisplayName())
	fmt.Fprintf(&b, "- **State management:** %s\n", cfg.StateManagement.DisplayName())
	if !result.Identifiers.IsEmpty() {
		fmt.Fprintf(&b, "- **Application ID:** `%s`\n", result.Identifiers.Android)
	}

	fmt.Fprintf(&b, "\n## Directories (%d)\n\n", len(dirs))
	for _, d := range dirs {
		fmt.Fprintf(&b, "- `%s/`\n", d)
	}
	fmt.Fprintf(&b, "\n## Files (%d)\n\n", len(files))
	for _, f := range files {
		fmt.Fprintf(&b, "- `%s`\n", f)
	}

	if len(result.Notes) > 0 {
		b.WriteString("\n## Notes\n\n")
		for _, n := range result.Notes {
			fmt.Fprintf(&b, "- %s\n", n.Message)
		}
	}
	return b.String()
}

func writeMarkdownPlan(w io.Writer, result *project.Result, dirs, files []string) error {
	style := glamour.WithAutoStyle()
	if deps.Theme.NoColor || deps.Headless.IsHeadless() {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := r.Render(planMarkdown(result, dirs, files))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}
