package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/flutterkit/internal/cli/wizard"
	"github.com/modu-ai/flutterkit/internal/config"
	"github.com/modu-ai/flutterkit/internal/core/project"
	"github.com/modu-ai/flutterkit/internal/template"
	"github.com/modu-ai/flutterkit/internal/ui"
	"github.com/modu-ai/flutterkit/internal/writer"
)

var createCmd = &cobra.Command{
	Use:   "create [directory]",
	Short: "Generate a new Flutter project skeleton",
	Long: `Generate a Flutter project skeleton into the given directory
(default: current directory).

Input is merged from, in increasing priority: built-in defaults, a YAML
configuration file, FLUTTERKIT_* environment variables, command-line flags
and, when running in a terminal, the interactive wizard.

Existing files are never overwritten. When the configuration is invalid
nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	addInputFlags(createCmd)
	createCmd.Flags().Bool("dry-run", false, "Resolve and print the plan without writing anything")
	createCmd.Flags().Bool("show-drift", false, "Print a diff for every existing file that differs from its generated form")
}

func runCreate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = filepath.Clean(args[0])
	}
	out := cmd.OutOrStdout()

	raw, err := resolveInput(cmd, dir)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, cliMuted.Render("Cancelled. Nothing was written."))
			return nil
		}
		return err
	}

	gen := deps.Generator(validationOptions(cmd), newConsoleReporter(out))
	result, err := gen.Plan(cmd.Context(), raw)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			_, _ = fmt.Fprintln(out, renderValidationError(err))
		}
		return err
	}

	if getBoolFlag(cmd, "dry-run") {
		_, _ = fmt.Fprintln(out, renderPlanSummary(result, "Dry run: nothing written"))
		return nil
	}

	bar := ui.NewProgressBar(deps.Theme, deps.Headless, "Writing "+result.Config.ProjectName, out)
	var opts []writer.Option
	if getBoolFlag(cmd, "show-drift") {
		opts = append(opts, writer.WithDriftCheck())
	}
	report, err := deps.Writer(dir, bar.Update, opts...).Write(cmd.Context(), result.Plan)
	bar.Done()
	if err != nil {
		return fmt.Errorf("write project: %w", err)
	}

	_, _ = fmt.Fprintln(out, renderCreateSummary(result, report, dir))
	for _, d := range report.Drift {
		_, _ = fmt.Fprint(out, renderDrift(d))
	}
	return nil
}

// renderValidationError lists every validation failure in an error card.
func renderValidationError(err error) string {
	var ves *config.ValidationErrors
	if !errors.As(err, &ves) {
		return renderErrorCard("Invalid configuration", err.Error())
	}
	lines := make([]string, len(ves.Errors))
	for i, ve := range ves.Errors {
		lines[i] = fmt.Sprintf("%s %s: %s (got %q)", cliError.Render("•"), ve.Field, ve.Reason, fmt.Sprint(ve.Value))
	}
	return renderErrorCard("Invalid configuration: nothing was written", lines...)
}

func projectPairs(result *project.Result) []kvPair {
	cfg := result.Config
	pairs := []kvPair{
		{"Project", cfg.ProjectName},
		{"Architecture", cfg.Architecture.DisplayName()},
		{"State", cfg.StateManagement.DisplayName()},
		{"Features", joinOrNone(result.Variables[template.VarFeatures])},
		{"Modules", joinOrNone(result.Variables[template.VarModules])},
	}
	if !result.Identifiers.IsEmpty() {
		pairs = append(pairs,
			kvPair{"Android ID", result.Identifiers.Android},
			kvPair{"iOS ID", result.Identifiers.IOS},
		)
	}
	return pairs
}

func renderPlanSummary(result *project.Result, title string) string {
	dirs, files := result.Plan.Len()
	pairs := append(projectPairs(result),
		kvPair{"Directories", strconv.Itoa(dirs)},
		kvPair{"Files", strconv.Itoa(files)},
	)
	return renderCard(title, renderKeyValueLines(pairs))
}

func renderCreateSummary(result *project.Result, report *writer.Report, dir string) string {
	pairs := append(projectPairs(result),
		kvPair{"Location", dir},
		kvPair{"Created", fmt.Sprintf("%d directories, %d files", len(report.CreatedDirs), len(report.CreatedFiles))},
	)
	if skipped := len(report.SkippedDirs) + len(report.SkippedFiles); skipped > 0 {
		pairs = append(pairs, kvPair{"Skipped", cliWarn.Render(fmt.Sprintf("%d existing entries kept", skipped))})
	}
	return renderSuccessCard("Project "+result.Config.ProjectName+" generated", renderKeyValueLines(pairs))
}

func joinOrNone(list string) string {
	if strings.TrimSpace(list) == "" {
		return cliMuted.Render("none")
	}
	return list
}
