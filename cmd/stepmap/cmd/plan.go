package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/stepmap/stepmap/internal/render"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

var (
	planFrom float64
	planTo   float64
)

// planCmd represents the plan command.
var planCmd = &cobra.Command{
	Use:   "plan <framework>",
	Short: "Compute an upgrade plan",
	Long: `Plan computes the consolidated upgrade steps for moving a framework
from one version to another.

Steps outside the requested window are dropped, successive package bumps
collapse into a single update, duplicate instructions are removed, and
edits to the same file merge into one step.`,
	Example: `  stepmap plan nextjs --from 13 --to 14
  stepmap plan angular --from 14 --to 17 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Float64Var(&planFrom, "from", 0, "current framework version")
	planCmd.Flags().Float64Var(&planTo, "to", 0, "target framework version")
	_ = planCmd.MarkFlagRequired("from")
	_ = planCmd.MarkFlagRequired("to")
}

func runPlan(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	framework, supported := upgrade.ParseFramework(args[0])
	if !supported {
		fmt.Fprintln(os.Stderr, render.Warning(fmt.Sprintf(
			"Unknown framework %q; supported: nextjs, angular", args[0])))
	}
	steps := client.Steps(framework, planFrom, planTo)

	switch flagOutput {
	case "json":
		return writeJSON(cmd.OutOrStdout(), planPayload(framework, steps))
	case "yaml":
		return writeYAML(cmd.OutOrStdout(), planPayload(framework, steps))
	case "markdown", "plain", "":
		r, err := render.New(flagOutput == "plain" || !isTerminal(os.Stdout))
		if err != nil {
			return err
		}
		return r.Plan(cmd.OutOrStdout(), framework, planFrom, planTo, steps)
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}

// planPayload shapes the machine-readable plan output.
func planPayload(framework upgrade.Framework, steps []upgrade.Step) map[string]any {
	if steps == nil {
		steps = []upgrade.Step{}
	}
	payload := map[string]any{
		"framework": string(framework),
		"from":      planFrom,
		"to":        planTo,
		"steps":     steps,
		"hasPath":   len(steps) > 0,
	}
	if len(steps) == 0 {
		payload["warning"] = fmt.Sprintf("No upgrade path found for %s", framework.Name())
	}
	return payload
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
