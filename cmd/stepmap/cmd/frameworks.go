package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stepmap/stepmap/internal/render"
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// frameworksCmd represents the frameworks command.
var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List supported frameworks",
	Long:  `Frameworks lists the frameworks the loaded catalog has upgrade steps for.`,
	RunE:  runFrameworks,
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}

func runFrameworks(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	frameworks := client.Catalog().Frameworks()

	switch flagOutput {
	case "json":
		return writeJSON(cmd.OutOrStdout(), frameworksPayload(frameworks))
	case "yaml":
		return writeYAML(cmd.OutOrStdout(), frameworksPayload(frameworks))
	case "markdown", "plain", "":
		r, err := render.New(flagOutput == "plain" || !isTerminal(os.Stdout))
		if err != nil {
			return err
		}
		return r.Frameworks(cmd.OutOrStdout(), frameworks)
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}

func frameworksPayload(frameworks []upgrade.Framework) map[string]any {
	infos := make([]map[string]string, 0, len(frameworks))
	for _, fw := range frameworks {
		infos = append(infos, map[string]string{
			"id":   string(fw),
			"name": fw.Name(),
		})
	}
	return map[string]any{"frameworks": infos}
}
