package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stepmap/stepmap/internal/server"
	"github.com/stepmap/stepmap/pkg/logging"
)

var (
	servePrefix  string
	serveCORS    bool
	serveMetrics bool
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stepmap HTTP API server",
	Long: `Serve starts an HTTP server exposing the upgrade planner:

  GET {prefix}/frameworks                      list supported frameworks
  GET {prefix}/frameworks/{id}/steps?from=&to= consolidated upgrade steps
  GET /health, GET {prefix}/ready              probes
  GET /metrics                                 Prometheus metrics`,
	Example: `  stepmap serve
  stepmap serve --port 9090 --cors`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	defaults := server.DefaultConfig()
	serveCmd.Flags().String("host", defaults.Host, "bind address")
	serveCmd.Flags().Int("port", defaults.Port, "listen port")
	serveCmd.Flags().StringVar(&servePrefix, "prefix", defaults.PathPrefix, "API path prefix")
	serveCmd.Flags().BoolVar(&serveCORS, "cors", false, "enable CORS")
	serveCmd.Flags().BoolVar(&serveMetrics, "metrics", defaults.MetricsEnabled, "expose /metrics")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	// Bound flags pick up config-file values when not set on the command line
	cfg.Host = viper.GetString("server.host")
	cfg.Port = viper.GetInt("server.port")
	cfg.PathPrefix = servePrefix
	cfg.CORSEnabled = serveCORS
	cfg.MetricsEnabled = serveMetrics

	srv := server.New(client, cfg, logging.Default())
	return srv.ListenAndServe(cmd.Context())
}
