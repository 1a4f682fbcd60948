package cmd

import (
	"fmt"
	"os"

	upgradecli "github.com/getsavvyinc/upgrade-cli"
	"github.com/getsavvyinc/upgrade-cli/release/asset"
	"github.com/spf13/cobra"

	"github.com/stepmap/stepmap/internal/render"
)

const (
	releaseOwner = "stepmap"
	releaseRepo  = "stepmap"
)

// selfUpdateCmd represents the upgrade command for the CLI binary itself.
var selfUpdateCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade stepmap to the latest release",
	Long:  `Upgrade downloads and installs the latest stepmap release binary.`,
	RunE:  runSelfUpdate,
}

func init() {
	rootCmd.AddCommand(selfUpdateCmd)
}

func runSelfUpdate(cmd *cobra.Command, _ []string) error {
	executablePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}

	assetDownloader := asset.NewAssetDownloader(executablePath, asset.WithLookupArchFallback(map[string]string{
		"amd64": "x86_64",
		"386":   "i386",
	}))
	upgrader := upgradecli.NewUpgrader(releaseOwner, releaseRepo, executablePath,
		upgradecli.WithAssetDownloader(assetDownloader))

	ok, err := upgrader.IsNewVersionAvailable(cmd.Context(), Version)
	if err != nil {
		return fmt.Errorf("checking for new version: %w", err)
	}
	if !ok {
		fmt.Println(render.Success("stepmap is already up to date"))
		return nil
	}

	fmt.Println("Updating stepmap...")
	if err := upgrader.Upgrade(cmd.Context(), Version); err != nil {
		return fmt.Errorf("updating stepmap: %w", err)
	}

	fmt.Println(render.Success("stepmap has been updated to the latest version"))
	return nil
}
