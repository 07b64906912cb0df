package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pagecore/internal/cli/styles"
	"github.com/bnema/pagecore/internal/domain/cachemodel"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/diskcache"
)

var cacheRAM uint64

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show cache capacities for every cache model",
	Long: `Print the memory cache, page cache and disk cache sizing each cache model
gets on this machine. The model selected in the config is highlighted.`,
	Args: cobra.NoArgs,
	RunE: runCache,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.Flags().Uint64Var(&cacheRAM, "ram", 0, "size for this much RAM in MB instead of the detected amount")
}

func runCache(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ramMB := cacheRAM
	if ramMB == 0 {
		ramMB = cachemodel.SystemRAMMB()
	}

	dir := app.Config.Cache.DiskCacheDir
	var freeMB uint64
	if dir != "" {
		free, err := diskcache.FreeSpace(dir)
		if err != nil {
			app.Logger.Debug().Err(err).Str("dir", dir).Msg("free space unavailable")
			dir = ""
		} else {
			freeMB = free / (1024 * 1024)
		}
	}

	r := styles.NewCacheRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderHeader(ramMB, freeMB, dir))
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderCapacities(capacityRows(ramMB, freeMB, dir != ""), app.Config.CacheModel()))
	return nil
}

func capacityRows(ramMB, freeMB uint64, withDisk bool) []styles.CapacityRow {
	rows := make([]styles.CapacityRow, 0, len(entity.AllCacheModels))
	for _, model := range entity.AllCacheModels {
		row := styles.CapacityRow{
			Model:      model,
			Capacities: cachemodel.Calculate(model, ramMB),
		}
		if withDisk {
			row.DiskBytes = cachemodel.DiskCapacity(model, freeMB)
		}
		rows = append(rows, row)
	}
	return rows
}
