package main

import (
	"fmt"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comitanigiacomo/kanso-drift/internal/config"
)

// @title        Kanso Drift API
// @version      1.0
// @description  Daily habit check-ins, composite scores, drift detection and weekly reviews.
// @BasePath     /api/v1
// @securityDefinitions.basic BasicAuth
func main() {
	_ = godotenv.Load()

	if err := newRootCmd(viper.GetViper()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kanso-drift",
		Short:        "Daily habit scoring, drift detection and weekly reviews",
		Version:      config.Version,
		SilenceUsage: true,
	}

	f := rootCmd.PersistentFlags()
	f.String("storage-driver", "sqlite", "storage backend: postgres, sqlite or memory")
	f.String("database-url", "", "postgres connection URL")
	f.String("sqlite-path", "kanso-drift.db", "sqlite database file")
	f.String("timezone", "Pacific/Honolulu", "reference zone for dates and week boundaries")
	f.String("week-start", "sunday", "first day of the week")
	f.String("scoring-model", "v1", "scoring model: v1 (7-point) or v2 (100-point)")
	f.String("log-level", "info", "log level (debug, info, warn, error)")

	bindFlag := func(viperKey, flagName string) {
		_ = v.BindPFlag(viperKey, f.Lookup(flagName))
	}
	bindFlag("storage_driver", "storage-driver")
	bindFlag("database_url", "database-url")
	bindFlag("sqlite_path", "sqlite-path")
	bindFlag("timezone", "timezone")
	bindFlag("week_start", "week-start")
	bindFlag("scoring_model", "scoring-model")
	bindFlag("log_level", "log-level")

	config.SetDefaults(v)
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newServeCmd(v),
		newScoreCmd(v),
		newMigrateCmd(v),
	)

	rootCmd.SetVersionTemplate(fmt.Sprintf("kanso-drift %s\n", config.Version))
	return rootCmd
}
