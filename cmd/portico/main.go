package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/porticoapp/portico/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "portico",
	Short:   "Dual-mode router serving a web app and its backend API",
	Long: `Portico serves a pre-built single page application and its backend
API from one process, either as a local HTTP server or as an AWS Lambda
function behind an API Gateway HTTP API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			files = append(files, configFile)
		}

		cfg, err := config.Load(files, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("static-path", "", "static asset directory (default: app/build, env: PORTICO_STATIC_PATH)")
	rootCmd.PersistentFlags().String("entry", "", "entry document served for SPA routes (default: index.html, env: PORTICO_STATIC_ENTRY)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
