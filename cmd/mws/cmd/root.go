// Package cmd implements the mws CLI commands.
package cmd

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/merchantcs/mws-go/internal/config"
	"github.com/merchantcs/mws-go/pkg/logger"
	"github.com/merchantcs/mws-go/pkg/mws"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "mws",
		Short: "CLI client for Amazon Marketplace Web Service",
		Long: "mws is a command-line client for the Amazon Marketplace Web Service API.\n" +
			"It lets you query orders, look up products and prices, submit inventory\n" +
			"and price feeds, and fetch reports from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.mws.yaml)")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(pricingCmd())
	rootCmd.AddCommand(reportsCmd())
	rootCmd.AddCommand(feedsCmd())
	rootCmd.AddCommand(inventoryCmd())
	rootCmd.AddCommand(sellersCmd())
	rootCmd.AddCommand(financesCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetEnvPrefix("MWS")
	viper.AutomaticEnv()
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if env := viper.GetString("config"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return filepath.Join(home, ".mws.yaml")
}

// newClient loads the configuration and builds a fully wired API client:
// logger, transport timeout, and the optional rate limiter.
func newClient() (*mws.Client, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}

	opts := []mws.Option{
		mws.WithHTTPClient(&http.Client{Timeout: cfg.HTTP.Timeout}),
		mws.WithLogger(logger.New(cfg.Logging.Level, cfg.Logging.Format)),
	}
	if cfg.RateLimit.Enabled {
		opts = append(opts, mws.WithRateLimiter(mws.NewRateLimiter(
			cfg.RateLimit.PerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.DailyLimit,
		)))
	}

	return mws.New(mws.Config{
		SellerID:      cfg.MWS.SellerID,
		MarketplaceID: cfg.MWS.MarketplaceID,
		AccessKeyID:   cfg.MWS.AccessKeyID,
		SecretKey:     cfg.MWS.SecretKey,
		AuthToken:     cfg.MWS.AuthToken,
		AppName:       cfg.MWS.AppName,
		AppVersion:    cfg.MWS.AppVersion,
	}, opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
