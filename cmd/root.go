package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tablewise/posterm/internal/console"
	"github.com/tablewise/posterm/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "posterm",
	Short: "Terminal client for a restaurant point-of-sale backend",
	Long: `posterm is a CLI companion for a restaurant point-of-sale REST API.
It browses, creates, edits and deletes orders and their items from an
interactive console session, and can seed demo data or export snapshots
to files, Kafka, RabbitMQ or Postgres.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		session := console.New(cfg)
		if err := session.Run(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.posterm.yaml)")

	rootCmd.PersistentFlags().String("api-base-url", "http://localhost:8080/api", "Base URL of the POS REST API")
	rootCmd.PersistentFlags().Duration("request-timeout", 10*time.Second, "Timeout for a single API request")
	rootCmd.PersistentFlags().String("currency-symbol", "$", "Currency symbol used when rendering totals")

	viper.BindPFlag("api_base_url", rootCmd.PersistentFlags().Lookup("api-base-url"))
	viper.BindPFlag("request_timeout", rootCmd.PersistentFlags().Lookup("request-timeout"))
	viper.BindPFlag("currency_symbol", rootCmd.PersistentFlags().Lookup("currency-symbol"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".posterm")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
