package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/tablewise/posterm/internal/api"
	"github.com/tablewise/posterm/internal/factories"
	"github.com/tablewise/posterm/internal/logging"
	"github.com/tablewise/posterm/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the backend with generated demo orders and items",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		log := logging.New()
		runID := cuid.New()
		log.WithFields(logrus.Fields{
			"run_id": runID,
			"orders": cfg.SeedOrders,
			"items":  cfg.SeedItemsPerOrder,
		}).Info("Seeding demo data")

		client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
		orderFactory := &factories.OrderFactory{}
		itemFactory := &factories.ItemFactory{}

		ctx := context.Background()
		total := cfg.SeedOrders * (1 + cfg.SeedItemsPerOrder)
		bar := progressbar.Default(int64(total), "seeding")

		for i := 0; i < cfg.SeedOrders; i++ {
			order, err := client.CreateOrder(ctx, orderFactory.CreateOrderDraft())
			if err != nil {
				log.WithError(err).Fatal("Failed to create order")
			}
			bar.Add(1)

			for j := 0; j < cfg.SeedItemsPerOrder; j++ {
				if _, err := client.CreateItem(ctx, itemFactory.CreateItemDraft(order.OrderID)); err != nil {
					log.WithError(err).WithField("order_id", order.OrderID).Fatal("Failed to create item")
				}
				bar.Add(1)
			}
		}
		bar.Finish()

		log.WithField("run_id", runID).Info("Seeding complete")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int("orders", 10, "Number of orders to create")
	seedCmd.Flags().Int("items-per-order", 3, "Number of items per order")

	viper.BindPFlag("seed_orders", seedCmd.Flags().Lookup("orders"))
	viper.BindPFlag("seed_items_per_order", seedCmd.Flags().Lookup("items-per-order"))
}
