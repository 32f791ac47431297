package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/bazarlabs/paygate/internal/backend"
	"github.com/bazarlabs/paygate/internal/checkout"
	"github.com/bazarlabs/paygate/internal/config"
	"github.com/bazarlabs/paygate/internal/observability"
	"github.com/bazarlabs/paygate/internal/payment"
	"github.com/bazarlabs/paygate/internal/redis"
	"github.com/bazarlabs/paygate/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "paygate",
		Short:   "Storefront payment gateway",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the payment gateway HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func runServe() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		redis.Module,
		backend.Module,
		payment.Module,
		checkout.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
