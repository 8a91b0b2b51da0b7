package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/logger"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/metrics"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/migration"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/ratelimit"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/server"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		metrics.Module,
		ratelimit.Module,

		// Domains
		operator.Module,
		masteritem.Module,
		scan.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
