package migration

import (
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
	itemdomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	operatordomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator/domain"
	scandomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// golang-migrate's embedded source targets postgres; other
			// dialects (dev/test) fall back to gorm's schema sync.
			return conn.AutoMigrate(
				&operatordomain.Operator{},
				&itemdomain.MasterItem{},
				&scandomain.ScanRecord{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
