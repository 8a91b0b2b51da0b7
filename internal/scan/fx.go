package scan

import (
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/repository"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/service"
	"go.uber.org/fx"
)

var Module = fx.Module("scan.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
