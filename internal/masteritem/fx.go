package masteritem

import (
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/repository"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/service"
	"go.uber.org/fx"
)

var Module = fx.Module("masteritem.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
