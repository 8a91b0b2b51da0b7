package operator

import (
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("operator",
	fx.Provide(repository.Provide),
)
