package system_fx

import (
	"go.uber.org/fx"

	"jejuquiz/internal/api/controllers"
	"jejuquiz/internal/datasets"
)

var Module = fx.Provide(
	ProvideSystemController)

func ProvideSystemController(store *datasets.Store) *controllers.SystemController {
	return controllers.NewSystemController(store)
}
