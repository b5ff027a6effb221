package datasets_fx

import (
	"os"

	"go.uber.org/fx"

	"jejuquiz/internal/datasets"
)

var Module = fx.Provide(
	provideStore)

func provideStore() *datasets.Store {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "lib"
	}
	return datasets.NewStore(dir)
}
