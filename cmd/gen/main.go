package main

import (
	"fretex/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.Freight{},
		model.Trip{},
		model.MatchRequest{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
