// seed crea los datos de referencia del libro de inventario: el donante anónimo
// y, opcionalmente, otros donantes pasados como argumentos.
//
// Uso: go run ./cmd/seed ["Banco de Alimentos" ...]
// Es idempotente: volver a ejecutarlo no duplica donantes.
package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/infrastructure/postgres"
	"github.com/jhoicas/donaciones-api/pkg/config"
	"github.com/jhoicas/donaciones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, App: "seed"})

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("seed requiere DB_DRIVER=postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	donors := postgres.NewDonorRepository(pool)
	names := append([]string{entity.AnonymousDonorName}, os.Args[1:]...)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		d, err := donors.EnsureByName(ctx, name)
		if err != nil {
			log.Error().Err(err).Str("donor", name).Msg("crear donante")
			continue
		}
		log.Info().Int64("id", d.ID).Str("donor", d.Name).Msg("donante disponible")
	}
}
