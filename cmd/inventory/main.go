// inventory ejecuta un recorrido fijo de las operaciones de inventario:
// entradas (una con tipos inválidos), salidas (una de un artículo inexistente),
// consulta, stock bajo, guardado, recarga y reporte.
//
// Uso: go run ./cmd/inventory
// Variables: INVENTORY_FILE, LOG_FILE, LOG_LEVEL, LOW_STOCK_THRESHOLD, APP_ENV.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	appinventory "github.com/jhoicas/inventario-store/internal/application/inventory"
	"github.com/jhoicas/inventario-store/internal/domain/inventory"
	"github.com/jhoicas/inventario-store/internal/infrastructure/jsonfile"
	"github.com/jhoicas/inventario-store/pkg/config"
	"github.com/jhoicas/inventario-store/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	base, err := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "iniciar logger: %v\n", err)
		os.Exit(1)
	}
	defer base.Close()

	log := base.WithSession(uuid.NewString())
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("file", cfg.Inventory.File).
		Msg("iniciando aplicación")

	repo := jsonfile.NewInventoryRepository(afero.NewOsFs())
	svc := appinventory.NewService(inventory.NewStore(), repo, log, appinventory.Options{
		DefaultFile:       cfg.Inventory.File,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		Out:               os.Stdout,
	})

	audit := run(svc, os.Stdout)

	log.Info().Int("audit_entries", audit.Len()).Msg("aplicación detenida")
}

func run(svc *appinventory.Service, w io.Writer) *appinventory.AuditLog {
	audit := &appinventory.AuditLog{}

	svc.AddItem("apple", 10, audit)
	svc.AddItem("banana", 3, audit)
	svc.AddItem("123", "ten", audit) // tipos inválidos: se registra y se ignora
	svc.RemoveItem("apple", 3)
	svc.RemoveItem("orange", 1)
	fmt.Fprintln(w, "Apple stock:", svc.Quantity("apple"))
	fmt.Fprintln(w, "Low items:", svc.DefaultLowStock())
	svc.Save("")
	svc.Load("")
	svc.Print()
	return audit
}
