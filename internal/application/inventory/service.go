package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/domain/entity"
	"github.com/jhoicas/inventario-store/internal/domain/inventory"
	"github.com/jhoicas/inventario-store/internal/domain/repository"
)

// Valores por defecto de las operaciones.
const (
	DefaultFile              = "inventory.json"
	DefaultLowStockThreshold = 5
)

// Options parámetros opcionales del servicio. Los campos vacíos toman los valores por defecto.
type Options struct {
	DefaultFile       string
	LowStockThreshold int
	Out               io.Writer        // destino del reporte (os.Stdout)
	Now               func() time.Time // reloj de las líneas de auditoría
}

// Service operaciones de inventario sobre un Store propiedad del llamador.
// Ninguna operación devuelve error: las entradas inválidas y los fallos de I/O
// se registran en el log y el inventario degrada a un estado consistente.
type Service struct {
	store     *inventory.Store
	repo      repository.InventoryRepository
	log       Logger
	file      string
	threshold int
	out       io.Writer
	now       func() time.Time
}

// NewService construye el servicio de inventario.
func NewService(store *inventory.Store, repo repository.InventoryRepository, log Logger, opts Options) *Service {
	s := &Service{
		store:     store,
		repo:      repo,
		log:       log,
		file:      opts.DefaultFile,
		threshold: opts.LowStockThreshold,
		out:       opts.Out,
		now:       opts.Now,
	}
	if s.file == "" {
		s.file = DefaultFile
	}
	if s.threshold == 0 {
		s.threshold = DefaultLowStockThreshold
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// AddItem suma qty unidades a item. qty debe ser numérico, entero y no negativo.
// Si audit no es nil se agrega una línea fechada de la entrada.
func (s *Service) AddItem(item string, qty any, audit *AuditLog) {
	n, ok := numericQuantity(qty)
	if !ok || blank(item) {
		s.log.Warn().Str("item", item).Interface("qty", qty).Msg("add_item: tipo de artículo o cantidad inválido")
		return
	}
	if err := s.store.Add(item, n); err != nil {
		s.log.Warn().Err(err).Str("item", item).Int("qty", n).Msg("add_item: entrada rechazada")
		return
	}

	entry := entity.AuditEntry{At: s.now(), Item: item, Quantity: n}
	if audit != nil {
		audit.append(entry)
	}
	s.log.Info().Str("item", item).Int("qty", n).Int("total", s.store.Quantity(item)).
		Msg("add_item: artículo agregado al inventario")
}

// RemoveItem resta qty unidades a item; si la cantidad queda <= 0 el artículo se elimina.
// Quitar un artículo inexistente no es un error.
func (s *Service) RemoveItem(item string, qty any) {
	if blank(item) {
		s.log.Warn().Str("item", item).Msg("remove_item: el artículo debe ser un nombre no vacío")
		return
	}
	n, err := toInt(qty)
	// Una cantidad negativa sumaría stock; se rechaza en lugar de invertir la salida.
	if err != nil || n < 0 {
		s.log.Warn().Str("item", item).Interface("qty", qty).Msg("remove_item: la cantidad debe ser un entero no negativo")
		return
	}

	removed, err := s.store.Remove(item, n)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.Warn().Str("item", item).Msg("remove_item: intento de quitar un artículo inexistente")
	case err != nil:
		s.log.Error().Err(err).Str("item", item).Msg("remove_item: error al quitar artículo")
	case removed:
		s.log.Info().Str("item", item).Msg("remove_item: artículo eliminado del inventario")
	default:
		s.log.Info().Str("item", item).Int("qty", n).Int("total", s.store.Quantity(item)).
			Msg("remove_item: unidades descontadas")
	}
}

// Quantity devuelve la cantidad de item, 0 si no existe o el nombre es inválido.
func (s *Service) Quantity(item string) int {
	if blank(item) {
		s.log.Warn().Str("item", item).Msg("get_qty: el artículo debe ser un nombre no vacío")
		return 0
	}
	return s.store.Quantity(item)
}

// LowStock devuelve los artículos con cantidad estrictamente menor que threshold,
// en orden de inserción. Un umbral no entero usa el umbral por defecto.
func (s *Service) LowStock(threshold any) []string {
	thr, err := toInt(threshold)
	if err != nil {
		s.log.Warn().Interface("threshold", threshold).Int("default", s.threshold).
			Msg("check_low_items: el umbral debe ser un entero")
		thr = s.threshold
	}
	low := s.store.Below(thr)
	s.log.Info().Int("threshold", thr).Int("count", len(low)).Msg("check_low_items: artículos bajo el umbral revisados")
	return low
}

// DefaultLowStock LowStock con el umbral configurado.
func (s *Service) DefaultLowStock() []string {
	return s.LowStock(s.threshold)
}

// Load reemplaza el inventario completo con el contenido de path (vacío = archivo por defecto).
// Archivo inexistente, corrupto o que no es un objeto deja el inventario vacío.
// Los valores no convertibles a entero positivo se omiten individualmente.
func (s *Service) Load(path string) {
	path = s.path(path)

	entries, err := s.repo.Load(path)
	if err != nil {
		s.store.Reset()
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.log.Info().Str("file", path).Msg("load_data: archivo no encontrado, inventario vacío")
		case errors.Is(err, domain.ErrInvalidFormat):
			s.log.Warn().Str("file", path).Msg("load_data: el contenido no es un objeto, inventario vacío")
		default:
			s.log.Error().Err(err).Str("file", path).Msg("load_data: no se pudo cargar el inventario")
		}
		return
	}

	items := make([]entity.StockItem, 0, len(entries))
	for _, e := range entries {
		n, err := toInt(e.Value)
		if err != nil {
			s.log.Warn().Str("file", path).Str("item", e.Key).Interface("value", e.Value).
				Msg("load_data: cantidad inválida, se omite")
			continue
		}
		if n <= 0 || blank(e.Key) {
			s.log.Warn().Str("file", path).Str("item", e.Key).Int("qty", n).
				Msg("load_data: entrada sin stock positivo, se omite")
			continue
		}
		items = append(items, entity.StockItem{Name: e.Key, Quantity: n})
	}
	s.store.Replace(items)
	s.log.Info().Str("file", path).Int("items", s.store.Len()).Msg("load_data: inventario cargado")
}

// Save escribe el inventario completo en path (vacío = archivo por defecto).
// Un fallo de escritura se registra y no altera el inventario en memoria.
func (s *Service) Save(path string) {
	path = s.path(path)

	if err := s.repo.Save(path, s.store.Items()); err != nil {
		s.log.Error().Err(err).Str("file", path).Msg("save_data: no se pudo guardar el inventario")
		return
	}
	s.log.Info().Str("file", path).Int("items", s.store.Len()).Msg("save_data: inventario guardado")
}

// Print escribe el reporte de inventario en la salida configurada.
func (s *Service) Print() {
	s.PrintTo(s.out)
}

// PrintTo escribe el reporte en w: encabezado y una línea "<item> -> <cantidad>" por artículo.
func (s *Service) PrintTo(w io.Writer) {
	var b strings.Builder
	b.WriteString("\nInventory Report:\n")
	for _, it := range s.store.Items() {
		fmt.Fprintf(&b, "%s -> %d\n", it.Name, it.Quantity)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		s.log.Error().Err(err).Msg("print_data: no se pudo escribir el reporte")
		return
	}
	s.log.Info().Int("items", s.store.Len()).Msg("print_data: reporte de inventario impreso")
}

func (s *Service) path(p string) string {
	if strings.TrimSpace(p) == "" {
		return s.file
	}
	return p
}

func blank(item string) bool {
	return strings.TrimSpace(item) == ""
}
