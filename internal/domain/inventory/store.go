package inventory

import (
	"math"
	"strings"

	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/domain/entity"
)

// Store es el mapa artículo -> cantidad del inventario (servicio de dominio, sin I/O).
// Conserva el orden de inserción para que los reportes sean deterministas.
// Invariante: toda clave presente tiene cantidad > 0.
// No es seguro para uso concurrente; el dueño del Store controla su ciclo de vida.
type Store struct {
	qty   map[string]int
	order []string
}

// NewStore construye un inventario vacío.
func NewStore() *Store {
	return &Store{qty: make(map[string]int)}
}

// Add suma qty unidades a name, creando la entrada si no existe.
// qty == 0 sobre un artículo ausente no crea la entrada. Una suma que desborda int se rechaza.
func (s *Store) Add(name string, qty int) error {
	if strings.TrimSpace(name) == "" || qty < 0 {
		return domain.ErrInvalidInput
	}
	if qty == 0 {
		return nil
	}
	if qty > math.MaxInt-s.qty[name] {
		return domain.ErrInvalidInput
	}
	if _, ok := s.qty[name]; !ok {
		s.order = append(s.order, name)
	}
	s.qty[name] += qty
	return nil
}

// Remove resta qty unidades a name. Si la cantidad resultante es <= 0 la clave se elimina
// (no se recorta a cero). removed indica si el artículo salió del inventario.
func (s *Store) Remove(name string, qty int) (removed bool, err error) {
	current, ok := s.qty[name]
	if !ok {
		return false, domain.ErrNotFound
	}
	current -= qty
	if current <= 0 {
		s.delete(name)
		return true, nil
	}
	s.qty[name] = current
	return false, nil
}

// Quantity devuelve la cantidad de name, 0 si no existe.
func (s *Store) Quantity(name string) int {
	return s.qty[name]
}

// Has indica si name está en el inventario.
func (s *Store) Has(name string) bool {
	_, ok := s.qty[name]
	return ok
}

// Len número de artículos distintos.
func (s *Store) Len() int {
	return len(s.order)
}

// Items devuelve una copia del inventario en orden de inserción.
func (s *Store) Items() []entity.StockItem {
	items := make([]entity.StockItem, 0, len(s.order))
	for _, name := range s.order {
		items = append(items, entity.StockItem{Name: name, Quantity: s.qty[name]})
	}
	return items
}

// Below devuelve los artículos con cantidad estrictamente menor que threshold.
func (s *Store) Below(threshold int) []string {
	low := make([]string, 0)
	for _, name := range s.order {
		if s.qty[name] < threshold {
			low = append(low, name)
		}
	}
	return low
}

// Replace vacía el inventario y lo repuebla con items. Las entradas inválidas
// (nombre vacío o cantidad <= 0) se ignoran; una clave repetida conserva el último valor.
func (s *Store) Replace(items []entity.StockItem) {
	s.Reset()
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Quantity <= 0 {
			continue
		}
		if _, ok := s.qty[it.Name]; !ok {
			s.order = append(s.order, it.Name)
		}
		s.qty[it.Name] = it.Quantity
	}
}

// Reset deja el inventario vacío.
func (s *Store) Reset() {
	s.qty = make(map[string]int)
	s.order = nil
}

func (s *Store) delete(name string) {
	delete(s.qty, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
