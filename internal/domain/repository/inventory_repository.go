package repository

import "github.com/jhoicas/inventario-store/internal/domain/entity"

// RawEntry par clave/valor leído del archivo persistido, antes de convertir la cantidad.
// Value puede ser cualquier valor JSON (json.Number, string, bool, nil, mapa, slice).
type RawEntry struct {
	Key   string
	Value any
}

// InventoryRepository define el puerto de persistencia del inventario completo.
//
// Load devuelve las entradas en el orden del archivo.
// Errores esperados: domain.ErrNotFound si el archivo no existe,
// domain.ErrInvalidFormat si el contenido es JSON válido pero no es un objeto;
// cualquier otro error es de lectura o de parseo.
type InventoryRepository interface {
	Load(path string) ([]RawEntry, error)
	Save(path string, items []entity.StockItem) error
}
