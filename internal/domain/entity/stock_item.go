package entity

// StockItem representa la cantidad disponible de un artículo en el inventario.
type StockItem struct {
	Name     string
	Quantity int
}
