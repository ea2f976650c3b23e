package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/domain/entity"
	"github.com/jhoicas/inventario-store/internal/domain/inventory"
)

func TestStore_AddSumaCantidad(t *testing.T) {
	s := inventory.NewStore()

	require.NoError(t, s.Add("apple", 10))
	require.NoError(t, s.Add("apple", 5))

	assert.Equal(t, 15, s.Quantity("apple"))
	assert.Equal(t, 1, s.Len())
}

func TestStore_AddEntradaInvalida(t *testing.T) {
	s := inventory.NewStore()

	assert.ErrorIs(t, s.Add("", 3), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.Add("   ", 3), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.Add("apple", -1), domain.ErrInvalidInput)
	assert.Equal(t, 0, s.Len())
}

func TestStore_AddCeroNoCreaEntrada(t *testing.T) {
	s := inventory.NewStore()

	require.NoError(t, s.Add("apple", 0))
	assert.False(t, s.Has("apple"))
}

// TestStore_RemoveTodoEliminaClave: quitar todo (o más) elimina la clave, nunca queda negativa.
func TestStore_RemoveTodoEliminaClave(t *testing.T) {
	s := inventory.NewStore()
	require.NoError(t, s.Add("x", 5))

	removed, err := s.Remove("x", 5)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.Has("x"))
	assert.Equal(t, 0, s.Quantity("x"))

	require.NoError(t, s.Add("y", 2))
	removed, err = s.Remove("y", 10)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.Has("y"))
}

func TestStore_RemoveParcial(t *testing.T) {
	s := inventory.NewStore()
	require.NoError(t, s.Add("apple", 10))

	removed, err := s.Remove("apple", 3)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 7, s.Quantity("apple"))
}

func TestStore_RemoveInexistente(t *testing.T) {
	s := inventory.NewStore()

	removed, err := s.Remove("orange", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, removed)
}

func TestStore_BelowOrdenInsercion(t *testing.T) {
	s := inventory.NewStore()
	require.NoError(t, s.Add("a", 2))
	require.NoError(t, s.Add("b", 10))
	require.NoError(t, s.Add("c", 4))

	assert.Equal(t, []string{"a", "c"}, s.Below(5))
	assert.Empty(t, s.Below(1))
}

func TestStore_ItemsOrdenTrasEliminar(t *testing.T) {
	s := inventory.NewStore()
	require.NoError(t, s.Add("a", 1))
	require.NoError(t, s.Add("b", 2))
	require.NoError(t, s.Add("c", 3))
	_, err := s.Remove("b", 2)
	require.NoError(t, err)
	require.NoError(t, s.Add("b", 4))

	assert.Equal(t, []entity.StockItem{
		{Name: "a", Quantity: 1},
		{Name: "c", Quantity: 3},
		{Name: "b", Quantity: 4},
	}, s.Items())
}

func TestStore_ReplaceDescartaInvalidos(t *testing.T) {
	s := inventory.NewStore()
	require.NoError(t, s.Add("old", 9))

	s.Replace([]entity.StockItem{
		{Name: "apple", Quantity: 7},
		{Name: "", Quantity: 1},
		{Name: "zero", Quantity: 0},
		{Name: "banana", Quantity: 3},
		{Name: "apple", Quantity: 8},
	})

	assert.False(t, s.Has("old"))
	assert.Equal(t, []entity.StockItem{
		{Name: "apple", Quantity: 8},
		{Name: "banana", Quantity: 3},
	}, s.Items())
}

// TestStore_AddDesbordeRechazado: una suma que desborda int no debe dejar cantidades negativas.
func TestStore_AddDesbordeRechazado(t *testing.T) {
	s := inventory.NewStore()
	require.NoError(t, s.Add("x", math.MaxInt))

	assert.ErrorIs(t, s.Add("x", 2), domain.ErrInvalidInput)
	assert.Equal(t, math.MaxInt, s.Quantity("x"))

	require.NoError(t, s.Add("y", math.MaxInt-1))
	require.NoError(t, s.Add("y", 1))
	assert.Equal(t, math.MaxInt, s.Quantity("y"))
}
