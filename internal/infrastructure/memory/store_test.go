package memory_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/techstyle-pos/internal/domain"
	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/infrastructure/kv"
	"github.com/tu-usuario/techstyle-pos/internal/infrastructure/memory"
	"github.com/tu-usuario/techstyle-pos/pkg/logger"
)

func newStore(t *testing.T, backend kv.Store) *memory.Store {
	t.Helper()
	s, err := memory.NewStore(context.Background(), backend, "tf_", logger.Nop())
	require.NoError(t, err)
	return s
}

// TestNewStore_SiembraEnPrimerArranque: sin claves en el kv se cargan los
// datos semilla y las colecciones de ventas/movimientos arrancan vacías.
func TestNewStore_SiembraEnPrimerArranque(t *testing.T) {
	s := newStore(t, kv.NewMemory())

	products, err := s.Products().List()
	require.NoError(t, err)
	assert.Len(t, products, 3, "catálogo semilla")

	categories, err := s.Categories().List()
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	sales, err := s.Sales().List()
	require.NoError(t, err)
	assert.Empty(t, sales)

	movements, err := s.Movements().List()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

// TestNewStore_CargaEstadoPersistido: con claves presentes el estado
// persistido manda sobre la semilla.
func TestNewStore_CargaEstadoPersistido(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()

	persisted := []*entity.Product{{
		ID:        "z9",
		Name:      "Cable USB-C",
		SKU:       "CAB-USBC",
		SalePrice: decimal.NewFromInt(35),
		Stock:     40,
	}}
	data, err := json.Marshal(persisted)
	require.NoError(t, err)
	require.NoError(t, backend.Set(ctx, "tf_products", data))

	s := newStore(t, backend)

	products, err := s.Products().List()
	require.NoError(t, err)
	require.Len(t, products, 1, "el snapshot persistido reemplaza la semilla")
	assert.Equal(t, "z9", products[0].ID)
	assert.True(t, products[0].SalePrice.Equal(decimal.NewFromInt(35)))

	// Las claves ausentes siguen cayendo a su respaldo propio.
	categories, err := s.Categories().List()
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}

// TestNewStore_ValorCorruptoFrenaArranque: un JSON ilegible no se pisa con
// estado vacío, el constructor falla.
func TestNewStore_ValorCorruptoFrenaArranque(t *testing.T) {
	backend := kv.NewMemory()
	require.NoError(t, backend.Set(context.Background(), "tf_sales", []byte("{no es json")))

	_, err := memory.NewStore(context.Background(), backend, "tf_", logger.Nop())
	assert.Error(t, err, "valor corrupto debe frenar el arranque")
}

// TestStore_SnapshotTrasCadaMutacion: cada mutación exitosa espeja la
// colección completa al kv bajo su clave prefijada.
func TestStore_SnapshotTrasCadaMutacion(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()
	s := newStore(t, backend)

	require.NoError(t, s.Movements().Prepend(&entity.InventoryMovement{
		ID:        "m1",
		ProductID: "p1",
		Type:      entity.MovementTypeIN,
		Quantity:  5,
		Date:      time.Now(),
	}))

	data, err := backend.Get(ctx, "tf_movements")
	require.NoError(t, err)

	var persisted []*entity.InventoryMovement
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "m1", persisted[0].ID)
}

// TestStore_EstadoSobreviveReconstruccion: lo mutado en una instancia se lee
// en la siguiente construida sobre el mismo kv.
func TestStore_EstadoSobreviveReconstruccion(t *testing.T) {
	backend := kv.NewMemory()
	first := newStore(t, backend)

	require.NoError(t, first.Products().Delete("p2"))
	require.NoError(t, first.Sales().Prepend(&entity.Sale{
		ID:          "v1",
		OrderNumber: "VENTA-000001",
		Status:      entity.SaleStatusComplete,
		Total:       decimal.NewFromInt(950),
		Date:        time.Now(),
	}))

	second := newStore(t, backend)

	products, err := second.Products().List()
	require.NoError(t, err)
	assert.Len(t, products, 2)

	sale, err := second.Sales().GetByID("v1")
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "VENTA-000001", sale.OrderNumber)
}

// TestProductRepo_GetByIDAusenteDevuelveNilNil.
func TestProductRepo_GetByIDAusenteDevuelveNilNil(t *testing.T) {
	s := newStore(t, kv.NewMemory())

	p, err := s.Products().GetByID("fantasma")
	require.NoError(t, err, "id ausente no es error")
	assert.Nil(t, p)
}

// TestProductRepo_DuplicadoYAusente.
func TestProductRepo_DuplicadoYAusente(t *testing.T) {
	s := newStore(t, kv.NewMemory())

	err := s.Products().Create(&entity.Product{ID: "p1", Name: "Clon", SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = s.Products().Update(&entity.Product{ID: "fantasma", Name: "X", SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.Products().Delete("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestProductRepo_DeleteConservaHistorial: borrar el producto no toca el
// libro de movimientos que lo referencia.
func TestProductRepo_DeleteConservaHistorial(t *testing.T) {
	s := newStore(t, kv.NewMemory())

	require.NoError(t, s.Movements().Prepend(&entity.InventoryMovement{
		ID: "m1", ProductID: "p3", Type: entity.MovementTypeOUT, Quantity: 2, Date: time.Now(),
	}))
	require.NoError(t, s.Products().Delete("p3"))

	movements, err := s.Movements().ListByProduct("p3")
	require.NoError(t, err)
	assert.Len(t, movements, 1, "el historial sobrevive al producto")
}

// TestSaleRepo_PrependMasRecientePrimero.
func TestSaleRepo_PrependMasRecientePrimero(t *testing.T) {
	s := newStore(t, kv.NewMemory())

	require.NoError(t, s.Sales().Prepend(&entity.Sale{ID: "v1", Date: time.Now()}))
	require.NoError(t, s.Sales().Prepend(&entity.Sale{ID: "v2", Date: time.Now()}))

	sales, err := s.Sales().List()
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "v2", sales[0].ID, "la última venta encabeza la lista")
}

// TestSaleRepo_UpdateStatus.
func TestSaleRepo_UpdateStatus(t *testing.T) {
	s := newStore(t, kv.NewMemory())

	require.NoError(t, s.Sales().Prepend(&entity.Sale{ID: "v1", Status: entity.SaleStatusComplete}))
	require.NoError(t, s.Sales().UpdateStatus("v1", entity.SaleStatusAnnulled))

	sale, err := s.Sales().GetByID("v1")
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusAnnulled, sale.Status)

	err = s.Sales().UpdateStatus("fantasma", entity.SaleStatusAnnulled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
