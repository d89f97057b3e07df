// Package memory implementa el almacén de estado del sistema: las cuatro
// colecciones (productos, categorías, ventas, movimientos) viven en memoria
// del proceso y se espejan al colaborador clave-valor tras cada mutación
// exitosa. El snapshot es fire-and-forget: un Set fallido se registra en el
// log y se pierde, nunca se propaga al dominio.
//
// Un objeto Store con API de mutación definida (los puertos de repositorio) y
// persistencia inyectada, de modo que la lógica de negocio se prueba con un
// kv falso en memoria.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tu-usuario/techstyle-pos/internal/domain"
	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/domain/repository"
	"github.com/tu-usuario/techstyle-pos/internal/infrastructure/kv"
	"github.com/tu-usuario/techstyle-pos/pkg/logger"
)

// Sufijos de las claves lógicas del colaborador de persistencia. Con el
// prefijo por defecto se obtienen tf_products, tf_categories, tf_sales y
// tf_movements.
const (
	keyProducts   = "products"
	keyCategories = "categories"
	keySales      = "sales"
	keyMovements  = "movements"
)

// Store posee las cuatro colecciones y expone los puertos de repositorio
// sobre ellas. Las búsquedas por id van contra índices map (no barridos
// lineales); ventas y movimientos se mantienen más-reciente-primero.
type Store struct {
	mu     sync.RWMutex
	kv     kv.Store
	prefix string
	log    *logger.Logger

	products   []*entity.Product
	productIx  map[string]*entity.Product
	categories []*entity.Category
	categoryIx map[string]*entity.Category
	sales      []*entity.Sale
	saleIx     map[string]*entity.Sale
	movements  []*entity.InventoryMovement
}

// NewStore carga el estado inicial desde el colaborador clave-valor.
// Clave ausente: datos semilla para productos/categorías, lista vacía para
// ventas/movimientos. Un valor corrupto sí es error: mejor frenar el arranque
// que pisar el snapshot con estado vacío.
func NewStore(ctx context.Context, store kv.Store, prefix string, log *logger.Logger) (*Store, error) {
	s := &Store{
		kv:     store,
		prefix: prefix,
		log:    log.Component("memory-store"),
	}

	if err := loadCollection(ctx, store, prefix+keyProducts, &s.products, seedProducts); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, store, prefix+keyCategories, &s.categories, seedCategories); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, store, prefix+keySales, &s.sales, func() []*entity.Sale { return nil }); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, store, prefix+keyMovements, &s.movements, func() []*entity.InventoryMovement { return nil }); err != nil {
		return nil, err
	}

	s.productIx = make(map[string]*entity.Product, len(s.products))
	for _, p := range s.products {
		s.productIx[p.ID] = p
	}
	s.categoryIx = make(map[string]*entity.Category, len(s.categories))
	for _, c := range s.categories {
		s.categoryIx[c.ID] = c
	}
	s.saleIx = make(map[string]*entity.Sale, len(s.sales))
	for _, v := range s.sales {
		s.saleIx[v.ID] = v
	}

	s.log.Info().
		Int("products", len(s.products)).
		Int("categories", len(s.categories)).
		Int("sales", len(s.sales)).
		Int("movements", len(s.movements)).
		Msg("estado inicial cargado")

	return s, nil
}

// loadCollection deserializa una colección o cae al valor semilla si la clave
// no existe.
func loadCollection[T any](ctx context.Context, store kv.Store, key string, dst *[]T, seed func() []T) error {
	data, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		*dst = seed()
		return nil
	}
	if err != nil {
		return fmt.Errorf("memory: cargar %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("memory: deserializar %s: %w", key, err)
	}
	return nil
}

// snapshot serializa una colección y la escribe al kv. Se llama con el lock
// tomado, después de cada mutación exitosa; el error solo se registra.
func (s *Store) snapshot(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("serializar snapshot")
		return
	}
	if err := s.kv.Set(context.Background(), s.prefix+key, data); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("snapshot perdido")
	}
}

// Products devuelve el puerto de repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return productRepo{s} }

// Categories devuelve el puerto de repositorio de categorías.
func (s *Store) Categories() repository.CategoryRepository { return categoryRepo{s} }

// Sales devuelve el puerto de repositorio de ventas.
func (s *Store) Sales() repository.SaleRepository { return saleRepo{s} }

// Movements devuelve el puerto del libro de movimientos.
func (s *Store) Movements() repository.InventoryMovementRepository { return movementRepo{s} }

// ── Productos ─────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r productRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.productIx[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products = append(r.s.products, p)
	r.s.productIx[p.ID] = p
	r.s.snapshot(keyProducts, r.s.products)
	return nil
}

// GetByID devuelve (nil, nil) cuando el id no existe: la referencia colgante
// es estado esperado, el caller decide cómo degradar.
func (r productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.productIx[id], nil
}

func (r productRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.productIx[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for i, existing := range r.s.products {
		if existing.ID == p.ID {
			r.s.products[i] = p
			break
		}
	}
	r.s.productIx[p.ID] = p
	r.s.snapshot(keyProducts, r.s.products)
	return nil
}

func (r productRepo) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, len(r.s.products))
	copy(out, r.s.products)
	return out, nil
}

// Delete elimina el producto de inmediato (sin soft-delete). Las ventas y
// movimientos históricos que lo referencian se conservan intactos.
func (r productRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.productIx[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.productIx, id)
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			break
		}
	}
	r.s.snapshot(keyProducts, r.s.products)
	return nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

type categoryRepo struct{ s *Store }

func (r categoryRepo) Create(c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categoryIx[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.categories = append(r.s.categories, c)
	r.s.categoryIx[c.ID] = c
	r.s.snapshot(keyCategories, r.s.categories)
	return nil
}

func (r categoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.categoryIx[id], nil
}

func (r categoryRepo) List() ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, len(r.s.categories))
	copy(out, r.s.categories)
	return out, nil
}

// Delete elimina la categoría; los productos que la referencian quedan con
// CategoryID colgante y las vistas resuelven con etiqueta de respaldo.
func (r categoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categoryIx[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.categoryIx, id)
	for i, c := range r.s.categories {
		if c.ID == id {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			break
		}
	}
	r.s.snapshot(keyCategories, r.s.categories)
	return nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r saleRepo) Prepend(v *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.saleIx[v.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.sales = append([]*entity.Sale{v}, r.s.sales...)
	r.s.saleIx[v.ID] = v
	r.s.snapshot(keySales, r.s.sales)
	return nil
}

func (r saleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.saleIx[id], nil
}

func (r saleRepo) List() ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Sale, len(r.s.sales))
	copy(out, r.s.sales)
	return out, nil
}

// UpdateStatus aplica la única mutación legal sobre una venta registrada.
func (r saleRepo) UpdateStatus(id string, status entity.SaleStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.saleIx[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Status = status
	r.s.snapshot(keySales, r.s.sales)
	return nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

// Prepend inserta al frente: el libro se lee más-reciente-primero.
func (r movementRepo) Prepend(m *entity.InventoryMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append([]*entity.InventoryMovement{m}, r.s.movements...)
	r.s.snapshot(keyMovements, r.s.movements)
	return nil
}

func (r movementRepo) List() ([]*entity.InventoryMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.InventoryMovement, len(r.s.movements))
	copy(out, r.s.movements)
	return out, nil
}

func (r movementRepo) ListByProduct(productID string) ([]*entity.InventoryMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.InventoryMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
