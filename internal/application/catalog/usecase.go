// Package catalog implementa la administración del catálogo: CRUD de
// productos y categorías, búsqueda de la vitrina y resolución de etiquetas
// para referencias colgantes.
package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/techstyle-pos/internal/domain"
	"github.com/tu-usuario/techstyle-pos/internal/domain/entity"
	"github.com/tu-usuario/techstyle-pos/internal/domain/repository"
	"github.com/tu-usuario/techstyle-pos/pkg/logger"
)

// PlaceholderCategoryName etiqueta de respaldo para un CategoryID colgante.
const PlaceholderCategoryName = "Sin categoría"

// UseCase casos de uso del catálogo.
type UseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		log:          log.Component("catalog"),
	}
}

// CreateProductInput datos para crear un producto.
type CreateProductInput struct {
	Name          string
	SKU           string
	Description   string
	CategoryID    string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Stock         int // stock inicial; los cambios posteriores van por movimientos
	MinStock      int
	ImageURL      string
	Images        []string
}

// CreateProduct crea un producto con id generado y, si no se dio imagen, una
// imagen de relleno derivada del nombre.
func (uc *UseCase) CreateProduct(in CreateProductInput) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = placeholderImage(in.Name)
	}

	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		SKU:           in.SKU,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Stock:         in.Stock,
		MinStock:      in.MinStock,
		ImageURL:      imageURL,
		Images:        in.Images,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("catalog: crear producto: %w", err)
	}

	uc.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	return product, nil
}

// UpdateProduct actualiza el producto en sitio. Las ventas históricas no se
// ven afectadas: sus líneas son instantáneas.
func (uc *UseCase) UpdateProduct(product *entity.Product) error {
	if product.Name == "" || product.SKU == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.productRepo.Update(product); err != nil {
		return fmt.Errorf("catalog: actualizar producto: %w", err)
	}
	return nil
}

// DeleteProduct elimina el producto de inmediato. Los movimientos y ventas
// que lo referencian se conservan; sus vistas degradan a etiquetas de
// respaldo.
func (uc *UseCase) DeleteProduct(id string) error {
	if err := uc.productRepo.Delete(id); err != nil {
		return fmt.Errorf("catalog: eliminar producto: %w", err)
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// GetProduct devuelve el producto o (nil, nil) si no existe.
func (uc *UseCase) GetProduct(id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(id)
}

// SearchProducts filtra por término (nombre o SKU, sin distinguir mayúsculas)
// y opcionalmente por categoría. Término y categoría vacíos listan todo.
func (uc *UseCase) SearchProducts(term, categoryID string) ([]*entity.Product, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("catalog: listar productos: %w", err)
	}

	term = strings.ToLower(term)
	var out []*entity.Product
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.SKU), term) {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// CreateCategory crea una categoría con id generado.
func (uc *UseCase) CreateCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{ID: uuid.New().String(), Name: name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("catalog: crear categoría: %w", err)
	}
	return category, nil
}

// DeleteCategory elimina la categoría. Sin cascada: los productos quedan con
// la referencia colgante y resuelven a la etiqueta de respaldo.
func (uc *UseCase) DeleteCategory(id string) error {
	if err := uc.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("catalog: eliminar categoría: %w", err)
	}
	return nil
}

// ListCategories lista las categorías.
func (uc *UseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

// CategoryName resuelve el nombre de la categoría de un producto, degradando
// a la etiqueta de respaldo cuando la referencia está colgante.
func (uc *UseCase) CategoryName(categoryID string) string {
	c, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil || c == nil {
		return PlaceholderCategoryName
	}
	return c.Name
}

// placeholderImage deriva una imagen determinista a partir del nombre.
func placeholderImage(name string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/200/200", url.PathEscape(name))
}
