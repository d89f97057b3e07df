package entity

// Category representa una categoría de productos del catálogo.
// Se crea y elimina libremente desde el panel admin; eliminar una categoría
// con productos los deja huérfanos (CategoryID colgante) y la vista resuelve
// con etiqueta de respaldo.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
