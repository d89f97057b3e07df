// Package kv define el colaborador de persistencia: un almacén clave-valor
// donde cada colección lógica (productos, categorías, ventas, movimientos)
// se serializa completa como JSON tras cada mutación y se deserializa una
// sola vez al arranque.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound la clave no existe en el almacén. Para el arranque significa
// "usar datos semilla" (productos/categorías) o "lista vacía" (ventas/movimientos).
var ErrNotFound = errors.New("kv: clave no encontrada")

// Store puerto del almacén clave-valor. Las escrituras son fire-and-forget
// desde el punto de vista del dominio: un Set fallido se registra y se pierde.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
