package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/techstyle-pos/internal/infrastructure/kv"
)

// TestFile_SetGet.
func TestFile_SetGet(t *testing.T) {
	store, err := kv.NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tf_products", []byte(`[{"id":"p1"}]`)))

	data, err := store.Get(ctx, "tf_products")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(data))
}

// TestFile_ClaveAusente.
func TestFile_ClaveAusente(t *testing.T) {
	store, err := kv.NewFile(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "tf_sales")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

// TestFile_SetSobrescribe: la escritura atómica deja siempre el último valor
// completo, nunca uno a medias.
func TestFile_SetSobrescribe(t *testing.T) {
	store, err := kv.NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tf_movements", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "tf_movements", []byte(`[{"id":"m1"}]`)))

	data, err := store.Get(ctx, "tf_movements")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"m1"}]`, string(data))
}

// TestMemory_SetGet.
func TestMemory_SetGet(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	_, err := store.Get(ctx, "tf_categories")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Set(ctx, "tf_categories", []byte(`[]`)))

	data, err := store.Get(ctx, "tf_categories")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

// TestMemory_DevuelveCopias: mutar el slice devuelto no contamina el valor
// almacenado.
func TestMemory_DevuelveCopias(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	data[0] = 'z'

	fresh, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(fresh))
}
