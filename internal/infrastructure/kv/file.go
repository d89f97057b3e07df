package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File implementación de Store sobre el sistema de archivos local: cada clave
// es un archivo <dir>/<clave>.json. Suficiente para un tenant único sin
// concurrencia entre procesos.
type File struct {
	dir string
}

// NewFile construye el almacén creando el directorio si no existe.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv: crear directorio %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get lee el archivo de la clave; si no existe devuelve ErrNotFound.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv: leer %s: %w", key, err)
	}
	return data, nil
}

// Set escribe el valor de forma atómica (archivo temporal + rename) para no
// dejar un snapshot a medias si el proceso muere durante la escritura.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("kv: temporal para %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("kv: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kv: cerrar temporal de %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("kv: publicar %s: %w", key, err)
	}
	return nil
}
