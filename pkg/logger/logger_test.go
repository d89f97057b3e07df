package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/techstyle-pos/pkg/logger"
)

// TestNew_NivelesConocidos.
func TestNew_NivelesConocidos(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	l = logger.New(logger.Config{Env: "production", Level: "DEBUG"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel(), "el nivel no distingue mayúsculas")
}

// TestNew_NivelDesconocidoCaeAInfo: "verboso" o vacío no dejan el logger
// sin nivel.
func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())

	l = logger.New(logger.Config{Env: "production", Level: ""})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

// TestNop_DescartaTodo.
func TestNop_DescartaTodo(t *testing.T) {
	l := logger.Nop()
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}
