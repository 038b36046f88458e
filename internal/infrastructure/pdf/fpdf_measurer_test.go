package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFpdfMeasurer_AnchoHelvetica(t *testing.T) {
	m := NewFpdfMeasurer()

	// Helvetica: "a" = 556/1000 em.
	w, err := m.StringWidth("a", 10)
	require.NoError(t, err)
	assert.InDelta(t, 5.56, w, 1e-9)

	w, err = m.StringWidth("aa", 20)
	require.NoError(t, err)
	assert.InDelta(t, 22.24, w, 1e-9)
}

func TestFpdfMeasurer_CadenaVacia(t *testing.T) {
	w, err := NewFpdfMeasurer().StringWidth("", 12)
	require.NoError(t, err)
	assert.Zero(t, w)
}

// Los acentos se miden por su byte cp1252, no por los bytes UTF-8.
func TestFpdfMeasurer_Acentos(t *testing.T) {
	m := NewFpdfMeasurer()

	plain, err := m.StringWidth("Cafe", 10)
	require.NoError(t, err)
	accented, err := m.StringWidth("Café", 10)
	require.NoError(t, err)

	// e y é tienen el mismo ancho en Helvetica (556).
	assert.InDelta(t, plain, accented, 1e-9)
}

func TestFpdfMeasurer_GlifoNoSoportado(t *testing.T) {
	_, err := NewFpdfMeasurer().StringWidth("日本", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedGlyph)
}
