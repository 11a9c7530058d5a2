package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorsAggregation(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("stock", "el stock no puede ser negativo")
	fe.Add("unit_price", "el precio debe ser mayor a 0")
	fe.Add("stock", "overwritten message must be ignored")

	assert.Len(t, fe, 2)
	assert.Equal(t, "el stock no puede ser negativo", fe["stock"])
	assert.Equal(t, "stock: el stock no puede ser negativo; unit_price: el precio debe ser mayor a 0", fe.Error())
}

func TestFieldErrorsOrNil(t *testing.T) {
	fe := FieldErrors{}
	assert.NoError(t, fe.OrNil())

	fe.Add("rut", ErrRUTTooShort.Error())
	require.Error(t, fe.OrNil())
}

func TestAsFieldErrors(t *testing.T) {
	fe := FieldErrors{"dose": "la dosis no puede estar vacía"}
	wrapped := fmt.Errorf("rechazado: %w", fe.OrNil())

	got, ok := AsFieldErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, "la dosis no puede estar vacía", got["dose"])

	_, ok = AsFieldErrors(ErrInvalidPhone)
	assert.False(t, ok)
}
