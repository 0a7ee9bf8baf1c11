package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext_Correlativo(t *testing.T) {
	got := Next([]string{"PROD_0001", "PROD_0003"}, "PROD_", 4)
	assert.Equal(t, "PROD_0004", got)
}

func TestNext_SinCodigosArrancaEnUno(t *testing.T) {
	assert.Equal(t, "PROD_0001", Next(nil, "PROD_", 4))
	assert.Equal(t, "C_000001", Next([]string{}, "C_", 6))
}

// Códigos con otro prefijo o sufijo no numérico se ignoran, no son error.
func TestNext_IgnoraNoConformes(t *testing.T) {
	existing := []string{"PROD_0002", "C_000009", "PROD_X", "PROD_", "LEGACY-7"}
	assert.Equal(t, "PROD_0003", Next(existing, "PROD_", 4))
	assert.Equal(t, "C_000010", Next(existing, "C_", 6))
}

func TestNext_NoDesbordaElRelleno(t *testing.T) {
	// Con más dígitos que el ancho el código sigue siendo único.
	got := Next([]string{"PROD_9999"}, "PROD_", 4)
	assert.Equal(t, "PROD_10000", got)
}
