package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func intPtr(n int) *int { return &n }

func TestUnitPrice_ReglaEscalonada(t *testing.T) {
	producto := &entity.Product{
		Codigo:    "PROD_0001",
		PrecioUnd: dec("4.50"),
		CantMayor: intPtr(12),
		PrecioCm:  dec("3.80"),
	}

	casos := []struct {
		nombre string
		qty    int
		want   string
	}{
		{"cantidad baja usa precio unitario", 1, "4.50"},
		{"justo debajo del umbral usa precio unitario", 11, "4.50"},
		{"en el umbral aplica precio por mayor (>=)", 12, "3.80"},
		{"sobre el umbral aplica precio por mayor", 100, "3.80"},
		{"cantidad negativa se trata como 0", -5, "4.50"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := UnitPrice(producto, c.qty)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"qty=%d: esperado %s, obtenido %s", c.qty, c.want, got)
		})
	}
}

// Un precio por mayor en 0 no aplica aunque la cantidad supere el umbral:
// cae al precio unitario (comportamiento intencional, no corregir).
func TestUnitPrice_PrecioMayorCeroCaeAlUnitario(t *testing.T) {
	producto := &entity.Product{
		PrecioUnd: dec("4.50"),
		CantMayor: intPtr(12),
		PrecioCm:  dec("0"),
	}
	got := UnitPrice(producto, 50)
	assert.True(t, got.Equal(decimal.RequireFromString("4.50")))
}

func TestUnitPrice_SinUmbralNoAplicaMayor(t *testing.T) {
	producto := &entity.Product{
		PrecioUnd: dec("4.50"),
		PrecioCm:  dec("3.80"), // sin cant_mayor el precio por mayor es inalcanzable
	}
	got := UnitPrice(producto, 1000)
	assert.True(t, got.Equal(decimal.RequireFromString("4.50")))
}

func TestUnitPrice_SinPreciosDevuelveCero(t *testing.T) {
	producto := &entity.Product{Codigo: "PROD_0002"}
	assert.True(t, UnitPrice(producto, 3).IsZero())
}

// Función pura: mismas entradas, mismo resultado, sin tocar el producto.
func TestUnitPrice_Determinista(t *testing.T) {
	producto := &entity.Product{
		PrecioUnd: dec("9.90"),
		CantMayor: intPtr(6),
		PrecioCm:  dec("8.00"),
	}
	a := UnitPrice(producto, 6)
	b := UnitPrice(producto, 6)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 6, *producto.CantMayor)
}
