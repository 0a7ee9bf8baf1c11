package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ExpresionesValidas(t *testing.T) {
	casos := []struct {
		entrada string
		want    float64
	}{
		{"3+1.5", 4.5},
		{"10/2", 5},
		{"8*0.9", 7.2},
		{"3,5", 3.5},
		{"12", 12},
		{"12.34", 12.34},
		{"(10+2)/4", 3},
		{"2+3*4", 14},    // precedencia convencional
		{"(2+3)*4", 20},  // paréntesis agrupan
		{"-3+5", 2},      // signo unario
		{" 1 + 2 ", 3},   // se elimina todo espacio
		{"10-2-3", 5},    // asociatividad izquierda
		{"100/10/2", 5},
	}
	for _, c := range casos {
		t.Run(c.entrada, func(t *testing.T) {
			got, err := Evaluate(c.entrada)
			require.NoError(t, err)
			assert.InDelta(t, c.want, got, 1e-9)
		})
	}
}

func TestEvaluate_EntradasRechazadas(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
	}{
		{"identificador", "abc"},
		{"división entre cero", "1/0"},
		{"cero entre cero", "0/0"},
		{"llamada a función", "alert(1)"},
		{"carácter fuera de la lista aunque el resto sea válido", "1+1;"},
		{"paréntesis sin cerrar", "(1+2"},
		{"paréntesis sobrante", "1+2)"},
		{"operador colgante", "3+"},
		{"doble punto decimal", "1.2.3"},
		{"corchetes", "[1]"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := Evaluate(c.entrada)
			assert.Error(t, err, "debe rechazar %q", c.entrada)
		})
	}
}

// El evaluador no decide qué significa el vacío: devuelve ErrBlank y cada
// contexto (precio en blanco = 0, campo de producto en blanco = sin valor)
// lo interpreta.
func TestEvaluate_EntradaVacia(t *testing.T) {
	for _, entrada := range []string{"", "   ", "\t"} {
		_, err := Evaluate(entrada)
		assert.ErrorIs(t, err, ErrBlank)
	}
}

func TestEvaluate_ListaBlancaAntesDeParsear(t *testing.T) {
	// El gate de caracteres rechaza aunque la aritmética resultante fuera
	// bien formada tras quitar el carácter extraño.
	_, err := Evaluate("1+2 #")
	assert.ErrorIs(t, err, ErrBadChar)
}

func TestEvaluate_ComaDecimal(t *testing.T) {
	got, err := Evaluate("1,5+2,5")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-9)
}
