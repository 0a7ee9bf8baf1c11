// Package codes asigna códigos correlativos para productos y clientes.
package codes

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefijos y anchos de relleno de cada colección.
const (
	ProductPrefix = "PROD_"
	ProductWidth  = 4
	ClientPrefix  = "C_"
	ClientWidth   = 6
)

// Next devuelve el siguiente código libre con el prefijo dado, por ejemplo
// Next(["PROD_0001","PROD_0003"], "PROD_", 4) == "PROD_0004".
//
// Solo cuentan los códigos existentes que llevan el prefijo y cuyo sufijo es
// numérico; el resto se ignora sin error. Sin candidatos, el correlativo
// arranca en 1.
func Next(existing []string, prefix string, width int) string {
	max := 0
	for _, code := range existing {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(code, prefix))
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return prefix + fmt.Sprintf("%0*d", width, max+1)
}
