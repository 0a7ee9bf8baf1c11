package excel

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldT descompone y elimina marcas diacríticas ("CÓDIGO" -> "CODIGO").
var foldT = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza una celda o palabra clave para comparar: sin tildes, sin
// espacios en los bordes, en mayúsculas. Las cabeceras de libros reales
// vienen con y sin tildes indistintamente.
func fold(s string) string {
	out, _, err := transform.String(foldT, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}
