package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize recorta, pasa a mayúsculas y colapsa los espacios internos a uno solo.
// "  Big   dog (15kg) " → "BIG DOG (15KG)".
func Normalize(s string) string {
	// cases.Caser guarda estado: uno por llamada.
	return strings.Join(strings.Fields(cases.Upper(language.Spanish).String(s)), " ")
}

// compact quita todos los espacios; se usa para comparar etiquetas de peso ("15 KG" == "15KG").
func compact(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
