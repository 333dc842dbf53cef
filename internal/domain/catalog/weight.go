package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// kilosRe: entero inicial seguido de la unidad KG ("15KG", "3 kg").
var kilosRe = regexp.MustCompile(`(?i)^(\d+)\s*kg`)

// ExtractKilos devuelve los kilos enteros de una etiqueta de peso.
// Si la etiqueta está vacía o no empieza con "<entero>KG" devuelve 0.
func ExtractKilos(label string) int {
	m := kilosRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
