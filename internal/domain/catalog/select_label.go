package catalog

import "strings"

// Separadores del texto del menú de selección.
const (
	weightOpen  = " ("
	weightClose = ")"
	optionSep   = " - "
)

// BuildSelectLabel arma el texto que muestra el menú de selección de productos y que
// termina guardado como nombre del ítem del pedido: "BIG DOG (15KG) - POLLO".
func BuildSelectLabel(product, weight, option string) string {
	label := product
	if weight != "" {
		label += weightOpen + weight + weightClose
	}
	if option != "" {
		label += optionSep + option
	}
	return label
}

// ParseSelectLabel es la inversa de BuildSelectLabel: devuelve producto, peso y variante.
// Se lee de derecha a izquierda: la variante es lo que sigue al último " - " si no tiene
// paréntesis, y el peso es el último "(...)" al final de lo que queda.
func ParseSelectLabel(label string) (product, weight, option string) {
	rest := label
	if i := strings.LastIndex(rest, optionSep); i >= 0 && !strings.ContainsAny(rest[i+len(optionSep):], "()") {
		option = rest[i+len(optionSep):]
		rest = rest[:i]
	}
	if strings.HasSuffix(rest, weightClose) {
		if j := strings.LastIndex(rest, weightOpen); j >= 0 {
			weight = rest[j+len(weightOpen) : len(rest)-len(weightClose)]
			rest = rest[:j]
		}
	}
	return rest, weight, option
}

// ValidLabelPart informa si s puede usarse como producto, peso o variante sin volver ambiguo
// el texto del menú: no admite paréntesis ni el separador " - ".
func ValidLabelPart(s string) bool {
	return !strings.ContainsAny(s, "()") && !strings.Contains(s, optionSep)
}
