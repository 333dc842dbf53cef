package catalog

import (
	"sort"
	"strings"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// MatchRule indica qué regla resolvió el match.
type MatchRule string

const (
	RuleExactFullName    MatchRule = "exact_full_name"
	RuleExactProductName MatchRule = "exact_product_name"
	RulePartial          MatchRule = "partial"
	RuleNone             MatchRule = "none"
)

// Entry producto canónico del catálogo mayorista, con nombres ya normalizados.
type Entry struct {
	FullName    string // producto + " " + peso
	ProductName string
	WeightLabel string
	Kilos       int
}

// NewEntry construye una entrada normalizada a partir del nombre y la etiqueta de peso.
func NewEntry(product, weight string) Entry {
	p := Normalize(product)
	w := Normalize(weight)
	full := p
	if w != "" {
		full = p + " " + w
	}
	return Entry{FullName: full, ProductName: p, WeightLabel: w, Kilos: ExtractKilos(w)}
}

// MatchResult resultado etiquetado del matcher: o bien Matched con la entrada encontrada,
// o bien no matcheado con el nombre original para auditarlo.
type MatchResult struct {
	Matched      bool
	Rule         MatchRule
	Entry        Entry
	ItemID       string
	OriginalName string
}

// Matcher resuelve ítems de pedido contra el catálogo.
//
// El orden de las entradas no depende del orden en que las devolvió la base: se ordenan
// por (ProductName, Kilos, FullName) al construir el matcher. Con eso el desempate es
// siempre el mismo para el mismo catálogo.
type Matcher struct {
	entries   []Entry
	byFull    map[string]int
	byProduct map[string]int
}

// NewMatcher construye un matcher sobre una copia ordenada de entries.
func NewMatcher(entries []Entry) *Matcher {
	sorted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.ProductName == "" {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		if a.Kilos != b.Kilos {
			return a.Kilos < b.Kilos
		}
		return a.FullName < b.FullName
	})

	m := &Matcher{
		entries:   sorted,
		byFull:    make(map[string]int, len(sorted)),
		byProduct: make(map[string]int, len(sorted)),
	}
	for i, e := range sorted {
		if _, ok := m.byFull[e.FullName]; !ok {
			m.byFull[e.FullName] = i
		}
		if _, ok := m.byProduct[e.ProductName]; !ok {
			m.byProduct[e.ProductName] = i
		}
	}
	return m
}

// Entries devuelve las entradas en el orden usado para desempatar.
func (m *Matcher) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Match resuelve un ítem de pedido.
func (m *Matcher) Match(item entity.LineItem) MatchResult {
	res := m.MatchName(item.Name)
	res.ItemID = item.ID
	return res
}

// MatchName aplica, en orden: nombre completo exacto, nombre de producto exacto y match
// parcial (todas las palabras del producto contenidas en el nombre del ítem).
//
// Entre varios candidatos parciales gana el que tiene su peso escrito en el nombre del
// ítem, después el de nombre de producto más largo y por último el primero del catálogo.
func (m *Matcher) MatchName(name string) MatchResult {
	norm := Normalize(name)
	res := MatchResult{Rule: RuleNone, OriginalName: name}
	if norm == "" {
		return res
	}

	if i, ok := m.byFull[norm]; ok {
		return m.hit(res, i, RuleExactFullName)
	}
	if i, ok := m.byProduct[norm]; ok {
		return m.hit(res, i, RuleExactProductName)
	}

	best := -1
	bestWeight := false
	compactName := compact(norm)
	for i, e := range m.entries {
		if !containsAllWords(norm, e.ProductName) {
			continue
		}
		hasWeight := e.WeightLabel != "" && strings.Contains(compactName, compact(e.WeightLabel))
		if best == -1 || betterPartial(hasWeight, e, bestWeight, m.entries[best]) {
			best, bestWeight = i, hasWeight
		}
	}
	if best >= 0 {
		return m.hit(res, best, RulePartial)
	}
	return res
}

func (m *Matcher) hit(res MatchResult, i int, rule MatchRule) MatchResult {
	res.Matched = true
	res.Rule = rule
	res.Entry = m.entries[i]
	return res
}

// betterPartial informa si el candidato (aWeight, a) le gana al actual (bWeight, b).
// Empates estrictos se resuelven a favor del actual (el primero en el catálogo).
func betterPartial(aWeight bool, a Entry, bWeight bool, b Entry) bool {
	if aWeight != bWeight {
		return aWeight
	}
	return len(a.ProductName) > len(b.ProductName)
}

func containsAllWords(haystack, product string) bool {
	words := strings.Fields(product)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(haystack, w) {
			return false
		}
	}
	return true
}

// ItemKilos devuelve los kilos aportados por un ítem (kilos del producto × unidades)
// junto con el resultado del match. Un ítem sin match aporta 0.
func (m *Matcher) ItemKilos(item entity.LineItem) (float64, MatchResult) {
	res := m.Match(item)
	if !res.Matched {
		return 0, res
	}
	return float64(res.Entry.Kilos * TotalQuantity(item)), res
}

// BuildEntries arma las entradas del catálogo a partir de los precios vigentes.
// Descarta los inactivos y, cuando un mismo producto+peso tiene varias versiones,
// se queda con la de mes/año más reciente.
func BuildEntries(prices []entity.PricedProduct) []Entry {
	type versioned struct {
		entry  Entry
		period int
	}
	latest := make(map[string]versioned, len(prices))
	order := make([]string, 0, len(prices))
	for _, p := range prices {
		if !p.IsActive {
			continue
		}
		e := NewEntry(p.Product, p.Weight)
		if e.ProductName == "" {
			continue
		}
		period := p.Year*12 + p.Month
		prev, ok := latest[e.FullName]
		if !ok {
			order = append(order, e.FullName)
		}
		if !ok || period > prev.period {
			latest[e.FullName] = versioned{entry: e, period: period}
		}
	}
	out := make([]Entry, 0, len(order))
	for _, k := range order {
		out = append(out, latest[k].entry)
	}
	return out
}
