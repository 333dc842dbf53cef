package wholesale

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// unmatchedTally cuenta los ítems sin match agrupados por nombre normalizado.
type unmatchedTally struct {
	byName map[string]*entity.UnmatchedItem
}

func newUnmatchedTally() *unmatchedTally {
	return &unmatchedTally{byName: make(map[string]*entity.UnmatchedItem)}
}

func (t *unmatchedTally) add(name string, occurrences int, amount decimal.Decimal, seen time.Time) {
	key := catalog.Normalize(name)
	if key == "" {
		return
	}
	it, ok := t.byName[key]
	if !ok {
		t.byName[key] = &entity.UnmatchedItem{
			NormalizedName: key,
			SampleName:     name,
			Occurrences:    occurrences,
			Amount:         amount,
			LastSeenAt:     seen,
		}
		return
	}
	it.Occurrences += occurrences
	it.Amount = it.Amount.Add(amount)
	if seen.After(it.LastSeenAt) {
		it.LastSeenAt = seen
	}
}

func (t *unmatchedTally) merge(o *unmatchedTally) {
	for _, it := range o.byName {
		t.add(it.SampleName, it.Occurrences, it.Amount, it.LastSeenAt)
	}
}

func (t *unmatchedTally) total() int {
	n := 0
	for _, it := range t.byName {
		n += it.Occurrences
	}
	return n
}

// items los más frecuentes primero; a igual cantidad, orden alfabético.
func (t *unmatchedTally) items() []entity.UnmatchedItem {
	out := make([]entity.UnmatchedItem, 0, len(t.byName))
	for _, it := range t.byName {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].NormalizedName < out[j].NormalizedName
	})
	return out
}

func (t *unmatchedTally) dto() []dto.UnmatchedNameDTO {
	items := t.items()
	out := make([]dto.UnmatchedNameDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.UnmatchedNameDTO{Name: it.SampleName, Occurrences: it.Occurrences})
	}
	return out
}
