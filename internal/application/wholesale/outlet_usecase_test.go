package wholesale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

func newOutletUseCase() (*OutletUseCase, *fakeOutletRepo) {
	repo := &fakeOutletRepo{outlets: []*entity.Outlet{
		{ID: "a", Name: "Forrajería Norte", Zone: "Norte", IsActive: true,
			MonthlyKilos: []entity.MonthlyKilos{{Month: 1, Year: 2026, Kilos: 10}}},
	}}
	uc := NewOutletUseCase(repo)
	uc.now = func() time.Time { return march(20) }
	return uc, repo
}

func TestOutletCreate(t *testing.T) {
	uc, _ := newOutletUseCase()

	res, err := uc.Create(context.Background(), dto.CreateOutletRequest{
		Name: "  Pet Shop Centro ", Zone: "Centro", FreezerCapacity: 200,
		Contact: dto.OutletContactDTO{Email: " centro@petshop.test "},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-outlet", res.ID)
	assert.Equal(t, "Pet Shop Centro", res.Name)
	assert.Equal(t, "centro@petshop.test", res.Contact.Email)
	assert.True(t, res.IsActive)
	assert.Empty(t, res.MonthlyKilos)
	assert.Equal(t, march(20), res.CreatedAt)
}

func TestOutletCreate_Validaciones(t *testing.T) {
	uc, _ := newOutletUseCase()

	_, err := uc.Create(context.Background(), dto.CreateOutletRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateOutletRequest{Name: "X", FreezerCapacity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOutletUpdate_Parcial(t *testing.T) {
	uc, repo := newOutletUseCase()
	zone := "Oeste"

	res, err := uc.Update(context.Background(), "a", dto.UpdateOutletRequest{Zone: &zone})
	require.NoError(t, err)
	assert.Equal(t, "Oeste", res.Zone)
	assert.Equal(t, "Forrajería Norte", res.Name)
	assert.Len(t, repo.outlets[0].MonthlyKilos, 1, "la edición no toca el libro")

	empty := ""
	_, err = uc.Update(context.Background(), "a", dto.UpdateOutletRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), "zzz", dto.UpdateOutletRequest{Zone: &zone})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOutletDelete_BajaLogica(t *testing.T) {
	uc, repo := newOutletUseCase()

	require.NoError(t, uc.Delete(context.Background(), "a"))
	assert.False(t, repo.outlets[0].IsActive)

	list, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := uc.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestOutletSetMonthlyKilos(t *testing.T) {
	uc, _ := newOutletUseCase()

	res, err := uc.SetMonthlyKilos(context.Background(), "a", dto.SetMonthlyKilosRequest{Month: 1, Year: 2026, Kilos: 55.556})
	require.NoError(t, err)
	assert.Equal(t, []dto.MonthlyKilosDTO{{Month: 1, Year: 2026, Kilos: 55.56}}, res.MonthlyKilos)

	res, err = uc.SetMonthlyKilos(context.Background(), "a", dto.SetMonthlyKilosRequest{Month: 2, Year: 2026, Kilos: 5})
	require.NoError(t, err)
	assert.Len(t, res.MonthlyKilos, 2)
}

func TestOutletSetMonthlyKilos_Validaciones(t *testing.T) {
	uc, _ := newOutletUseCase()
	cases := map[string]dto.SetMonthlyKilosRequest{
		"mes 0":          {Month: 0, Year: 2026},
		"mes 13":         {Month: 13, Year: 2026},
		"año":            {Month: 1, Year: 1990},
		"kilos negativo": {Month: 1, Year: 2026, Kilos: -1},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.SetMonthlyKilos(context.Background(), "a", req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
