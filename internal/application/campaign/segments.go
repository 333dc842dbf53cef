package campaign

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

const (
	activeWindow   = 30 * 24 * time.Hour // pidió en los últimos 30 días
	inactiveWindow = 60 * 24 * time.Hour // último pedido hace más de 60 días
)

// recipients resuelve el segmento de la campaña. ok=false si el segmento no existe.
func (uc *DispatchUseCase) recipients(ctx context.Context, segment string, now time.Time) ([]entity.Recipient, bool, error) {
	var (
		out []entity.Recipient
		err error
	)
	switch segment {
	case entity.SegmentAll:
		out, err = uc.clients.ListAll(ctx)
	case entity.SegmentActive:
		out, err = uc.clients.ListOrderedSince(ctx, now.Add(-activeWindow))
	case entity.SegmentInactive:
		out, err = uc.clients.ListLastOrderBefore(ctx, now.Add(-inactiveWindow))
	case entity.SegmentMayoristas:
		out, err = uc.outletContacts(ctx)
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, true, fmt.Errorf("campaign: segmento %s: %w", segment, err)
	}
	return out, true, nil
}

func (uc *DispatchUseCase) outletContacts(ctx context.Context) ([]entity.Recipient, error) {
	outlets, err := uc.outlets.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Recipient, 0, len(outlets))
	for _, o := range outlets {
		name := o.Contact.Name
		if name == "" {
			name = o.Name
		}
		out = append(out, entity.Recipient{Name: name, Email: o.Contact.Email, Phone: o.Contact.Phone})
	}
	return out, nil
}

// reachable destinatarios con dato de contacto para el canal, sin repetidos.
func reachable(rs []entity.Recipient, channel string) []entity.Recipient {
	seen := make(map[string]bool, len(rs))
	out := make([]entity.Recipient, 0, len(rs))
	for _, r := range rs {
		addr := strings.TrimSpace(r.Email)
		if channel == entity.ChannelWhatsApp {
			addr = strings.TrimSpace(r.Phone)
		} else {
			addr = strings.ToLower(addr)
		}
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, r)
	}
	return out
}

// chunk divide en lotes de a lo sumo size elementos.
func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size])
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
