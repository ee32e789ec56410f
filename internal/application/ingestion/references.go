package ingestion

import (
	"context"
	"fmt"

	"github.com/jhoicas/productividad-api/internal/domain/entity"
)

// Valores que las hojas usan para "sin serie"; no identifican un equipo.
var placeholderSerials = map[string]bool{
	"":         true,
	"sn":       true,
	"na":       true,
	"nd":       true,
	"sinserie": true,
	"0":        true,
}

// resolveCatalog get-or-create del nombre canónico; nil si la celda está vacía.
func resolveCatalog(ctx context.Context, r Repos, kind entity.CatalogKind, raw *string) (*int64, error) {
	if raw == nil {
		return nil, nil
	}
	name := CanonicalName(*raw)
	if name == "" {
		return nil, nil
	}
	id, err := r.Catalogs.GetOrCreate(ctx, kind, name)
	if err != nil {
		return nil, fmt.Errorf("catálogo %s %q: %w", kind, name, err)
	}
	return &id, nil
}

// ensureClient crea el cliente fantasma si la referencia no existe todavía.
func ensureClient(ctx context.Context, r Repos, clientID *string) error {
	if clientID == nil {
		return nil
	}
	if _, err := r.Clients.EnsureExists(ctx, *clientID); err != nil {
		return fmt.Errorf("cliente %q: %w", *clientID, err)
	}
	return nil
}

// resolveEquipment busca o crea el equipo por serie. Sin serie útil no hay equipo.
func resolveEquipment(ctx context.Context, r Repos, rec Record, clientID *string) (*int64, error) {
	serial := rec.Get(fieldSerial)
	if serial == nil || placeholderSerials[Normalize(*serial)] {
		return nil, nil
	}
	eq := &entity.Equipment{
		Serial:      serial,
		Brand:       rec.Get(fieldBrand),
		Model:       rec.Get(fieldModel),
		Type:        rec.Get(fieldEqType),
		Capacity:    rec.Get(fieldCapacity),
		Sensitivity: rec.Get(fieldSensitiv),
		ClientID:    clientID,
	}
	id, err := r.Equipment.FindOrCreateBySerial(ctx, eq)
	if err != nil {
		return nil, fmt.Errorf("equipo serie %q: %w", *serial, err)
	}
	return &id, nil
}
