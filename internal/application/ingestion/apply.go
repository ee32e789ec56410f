package ingestion

import (
	"context"
	"time"

	"github.com/jhoicas/productividad-api/internal/domain/entity"
)

func (uc *SyncUseCase) applyClient(ctx context.Context, r Repos, id string, rec Record, now time.Time) error {
	industryID, err := resolveCatalog(ctx, r, entity.CatalogIndustry, rec.Get("industria"))
	if err != nil {
		return err
	}
	name := entity.GhostClientName(id)
	if v := rec.Get("nombre_fiscal"); v != nil {
		name = *v
	}
	return r.Clients.Upsert(ctx, &entity.Client{
		ID:         id,
		Key:        rec.Get(fieldKey),
		LegalName:  name,
		TaxID:      rec.Get("ruc"),
		Province:   rec.Get("provincia"),
		City:       rec.Get("ciudad"),
		Address:    rec.Get("direccion"),
		Contact:    rec.Get("contacto"),
		Phone:      rec.Get("telefono"),
		Email:      rec.Get("correo"),
		IndustryID: industryID,
		Advisor:    rec.Get("asesor"),
		Notes:      rec.Get(fieldNotes),
		UpdatedAt:  now,
	})
}

func (uc *SyncUseCase) applyWorkOrder(ctx context.Context, r Repos, id string, rec Record, now time.Time) error {
	clientID := rec.Get(fieldClient)
	if err := ensureClient(ctx, r, clientID); err != nil {
		return err
	}
	equipmentID, err := resolveEquipment(ctx, r, rec, clientID)
	if err != nil {
		return err
	}
	serviceID, err := resolveCatalog(ctx, r, entity.CatalogServiceType, rec.Get("servicio"))
	if err != nil {
		return err
	}
	technicianID, err := resolveCatalog(ctx, r, entity.CatalogTechnician, rec.Get("tecnico"))
	if err != nil {
		return err
	}

	rawDate := rec.Get("fecha_ingreso")
	intake := parseSheetDate(rawDate)
	if rawDate != nil && intake == nil {
		uc.log.Debug().Str("order", id).Str("value", *rawDate).Msg("fecha de ingreso no reconocida")
	}

	return r.WorkOrders.Upsert(ctx, &entity.WorkOrder{
		ID:                    id,
		Key:                   rec.Get(fieldKey),
		IntakeDate:            intake,
		IntakeType:            rec.Get("tipo_ingreso"),
		WorkshopOrderNumber:   rec.Get("no_orden_taller"),
		FieldOrderNumber:      rec.Get("no_orden_campo"),
		ProductionOrderNumber: rec.Get("no_orden_produccion"),
		Status:                rec.Get(fieldStatus),
		Notes:                 rec.Get(fieldNotes),
		ReportedDamage:        rec.Get("dano_reportado"),
		ClientID:              clientID,
		EquipmentID:           equipmentID,
		ServiceTypeID:         serviceID,
		TechnicianID:          technicianID,
		UpdatedAt:             now,
	})
}

func (uc *SyncUseCase) applyFieldVisit(ctx context.Context, r Repos, id string, rec Record, now time.Time) error {
	clientID := rec.Get(fieldClient)
	if err := ensureClient(ctx, r, clientID); err != nil {
		return err
	}
	equipmentID, err := resolveEquipment(ctx, r, rec, clientID)
	if err != nil {
		return err
	}
	tech1, err := resolveCatalog(ctx, r, entity.CatalogTechnician, rec.Get("tecnico1"))
	if err != nil {
		return err
	}
	tech2, err := resolveCatalog(ctx, r, entity.CatalogTechnician, rec.Get("tecnico2"))
	if err != nil {
		return err
	}

	return r.FieldVisits.Upsert(ctx, &entity.FieldVisit{
		ID:            id,
		Code:          rec.Get("codigo"),
		Zone:          rec.Get("agencia_zona"),
		Location:      rec.Get("ubicacion"),
		Status:        rec.Get(fieldStatus),
		Notes:         rec.Get(fieldNotes),
		ReportLink:    rec.Get("enlace_informe"),
		LastVisitDate: parseSheetDate(rec.Get("ultima_fecha")),
		EquipmentID:   equipmentID,
		Technician1ID: tech1,
		Technician2ID: tech2,
		UpdatedAt:     now,
	})
}
