package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	"github.com/jhoicas/productividad-api/internal/domain/repository"
)

// RecordsUseCase consultas de solo lectura sobre los datos sincronizados.
type RecordsUseCase struct {
	clients     repository.ClientRepository
	workOrders  repository.WorkOrderRepository
	fieldVisits repository.FieldVisitRepository
	catalogs    repository.CatalogRepository
}

// NewRecordsUseCase construye el caso de uso.
func NewRecordsUseCase(
	clients repository.ClientRepository,
	workOrders repository.WorkOrderRepository,
	fieldVisits repository.FieldVisitRepository,
	catalogs repository.CatalogRepository,
) *RecordsUseCase {
	return &RecordsUseCase{clients: clients, workOrders: workOrders, fieldVisits: fieldVisits, catalogs: catalogs}
}

// ListClients clientes por nombre.
func (uc *RecordsUseCase) ListClients(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.ClientResponse], error) {
	page.DefaultPage()
	list, err := uc.clients.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClientResponse(c))
	}
	return &dto.ListResponse[dto.ClientResponse]{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// GetClient devuelve domain.ErrNotFound si no existe.
func (uc *RecordsUseCase) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toClientResponse(c)
	return &out, nil
}

// ListWorkOrders órdenes más recientes primero.
func (uc *RecordsUseCase) ListWorkOrders(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.WorkOrderResponse], error) {
	page.DefaultPage()
	list, err := uc.workOrders.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toWorkOrderResponse(o))
	}
	return &dto.ListResponse[dto.WorkOrderResponse]{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// GetWorkOrder devuelve domain.ErrNotFound si no existe.
func (uc *RecordsUseCase) GetWorkOrder(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	o, err := uc.workOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toWorkOrderResponse(o)
	return &out, nil
}

// ListFieldVisits visitas por última fecha.
func (uc *RecordsUseCase) ListFieldVisits(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.FieldVisitResponse], error) {
	page.DefaultPage()
	list, err := uc.fieldVisits.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FieldVisitResponse, 0, len(list))
	for _, v := range list {
		items = append(items, toFieldVisitResponse(v))
	}
	return &dto.ListResponse[dto.FieldVisitResponse]{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// ListTechnicians catálogo de técnicos.
func (uc *RecordsUseCase) ListTechnicians(ctx context.Context) ([]entity.CatalogItem, error) {
	return uc.catalogs.List(ctx, entity.CatalogTechnician)
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Key:       c.Key,
		LegalName: c.LegalName,
		TaxID:     c.TaxID,
		Province:  c.Province,
		City:      c.City,
		Address:   c.Address,
		Contact:   c.Contact,
		Phone:     c.Phone,
		Email:     c.Email,
		Industry:  c.IndustryName,
		Advisor:   c.Advisor,
		Notes:     c.Notes,
		UpdatedAt: c.UpdatedAt,
	}
}

func toEquipmentResponse(e *entity.Equipment) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipmentResponse{
		ID:          e.ID,
		Serial:      e.Serial,
		Brand:       e.Brand,
		Model:       e.Model,
		Type:        e.Type,
		Capacity:    e.Capacity,
		Sensitivity: e.Sensitivity,
	}
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toWorkOrderResponse(o *entity.WorkOrder) dto.WorkOrderResponse {
	out := dto.WorkOrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber(),
		IntakeDate:     datePtr(o.IntakeDate),
		IntakeType:     o.IntakeType,
		Status:         o.Status,
		Notes:          o.Notes,
		ReportedDamage: o.ReportedDamage,
		ClientID:       o.ClientID,
		ClientName:     o.ClientName,
		Service:        o.ServiceName,
		Technician:     o.TechnicianName,
		Equipment:      toEquipmentResponse(o.Equipment),
		UpdatedAt:      o.UpdatedAt,
	}
	return out
}

func toFieldVisitResponse(v *entity.FieldVisit) dto.FieldVisitResponse {
	out := dto.FieldVisitResponse{
		ID:            v.ID,
		Code:          v.Code,
		Zone:          v.Zone,
		Location:      v.Location,
		Status:        v.Status,
		Notes:         v.Notes,
		ReportLink:    v.ReportLink,
		LastVisitDate: datePtr(v.LastVisitDate),
		Technician1:   v.Technician1Name,
		Technician2:   v.Technician2Name,
		Equipment:     toEquipmentResponse(v.Equipment),
		UpdatedAt:     v.UpdatedAt,
	}
	return out
}
