package entity

// CatalogKind identifica una tabla catálogo (industria, técnico, tipo de servicio).
// Todas comparten la forma (id, name UNIQUE) y se pueblan con get-or-create.
type CatalogKind string

const (
	CatalogIndustry    CatalogKind = "industry"
	CatalogTechnician  CatalogKind = "technician"
	CatalogServiceType CatalogKind = "service_type"
)

// CatalogItem fila de un catálogo.
type CatalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
