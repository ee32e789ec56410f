package entity

// Equipment equipo (balanza) atendido. Se identifica por serie cuando existe;
// la serie no es única a nivel de base de datos.
type Equipment struct {
	ID          int64
	Serial      *string
	Brand       *string
	Model       *string
	Type        *string
	Capacity    *string
	Sensitivity *string
	ClientID    *string
}
