package ingestion

// Campos lógicos compartidos.
const (
	fieldID       = "id"
	fieldKey      = "clave"
	fieldStatus   = "estado"
	fieldNotes    = "observaciones"
	fieldClient   = "cliente"
	fieldSerial   = "serie"
	fieldBrand    = "marca"
	fieldModel    = "modelo"
	fieldEqType   = "tipo_equipo"
	fieldCapacity = "capacidad"
	fieldSensitiv = "sensibilidad"
)

// Hoja "Clientes".
var clientFields = FieldMap{
	fieldID:         {"id", "idcliente", "codigo"},
	fieldKey:        {"clave"},
	"nombre_fiscal": {"nombre", "nombrecliente", "nombrefiscal", "razonsocial"},
	"ruc":           {"ruc", "ciruc", "cedularuc", "identificacion"},
	"provincia":     {"provincia"},
	"ciudad":        {"ciudad"},
	"direccion":     {"direccion"},
	"contacto":      {"contacto"},
	"telefono":      {"telefono", "celular"},
	"correo":        {"correo", "email", "correoelectronico"},
	"asesor":        {"asesorresponsable", "asesor"},
	"industria":     {"industria", "sector"},
	fieldNotes:      {"observaciones"},
}

// Hoja "Ingresos" (órdenes de trabajo).
var workOrderFields = FieldMap{
	fieldID:               {"id", "idorden", "idingreso"},
	fieldKey:              {"clave"},
	"fecha_ingreso":       {"fechaingreso", "fecha"},
	"tipo_ingreso":        {"tipoingreso"},
	"no_orden_taller":     {"noordentaller", "nordentaller", "ordentaller"},
	"no_orden_campo":      {"noordencampo", "nordencampo", "ordencampo"},
	"no_orden_produccion": {"noordenproduccion", "nordenproduccion", "ordenproduccion"},
	fieldClient:           {"cliente", "idcliente"},
	"servicio":            {"servicio", "tiposervicio"},
	"tecnico":             {"tecnicoejecucion", "tecnico"},
	fieldStatus:           {"estado"},
	fieldBrand:            {"marca"},
	fieldModel:            {"modelo"},
	fieldSerial:           {"serie", "noserie", "nserie"},
	fieldEqType:           {"tipoequipo", "tipo"},
	fieldCapacity:         {"capacidad"},
	fieldSensitiv:         {"sensibilidad"},
	"dano_reportado":      {"danobalanza", "danoreportado", "dano"},
	fieldNotes:            {"observaciones"},
}

// Hoja "Campo" (visitas).
var fieldVisitFields = FieldMap{
	fieldID:          {"id", "idcampo"},
	"codigo":         {"codigo"},
	"agencia_zona":   {"agenciazona", "agencia", "zona"},
	"ubicacion":      {"ubicacion"},
	fieldStatus:      {"estado"},
	fieldNotes:       {"observaciones"},
	"enlace_informe": {"enlaceinforme", "informe", "linkinforme"},
	"ultima_fecha":   {"ultimafecha", "fecha"},
	"tecnico1":       {"tecnico1", "tecnico"},
	"tecnico2":       {"tecnico2", "ayudante"},
	fieldClient:      {"cliente", "idcliente"},
	fieldSerial:      {"serie", "noserie", "nserie"},
	fieldBrand:       {"marca"},
	fieldModel:       {"modelo"},
	fieldEqType:      {"tipoequipo", "tipo"},
	fieldCapacity:    {"capacidad"},
	fieldSensitiv:    {"sensibilidad"},
}
