package constants

// Canonical field names for extracted documents. These exact strings are used
// as DB column names, in missing_fields lists, and in the export headers.
const (
	FieldGuideNumber        = "numero_guia"
	FieldDocumentDate       = "fecha_documento"
	FieldProvider           = "proveedor"
	FieldRUC                = "ruc"
	FieldDestinationAddress = "direccion_destino"
	FieldOriginAddress      = "direccion_origen"
	FieldTransporter        = "transportista"
	FieldDriverDNI          = "dni_conductor"
	FieldPlate              = "placa"
	FieldObservations       = "observaciones"
	FieldInternalCode       = "codigo_interno"
	FieldConsigneeContact   = "destinatario_contacto"
	FieldConsigneePhone     = "destinatario_telefono"
)

// RequiredFields are the fields whose absence downgrades a document to
// partial status.
var RequiredFields = []string{FieldGuideNumber, FieldDocumentDate}
