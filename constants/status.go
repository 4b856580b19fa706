package constants

// DocStatus is the canonical extraction status for rows in documentos_guia.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusSuccess DocStatus = "success" // all required fields recovered
	DocStatusPartial DocStatus = "partial" // document processed but a required field is missing
	DocStatusError   DocStatus = "error"   // no pages decoded or page processing failed fatally
)

// SyncStatus is the canonical status for LDU inventory rows.
type SyncStatus string

const (
	SyncStatusActive   SyncStatus = "ACTIVO"
	SyncStatusAbsent   SyncStatus = "AUSENTE" // row disappeared from the source spreadsheet
	SyncStatusRejected SyncStatus = "RECHAZADO"
)
