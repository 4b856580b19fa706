package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LDUAudit is the responsible-party change trail: one row per device handoff
// detected during an inventory import.
type LDUAudit struct{ ent.Schema }

func (LDUAudit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ldu_auditoria"},
	}
}

func (LDUAudit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("imei").NotEmpty().MaxLen(16),
		field.String("from_dni").Optional().Nillable().MaxLen(12),
		field.String("to_dni").Optional().Nillable().MaxLen(12),
		field.String("source_file").NotEmpty(),
		field.Time("changed_at").Default(time.Now).Immutable(),
	}
}

func (LDUAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("imei"),
	}
}
