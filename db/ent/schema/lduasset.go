package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type LDUAsset struct{ ent.Schema }

func (LDUAsset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ldu_activos"},
	}
}

func (LDUAsset) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("imei").NotEmpty().MinLen(14).MaxLen(16).Unique(),
		field.String("modelo").Optional().Nillable().MaxLen(100),
		field.String("responsable_dni").Optional().Nillable().MaxLen(12),
		field.String("responsable_nombre").Optional().Nillable().MaxLen(120),
		field.String("ubicacion").Optional().Nillable().MaxLen(200),
		field.Float("precio").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// deduced from the observation column; empty means manual review
		field.String("estado").Optional().MaxLen(40),
		field.String("observacion").Optional().Nillable().MaxLen(500),
		field.String("source_file_id").NotEmpty(),
		field.Enum("sync_status").Values("ACTIVO", "AUSENTE", "RECHAZADO").Default("ACTIVO"),
		field.Time("imported_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (LDUAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("responsable_dni"),
		index.Fields("sync_status"),
	}
}
