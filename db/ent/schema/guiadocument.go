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

type GuiaDocument struct{ ent.Schema }

func (GuiaDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documentos_guia"},
	}
}

func (GuiaDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// stable identity of the scanned file, used as the upsert key
		field.String("source_file_id").NotEmpty().Unique(),
		field.String("source_path").Optional(),
		field.String("numero_guia").Optional().Nillable().MaxLen(20),
		// raw literal as extracted, plus the parsed form for range queries
		field.String("fecha_documento").Optional().Nillable().MaxLen(40),
		field.Time("fecha_documento_parsed").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("proveedor").Optional().Nillable().MaxLen(200),
		field.String("ruc").Optional().Nillable().MaxLen(11),
		field.String("direccion_destino").Optional().Nillable().MaxLen(300),
		field.String("direccion_origen").Optional().Nillable().MaxLen(300),
		field.String("transportista").Optional().Nillable().MaxLen(100),
		field.String("dni_conductor").Optional().Nillable().MaxLen(8),
		field.String("placa").Optional().Nillable().MaxLen(8),
		field.String("observaciones").Optional().Nillable().MaxLen(500),
		field.String("codigo_interno").Optional().Nillable().MaxLen(40),
		field.String("destinatario_contacto").Optional().Nillable().MaxLen(100),
		field.String("destinatario_telefono").Optional().Nillable().MaxLen(9),
		field.JSON("productos", []map[string]any{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Bool("firmado").Default(false),
		field.Float("firma_confianza").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}),
		field.String("nombre_firmante").Optional().Nillable().MaxLen(120),
		field.Int("numero_paginas").Default(0),
		field.Text("raw_text").Optional(),
		field.Enum("ocr_status").Values("success", "partial", "error"),
		field.JSON("campos_faltantes", []string{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("procesado_en"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (GuiaDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("numero_guia"),
		index.Fields("ocr_status"),
		index.Fields("fecha_documento_parsed"),
	}
}
