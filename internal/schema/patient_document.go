package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientDocument is an uploaded file on a patient's record.
// The file itself lives in S3; this row holds the key and metadata.
type PatientDocument struct {
	ent.Schema
}

func (PatientDocument) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PatientDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Enum("document_type").
			Values("id_card", "insurance", "medical_report", "prescription", "lab_result", "consent_form", "other"),

		field.String("title").
			NotEmpty().
			MaxLen(200),

		field.String("file_key").
			NotEmpty().
			MaxLen(500).
			Comment("S3 object key"),

		field.Text("description").
			Optional().
			Nillable(),

		field.UUID("uploaded_by_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Bool("is_sensitive").
			Default(true).
			Comment("Sensitive documents are only served via short-lived presigned URLs"),

		field.Time("expiry_date").
			Optional().
			Nillable(),
	}
}

func (PatientDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("documents").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("uploaded_by", User.Type).
			Unique().
			Required().
			Field("uploaded_by_id"),
	}
}

func (PatientDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("patient_id", "document_type"),
	}
}
