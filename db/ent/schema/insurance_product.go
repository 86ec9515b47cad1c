package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// InsuranceProduct is one row of the canonical product catalog. The catalog is
// read-only from the pipeline's perspective; rows are maintained elsewhere.
type InsuranceProduct struct{ ent.Schema }

func (InsuranceProduct) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "insurance_products"},
	}
}

func (InsuranceProduct) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("provider").NotEmpty(),
		// precomputed lookup keys (lowercase, punctuation stripped)
		field.String("normalized_name").NotEmpty(),
		field.String("normalized_provider").NotEmpty(),
		field.String("category").Optional().Default(""),
		field.String("currency").Optional().MaxLen(3).Default("").
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InsuranceProduct) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("selections", Illustration.Type),
	}
}

func (InsuranceProduct) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("normalized_name", "normalized_provider"),
		index.Fields("normalized_provider"),
	}
}
