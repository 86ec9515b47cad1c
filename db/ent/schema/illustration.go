package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/db/ent/schema/utils"
)

type Illustration struct{ ent.Schema }

func (Illustration) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "illustrations"},
	}
}

func (Illustration) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("proposal_id", uuid.UUID{}),
		field.UUID("selected_insurance_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("order").Min(1).Max(constants.MaxIllustrationsPerProposal),
		field.String("original_filename").NotEmpty(),
		field.Int("file_size_bytes").NonNegative(),
		field.String("blob_id").NotEmpty(),
		field.String("extraction_status").Default(string(constants.ExtractionPending)).
			Validate(utils.EnumValidator(constants.ExtractionStatuses...)),
		field.Float32("extraction_confidence").Default(0).Min(0).Max(1),
		field.String("review_status").Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatuses...)),
		field.String("processing_notes").Optional().Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.JSON("database_match", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Illustration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("proposal", Proposal.Type).
			Ref("illustrations").
			Field("proposal_id").
			Unique().
			Required(),
		edge.From("selected_product", InsuranceProduct.Type).
			Ref("selections").
			Field("selected_insurance_id").
			Unique(),
	}
}

func (Illustration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("proposal_id", "order").Unique(),
		index.Fields("proposal_id", "extraction_status"),
	}
}
