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

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/db/ent/schema/utils"
)

type Proposal struct{ ent.Schema }

func (Proposal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "proposals"},
	}
}

func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("client_name").NotEmpty(),
		field.String("client_needs").Optional().Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("proposal_type").Optional().Default(""),
		field.String("status").Default(string(constants.ProposalDraft)).
			Validate(utils.EnumValidator(constants.ProposalStatuses...)),
		// status to resume on explicit retry out of FAILED; empty otherwise
		field.String("failed_from").Optional().Default(""),
		field.String("failure_note").Optional().Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("target_currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("generated_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Proposal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("illustrations", Illustration.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.To("analysis_jobs", AnalysisJob.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
