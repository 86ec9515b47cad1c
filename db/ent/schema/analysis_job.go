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

// AnalysisJob is the intelligent-analysis side task, at most one per proposal.
type AnalysisJob struct{ ent.Schema }

func (AnalysisJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_jobs"},
	}
}

func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("proposal_id", uuid.UUID{}),
		field.String("status").Default(string(constants.AnalysisPending)).
			Validate(utils.EnumValidator(constants.AnalysisStatuses...)),
		field.JSON("selected_ages", []int{}).Optional(),
		field.String("error_message").Optional().Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("proposal", Proposal.Type).
			Ref("analysis_jobs").
			Field("proposal_id").
			Unique().
			Required(),
	}
}

func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		// at most one job per proposal
		index.Fields("proposal_id").Unique(),
	}
}
