// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "selected_ages", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "proposal_id", Type: field.TypeUUID},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_jobs_proposals_analysis_jobs",
				Columns:    []*schema.Column{AnalysisJobsColumns[6]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_proposal_id",
				Unique:  true,
				Columns: []*schema.Column{AnalysisJobsColumns[6]},
			},
		},
	}
	// IllustrationsColumns holds the columns for the "illustrations" table.
	IllustrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "order", Type: field.TypeInt},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "file_size_bytes", Type: field.TypeInt},
		{Name: "blob_id", Type: field.TypeString},
		{Name: "extraction_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "review_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "processing_notes", Type: field.TypeString, Nullable: true, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "database_match", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "selected_insurance_id", Type: field.TypeUUID, Nullable: true},
		{Name: "proposal_id", Type: field.TypeUUID},
	}
	// IllustrationsTable holds the schema information for the "illustrations" table.
	IllustrationsTable = &schema.Table{
		Name:       "illustrations",
		Columns:    IllustrationsColumns,
		PrimaryKey: []*schema.Column{IllustrationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "illustrations_insurance_products_selections",
				Columns:    []*schema.Column{IllustrationsColumns[13]},
				RefColumns: []*schema.Column{InsuranceProductsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "illustrations_proposals_illustrations",
				Columns:    []*schema.Column{IllustrationsColumns[14]},
				RefColumns: []*schema.Column{ProposalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "illustration_proposal_id_order",
				Unique:  true,
				Columns: []*schema.Column{IllustrationsColumns[14], IllustrationsColumns[1]},
			},
			{
				Name:    "illustration_proposal_id_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{IllustrationsColumns[14], IllustrationsColumns[5]},
			},
		},
	}
	// InsuranceProductsColumns holds the columns for the "insurance_products" table.
	InsuranceProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "normalized_provider", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "currency", Type: field.TypeString, Nullable: true, Size: 3, Default: "", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InsuranceProductsTable holds the schema information for the "insurance_products" table.
	InsuranceProductsTable = &schema.Table{
		Name:       "insurance_products",
		Columns:    InsuranceProductsColumns,
		PrimaryKey: []*schema.Column{InsuranceProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insuranceproduct_normalized_name_normalized_provider",
				Unique:  false,
				Columns: []*schema.Column{InsuranceProductsColumns[3], InsuranceProductsColumns[4]},
			},
			{
				Name:    "insuranceproduct_normalized_provider",
				Unique:  false,
				Columns: []*schema.Column{InsuranceProductsColumns[4]},
			},
		},
	}
	// ProposalsColumns holds the columns for the "proposals" table.
	ProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_name", Type: field.TypeString},
		{Name: "client_needs", Type: field.TypeString, Nullable: true, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "proposal_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "DRAFT"},
		{Name: "failed_from", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "failure_note", Type: field.TypeString, Nullable: true, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "target_currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProposalsTable holds the schema information for the "proposals" table.
	ProposalsTable = &schema.Table{
		Name:       "proposals",
		Columns:    ProposalsColumns,
		PrimaryKey: []*schema.Column{ProposalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proposal_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[4], ProposalsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobsTable,
		IllustrationsTable,
		InsuranceProductsTable,
		ProposalsTable,
	}
)

func init() {
	AnalysisJobsTable.ForeignKeys[0].RefTable = ProposalsTable
	AnalysisJobsTable.Annotation = &entsql.Annotation{
		Table: "analysis_jobs",
	}
	IllustrationsTable.ForeignKeys[0].RefTable = InsuranceProductsTable
	IllustrationsTable.ForeignKeys[1].RefTable = ProposalsTable
	IllustrationsTable.Annotation = &entsql.Annotation{
		Table: "illustrations",
	}
	InsuranceProductsTable.Annotation = &entsql.Annotation{
		Table: "insurance_products",
	}
	ProposalsTable.Annotation = &entsql.Annotation{
		Table: "proposals",
	}
}
