// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/advisorhq/proposal-pipeline/db/ent/schema"
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescStatus is the schema descriptor for status field.
	analysisjobDescStatus := analysisjobFields[2].Descriptor()
	// analysisjob.DefaultStatus holds the default value on creation for the status field.
	analysisjob.DefaultStatus = analysisjobDescStatus.Default.(string)
	// analysisjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysisjob.StatusValidator = analysisjobDescStatus.Validators[0].(func(string) error)
	// analysisjobDescErrorMessage is the schema descriptor for error_message field.
	analysisjobDescErrorMessage := analysisjobFields[4].Descriptor()
	// analysisjob.DefaultErrorMessage holds the default value on creation for the error_message field.
	analysisjob.DefaultErrorMessage = analysisjobDescErrorMessage.Default.(string)
	// analysisjobDescCreatedAt is the schema descriptor for created_at field.
	analysisjobDescCreatedAt := analysisjobFields[5].Descriptor()
	// analysisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisjob.DefaultCreatedAt = analysisjobDescCreatedAt.Default.(func() time.Time)
	// analysisjobDescID is the schema descriptor for id field.
	analysisjobDescID := analysisjobFields[0].Descriptor()
	// analysisjob.DefaultID holds the default value on creation for the id field.
	analysisjob.DefaultID = analysisjobDescID.Default.(func() uuid.UUID)
	illustrationFields := schema.Illustration{}.Fields()
	_ = illustrationFields
	// illustrationDescOrder is the schema descriptor for order field.
	illustrationDescOrder := illustrationFields[3].Descriptor()
	// illustration.OrderValidator is a validator for the "order" field. It is called by the builders before save.
	illustration.OrderValidator = func() func(int) error {
		validators := illustrationDescOrder.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(_order int) error {
			for _, fn := range fns {
				if err := fn(_order); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// illustrationDescOriginalFilename is the schema descriptor for original_filename field.
	illustrationDescOriginalFilename := illustrationFields[4].Descriptor()
	// illustration.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	illustration.OriginalFilenameValidator = illustrationDescOriginalFilename.Validators[0].(func(string) error)
	// illustrationDescFileSizeBytes is the schema descriptor for file_size_bytes field.
	illustrationDescFileSizeBytes := illustrationFields[5].Descriptor()
	// illustration.FileSizeBytesValidator is a validator for the "file_size_bytes" field. It is called by the builders before save.
	illustration.FileSizeBytesValidator = illustrationDescFileSizeBytes.Validators[0].(func(int) error)
	// illustrationDescBlobID is the schema descriptor for blob_id field.
	illustrationDescBlobID := illustrationFields[6].Descriptor()
	// illustration.BlobIDValidator is a validator for the "blob_id" field. It is called by the builders before save.
	illustration.BlobIDValidator = illustrationDescBlobID.Validators[0].(func(string) error)
	// illustrationDescExtractionStatus is the schema descriptor for extraction_status field.
	illustrationDescExtractionStatus := illustrationFields[7].Descriptor()
	// illustration.DefaultExtractionStatus holds the default value on creation for the extraction_status field.
	illustration.DefaultExtractionStatus = illustrationDescExtractionStatus.Default.(string)
	// illustration.ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	illustration.ExtractionStatusValidator = illustrationDescExtractionStatus.Validators[0].(func(string) error)
	// illustrationDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	illustrationDescExtractionConfidence := illustrationFields[8].Descriptor()
	// illustration.DefaultExtractionConfidence holds the default value on creation for the extraction_confidence field.
	illustration.DefaultExtractionConfidence = illustrationDescExtractionConfidence.Default.(float32)
	// illustration.ExtractionConfidenceValidator is a validator for the "extraction_confidence" field. It is called by the builders before save.
	illustration.ExtractionConfidenceValidator = func() func(float32) error {
		validators := illustrationDescExtractionConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(extraction_confidence float32) error {
			for _, fn := range fns {
				if err := fn(extraction_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// illustrationDescReviewStatus is the schema descriptor for review_status field.
	illustrationDescReviewStatus := illustrationFields[9].Descriptor()
	// illustration.DefaultReviewStatus holds the default value on creation for the review_status field.
	illustration.DefaultReviewStatus = illustrationDescReviewStatus.Default.(string)
	// illustration.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	illustration.ReviewStatusValidator = illustrationDescReviewStatus.Validators[0].(func(string) error)
	// illustrationDescProcessingNotes is the schema descriptor for processing_notes field.
	illustrationDescProcessingNotes := illustrationFields[10].Descriptor()
	// illustration.DefaultProcessingNotes holds the default value on creation for the processing_notes field.
	illustration.DefaultProcessingNotes = illustrationDescProcessingNotes.Default.(string)
	// illustrationDescCreatedAt is the schema descriptor for created_at field.
	illustrationDescCreatedAt := illustrationFields[13].Descriptor()
	// illustration.DefaultCreatedAt holds the default value on creation for the created_at field.
	illustration.DefaultCreatedAt = illustrationDescCreatedAt.Default.(func() time.Time)
	// illustrationDescUpdatedAt is the schema descriptor for updated_at field.
	illustrationDescUpdatedAt := illustrationFields[14].Descriptor()
	// illustration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	illustration.DefaultUpdatedAt = illustrationDescUpdatedAt.Default.(func() time.Time)
	// illustration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	illustration.UpdateDefaultUpdatedAt = illustrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// illustrationDescID is the schema descriptor for id field.
	illustrationDescID := illustrationFields[0].Descriptor()
	// illustration.DefaultID holds the default value on creation for the id field.
	illustration.DefaultID = illustrationDescID.Default.(func() uuid.UUID)
	insuranceproductFields := schema.InsuranceProduct{}.Fields()
	_ = insuranceproductFields
	// insuranceproductDescName is the schema descriptor for name field.
	insuranceproductDescName := insuranceproductFields[1].Descriptor()
	// insuranceproduct.NameValidator is a validator for the "name" field. It is called by the builders before save.
	insuranceproduct.NameValidator = insuranceproductDescName.Validators[0].(func(string) error)
	// insuranceproductDescProvider is the schema descriptor for provider field.
	insuranceproductDescProvider := insuranceproductFields[2].Descriptor()
	// insuranceproduct.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	insuranceproduct.ProviderValidator = insuranceproductDescProvider.Validators[0].(func(string) error)
	// insuranceproductDescNormalizedName is the schema descriptor for normalized_name field.
	insuranceproductDescNormalizedName := insuranceproductFields[3].Descriptor()
	// insuranceproduct.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	insuranceproduct.NormalizedNameValidator = insuranceproductDescNormalizedName.Validators[0].(func(string) error)
	// insuranceproductDescNormalizedProvider is the schema descriptor for normalized_provider field.
	insuranceproductDescNormalizedProvider := insuranceproductFields[4].Descriptor()
	// insuranceproduct.NormalizedProviderValidator is a validator for the "normalized_provider" field. It is called by the builders before save.
	insuranceproduct.NormalizedProviderValidator = insuranceproductDescNormalizedProvider.Validators[0].(func(string) error)
	// insuranceproductDescCategory is the schema descriptor for category field.
	insuranceproductDescCategory := insuranceproductFields[5].Descriptor()
	// insuranceproduct.DefaultCategory holds the default value on creation for the category field.
	insuranceproduct.DefaultCategory = insuranceproductDescCategory.Default.(string)
	// insuranceproductDescCurrency is the schema descriptor for currency field.
	insuranceproductDescCurrency := insuranceproductFields[6].Descriptor()
	// insuranceproduct.DefaultCurrency holds the default value on creation for the currency field.
	insuranceproduct.DefaultCurrency = insuranceproductDescCurrency.Default.(string)
	// insuranceproduct.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	insuranceproduct.CurrencyValidator = insuranceproductDescCurrency.Validators[0].(func(string) error)
	// insuranceproductDescCreatedAt is the schema descriptor for created_at field.
	insuranceproductDescCreatedAt := insuranceproductFields[7].Descriptor()
	// insuranceproduct.DefaultCreatedAt holds the default value on creation for the created_at field.
	insuranceproduct.DefaultCreatedAt = insuranceproductDescCreatedAt.Default.(func() time.Time)
	// insuranceproductDescUpdatedAt is the schema descriptor for updated_at field.
	insuranceproductDescUpdatedAt := insuranceproductFields[8].Descriptor()
	// insuranceproduct.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	insuranceproduct.DefaultUpdatedAt = insuranceproductDescUpdatedAt.Default.(func() time.Time)
	// insuranceproduct.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	insuranceproduct.UpdateDefaultUpdatedAt = insuranceproductDescUpdatedAt.UpdateDefault.(func() time.Time)
	// insuranceproductDescID is the schema descriptor for id field.
	insuranceproductDescID := insuranceproductFields[0].Descriptor()
	// insuranceproduct.DefaultID holds the default value on creation for the id field.
	insuranceproduct.DefaultID = insuranceproductDescID.Default.(func() uuid.UUID)
	proposalFields := schema.Proposal{}.Fields()
	_ = proposalFields
	// proposalDescClientName is the schema descriptor for client_name field.
	proposalDescClientName := proposalFields[1].Descriptor()
	// proposal.ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	proposal.ClientNameValidator = proposalDescClientName.Validators[0].(func(string) error)
	// proposalDescClientNeeds is the schema descriptor for client_needs field.
	proposalDescClientNeeds := proposalFields[2].Descriptor()
	// proposal.DefaultClientNeeds holds the default value on creation for the client_needs field.
	proposal.DefaultClientNeeds = proposalDescClientNeeds.Default.(string)
	// proposalDescProposalType is the schema descriptor for proposal_type field.
	proposalDescProposalType := proposalFields[3].Descriptor()
	// proposal.DefaultProposalType holds the default value on creation for the proposal_type field.
	proposal.DefaultProposalType = proposalDescProposalType.Default.(string)
	// proposalDescStatus is the schema descriptor for status field.
	proposalDescStatus := proposalFields[4].Descriptor()
	// proposal.DefaultStatus holds the default value on creation for the status field.
	proposal.DefaultStatus = proposalDescStatus.Default.(string)
	// proposal.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	proposal.StatusValidator = proposalDescStatus.Validators[0].(func(string) error)
	// proposalDescFailedFrom is the schema descriptor for failed_from field.
	proposalDescFailedFrom := proposalFields[5].Descriptor()
	// proposal.DefaultFailedFrom holds the default value on creation for the failed_from field.
	proposal.DefaultFailedFrom = proposalDescFailedFrom.Default.(string)
	// proposalDescFailureNote is the schema descriptor for failure_note field.
	proposalDescFailureNote := proposalFields[6].Descriptor()
	// proposal.DefaultFailureNote holds the default value on creation for the failure_note field.
	proposal.DefaultFailureNote = proposalDescFailureNote.Default.(string)
	// proposalDescTargetCurrency is the schema descriptor for target_currency field.
	proposalDescTargetCurrency := proposalFields[7].Descriptor()
	// proposal.TargetCurrencyValidator is a validator for the "target_currency" field. It is called by the builders before save.
	proposal.TargetCurrencyValidator = func() func(string) error {
		validators := proposalDescTargetCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(target_currency string) error {
			for _, fn := range fns {
				if err := fn(target_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// proposalDescCreatedAt is the schema descriptor for created_at field.
	proposalDescCreatedAt := proposalFields[9].Descriptor()
	// proposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	proposal.DefaultCreatedAt = proposalDescCreatedAt.Default.(func() time.Time)
	// proposalDescUpdatedAt is the schema descriptor for updated_at field.
	proposalDescUpdatedAt := proposalFields[10].Descriptor()
	// proposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	proposal.DefaultUpdatedAt = proposalDescUpdatedAt.Default.(func() time.Time)
	// proposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	proposal.UpdateDefaultUpdatedAt = proposalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// proposalDescID is the schema descriptor for id field.
	proposalDescID := proposalFields[0].Descriptor()
	// proposal.DefaultID holds the default value on creation for the id field.
	proposal.DefaultID = proposalDescID.Default.(func() uuid.UUID)
}
