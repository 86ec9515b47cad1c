package constants

// ProposalStatus is the canonical lifecycle status for rows in proposals.
type ProposalStatus string

// Stable values (store these exact strings in DB).
const (
	ProposalDraft      ProposalStatus = "DRAFT"      // created, no extraction started
	ProposalExtracting ProposalStatus = "EXTRACTING" // illustrations queued or running
	ProposalReviewing  ProposalStatus = "REVIEWING"  // extraction done, advisor review
	ProposalGenerating ProposalStatus = "GENERATING" // output pages rendering
	ProposalCompleted  ProposalStatus = "COMPLETED"  // terminal success
	ProposalFailed     ProposalStatus = "FAILED"     // recoverable via explicit retry
)

// ProposalStatuses holds the allowed values for the proposal status field.
var ProposalStatuses = []string{
	string(ProposalDraft),
	string(ProposalExtracting),
	string(ProposalReviewing),
	string(ProposalGenerating),
	string(ProposalCompleted),
	string(ProposalFailed),
}

// ExtractionStatus is the per-illustration extraction lifecycle.
type ExtractionStatus string

const (
	ExtractionPending    ExtractionStatus = "PENDING"
	ExtractionProcessing ExtractionStatus = "PROCESSING"
	ExtractionCompleted  ExtractionStatus = "COMPLETED"
	ExtractionFailed     ExtractionStatus = "FAILED"
)

// ExtractionStatuses holds the allowed values for illustration extraction_status.
var ExtractionStatuses = []string{
	string(ExtractionPending),
	string(ExtractionProcessing),
	string(ExtractionCompleted),
	string(ExtractionFailed),
}

// Terminal reports whether the extraction status is final for this attempt.
func (s ExtractionStatus) Terminal() bool {
	return s == ExtractionCompleted || s == ExtractionFailed
}

// ReviewStatus tracks the advisor's review of one illustration.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewInReview ReviewStatus = "IN_REVIEW"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// ReviewStatuses holds the allowed values for illustration review_status.
var ReviewStatuses = []string{
	string(ReviewPending),
	string(ReviewInReview),
	string(ReviewApproved),
	string(ReviewRejected),
}

// AnalysisStatus is the intelligent-analysis job lifecycle.
type AnalysisStatus string

const (
	AnalysisPending   AnalysisStatus = "PENDING"
	AnalysisCompleted AnalysisStatus = "COMPLETED"
	AnalysisFailed    AnalysisStatus = "FAILED"
)

// AnalysisStatuses holds the allowed values for analysis_job status.
var AnalysisStatuses = []string{
	string(AnalysisPending),
	string(AnalysisCompleted),
	string(AnalysisFailed),
}
