package utils

import (
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/gen/ent"
	proposalspb "github.com/advisorhq/proposal-pipeline/gen/proto/proposals/v1"
)

// ParseUUID parses a request id after a quick empty check, so handlers share
// one error shape for malformed ids.
func ParseUUID(s string) (uuid.UUID, bool) {
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBProposal(p *ent.Proposal) *proposalspb.Proposal {
	return &proposalspb.Proposal{
		Id:             p.ID.String(),
		ClientName:     p.ClientName,
		ClientNeeds:    p.ClientNeeds,
		ProposalType:   p.ProposalType,
		Status:         p.Status,
		TargetCurrency: p.TargetCurrency,
		FailureNote:    p.FailureNote,
		GeneratedAt:    timeOrEmpty(p.GeneratedAt),
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBIllustration(i *ent.Illustration) *proposalspb.Illustration {
	selected := ""
	if i.SelectedInsuranceID != nil {
		selected = i.SelectedInsuranceID.String()
	}
	return &proposalspb.Illustration{
		Id:                   i.ID.String(),
		ProposalId:           i.ProposalID.String(),
		Order:                int32(i.Order),
		OriginalFilename:     i.OriginalFilename,
		FileSizeBytes:        int64(i.FileSizeBytes),
		ExtractionStatus:     i.ExtractionStatus,
		ExtractionConfidence: i.ExtractionConfidence,
		ReviewStatus:         i.ReviewStatus,
		ProcessingNotes:      i.ProcessingNotes,
		ExtractedDataJson:    string(i.ExtractedData),
		DatabaseMatchJson:    string(i.DatabaseMatch),
		SelectedInsuranceId:  selected,
		CreatedAt:            i.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            i.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
