package render

import (
	"context"

	"github.com/google/uuid"
)

// PageRenderer produces the proposal document as PDF bytes, either one
// logical page at a time or as the full merged document.
//
// Rendering the comparison page before the intelligent analysis has completed
// yields an "analysis in progress" placeholder; callers that must not serve
// stale placeholders check the analysis job state themselves.
type PageRenderer interface {
	Render(ctx context.Context, proposalID uuid.UUID, page int) ([]byte, error)
	RenderFull(ctx context.Context, proposalID uuid.UUID) ([]byte, error)
}
