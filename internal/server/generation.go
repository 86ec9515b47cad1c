package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proposalspb "github.com/advisorhq/proposal-pipeline/gen/proto/proposals/v1"
	"github.com/advisorhq/proposal-pipeline/internal/utils"
)

func (s *ProposalsService) TriggerGeneration(ctx context.Context, req *proposalspb.TriggerGenerationRequest) (*proposalspb.TriggerGenerationResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	if err := s.svc.TriggerGeneration(ctx, id); err != nil {
		s.logger.Error("trigger generation failed", "proposal_id", id, "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.TriggerGenerationResponse{}, nil
}

func (s *ProposalsService) GetAnalysisStatus(ctx context.Context, req *proposalspb.GetAnalysisStatusRequest) (*proposalspb.GetAnalysisStatusResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	state, err := s.svc.GetAnalysisStatus(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	ages := make([]int32, 0, len(state.SelectedAges))
	for _, a := range state.SelectedAges {
		ages = append(ages, int32(a))
	}
	completedAt := ""
	if state.CompletedAt != nil {
		completedAt = state.CompletedAt.UTC().Format(time.RFC3339)
	}
	return &proposalspb.GetAnalysisStatusResponse{
		Status:       string(state.Status),
		SelectedAges: ages,
		ErrorMessage: state.ErrorMessage,
		CompletedAt:  completedAt,
	}, nil
}

func (s *ProposalsService) GetPage(ctx context.Context, req *proposalspb.GetPageRequest) (*proposalspb.GetPageResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	pdf, err := s.svc.GetPage(ctx, id, int(req.GetPage()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &proposalspb.GetPageResponse{Pdf: pdf}, nil
}

func (s *ProposalsService) DownloadProposal(ctx context.Context, req *proposalspb.DownloadProposalRequest) (*proposalspb.DownloadProposalResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	pdf, filename, err := s.svc.Download(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &proposalspb.DownloadProposalResponse{Pdf: pdf, Filename: filename}, nil
}

func (s *ProposalsService) ExportComparison(ctx context.Context, req *proposalspb.ExportComparisonRequest) (*proposalspb.ExportComparisonResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	xlsx, err := s.exporter.ExportComparisonXLSX(ctx, id)
	if err != nil {
		s.logger.Error("export comparison failed", "proposal_id", id, "error", err)
		return nil, toStatus(err)
	}
	filename := "comparison-" + id.String() + ".xlsx"
	return &proposalspb.ExportComparisonResponse{Xlsx: xlsx, Filename: filename}, nil
}
