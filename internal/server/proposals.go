package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proposalspb "github.com/advisorhq/proposal-pipeline/gen/proto/proposals/v1"
	"github.com/advisorhq/proposal-pipeline/internal/orchestrator"
	"github.com/advisorhq/proposal-pipeline/internal/utils"
)

func (s *ProposalsService) CreateProposal(ctx context.Context, req *proposalspb.CreateProposalRequest) (*proposalspb.CreateProposalResponse, error) {
	row, err := s.svc.CreateProposal(ctx, orchestrator.CreateProposalInput{
		ClientName:     req.GetClientName(),
		ClientNeeds:    req.GetClientNeeds(),
		ProposalType:   req.GetProposalType(),
		TargetCurrency: req.GetTargetCurrency(),
	})
	if err != nil {
		s.logger.Error("create proposal failed", "client_name", req.GetClientName(), "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.CreateProposalResponse{Proposal: utils.ToPBProposal(row)}, nil
}

func (s *ProposalsService) GetProposal(ctx context.Context, req *proposalspb.GetProposalRequest) (*proposalspb.GetProposalResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	row, err := s.svc.GetProposal(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &proposalspb.GetProposalResponse{Proposal: utils.ToPBProposal(row)}, nil
}

func (s *ProposalsService) DeleteProposal(ctx context.Context, req *proposalspb.DeleteProposalRequest) (*proposalspb.DeleteProposalResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	if err := s.svc.DeleteProposal(ctx, id); err != nil {
		s.logger.Error("delete proposal failed", "proposal_id", id, "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.DeleteProposalResponse{}, nil
}

func (s *ProposalsService) ResumeProposal(ctx context.Context, req *proposalspb.ResumeProposalRequest) (*proposalspb.ResumeProposalResponse, error) {
	id, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	resumed, err := s.svc.ResumeProposal(ctx, id)
	if err != nil {
		s.logger.Error("resume proposal failed", "proposal_id", id, "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.ResumeProposalResponse{ResumedStatus: string(resumed)}, nil
}
