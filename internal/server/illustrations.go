package server

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proposalspb "github.com/advisorhq/proposal-pipeline/gen/proto/proposals/v1"
	"github.com/advisorhq/proposal-pipeline/internal/orchestrator"
	"github.com/advisorhq/proposal-pipeline/internal/utils"
)

func (s *ProposalsService) UploadIllustrations(ctx context.Context, req *proposalspb.UploadIllustrationsRequest) (*proposalspb.UploadIllustrationsResponse, error) {
	proposalID, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	files := make([]orchestrator.UploadFile, 0, len(req.GetFiles()))
	for _, f := range req.GetFiles() {
		files = append(files, orchestrator.UploadFile{Filename: f.GetFilename(), Data: f.GetData()})
	}

	rows, err := s.svc.UploadIllustrations(ctx, proposalID, files)
	if err != nil {
		s.logger.Error("upload illustrations failed", "proposal_id", proposalID, "count", len(files), "error", err)
		return nil, toStatus(err)
	}
	out := make([]*proposalspb.Illustration, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBIllustration(row))
	}
	return &proposalspb.UploadIllustrationsResponse{Illustrations: out}, nil
}

func (s *ProposalsService) ListIllustrations(ctx context.Context, req *proposalspb.ListIllustrationsRequest) (*proposalspb.ListIllustrationsResponse, error) {
	proposalID, ok := utils.ParseUUID(req.GetProposalId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	rows, err := s.svc.ListIllustrations(ctx, proposalID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*proposalspb.Illustration, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBIllustration(row))
	}
	return &proposalspb.ListIllustrationsResponse{Illustrations: out}, nil
}

func (s *ProposalsService) DeleteIllustration(ctx context.Context, req *proposalspb.DeleteIllustrationRequest) (*proposalspb.DeleteIllustrationResponse, error) {
	proposalID, illustrationID, err := parseIDPair(req.GetProposalId(), req.GetIllustrationId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteIllustration(ctx, proposalID, illustrationID); err != nil {
		s.logger.Error("delete illustration failed", "illustration_id", illustrationID, "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.DeleteIllustrationResponse{}, nil
}

func (s *ProposalsService) UpdateExtractedData(ctx context.Context, req *proposalspb.UpdateExtractedDataRequest) (*proposalspb.UpdateExtractedDataResponse, error) {
	proposalID, illustrationID, err := parseIDPair(req.GetProposalId(), req.GetIllustrationId())
	if err != nil {
		return nil, err
	}
	payload := req.GetExtractedDataJson()
	if payload == "" {
		return nil, status.Error(codes.InvalidArgument, "extracted_data_json is required")
	}
	if err := s.svc.UpdateExtractedData(ctx, proposalID, illustrationID, json.RawMessage(payload)); err != nil {
		s.logger.Error("update extracted data failed", "illustration_id", illustrationID, "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.UpdateExtractedDataResponse{}, nil
}

func (s *ProposalsService) SelectProduct(ctx context.Context, req *proposalspb.SelectProductRequest) (*proposalspb.SelectProductResponse, error) {
	proposalID, illustrationID, err := parseIDPair(req.GetProposalId(), req.GetIllustrationId())
	if err != nil {
		return nil, err
	}
	productID, ok := utils.ParseUUID(req.GetProductId())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "product_id must be a UUID")
	}
	if err := s.svc.SelectProduct(ctx, proposalID, illustrationID, productID); err != nil {
		s.logger.Error("select product failed", "illustration_id", illustrationID, "product_id", productID, "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.SelectProductResponse{}, nil
}

func (s *ProposalsService) RetryExtraction(ctx context.Context, req *proposalspb.RetryExtractionRequest) (*proposalspb.RetryExtractionResponse, error) {
	proposalID, illustrationID, err := parseIDPair(req.GetProposalId(), req.GetIllustrationId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.RetryExtraction(ctx, proposalID, illustrationID); err != nil {
		s.logger.Error("retry extraction failed", "illustration_id", illustrationID, "error", err)
		return nil, toStatus(err)
	}
	return &proposalspb.RetryExtractionResponse{}, nil
}

func parseIDPair(proposalID, illustrationID string) (uuid.UUID, uuid.UUID, error) {
	p, ok := utils.ParseUUID(proposalID)
	if !ok {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "proposal_id must be a UUID")
	}
	i, ok := utils.ParseUUID(illustrationID)
	if !ok {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "illustration_id must be a UUID")
	}
	return p, i, nil
}
