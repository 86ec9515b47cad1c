package server

import (
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proposalspb "github.com/advisorhq/proposal-pipeline/gen/proto/proposals/v1"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/export"
	"github.com/advisorhq/proposal-pipeline/internal/lifecycle"
	"github.com/advisorhq/proposal-pipeline/internal/orchestrator"
)

// ProposalsService adapts the orchestrator to the gRPC surface. All domain
// logic lives below it; this layer parses ids, maps errors to grpc codes and
// converts rows to protobuf.
type ProposalsService struct {
	proposalspb.UnimplementedProposalsServiceServer
	svc      *orchestrator.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewProposalsService(svc *orchestrator.Service, exporter *export.Service, logger *slog.Logger) *ProposalsService {
	return &ProposalsService{svc: svc, exporter: exporter, logger: logger}
}

// toStatus maps domain errors onto grpc codes. Errors that already carry a
// grpc status pass through untouched.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return err
	}

	var conflict *lifecycle.ConflictError
	switch {
	case common.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &conflict):
		return status.Error(codes.FailedPrecondition, conflict.Error())
	case errors.Is(err, common.ErrConflict), errors.Is(err, common.ErrNotReady):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
