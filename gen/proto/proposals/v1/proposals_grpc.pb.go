// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proposals/v1/proposals.proto

package proposalsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ProposalsService_CreateProposal_FullMethodName      = "/proposals.v1.ProposalsService/CreateProposal"
	ProposalsService_GetProposal_FullMethodName         = "/proposals.v1.ProposalsService/GetProposal"
	ProposalsService_DeleteProposal_FullMethodName      = "/proposals.v1.ProposalsService/DeleteProposal"
	ProposalsService_UploadIllustrations_FullMethodName = "/proposals.v1.ProposalsService/UploadIllustrations"
	ProposalsService_ListIllustrations_FullMethodName   = "/proposals.v1.ProposalsService/ListIllustrations"
	ProposalsService_DeleteIllustration_FullMethodName  = "/proposals.v1.ProposalsService/DeleteIllustration"
	ProposalsService_UpdateExtractedData_FullMethodName = "/proposals.v1.ProposalsService/UpdateExtractedData"
	ProposalsService_SelectProduct_FullMethodName       = "/proposals.v1.ProposalsService/SelectProduct"
	ProposalsService_RetryExtraction_FullMethodName     = "/proposals.v1.ProposalsService/RetryExtraction"
	ProposalsService_ResumeProposal_FullMethodName      = "/proposals.v1.ProposalsService/ResumeProposal"
	ProposalsService_TriggerGeneration_FullMethodName   = "/proposals.v1.ProposalsService/TriggerGeneration"
	ProposalsService_GetAnalysisStatus_FullMethodName   = "/proposals.v1.ProposalsService/GetAnalysisStatus"
	ProposalsService_GetPage_FullMethodName             = "/proposals.v1.ProposalsService/GetPage"
	ProposalsService_DownloadProposal_FullMethodName    = "/proposals.v1.ProposalsService/DownloadProposal"
	ProposalsService_ExportComparison_FullMethodName    = "/proposals.v1.ProposalsService/ExportComparison"
)

// ProposalsServiceClient is the client API for ProposalsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProposalsService drives the illustration pipeline: proposal lifecycle,
// uploads, review edits, generation and document retrieval.
type ProposalsServiceClient interface {
	CreateProposal(ctx context.Context, in *CreateProposalRequest, opts ...grpc.CallOption) (*CreateProposalResponse, error)
	GetProposal(ctx context.Context, in *GetProposalRequest, opts ...grpc.CallOption) (*GetProposalResponse, error)
	DeleteProposal(ctx context.Context, in *DeleteProposalRequest, opts ...grpc.CallOption) (*DeleteProposalResponse, error)
	UploadIllustrations(ctx context.Context, in *UploadIllustrationsRequest, opts ...grpc.CallOption) (*UploadIllustrationsResponse, error)
	ListIllustrations(ctx context.Context, in *ListIllustrationsRequest, opts ...grpc.CallOption) (*ListIllustrationsResponse, error)
	DeleteIllustration(ctx context.Context, in *DeleteIllustrationRequest, opts ...grpc.CallOption) (*DeleteIllustrationResponse, error)
	UpdateExtractedData(ctx context.Context, in *UpdateExtractedDataRequest, opts ...grpc.CallOption) (*UpdateExtractedDataResponse, error)
	SelectProduct(ctx context.Context, in *SelectProductRequest, opts ...grpc.CallOption) (*SelectProductResponse, error)
	RetryExtraction(ctx context.Context, in *RetryExtractionRequest, opts ...grpc.CallOption) (*RetryExtractionResponse, error)
	ResumeProposal(ctx context.Context, in *ResumeProposalRequest, opts ...grpc.CallOption) (*ResumeProposalResponse, error)
	TriggerGeneration(ctx context.Context, in *TriggerGenerationRequest, opts ...grpc.CallOption) (*TriggerGenerationResponse, error)
	GetAnalysisStatus(ctx context.Context, in *GetAnalysisStatusRequest, opts ...grpc.CallOption) (*GetAnalysisStatusResponse, error)
	GetPage(ctx context.Context, in *GetPageRequest, opts ...grpc.CallOption) (*GetPageResponse, error)
	DownloadProposal(ctx context.Context, in *DownloadProposalRequest, opts ...grpc.CallOption) (*DownloadProposalResponse, error)
	ExportComparison(ctx context.Context, in *ExportComparisonRequest, opts ...grpc.CallOption) (*ExportComparisonResponse, error)
}

type proposalsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProposalsServiceClient(cc grpc.ClientConnInterface) ProposalsServiceClient {
	return &proposalsServiceClient{cc}
}

func (c *proposalsServiceClient) CreateProposal(ctx context.Context, in *CreateProposalRequest, opts ...grpc.CallOption) (*CreateProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProposalResponse)
	err := c.cc.Invoke(ctx, ProposalsService_CreateProposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) GetProposal(ctx context.Context, in *GetProposalRequest, opts ...grpc.CallOption) (*GetProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetProposalResponse)
	err := c.cc.Invoke(ctx, ProposalsService_GetProposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) DeleteProposal(ctx context.Context, in *DeleteProposalRequest, opts ...grpc.CallOption) (*DeleteProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteProposalResponse)
	err := c.cc.Invoke(ctx, ProposalsService_DeleteProposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) UploadIllustrations(ctx context.Context, in *UploadIllustrationsRequest, opts ...grpc.CallOption) (*UploadIllustrationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadIllustrationsResponse)
	err := c.cc.Invoke(ctx, ProposalsService_UploadIllustrations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) ListIllustrations(ctx context.Context, in *ListIllustrationsRequest, opts ...grpc.CallOption) (*ListIllustrationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListIllustrationsResponse)
	err := c.cc.Invoke(ctx, ProposalsService_ListIllustrations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) DeleteIllustration(ctx context.Context, in *DeleteIllustrationRequest, opts ...grpc.CallOption) (*DeleteIllustrationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteIllustrationResponse)
	err := c.cc.Invoke(ctx, ProposalsService_DeleteIllustration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) UpdateExtractedData(ctx context.Context, in *UpdateExtractedDataRequest, opts ...grpc.CallOption) (*UpdateExtractedDataResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateExtractedDataResponse)
	err := c.cc.Invoke(ctx, ProposalsService_UpdateExtractedData_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) SelectProduct(ctx context.Context, in *SelectProductRequest, opts ...grpc.CallOption) (*SelectProductResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SelectProductResponse)
	err := c.cc.Invoke(ctx, ProposalsService_SelectProduct_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) RetryExtraction(ctx context.Context, in *RetryExtractionRequest, opts ...grpc.CallOption) (*RetryExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetryExtractionResponse)
	err := c.cc.Invoke(ctx, ProposalsService_RetryExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) ResumeProposal(ctx context.Context, in *ResumeProposalRequest, opts ...grpc.CallOption) (*ResumeProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeProposalResponse)
	err := c.cc.Invoke(ctx, ProposalsService_ResumeProposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) TriggerGeneration(ctx context.Context, in *TriggerGenerationRequest, opts ...grpc.CallOption) (*TriggerGenerationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TriggerGenerationResponse)
	err := c.cc.Invoke(ctx, ProposalsService_TriggerGeneration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) GetAnalysisStatus(ctx context.Context, in *GetAnalysisStatusRequest, opts ...grpc.CallOption) (*GetAnalysisStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAnalysisStatusResponse)
	err := c.cc.Invoke(ctx, ProposalsService_GetAnalysisStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) GetPage(ctx context.Context, in *GetPageRequest, opts ...grpc.CallOption) (*GetPageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPageResponse)
	err := c.cc.Invoke(ctx, ProposalsService_GetPage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) DownloadProposal(ctx context.Context, in *DownloadProposalRequest, opts ...grpc.CallOption) (*DownloadProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DownloadProposalResponse)
	err := c.cc.Invoke(ctx, ProposalsService_DownloadProposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *proposalsServiceClient) ExportComparison(ctx context.Context, in *ExportComparisonRequest, opts ...grpc.CallOption) (*ExportComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportComparisonResponse)
	err := c.cc.Invoke(ctx, ProposalsService_ExportComparison_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProposalsServiceServer is the server API for ProposalsService service.
// All implementations must embed UnimplementedProposalsServiceServer
// for forward compatibility.
//
// ProposalsService drives the illustration pipeline: proposal lifecycle,
// uploads, review edits, generation and document retrieval.
type ProposalsServiceServer interface {
	CreateProposal(context.Context, *CreateProposalRequest) (*CreateProposalResponse, error)
	GetProposal(context.Context, *GetProposalRequest) (*GetProposalResponse, error)
	DeleteProposal(context.Context, *DeleteProposalRequest) (*DeleteProposalResponse, error)
	UploadIllustrations(context.Context, *UploadIllustrationsRequest) (*UploadIllustrationsResponse, error)
	ListIllustrations(context.Context, *ListIllustrationsRequest) (*ListIllustrationsResponse, error)
	DeleteIllustration(context.Context, *DeleteIllustrationRequest) (*DeleteIllustrationResponse, error)
	UpdateExtractedData(context.Context, *UpdateExtractedDataRequest) (*UpdateExtractedDataResponse, error)
	SelectProduct(context.Context, *SelectProductRequest) (*SelectProductResponse, error)
	RetryExtraction(context.Context, *RetryExtractionRequest) (*RetryExtractionResponse, error)
	ResumeProposal(context.Context, *ResumeProposalRequest) (*ResumeProposalResponse, error)
	TriggerGeneration(context.Context, *TriggerGenerationRequest) (*TriggerGenerationResponse, error)
	GetAnalysisStatus(context.Context, *GetAnalysisStatusRequest) (*GetAnalysisStatusResponse, error)
	GetPage(context.Context, *GetPageRequest) (*GetPageResponse, error)
	DownloadProposal(context.Context, *DownloadProposalRequest) (*DownloadProposalResponse, error)
	ExportComparison(context.Context, *ExportComparisonRequest) (*ExportComparisonResponse, error)
	mustEmbedUnimplementedProposalsServiceServer()
}

// UnimplementedProposalsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProposalsServiceServer struct{}

func (UnimplementedProposalsServiceServer) CreateProposal(context.Context, *CreateProposalRequest) (*CreateProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProposal not implemented")
}
func (UnimplementedProposalsServiceServer) GetProposal(context.Context, *GetProposalRequest) (*GetProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProposal not implemented")
}
func (UnimplementedProposalsServiceServer) DeleteProposal(context.Context, *DeleteProposalRequest) (*DeleteProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteProposal not implemented")
}
func (UnimplementedProposalsServiceServer) UploadIllustrations(context.Context, *UploadIllustrationsRequest) (*UploadIllustrationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadIllustrations not implemented")
}
func (UnimplementedProposalsServiceServer) ListIllustrations(context.Context, *ListIllustrationsRequest) (*ListIllustrationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListIllustrations not implemented")
}
func (UnimplementedProposalsServiceServer) DeleteIllustration(context.Context, *DeleteIllustrationRequest) (*DeleteIllustrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteIllustration not implemented")
}
func (UnimplementedProposalsServiceServer) UpdateExtractedData(context.Context, *UpdateExtractedDataRequest) (*UpdateExtractedDataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateExtractedData not implemented")
}
func (UnimplementedProposalsServiceServer) SelectProduct(context.Context, *SelectProductRequest) (*SelectProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectProduct not implemented")
}
func (UnimplementedProposalsServiceServer) RetryExtraction(context.Context, *RetryExtractionRequest) (*RetryExtractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RetryExtraction not implemented")
}
func (UnimplementedProposalsServiceServer) ResumeProposal(context.Context, *ResumeProposalRequest) (*ResumeProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeProposal not implemented")
}
func (UnimplementedProposalsServiceServer) TriggerGeneration(context.Context, *TriggerGenerationRequest) (*TriggerGenerationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TriggerGeneration not implemented")
}
func (UnimplementedProposalsServiceServer) GetAnalysisStatus(context.Context, *GetAnalysisStatusRequest) (*GetAnalysisStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAnalysisStatus not implemented")
}
func (UnimplementedProposalsServiceServer) GetPage(context.Context, *GetPageRequest) (*GetPageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPage not implemented")
}
func (UnimplementedProposalsServiceServer) DownloadProposal(context.Context, *DownloadProposalRequest) (*DownloadProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DownloadProposal not implemented")
}
func (UnimplementedProposalsServiceServer) ExportComparison(context.Context, *ExportComparisonRequest) (*ExportComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportComparison not implemented")
}
func (UnimplementedProposalsServiceServer) mustEmbedUnimplementedProposalsServiceServer() {}
func (UnimplementedProposalsServiceServer) testEmbeddedByValue()                          {}

// UnsafeProposalsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProposalsServiceServer will
// result in compilation errors.
type UnsafeProposalsServiceServer interface {
	mustEmbedUnimplementedProposalsServiceServer()
}

func RegisterProposalsServiceServer(s grpc.ServiceRegistrar, srv ProposalsServiceServer) {
	// If the following call pancis, it indicates UnimplementedProposalsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProposalsService_ServiceDesc, srv)
}

func _ProposalsService_CreateProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).CreateProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_CreateProposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).CreateProposal(ctx, req.(*CreateProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_GetProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).GetProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_GetProposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).GetProposal(ctx, req.(*GetProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_DeleteProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).DeleteProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_DeleteProposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).DeleteProposal(ctx, req.(*DeleteProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_UploadIllustrations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadIllustrationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).UploadIllustrations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_UploadIllustrations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).UploadIllustrations(ctx, req.(*UploadIllustrationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_ListIllustrations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListIllustrationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).ListIllustrations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_ListIllustrations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).ListIllustrations(ctx, req.(*ListIllustrationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_DeleteIllustration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteIllustrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).DeleteIllustration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_DeleteIllustration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).DeleteIllustration(ctx, req.(*DeleteIllustrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_UpdateExtractedData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateExtractedDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).UpdateExtractedData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_UpdateExtractedData_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).UpdateExtractedData(ctx, req.(*UpdateExtractedDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_SelectProduct_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).SelectProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_SelectProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).SelectProduct(ctx, req.(*SelectProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_RetryExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).RetryExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_RetryExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).RetryExtraction(ctx, req.(*RetryExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_ResumeProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).ResumeProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_ResumeProposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).ResumeProposal(ctx, req.(*ResumeProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_TriggerGeneration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TriggerGenerationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).TriggerGeneration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_TriggerGeneration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).TriggerGeneration(ctx, req.(*TriggerGenerationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_GetAnalysisStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAnalysisStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).GetAnalysisStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_GetAnalysisStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).GetAnalysisStatus(ctx, req.(*GetAnalysisStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_GetPage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).GetPage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_GetPage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).GetPage(ctx, req.(*GetPageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_DownloadProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DownloadProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).DownloadProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_DownloadProposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).DownloadProposal(ctx, req.(*DownloadProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProposalsService_ExportComparison_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportComparisonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProposalsServiceServer).ExportComparison(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProposalsService_ExportComparison_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProposalsServiceServer).ExportComparison(ctx, req.(*ExportComparisonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProposalsService_ServiceDesc is the grpc.ServiceDesc for ProposalsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProposalsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "proposals.v1.ProposalsService",
	HandlerType: (*ProposalsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProposal",
			Handler:    _ProposalsService_CreateProposal_Handler,
		},
		{
			MethodName: "GetProposal",
			Handler:    _ProposalsService_GetProposal_Handler,
		},
		{
			MethodName: "DeleteProposal",
			Handler:    _ProposalsService_DeleteProposal_Handler,
		},
		{
			MethodName: "UploadIllustrations",
			Handler:    _ProposalsService_UploadIllustrations_Handler,
		},
		{
			MethodName: "ListIllustrations",
			Handler:    _ProposalsService_ListIllustrations_Handler,
		},
		{
			MethodName: "DeleteIllustration",
			Handler:    _ProposalsService_DeleteIllustration_Handler,
		},
		{
			MethodName: "UpdateExtractedData",
			Handler:    _ProposalsService_UpdateExtractedData_Handler,
		},
		{
			MethodName: "SelectProduct",
			Handler:    _ProposalsService_SelectProduct_Handler,
		},
		{
			MethodName: "RetryExtraction",
			Handler:    _ProposalsService_RetryExtraction_Handler,
		},
		{
			MethodName: "ResumeProposal",
			Handler:    _ProposalsService_ResumeProposal_Handler,
		},
		{
			MethodName: "TriggerGeneration",
			Handler:    _ProposalsService_TriggerGeneration_Handler,
		},
		{
			MethodName: "GetAnalysisStatus",
			Handler:    _ProposalsService_GetAnalysisStatus_Handler,
		},
		{
			MethodName: "GetPage",
			Handler:    _ProposalsService_GetPage_Handler,
		},
		{
			MethodName: "DownloadProposal",
			Handler:    _ProposalsService_DownloadProposal_Handler,
		},
		{
			MethodName: "ExportComparison",
			Handler:    _ProposalsService_ExportComparison_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proposals/v1/proposals.proto",
}
