// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proposals/v1/proposals.proto

package proposalsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Proposal struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClientName     string                 `protobuf:"bytes,2,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientNeeds    string                 `protobuf:"bytes,3,opt,name=client_needs,json=clientNeeds,proto3" json:"client_needs,omitempty"`
	ProposalType   string                 `protobuf:"bytes,4,opt,name=proposal_type,json=proposalType,proto3" json:"proposal_type,omitempty"`
	Status         string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	TargetCurrency string                 `protobuf:"bytes,6,opt,name=target_currency,json=targetCurrency,proto3" json:"target_currency,omitempty"`
	FailureNote    string                 `protobuf:"bytes,7,opt,name=failure_note,json=failureNote,proto3" json:"failure_note,omitempty"`
	GeneratedAt    string                 `protobuf:"bytes,8,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"` // RFC3339, empty until generation finishes
	CreatedAt      string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Proposal) Reset() {
	*x = Proposal{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Proposal) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Proposal) ProtoMessage() {}

func (x *Proposal) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Proposal.ProtoReflect.Descriptor instead.
func (*Proposal) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{0}
}

func (x *Proposal) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Proposal) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *Proposal) GetClientNeeds() string {
	if x != nil {
		return x.ClientNeeds
	}
	return ""
}

func (x *Proposal) GetProposalType() string {
	if x != nil {
		return x.ProposalType
	}
	return ""
}

func (x *Proposal) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Proposal) GetTargetCurrency() string {
	if x != nil {
		return x.TargetCurrency
	}
	return ""
}

func (x *Proposal) GetFailureNote() string {
	if x != nil {
		return x.FailureNote
	}
	return ""
}

func (x *Proposal) GetGeneratedAt() string {
	if x != nil {
		return x.GeneratedAt
	}
	return ""
}

func (x *Proposal) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Proposal) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Illustration struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProposalId           string                 `protobuf:"bytes,2,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	Order                int32                  `protobuf:"varint,3,opt,name=order,proto3" json:"order,omitempty"`
	OriginalFilename     string                 `protobuf:"bytes,4,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	FileSizeBytes        int64                  `protobuf:"varint,5,opt,name=file_size_bytes,json=fileSizeBytes,proto3" json:"file_size_bytes,omitempty"`
	ExtractionStatus     string                 `protobuf:"bytes,6,opt,name=extraction_status,json=extractionStatus,proto3" json:"extraction_status,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,7,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	ReviewStatus         string                 `protobuf:"bytes,8,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	ProcessingNotes      string                 `protobuf:"bytes,9,opt,name=processing_notes,json=processingNotes,proto3" json:"processing_notes,omitempty"`
	ExtractedDataJson    string                 `protobuf:"bytes,10,opt,name=extracted_data_json,json=extractedDataJson,proto3" json:"extracted_data_json,omitempty"`       // structured extraction payload
	DatabaseMatchJson    string                 `protobuf:"bytes,11,opt,name=database_match_json,json=databaseMatchJson,proto3" json:"database_match_json,omitempty"`       // catalog match result
	SelectedInsuranceId  string                 `protobuf:"bytes,12,opt,name=selected_insurance_id,json=selectedInsuranceId,proto3" json:"selected_insurance_id,omitempty"` // empty until resolved
	CreatedAt            string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt            string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Illustration) Reset() {
	*x = Illustration{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Illustration) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Illustration) ProtoMessage() {}

func (x *Illustration) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Illustration.ProtoReflect.Descriptor instead.
func (*Illustration) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{1}
}

func (x *Illustration) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Illustration) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

func (x *Illustration) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

func (x *Illustration) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Illustration) GetFileSizeBytes() int64 {
	if x != nil {
		return x.FileSizeBytes
	}
	return 0
}

func (x *Illustration) GetExtractionStatus() string {
	if x != nil {
		return x.ExtractionStatus
	}
	return ""
}

func (x *Illustration) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *Illustration) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *Illustration) GetProcessingNotes() string {
	if x != nil {
		return x.ProcessingNotes
	}
	return ""
}

func (x *Illustration) GetExtractedDataJson() string {
	if x != nil {
		return x.ExtractedDataJson
	}
	return ""
}

func (x *Illustration) GetDatabaseMatchJson() string {
	if x != nil {
		return x.DatabaseMatchJson
	}
	return ""
}

func (x *Illustration) GetSelectedInsuranceId() string {
	if x != nil {
		return x.SelectedInsuranceId
	}
	return ""
}

func (x *Illustration) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Illustration) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProposalRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ClientName     string                 `protobuf:"bytes,1,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientNeeds    string                 `protobuf:"bytes,2,opt,name=client_needs,json=clientNeeds,proto3" json:"client_needs,omitempty"`
	ProposalType   string                 `protobuf:"bytes,3,opt,name=proposal_type,json=proposalType,proto3" json:"proposal_type,omitempty"`
	TargetCurrency string                 `protobuf:"bytes,4,opt,name=target_currency,json=targetCurrency,proto3" json:"target_currency,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateProposalRequest) Reset() {
	*x = CreateProposalRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProposalRequest) ProtoMessage() {}

func (x *CreateProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProposalRequest.ProtoReflect.Descriptor instead.
func (*CreateProposalRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProposalRequest) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *CreateProposalRequest) GetClientNeeds() string {
	if x != nil {
		return x.ClientNeeds
	}
	return ""
}

func (x *CreateProposalRequest) GetProposalType() string {
	if x != nil {
		return x.ProposalType
	}
	return ""
}

func (x *CreateProposalRequest) GetTargetCurrency() string {
	if x != nil {
		return x.TargetCurrency
	}
	return ""
}

type CreateProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Proposal      *Proposal              `protobuf:"bytes,1,opt,name=proposal,proto3" json:"proposal,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProposalResponse) Reset() {
	*x = CreateProposalResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProposalResponse) ProtoMessage() {}

func (x *CreateProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProposalResponse.ProtoReflect.Descriptor instead.
func (*CreateProposalResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{3}
}

func (x *CreateProposalResponse) GetProposal() *Proposal {
	if x != nil {
		return x.Proposal
	}
	return nil
}

type GetProposalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProposalRequest) Reset() {
	*x = GetProposalRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProposalRequest) ProtoMessage() {}

func (x *GetProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProposalRequest.ProtoReflect.Descriptor instead.
func (*GetProposalRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{4}
}

func (x *GetProposalRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type GetProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Proposal      *Proposal              `protobuf:"bytes,1,opt,name=proposal,proto3" json:"proposal,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProposalResponse) Reset() {
	*x = GetProposalResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProposalResponse) ProtoMessage() {}

func (x *GetProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProposalResponse.ProtoReflect.Descriptor instead.
func (*GetProposalResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{5}
}

func (x *GetProposalResponse) GetProposal() *Proposal {
	if x != nil {
		return x.Proposal
	}
	return nil
}

type DeleteProposalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProposalRequest) Reset() {
	*x = DeleteProposalRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProposalRequest) ProtoMessage() {}

func (x *DeleteProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProposalRequest.ProtoReflect.Descriptor instead.
func (*DeleteProposalRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteProposalRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type DeleteProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProposalResponse) Reset() {
	*x = DeleteProposalResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProposalResponse) ProtoMessage() {}

func (x *DeleteProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProposalResponse.ProtoReflect.Descriptor instead.
func (*DeleteProposalResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{7}
}

type UploadFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Data          []byte                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadFile) Reset() {
	*x = UploadFile{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFile) ProtoMessage() {}

func (x *UploadFile) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFile.ProtoReflect.Descriptor instead.
func (*UploadFile) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{8}
}

func (x *UploadFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadFile) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type UploadIllustrationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	Files         []*UploadFile          `protobuf:"bytes,2,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadIllustrationsRequest) Reset() {
	*x = UploadIllustrationsRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadIllustrationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadIllustrationsRequest) ProtoMessage() {}

func (x *UploadIllustrationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadIllustrationsRequest.ProtoReflect.Descriptor instead.
func (*UploadIllustrationsRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{9}
}

func (x *UploadIllustrationsRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

func (x *UploadIllustrationsRequest) GetFiles() []*UploadFile {
	if x != nil {
		return x.Files
	}
	return nil
}

type UploadIllustrationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Illustrations []*Illustration        `protobuf:"bytes,1,rep,name=illustrations,proto3" json:"illustrations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadIllustrationsResponse) Reset() {
	*x = UploadIllustrationsResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadIllustrationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadIllustrationsResponse) ProtoMessage() {}

func (x *UploadIllustrationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadIllustrationsResponse.ProtoReflect.Descriptor instead.
func (*UploadIllustrationsResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{10}
}

func (x *UploadIllustrationsResponse) GetIllustrations() []*Illustration {
	if x != nil {
		return x.Illustrations
	}
	return nil
}

type ListIllustrationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListIllustrationsRequest) Reset() {
	*x = ListIllustrationsRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListIllustrationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListIllustrationsRequest) ProtoMessage() {}

func (x *ListIllustrationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListIllustrationsRequest.ProtoReflect.Descriptor instead.
func (*ListIllustrationsRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{11}
}

func (x *ListIllustrationsRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type ListIllustrationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Illustrations []*Illustration        `protobuf:"bytes,1,rep,name=illustrations,proto3" json:"illustrations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListIllustrationsResponse) Reset() {
	*x = ListIllustrationsResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListIllustrationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListIllustrationsResponse) ProtoMessage() {}

func (x *ListIllustrationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListIllustrationsResponse.ProtoReflect.Descriptor instead.
func (*ListIllustrationsResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{12}
}

func (x *ListIllustrationsResponse) GetIllustrations() []*Illustration {
	if x != nil {
		return x.Illustrations
	}
	return nil
}

type DeleteIllustrationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ProposalId     string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	IllustrationId string                 `protobuf:"bytes,2,opt,name=illustration_id,json=illustrationId,proto3" json:"illustration_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DeleteIllustrationRequest) Reset() {
	*x = DeleteIllustrationRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteIllustrationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteIllustrationRequest) ProtoMessage() {}

func (x *DeleteIllustrationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteIllustrationRequest.ProtoReflect.Descriptor instead.
func (*DeleteIllustrationRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteIllustrationRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

func (x *DeleteIllustrationRequest) GetIllustrationId() string {
	if x != nil {
		return x.IllustrationId
	}
	return ""
}

type DeleteIllustrationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteIllustrationResponse) Reset() {
	*x = DeleteIllustrationResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteIllustrationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteIllustrationResponse) ProtoMessage() {}

func (x *DeleteIllustrationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteIllustrationResponse.ProtoReflect.Descriptor instead.
func (*DeleteIllustrationResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{14}
}

type UpdateExtractedDataRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ProposalId        string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	IllustrationId    string                 `protobuf:"bytes,2,opt,name=illustration_id,json=illustrationId,proto3" json:"illustration_id,omitempty"`
	ExtractedDataJson string                 `protobuf:"bytes,3,opt,name=extracted_data_json,json=extractedDataJson,proto3" json:"extracted_data_json,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UpdateExtractedDataRequest) Reset() {
	*x = UpdateExtractedDataRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateExtractedDataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateExtractedDataRequest) ProtoMessage() {}

func (x *UpdateExtractedDataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateExtractedDataRequest.ProtoReflect.Descriptor instead.
func (*UpdateExtractedDataRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{15}
}

func (x *UpdateExtractedDataRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

func (x *UpdateExtractedDataRequest) GetIllustrationId() string {
	if x != nil {
		return x.IllustrationId
	}
	return ""
}

func (x *UpdateExtractedDataRequest) GetExtractedDataJson() string {
	if x != nil {
		return x.ExtractedDataJson
	}
	return ""
}

type UpdateExtractedDataResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateExtractedDataResponse) Reset() {
	*x = UpdateExtractedDataResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateExtractedDataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateExtractedDataResponse) ProtoMessage() {}

func (x *UpdateExtractedDataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateExtractedDataResponse.ProtoReflect.Descriptor instead.
func (*UpdateExtractedDataResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{16}
}

type SelectProductRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ProposalId     string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	IllustrationId string                 `protobuf:"bytes,2,opt,name=illustration_id,json=illustrationId,proto3" json:"illustration_id,omitempty"`
	ProductId      string                 `protobuf:"bytes,3,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SelectProductRequest) Reset() {
	*x = SelectProductRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectProductRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectProductRequest) ProtoMessage() {}

func (x *SelectProductRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectProductRequest.ProtoReflect.Descriptor instead.
func (*SelectProductRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{17}
}

func (x *SelectProductRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

func (x *SelectProductRequest) GetIllustrationId() string {
	if x != nil {
		return x.IllustrationId
	}
	return ""
}

func (x *SelectProductRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type SelectProductResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectProductResponse) Reset() {
	*x = SelectProductResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectProductResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectProductResponse) ProtoMessage() {}

func (x *SelectProductResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectProductResponse.ProtoReflect.Descriptor instead.
func (*SelectProductResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{18}
}

type RetryExtractionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ProposalId     string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	IllustrationId string                 `protobuf:"bytes,2,opt,name=illustration_id,json=illustrationId,proto3" json:"illustration_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RetryExtractionRequest) Reset() {
	*x = RetryExtractionRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryExtractionRequest) ProtoMessage() {}

func (x *RetryExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryExtractionRequest.ProtoReflect.Descriptor instead.
func (*RetryExtractionRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{19}
}

func (x *RetryExtractionRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

func (x *RetryExtractionRequest) GetIllustrationId() string {
	if x != nil {
		return x.IllustrationId
	}
	return ""
}

type RetryExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryExtractionResponse) Reset() {
	*x = RetryExtractionResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryExtractionResponse) ProtoMessage() {}

func (x *RetryExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryExtractionResponse.ProtoReflect.Descriptor instead.
func (*RetryExtractionResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{20}
}

type ResumeProposalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeProposalRequest) Reset() {
	*x = ResumeProposalRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeProposalRequest) ProtoMessage() {}

func (x *ResumeProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeProposalRequest.ProtoReflect.Descriptor instead.
func (*ResumeProposalRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{21}
}

func (x *ResumeProposalRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type ResumeProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ResumedStatus string                 `protobuf:"bytes,1,opt,name=resumed_status,json=resumedStatus,proto3" json:"resumed_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeProposalResponse) Reset() {
	*x = ResumeProposalResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeProposalResponse) ProtoMessage() {}

func (x *ResumeProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeProposalResponse.ProtoReflect.Descriptor instead.
func (*ResumeProposalResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{22}
}

func (x *ResumeProposalResponse) GetResumedStatus() string {
	if x != nil {
		return x.ResumedStatus
	}
	return ""
}

type TriggerGenerationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerGenerationRequest) Reset() {
	*x = TriggerGenerationRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerGenerationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerGenerationRequest) ProtoMessage() {}

func (x *TriggerGenerationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerGenerationRequest.ProtoReflect.Descriptor instead.
func (*TriggerGenerationRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{23}
}

func (x *TriggerGenerationRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type TriggerGenerationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerGenerationResponse) Reset() {
	*x = TriggerGenerationResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerGenerationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerGenerationResponse) ProtoMessage() {}

func (x *TriggerGenerationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerGenerationResponse.ProtoReflect.Descriptor instead.
func (*TriggerGenerationResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{24}
}

type GetAnalysisStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisStatusRequest) Reset() {
	*x = GetAnalysisStatusRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisStatusRequest) ProtoMessage() {}

func (x *GetAnalysisStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisStatusRequest.ProtoReflect.Descriptor instead.
func (*GetAnalysisStatusRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{25}
}

func (x *GetAnalysisStatusRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type GetAnalysisStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	SelectedAges  []int32                `protobuf:"varint,2,rep,packed,name=selected_ages,json=selectedAges,proto3" json:"selected_ages,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,3,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CompletedAt   string                 `protobuf:"bytes,4,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"` // RFC3339, empty while pending
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisStatusResponse) Reset() {
	*x = GetAnalysisStatusResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisStatusResponse) ProtoMessage() {}

func (x *GetAnalysisStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisStatusResponse.ProtoReflect.Descriptor instead.
func (*GetAnalysisStatusResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{26}
}

func (x *GetAnalysisStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetAnalysisStatusResponse) GetSelectedAges() []int32 {
	if x != nil {
		return x.SelectedAges
	}
	return nil
}

func (x *GetAnalysisStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetAnalysisStatusResponse) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type GetPageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPageRequest) Reset() {
	*x = GetPageRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPageRequest) ProtoMessage() {}

func (x *GetPageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPageRequest.ProtoReflect.Descriptor instead.
func (*GetPageRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{27}
}

func (x *GetPageRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

func (x *GetPageRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

type GetPageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pdf           []byte                 `protobuf:"bytes,1,opt,name=pdf,proto3" json:"pdf,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPageResponse) Reset() {
	*x = GetPageResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPageResponse) ProtoMessage() {}

func (x *GetPageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPageResponse.ProtoReflect.Descriptor instead.
func (*GetPageResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{28}
}

func (x *GetPageResponse) GetPdf() []byte {
	if x != nil {
		return x.Pdf
	}
	return nil
}

type DownloadProposalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadProposalRequest) Reset() {
	*x = DownloadProposalRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadProposalRequest) ProtoMessage() {}

func (x *DownloadProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadProposalRequest.ProtoReflect.Descriptor instead.
func (*DownloadProposalRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{29}
}

func (x *DownloadProposalRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type DownloadProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pdf           []byte                 `protobuf:"bytes,1,opt,name=pdf,proto3" json:"pdf,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadProposalResponse) Reset() {
	*x = DownloadProposalResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadProposalResponse) ProtoMessage() {}

func (x *DownloadProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadProposalResponse.ProtoReflect.Descriptor instead.
func (*DownloadProposalResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{30}
}

func (x *DownloadProposalResponse) GetPdf() []byte {
	if x != nil {
		return x.Pdf
	}
	return nil
}

func (x *DownloadProposalResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ExportComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportComparisonRequest) Reset() {
	*x = ExportComparisonRequest{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportComparisonRequest) ProtoMessage() {}

func (x *ExportComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportComparisonRequest.ProtoReflect.Descriptor instead.
func (*ExportComparisonRequest) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{31}
}

func (x *ExportComparisonRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type ExportComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportComparisonResponse) Reset() {
	*x = ExportComparisonResponse{}
	mi := &file_proposals_v1_proposals_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportComparisonResponse) ProtoMessage() {}

func (x *ExportComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proposals_v1_proposals_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportComparisonResponse.ProtoReflect.Descriptor instead.
func (*ExportComparisonResponse) Descriptor() ([]byte, []int) {
	return file_proposals_v1_proposals_proto_rawDescGZIP(), []int{32}
}

func (x *ExportComparisonResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportComparisonResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_proposals_v1_proposals_proto protoreflect.FileDescriptor

const file_proposals_v1_proposals_proto_rawDesc = "" +
	"\n" +
	"\x1cproposals/v1/proposals.proto\x12\fproposals.v1\"\xc8\x02\n" +
	"\bProposal\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vclient_name\x18\x02 \x01(\tR\n" +
	"clientName\x12!\n" +
	"\fclient_needs\x18\x03 \x01(\tR\vclientNeeds\x12#\n" +
	"\rproposal_type\x18\x04 \x01(\tR\fproposalType\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12'\n" +
	"\x0ftarget_currency\x18\x06 \x01(\tR\x0etargetCurrency\x12!\n" +
	"\ffailure_note\x18\a \x01(\tR\vfailureNote\x12!\n" +
	"\fgenerated_at\x18\b \x01(\tR\vgeneratedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\xae\x04\n" +
	"\fIllustration\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vproposal_id\x18\x02 \x01(\tR\n" +
	"proposalId\x12\x14\n" +
	"\x05order\x18\x03 \x01(\x05R\x05order\x12+\n" +
	"\x11original_filename\x18\x04 \x01(\tR\x10originalFilename\x12&\n" +
	"\x0ffile_size_bytes\x18\x05 \x01(\x03R\rfileSizeBytes\x12+\n" +
	"\x11extraction_status\x18\x06 \x01(\tR\x10extractionStatus\x123\n" +
	"\x15extraction_confidence\x18\a \x01(\x02R\x14extractionConfidence\x12#\n" +
	"\rreview_status\x18\b \x01(\tR\freviewStatus\x12)\n" +
	"\x10processing_notes\x18\t \x01(\tR\x0fprocessingNotes\x12.\n" +
	"\x13extracted_data_json\x18\n" +
	" \x01(\tR\x11extractedDataJson\x12.\n" +
	"\x13database_match_json\x18\v \x01(\tR\x11databaseMatchJson\x122\n" +
	"\x15selected_insurance_id\x18\f \x01(\tR\x13selectedInsuranceId\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\xa9\x01\n" +
	"\x15CreateProposalRequest\x12\x1f\n" +
	"\vclient_name\x18\x01 \x01(\tR\n" +
	"clientName\x12!\n" +
	"\fclient_needs\x18\x02 \x01(\tR\vclientNeeds\x12#\n" +
	"\rproposal_type\x18\x03 \x01(\tR\fproposalType\x12'\n" +
	"\x0ftarget_currency\x18\x04 \x01(\tR\x0etargetCurrency\"L\n" +
	"\x16CreateProposalResponse\x122\n" +
	"\bproposal\x18\x01 \x01(\v2\x16.proposals.v1.ProposalR\bproposal\"5\n" +
	"\x12GetProposalRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"I\n" +
	"\x13GetProposalResponse\x122\n" +
	"\bproposal\x18\x01 \x01(\v2\x16.proposals.v1.ProposalR\bproposal\"8\n" +
	"\x15DeleteProposalRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"\x18\n" +
	"\x16DeleteProposalResponse\"<\n" +
	"\n" +
	"UploadFile\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x12\n" +
	"\x04data\x18\x02 \x01(\fR\x04data\"m\n" +
	"\x1aUploadIllustrationsRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\x12.\n" +
	"\x05files\x18\x02 \x03(\v2\x18.proposals.v1.UploadFileR\x05files\"_\n" +
	"\x1bUploadIllustrationsResponse\x12@\n" +
	"\rillustrations\x18\x01 \x03(\v2\x1a.proposals.v1.IllustrationR\rillustrations\";\n" +
	"\x18ListIllustrationsRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"]\n" +
	"\x19ListIllustrationsResponse\x12@\n" +
	"\rillustrations\x18\x01 \x03(\v2\x1a.proposals.v1.IllustrationR\rillustrations\"e\n" +
	"\x19DeleteIllustrationRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\x12'\n" +
	"\x0fillustration_id\x18\x02 \x01(\tR\x0eillustrationId\"\x1c\n" +
	"\x1aDeleteIllustrationResponse\"\x96\x01\n" +
	"\x1aUpdateExtractedDataRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\x12'\n" +
	"\x0fillustration_id\x18\x02 \x01(\tR\x0eillustrationId\x12.\n" +
	"\x13extracted_data_json\x18\x03 \x01(\tR\x11extractedDataJson\"\x1d\n" +
	"\x1bUpdateExtractedDataResponse\"\x7f\n" +
	"\x14SelectProductRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\x12'\n" +
	"\x0fillustration_id\x18\x02 \x01(\tR\x0eillustrationId\x12\x1d\n" +
	"\n" +
	"product_id\x18\x03 \x01(\tR\tproductId\"\x17\n" +
	"\x15SelectProductResponse\"b\n" +
	"\x16RetryExtractionRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\x12'\n" +
	"\x0fillustration_id\x18\x02 \x01(\tR\x0eillustrationId\"\x19\n" +
	"\x17RetryExtractionResponse\"8\n" +
	"\x15ResumeProposalRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"?\n" +
	"\x16ResumeProposalResponse\x12%\n" +
	"\x0eresumed_status\x18\x01 \x01(\tR\rresumedStatus\";\n" +
	"\x18TriggerGenerationRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"\x1b\n" +
	"\x19TriggerGenerationResponse\";\n" +
	"\x18GetAnalysisStatusRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"\xa0\x01\n" +
	"\x19GetAnalysisStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12#\n" +
	"\rselected_ages\x18\x02 \x03(\x05R\fselectedAges\x12#\n" +
	"\rerror_message\x18\x03 \x01(\tR\ferrorMessage\x12!\n" +
	"\fcompleted_at\x18\x04 \x01(\tR\vcompletedAt\"E\n" +
	"\x0eGetPageRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\"#\n" +
	"\x0fGetPageResponse\x12\x10\n" +
	"\x03pdf\x18\x01 \x01(\fR\x03pdf\":\n" +
	"\x17DownloadProposalRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"H\n" +
	"\x18DownloadProposalResponse\x12\x10\n" +
	"\x03pdf\x18\x01 \x01(\fR\x03pdf\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\":\n" +
	"\x17ExportComparisonRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"J\n" +
	"\x18ExportComparisonResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xb8\v\n" +
	"\x10ProposalsService\x12[\n" +
	"\x0eCreateProposal\x12#.proposals.v1.CreateProposalRequest\x1a$.proposals.v1.CreateProposalResponse\x12R\n" +
	"\vGetProposal\x12 .proposals.v1.GetProposalRequest\x1a!.proposals.v1.GetProposalResponse\x12[\n" +
	"\x0eDeleteProposal\x12#.proposals.v1.DeleteProposalRequest\x1a$.proposals.v1.DeleteProposalResponse\x12j\n" +
	"\x13UploadIllustrations\x12(.proposals.v1.UploadIllustrationsRequest\x1a).proposals.v1.UploadIllustrationsResponse\x12d\n" +
	"\x11ListIllustrations\x12&.proposals.v1.ListIllustrationsRequest\x1a'.proposals.v1.ListIllustrationsResponse\x12g\n" +
	"\x12DeleteIllustration\x12'.proposals.v1.DeleteIllustrationRequest\x1a(.proposals.v1.DeleteIllustrationResponse\x12j\n" +
	"\x13UpdateExtractedData\x12(.proposals.v1.UpdateExtractedDataRequest\x1a).proposals.v1.UpdateExtractedDataResponse\x12X\n" +
	"\rSelectProduct\x12\".proposals.v1.SelectProductRequest\x1a#.proposals.v1.SelectProductResponse\x12^\n" +
	"\x0fRetryExtraction\x12$.proposals.v1.RetryExtractionRequest\x1a%.proposals.v1.RetryExtractionResponse\x12[\n" +
	"\x0eResumeProposal\x12#.proposals.v1.ResumeProposalRequest\x1a$.proposals.v1.ResumeProposalResponse\x12d\n" +
	"\x11TriggerGeneration\x12&.proposals.v1.TriggerGenerationRequest\x1a'.proposals.v1.TriggerGenerationResponse\x12d\n" +
	"\x11GetAnalysisStatus\x12&.proposals.v1.GetAnalysisStatusRequest\x1a'.proposals.v1.GetAnalysisStatusResponse\x12F\n" +
	"\aGetPage\x12\x1c.proposals.v1.GetPageRequest\x1a\x1d.proposals.v1.GetPageResponse\x12a\n" +
	"\x10DownloadProposal\x12%.proposals.v1.DownloadProposalRequest\x1a&.proposals.v1.DownloadProposalResponse\x12a\n" +
	"\x10ExportComparison\x12%.proposals.v1.ExportComparisonRequest\x1a&.proposals.v1.ExportComparisonResponseBKZIgithub.com/advisorhq/proposal-pipeline/gen/proto/proposals/v1;proposalsv1b\x06proto3"

var (
	file_proposals_v1_proposals_proto_rawDescOnce sync.Once
	file_proposals_v1_proposals_proto_rawDescData []byte
)

func file_proposals_v1_proposals_proto_rawDescGZIP() []byte {
	file_proposals_v1_proposals_proto_rawDescOnce.Do(func() {
		file_proposals_v1_proposals_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proposals_v1_proposals_proto_rawDesc), len(file_proposals_v1_proposals_proto_rawDesc)))
	})
	return file_proposals_v1_proposals_proto_rawDescData
}

var file_proposals_v1_proposals_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_proposals_v1_proposals_proto_goTypes = []any{
	(*Proposal)(nil),                    // 0: proposals.v1.Proposal
	(*Illustration)(nil),                // 1: proposals.v1.Illustration
	(*CreateProposalRequest)(nil),       // 2: proposals.v1.CreateProposalRequest
	(*CreateProposalResponse)(nil),      // 3: proposals.v1.CreateProposalResponse
	(*GetProposalRequest)(nil),          // 4: proposals.v1.GetProposalRequest
	(*GetProposalResponse)(nil),         // 5: proposals.v1.GetProposalResponse
	(*DeleteProposalRequest)(nil),       // 6: proposals.v1.DeleteProposalRequest
	(*DeleteProposalResponse)(nil),      // 7: proposals.v1.DeleteProposalResponse
	(*UploadFile)(nil),                  // 8: proposals.v1.UploadFile
	(*UploadIllustrationsRequest)(nil),  // 9: proposals.v1.UploadIllustrationsRequest
	(*UploadIllustrationsResponse)(nil), // 10: proposals.v1.UploadIllustrationsResponse
	(*ListIllustrationsRequest)(nil),    // 11: proposals.v1.ListIllustrationsRequest
	(*ListIllustrationsResponse)(nil),   // 12: proposals.v1.ListIllustrationsResponse
	(*DeleteIllustrationRequest)(nil),   // 13: proposals.v1.DeleteIllustrationRequest
	(*DeleteIllustrationResponse)(nil),  // 14: proposals.v1.DeleteIllustrationResponse
	(*UpdateExtractedDataRequest)(nil),  // 15: proposals.v1.UpdateExtractedDataRequest
	(*UpdateExtractedDataResponse)(nil), // 16: proposals.v1.UpdateExtractedDataResponse
	(*SelectProductRequest)(nil),        // 17: proposals.v1.SelectProductRequest
	(*SelectProductResponse)(nil),       // 18: proposals.v1.SelectProductResponse
	(*RetryExtractionRequest)(nil),      // 19: proposals.v1.RetryExtractionRequest
	(*RetryExtractionResponse)(nil),     // 20: proposals.v1.RetryExtractionResponse
	(*ResumeProposalRequest)(nil),       // 21: proposals.v1.ResumeProposalRequest
	(*ResumeProposalResponse)(nil),      // 22: proposals.v1.ResumeProposalResponse
	(*TriggerGenerationRequest)(nil),    // 23: proposals.v1.TriggerGenerationRequest
	(*TriggerGenerationResponse)(nil),   // 24: proposals.v1.TriggerGenerationResponse
	(*GetAnalysisStatusRequest)(nil),    // 25: proposals.v1.GetAnalysisStatusRequest
	(*GetAnalysisStatusResponse)(nil),   // 26: proposals.v1.GetAnalysisStatusResponse
	(*GetPageRequest)(nil),              // 27: proposals.v1.GetPageRequest
	(*GetPageResponse)(nil),             // 28: proposals.v1.GetPageResponse
	(*DownloadProposalRequest)(nil),     // 29: proposals.v1.DownloadProposalRequest
	(*DownloadProposalResponse)(nil),    // 30: proposals.v1.DownloadProposalResponse
	(*ExportComparisonRequest)(nil),     // 31: proposals.v1.ExportComparisonRequest
	(*ExportComparisonResponse)(nil),    // 32: proposals.v1.ExportComparisonResponse
}
var file_proposals_v1_proposals_proto_depIdxs = []int32{
	0,  // 0: proposals.v1.CreateProposalResponse.proposal:type_name -> proposals.v1.Proposal
	0,  // 1: proposals.v1.GetProposalResponse.proposal:type_name -> proposals.v1.Proposal
	8,  // 2: proposals.v1.UploadIllustrationsRequest.files:type_name -> proposals.v1.UploadFile
	1,  // 3: proposals.v1.UploadIllustrationsResponse.illustrations:type_name -> proposals.v1.Illustration
	1,  // 4: proposals.v1.ListIllustrationsResponse.illustrations:type_name -> proposals.v1.Illustration
	2,  // 5: proposals.v1.ProposalsService.CreateProposal:input_type -> proposals.v1.CreateProposalRequest
	4,  // 6: proposals.v1.ProposalsService.GetProposal:input_type -> proposals.v1.GetProposalRequest
	6,  // 7: proposals.v1.ProposalsService.DeleteProposal:input_type -> proposals.v1.DeleteProposalRequest
	9,  // 8: proposals.v1.ProposalsService.UploadIllustrations:input_type -> proposals.v1.UploadIllustrationsRequest
	11, // 9: proposals.v1.ProposalsService.ListIllustrations:input_type -> proposals.v1.ListIllustrationsRequest
	13, // 10: proposals.v1.ProposalsService.DeleteIllustration:input_type -> proposals.v1.DeleteIllustrationRequest
	15, // 11: proposals.v1.ProposalsService.UpdateExtractedData:input_type -> proposals.v1.UpdateExtractedDataRequest
	17, // 12: proposals.v1.ProposalsService.SelectProduct:input_type -> proposals.v1.SelectProductRequest
	19, // 13: proposals.v1.ProposalsService.RetryExtraction:input_type -> proposals.v1.RetryExtractionRequest
	21, // 14: proposals.v1.ProposalsService.ResumeProposal:input_type -> proposals.v1.ResumeProposalRequest
	23, // 15: proposals.v1.ProposalsService.TriggerGeneration:input_type -> proposals.v1.TriggerGenerationRequest
	25, // 16: proposals.v1.ProposalsService.GetAnalysisStatus:input_type -> proposals.v1.GetAnalysisStatusRequest
	27, // 17: proposals.v1.ProposalsService.GetPage:input_type -> proposals.v1.GetPageRequest
	29, // 18: proposals.v1.ProposalsService.DownloadProposal:input_type -> proposals.v1.DownloadProposalRequest
	31, // 19: proposals.v1.ProposalsService.ExportComparison:input_type -> proposals.v1.ExportComparisonRequest
	3,  // 20: proposals.v1.ProposalsService.CreateProposal:output_type -> proposals.v1.CreateProposalResponse
	5,  // 21: proposals.v1.ProposalsService.GetProposal:output_type -> proposals.v1.GetProposalResponse
	7,  // 22: proposals.v1.ProposalsService.DeleteProposal:output_type -> proposals.v1.DeleteProposalResponse
	10, // 23: proposals.v1.ProposalsService.UploadIllustrations:output_type -> proposals.v1.UploadIllustrationsResponse
	12, // 24: proposals.v1.ProposalsService.ListIllustrations:output_type -> proposals.v1.ListIllustrationsResponse
	14, // 25: proposals.v1.ProposalsService.DeleteIllustration:output_type -> proposals.v1.DeleteIllustrationResponse
	16, // 26: proposals.v1.ProposalsService.UpdateExtractedData:output_type -> proposals.v1.UpdateExtractedDataResponse
	18, // 27: proposals.v1.ProposalsService.SelectProduct:output_type -> proposals.v1.SelectProductResponse
	20, // 28: proposals.v1.ProposalsService.RetryExtraction:output_type -> proposals.v1.RetryExtractionResponse
	22, // 29: proposals.v1.ProposalsService.ResumeProposal:output_type -> proposals.v1.ResumeProposalResponse
	24, // 30: proposals.v1.ProposalsService.TriggerGeneration:output_type -> proposals.v1.TriggerGenerationResponse
	26, // 31: proposals.v1.ProposalsService.GetAnalysisStatus:output_type -> proposals.v1.GetAnalysisStatusResponse
	28, // 32: proposals.v1.ProposalsService.GetPage:output_type -> proposals.v1.GetPageResponse
	30, // 33: proposals.v1.ProposalsService.DownloadProposal:output_type -> proposals.v1.DownloadProposalResponse
	32, // 34: proposals.v1.ProposalsService.ExportComparison:output_type -> proposals.v1.ExportComparisonResponse
	20, // [20:35] is the sub-list for method output_type
	5,  // [5:20] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_proposals_v1_proposals_proto_init() }
func file_proposals_v1_proposals_proto_init() {
	if File_proposals_v1_proposals_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proposals_v1_proposals_proto_rawDesc), len(file_proposals_v1_proposals_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proposals_v1_proposals_proto_goTypes,
		DependencyIndexes: file_proposals_v1_proposals_proto_depIdxs,
		MessageInfos:      file_proposals_v1_proposals_proto_msgTypes,
	}.Build()
	File_proposals_v1_proposals_proto = out.File
	file_proposals_v1_proposals_proto_goTypes = nil
	file_proposals_v1_proposals_proto_depIdxs = nil
}
