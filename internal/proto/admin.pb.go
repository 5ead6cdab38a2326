// Package proto holds the wire contract of the admin gateway.
//
// The file is maintained by hand and kept in sync with admin.proto: instead
// of embedding protoc's serialized descriptor, the FileDescriptorProto is
// assembled as a typed literal and marshaled once at init. The message and
// service code follows the protoc-gen-go layout so the package behaves like
// generated code at runtime.
package proto

import (
	reflect "reflect"
	sync "sync"

	protobuf "google.golang.org/protobuf/proto"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	descriptorpb "google.golang.org/protobuf/types/descriptorpb"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// ResultCode classifies the engine's outcome for an administrative command.
type ResultCode int32

const (
	ResultCode_SUCCESS             ResultCode = 0
	ResultCode_USER_ALREADY_EXISTS ResultCode = 1
	ResultCode_OTHER               ResultCode = 2
)

// Enum value maps for ResultCode.
var (
	ResultCode_name = map[int32]string{
		0: "SUCCESS",
		1: "USER_ALREADY_EXISTS",
		2: "OTHER",
	}
	ResultCode_value = map[string]int32{
		"SUCCESS":             0,
		"USER_ALREADY_EXISTS": 1,
		"OTHER":               2,
	}
)

func (x ResultCode) Enum() *ResultCode {
	p := new(ResultCode)
	*p = x
	return p
}

func (x ResultCode) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ResultCode) Descriptor() protoreflect.EnumDescriptor {
	return file_internal_proto_admin_proto_enumTypes[0].Descriptor()
}

func (ResultCode) Type() protoreflect.EnumType {
	return &file_internal_proto_admin_proto_enumTypes[0]
}

func (x ResultCode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ResultCode.Descriptor instead.
func (ResultCode) EnumDescriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{0}
}

type PingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_internal_proto_admin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{0}
}

type PingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_internal_proto_admin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{1}
}

func (x *PingResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type LoginRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_internal_proto_admin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{2}
}

func (x *LoginRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Token   string `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Message string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_internal_proto_admin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{3}
}

func (x *LoginResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *LoginResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *LoginResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type AddUserRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Uid uint64 `protobuf:"varint,1,opt,name=uid,proto3" json:"uid,omitempty"`
}

func (x *AddUserRequest) Reset() {
	*x = AddUserRequest{}
	mi := &file_internal_proto_admin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddUserRequest) ProtoMessage() {}

func (x *AddUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddUserRequest.ProtoReflect.Descriptor instead.
func (*AddUserRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{4}
}

func (x *AddUserRequest) GetUid() uint64 {
	if x != nil {
		return x.Uid
	}
	return 0
}

type AddUserResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *AddUserResponse) Reset() {
	*x = AddUserResponse{}
	mi := &file_internal_proto_admin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddUserResponse) ProtoMessage() {}

func (x *AddUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddUserResponse.ProtoReflect.Descriptor instead.
func (*AddUserResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{5}
}

func (x *AddUserResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *AddUserResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type StopEngineRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *StopEngineRequest) Reset() {
	*x = StopEngineRequest{}
	mi := &file_internal_proto_admin_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopEngineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopEngineRequest) ProtoMessage() {}

func (x *StopEngineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopEngineRequest.ProtoReflect.Descriptor instead.
func (*StopEngineRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{6}
}

type StopEngineResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *StopEngineResponse) Reset() {
	*x = StopEngineResponse{}
	mi := &file_internal_proto_admin_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopEngineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopEngineResponse) ProtoMessage() {}

func (x *StopEngineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopEngineResponse.ProtoReflect.Descriptor instead.
func (*StopEngineResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{7}
}

func (x *StopEngineResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type SubscribeAdminEventsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Resume position: the first index the subscriber wants to receive.
	// 0 means "start from the current tail" (future events only).
	LastEventIndex uint64 `protobuf:"varint,1,opt,name=last_event_index,json=lastEventIndex,proto3" json:"last_event_index,omitempty"`
}

func (x *SubscribeAdminEventsRequest) Reset() {
	*x = SubscribeAdminEventsRequest{}
	mi := &file_internal_proto_admin_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeAdminEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeAdminEventsRequest) ProtoMessage() {}

func (x *SubscribeAdminEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeAdminEventsRequest.ProtoReflect.Descriptor instead.
func (*SubscribeAdminEventsRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{8}
}

func (x *SubscribeAdminEventsRequest) GetLastEventIndex() uint64 {
	if x != nil {
		return x.LastEventIndex
	}
	return 0
}

// CommandResult is the payload stored in the durable log. The log index is
// never embedded here; it is assigned and reported by the log itself.
type CommandResult struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Uid        uint64     `protobuf:"varint,1,opt,name=uid,proto3" json:"uid,omitempty"`
	ResultCode ResultCode `protobuf:"varint,2,opt,name=result_code,json=resultCode,proto3,enum=admingate.ResultCode" json:"result_code,omitempty"`
	Message    string     `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *CommandResult) Reset() {
	*x = CommandResult{}
	mi := &file_internal_proto_admin_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandResult) ProtoMessage() {}

func (x *CommandResult) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandResult.ProtoReflect.Descriptor instead.
func (*CommandResult) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{9}
}

func (x *CommandResult) GetUid() uint64 {
	if x != nil {
		return x.Uid
	}
	return 0
}

func (x *CommandResult) GetResultCode() ResultCode {
	if x != nil {
		return x.ResultCode
	}
	return ResultCode_SUCCESS
}

func (x *CommandResult) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type AdminEvent struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Index         uint64         `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	CommandResult *CommandResult `protobuf:"bytes,2,opt,name=command_result,json=commandResult,proto3" json:"command_result,omitempty"`
}

func (x *AdminEvent) Reset() {
	*x = AdminEvent{}
	mi := &file_internal_proto_admin_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminEvent) ProtoMessage() {}

func (x *AdminEvent) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_admin_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminEvent.ProtoReflect.Descriptor instead.
func (*AdminEvent) Descriptor() ([]byte, []int) {
	return file_internal_proto_admin_proto_rawDescGZIP(), []int{10}
}

func (x *AdminEvent) GetIndex() uint64 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *AdminEvent) GetCommandResult() *CommandResult {
	if x != nil {
		return x.CommandResult
	}
	return nil
}

var File_internal_proto_admin_proto protoreflect.FileDescriptor

var file_internal_proto_admin_proto_rawDesc []byte

// adminFileDescriptor mirrors admin.proto. Field and method order here must
// match the .proto file exactly; goTypes and depIdxs below index into it.
func adminFileDescriptor() *descriptorpb.FileDescriptorProto {
	field := func(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type, jsonName, typeName string) *descriptorpb.FieldDescriptorProto {
		f := &descriptorpb.FieldDescriptorProto{
			Name:     protobuf.String(name),
			Number:   protobuf.Int32(num),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:     typ.Enum(),
			JsonName: protobuf.String(jsonName),
		}
		if typeName != "" {
			f.TypeName = protobuf.String(typeName)
		}
		return f
	}
	str := func(name string, num int32) *descriptorpb.FieldDescriptorProto {
		return field(name, num, descriptorpb.FieldDescriptorProto_TYPE_STRING, name, "")
	}
	boolean := func(name string, num int32) *descriptorpb.FieldDescriptorProto {
		return field(name, num, descriptorpb.FieldDescriptorProto_TYPE_BOOL, name, "")
	}
	message := func(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
		return &descriptorpb.DescriptorProto{Name: protobuf.String(name), Field: fields}
	}
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       protobuf.String(name),
			InputType:  protobuf.String(in),
			OutputType: protobuf.String(out),
		}
	}

	stream := method("SubscribeAdminEvents", ".admingate.SubscribeAdminEventsRequest", ".admingate.AdminEvent")
	stream.ServerStreaming = protobuf.Bool(true)

	return &descriptorpb.FileDescriptorProto{
		Name:    protobuf.String("internal/proto/admin.proto"),
		Package: protobuf.String("admingate"),
		Syntax:  protobuf.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: protobuf.String("github.com/dmitrijs2005/admingate/internal/proto"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("PingRequest"),
			message("PingResponse", str("message", 1)),
			message("LoginRequest", str("username", 1), str("password", 2)),
			message("LoginResponse", boolean("success", 1), str("token", 2), str("message", 3)),
			message("AddUserRequest",
				field("uid", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64, "uid", "")),
			message("AddUserResponse", boolean("success", 1), str("message", 2)),
			message("StopEngineRequest"),
			message("StopEngineResponse", boolean("success", 1)),
			message("SubscribeAdminEventsRequest",
				field("last_event_index", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64, "lastEventIndex", "")),
			message("CommandResult",
				field("uid", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64, "uid", ""),
				field("result_code", 2, descriptorpb.FieldDescriptorProto_TYPE_ENUM, "resultCode", ".admingate.ResultCode"),
				str("message", 3)),
			message("AdminEvent",
				field("index", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64, "index", ""),
				field("command_result", 2, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, "commandResult", ".admingate.CommandResult")),
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{
				Name: protobuf.String("ResultCode"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: protobuf.String("SUCCESS"), Number: protobuf.Int32(0)},
					{Name: protobuf.String("USER_ALREADY_EXISTS"), Number: protobuf.Int32(1)},
					{Name: protobuf.String("OTHER"), Number: protobuf.Int32(2)},
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: protobuf.String("AdminService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					method("Ping", ".admingate.PingRequest", ".admingate.PingResponse"),
					method("Login", ".admingate.LoginRequest", ".admingate.LoginResponse"),
					method("AddUser", ".admingate.AddUserRequest", ".admingate.AddUserResponse"),
					method("StopEngine", ".admingate.StopEngineRequest", ".admingate.StopEngineResponse"),
					stream,
				},
			},
		},
	}
}

var (
	file_internal_proto_admin_proto_rawDescOnce sync.Once
	file_internal_proto_admin_proto_rawDescData []byte
)

func file_internal_proto_admin_proto_rawDescGZIP() []byte {
	file_internal_proto_admin_proto_rawDescOnce.Do(func() {
		file_internal_proto_admin_proto_rawDescData = protoimpl.X.CompressGZIP(file_internal_proto_admin_proto_rawDesc)
	})
	return file_internal_proto_admin_proto_rawDescData
}

var file_internal_proto_admin_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_internal_proto_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_internal_proto_admin_proto_goTypes = []any{
	(ResultCode)(0),                     // 0: admingate.ResultCode
	(*PingRequest)(nil),                 // 1: admingate.PingRequest
	(*PingResponse)(nil),                // 2: admingate.PingResponse
	(*LoginRequest)(nil),                // 3: admingate.LoginRequest
	(*LoginResponse)(nil),               // 4: admingate.LoginResponse
	(*AddUserRequest)(nil),              // 5: admingate.AddUserRequest
	(*AddUserResponse)(nil),             // 6: admingate.AddUserResponse
	(*StopEngineRequest)(nil),           // 7: admingate.StopEngineRequest
	(*StopEngineResponse)(nil),          // 8: admingate.StopEngineResponse
	(*SubscribeAdminEventsRequest)(nil), // 9: admingate.SubscribeAdminEventsRequest
	(*CommandResult)(nil),               // 10: admingate.CommandResult
	(*AdminEvent)(nil),                  // 11: admingate.AdminEvent
}
var file_internal_proto_admin_proto_depIdxs = []int32{
	0,  // 0: admingate.CommandResult.result_code:type_name -> admingate.ResultCode
	10, // 1: admingate.AdminEvent.command_result:type_name -> admingate.CommandResult
	1,  // 2: admingate.AdminService.Ping:input_type -> admingate.PingRequest
	3,  // 3: admingate.AdminService.Login:input_type -> admingate.LoginRequest
	5,  // 4: admingate.AdminService.AddUser:input_type -> admingate.AddUserRequest
	7,  // 5: admingate.AdminService.StopEngine:input_type -> admingate.StopEngineRequest
	9,  // 6: admingate.AdminService.SubscribeAdminEvents:input_type -> admingate.SubscribeAdminEventsRequest
	2,  // 7: admingate.AdminService.Ping:output_type -> admingate.PingResponse
	4,  // 8: admingate.AdminService.Login:output_type -> admingate.LoginResponse
	6,  // 9: admingate.AdminService.AddUser:output_type -> admingate.AddUserResponse
	8,  // 10: admingate.AdminService.StopEngine:output_type -> admingate.StopEngineResponse
	11, // 11: admingate.AdminService.SubscribeAdminEvents:output_type -> admingate.AdminEvent
	7,  // [7:12] is the sub-list for method output_type
	2,  // [2:7] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_internal_proto_admin_proto_init() }
func file_internal_proto_admin_proto_init() {
	if File_internal_proto_admin_proto != nil {
		return
	}
	raw, err := protobuf.Marshal(adminFileDescriptor())
	if err != nil {
		panic(err)
	}
	file_internal_proto_admin_proto_rawDesc = raw
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_internal_proto_admin_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_internal_proto_admin_proto_goTypes,
		DependencyIndexes: file_internal_proto_admin_proto_depIdxs,
		EnumInfos:         file_internal_proto_admin_proto_enumTypes,
		MessageInfos:      file_internal_proto_admin_proto_msgTypes,
	}.Build()
	File_internal_proto_admin_proto = out.File
	file_internal_proto_admin_proto_goTypes = nil
	file_internal_proto_admin_proto_depIdxs = nil
}
