package rpcservice

// protoSource is the CompileService schema, parsed at server construction
// time rather than through a protoc-generated .pb.go file — the same
// dynamic-descriptor approach the teacher's evaluator uses for its
// grpcLoadProto/grpcRegister builtins, just with the schema embedded
// instead of read from a project file.
const protoSource = `
syntax = "proto3";

package slc;

import "google/protobuf/struct.proto";

message CompileRequest {
  string source = 1;
  string tab = 2;
}

message CompileResponse {
  string text = 1;
  string error = 2;
}

message ParseRequest {
  string source = 1;
}

message ParseResponse {
  google.protobuf.Struct ast = 1;
  string error = 2;
}

service CompileService {
  rpc Compile(CompileRequest) returns (CompileResponse);
  rpc ParseToStruct(ParseRequest) returns (ParseResponse);
}
`

const protoFilename = "compile_service.proto"
