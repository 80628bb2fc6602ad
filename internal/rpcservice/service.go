// Package rpcservice implements the optional CompileService gRPC server:
// additive tooling surface for editor/CI integration, not part of the
// compile pipeline itself. It hand-builds a grpc.ServiceDesc from a proto
// schema parsed at construction time with jhump/protoreflect's
// protoparse, and serves requests with dynamic.Message instead of
// protoc-generated types — the exact pattern the teacher's
// evaluator.builtinGrpcRegister uses to expose a Funxy-defined service,
// applied here to the compiler's own service instead of a user script's.
package rpcservice

import (
	"context"
	"fmt"
	"net"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"
	log "github.com/sirupsen/logrus"

	"github.com/funvibe/funxy/internal/compiler"
)

// Server is the CompileService implementation. It has no state of its
// own beyond what compiling needs — Tab and an optional Loader for the
// reflective *compiler bridge — so one Server can field concurrent
// requests; each request builds its own Compiler and scope.
type Server struct {
	Tab    string
	Loader compiler.Loader
	Logger *log.Logger

	sd  *desc.ServiceDescriptor
	grp *grpc.Server
}

// New parses the embedded proto schema and returns a Server ready to
// Register and Serve.
func New(tab string, loader compiler.Loader) (*Server, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			protoFilename: protoSource,
		}),
	}
	fds, err := parser.ParseFiles(protoFilename)
	if err != nil {
		return nil, fmt.Errorf("rpcservice: parsing embedded proto schema: %w", err)
	}
	sd := fds[0].FindService("slc.CompileService")
	if sd == nil {
		return nil, fmt.Errorf("rpcservice: CompileService not found in parsed schema")
	}
	logger := log.StandardLogger()
	return &Server{Tab: tab, Loader: loader, Logger: logger, sd: sd}, nil
}

// Register builds the hand-wired grpc.ServiceDesc and registers it (and
// this Server as its handler) on grp.
func (s *Server) Register(grp *grpc.Server) {
	s.grp = grp
	svcDesc := &grpc.ServiceDesc{
		ServiceName: s.sd.GetFullyQualifiedName(),
		HandlerType: (*interface{})(nil),
		Metadata:    s.sd.GetFile().GetName(),
	}
	for _, method := range s.sd.GetMethods() {
		md := method
		svcDesc.Methods = append(svcDesc.Methods, grpc.MethodDesc{
			MethodName: md.GetName(),
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
				self := srv.(*Server)
				return self.handleUnary(ctx, md, dec)
			},
		})
	}
	grp.RegisterService(svcDesc, s)
}

// Serve listens on addr and blocks serving requests until the listener
// fails or the server is stopped.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("rpcservice: listening on %s: %w", addr, err)
	}
	if s.grp == nil {
		s.grp = grpc.NewServer()
		s.Register(s.grp)
	}
	s.Logger.WithField("addr", addr).Info("rpcservice: serving CompileService")
	return s.grp.Serve(lis)
}

func (s *Server) handleUnary(ctx context.Context, md *desc.MethodDescriptor, dec func(interface{}) error) (interface{}, error) {
	in := dynamic.NewMessage(md.GetInputType())
	if err := dec(in); err != nil {
		return nil, err
	}
	out := dynamic.NewMessage(md.GetOutputType())

	switch md.GetName() {
	case "Compile":
		source, _ := in.TryGetFieldByName("source")
		tab, _ := in.TryGetFieldByName("tab")
		sourceStr, _ := source.(string)
		tabStr, _ := tab.(string)
		if tabStr == "" {
			tabStr = s.Tab
		}
		text, err := compiler.Compile(sourceStr, compiler.Options{Tab: tabStr, Loader: s.Loader, Logger: s.Logger})
		if err != nil {
			out.SetFieldByName("error", err.Error())
		} else {
			out.SetFieldByName("text", text)
		}
		return out, nil
	case "ParseToStruct":
		source, _ := in.TryGetFieldByName("source")
		sourceStr, _ := source.(string)
		forms, _, err := parseForStruct(sourceStr)
		if err != nil {
			out.SetFieldByName("error", err.Error())
			return out, nil
		}
		structVal, err := astToStruct(forms)
		if err != nil {
			out.SetFieldByName("error", err.Error())
			return out, nil
		}
		out.SetFieldByName("ast", structVal.GetStructValue())
		return out, nil
	default:
		return nil, fmt.Errorf("rpcservice: unknown method %s", md.GetName())
	}
}
