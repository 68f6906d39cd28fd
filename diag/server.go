// Package diag exposes a single-RPC gRPC service for live search
// introspection: given a position, run one search and report what it
// found, the way cmd/taktician-server exposes ai.MinimaxAI.Analyze.
package diag

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/elkasimi/codecup-box/box"
	"github.com/elkasimi/codecup-box/mcts"
)

// AnalyzeRequest describes a position to search: the game's opening
// token, the tile currently dealt and waiting to be placed, and which
// color to search for.
type AnalyzeRequest struct {
	Start     string  `json:"start"`
	Chance    string  `json:"chance"`
	Color     string  `json:"color"`
	TimeRatio float64 `json:"time_ratio"`
}

// AnalyzeResponse reports the search's chosen move and the position's
// expected score for Color going into the search, the same two
// figures get_best_move logs right before returning. FoundMove is
// false at a terminal position, the same sentinel GetBestMove itself
// returns; Move is empty in that case rather than a zero-value
// placement's misleading Show() output.
type AnalyzeResponse struct {
	Move          string  `json:"move"`
	FoundMove     bool    `json:"found_move"`
	ExpectedScore float64 `json:"expected_score"`
	ElapsedMS     int64   `json:"elapsed_ms"`
}

// DiagServer is the interface the generated-style service descriptor
// below dispatches to; Server is the only implementation.
type DiagServer interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
}

// Server implements DiagServer by running a fresh Searcher per
// request: no search state persists between calls, the same way the
// engine starts cold on every GetBestMove.
type Server struct {
	Logger *log.Logger
}

func (s *Server) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	pos, err := box.New(req.Start)
	if err != nil {
		return nil, fmt.Errorf("diag: start %q: %w", req.Start, err)
	}
	pos.DoChanceMove(box.ChanceMove(req.Chance))

	color := box.Color(req.Color[0])
	box.InitWeights(color)
	expected := pos.GetExpectedScore(color)

	logger := s.Logger
	if logger == nil {
		logger = log.New(nilWriter{}, "", 0)
	}
	searcher := mcts.NewSearcher(mcts.Config{
		Color:     color,
		TimeRatio: req.TimeRatio,
		Logger:    logger,
	})

	start := time.Now()
	move, found := searcher.GetBestMove(pos)
	elapsed := time.Since(start)

	resp := &AnalyzeResponse{
		FoundMove:     found,
		ExpectedScore: expected,
		ElapsedMS:     elapsed.Milliseconds(),
	}
	if found {
		resp.Move = move.Show()
	}
	return resp, nil
}

type nilWriter struct{}

func (nilWriter) Write(p []byte) (int, error) { return len(p), nil }

var serviceDesc = grpc.ServiceDesc{
	ServiceName: "box.diag.Diag",
	HandlerType: (*DiagServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    analyzeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "diag.proto",
}

func analyzeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiagServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/box.diag.Diag/Analyze"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiagServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegisterDiagServer wires srv into s under this package's hand-built
// service descriptor, the non-generated equivalent of
// pb.RegisterTakticianServer.
func RegisterDiagServer(s *grpc.Server, srv DiagServer) {
	s.RegisterService(&serviceDesc, srv)
}

// Serve listens on addr and runs a gRPC server hosting srv alongside a
// liveness ticker, until either goroutine returns. grpcServer.Serve
// returning (listener failure, or GracefulStop from the ticker side)
// cancels the errgroup's context, which is what makes the ticker
// goroutine exit; the two are tied together so one failing shuts down
// the other, rather than leaking a goroutine serving on a dead
// listener or vice versa.
func Serve(ctx context.Context, addr string, srv DiagServer, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(nilWriter{}, "", 0)
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("diag: listen %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer()
	RegisterDiagServer(grpcServer, srv)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				grpcServer.GracefulStop()
				return nil
			case <-ticker.C:
				logger.Printf("diag: serving on %s", addr)
			}
		}
	})
	return g.Wait()
}
