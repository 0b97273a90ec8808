package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/internal/presentation/graph"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/loader"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CheckResult mirrors the HTTP check response so both adapters share a shape.
type CheckResult struct {
	Passed  bool             `json:"passed" jsonschema_description:"True when every diagram met all expectations"`
	Reports []*domain.Report `json:"reports" jsonschema_description:"One report per diagram, in document order"`
}

// CheckArgs are the arguments of check_diagrams.
type CheckArgs struct {
	Document string `json:"document"`
}

// ReportArgs are the arguments of get_report.
type ReportArgs struct {
	ID string `json:"id"`
}

// DrawArgs are the arguments of draw_diagram.
type DrawArgs struct {
	Document string `json:"document"`
	Name     string `json:"name,omitempty"`
	Word     string `json:"word,omitempty"`
}

// Checker defines what the MCP server needs from the fae checker.
type Checker interface {
	Check(ctx context.Context, data []byte) ([]*domain.Report, error)
	Report(ctx context.Context, id string) (*domain.Report, error)
	Reports(ctx context.Context) ([]string, error)
}

var _ Checker = (*fae.Checker)(nil)

// Server wraps the checker and exposes it as an MCP Server.
type Server struct {
	checker   Checker
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(checker Checker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		checker:   checker,
		logger:    logger,
		mcpServer: server.NewMCPServer("fae-mcp", strings.TrimSpace(fae.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx
// is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: check_diagrams
	checkTool := mcp.NewTool("check_diagrams",
		mcp.WithDescription("Check a YAML or JSON document of state diagrams against their expected strings."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The diagram document")),
		mcp.WithOutputSchema[CheckResult](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheck))

	// TOOL: get_report
	reportTool := mcp.NewTool("get_report",
		mcp.WithDescription("Load a stored check report by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Report ID returned by check_diagrams")),
		mcp.WithOutputSchema[domain.Report](),
	)
	s.mcpServer.AddTool(reportTool, mcp.NewStructuredToolHandler(s.handleGetReport))

	// TOOL: list_reports
	s.mcpServer.AddTool(mcp.NewTool("list_reports",
		mcp.WithDescription("List the IDs of stored reports."),
	), s.handleListReports)

	// TOOL: draw_diagram
	s.mcpServer.AddTool(mcp.NewTool("draw_diagram",
		mcp.WithDescription("Render one diagram of a document as a Mermaid state diagram."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The diagram document")),
		mcp.WithString("name", mcp.Description("Diagram name (defaults to the first diagram)")),
		mcp.WithString("word", mcp.Description("Highlight the walk of this string")),
	), s.handleDraw)
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args CheckArgs) (CheckResult, error) {
	reports, err := s.checker.Check(ctx, []byte(args.Document))
	if err != nil {
		s.logger.Warn("MCP check failed", "error", err)
		return CheckResult{}, fmt.Errorf("check failed: %w", err)
	}
	res := CheckResult{Passed: true, Reports: reports}
	for _, r := range reports {
		res.Passed = res.Passed && r.Passed()
	}
	return res, nil
}

func (s *Server) handleGetReport(ctx context.Context, request mcp.CallToolRequest, args ReportArgs) (domain.Report, error) {
	r, err := s.checker.Report(ctx, args.ID)
	if err != nil {
		return domain.Report{}, err
	}
	return *r, nil
}

func (s *Server) handleListReports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := s.checker.Reports(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(ids)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleDraw(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document := request.GetString("document", "")
	if document == "" {
		return mcp.NewToolResultError("document is required"), nil
	}

	diagrams, err := loader.Parse([]byte(document), loader.WithLogger(s.logger))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := loader.Select(diagrams, request.GetString("name", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var overlay *graph.Overlay
	if word := request.GetString("word", ""); word != "" {
		tr, err := d.Automaton.Trace(domain.ParseWord(word))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if tr.Foreign {
			return mcp.NewToolResultError(fmt.Sprintf("%q is not a string over %s", word, d.Automaton.Alphabet())), nil
		}
		overlay = graph.OverlayFromTrace(tr)
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(d.Automaton, overlay)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: fae://reports
	s.mcpServer.AddResource(mcp.NewResource("fae://reports", "Stored Report IDs",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.checker.Reports(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", err)
		}
		jsonBytes, _ := json.Marshal(ids)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "fae://reports",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
