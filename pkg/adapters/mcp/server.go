package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fixtura"
	"github.com/aretw0/fixtura/internal/logging"
	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/aretw0/fixtura/pkg/ports"
	"github.com/aretw0/fixtura/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	defaultCount = 5
	maxCount     = 1000
	// MaxLength caps any string or list length a tool call may ask for.
	MaxLength   = 10000
	maxElements = 1_000_000
)

var limits = schema.Limits{MaxLength: MaxLength, MaxElements: maxElements}

// Engine defines the generation core exposed as MCP tools.
type Engine interface {
	GenerateComplexData(tag domain.TypeTag, c domain.Constraints) (any, error)
	GenerateTestCasesContext(ctx context.Context, count int, schema domain.Schema) (domain.TestCaseSet, error)
}

// CasesArgs are the arguments of generate_test_cases.
// A nil Count means defaultCount; an explicit zero yields no records.
type CasesArgs struct {
	Schema string `json:"schema"`
	Count  *int   `json:"count,omitempty"`
}

// NamedCasesArgs are the arguments of generate_from_schema.
type NamedCasesArgs struct {
	Name  string `json:"name"`
	Count *int   `json:"count,omitempty"`
}

// ValueArgs are the arguments of generate_value.
type ValueArgs struct {
	Type        string `json:"type"`
	Constraints string `json:"constraints"`
}

// CasesResponse is the structured result of the batch tools.
type CasesResponse struct {
	Count int                `json:"count"`
	Cases domain.TestCaseSet `json:"cases"`
}

// ValueResponse is the structured result of generate_value.
type ValueResponse struct {
	Type  domain.TypeTag `json:"type"`
	Value any            `json:"value"`
}

// Server wraps the fixtura Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	store     ports.SchemaStore
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
// store may be nil, in which case the registry tools report an error.
func NewServer(engine Engine, store ports.SchemaStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		store:     store,
		logger:    logger,
		mcpServer: server.NewMCPServer("fixtura-mcp", strings.TrimSpace(fixtura.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP endpoints over SSE until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
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

func (s *Server) registerTools() {
	// TOOL: generate_test_cases
	s.mcpServer.AddTool(mcp.NewTool("generate_test_cases",
		mcp.WithDescription("Generate fixture records from an inline YAML or JSON schema. Each top-level key is a field name mapped to {type, constraints}."),
		mcp.WithString("schema", mcp.Required(), mcp.Description("Schema document (YAML or JSON)")),
		mcp.WithNumber("count", mcp.Description(fmt.Sprintf("Number of records (default %d, max %d)", defaultCount, maxCount))),
	), mcp.NewStructuredToolHandler(s.handleGenerateTestCases))

	// TOOL: generate_from_schema
	s.mcpServer.AddTool(mcp.NewTool("generate_from_schema",
		mcp.WithDescription("Generate fixture records from a schema stored in the registry."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Registered schema name")),
		mcp.WithNumber("count", mcp.Description(fmt.Sprintf("Number of records (default %d, max %d)", defaultCount, maxCount))),
	), mcp.NewStructuredToolHandler(s.handleGenerateFromSchema))

	// TOOL: generate_value
	s.mcpServer.AddTool(mcp.NewTool("generate_value",
		mcp.WithDescription("Generate a single value of the given type."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Type tag: "+joinTypes())),
		mcp.WithString("constraints", mcp.Description("JSON object of constraints (optional)")),
	), mcp.NewStructuredToolHandler(s.handleGenerateValue))

	// TOOL: list_schemas
	s.mcpServer.AddTool(mcp.NewTool("list_schemas",
		mcp.WithDescription("List the names of registered schemas."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := s.listSchemas(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		jsonBytes, _ := json.Marshal(names)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleGenerateTestCases(ctx context.Context, _ mcp.CallToolRequest, args CasesArgs) (CasesResponse, error) {
	sc, err := schema.Parse([]byte(args.Schema))
	if err != nil {
		return CasesResponse{}, err
	}
	return s.generate(ctx, args.Count, sc)
}

func (s *Server) handleGenerateFromSchema(ctx context.Context, _ mcp.CallToolRequest, args NamedCasesArgs) (CasesResponse, error) {
	if s.store == nil {
		return CasesResponse{}, errNoStore
	}
	sc, err := s.store.Load(ctx, args.Name)
	if err != nil {
		return CasesResponse{}, fmt.Errorf("load %q: %w", args.Name, err)
	}
	return s.generate(ctx, args.Count, sc)
}

func (s *Server) handleGenerateValue(_ context.Context, _ mcp.CallToolRequest, args ValueArgs) (ValueResponse, error) {
	c, err := schema.ParseConstraints([]byte(args.Constraints))
	if err != nil {
		return ValueResponse{}, err
	}
	tag := domain.TypeTag(args.Type)
	single := domain.Schema{{Name: "value", Spec: domain.FieldSpec{Type: tag, Constraints: c}}}
	if err := schema.CheckLimits(single, 1, limits); err != nil {
		return ValueResponse{}, err
	}
	v, err := s.engine.GenerateComplexData(tag, c)
	if err != nil {
		return ValueResponse{}, err
	}
	return ValueResponse{Type: tag, Value: v}, nil
}

func (s *Server) generate(ctx context.Context, requested *int, sc domain.Schema) (CasesResponse, error) {
	count := defaultCount
	if requested != nil {
		count = min(*requested, maxCount)
	}
	if err := schema.CheckLimits(sc, count, limits); err != nil {
		return CasesResponse{}, err
	}

	cases, err := s.engine.GenerateTestCasesContext(ctx, count, sc)
	if err != nil {
		s.logger.Warn("MCP generate failed", "error", err)
		return CasesResponse{}, err
	}
	return CasesResponse{Count: len(cases), Cases: cases}, nil
}

var errNoStore = errors.New("no schema registry configured")

func (s *Server) listSchemas(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return nil, errNoStore
	}
	return s.store.List(ctx)
}

func (s *Server) registerResources() {
	// EXPOSE: fixtura://types
	s.mcpServer.AddResource(mcp.NewResource("fixtura://types", "Supported Type Tags",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(domain.KnownTypes)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "fixtura://types",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func joinTypes() string {
	names := make([]string, len(domain.KnownTypes))
	for i, t := range domain.KnownTypes {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
