package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"

	"prosefix/internal/processor"
	"prosefix/internal/version"
)

// Server exposes the four editing operations as MCP tools. It is a thin
// adapter: argument schemas and dispatch live here, all pipeline logic lives
// in the processor.
type Server struct {
	mcpServer *mcp.Server
	proc      *processor.Processor
}

// NewServer builds the MCP server around a processor.
func NewServer(proc *processor.Processor) *Server {
	info := mcp.ServerInfo{
		Name:    "prosefix",
		Version: version.Short(),
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Prosefix MCP Server"),
			mcp.WithDescription("Deterministic academic-writing editor: rewrites prose for clarity and style, with an auditable change record and readability metrics."),
			mcp.WithInstructions("Use edit_document to rewrite text, analyze_structure to check section layout, check_clarity_metrics for a read-only diagnosis, and optimize_section for a single section."),
		),
		proc: proc,
	}

	s.registerTools()
	return s
}

type EditDocumentArgs struct {
	Text         string `json:"text" jsonschema:"description=The document text to edit"`
	DocumentType string `json:"document_type,omitempty" jsonschema:"description=One of full_paper | section | paragraph | abstract"`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"description=One of tracked_changes | clean | both"`
}

type AnalyzeStructureArgs struct {
	Text             string   `json:"text" jsonschema:"description=The document text to analyze"`
	ExpectedSections []string `json:"expected_sections,omitempty" jsonschema:"description=Section names the document should contain"`
}

type CheckClarityArgs struct {
	Text string `json:"text" jsonschema:"description=The text to analyze"`
}

type OptimizeSectionArgs struct {
	Text        string `json:"text" jsonschema:"description=The section text to optimize"`
	SectionType string `json:"section_type,omitempty" jsonschema:"description=Section kind: introduction | abstract | any other section name"`
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("edit_document").
		Description("Rewrite a document to academic writing conventions and return the edited text, metrics, tracked changes, and suggestions").
		Handler(s.handleEditDocument)

	s.mcpServer.Tool("analyze_structure").
		Description("Check a document against an expected section layout and return per-section issues plus a restructured draft when invalid").
		Handler(s.handleAnalyzeStructure)

	s.mcpServer.Tool("check_clarity_metrics").
		Description("Analyze text without modifying it and return a clarity score, categorized issues, statistics, and recommendations").
		Handler(s.handleCheckClarity)

	s.mcpServer.Tool("optimize_section").
		Description("Optimize one section and return before/after metrics with the list of improvements applied").
		Handler(s.handleOptimizeSection)
}

func (s *Server) handleEditDocument(ctx context.Context, args EditDocumentArgs) (any, error) {
	return s.proc.EditDocument(args.Text, args.DocumentType, args.OutputFormat)
}

func (s *Server) handleAnalyzeStructure(ctx context.Context, args AnalyzeStructureArgs) (any, error) {
	return s.proc.AnalyzeStructure(args.Text, args.ExpectedSections)
}

func (s *Server) handleCheckClarity(ctx context.Context, args CheckClarityArgs) (any, error) {
	return s.proc.CheckClarityMetrics(args.Text)
}

func (s *Server) handleOptimizeSection(ctx context.Context, args OptimizeSectionArgs) (any, error) {
	return s.proc.OptimizeSection(args.Text, args.SectionType)
}

// StartStdio serves MCP over stdin/stdout.
func (s *Server) StartStdio() error {
	return mcp.ServeStdio(context.Background(), s.mcpServer)
}

// StartHTTP serves MCP over HTTP on addr.
func (s *Server) StartHTTP(addr string) error {
	return mcp.ServeHTTP(context.Background(), s.mcpServer, addr, mcp.WithDefaultCORS())
}
