// Package mcp exposes the legal analysis operations as Model Context
// Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a3tai/mcp-legal-analyzer/internal/analysis"
	"github.com/a3tai/mcp-legal-analyzer/internal/config"
	"github.com/a3tai/mcp-legal-analyzer/internal/descriptions"
	"github.com/a3tai/mcp-legal-analyzer/internal/pdf"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	analysis   *analysis.Service
	pdfService *pdf.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, analysisService *analysis.Service, pdfService *pdf.Service) (*Server, error) {
	if analysisService == nil {
		return nil, fmt.Errorf("analysisService cannot be nil")
	}
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:     cfg,
		analysis:   analysisService,
		pdfService: pdfService,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	analyzeContractTool := mcp.NewTool(
		"legal_analyze_contract",
		mcp.WithDescription(descriptions.AnalyzeContractDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Contract text to analyze"),
		),
		mcp.WithString("language",
			mcp.Description("Language tag ('en' or 'ar'); detected automatically if empty"),
		),
	)
	s.mcpServer.AddTool(analyzeContractTool, s.handleAnalyzeContract)

	extractEntitiesTool := mcp.NewTool(
		"legal_extract_entities",
		mcp.WithDescription(descriptions.ExtractEntitiesDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text to extract entities from"),
		),
		mcp.WithString("language",
			mcp.Description("Language tag ('en' or 'ar'); detected automatically if empty"),
		),
	)
	s.mcpServer.AddTool(extractEntitiesTool, s.handleExtractEntities)

	classifyDocumentTool := mcp.NewTool(
		"legal_classify_document",
		mcp.WithDescription(descriptions.ClassifyDocumentDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text to classify"),
		),
		mcp.WithString("language",
			mcp.Description("Language tag ('en' or 'ar'); detected automatically if empty"),
		),
	)
	s.mcpServer.AddTool(classifyDocumentTool, s.handleClassifyDocument)

	summarizeTool := mcp.NewTool(
		"legal_summarize",
		mcp.WithDescription(descriptions.SummarizeDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text to summarize"),
		),
		mcp.WithNumber("max_length",
			mcp.Description("Maximum summary length in words (default 150)"),
		),
	)
	s.mcpServer.AddTool(summarizeTool, s.handleSummarize)

	answerQuestionTool := mcp.NewTool(
		"legal_answer_question",
		mcp.WithDescription(descriptions.AnswerQuestionDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text providing the answer context"),
		),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("Question to answer"),
		),
	)
	s.mcpServer.AddTool(answerQuestionTool, s.handleAnswerQuestion)

	analyzeSentimentTool := mcp.NewTool(
		"legal_analyze_sentiment",
		mcp.WithDescription(descriptions.AnalyzeSentimentDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to score"),
		),
	)
	s.mcpServer.AddTool(analyzeSentimentTool, s.handleAnalyzeSentiment)

	validateFileTool := mcp.NewTool(
		"legal_validate_file",
		mcp.WithDescription(descriptions.ValidateFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	readFileTool := mcp.NewTool(
		"legal_read_file",
		mcp.WithDescription(descriptions.ReadFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(readFileTool, s.handleReadFile)

	analyzeFileTool := mcp.NewTool(
		"legal_analyze_file",
		mcp.WithDescription(descriptions.AnalyzeFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("language",
			mcp.Description("Language tag ('en' or 'ar'); detected automatically if empty"),
		),
	)
	s.mcpServer.AddTool(analyzeFileTool, s.handleAnalyzeFile)

	serverInfoTool := mcp.NewTool(
		"legal_server_info",
		mcp.WithDescription(descriptions.ServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions

func (s *Server) handleAnalyzeContract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	language := optionalString(request, "language")

	result, err := s.analysis.AnalyzeContract(ctx, text, language)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func (s *Server) handleExtractEntities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	language := optionalString(request, "language")

	result, err := s.analysis.ExtractEntities(ctx, text, language)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func (s *Server) handleClassifyDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	language := optionalString(request, "language")

	result, err := s.analysis.ClassifyDocument(ctx, text, language)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func (s *Server) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	maxLength := 0
	if v, ok := request.GetArguments()["max_length"].(float64); ok {
		maxLength = int(v)
	}

	summary, err := s.analysis.Summarize(ctx, text, maxLength)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{"summary": summary})
}

func (s *Server) handleAnswerQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	answer, err := s.analysis.AnswerQuestion(ctx, text, question)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(answer)
}

func (s *Server) handleAnalyzeSentiment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.analysis.AnalyzeSentiment(ctx, text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if err := s.pdfService.Validate(path); err != nil {
		responseText = fmt.Sprintf("PDF validation failed for %s: %v", path, err)
	} else {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", path)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleReadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.pdfService.ExtractText(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Successfully read PDF: %s\n", doc.Path)
	responseText += fmt.Sprintf("Pages: %d\n", doc.Pages)
	responseText += fmt.Sprintf("Size: %d bytes\n", doc.Size)
	responseText += "\nContent:\n"
	responseText += doc.Text

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleAnalyzeFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	language := optionalString(request, "language")

	doc, err := s.pdfService.ExtractText(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.analysis.AnalyzeContract(ctx, doc.Text, language)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := map[string]any{
		"server_name":        s.config.ServerName,
		"version":            s.config.Version,
		"document_directory": s.config.DocumentDirectory,
		"max_file_size":      s.config.MaxFileSize,
		"models_loaded":      s.analysis.ModelAvailability(),
		"tools": []string{
			"legal_analyze_contract",
			"legal_extract_entities",
			"legal_classify_document",
			"legal_summarize",
			"legal_answer_question",
			"legal_analyze_sentiment",
			"legal_validate_file",
			"legal_read_file",
			"legal_analyze_file",
			"legal_server_info",
		},
	}

	return jsonResult(info)
}

// optionalString reads an optional string argument, defaulting to "".
func optionalString(request mcp.CallToolRequest, name string) string {
	if v, ok := request.GetArguments()[name].(string); ok {
		return v
	}
	return ""
}

// jsonResult marshals v as indented JSON tool output.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting legal analyzer MCP server in stdio mode")
		log.Printf("Document directory: %s", s.config.DocumentDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	log.Printf("Starting legal analyzer MCP server on %s", s.config.Address())

	httpServer := server.NewStreamableHTTPServer(s.mcpServer)
	if err := httpServer.Start(s.config.Address()); err != nil {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}
