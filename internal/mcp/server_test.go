package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/a3tai/mcp-legal-analyzer/internal/analysis"
	"github.com/a3tai/mcp-legal-analyzer/internal/catalog"
	"github.com/a3tai/mcp-legal-analyzer/internal/config"
	"github.com/a3tai/mcp-legal-analyzer/internal/pdf"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Mode:              config.ModeStdio,
		DocumentDirectory: t.TempDir(),
		MaxFileSize:       1024 * 1024,
		Version:           "1.0.0",
		ServerName:        "test-server",
		LogLevel:          "info",
	}

	analysisService := analysis.NewService(catalog.MustNew(), analysis.Models{})
	pdfService := pdf.NewService(cfg.MaxFileSize)

	server, err := NewServer(cfg, analysisService, pdfService)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server
}

func textRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}
	return ""
}

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		Mode:        config.ModeStdio,
		MaxFileSize: 1024,
		ServerName:  "test-server",
		Version:     "1.0.0",
	}
	analysisService := analysis.NewService(catalog.MustNew(), analysis.Models{})
	pdfService := pdf.NewService(cfg.MaxFileSize)

	if _, err := NewServer(cfg, nil, pdfService); err == nil {
		t.Error("Expected error for nil analysis service")
	}

	if _, err := NewServer(cfg, analysisService, nil); err == nil {
		t.Error("Expected error for nil PDF service")
	}

	server, err := NewServer(cfg, analysisService, pdfService)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if server == nil {
		t.Fatal("Expected server to be created")
	}
}

func TestHandleAnalyzeContract(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"text": "SERVICE AGREEMENT between Acme Corporation and others. Payment terms: net 30 days.",
	})

	result, err := server.handleAnalyzeContract(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "\"contract_type\": \"contract\"") {
		t.Errorf("expected contract classification in result, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Acme Corporation") {
		t.Errorf("expected party in result, got: %s", resultText)
	}
}

func TestHandleAnalyzeContractMissingText(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleAnalyzeContract(context.Background(), textRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("Expected an error result for a missing text argument")
	}
}

func TestHandleExtractEntities(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"text": "Payment of $5,000.00 due 01/15/2025.",
	})

	result, err := server.handleExtractEntities(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "01/15/2025") {
		t.Errorf("expected extracted date in result, got: %s", resultText)
	}
	if !strings.Contains(resultText, "$5,000.00") {
		t.Errorf("expected extracted monetary value in result, got: %s", resultText)
	}
}

func TestHandleClassifyDocument(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"text": "The undersigned filed a motion and a petition with the court.",
	})

	result, err := server.handleClassifyDocument(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "court_filing") {
		t.Errorf("expected court_filing classification, got: %s", resultText)
	}
}

func TestHandleClassifyDocumentLanguageOverride(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"text":     "The undersigned filed a motion and a petition with the court.",
		"language": "ar",
	})

	result, err := server.handleClassifyDocument(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "\"language\": \"ar\"") {
		t.Errorf("expected the language override in the result, got: %s", resultText)
	}
}

func TestHandleSummarize(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"text":       "First sentence. Second sentence. Third sentence. Fourth sentence.",
		"max_length": float64(50),
	})

	result, err := server.handleSummarize(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "First sentence. Second sentence. Third sentence.") {
		t.Errorf("expected extractive summary in result, got: %s", resultText)
	}
}

func TestHandleAnswerQuestionWithoutModel(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"text":     "The notice period is 30 days.",
		"question": "What is the notice period?",
	})

	result, err := server.handleAnswerQuestion(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("Expected an error result when no model is configured")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "model not available") {
		t.Errorf("expected model availability error, got: %s", resultText)
	}
}

func TestHandleAnalyzeSentiment(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"text": "A good and favorable outcome for both sides.",
	})

	result, err := server.handleAnalyzeSentiment(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "\"sentiment\": \"positive\"") {
		t.Errorf("expected positive sentiment, got: %s", resultText)
	}
}

func TestHandleValidateFile(t *testing.T) {
	server := newTestServer(t)

	testFile := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(testFile, make([]byte, 1024), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	request := textRequest(map[string]interface{}{
		"path": testFile,
	})

	result, err := server.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	// The file is not a real PDF, so validation reports failure as text
	// rather than a tool error.
	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "PDF validation failed") {
		t.Errorf("expected validation to fail, got: %s", resultText)
	}
	if result.IsError {
		t.Error("validation failure is a result, not a tool error")
	}
}

func TestHandleValidateFileMissingPath(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleValidateFile(context.Background(), textRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("Expected an error result for a missing path argument")
	}
}

func TestHandleReadFileMissingFile(t *testing.T) {
	server := newTestServer(t)

	request := textRequest(map[string]interface{}{
		"path": "/nonexistent/file.pdf",
	})

	result, err := server.handleReadFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("Expected an error result for a missing file")
	}
}

func TestHandleServerInfo(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleServerInfo(context.Background(), textRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	for _, expected := range []string{
		"test-server",
		"legal_analyze_contract",
		"legal_validate_file",
		"legal_server_info",
		"models_loaded",
	} {
		if !strings.Contains(resultText, expected) {
			t.Errorf("expected server info to contain %q, got: %s", expected, resultText)
		}
	}
}
