// Package pdf provides document ingestion for the analyzer: plain-text
// extraction and structural validation of PDF files.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxTextSize caps extracted text at 10MB regardless of file size.
const maxTextSize = 10 * 1024 * 1024

// Document is the extraction result handed to the analysis layer.
type Document struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
	Size  int64  `json:"size"`
	Text  string `json:"text"`
}

// Service reads and validates PDF files under a configured size limit.
type Service struct {
	maxFileSize int64
	conf        *model.Configuration
}

// NewService creates a PDF service. Validation runs in relaxed mode so
// real-world contracts with minor structural defects still parse.
func NewService(maxFileSize int64) *Service {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Service{
		maxFileSize: maxFileSize,
		conf:        conf,
	}
}

// ExtractText extracts the plain text of every page of the PDF at path.
// Pages that fail to decode are skipped; the result carries whatever text
// the rest of the document yields.
func (s *Service) ExtractText(path string) (*Document, error) {
	info, err := s.statFile(path)
	if err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if builder.Len()+len(content) > maxTextSize {
			remaining := maxTextSize - builder.Len()
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		if pageNum < reader.NumPage() {
			builder.WriteString("\n\n")
		}
	}

	return &Document{
		Path:  path,
		Pages: reader.NumPage(),
		Size:  info.Size(),
		Text:  builder.String(),
	}, nil
}

// Validate checks that path names a structurally valid PDF within the size
// limit.
func (s *Service) Validate(path string) error {
	if _, err := s.statFile(path); err != nil {
		return err
	}
	if err := api.ValidateFile(path, s.conf); err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	return nil
}

// IsValid reports whether path passes Validate.
func (s *Service) IsValid(path string) bool {
	return s.Validate(path) == nil
}

// statFile performs the shared file-level checks: existence, regular file,
// .pdf extension, non-empty, size limit.
func (s *Service) statFile(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, fmt.Errorf("file is not a PDF: %s", path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}
	if info.Size() > s.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)", info.Size(), s.maxFileSize)
	}

	return info, nil
}
