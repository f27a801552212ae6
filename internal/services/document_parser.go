package services

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"workassist/cv-analyzer/internal/logger"
)

type DocumentParserService interface {
	ExtractText(ctx context.Context, r io.Reader, filename string) string
}

type documentFormat int

const (
	formatPDF documentFormat = iota
	formatDOCX
	formatText
)

var (
	pdfMagic = []byte("%PDF")
	zipMagic = []byte("PK\x03\x04")
)

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractText reads the whole document and returns its text. Unreadable or
// malformed documents yield an empty string; errors and parser panics are only
// logged.
func (p *documentParserService) ExtractText(ctx context.Context, r io.Reader, filename string) (text string) {
	log := logger.FromContext(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			log.Warn().Interface("panic", rec).Str("filename", filename).Msg("⚠️ Document parser panicked")
			text = ""
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("⚠️ Failed to read uploaded document")
		return ""
	}

	extracted, err := extractDocumentText(data, filename)
	if err != nil {
		log.Warn().Err(err).Str("filename", filename).Int("size", len(data)).Msg("⚠️ Document text extraction failed")
		return ""
	}

	return CleanText(extracted)
}

func extractDocumentText(data []byte, filename string) (string, error) {
	switch detectFormat(data, filename) {
	case formatDOCX:
		return extractDOCXText(data)
	case formatText:
		return string(data), nil
	default:
		return extractPDFText(data)
	}
}

// detectFormat trusts the file content first. Unknown content is handed to
// the PDF reader, which rejects it.
func detectFormat(data []byte, filename string) documentFormat {
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return formatPDF
	case bytes.HasPrefix(data, zipMagic) && ext == ".docx":
		return formatDOCX
	case ext == ".txt" && utf8.Valid(data):
		return formatText
	default:
		return formatPDF
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Keep the pages that did decode.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return wordprocessingMLText(doc.Editable().GetContent())
}

// wordprocessingMLText flattens document.xml into text: run text is kept,
// tabs and breaks are preserved and each paragraph ends a line.
func wordprocessingMLText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	dec.Strict = false

	var b strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read docx body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString("\t")
			case "br", "cr":
				b.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
