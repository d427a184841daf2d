package pdfvalidation

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidatePDFBytesRejectsNonPDF(t *testing.T) {
	result, err := ValidatePDFBytes([]byte("this is plain text"), UploadLimits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes returned internal error: %v", err)
	}

	if result.Valid {
		t.Error("expected a non-PDF payload to be invalid")
	}
	if !strings.Contains(result.Error, "missing PDF header") {
		t.Errorf("expected a header error, got %q", result.Error)
	}
}

func TestValidatePDFBytesRejectsOversizedFile(t *testing.T) {
	limits := PDFLimits{MaxFileSizeMB: 1, MaxPages: 10}
	content := make([]byte, 2*1024*1024)

	result, err := ValidatePDFBytes(content, limits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes returned internal error: %v", err)
	}

	if result.Valid {
		t.Error("expected an oversized payload to be invalid")
	}
	if !strings.Contains(result.Error, "exceeds maximum allowed size") {
		t.Errorf("expected a size error, got %q", result.Error)
	}
	if result.FileSize != int64(len(content)) {
		t.Errorf("expected recorded size %d, got %d", len(content), result.FileSize)
	}
}

func TestValidatePDFBytesRejectsCorruptPDF(t *testing.T) {
	// Valid header but no usable cross-reference structure
	content := []byte("%PDF-1.7\ngibberish body with no xref\n")

	result, err := ValidatePDFBytes(content, UploadLimits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes returned internal error: %v", err)
	}

	if result.Valid {
		t.Error("expected a corrupt PDF to be invalid")
	}
	if result.Error == "" {
		t.Error("expected an error message for a corrupt PDF")
	}
}

func TestSanitizePDFTrimsTrailingGarbage(t *testing.T) {
	doc := []byte("%PDF-1.4\nbody\n%%EOF\n")
	padded := append(append([]byte{}, doc...), []byte("GARBAGEGARBAGE")...)

	cleaned := sanitizePDF(padded)
	if !bytes.Equal(cleaned, doc) {
		t.Errorf("expected trailing garbage to be trimmed, got %q", cleaned)
	}
}

func TestSanitizePDFLeavesNonPDFAlone(t *testing.T) {
	content := []byte("not a pdf at all")
	if !bytes.Equal(sanitizePDF(content), content) {
		t.Error("expected non-PDF content to pass through unchanged")
	}
}
