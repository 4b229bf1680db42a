package extract_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/extract"
)

func TestText_TXT(t *testing.T) {
	content := "This agreement is made between the employer and the employee."

	got, err := extract.Text("contract.txt", strings.NewReader(content))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != content {
		t.Fatalf("expected %q, got %q", content, got)
	}
}

func TestText_TXT_InvalidUTF8(t *testing.T) {
	_, err := extract.Text("contract.txt", bytes.NewReader([]byte{0xff, 0xfe, 0xfd}))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestText_DOCX(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph of the contract.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph about </w:t></w:r><w:r><w:t>liability.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(docXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	got, err := extract.Text("contract.docx", &buf)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	if !strings.Contains(got, "First paragraph of the contract.") {
		t.Fatalf("missing first paragraph in %q", got)
	}
	// Runs within one paragraph are joined; paragraphs become lines.
	if !strings.Contains(got, "Second paragraph about liability.") {
		t.Fatalf("missing joined second paragraph in %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected newline between paragraphs in %q", got)
	}
}

func TestText_DOCX_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("word/other.xml")
	f.Write([]byte("<x/>"))
	zw.Close()

	_, err := extract.Text("contract.docx", &buf)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestText_PDF_Corrupt(t *testing.T) {
	_, err := extract.Text("contract.pdf", strings.NewReader("not a real pdf"))
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

func TestText_UnsupportedFormat(t *testing.T) {
	_, err := extract.Text("contract.odt", strings.NewReader("text"))
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestText_TooLarge(t *testing.T) {
	big := bytes.NewReader(make([]byte, extract.MaxUploadBytes+1))
	_, err := extract.Text("contract.txt", big)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized upload, got %v", err)
	}
}
