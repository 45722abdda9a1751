package extract

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Kind is the declared document type supplied by the upload boundary.
type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

var (
	ErrNoText          = errors.New("document yielded no text")
	ErrUnsupportedType = errors.New("unsupported document type")
)

// KindForFilename maps an upload's extension to a Kind.
func KindForFilename(filename string) (Kind, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return KindPDF, nil
	case strings.HasSuffix(name, ".png"),
		strings.HasSuffix(name, ".jpg"),
		strings.HasSuffix(name, ".jpeg"):
		return KindImage, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filename)
	}
}

// FromFile extracts plain text from a document on disk. Empty extracted text
// is a failure, never an empty-but-valid result.
func FromFile(path string, kind Kind) (string, error) {
	var (
		text string
		err  error
	)

	switch kind {
	case KindPDF:
		text, err = pdfText(path)
	case KindImage:
		text, err = imageText(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}

	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}

	log.Printf("EXTRACT_DONE kind=%s chars=%d", kind, len(text))
	return text, nil
}

// pdfText concatenates text from every page in document order.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("EXTRACT_PAGE_FAILED page=%d err=%v", i, err)
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// imageText shells out to tesseract, same as the menu OCR path.
func imageText(path string) (string, error) {
	cmd := exec.Command("tesseract", path, "stdout")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
