package extract

import (
	"errors"
	"testing"
)

func TestKindForFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     Kind
		ok       bool
	}{
		{"report.pdf", KindPDF, true},
		{"Report.PDF", KindPDF, true},
		{"scan.png", KindImage, true},
		{"scan.jpg", KindImage, true},
		{"scan.JPEG", KindImage, true},
		{"menu.docx", "", false},
		{"noextension", "", false},
	}

	for _, c := range cases {
		kind, err := KindForFilename(c.filename)
		if c.ok && (err != nil || kind != c.want) {
			t.Errorf("KindForFilename(%q) = %s, %v", c.filename, kind, err)
		}
		if !c.ok && !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("KindForFilename(%q): expected ErrUnsupportedType, got %v", c.filename, err)
		}
	}
}

func TestFromFileRejectsUnknownKind(t *testing.T) {
	_, err := FromFile("whatever", Kind("spreadsheet"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
