package format

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{HTML, "HTML"},
		{Text, "Text"},
		{Image, "Image"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.pdf", PDF},
		{"REPORT.PDF", PDF},
		{"index.html", HTML},
		{"index.htm", HTML},
		{"page.xhtml", HTML},
		{"notes.txt", Text},
		{"notes.text", Text},
		{"readme.md", Text},
		{"scan.png", Image},
		{"scan.jpg", Image},
		{"scan.jpeg", Image},
		{"scan.tiff", Image},
		{"scan.bmp", Image},
		{"archive.docx", Unknown},
		{"noextension", Unknown},
		{"dir/report.pdf", PDF},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
