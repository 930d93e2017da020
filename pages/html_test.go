package pages

import (
	"strings"
	"testing"
)

func TestNewHTMLSource(t *testing.T) {
	const doc = `<html><head><title>Ignored</title><style>p{color:red}</style></head>` +
		`<body><h1>Quarterly Report</h1><p>Revenue grew steadily.</p>` +
		`<script>var x = 1;</script><div>Closing remarks.</div></body></html>`

	src, err := NewHTMLSource(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("NewHTMLSource: %v", err)
	}

	count, _ := src.PageCount()
	if count != 1 {
		t.Fatalf("PageCount = %d, want 1 (HTML is a single page)", count)
	}

	lines, err := src.Lines(0)
	if err != nil {
		t.Fatalf("Lines(0): %v", err)
	}
	joined := strings.Join(lines, "\n")

	for _, want := range []string{"Quarterly Report", "Revenue grew steadily.", "Closing remarks."} {
		if !strings.Contains(joined, want) {
			t.Errorf("flattened text missing %q:\n%s", want, joined)
		}
	}
	for _, reject := range []string{"var x", "color:red", "Ignored"} {
		if strings.Contains(joined, reject) {
			t.Errorf("flattened text leaked %q:\n%s", reject, joined)
		}
	}
}

func TestNewHTMLSourceBlockBoundaries(t *testing.T) {
	src, err := NewHTMLSource(strings.NewReader(
		`<body><h1>Heading</h1><p>First paragraph.</p><p>Second paragraph.</p></body>`))
	if err != nil {
		t.Fatalf("NewHTMLSource: %v", err)
	}

	lines, _ := src.Lines(0)
	var nonEmpty []string
	for _, line := range lines {
		if line != "" {
			nonEmpty = append(nonEmpty, line)
		}
	}
	want := []string{"Heading", "First paragraph.", "Second paragraph."}
	if len(nonEmpty) != len(want) {
		t.Fatalf("got %v, want %v", nonEmpty, want)
	}
	for i := range want {
		if nonEmpty[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, nonEmpty[i], want[i])
		}
	}
}
