package ocr

import (
	"testing"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
<head><meta http-equiv="Content-Type" content="text/html; charset=utf-8"/></head>
<body>
  <div class="ocr_page" title="bbox 0 0 2480 3508">
    <span class="ocr_line" title="bbox 100 200 900 240">
      <span class="ocrx_word" title="bbox 100 200 300 240; x_wconf 96">Part</span>
      <span class="ocrx_word" title="bbox 320 200 520 240; x_wconf 91">Number</span>
    </span>
    <span class="ocr_line" title="bbox 100 300 900 340">
      <span class="ocrx_word" title="bbox 100 300 300 340; x_wconf 88">PN-482-4</span>
      <span class="ocrx_word" title="bbox 320 300 420 340">12.5</span>
    </span>
  </div>
</body>
</html>`

func TestParseHOCR(t *testing.T) {
	fragments, err := ParseHOCR([]byte(sampleHOCR))
	if err != nil {
		t.Fatalf("ParseHOCR failed: %v", err)
	}

	if len(fragments) != 4 {
		t.Fatalf("Expected 4 fragments, got %d", len(fragments))
	}

	first := fragments[0]
	if first.Text != "Part" {
		t.Errorf("Expected text %q, got %q", "Part", first.Text)
	}
	if first.BBox.X != 100 || first.BBox.Y != 200 {
		t.Errorf("Unexpected origin: (%f,%f)", first.BBox.X, first.BBox.Y)
	}
	if first.BBox.Width != 200 || first.BBox.Height != 40 {
		t.Errorf("Unexpected size: %fx%f", first.BBox.Width, first.BBox.Height)
	}
	if first.Confidence != 0.96 {
		t.Errorf("Expected confidence 0.96, got %f", first.Confidence)
	}
}

func TestParseHOCRDefaultConfidence(t *testing.T) {
	fragments, err := ParseHOCR([]byte(sampleHOCR))
	if err != nil {
		t.Fatalf("ParseHOCR failed: %v", err)
	}

	// The word without x_wconf gets full confidence
	last := fragments[3]
	if last.Text != "12.5" {
		t.Fatalf("Expected last fragment %q, got %q", "12.5", last.Text)
	}
	if last.Confidence != 1.0 {
		t.Errorf("Expected default confidence 1.0, got %f", last.Confidence)
	}
}

func TestParseHOCRSkipsUnusableWords(t *testing.T) {
	doc := `<html><body>
	  <span class="ocrx_word" title="x_wconf 90">no-bbox</span>
	  <span class="ocrx_word" title="bbox 0 0 10 20; x_wconf 90">   </span>
	  <span class="ocrx_word" title="bbox a b c d">bad-bbox</span>
	  <span class="ocrx_word" title="bbox 0 0 10 20">kept</span>
	</body></html>`

	fragments, err := ParseHOCR([]byte(doc))
	if err != nil {
		t.Fatalf("ParseHOCR failed: %v", err)
	}
	if len(fragments) != 1 || fragments[0].Text != "kept" {
		t.Errorf("Expected only the usable word, got %v", fragments)
	}
}

func TestParseHOCRLatin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1
	head := []byte(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=ISO-8859-1"/></head><body>` +
		`<span class="ocrx_word" title="bbox 0 0 50 20">caf`)
	tail := []byte(`</span></body></html>`)
	doc := append(append(head, 0xE9), tail...)

	fragments, err := ParseHOCR(doc)
	if err != nil {
		t.Fatalf("ParseHOCR failed: %v", err)
	}
	if len(fragments) != 1 || fragments[0].Text != "café" {
		t.Errorf("Expected decoded Latin-1 text, got %v", fragments)
	}
}

func TestParseHOCRNoWords(t *testing.T) {
	fragments, err := ParseHOCR([]byte(`<html><body><p>plain text</p></body></html>`))
	if err != nil {
		t.Fatalf("ParseHOCR failed: %v", err)
	}
	if len(fragments) != 0 {
		t.Errorf("Expected no fragments, got %d", len(fragments))
	}
}
