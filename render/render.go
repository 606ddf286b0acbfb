// Package render rasterizes PDF pages into images suitable for OCR.
//
// Rendering shells out to pdftoppm (poppler-utils), which rasterizes the
// full page; extracting embedded image objects instead would not preserve
// page order or drawn content. pdfcpu is used to validate the input and
// count pages before any rendering starts.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	// Register decoders for the raster formats scanned input arrives in.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DefaultDPI is the rasterization resolution. 300 DPI is the usual floor
// for reliable OCR on scanned tables.
const DefaultDPI = 300

// PageCount returns the number of pages in a PDF.
func PageCount(pdfPath string) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF page count: %w", err)
	}
	return count, nil
}

// Page rasterizes a single page (1-indexed) of a PDF to PNG bytes at the
// given DPI. A dpi of 0 uses DefaultDPI.
func Page(ctx context.Context, pdfPath string, pageNum, dpi int) ([]byte, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	tmpDir, err := os.MkdirTemp("", "scantab-page-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "page")
	pageStr := fmt.Sprintf("%d", pageNum)

	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", fmt.Sprintf("%d", dpi),
		"-singlefile",
		pdfPath,
		outputPrefix,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	data, err := os.ReadFile(outputPrefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}
	return data, nil
}

// Pages rasterizes every page of a PDF, in order.
func Pages(ctx context.Context, pdfPath string, dpi int) ([][]byte, error) {
	count, err := PageCount(pdfPath)
	if err != nil {
		return nil, err
	}

	images := make([][]byte, 0, count)
	for pageNum := 1; pageNum <= count; pageNum++ {
		data, err := Page(ctx, pdfPath, pageNum, dpi)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}
		images = append(images, data)
	}
	return images, nil
}

// DecodeImage decodes image bytes in any registered raster format
// (PNG, JPEG, TIFF, BMP) and reports the format name.
func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}
