package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/scantab"
	"github.com/tsawler/scantab/config"
	"github.com/tsawler/scantab/export"
	"github.com/tsawler/scantab/model"
	"github.com/tsawler/scantab/ocr"
	"github.com/tsawler/scantab/render"
)

var (
	dpi       int
	lang      string
	hocrFiles []string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.pdf> <output.xlsx>",
	Short: "Convert a scanned PDF's tables into an XLSX workbook",
	Long: `Convert rasterizes each page of the input PDF, runs OCR, reconstructs
the table structure, and writes one sheet per detected table.

With --hocr, pre-produced hOCR files are parsed instead of rendering and
running OCR; the input PDF argument is then ignored for fragment extraction.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().IntVar(&dpi, "dpi", render.DefaultDPI, "rasterization resolution")
	convertCmd.Flags().StringVar(&lang, "lang", "eng", "OCR language(s), e.g. eng or eng+deu")
	convertCmd.Flags().StringSliceVar(&hocrFiles, "hocr", nil, "pre-produced hOCR files, one per page (skips rendering and OCR)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	pages, err := collectFragments(cmd, inputPath)
	if err != nil {
		return err
	}

	pipeline := scantab.New(cfg)

	var tables []*model.Table
	for i, fragments := range pages {
		logger := slog.With("page", i+1, "fragments", len(fragments))

		result, err := pipeline.Reconstruct(fragments)
		if errors.Is(err, scantab.ErrEmptyRegionSet) {
			logger.Warn("no table regions found")
			continue
		}
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}

		for _, w := range result.Warnings {
			logger.Debug("reconstruction warning", "stage", w.Stage, "message", w.Message)
		}
		for _, skipped := range result.Skipped {
			logger.Warn("skipped region", "error", skipped.Err)
		}

		logger.Info("reconstructed tables", "tables", len(result.Tables), "skipped", len(result.Skipped))
		tables = append(tables, result.Tables...)
	}

	if len(tables) == 0 {
		return fmt.Errorf("no tables extracted from %s", inputPath)
	}

	if err := export.SaveWorkbook(outputPath, tables); err != nil {
		return err
	}
	slog.Info("wrote workbook", "path", outputPath, "tables", len(tables))
	return nil
}

// collectFragments produces one fragment set per page, either by parsing
// pre-produced hOCR files or by rendering the PDF and running OCR.
func collectFragments(cmd *cobra.Command, inputPath string) ([][]model.TextFragment, error) {
	if len(hocrFiles) > 0 {
		pages := make([][]model.TextFragment, 0, len(hocrFiles))
		for _, path := range hocrFiles {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read hOCR file: %w", err)
			}
			fragments, err := ocr.ParseHOCR(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			pages = append(pages, fragments)
		}
		return pages, nil
	}

	slog.Info("rasterizing PDF", "path", inputPath, "dpi", dpi)
	images, err := render.Pages(cmd.Context(), inputPath, dpi)
	if err != nil {
		return nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return nil, err
	}

	pages := make([][]model.TextFragment, 0, len(images))
	for i, data := range images {
		img, format, err := render.DecodeImage(data)
		if err != nil {
			return nil, fmt.Errorf("page %d raster unreadable: %w", i+1, err)
		}
		bounds := img.Bounds()
		slog.Debug("decoded page raster",
			"page", i+1, "format", format,
			"width", bounds.Dx(), "height", bounds.Dy())

		fragments, err := client.Fragments(data)
		if err != nil {
			return nil, fmt.Errorf("OCR on page %d: %w", i+1, err)
		}
		pages = append(pages, fragments)
	}
	return pages, nil
}
