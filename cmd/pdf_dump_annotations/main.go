package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/santoshrk11/acrf-pdf-extractor/internal/extract"
)

var (
	pages        = flag.Int("pages", 0, "Maximum number of pages to scan (0 = all)")
	outputFormat = flag.String("format", "json", "Output format: json, text")
	verbose      = flag.Bool("verbose", false, "Log extraction progress to stderr")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath := flag.Arg(0)
	if absPath, err := filepath.Abs(pdfPath); err == nil {
		pdfPath = absPath
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	extractor := extract.New(extract.Config{Logger: logger, MaxPages: *pages})
	doc, err := extractor.Extract(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting document: %v\n", err)
		os.Exit(1)
	}

	if err := outputResults(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("PDF Dump Annotations - print the raw extraction records for one PDF")
	fmt.Println()
	fmt.Println("Runs only the extraction stage of the aCRF pipeline and writes the raw")
	fmt.Println("record set (bookmarks, pages, annotations, styled text) to stdout.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -pages         Maximum number of pages to scan (0 = all)")
	fmt.Println("  -format        Output format: json (default), text")
	fmt.Println("  -verbose       Log extraction progress to stderr")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  pdf_dump_annotations aCRF.pdf")
	fmt.Println("  pdf_dump_annotations -pages 5 -format text study.pdf")
	fmt.Println("  pdf_dump_annotations -verbose study.pdf > study_raw.json")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdf_dump_annotations [OPTIONS] <pdf_file>")
}

func outputResults(doc *extract.RawDocument) error {
	switch *outputFormat {
	case "json":
		return outputJSON(doc)
	case "text":
		return outputText(doc)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputJSON(doc *extract.RawDocument) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(doc)
}

func outputText(doc *extract.RawDocument) error {
	fmt.Printf("Pages: %d\n", len(doc.Pages))
	fmt.Printf("Bookmarks: %d\n", len(doc.Bookmarks))
	fmt.Printf("Annotations: %d\n", len(doc.Annotations))
	fmt.Printf("Styled text spans: %d\n", len(doc.StyledText))
	fmt.Println()

	for i, a := range doc.Annotations {
		fmt.Printf("[%d] %s on page %d\n", i+1, a.Type, a.PageNumber)

		if a.Contents != "" {
			fmt.Printf("    Contents: %s\n", a.Contents)
		}
		if a.Title != "" {
			fmt.Printf("    Author: %s\n", a.Title)
		}
		if len(a.Rect) == 4 {
			fmt.Printf("    Position: (%.1f, %.1f) to (%.1f, %.1f)\n",
				a.Rect[0], a.Rect[1], a.Rect[2], a.Rect[3])
		}
		if a.StrokeColor != "" {
			fmt.Printf("    Stroke Color: %s\n", a.StrokeColor)
		}
		if a.FontName != "" {
			fmt.Printf("    Font: %s", a.FontName)
			if a.FontSize != nil {
				fmt.Printf(" %d", *a.FontSize)
			}
			fmt.Println()
		}

		fmt.Println()
	}

	return nil
}

func init() {
	flag.Usage = func() {
		printHelp()
	}
}
