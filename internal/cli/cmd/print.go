package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pagecore/internal/cli"
	"github.com/bnema/pagecore/internal/cli/styles"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/printing"
	"github.com/bnema/pagecore/internal/page"
)

// printViewport is the layout width used to paginate printed documents.
var printViewport = entity.Size{Width: 800, Height: 1100}

var (
	printOutput        string
	printFormat        string
	printPagesPerSheet int
	printLandscape     bool
	printPreview       string
	printPreviewSize   string
)

var printCmd = &cobra.Command{
	Use:   "print <file|url>",
	Short: "Export a document to PDF or PostScript",
	Long: `Load a document in a headless page and spool every sheet of it through
the print session. Several pages can be packed on one sheet.

Paper size, margins and the PostScript level come from the [printing]
section of the config file.

Examples:
  pagecore print index.html -o index.pdf
  pagecore print index.html --format ps --pages-per-sheet 4 -o index.ps
  pagecore print index.html --landscape --preview first.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().StringVarP(&printOutput, "output", "o", "page.pdf", "document file to write")
	printCmd.Flags().StringVar(&printFormat, "format", "pdf", "output format: pdf or ps")
	printCmd.Flags().IntVar(&printPagesPerSheet, "pages-per-sheet", 0, "pages per sheet: 1, 2, 4, 6 or 9 (default from config)")
	printCmd.Flags().BoolVar(&printLandscape, "landscape", false, "lay sheets out in landscape")
	printCmd.Flags().StringVar(&printPreview, "preview", "", "also write the first sheet as PNG")
	printCmd.Flags().StringVar(&printPreviewSize, "preview-size", "300x424", "preview size as WIDTHxHEIGHT")
}

func runPrint(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	job := printing.Job{
		Params:           app.Config.PrintParams(),
		PrintBackgrounds: app.Config.Printing.PrintBackgrounds,
		Level:            app.Config.Printing.PostScriptLevel,
		OutputFile:       printOutput,
		Title:            args[0],
	}
	if printPagesPerSheet > 0 {
		job.PagesPerSheet = printPagesPerSheet
	}
	if cmd.Flags().Changed("landscape") {
		job.Landscape = printLandscape
	}

	ctx := app.Context()
	coord, err := app.NewCoordinator(ctx, cli.CoordinatorOptions{})
	if err != nil {
		return err
	}
	defer coord.Terminate()

	host := cli.NewHeadlessHost(app.Logger)
	s, err := loadHeadlessPage(coord, host, args[0], printViewport)
	if err != nil {
		return err
	}
	if title := host.Title(); title != "" {
		job.Title = title
	}

	sheets, err := spool(s, job, printFormat)
	if err != nil {
		return err
	}

	r := styles.NewMessageRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderWritten(fmt.Sprintf("%d sheets", sheets), printOutput))
	if printPreview != "" {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderWritten("preview", printPreview))
	}
	return nil
}

// spool runs a whole job on s. The first sheet is kept for the preview.
func spool(s *page.Session, job printing.Job, format string) (int, error) {
	var err error
	switch format {
	case "pdf":
		err = s.PDF(job)
	case "ps", "postscript":
		err = s.Print(job)
	default:
		return 0, fmt.Errorf("unknown format %q: want pdf or ps", format)
	}
	if err != nil {
		return 0, err
	}

	sheets := s.PrintSheetCount()
	for sheet := range sheets {
		if err := s.PrintSpool(sheet); err != nil {
			_ = s.PrintingFinished()
			return 0, fmt.Errorf("spool sheet %d: %w", sheet, err)
		}
		if sheet == 0 && printPreview != "" {
			if err := writePreview(s); err != nil {
				_ = s.PrintingFinished()
				return 0, err
			}
		}
	}
	if err := s.PrintingFinished(); err != nil {
		return 0, err
	}
	return sheets, nil
}

func writePreview(s *page.Session) error {
	size, err := parseSize(printPreviewSize)
	if err != nil {
		return err
	}
	img := s.PrintPreview(size.Width, size.Height)
	if img == nil {
		return fmt.Errorf("print preview unavailable")
	}
	f, err := os.Create(printPreview)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()
	return png.Encode(f, img)
}
