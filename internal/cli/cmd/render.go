package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/pagecore/internal/cli"
	"github.com/bnema/pagecore/internal/cli/styles"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/infrastructure/content"
	"github.com/bnema/pagecore/internal/page"
	"github.com/bnema/pagecore/internal/process"
)

const (
	headlessPageID  entity.PageID  = 1
	headlessFrameID entity.FrameID = 1
)

var (
	renderOutput string
	renderSize   string
	renderScroll int
	renderScale  float64
)

var renderCmd = &cobra.Command{
	Use:   "render <file|url|about:blank>",
	Short: "Paint a document to a PNG image",
	Long: `Load a document in a headless page, paint the visible viewport through
the draw surface and write it as PNG.

Examples:
  pagecore render about:blank -o blank.png
  pagecore render index.html --size 1024x768 -o page.png
  pagecore render https://example.com --scroll 400 -o below.png`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "page.png", "PNG file to write")
	renderCmd.Flags().StringVar(&renderSize, "size", "800x600", "viewport size as WIDTHxHEIGHT")
	renderCmd.Flags().IntVar(&renderScroll, "scroll", 0, "vertical scroll offset before painting")
	renderCmd.Flags().Float64Var(&renderScale, "scale", 1, "page scale factor")
}

func runRender(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	size, err := parseSize(renderSize)
	if err != nil {
		return err
	}

	ctx := app.Context()
	coord, err := app.NewCoordinator(ctx, cli.CoordinatorOptions{})
	if err != nil {
		return err
	}
	defer coord.Terminate()

	host := cli.NewHeadlessHost(app.Logger)
	s, err := loadHeadlessPage(coord, host, args[0], size)
	if err != nil {
		return err
	}
	if renderScale != 1 {
		s.ScalePage(renderScale, entity.Point{})
	}
	if renderScroll != 0 {
		s.SetScroll(entity.Point{Y: renderScroll})
	}

	target := cli.NewImageTarget(size)
	s.Draw(target, 0, 0, size.Width, size.Height, true)
	coord.Yield()
	if err := target.WritePNG(renderOutput); err != nil {
		return err
	}

	r := styles.NewMessageRenderer(app.Theme)
	if title := host.Title(); title != "" {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderInfo("Title", title))
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderWritten(fmt.Sprintf("%dx%d", size.Width, size.Height), renderOutput))
	return nil
}

// loadHeadlessPage creates the single page of a CLI run and loads arg in it.
func loadHeadlessPage(coord *process.Coordinator, host *cli.HeadlessHost, arg string, size entity.Size) (*page.Session, error) {
	url, err := content.DocumentURL(arg)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", arg, err)
	}
	s, err := coord.CreateWebPage(process.CreatePageParams{
		ID:          headlessPageID,
		MainFrameID: headlessFrameID,
		Host:        host.Host(),
	})
	if err != nil {
		return nil, err
	}
	s.SetVisibleSize(size)
	if err := s.Load(url, false); err != nil {
		return nil, err
	}
	coord.Yield()
	if err := host.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// parseSize parses WIDTHxHEIGHT.
func parseSize(s string) (entity.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return entity.Size{}, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return entity.Size{}, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return entity.Size{}, fmt.Errorf("invalid height in %q", s)
	}
	return entity.Size{Width: width, Height: height}, nil
}
