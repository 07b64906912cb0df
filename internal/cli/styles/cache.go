package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/pagecore/internal/domain/cachemodel"
	"github.com/bnema/pagecore/internal/domain/entity"
)

// CapacityRow is one cache model line of the capacity table.
type CapacityRow struct {
	Model      entity.CacheModel
	Capacities cachemodel.Capacities
	// DiskBytes is the default disk quota, zero when the volume is unknown.
	DiskBytes uint64
}

// CacheRenderer renders cache sizing output.
type CacheRenderer struct {
	theme *Theme
}

// NewCacheRenderer creates a cache renderer with the given theme.
func NewCacheRenderer(theme *Theme) *CacheRenderer {
	return &CacheRenderer{theme: theme}
}

// RenderHeader renders the machine summary above the table.
func (r *CacheRenderer) RenderHeader(ramMB, freeDiskMB uint64, dir string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s %s\n", r.theme.Title.Render("RAM"), r.theme.Highlight.Render(FormatBytes(ramMB*1024*1024)))
	if dir != "" {
		fmt.Fprintf(&b, "  %s %s %s\n",
			r.theme.Title.Render("Disk"),
			r.theme.Highlight.Render(FormatBytes(freeDiskMB*1024*1024)),
			r.theme.Subtle.Render("free in "+dir))
	}
	return b.String()
}

// RenderCapacities renders one row per model. The active model is
// highlighted.
func (r *CacheRenderer) RenderCapacities(rows []CapacityRow, active entity.CacheModel) string {
	activeRow := -1
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("Model", "Total", "Min dead", "Max dead", "Pages", "Dead decoded", "Disk")
	for i, row := range rows {
		if row.Model == active {
			activeRow = i
		}
		c := row.Capacities
		interval := "keep"
		if c.DeadDecodedDataDeletionInterval > 0 {
			interval = c.DeadDecodedDataDeletionInterval.String()
		}
		disk := "-"
		if row.DiskBytes > 0 {
			disk = FormatBytes(row.DiskBytes)
		}
		t.Row(
			row.Model.String(),
			FormatBytes(c.TotalBytes),
			FormatBytes(c.MinDeadBytes),
			FormatBytes(c.MaxDeadBytes),
			strconv.Itoa(c.PageCacheSize),
			interval,
			disk,
		)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch row {
		case table.HeaderRow:
			return r.theme.TableHeader
		case activeRow:
			return r.theme.TableActive
		default:
			return r.theme.TableCell
		}
	})
	return t.String()
}

// FormatBytes formats n with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatUint(n, 10) + " B"
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
