package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/pagecore/internal/domain/cachemodel"
	"github.com/bnema/pagecore/internal/domain/entity"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "1023 B", FormatBytes(1023))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 MiB", FormatBytes(1536*1024))
	assert.Equal(t, "2.0 GiB", FormatBytes(2<<30))
}

func TestRenderCapacities_ListsEveryModel(t *testing.T) {
	r := NewCacheRenderer(NewTheme())
	rows := []CapacityRow{
		{Model: entity.CacheModelDocumentViewer, Capacities: cachemodel.Calculate(entity.CacheModelDocumentViewer, 8192)},
		{Model: entity.CacheModelPrimaryWebBrowser, Capacities: cachemodel.Calculate(entity.CacheModelPrimaryWebBrowser, 8192), DiskBytes: 1 << 30},
	}
	out := r.RenderCapacities(rows, entity.CacheModelPrimaryWebBrowser)
	assert.Contains(t, out, "document_viewer")
	assert.Contains(t, out, "primary_web_browser")
	assert.Contains(t, out, "1.0 GiB")
	assert.Contains(t, out, "1m0s")
	assert.Contains(t, out, "keep")
}
