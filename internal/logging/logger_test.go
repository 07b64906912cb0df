package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagecore/internal/domain/entity"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func jsonContext(buf *bytes.Buffer) context.Context {
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = buf
	return WithContext(context.Background(), New(cfg))
}

func TestWithPage_AddsNumericIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithComponent(jsonContext(&buf), "page")
	ctx = WithPage(ctx, entity.PageID(42), entity.FrameID(7))

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"page_id":42`)
	assert.Contains(t, buf.String(), `"frame_id":7`)
	assert.Contains(t, buf.String(), `"component":"page"`)
}

func TestWithNavigation_ScopesOneLoad(t *testing.T) {
	var buf bytes.Buffer
	base := WithSession(jsonContext(&buf), "0f8e")
	nav := WithNavigation(base, entity.NavigationID(3), "https://example.org/")

	FromContext(nav).Info().Msg("load")
	FromContext(base).Info().Msg("idle")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"navigation_id":3`)
	assert.Contains(t, lines[0], `"url":"https://example.org/"`)
	assert.Contains(t, lines[0], `"session":"0f8e"`)
	assert.NotContains(t, lines[1], FieldNavigationID, "the parent context is unchanged")
	assert.Contains(t, lines[1], `"session":"0f8e"`)
}
