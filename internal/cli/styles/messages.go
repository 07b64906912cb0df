package styles

import "fmt"

const (
	IconOK    = "✓"
	IconError = "✗"
	IconInfo  = "•"
)

// MessageRenderer renders single line command results.
type MessageRenderer struct {
	theme *Theme
}

// NewMessageRenderer creates a message renderer with the given theme.
func NewMessageRenderer(theme *Theme) *MessageRenderer {
	return &MessageRenderer{theme: theme}
}

// RenderWritten reports an output file.
func (r *MessageRenderer) RenderWritten(what, path string) string {
	return fmt.Sprintf("  %s %s %s",
		r.theme.SuccessStyle.Render(IconOK),
		r.theme.Normal.Render(what),
		r.theme.Subtle.Render(path))
}

// RenderInfo renders a labelled value.
func (r *MessageRenderer) RenderInfo(label, value string) string {
	return fmt.Sprintf("  %s %s %s",
		r.theme.Subtle.Render(IconInfo),
		r.theme.Title.Render(label),
		r.theme.Normal.Render(value))
}

// RenderError renders err.
func (r *MessageRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s",
		r.theme.ErrorStyle.Render(IconError),
		r.theme.ErrorStyle.Render(err.Error()))
}
