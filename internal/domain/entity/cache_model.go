package entity

import (
	"fmt"
	"strings"
)

// CacheModel selects memory, page and disk cache capacity presets.
type CacheModel int

const (
	// CacheModelDocumentViewer disables dead-resource retention and the page cache.
	CacheModelDocumentViewer CacheModel = iota
	// CacheModelDocumentBrowser suits a browser that mostly shows local documents.
	CacheModelDocumentBrowser
	// CacheModelPrimaryWebBrowser is the largest preset.
	CacheModelPrimaryWebBrowser
)

// AllCacheModels lists the models in ascending capacity order.
var AllCacheModels = []CacheModel{
	CacheModelDocumentViewer,
	CacheModelDocumentBrowser,
	CacheModelPrimaryWebBrowser,
}

func (m CacheModel) String() string {
	switch m {
	case CacheModelDocumentViewer:
		return "document_viewer"
	case CacheModelDocumentBrowser:
		return "document_browser"
	case CacheModelPrimaryWebBrowser:
		return "primary_web_browser"
	default:
		return fmt.Sprintf("cache_model(%d)", int(m))
	}
}

// IsValid reports whether m is a known model.
func (m CacheModel) IsValid() bool {
	return m >= CacheModelDocumentViewer && m <= CacheModelPrimaryWebBrowser
}

// ParseCacheModel parses a config value. "web_browser" is accepted as an
// alias of primary_web_browser.
func ParseCacheModel(s string) (CacheModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "document_viewer", "documentviewer":
		return CacheModelDocumentViewer, nil
	case "document_browser", "documentbrowser":
		return CacheModelDocumentBrowser, nil
	case "primary_web_browser", "primarywebbrowser", "web_browser":
		return CacheModelPrimaryWebBrowser, nil
	default:
		return 0, fmt.Errorf("unknown cache model %q", s)
	}
}
