// Package filtering decides whether a subresource request is an ad or a
// tracker. Rules come from content-blocker JSON lists published as release
// assets; they are cached on disk and compiled into a Matcher.
package filtering

import "time"

// FilterState is the lifecycle state reported through status callbacks.
type FilterState string

const (
	StateUninitialized FilterState = "uninitialized"
	StateLoading       FilterState = "loading"
	StateActive        FilterState = "active"
	StateDisabled      FilterState = "disabled"
	StateError         FilterState = "error"
)

// FilterStatus is a snapshot of the manager state. Version is the manifest
// version of the rules currently compiled, empty before the first load.
type FilterStatus struct {
	State   FilterState
	Message string
	Version string
}

// Manifest describes one published rule set. Only Version is used to decide
// whether the cached lists are current; the rest is informational.
type Manifest struct {
	Version     string              `json:"version"`
	GeneratedAt time.Time           `json:"generated_at"`
	Lists       map[string]ListInfo `json:"lists"`
	Combined    CombinedInfo        `json:"combined"`
}

// ListInfo is the per-source entry of a manifest.
type ListInfo struct {
	Name         string `json:"name"`
	SourceURL    string `json:"source_url"`
	RulesCount   int    `json:"rules_count"`
	SkippedCount int    `json:"skipped_count"`
}

// CombinedInfo lists the merged rule files.
type CombinedInfo struct {
	TotalRules int      `json:"total_rules"`
	Files      []string `json:"files"`
}

// FilterFiles names the release assets fetched by the Downloader. The
// combined rules are split because a single content-blocker list is capped
// in size by the engines that consume the same files.
var FilterFiles = struct {
	Manifest string
	Combined []string
}{
	Manifest: "manifest.json",
	Combined: []string{"combined-part1.json", "combined-part2.json", "combined-part3.json"},
}

// GitHubReleaseURL is where the latest rule set is published.
const GitHubReleaseURL = "https://github.com/bnema/ublock-webkit-filters/releases/latest/download"
