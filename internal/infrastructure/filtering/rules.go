package filtering

// Rule is one WebKit content-blocker rule.
type Rule struct {
	Trigger Trigger `json:"trigger"`
	Action  Action  `json:"action"`
}

// Trigger selects the requests a rule applies to.
type Trigger struct {
	URLFilter                string   `json:"url-filter"`
	URLFilterIsCaseSensitive *bool    `json:"url-filter-is-case-sensitive,omitempty"`
	IfDomain                 []string `json:"if-domain,omitempty"`
	UnlessDomain             []string `json:"unless-domain,omitempty"`
	ResourceType             []string `json:"resource-type,omitempty"`
	LoadType                 []string `json:"load-type,omitempty"`
}

// Action is what happens when a rule matches.
type Action struct {
	Type     string `json:"type"`
	Selector string `json:"selector,omitempty"`
}

// Action types.
const (
	ActionBlock               = "block"
	ActionIgnorePreviousRules = "ignore-previous-rules"
	ActionBlockCookies        = "block-cookies"
	ActionCSSDisplayNone      = "css-display-none"
)

// Load types.
const (
	LoadTypeFirstParty = "first-party"
	LoadTypeThirdParty = "third-party"
)
