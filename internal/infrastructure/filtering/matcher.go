package filtering

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dlclark/regexp2"
	"golang.org/x/net/publicsuffix"
)

// ErrInvalidRule is returned for a rule whose trigger cannot be compiled.
var ErrInvalidRule = errors.New("invalid content blocker rule")

const matchTimeout = 50 * time.Millisecond

type compiledRule struct {
	filter       *regexp2.Regexp
	ifDomain     []string
	unlessDomain []string
	firstParty   bool
	thirdParty   bool
	action       string
}

// Matcher evaluates content-blocker rules in order. The last matching rule
// wins; an ignore-previous-rules match cancels every earlier block.
type Matcher struct {
	rules   []compiledRule
	skipped int
}

// NewMatcher compiles rules. Rules with actions other than block and
// ignore-previous-rules are counted as skipped.
func NewMatcher(rules []Rule) (*Matcher, error) {
	m := &Matcher{rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		if r.Action.Type != ActionBlock && r.Action.Type != ActionIgnorePreviousRules {
			m.skipped++
			continue
		}
		c, err := compileRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		m.rules = append(m.rules, c)
	}
	return m, nil
}

func compileRule(r Rule) (compiledRule, error) {
	if r.Trigger.URLFilter == "" {
		return compiledRule{}, fmt.Errorf("%w: empty url-filter", ErrInvalidRule)
	}
	if len(r.Trigger.IfDomain) > 0 && len(r.Trigger.UnlessDomain) > 0 {
		return compiledRule{}, fmt.Errorf("%w: if-domain and unless-domain are exclusive", ErrInvalidRule)
	}
	var opts regexp2.RegexOptions = regexp2.ECMAScript | regexp2.IgnoreCase
	if cs := r.Trigger.URLFilterIsCaseSensitive; cs != nil && *cs {
		opts = regexp2.ECMAScript
	}
	re, err := regexp2.Compile(r.Trigger.URLFilter, opts)
	if err != nil {
		return compiledRule{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	re.MatchTimeout = matchTimeout

	c := compiledRule{
		filter:       re,
		ifDomain:     lowerAll(r.Trigger.IfDomain),
		unlessDomain: lowerAll(r.Trigger.UnlessDomain),
		action:       r.Action.Type,
	}
	for _, lt := range r.Trigger.LoadType {
		switch lt {
		case LoadTypeFirstParty:
			c.firstParty = true
		case LoadTypeThirdParty:
			c.thirdParty = true
		default:
			return compiledRule{}, fmt.Errorf("%w: unknown load-type %q", ErrInvalidRule, lt)
		}
	}
	return c, nil
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// ParseRules decodes a content-blocker JSON array.
func ParseRules(data []byte) ([]Rule, error) {
	var rules []Rule
	if err := sonic.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse content blocker rules: %w", err)
	}
	return rules, nil
}

// LoadFiles parses and compiles the rules of every file, in order.
func LoadFiles(paths []string) (*Matcher, error) {
	var all []Rule
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		rules, err := ParseRules(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, rules...)
	}
	return NewMatcher(all)
}

// LoadDir compiles every *.json rule file in dir, sorted by name. The
// manifest is not a rule file and is skipped.
func LoadDir(dir string) (*Matcher, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	files := paths[:0]
	for _, p := range paths {
		if filepath.Base(p) != FilterFiles.Manifest {
			files = append(files, p)
		}
	}
	return LoadFiles(files)
}

// Len returns the number of active rules.
func (m *Matcher) Len() int { return len(m.rules) }

// Skipped returns how many rules had unsupported actions.
func (m *Matcher) Skipped() int { return m.skipped }

// ShouldBlock reports whether a request for rawURL issued by the document at
// documentURL is blocked.
func (m *Matcher) ShouldBlock(rawURL, documentURL string) bool {
	if m == nil || len(m.rules) == 0 {
		return false
	}
	reqHost := hostOf(rawURL)
	docHost := hostOf(documentURL)
	thirdParty := docHost != "" && registrable(reqHost) != registrable(docHost)

	blocked := false
	for i := range m.rules {
		r := &m.rules[i]
		if !r.applies(rawURL, docHost, thirdParty) {
			continue
		}
		blocked = r.action == ActionBlock
	}
	return blocked
}

func (r *compiledRule) applies(rawURL, docHost string, thirdParty bool) bool {
	if r.firstParty != r.thirdParty {
		if thirdParty && !r.thirdParty {
			return false
		}
		if !thirdParty && !r.firstParty {
			return false
		}
	}
	if len(r.ifDomain) > 0 && !domainListMatches(r.ifDomain, docHost) {
		return false
	}
	if len(r.unlessDomain) > 0 && domainListMatches(r.unlessDomain, docHost) {
		return false
	}
	ok, err := r.filter.MatchString(rawURL)
	return err == nil && ok
}

// domainListMatches matches host against entries. A leading '*' also
// matches subdomains.
func domainListMatches(entries []string, host string) bool {
	if host == "" {
		return false
	}
	for _, d := range entries {
		if base, ok := strings.CutPrefix(d, "*"); ok {
			if host == base || strings.HasSuffix(host, "."+base) {
				return true
			}
			continue
		}
		if host == d {
			return true
		}
	}
	return false
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// registrable returns the eTLD+1 of host, or host itself for IPs and bare
// suffixes.
func registrable(host string) string {
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return d
}
