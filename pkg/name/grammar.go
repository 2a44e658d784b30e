package name

import (
	"regexp"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/wuxler/pintname/pkg/name/internal"
	"github.com/wuxler/pintname/pkg/name/internal/xregexp"
)

// layouts binds each provider to the naming convention fragments it uses on
// top of the shared grammar. Read-only after initialization.
var layouts = map[Provider]internal.Layout{
	Amazon:    {EC2Suffix: true},
	Microsoft: {UUIDPrefix: true, AzureHosted: true},
	Google:    {},
	Oracle:    {},
	Alibaba:   {},
}

// grammars caches the compiled grammar of each provider. Compilation is lazy
// and happens at most once per provider.
var grammars = xsync.NewMapOf[Provider, *Grammar]()

// Grammar is the compiled naming convention of a single provider.
type Grammar struct {
	provider Provider
	re       *regexp.Regexp
}

// LookupGrammar resolves a provider key to the compiled grammar of the
// provider. The key accepts the same spellings as ParseProvider.
func LookupGrammar(key string) (*Grammar, error) {
	p, err := ParseProvider(key)
	if err != nil {
		return nil, err
	}
	g, _ := grammars.LoadOrCompute(p, func() *Grammar {
		return &Grammar{
			provider: p,
			re:       regexp.MustCompile(internal.Pattern(layouts[p])),
		}
	})
	return g, nil
}

// MustLookupGrammar wraps LookupGrammar with error panic.
func MustLookupGrammar(key string) *Grammar {
	g, err := LookupGrammar(key)
	if err != nil {
		panic(err)
	}
	return g
}

// Provider returns the provider the grammar belongs to.
func (g *Grammar) Provider() Provider {
	return g.provider
}

// Expression returns the regular expression source of the grammar.
func (g *Grammar) Expression() string {
	return g.re.String()
}

// FieldNames returns the named capture groups of the grammar in match order.
func (g *Grammar) FieldNames() []string {
	names := []string{}
	for i, group := range g.re.SubexpNames() {
		if i == 0 || group == "" {
			continue
		}
		names = append(names, group)
	}
	return names
}

// match runs the grammar against the image name and returns the named
// captures, or false when the name does not match.
func (g *Grammar) match(image string) (map[string]string, bool) {
	captures, _ := xregexp.SubmatchCaptures(g.re, image)
	if captures == nil {
		return nil, false
	}
	return captures, true
}
