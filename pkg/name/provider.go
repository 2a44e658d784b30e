package name

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/wuxler/pintname/pkg/errdefs"
)

// Provider identifies a public cloud provider by its canonical vendor name.
type Provider string

// Canonical providers covered by the naming convention.
const (
	Amazon    Provider = "amazon"
	Microsoft Provider = "microsoft"
	Google    Provider = "google"
	Oracle    Provider = "oracle"
	Alibaba   Provider = "alibaba"
)

// allProviders lists the canonical providers in stable order.
var allProviders = []Provider{Amazon, Microsoft, Google, Oracle, Alibaba}

// aliases maps each provider to the alternative keys it is known by. The
// first alias is the framework short name pint uses as the primary key.
var aliases = map[Provider][]string{
	Amazon:    {"ec2", "aws"},
	Microsoft: {"azure"},
	Google:    {"gce", "gcp"},
	Oracle:    {"oci"},
	Alibaba:   {"aliyun"},
}

// index maps lowercased canonical names and aliases to the canonical
// provider. Read-only after initialization.
var index = func() map[string]Provider {
	m := make(map[string]Provider)
	for _, p := range allProviders {
		m[string(p)] = p
		for _, alias := range aliases[p] {
			m[alias] = p
		}
	}
	return m
}()

// ParseProvider resolves key to a canonical Provider. Keys are matched
// case-insensitively and may be either the canonical vendor name or one of
// its aliases, e.g. "ec2" and "aws" both resolve to Amazon.
func ParseProvider(key string) (Provider, error) {
	if key == "" {
		return "", errdefs.Newf(ErrUnknownProvider, "provider is required")
	}
	p, ok := index[strings.ToLower(key)]
	if !ok {
		return "", errdefs.Newf(ErrUnknownProvider, "%q is not one of %s",
			key, strings.Join(AllProviderKeys(), ", "))
	}
	return p, nil
}

// MustParseProvider wraps ParseProvider with error panic.
func MustParseProvider(key string) Provider {
	p, err := ParseProvider(key)
	if err != nil {
		panic(err)
	}
	return p
}

// AllProviders returns the canonical providers in stable order.
func AllProviders() []Provider {
	return slices.Clone(allProviders)
}

// AllProviderKeys returns every accepted provider key, canonical names and
// aliases included, sorted alphabetically.
func AllProviderKeys() []string {
	keys := lo.Keys(index)
	slices.Sort(keys)
	return keys
}

// String implements fmt.Stringer.
func (p Provider) String() string {
	return string(p)
}

// Aliases returns the alternative keys the provider is known by.
func (p Provider) Aliases() []string {
	return slices.Clone(aliases[p])
}

// ShortName returns the framework short name pint uses as the primary key
// for the provider, e.g. "ec2" for Amazon.
func (p Provider) ShortName() string {
	if names := aliases[p]; len(names) > 0 {
		return names[0]
	}
	return string(p)
}

// DisplayName returns the human readable framework name, e.g. "EC2" for
// Amazon or "Azure" for Microsoft.
func (p Provider) DisplayName() string {
	short := p.ShortName()
	switch p {
	case Microsoft, Alibaba:
		return strings.ToUpper(short[:1]) + short[1:]
	default:
		return strings.ToUpper(short)
	}
}
