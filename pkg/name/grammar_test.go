package name_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/pintname/pkg/name"
)

func TestLookupGrammar(t *testing.T) {
	for _, p := range name.AllProviders() {
		t.Run(p.String(), func(t *testing.T) {
			g, err := name.LookupGrammar(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, g.Provider())

			// the expression is valid and anchored
			re, err := regexp.Compile(g.Expression())
			require.NoError(t, err)
			assert.True(t, re.MatchString("sles-15-sp2-byos-v20191001"))

			names := g.FieldNames()
			assert.Contains(t, names, "base_name")
			assert.Contains(t, names, "prodbase")
			assert.Contains(t, names, "datestamp")
			assert.Contains(t, names, "arch")
		})
	}

	_, err := name.LookupGrammar("not-a-real-provider")
	assert.ErrorIs(t, err, name.ErrUnknownProvider)
}

func TestLookupGrammar_Memoized(t *testing.T) {
	first, err := name.LookupGrammar("ec2")
	require.NoError(t, err)
	second, err := name.LookupGrammar("amazon")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLookupGrammar_ProviderLayouts(t *testing.T) {
	amazon := name.MustLookupGrammar("amazon")
	microsoft := name.MustLookupGrammar("microsoft")
	google := name.MustLookupGrammar("google")

	assert.Contains(t, amazon.FieldNames(), "ecs")
	assert.NotContains(t, amazon.FieldNames(), "uuid_prefix")

	assert.Contains(t, microsoft.FieldNames(), "uuid_prefix")
	assert.Contains(t, microsoft.FieldNames(), "azure_hosted")
	assert.NotContains(t, microsoft.FieldNames(), "ecs")

	assert.NotContains(t, google.FieldNames(), "ecs")
	assert.NotContains(t, google.FieldNames(), "uuid_prefix")
}
