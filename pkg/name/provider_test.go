package name_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/pintname/pkg/name"
)

func TestParseProvider(t *testing.T) {
	testcases := []struct {
		input   string
		want    name.Provider
		wantErr bool
	}{
		{input: "amazon", want: name.Amazon},
		{input: "ec2", want: name.Amazon},
		{input: "aws", want: name.Amazon},
		{input: "EC2", want: name.Amazon},
		{input: "Amazon", want: name.Amazon},
		{input: "microsoft", want: name.Microsoft},
		{input: "azure", want: name.Microsoft},
		{input: "AZURE", want: name.Microsoft},
		{input: "google", want: name.Google},
		{input: "gce", want: name.Google},
		{input: "gcp", want: name.Google},
		{input: "oracle", want: name.Oracle},
		{input: "oci", want: name.Oracle},
		{input: "alibaba", want: name.Alibaba},
		{input: "aliyun", want: name.Alibaba},
		{input: "", wantErr: true},
		{input: "digitalocean", wantErr: true},
		{input: "ec-2", wantErr: true},
	}

	for _, tc := range testcases {
		tName := tc.input
		if tName == "" {
			tName = "empty"
		}
		t.Run(tName, func(t *testing.T) {
			p, err := name.ParseProvider(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, name.ErrUnknownProvider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestMustParseProvider(t *testing.T) {
	assert.NotPanics(t, func() {
		name.MustParseProvider("aliyun")
	})
	assert.Panics(t, func() {
		name.MustParseProvider("digitalocean")
	})
}

func TestAllProviders(t *testing.T) {
	want := []name.Provider{name.Amazon, name.Microsoft, name.Google, name.Oracle, name.Alibaba}
	assert.Equal(t, want, name.AllProviders())

	// the returned slice is a copy
	got := name.AllProviders()
	got[0] = name.Provider("mutated")
	assert.Equal(t, want, name.AllProviders())
}

func TestProvider_Names(t *testing.T) {
	testcases := []struct {
		provider name.Provider
		short    string
		display  string
		aliases  []string
	}{
		{name.Amazon, "ec2", "EC2", []string{"ec2", "aws"}},
		{name.Microsoft, "azure", "Azure", []string{"azure"}},
		{name.Google, "gce", "GCE", []string{"gce", "gcp"}},
		{name.Oracle, "oci", "OCI", []string{"oci"}},
		{name.Alibaba, "aliyun", "Aliyun", []string{"aliyun"}},
	}

	for _, tc := range testcases {
		t.Run(tc.provider.String(), func(t *testing.T) {
			assert.Equal(t, tc.short, tc.provider.ShortName())
			assert.Equal(t, tc.display, tc.provider.DisplayName())
			assert.Equal(t, tc.aliases, tc.provider.Aliases())
		})
	}
}

func TestAllProviderKeys(t *testing.T) {
	keys := name.AllProviderKeys()
	assert.Contains(t, keys, "amazon")
	assert.Contains(t, keys, "ec2")
	assert.Contains(t, keys, "aliyun")
	assert.IsIncreasing(t, keys)
}
