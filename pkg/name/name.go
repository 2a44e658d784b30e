package name

import (
	"strings"

	"github.com/wuxler/pintname/pkg/errdefs"
	"github.com/wuxler/pintname/pkg/xlog"
)

// DefaultArch is the architecture reported when the image name carries no
// architecture token.
const DefaultArch = "x86_64"

// Parse decodes image against the naming convention of the provider and
// returns the parsed ImageName. The provider key accepts the same spellings
// as ParseProvider. Names that do not conform to the convention fail with
// ErrNameFormat; no partial result is ever returned.
func Parse(provider string, image string, opts ...Option) (ImageName, error) {
	o := makeOptions(opts...)
	g, err := LookupGrammar(provider)
	if err != nil {
		return ImageName{}, err
	}
	p := g.Provider()
	if image == "" {
		return ImageName{}, errdefs.Newf(ErrNameFormat, "%s image name is empty", p)
	}
	captures, ok := g.match(image)
	if !ok {
		return ImageName{}, errdefs.Newf(ErrNameFormat,
			"%s image %q does not match the naming convention", p, image)
	}
	f := newFields(captures)
	if err := checkFields(p, image, f, o); err != nil {
		xlog.Debug("image name rejected", "provider", p.String(), "image", image, "reason", err.Error())
		return ImageName{}, err
	}
	xlog.Debug("image name matched", "provider", p.String(), "image", image, "fields", captures)
	return ImageName{
		provider:    p,
		image:       image,
		fields:      f,
		defaultArch: o.defaultArch,
	}, nil
}

// MustParse wraps Parse with error panic.
func MustParse(provider string, image string, opts ...Option) ImageName {
	n, err := Parse(provider, image, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// checkFields applies the structural constraints between captured fields
// that the match pattern alone cannot express.
func checkFields(p Provider, image string, f fields, o options) error {
	// The sapcal marker subsumes the trailing "-sap" flavor, only one of
	// the two may be present.
	if f.sapcal != "" && f.sap2 != "" {
		return errdefs.Newf(ErrNameFormat,
			"%s image %q carries both %q and a trailing \"sap\" marker", p, image, f.sapcal)
	}
	// A combined "suse-manager" base requires the flavor marker, the
	// dedicated server/proxy bases forbid it.
	if f.suma != "" && f.sumaType == "" {
		return errdefs.Newf(ErrNameFormat,
			"%s image %q is missing the SUSE Manager proxy/server marker", p, image)
	}
	if f.suma == "" && f.sumaType != "" {
		return errdefs.Newf(ErrNameFormat,
			"%s image %q carries an unexpected %q marker", p, image, f.sumaType)
	}
	// When the generation id echoes a product version the echo must equal
	// the matched product version.
	if echo, ok := genIDVersionEcho(f.genID); ok {
		if !validVersionEcho(echo, f.majorVersion, f.minorVersion) {
			return errdefs.Newf(ErrNameFormat,
				"%s image %q generation id %q does not echo the product version", p, image, f.genID)
		}
	}
	// Amazon and Microsoft publish sles images with a vendor prefix, a bare
	// "sles" base name is only valid for Azure hosted images.
	if (p == Amazon || p == Microsoft) && f.sleServer != "" && f.azureHosted == "" {
		if f.prodBase != "suse-sles" {
			return errdefs.Newf(ErrNameFormat,
				"%s image %q does not start with \"suse\"", p, image)
		}
	}
	if o.strict {
		if f.prodBase == "" {
			return errdefs.Newf(ErrNameFormat,
				"%s image %q does not carry a recognized product base", p, image)
		}
		if f.datestamp == "" {
			return errdefs.Newf(ErrNameFormat,
				"%s image %q does not carry a \"-v{date}\" stamp", p, image)
		}
	}
	return nil
}

// genIDVersionEcho splits the version echo off a generation id, e.g.
// "15-sp3-gen2" yields "15-sp3". The second return is false when the id is
// empty or a bare generation marker like "gen2".
func genIDVersionEcho(genID string) (string, bool) {
	idx := strings.LastIndex(genID, "gen")
	if genID == "" || idx <= 0 {
		return "", false
	}
	return strings.TrimSuffix(genID[:idx], "-"), true
}

func validVersionEcho(echo, major, minor string) bool {
	if major == "" {
		return false
	}
	if echo == major {
		return true
	}
	return minor != "" && echo == major+"-"+minor
}
