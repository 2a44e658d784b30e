package name

import (
	"strings"
	"time"

	"github.com/containerd/platforms"
	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/smallnest/deepcopy"
	"github.com/spf13/cast"
)

// datestampLayout is the time layout of the 8 digit "-v{date}" stamps.
const datestampLayout = "20060102"

// sumaDistroVersions maps a SUSE Manager product version to the version of
// the distribution the image is built on.
var sumaDistroVersions = map[string]string{
	"4-0": "15-SP1",
	"4-1": "15-SP2",
	"4-2": "15-SP3",
	"4-3": "15-SP4",
	"4-4": "15-SP5",
}

// microDistroVersions maps a SLE Micro product version to the version of
// the distribution the image is built on.
var microDistroVersions = map[string]string{
	"5-0": "15-SP2",
	"5-1": "15-SP3",
	"5-2": "15-SP3",
	"5-3": "15-SP4",
}

// rancherSetupDistroVersion is the distribution version of all
// suse-rancher-setup images.
const rancherSetupDistroVersion = "15-SP3"

// ImageName is the parsed representation of a public cloud image name. The
// zero value is not usable, construct one with Parse or MustParse. ImageName
// values are immutable and comparable; two values compare equal when they
// were parsed from the same provider and raw name with the same options.
type ImageName struct {
	provider    Provider
	image       string
	fields      fields
	defaultArch string
}

// Provider returns the provider the name was parsed for.
func (n ImageName) Provider() Provider {
	return n.provider
}

// String returns the raw image name.
func (n ImageName) String() string {
	return n.image
}

// Fields returns all captured fields keyed by their capture group names.
// The returned map is a copy, mutating it does not affect the ImageName.
func (n ImageName) Fields() map[string]string {
	return deepcopy.Copy(n.fields.toMap())
}

// BaseName returns the part of the name before the "-v{date}" stamp,
// excluding the Microsoft publisher id prefix.
func (n ImageName) BaseName() string {
	return n.fields.baseName
}

// GenericName returns the name with the datestamp replaced by the "{date}"
// placeholder. For Microsoft the suffix is left out, matching how Azure
// images are tracked.
func (n ImageName) GenericName() string {
	parts := []string{n.BaseName(), "-v{date}"}
	if n.HasSuffix() && n.provider != Microsoft {
		parts = append(parts, n.Suffix())
	}
	return strings.Join(parts, "")
}

// UniqueName returns the name re-derived from the parsed fields. The
// publisher id prefix is never re-attached. Names without a datestamp
// degrade to the plain base name plus suffix.
func (n ImageName) UniqueName() string {
	if !n.HasDatestamp() {
		s := n.BaseName()
		if n.HasSuffix() && n.provider != Microsoft {
			s += n.Suffix()
		}
		return s
	}
	return strings.ReplaceAll(n.GenericName(), "{date}", n.Datestamp())
}

// Product returns the product identifier, the base product plus any hpc,
// sap or micro flavor, e.g. "suse-sles-sap".
func (n ImageName) Product() string {
	return n.fields.product
}

// ProductBase returns the base product identifier, e.g. "suse-sles" or
// "opensuse-leap".
func (n ImageName) ProductBase() string {
	return n.fields.prodBase
}

// ProductMajor returns the major product version, e.g. "15".
func (n ImageName) ProductMajor() string {
	return n.fields.majorVersion
}

// ProductMinor returns the minor product version, either a service pack
// identifier like "sp4" or a plain digit.
func (n ImageName) ProductMinor() string {
	return n.fields.minorVersion
}

// ProductMinorNumber returns the minor product version as a number, "sp4"
// and "4" both yield 4. Names without a minor version yield 0.
func (n ImageName) ProductMinorNumber() int {
	minor := strings.ToLower(n.fields.minorVersion)
	return cast.ToInt(strings.TrimPrefix(minor, "sp"))
}

// ProductVersion returns the dash joined product version, e.g. "15-sp4" or
// "15". Empty when the name carries no version at all.
func (n ImageName) ProductVersion() string {
	parts := []string{}
	if n.fields.majorVersion != "" {
		parts = append(parts, n.fields.majorVersion)
	}
	if n.fields.minorVersion != "" {
		parts = append(parts, n.fields.minorVersion)
	}
	return strings.Join(parts, "-")
}

// HasProductVersion reports whether the name carries a product version.
func (n ImageName) HasProductVersion() bool {
	return n.ProductVersion() != ""
}

// DistroVersion returns the version of the distribution the image is built
// on. For most products this equals the product version; SUSE Manager, SLE
// Micro and suse-rancher-setup images are versioned independently of their
// base distribution and are mapped explicitly. Unknown versions of those
// products fall back to the product version.
func (n ImageName) DistroVersion() string {
	version := n.ProductVersion()
	switch {
	case n.IsSUMA():
		if mapped, ok := sumaDistroVersions[version]; ok {
			return mapped
		}
	case n.IsMicro():
		if mapped, ok := microDistroVersions[version]; ok {
			return mapped
		}
	case n.IsRancherSetup():
		return rancherSetupDistroVersion
	}
	return version
}

// HasDistroVersion reports whether the name resolves to a distribution
// version.
func (n ImageName) HasDistroVersion() bool {
	return n.DistroVersion() != ""
}

// Arch returns the architecture of the image. The dash spelling "x86-64" is
// normalized to "x86_64" and names without an architecture token report the
// default architecture.
func (n ImageName) Arch() string {
	switch n.fields.arch {
	case "":
		return n.defaultArch
	case "x86-64":
		return "x86_64"
	}
	return n.fields.arch
}

// RawArch returns the architecture token exactly as it appears in the name,
// empty when there is none.
func (n ImageName) RawArch() string {
	return n.fields.arch
}

// CloudArch returns the architecture using the spelling the cloud providers
// use, mapping "arm64" to "aarch64".
func (n ImageName) CloudArch() string {
	if n.IsArm64() {
		return "aarch64"
	}
	return n.Arch()
}

// Platform returns the normalized OCI platform of the image.
func (n ImageName) Platform() imgspecv1.Platform {
	return platforms.Normalize(imgspecv1.Platform{
		OS:           "linux",
		Architecture: n.Arch(),
	})
}

// IsX8664 reports whether the image architecture is x86_64.
func (n ImageName) IsX8664() bool {
	return n.Arch() == "x86_64"
}

// IsArm64 reports whether the image architecture is arm64.
func (n ImageName) IsArm64() bool {
	return n.Arch() == "arm64"
}

// Datestamp returns the 8 or 9 digit datestamp of the name, empty when the
// name carries no "-v{date}" stamp.
func (n ImageName) Datestamp() string {
	return n.fields.datestamp
}

// HasDatestamp reports whether the name carries a "-v{date}" stamp.
func (n ImageName) HasDatestamp() bool {
	return n.fields.datestamp != ""
}

// DatestampTime parses the datestamp as a UTC calendar day. Only the 8
// digit YYYYMMDD form can be converted, other stamps return an error.
func (n ImageName) DatestampTime() (time.Time, error) {
	return time.Parse(datestampLayout, n.fields.datestamp)
}

// IsSLES reports whether the image is a SUSE Linux Enterprise Server image
// named with the short "sles" identifier.
func (n ImageName) IsSLES() bool {
	return n.fields.sleServer != ""
}

// IsSLESFullName reports whether the image is named with the spelled out
// "SUSE-Linux-Enterprise-Server" identifier.
func (n ImageName) IsSLESFullName() bool {
	return n.fields.slesServ != ""
}

// IsSLE reports whether the image is a SUSE Linux Enterprise image named
// with the bare "sle" identifier, e.g. "suse-sle-hpc" or "suse-sle-micro".
func (n ImageName) IsSLE() bool {
	return n.fields.sle != ""
}

// IsLeap reports whether the image is an openSUSE Leap image.
func (n ImageName) IsLeap() bool {
	return n.fields.leap != ""
}

// IsOpenSUSE reports whether the image is an openSUSE image without the
// Leap identifier.
func (n ImageName) IsOpenSUSE() bool {
	return n.fields.opensuse != ""
}

// IsCAP reports whether the image is a Cloud Application Platform
// deployment image.
func (n ImageName) IsCAP() bool {
	return n.fields.cap != ""
}

// IsCaaSP reports whether the image is a CaaS Platform image.
func (n ImageName) IsCaaSP() bool {
	return n.fields.caasp != ""
}

// IsSUMA reports whether the image is a SUSE Manager image named with the
// combined base plus proxy/server marker.
func (n ImageName) IsSUMA() bool {
	return n.fields.suma != ""
}

// IsSUMAServer reports whether the image is named with the dedicated
// "suse-manager-server" base.
func (n ImageName) IsSUMAServer() bool {
	return n.fields.sumaServer != ""
}

// IsSUMAProxy reports whether the image is named with the dedicated
// "suse-manager-proxy" base.
func (n ImageName) IsSUMAProxy() bool {
	return n.fields.sumaProxy != ""
}

// SUMAType returns the SUSE Manager flavor, "server" or "proxy". Empty for
// anything that is not a combined SUSE Manager name.
func (n ImageName) SUMAType() string {
	return n.fields.sumaType
}

// IsRancherSetup reports whether the image is a suse-rancher-setup image.
func (n ImageName) IsRancherSetup() bool {
	return n.fields.lasso != ""
}

// IsHPC reports whether the image carries an hpc flavor marker in either
// position.
func (n ImageName) IsHPC() bool {
	return n.fields.hpc1 != "" || n.fields.hpc2 != ""
}

// IsSAP reports whether the image carries a sap flavor marker in either
// position.
func (n ImageName) IsSAP() bool {
	return n.fields.sap1 != "" || n.fields.sap2 != ""
}

// IsMicro reports whether the image is a SLE Micro image.
func (n ImageName) IsMicro() bool {
	return n.fields.micro != ""
}

// IsCHost reports whether the image is a container host image.
func (n ImageName) IsCHost() bool {
	return n.fields.chost != ""
}

// IsBYOS reports whether the image uses the bring-your-own-subscription
// payment model.
func (n ImageName) IsBYOS() bool {
	return n.fields.byos != ""
}

// IsPAYG reports whether the image uses the pay-as-you-go payment model,
// the inverse of IsBYOS.
func (n ImageName) IsPAYG() bool {
	return !n.IsBYOS()
}

// IsBasic reports whether the image carries a basic, admin or cluster
// marker.
func (n ImageName) IsBasic() bool {
	return n.fields.basic != ""
}

// IsECS reports whether the image is ECS optimized.
func (n ImageName) IsECS() bool {
	return n.fields.ecs != ""
}

// IsSSD reports whether the image uses SSD storage.
func (n ImageName) IsSSD() bool {
	return n.fields.ssd != ""
}

// SAPCAL returns the SAP Cloud Appliance Library style marker of the name,
// e.g. "sapcal" or "rightscale". Empty when there is none.
func (n ImageName) SAPCAL() string {
	return n.fields.sapcal
}

// IsSAPCAL reports whether the name carries a SAP Cloud Appliance Library
// style marker.
func (n ImageName) IsSAPCAL() bool {
	return n.fields.sapcal != ""
}

// VirtType returns the virtualization type marker, e.g. "hvm" or "pv".
func (n ImageName) VirtType() string {
	return n.fields.virtType
}

// HasVirtType reports whether the name carries a virtualization type.
func (n ImageName) HasVirtType() bool {
	return n.fields.virtType != ""
}

// IsHVM reports whether the virtualization type is hvm.
func (n ImageName) IsHVM() bool {
	return n.fields.virtType == "hvm"
}

// IsPV reports whether the virtualization type is pv.
func (n ImageName) IsPV() bool {
	return n.fields.virtType == "pv"
}

// AzureHosted returns the SAP HANA Large Instance hosting marker, one of
// "li", "vli" or "guest". Empty when there is none.
func (n ImageName) AzureHosted() string {
	return n.fields.azureHosted
}

// IsAzureHosted reports whether the name carries a hosting marker.
func (n ImageName) IsAzureHosted() bool {
	return n.fields.azureHosted != ""
}

// UUIDPrefix returns the hexadecimal publisher id Microsoft image names may
// carry in front of the "__" separator.
func (n ImageName) UUIDPrefix() string {
	return n.fields.uuidPrefix
}

// HasUUIDPrefix reports whether the name carries a publisher id prefix.
func (n ImageName) HasUUIDPrefix() bool {
	return n.fields.uuidPrefix != ""
}

// Suffix returns the whole suffix after the "-v{date}" stamp including its
// leading delimiter, e.g. "-hvm-ssd-x86_64".
func (n ImageName) Suffix() string {
	return n.fields.suffix
}

// HasSuffix reports whether the name carries a suffix after the datestamp.
func (n ImageName) HasSuffix() bool {
	return n.fields.suffix != ""
}

// GenID returns the image generation id, e.g. "gen2" or "15-sp3-gen2".
func (n ImageName) GenID() string {
	return n.fields.genID
}

// HasGenID reports whether the name carries a generation id.
func (n ImageName) HasGenID() bool {
	return n.fields.genID != ""
}

// ServerDescription returns the short product role description used in
// image catalogs, "HPC", "Micro" or "Server".
func (n ImageName) ServerDescription() string {
	if n.IsHPC() {
		return "HPC"
	}
	if n.IsMicro() {
		return "Micro"
	}
	return "Server"
}

// SupportDescription returns the support model description used in image
// catalogs, e.g. " - BYOS". Empty when there is nothing to say.
func (n ImageName) SupportDescription() string {
	var suffix string
	switch {
	case n.IsBYOS():
		suffix = "BYOS"
	case n.provider == Microsoft && n.IsBasic():
		suffix = "Patching"
	case n.provider == Microsoft:
		suffix = "24x7 support"
	}
	if suffix == "" {
		return ""
	}
	return " - " + suffix
}

// SAPDescription returns the SAP product description used in image
// catalogs. Empty for images without a sap flavor.
func (n ImageName) SAPDescription() string {
	if !n.IsSAP() {
		return ""
	}
	return " for SAP Applications"
}
