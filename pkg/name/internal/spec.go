// Package internal holds the regular expression fragments of the SUSE
// public cloud image naming convention and assembles them into per-provider
// match patterns.
package internal

import (
	"github.com/wuxler/pintname/pkg/name/internal/xregexp"
)

var (
	expression = xregexp.Expression
	optional   = xregexp.Optional
	group      = xregexp.Group
	named      = xregexp.Named
	anchored   = xregexp.Anchored
)

// Capture group names used by the match patterns. The values are the field
// names pint publishes, so they double as the keys of the parsed field map.
const (
	GroupUUIDPrefix   = "uuid_prefix"
	GroupBaseName     = "base_name"
	GroupProduct      = "product"
	GroupProdBase     = "prodbase"
	GroupSLEServer    = "sle_server"
	GroupSLESServ     = "sles_serv"
	GroupSLE          = "sle"
	GroupLeap         = "leap"
	GroupOpenSUSE     = "opensuse"
	GroupCAP          = "cap"
	GroupCaaSP        = "caasp"
	GroupSUMA         = "suse_manager"
	GroupSUMAServer   = "suse_manager_server"
	GroupSUMAProxy    = "suse_manager_proxy"
	GroupLasso        = "lasso"
	GroupMajorVersion = "major_version"
	GroupMinorVersion = "minor_version"
	GroupSUMAType     = "suma_type"
	GroupBasic        = "basic"
	GroupSAPCal       = "sapcal"
	GroupSAP1         = "sap1"
	GroupSAP2         = "sap2"
	GroupCHost        = "chost"
	GroupHPC1         = "hpc1"
	GroupHPC2         = "hpc2"
	GroupMicro        = "micro"
	GroupManager      = "manager"
	GroupAzureHosted  = "azure_hosted"
	GroupPriority     = "priority"
	GroupStandard     = "standard"
	GroupBYOS         = "byos"
	GroupGen3         = "gen3"
	GroupDatestmp     = "datestmp"
	GroupDatestamp    = "datestamp"
	GroupVer          = "ver"
	GroupVer1         = "ver1"
	GroupVer2         = "ver2"
	GroupVersion      = "version"
	GroupSuffix       = "suffix"
	GroupGenID        = "gen_id"
	GroupECS          = "ecs"
	GroupVirtType     = "virt_type"
	GroupSSD          = "ssd"
	GroupArch         = "arch"
	GroupGen2         = "gen2"
	GroupArchVer      = "archver"
	GroupArchVer1     = "archver1"
	GroupArchVer2     = "archver2"
	GroupBuild        = "build"
	GroupBuild1       = "build1"
)

const (
	// susePrefix is the optional vendor prefix some providers put in front
	// of the product base (e.g. "suse-sles" on Amazon vs "sles" on Google).
	susePrefix = `(?:suse-)?`

	// hexChars matches the hexadecimal publisher id Azure image names carry
	// in front of the "__" separator. May be empty.
	hexChars = `[0-9a-fA-F]*`

	// datePat matches the 8 or 9 digit date stamps embedded in image names
	// (e.g. "20220101").
	datePat = `[0-9]{8,9}`

	// minorPat matches a product minor version, either a service pack
	// identifier ("sp1".."sp9", any case) or a plain digit.
	minorPat = `(?:[sS][pP][1-9]|[0-9])`

	// genPat matches a single image generation marker (e.g. "gen2").
	genPat = `gen[0-9]`
)

var (
	// uuidPrefix matches the Azure publisher id prefix, e.g.
	// "021d1b90c82943ec959408cff8e26c37__".
	uuidPrefix = optional(named(GroupUUIDPrefix, hexChars), `__`)

	// Product bases. Listed in the order they are alternated in prodbase;
	// the order matters because earlier alternatives win.
	sleServer  = group(susePrefix, named(GroupSLEServer, `sles`))
	slesServ   = group(`(?:SUSE-)?`, named(GroupSLESServ, `SUSE-Linux-Enterprise-Server`))
	sle        = group(susePrefix, named(GroupSLE, `sle`))
	leap       = group(susePrefix, named(GroupLeap, `open(?:suse|SUSE)-[lL]eap`))
	opensuse   = group(susePrefix, named(GroupOpenSUSE, `open(?:suse|SUSE)`))
	suma       = named(GroupSUMA, `suse-manager|manager`)
	sumaServer = named(GroupSUMAServer, `suse-manager-server`)
	sumaProxy  = named(GroupSUMAProxy, `suse-manager-proxy`)
	cap        = group(susePrefix, named(GroupCAP, `cap-deploy`))
	caasp      = group(susePrefix, named(GroupCaaSP, `caasp`))
	lasso      = named(GroupLasso, `suse-rancher-setup`)

	// prodbase matches the base product identifier of an image name, e.g.
	// "suse-sles" or "opensuse-leap". The trailing empty alternative keeps
	// names without any known product base matchable.
	prodbase = named(GroupProdBase,
		sleServer, `|`,
		slesServ, `|`,
		sle, `|`,
		leap, `|`,
		opensuse, `|`,
		suma, `|`,
		sumaServer, `|`,
		sumaProxy, `|`,
		cap, `|`,
		caasp, `|`,
		lasso, `|`,
	)

	hpc1 = optional(`-`, named(GroupHPC1, `hpc`))
	sap1 = optional(`-`, named(GroupSAP1, `sap`))
	mcro = optional(`-`, named(GroupMicro, `micro`))

	// product matches the whole product identification part before the
	// product version, e.g. "suse-sles-sap" or "suse-sle-hpc".
	product = named(GroupProduct, prodbase, hpc1, sap1, mcro)

	// productVersion matches the optional major and minor product version,
	// e.g. "-15-sp4", "-12.5" or "-15".
	productVersion = expression(
		optional(`-?`, named(GroupMajorVersion, `[0-9]+`)),
		optional(`[.-]`, named(GroupMinorVersion, minorPat)),
	)

	// sumaType matches the SUSE Manager flavor. The group is plain optional
	// here; whether it is required or forbidden depends on the matched
	// product base and is checked after the match.
	sumaType = optional(`-`, named(GroupSUMAType, `proxy|server`))

	basic  = optional(`-`, named(GroupBasic, `basic|admin|cluster`))
	sapcal = optional(`-`, named(GroupSAPCal, `sapcal|SAP-CAL|sap-cal|rightscale|hvm|pv|hvm-bld485|sap-pv|sap-hvm`))

	// sap2 matches the "-sap" flavor placed after the product version. It
	// overlaps with sapcal and the two are mutually exclusive, which is
	// checked after the match.
	sap2 = optional(`-`, named(GroupSAP2, `sap`))

	chost       = optional(`-`, named(GroupCHost, `chost`))
	hpc2        = optional(`-`, named(GroupHPC2, `hpc`))
	manager     = optional(`-manager-`, named(GroupManager, `server-2-1|proxy-2-1`))
	azureHosted = optional(`-azure-`, named(GroupAzureHosted, `li|vli|guest`))
	priority    = optional(`-`, named(GroupPriority, `priority|Prio`))
	standard    = optional(`-`, named(GroupStandard, `standard`))
	byos        = optional(`-`, named(GroupBYOS, `byos`))

	gen3     = optional(`[.-]`, named(GroupGen3, genPat))
	datestmp = optional(`-`, named(GroupDatestmp, datePat))

	// datestamp matches the "-v{date}" part of an image name, e.g.
	// "-v20220101".
	datestamp = optional(`-v`, named(GroupDatestamp, datePat))

	ver = expression(
		optional(`-v`, named(GroupVer, `[0-9]+`)),
		optional(`[.-]`, named(GroupVer1, `[0-9]{1,3}`)),
		optional(`[.-]`, named(GroupVer2, `[0-9]{0,3}`)),
	)
	version = optional(`-v`, named(GroupVersion, `[0-9]{3}`))

	// genID matches generation markers like "gen2" or "15-sp3-gen2". When
	// the marker echoes a product version the echo must equal the matched
	// product version, which is checked after the match.
	genID = optional(`-`, named(GroupGenID,
		optional(`[0-9]+`, optional(`-`, minorPat), `-`),
		genPat,
	))

	ecs      = optional(`-`, named(GroupECS, `ecs`))
	virtType = optional(`-`, named(GroupVirtType, `hvm|pv|hvm-mag|pv-mag`))
	ssd      = optional(`-`, named(GroupSSD, `ssd`))
	arch     = optional(`[.-]`, named(GroupArch, `x86_64|x86-64|arm64|i386|x86_64_ssd`))
	gen2     = optional(`-`, named(GroupGen2, genPat))
	archver  = expression(
		optional(`-`, named(GroupArchVer, `[0-9]+`)),
		optional(`[.-]`, named(GroupArchVer1, `[0-9]`)),
		optional(`[.-]`, named(GroupArchVer2, `[0-9]{1,3}`)),
	)
	build = expression(
		optional(`-`, named(GroupBuild, `build[0-9]`)),
		optional(`[.-]`, named(GroupBuild1, `[0-9]`)),
	)
)

// Layout selects the provider specific fragments included in a pattern. The
// zero value yields the pattern shared by all providers.
type Layout struct {
	// UUIDPrefix includes the Azure publisher id prefix in front of the
	// base name, e.g. "021d1b90c82943ec959408cff8e26c37__".
	UUIDPrefix bool

	// AzureHosted includes the "-azure-(li|vli|guest)" marker carried by
	// SAP HANA Large Instance images.
	AzureHosted bool

	// EC2Suffix includes the Amazon specific suffix markers for ECS
	// optimization, virtualization type and storage type.
	EC2Suffix bool
}

// Pattern assembles the anchored match pattern for the given layout.
func Pattern(layout Layout) string {
	parts := []string{}
	if layout.UUIDPrefix {
		parts = append(parts, uuidPrefix)
	}
	parts = append(parts,
		basename(layout),
		gen3,
		datestmp,
		datestamp,
		ver,
		version,
		suffix(layout),
	)
	return anchored(parts...)
}

// basename assembles the part of the pattern before the "-v{date}" stamp,
// made up of the product, the product version and the flavor and payment
// model markers.
func basename(layout Layout) string {
	parts := []string{
		product,
		productVersion,
		sumaType,
		basic,
		sapcal,
		sap2,
		chost,
		hpc2,
		manager,
	}
	if layout.AzureHosted {
		parts = append(parts, azureHosted)
	}
	parts = append(parts, priority, standard, byos)
	return named(GroupBaseName, parts...)
}

// suffix assembles the part of the pattern after the "-v{date}" stamp.
func suffix(layout Layout) string {
	parts := []string{genID}
	if layout.EC2Suffix {
		parts = append(parts, ecs, virtType, ssd)
	}
	parts = append(parts, arch, gen2, archver, build)
	return named(GroupSuffix, parts...)
}
