package name

import (
	"github.com/wuxler/pintname/pkg/name/internal"
)

// fields holds the raw captures of a grammar match. Every field maps to one
// named capture group of the pattern; an empty string means the group did
// not participate in the match.
type fields struct {
	uuidPrefix   string
	baseName     string
	product      string
	prodBase     string
	sleServer    string
	slesServ     string
	sle          string
	leap         string
	opensuse     string
	cap          string
	caasp        string
	suma         string
	sumaServer   string
	sumaProxy    string
	lasso        string
	majorVersion string
	minorVersion string
	sumaType     string
	basic        string
	sapcal       string
	sap1         string
	sap2         string
	chost        string
	hpc1         string
	hpc2         string
	micro        string
	manager      string
	azureHosted  string
	priority     string
	standard     string
	byos         string
	gen3         string
	datestmp     string
	datestamp    string
	ver          string
	ver1         string
	ver2         string
	version      string
	suffix       string
	genID        string
	ecs          string
	virtType     string
	ssd          string
	arch         string
	gen2         string
	archver      string
	archver1     string
	archver2     string
	build        string
	build1       string
}

func newFields(captures map[string]string) fields {
	return fields{
		uuidPrefix:   captures[internal.GroupUUIDPrefix],
		baseName:     captures[internal.GroupBaseName],
		product:      captures[internal.GroupProduct],
		prodBase:     captures[internal.GroupProdBase],
		sleServer:    captures[internal.GroupSLEServer],
		slesServ:     captures[internal.GroupSLESServ],
		sle:          captures[internal.GroupSLE],
		leap:         captures[internal.GroupLeap],
		opensuse:     captures[internal.GroupOpenSUSE],
		cap:          captures[internal.GroupCAP],
		caasp:        captures[internal.GroupCaaSP],
		suma:         captures[internal.GroupSUMA],
		sumaServer:   captures[internal.GroupSUMAServer],
		sumaProxy:    captures[internal.GroupSUMAProxy],
		lasso:        captures[internal.GroupLasso],
		majorVersion: captures[internal.GroupMajorVersion],
		minorVersion: captures[internal.GroupMinorVersion],
		sumaType:     captures[internal.GroupSUMAType],
		basic:        captures[internal.GroupBasic],
		sapcal:       captures[internal.GroupSAPCal],
		sap1:         captures[internal.GroupSAP1],
		sap2:         captures[internal.GroupSAP2],
		chost:        captures[internal.GroupCHost],
		hpc1:         captures[internal.GroupHPC1],
		hpc2:         captures[internal.GroupHPC2],
		micro:        captures[internal.GroupMicro],
		manager:      captures[internal.GroupManager],
		azureHosted:  captures[internal.GroupAzureHosted],
		priority:     captures[internal.GroupPriority],
		standard:     captures[internal.GroupStandard],
		byos:         captures[internal.GroupBYOS],
		gen3:         captures[internal.GroupGen3],
		datestmp:     captures[internal.GroupDatestmp],
		datestamp:    captures[internal.GroupDatestamp],
		ver:          captures[internal.GroupVer],
		ver1:         captures[internal.GroupVer1],
		ver2:         captures[internal.GroupVer2],
		version:      captures[internal.GroupVersion],
		suffix:       captures[internal.GroupSuffix],
		genID:        captures[internal.GroupGenID],
		ecs:          captures[internal.GroupECS],
		virtType:     captures[internal.GroupVirtType],
		ssd:          captures[internal.GroupSSD],
		arch:         captures[internal.GroupArch],
		gen2:         captures[internal.GroupGen2],
		archver:      captures[internal.GroupArchVer],
		archver1:     captures[internal.GroupArchVer1],
		archver2:     captures[internal.GroupArchVer2],
		build:        captures[internal.GroupBuild],
		build1:       captures[internal.GroupBuild1],
	}
}

// toMap returns the fields keyed by their capture group names. Groups the
// grammar of the provider does not define are present with an empty value
// so the keys are stable across providers.
func (f fields) toMap() map[string]string {
	return map[string]string{
		internal.GroupUUIDPrefix:   f.uuidPrefix,
		internal.GroupBaseName:     f.baseName,
		internal.GroupProduct:      f.product,
		internal.GroupProdBase:     f.prodBase,
		internal.GroupSLEServer:    f.sleServer,
		internal.GroupSLESServ:     f.slesServ,
		internal.GroupSLE:          f.sle,
		internal.GroupLeap:         f.leap,
		internal.GroupOpenSUSE:     f.opensuse,
		internal.GroupCAP:          f.cap,
		internal.GroupCaaSP:        f.caasp,
		internal.GroupSUMA:         f.suma,
		internal.GroupSUMAServer:   f.sumaServer,
		internal.GroupSUMAProxy:    f.sumaProxy,
		internal.GroupLasso:        f.lasso,
		internal.GroupMajorVersion: f.majorVersion,
		internal.GroupMinorVersion: f.minorVersion,
		internal.GroupSUMAType:     f.sumaType,
		internal.GroupBasic:        f.basic,
		internal.GroupSAPCal:       f.sapcal,
		internal.GroupSAP1:         f.sap1,
		internal.GroupSAP2:         f.sap2,
		internal.GroupCHost:        f.chost,
		internal.GroupHPC1:         f.hpc1,
		internal.GroupHPC2:         f.hpc2,
		internal.GroupMicro:        f.micro,
		internal.GroupManager:      f.manager,
		internal.GroupAzureHosted:  f.azureHosted,
		internal.GroupPriority:     f.priority,
		internal.GroupStandard:     f.standard,
		internal.GroupBYOS:         f.byos,
		internal.GroupGen3:         f.gen3,
		internal.GroupDatestmp:     f.datestmp,
		internal.GroupDatestamp:    f.datestamp,
		internal.GroupVer:          f.ver,
		internal.GroupVer1:         f.ver1,
		internal.GroupVer2:         f.ver2,
		internal.GroupVersion:      f.version,
		internal.GroupSuffix:       f.suffix,
		internal.GroupGenID:        f.genID,
		internal.GroupECS:          f.ecs,
		internal.GroupVirtType:     f.virtType,
		internal.GroupSSD:          f.ssd,
		internal.GroupArch:         f.arch,
		internal.GroupGen2:         f.gen2,
		internal.GroupArchVer:      f.archver,
		internal.GroupArchVer1:     f.archver1,
		internal.GroupArchVer2:     f.archver2,
		internal.GroupBuild:        f.build,
		internal.GroupBuild1:       f.build1,
	}
}
