package commands

import (
	"io"
	"strings"

	"github.com/containerd/platforms"

	"github.com/wuxler/pintname/pkg/cmdhelper"
	"github.com/wuxler/pintname/pkg/errdefs"
	"github.com/wuxler/pintname/pkg/name"
)

// imageView is the output representation of a parsed image name.
type imageView struct {
	Provider       string   `json:"provider" yaml:"provider"`
	Image          string   `json:"image" yaml:"image"`
	BaseName       string   `json:"base_name" yaml:"base_name"`
	GenericName    string   `json:"generic_name" yaml:"generic_name"`
	UniqueName     string   `json:"unique_name" yaml:"unique_name"`
	Product        string   `json:"product,omitempty" yaml:"product,omitempty"`
	ProductBase    string   `json:"product_base,omitempty" yaml:"product_base,omitempty"`
	ProductVersion string   `json:"product_version,omitempty" yaml:"product_version,omitempty"`
	DistroVersion  string   `json:"distro_version,omitempty" yaml:"distro_version,omitempty"`
	Datestamp      string   `json:"datestamp,omitempty" yaml:"datestamp,omitempty"`
	Arch           string   `json:"arch" yaml:"arch"`
	CloudArch      string   `json:"cloud_arch" yaml:"cloud_arch"`
	Platform       string   `json:"platform" yaml:"platform"`
	VirtType       string   `json:"virt_type,omitempty" yaml:"virt_type,omitempty"`
	SUMAType       string   `json:"suma_type,omitempty" yaml:"suma_type,omitempty"`
	UUIDPrefix     string   `json:"uuid_prefix,omitempty" yaml:"uuid_prefix,omitempty"`
	Suffix         string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Flavors        []string `json:"flavors,omitempty" yaml:"flavors,omitempty"`
	Payment        string   `json:"payment" yaml:"payment"`
}

func newImageView(n name.ImageName) imageView {
	flavors := []string{}
	for _, flavor := range []struct {
		set  bool
		name string
	}{
		{n.IsHPC(), "hpc"},
		{n.IsSAP(), "sap"},
		{n.IsMicro(), "micro"},
		{n.IsCHost(), "chost"},
		{n.IsBasic(), "basic"},
		{n.IsECS(), "ecs"},
		{n.IsSSD(), "ssd"},
		{n.IsSAPCAL(), "sapcal"},
		{n.IsAzureHosted(), "azure-hosted"},
	} {
		if flavor.set {
			flavors = append(flavors, flavor.name)
		}
	}
	payment := "payg"
	if n.IsBYOS() {
		payment = "byos"
	}
	return imageView{
		Provider:       n.Provider().String(),
		Image:          n.String(),
		BaseName:       n.BaseName(),
		GenericName:    n.GenericName(),
		UniqueName:     n.UniqueName(),
		Product:        n.Product(),
		ProductBase:    n.ProductBase(),
		ProductVersion: n.ProductVersion(),
		DistroVersion:  n.DistroVersion(),
		Datestamp:      n.Datestamp(),
		Arch:           n.Arch(),
		CloudArch:      n.CloudArch(),
		Platform:       platforms.Format(n.Platform()),
		VirtType:       n.VirtType(),
		SUMAType:       n.SUMAType(),
		UUIDPrefix:     n.UUIDPrefix(),
		Suffix:         n.Suffix(),
		Flavors:        flavors,
		Payment:        payment,
	}
}

func (v imageView) writeText(w io.Writer) {
	cmdhelper.Fprintf(w, "Image           : %s", v.Image)
	cmdhelper.Fprintf(w, "Provider        : %s", v.Provider)
	cmdhelper.Fprintf(w, "Base Name       : %s", v.BaseName)
	cmdhelper.Fprintf(w, "Generic Name    : %s", v.GenericName)
	cmdhelper.Fprintf(w, "Unique Name     : %s", v.UniqueName)
	if v.Product != "" {
		cmdhelper.Fprintf(w, "Product         : %s", v.Product)
	}
	if v.ProductVersion != "" {
		cmdhelper.Fprintf(w, "Product Version : %s", v.ProductVersion)
	}
	if v.DistroVersion != "" && v.DistroVersion != v.ProductVersion {
		cmdhelper.Fprintf(w, "Distro Version  : %s", v.DistroVersion)
	}
	if v.Datestamp != "" {
		cmdhelper.Fprintf(w, "Datestamp       : %s", v.Datestamp)
	}
	cmdhelper.Fprintf(w, "Arch            : %s", v.Arch)
	cmdhelper.Fprintf(w, "Platform        : %s", v.Platform)
	if v.VirtType != "" {
		cmdhelper.Fprintf(w, "Virtualization  : %s", v.VirtType)
	}
	if len(v.Flavors) > 0 {
		cmdhelper.Fprintf(w, "Flavors         : %v", v.Flavors)
	}
	cmdhelper.Fprintf(w, "Payment         : %s", v.Payment)
}

// writeViews renders the views in the requested output format.
func writeViews(w io.Writer, output string, views []imageView) error {
	switch output {
	case "text", "":
		for i, v := range views {
			if i > 0 {
				cmdhelper.Fprintf(w, "\n")
			}
			v.writeText(w)
		}
		return nil
	case "json":
		data, err := cmdhelper.PrettifyJSON(views)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(w, "%s", strings.TrimRight(string(data), "\n"))
		return nil
	case "yaml", "yml":
		data, err := cmdhelper.EncodeYAML(views)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(w, "%s", strings.TrimRight(string(data), "\n"))
		return nil
	}
	return errdefs.Newf(errdefs.ErrUnsupported, "unknown output format %q", output)
}
