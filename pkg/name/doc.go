// Package name decodes the image names SUSE publishes for public clouds
// into typed, queryable fields. A name is parsed against the grammar of a
// provider, resolved from the provider key, and the named fragments are
// exposed as read-only accessors on the returned ImageName.
//
// # Grammar
//
//	image-name       := [uuid-prefix] base-name ["-v" datestamp] [suffix]
//	uuid-prefix      := /[0-9a-fA-F]*/ "__"                              ; Microsoft only
//	base-name        := product [product-version] flavors payment-model
//	product          := prodbase ["-hpc"] ["-sap"] ["-micro"]
//	prodbase         := "suse-sles" | "sles" | "SUSE-Linux-Enterprise-Server"
//	                  | "sle" | "opensuse-leap" | "opensuse" | "suse-manager"
//	                  | "suse-manager-server" | "suse-manager-proxy"
//	                  | "cap-deploy" | "caasp" | "suse-rancher-setup" | ...
//	product-version  := ["-" major] [("." | "-") minor]
//	major            := /[0-9]+/
//	minor            := /[sS][pP][1-9]|[0-9]/
//	flavors          := ["-" suma-type] ["-basic"] ["-" sapcal] ["-sap"]
//	                    ["-chost"] ["-hpc"] ["-azure-" hosted]            ; hosted Microsoft only
//	payment-model    := ["-priority"] ["-standard"] ["-byos"]
//	datestamp        := /[0-9]{8,9}/
//	suffix           := [gen-id] ["-ecs"] ["-" virt-type] ["-ssd"]        ; ecs/virt/ssd Amazon only
//	                    [("." | "-") arch] ["-" generation] [build]
//	virt-type        := "hvm" | "pv" | "hvm-mag" | "pv-mag"
//	arch             := "x86_64" | "x86-64" | "arm64" | "i386" | "x86_64_ssd"
//	generation       := "gen" /[0-9]/
//
// Parsing is pure and stateless. Compiled grammars are memoized per provider
// and are safe for unsynchronized concurrent readers.
//
// # NOTE
//
// The grammar follows the naming convention of the images listed by pint,
// the SUSE Public Cloud Information Tracker.
package name
