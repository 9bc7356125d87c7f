package hcl

import "github.com/hashicorp/hcl/v2"

// DependencyBlock represents a `dependency` block from a pin file.
//
//	dependency "gazelle" {
//	  kind      = "tool"
//	  version   = "0.29.0"
//	  integrity = "sha256:..."
//	  source    = "https://example.com/v${version}/gazelle-v${version}.tar.gz"
//	}
//
// The source attribute is kept as an expression so it can be evaluated
// with the block's own version in scope.
type DependencyBlock struct {
	Name      string         `hcl:"name,label"`
	Kind      string         `hcl:"kind,optional"`
	Version   string         `hcl:"version"`
	Integrity string         `hcl:"integrity,optional"`
	Source    hcl.Expression `hcl:"source,optional"`
}

// fileRoot is the top-level structure of a pin file. Unknown blocks are
// tolerated via the remain body so pin files can live alongside other
// orchestrator configuration.
type fileRoot struct {
	Dependencies []*DependencyBlock `hcl:"dependency,block"`
	Remain       hcl.Body           `hcl:",remain"`
}
