package emit

import (
	"github.com/davecgh/go-spew/spew"

	"itemize-generator/internal/ir"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump returns a structural dump of set, one node per line. It is meant
// for inspecting the engine's output, not for consumption by tools.
func Dump(set *ir.DescriptorSet) string {
	return dumpConfig.Sdump(set)
}
