package component

import (
	"strings"

	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

// MaxNestingDepth is the deepest containment chain a component may sit in.
// Writes that would exceed it are rejected.
const MaxNestingDepth = 16

// Path returns the slash-joined name chain from the root ancestor down to
// the component itself. The ancestors are given immediate parent first, as
// the store returns them.
func Path(c *models.Component, ancestors []*models.Component) string {
	names := make([]string, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		names = append(names, ancestors[i].Name)
	}
	names = append(names, c.Name)
	return strings.Join(names, "/")
}

// Level returns the nesting depth of the component, zero for a root.
func Level(ancestors []*models.Component) int {
	return len(ancestors)
}

// WouldCreateCycle reports whether re-parenting the component under the new
// parent would close a containment loop. parentAncestors is the parent chain
// of the candidate parent.
func WouldCreateCycle(componentID, newParentID uuid.UUID, parentAncestors []*models.Component) bool {
	if componentID == newParentID {
		return true
	}
	for _, a := range parentAncestors {
		if a.ID == componentID {
			return true
		}
	}
	return false
}

// ExceedsDepth reports whether placing a component under a parent with the
// given ancestor chain would push past MaxNestingDepth.
func ExceedsDepth(parentAncestors []*models.Component) bool {
	return len(parentAncestors)+1 >= MaxNestingDepth
}
