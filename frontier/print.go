package frontier

import (
	"fmt"
	"strings"
)

// String renders the frontier tables level by level (level m down to 1),
// matching FrontierManager::print's layout, for debugging.
func (mgr *Manager) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "n = %d\nm = %d\nw = %d\n", mgr.n, mgr.m, mgr.w)

	for level := mgr.m; level > 0; level-- {
		k := mgr.edgeID(level)
		fmt.Fprintf(&sb, "<<<< level = %d : %d, %d >>>>\n", level, mgr.el[k][0], mgr.el[k][1])
		fmt.Fprintf(&sb, "E =%s\n", intsJoined(mgr.es[k]))
		fmt.Fprintf(&sb, "L =%s\n", intsJoined(mgr.ls[k]))
		fmt.Fprintf(&sb, "F =%s\n", intsJoined(mgr.fs[k]))
		fmt.Fprintf(&sb, "R =%s\n", intsJoined(mgr.rs[k]))
	}

	fmt.Fprintf(&sb, "v2p =%s\n", intsJoined(mgr.v2p[1:]))

	return sb.String()
}

func intsJoined(xs []int) string {
	var sb strings.Builder
	for _, x := range xs {
		fmt.Fprintf(&sb, " %d", x)
	}

	return sb.String()
}
