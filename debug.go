package arbor

import "time"

// frameStats holds per-frame timing and draw-call metrics.
// Only populated when Game.debug is true.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	drawCalls  int
}

// SetDebugMode enables per-frame timing logs and tree sanity checks. Logs go
// to Logger at debug level. Tree checks run in AddChild on nodes that belong
// to g, either built by Make with g or attached under such a node.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (g *Game) DebugMode() bool { return g.debug }

func (g *Game) debugLog(stats frameStats) {
	if !g.debug {
		return
	}
	Logger().Debug("arbor: frame",
		"frame", g.frame,
		"update", stats.updateTime,
		"draw", stats.drawTime,
		"total", stats.updateTime+stats.drawTime,
		"draw_calls", stats.drawCalls)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(o *Object) int {
	depth := 0
	for p := o; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("arbor: tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth)
	}
	return depth
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(o *Object) bool {
	if len(o.children) > debugMaxChildCount {
		Logger().Warn("arbor: node child count exceeds threshold",
			"children", len(o.children), "threshold", debugMaxChildCount)
		return false
	}
	return true
}
