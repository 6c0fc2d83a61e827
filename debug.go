package lunar

import (
	"fmt"
	"os"
	"time"
)

// globalDebug enables the debug checks below. Entities and layers have no
// back-pointer to an owning scene, so the flag is package-wide.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, use of
// destroyed entities and layers panics, an entity destroyed in the middle of
// its list's update pass panics, oversized entity lists print a warning, and
// LayerList.Draw logs per-frame stats to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugStats holds per-frame draw metrics for a LayerList.
// Only populated when debug mode is on.
type debugStats struct {
	drawTime      time.Duration
	layersDrawn   int
	entitiesDrawn int
	commandCount  int
	batchCount    int
}

// debugLog prints timing and draw stats to stderr.
func (ll *LayerList) debugLog() {
	if !globalDebug {
		return
	}
	s := ll.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[lunar] draw: %v | layers: %d | entities: %d | commands: %d | batches: %d\n",
		s.drawTime, s.layersDrawn, s.entitiesDrawn, s.commandCount, s.batchCount)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// entity is used. Only called in debug mode.
func debugCheckDestroyed(e *Entity, op string) {
	if e.destroyed {
		panic(fmt.Sprintf("lunar debug: %s on destroyed entity (ID %d)", op, e.ID))
	}
}

// debugCheckLayerDestroyed panics when a destroyed layer is used.
func debugCheckLayerDestroyed(l *Layer, op string) {
	if l.destroyed {
		panic(fmt.Sprintf("lunar debug: %s on destroyed %s layer", op, l.kind))
	}
}

// debugCheckUpdating panics when an entity is physically removed while its
// list is being updated. Update callbacks must use Entity.Delete instead.
func debugCheckUpdating(e *Entity, op string) {
	if e.list != nil && e.list.updating {
		panic(fmt.Sprintf("lunar debug: %s on entity (ID %d) during list update; use Delete", op, e.ID))
	}
}

// debugMaxEntityCount is the list size above which a warning is printed.
const debugMaxEntityCount = 10000

func debugCheckEntityCount(l *EntityList) {
	if l.count == debugMaxEntityCount+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[lunar] warning: entity list has %d entities (threshold %d)\n",
			l.count, debugMaxEntityCount)
	}
}
