package ddspec

import "github.com/nagare-zdd/nagare/board"

// NState is the per-slot state the zdd engine carries at each frontier
// position. It is a plain-old-data record: no pointers into engine
// internals, safe to copy, sized identically for every slot.
type NState struct {
	// M is the mate: the other endpoint of the partial path v belongs
	// to, v itself if v is live but isolated, or 0 if v is already
	// interior (degree 2) and no longer an open endpoint.
	M int

	// U is the upstream flag: true once some wind/arrow constraint has
	// forced this path to flow toward v's end of it.
	U bool

	// N is the direction from the previous-edge neighbor to v, carried
	// only to detect a Gray cell traversed twice in a row orthogonal to
	// its winds. board.NoDirection means "not applicable".
	N board.Direction
}
