package generator

import "errors"

// ErrNoAddableCell indicates getInitBoard was asked for more cells than
// any remaining (x,y,color,direction) choice can add without immediately
// becoming meaningless or disconnecting the board.
var ErrNoAddableCell = errors.New("generator: no meaningful cell addition available")
