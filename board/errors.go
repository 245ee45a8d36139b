package board

import "errors"

// ErrInvalidSize indicates a non-positive width or height.
var ErrInvalidSize = errors.New("board: width and height must be positive")

// ErrOutOfBounds indicates a cell coordinate outside the board.
var ErrOutOfBounds = errors.New("board: coordinate out of bounds")

// ErrInvalidColor indicates SetCell was asked to set a color other than
// White or Black — the only colors an edit may directly assign; Gray is
// derived by Properize and None is assigned via ResetCell.
var ErrInvalidColor = errors.New("board: SetCell requires White or Black")

// ErrMalformedFile indicates a pzprv3 stream that doesn't match the
// expected seven-section layout.
var ErrMalformedFile = errors.New("board: malformed pzprv3 file")
