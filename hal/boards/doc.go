// Package boards selects the board compiled into the firmware.
//
// Each board has its own file guarded by a board_* build tag that declares
// Selected. Building with no board tag leaves Selected undefined and two
// tags declare it twice; both fail to compile, so exactly one board is ever
// linked in.
//
// Catalog and Lookup are host-only (!tinygo) and serve the simulator; the
// firmware package holds nothing but the selected board.
package boards
