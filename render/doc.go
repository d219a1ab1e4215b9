// Package render turns a grid.Grid into something a person can look at.
//
// Colors are derived from cell state, never stored on cells: the role
// decides first (start, end, barrier), then the per-run mark (path,
// closed, open). The palette follows the classic visualizer scheme:
//
//	start   purple   (136, 3, 185)
//	end     blue     (0, 0, 255)
//	barrier black
//	path    pink     (249, 19, 180)
//	closed  red      (204, 0, 0), darker with depth-first distance
//	open    green    (0, 204, 0)
//	empty   white
//	lines   grey     (128, 128, 128)
//
// Outputs:
//
//   - Frame / WriteFrame: text frames, optionally with ANSI true-color.
//   - Image / SavePNG: raster snapshots drawn with fogleman/gg.
//   - PrintPath: the textual path report.
//   - Animator: a search.Observer that redraws a terminal frame per step.
package render
