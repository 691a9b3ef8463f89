// Package viz renders solved reaction tables in the terminal.
//
// The package implements a Braille chart renderer and an interactive
// browser built on Bubble Tea:
//
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Curve]: one observable charted against another
//   - [Browser]: interactive table viewer with unit switching
//
// # Key Bindings
//
//	Left/Right - Step through center-of-mass angle samples
//	PgUp/PgDn  - Jump 25 samples
//	Tab        - Cycle the plotted observable
//	T          - Jump to the plotted observable's peak
//	U          - Toggle angle unit (deg/rad)
//	E          - Cycle energy unit
//	?          - Show help overlay
//	Q          - Quit
package viz
