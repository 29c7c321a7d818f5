// Package render draws styled static charts for the optics demos with
// gonum.org/v1/plot: XY sweeps, polar scattering lobes and polarization
// ellipse traces, saved as PNG.
//
// All theming flows through an explicit Style value; there is no
// package-level configuration to mutate. DarkTheme() is the PolarCraft
// slate/cyan palette the demos ship with.
//
// Interactive widgets and animation are out of scope; output is static
// images only.
package render
