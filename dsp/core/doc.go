// Package core holds small buffer and numeric helpers shared by the dsp packages.
package core
