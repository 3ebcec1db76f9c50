// Package session serializes interaction with a live coloring canvas.
//
// A Session pairs the rasterized base artwork with the canvas being painted.
// Fills, manual resets and the inactivity reset all go through one lock, so
// a reset never observes or interrupts a half-applied fill and no two fills
// share a visited set. The inactivity timer is re-armed by every fill and by
// Touch; when it fires it restores the base artwork through the same locked
// reset path as Reset.
package session
