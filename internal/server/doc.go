// Package server implements the MCP (Model Context Protocol) server for the
// interactive coloring book.
//
// This package provides a JSON-RPC 2.0 server that exposes a flood-fill
// coloring canvas through the MCP protocol. A client loads a line-art page,
// then paints regions by pointing at them; the server keeps one session with
// the painted canvas and resets it after a period of inactivity.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Artwork:
//   - canvas_load: Load and rasterize a coloring page, starting a new session
//   - canvas_info: Canvas size, artwork and session counters
//
// Painting:
//   - canvas_fill: Flood-fill a region with a palette swatch or hex colour
//   - canvas_erase: Erase a region back to white
//   - canvas_reset: Restore the original artwork
//
// Inspection:
//   - canvas_render: Current canvas as base64 PNG or a saved file
//   - canvas_sample_color: Colour of one pixel
//   - canvas_regions: Paintable regions with seed points
//   - canvas_map_point: Display coordinates to canvas pixels
//
// Catalogues:
//   - canvas_palettes: Palettes and swatch ids
//   - canvas_styles: Stroke styles
//
// # Sessions
//
// Every tool except the catalogues works on the session started by the last
// canvas_load. Tools called before any artwork is loaded fail with
// session.ErrNoArtwork. Decoded artwork is cached by path, so reloading a page
// does not read the disk again.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC error responses with:
//   - code: -32602 (invalid arguments), -32000 (tool execution failure) or
//     -32601 (unknown method)
//   - message: Human-readable error description
//   - data: The Go error string
//
// A fill that does not change the canvas (an outline, a point outside the
// canvas, a malformed colour) is a normal result whose status field says why.
//
// # Usage
//
//	srv := server.New(cfg)
//	err := srv.Run()
//	srv.Close()
//	if err != nil {
//	    log.Fatal(err)
//	}
package server
