package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pointProperties() map[string]interface{} {
	return map[string]interface{}{
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "X coordinate in canvas pixels (0-based)",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Y coordinate in canvas pixels (0-based)",
		},
	}
}

func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	fillProps := pointProperties()
	fillProps["color"] = map[string]interface{}{
		"type":        "string",
		"description": "Fill colour: a palette swatch id (e.g. \"red\") or a hex colour \"#RRGGBB\"",
	}
	fillProps["style"] = map[string]interface{}{
		"type":        "string",
		"description": "Stroke style: solid, pastel, pencil or brush. Default solid",
		"enum":        []string{"solid", "pastel", "pencil", "brush"},
	}
	fillProps["palette"] = map[string]interface{}{
		"type":        "string",
		"description": "Palette used to resolve swatch ids. Default is the server palette",
	}

	return []Tool{
		// Artwork
		{
			Name:        "canvas_load",
			Description: "Load a coloring page and rasterize it onto a fresh canvas. Starts a new session and discards any previous painting.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the artwork image (PNG, JPEG, GIF, BMP, TIFF or WebP)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas width in pixels. Default 1307",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas height in pixels. Default 1030",
					},
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Decode the file again even if it was loaded before",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "canvas_info",
			Description: "Describe the loaded artwork, the canvas size and the session counters.",
			InputSchema: emptySchema(),
		},

		// Painting
		{
			Name:        "canvas_fill",
			Description: "Flood-fill the region around a pixel with a colour. Outlines, out-of-bounds points and malformed colours leave the canvas unchanged and are reported in the status field.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": fillProps,
				"required":   []string{"x", "y", "color"},
			},
		},
		{
			Name:        "canvas_erase",
			Description: "Erase the region around a pixel back to white. Nearby shades of the seed colour are erased too.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pointProperties(),
				"required":   []string{"x", "y"},
			},
		},
		{
			Name:        "canvas_reset",
			Description: "Discard all painting and restore the canvas to the loaded artwork.",
			InputSchema: emptySchema(),
		},

		// Inspection
		{
			Name:        "canvas_render",
			Description: "Render the current canvas as a base64-encoded PNG, or save it to a file when path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional output file; the PNG is written there at full size instead of being returned",
					},
					"grid": map[string]interface{}{
						"type":        "integer",
						"description": "Optional grid spacing in canvas pixels. Draws a labelled coordinate grid over the returned image; the canvas itself is not changed",
					},
				},
			},
		},
		{
			Name:        "canvas_sample_color",
			Description: "Get the colour of one canvas pixel, with flags for outline and background pixels.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pointProperties(),
				"required":   []string{"x", "y"},
			},
		},
		{
			Name:        "canvas_regions",
			Description: "List the paintable regions of the canvas, largest first, with a seed point that fills each one.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"min_area": map[string]interface{}{
						"type":        "integer",
						"description": "Ignore regions with fewer pixels. Default 1",
						"default":     1,
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum regions returned. Default 50",
						"default":     50,
					},
				},
			},
		},
		{
			Name:        "canvas_map_point",
			Description: "Convert a point on a displayed, possibly resized view of the canvas into canvas pixel coordinates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"display_x": map[string]interface{}{
						"type":        "number",
						"description": "X position on the displayed view",
					},
					"display_y": map[string]interface{}{
						"type":        "number",
						"description": "Y position on the displayed view",
					},
					"display_width": map[string]interface{}{
						"type":        "number",
						"description": "Width of the displayed view",
					},
					"display_height": map[string]interface{}{
						"type":        "number",
						"description": "Height of the displayed view",
					},
				},
				"required": []string{"display_x", "display_y", "display_width", "display_height"},
			},
		},

		// Catalogues
		{
			Name:        "canvas_palettes",
			Description: "List the colour palettes and their swatch ids.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "canvas_styles",
			Description: "List the stroke styles with their opacity and shading variation.",
			InputSchema: emptySchema(),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
