package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
	"github.com/ironsheep/coloring-book-mcp/internal/paint"
	"github.com/ironsheep/coloring-book-mcp/internal/session"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "canvas_load", "canvas_fill").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// paramsError marks a tool failure caused by the caller's arguments.
type paramsError struct {
	err error
}

func (e *paramsError) Error() string { return e.err.Error() }
func (e *paramsError) Unwrap() error { return e.err }

func invalidParams(format string, args ...interface{}) error {
	return &paramsError{err: fmt.Errorf(format, args...)}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Malformed arguments return a JSON-RPC error with code -32602; any other tool
// failure uses code -32000. A fill that leaves the canvas unchanged is not a
// failure: its status is part of the result.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var pe *paramsError
		if errors.As(err, &pe) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up the active session
//  4. Calls the appropriate canvas/paint/session function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Artwork
	case "canvas_load":
		return s.handleCanvasLoad(args)
	case "canvas_info":
		return s.handleCanvasInfo(args)

	// Painting
	case "canvas_fill":
		return s.handleCanvasFill(args)
	case "canvas_erase":
		return s.handleCanvasErase(args)
	case "canvas_reset":
		return s.handleCanvasReset(args)

	// Inspection
	case "canvas_render":
		return s.handleCanvasRender(args)
	case "canvas_sample_color":
		return s.handleCanvasSampleColor(args)
	case "canvas_regions":
		return s.handleCanvasRegions(args)
	case "canvas_map_point":
		return s.handleCanvasMapPoint(args)

	// Catalogues
	case "canvas_palettes":
		return s.handleCanvasPalettes(args)
	case "canvas_styles":
		return s.handleCanvasStyles(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &paramsError{err: err}
	}
	return nil
}

// === Artwork Handlers ===

type canvasLoadArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Reload bool   `json:"reload"`
}

func (s *Server) handleCanvasLoad(args json.RawMessage) (interface{}, error) {
	var a canvasLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, invalidParams("path is required")
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, invalidParams("canvas size must be positive, got %dx%d", a.Width, a.Height)
	}

	if a.Reload {
		s.cache.Evict(a.Path)
	}

	info, err := s.LoadArtwork(a.Path, a.Width, a.Height)
	if errors.Is(err, canvas.ErrInvalidSize) {
		return nil, &paramsError{err: err}
	}
	return info, err
}

type infoResult struct {
	Loaded       bool                `json:"loaded"`
	Artwork      *canvas.ArtworkInfo `json:"artwork,omitempty"`
	Session      *session.Stats      `json:"session,omitempty"`
	Width        int                 `json:"width"`
	Height       int                 `json:"height"`
	Palette      string              `json:"palette"`
	DefaultStyle paint.Style         `json:"default_style"`
}

func (s *Server) handleCanvasInfo(args json.RawMessage) (interface{}, error) {
	s.mu.Lock()
	sess, artwork := s.session, s.artwork
	s.mu.Unlock()

	res := &infoResult{
		Width:        s.cfg.Width,
		Height:       s.cfg.Height,
		Palette:      s.cfg.Palette,
		DefaultStyle: paint.StyleSolid,
	}
	if sess == nil {
		return res, nil
	}

	sess.Touch()
	stats := sess.Stats()
	res.Loaded = true
	res.Artwork = artwork
	res.Session = &stats
	res.Width = stats.Width
	res.Height = stats.Height
	return res, nil
}

// === Painting Handlers ===

type canvasFillArgs struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Color   string `json:"color"`
	Style   string `json:"style"`
	Palette string `json:"palette"`
}

type fillResult struct {
	paint.FillResult
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color string      `json:"color"`
	Style paint.Style `json:"style,omitempty"`
	Erase bool        `json:"erase,omitempty"`
}

func (s *Server) handleCanvasFill(args json.RawMessage) (interface{}, error) {
	var a canvasFillArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	name := a.Palette
	if name == "" {
		name = s.cfg.Palette
	}
	palette, err := paint.LookupPalette(name)
	if err != nil {
		return nil, &paramsError{err: err}
	}

	style := paint.Style(a.Style)
	if style == "" {
		style = paint.StyleSolid
	}

	return s.fill(paint.FillRequest{
		X:     a.X,
		Y:     a.Y,
		Color: palette.Resolve(a.Color),
		Style: style,
	})
}

type canvasPointArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleCanvasErase(args json.RawMessage) (interface{}, error) {
	var a canvasPointArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.fill(paint.FillRequest{
		X:     a.X,
		Y:     a.Y,
		Color: canvas.HexOf(canvas.White.R, canvas.White.G, canvas.White.B),
		Erase: true,
	})
}

func (s *Server) fill(req paint.FillRequest) (interface{}, error) {
	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	res, err := sess.Fill(req)
	if err != nil {
		return nil, err
	}

	out := &fillResult{
		FillResult: res,
		X:          req.X,
		Y:          req.Y,
		Color:      req.Color,
		Erase:      req.Erase,
	}
	if !req.Erase {
		out.Style = req.Style
	}
	return out, nil
}

type resetResult struct {
	Status  string        `json:"status"`
	Session session.Stats `json:"session"`
}

func (s *Server) handleCanvasReset(args json.RawMessage) (interface{}, error) {
	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	if err := sess.Reset(); err != nil {
		return nil, err
	}
	return &resetResult{Status: "reset", Session: sess.Stats()}, nil
}

// === Inspection Handlers ===

type canvasRenderArgs struct {
	Scale float64 `json:"scale"`
	Path  string  `json:"path"`
	Grid  int     `json:"grid"`
}

func (s *Server) handleCanvasRender(args json.RawMessage) (interface{}, error) {
	var a canvasRenderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Scale < 0 {
		return nil, invalidParams("scale must be positive, got %g", a.Scale)
	}
	if a.Grid < 0 {
		return nil, invalidParams("grid spacing must be positive, got %d", a.Grid)
	}

	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	sess.Touch()

	if a.Path != "" {
		return sess.Save(a.Path)
	}

	stats := sess.Stats()
	w, h := float64(stats.Width)*a.Scale, float64(stats.Height)*a.Scale
	if !s.cfg.Fits(w, h) {
		return nil, invalidParams("scaled render %.0fx%.0f exceeds the %d pixel limit", w, h, s.cfg.MaxPixels)
	}
	return sess.Render(a.Scale, a.Grid)
}

func (s *Server) handleCanvasSampleColor(args json.RawMessage) (interface{}, error) {
	var a canvasPointArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	sess.Touch()

	res, err := sess.Sample(a.X, a.Y)
	if errors.Is(err, canvas.ErrOutOfBounds) {
		return nil, &paramsError{err: err}
	}
	return res, err
}

type canvasRegionsArgs struct {
	MinArea int `json:"min_area"`
	Limit   int `json:"limit"`
}

func (s *Server) handleCanvasRegions(args json.RawMessage) (interface{}, error) {
	var a canvasRegionsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.MinArea <= 0 {
		a.MinArea = 1
	}
	if a.Limit <= 0 {
		a.Limit = 50
	}

	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	sess.Touch()
	return sess.Regions(a.MinArea, a.Limit)
}

type canvasMapPointArgs struct {
	DisplayX      float64 `json:"display_x"`
	DisplayY      float64 `json:"display_y"`
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
}

type mapPointResult struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	InBounds bool `json:"in_bounds"`
	Width    int  `json:"width"`
	Height   int  `json:"height"`
}

func (s *Server) handleCanvasMapPoint(args json.RawMessage) (interface{}, error) {
	var a canvasMapPointArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	sess, err := s.current()
	if err != nil {
		return nil, err
	}
	sess.Touch()
	stats := sess.Stats()

	x, y, ok := canvas.DisplayToBuffer(a.DisplayX, a.DisplayY, a.DisplayWidth, a.DisplayHeight, stats.Width, stats.Height)
	if !ok {
		return nil, invalidParams("display size must be positive, got %gx%g", a.DisplayWidth, a.DisplayHeight)
	}
	return &mapPointResult{
		X:        x,
		Y:        y,
		InBounds: x >= 0 && x < stats.Width && y >= 0 && y < stats.Height,
		Width:    stats.Width,
		Height:   stats.Height,
	}, nil
}

// === Catalogue Handlers ===

type palettesResult struct {
	Active   string          `json:"active"`
	Palettes []paint.Palette `json:"palettes"`
}

func (s *Server) handleCanvasPalettes(args json.RawMessage) (interface{}, error) {
	return &palettesResult{
		Active:   s.cfg.Palette,
		Palettes: paint.Palettes(),
	}, nil
}

type styleInfo struct {
	Name paint.Style `json:"name"`
	paint.StrokeEffect
}

type stylesResult struct {
	Default paint.Style `json:"default"`
	Styles  []styleInfo `json:"styles"`
}

func (s *Server) handleCanvasStyles(args json.RawMessage) (interface{}, error) {
	res := &stylesResult{Default: paint.StyleSolid}
	for _, st := range paint.Styles() {
		e, _ := st.Effect()
		res.Styles = append(res.Styles, styleInfo{Name: st, StrokeEffect: e})
	}
	return res, nil
}
