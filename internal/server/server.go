package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
	"github.com/ironsheep/coloring-book-mcp/internal/config"
	"github.com/ironsheep/coloring-book-mcp/internal/paint"
	"github.com/ironsheep/coloring-book-mcp/internal/session"
)

// Version is reported in the initialize handshake. Set by main.
var Version = "0.1.0"

// Server handles MCP protocol communication
type Server struct {
	cfg   config.Config
	cache *canvas.ArtworkCache

	// opts are applied to every session the server starts.
	opts []session.Option

	mu      sync.Mutex
	session *session.Session
	artwork *canvas.ArtworkInfo
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a new MCP server instance. Extra session options are applied
// after the ones derived from cfg.
func New(cfg config.Config, opts ...session.Option) *Server {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := config.Default()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Palette == "" {
		cfg.Palette = paint.PaletteClassic
	}
	if cfg.MaxPixels <= 0 {
		cfg.MaxPixels = config.DefaultMaxPixels
	}

	base := []session.Option{session.WithIdleReset(cfg.IdleReset)}
	if cfg.Debug {
		base = append(base, session.WithLogger(log.Default()))
	}

	return &Server{
		cfg:   cfg,
		cache: canvas.NewArtworkCache(),
		opts:  append(base, opts...),
	}
}

// LoadArtwork decodes the coloring page at path, rasterizes it onto a canvas
// of the given size and starts a new session on it. Zero sizes fall back to
// the configured canvas size. Sizes beyond the configured pixel limit fail
// with canvas.ErrInvalidSize. Any previous session is closed.
func (s *Server) LoadArtwork(path string, width, height int) (*canvas.ArtworkInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("artwork path is required")
	}
	if width == 0 {
		width = s.cfg.Width
	}
	if height == 0 {
		height = s.cfg.Height
	}
	if !s.cfg.Fits(float64(width), float64(height)) {
		return nil, fmt.Errorf("%w: %dx%d canvas exceeds the %d pixel limit",
			canvas.ErrInvalidSize, width, height, s.cfg.MaxPixels)
	}

	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	buf, err := canvas.Rasterize(img, width, height)
	if err != nil {
		return nil, err
	}
	sess, err := session.New(buf, s.opts...)
	if err != nil {
		return nil, err
	}
	info := canvas.DescribeArtwork(path, img, width, height)

	s.mu.Lock()
	old := s.session
	s.session = sess
	s.artwork = info
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	if s.cfg.Debug {
		log.Printf("Loaded artwork %s (%dx%d) onto %dx%d canvas",
			path, info.SourceWidth, info.SourceHeight, width, height)
	}
	return info, nil
}

// Close stops the active session.
func (s *Server) Close() {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	s.mu.Unlock()

	if sess != nil {
		sess.Close()
	}
}

// current returns the active session, or ErrNoArtwork.
func (s *Server) current() (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, fmt.Errorf("%w: call canvas_load first", session.ErrNoArtwork)
	}
	return s.session, nil
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads newline-delimited requests from r and writes responses to w
// until r is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			if err := encoder.Encode(s.errorResponse(nil, -32700, "Parse error", err.Error())); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "coloring-book-mcp",
				"version": Version,
			},
		},
	}
}
