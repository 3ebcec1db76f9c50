package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/coloring-book-mcp/internal/config"
	"github.com/ironsheep/coloring-book-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("coloring-book-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("coloring-book-mcp - MCP server for an interactive flood-fill coloring book")
			fmt.Println()
			fmt.Println("Usage: coloring-book-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=<path>        Coloring page loaded at startup\n", config.EnvArtwork)
			fmt.Printf("  %s=<px>            Canvas width (default %d)\n", config.EnvWidth, config.DefaultWidth)
			fmt.Printf("  %s=<px>           Canvas height (default %d)\n", config.EnvHeight, config.DefaultHeight)
			fmt.Printf("  %s=<duration>  Reset after inactivity, 0 disables (default 60s)\n", config.EnvIdleReset)
			fmt.Printf("  %s=<name>        classic or crayon (default classic)\n", config.EnvPalette)
			fmt.Printf("  %s=<n>        Largest canvas or scaled render in pixels (default %d)\n", config.EnvMaxPixels, config.DefaultMaxPixels)
			fmt.Printf("  %s=debug       Enable debug logging\n", config.EnvLogLevel)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Debug {
		log.Printf("Coloring Book MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Canvas %dx%d, palette %s, idle reset %v, pixel limit %d", cfg.Width, cfg.Height, cfg.Palette, cfg.IdleReset, cfg.MaxPixels)
	}

	server.Version = Version
	srv := server.New(cfg)

	if cfg.Artwork != "" {
		if _, err := srv.LoadArtwork(cfg.Artwork, 0, 0); err != nil {
			srv.Close()
			log.Fatalf("Failed to load artwork: %v", err)
		}
	}

	// log.Fatalf skips deferred calls, so the session is closed before exiting.
	err = srv.Run()
	srv.Close()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
