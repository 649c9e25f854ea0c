package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Server handles web requests for the sphere raytracer
type Server struct {
	port      int
	scenesDir string // Directory scanned for JSON scenes
	console   *Console
}

// NewServer creates a new web server
func NewServer(port int, scenesDir string) *Server {
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		console:   NewConsole(DefaultConsoleSize),
	}
}

// Handler returns the router with every API endpoint registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/console", s.handleConsole)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes followed by JSON scenes found in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		log.Printf("Failed to list scenes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list scenes")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scenes})
}

// handleConsole returns the most recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": s.console.Messages()})
}

// createScene builds a scene by ID. JSON scenes are only loaded when they
// were discovered in the scenes directory, so clients cannot read arbitrary files.
func (s *Server) createScene(sceneID string) (*scene.Scene, error) {
	for _, info := range scene.ListBuiltinScenes() {
		if info.ID == sceneID {
			return scene.Create(sceneID)
		}
	}

	jsonScenes, err := scene.ListJSONScenes(s.scenesDir)
	if err != nil {
		return nil, err
	}
	for _, info := range jsonScenes {
		if info.ID == sceneID {
			return scene.LoadFile(info.FilePath)
		}
	}

	return nil, fmt.Errorf("unknown scene: %s", sceneID)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
