package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Request limits for /api/render
const (
	minDimension = 16
	maxDimension = 2000
	maxSamples   = 10000
	maxDepth     = 1000
)

var renderCounter atomic.Int64

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene ID from /api/scenes
	Width   int    // Image width
	Height  int    // Image height
	Samples int    // Samples per pixel
	Depth   int    // Maximum ray bounce depth
	Seed    int64
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 20, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 50, 1, maxDepth); err != nil {
		return nil, err
	}
	if seed := query.Get("seed"); seed != "" {
		if req.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", seed)
		}
	}

	return req, nil
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	raytracer := renderer.NewRaytracer(sceneObj, renderer.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.Depth,
	})

	img, stats := raytracer.Render(renderer.RenderOptions{
		Seed:   req.Seed,
		Logger: NewWebLogger(renderID, s.console),
	})

	var buf bytes.Buffer
	if err := output.EncodePNG(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
