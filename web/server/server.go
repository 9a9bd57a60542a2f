// Package server exposes the renderer to a browser-based viewer. It is
// a display-side collaborator: the render core runs on its background
// goroutine while the client polls progress once per display frame and
// fetches the framebuffer whenever the dirty flag reports unread
// changes.
package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/rtview/go-interactive-raytracer/pkg/config"
	"github.com/rtview/go-interactive-raytracer/pkg/renderer"
)

// Server handles web requests for the interactive raytracer
type Server struct {
	port      int
	staticDir string
	renderer  *renderer.Renderer
	fb        *renderer.Framebuffer
	console   *ConsoleLog
}

// NewServer creates a new web server around a shared renderer and
// framebuffer
func NewServer(port int, staticDir string) *Server {
	console := NewConsoleLog()
	return &Server{
		port:      port,
		staticDir: staticDir,
		renderer:  renderer.NewRenderer(renderer.DefaultCameraConfig(), console),
		fb:        renderer.NewFramebuffer(),
		console:   console,
	}
}

// RenderRequest represents a render request from the client. Omitted
// fields keep the current configuration.
type RenderRequest struct {
	Scene           string `json:"scene"`
	Width           *int   `json:"width"`
	SamplesPerPixel *int   `json:"samplesPerPixel"`
	MaxDepth        *int   `json:"maxDepth"`
	Antialiasing    *bool  `json:"antialiasing"`
	Shadows         *bool  `json:"shadows"`
	Reflections     *bool  `json:"reflections"`
	Refractions     *bool  `json:"refractions"`
	Restart         bool   `json:"restart"`
}

// ProgressResponse is what the display loop polls once per frame
type ProgressResponse struct {
	Progress  float64 `json:"progress"`
	Rendering bool    `json:"rendering"`
	Dirty     bool    `json:"dirty"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Stats     Stats   `json:"stats"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int     `json:"totalPixels"`
	CompletedPixels int     `json:"completedPixels"`
	TotalSamples    int64   `json:"totalSamples"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	ElapsedMs       int64   `json:"elapsedMs"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// Handler returns the HTTP handler for the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/cancel", s.handleCancel)
	mux.HandleFunc("/api/progress", s.handleProgress)
	mux.HandleFunc("/api/frame", s.handleFrame)
	mux.HandleFunc("/api/preview", s.handlePreview)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server and blocks
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Close cancels any in-flight render and waits for it to finish
func (s *Server) Close() {
	s.renderer.RequestCancel()
	s.renderer.Wait()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender starts a background render and returns immediately
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RenderRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid request: %v", err)})
			return
		}
	}

	if s.renderer.Rendering() && !req.Restart {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "render already in progress"})
		return
	}

	sceneCfg := config.Default()
	if req.Scene != "" {
		sceneCfg.Scene.Name = req.Scene
	}
	sceneObj, err := sceneCfg.BuildScene()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	cfg := s.renderer.Config()
	applyOverrides(&cfg, req)
	s.renderer.Configure(cfg)

	s.renderer.BeginRender(sceneObj, s.fb)

	width, height := s.fb.Size()
	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"status": "started",
		"width":  width,
		"height": height,
	})
}

// handleCancel requests cancellation of the in-flight render
func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.renderer.RequestCancel()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelling"})
}

// handleProgress reports the render progress and signal state
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	stats := s.renderer.Stats()
	width, height := s.fb.Size()

	elapsedMs := stats.Elapsed.Milliseconds()
	pixelsPerSecond := 0.0
	if stats.Elapsed > 0 {
		pixelsPerSecond = float64(stats.CompletedPixels) / stats.Elapsed.Seconds()
	}

	writeJSON(w, http.StatusOK, ProgressResponse{
		Progress:  s.renderer.Progress(),
		Rendering: s.renderer.Rendering(),
		Dirty:     s.renderer.Dirty(),
		Width:     width,
		Height:    height,
		Stats: Stats{
			TotalPixels:     stats.TotalPixels,
			CompletedPixels: stats.CompletedPixels,
			TotalSamples:    stats.TotalSamples,
			SamplesPerPixel: stats.SamplesPerPixel,
			ElapsedMs:       elapsedMs,
			PixelsPerSecond: pixelsPerSecond,
		},
	})
}

// handleFrame serves the current framebuffer as PNG and consumes the
// dirty flag, acknowledging that the client has copied the buffer out.
// The flag is taken before the snapshot so a pixel committed during
// the copy re-signals instead of being acknowledged unseen.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	s.renderer.TakeDirty()
	img := s.fb.Image()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding frame: %v", err)
	}
}

// handlePreview serves a downscaled copy of the framebuffer, useful
// for thumbnails while a large render is in flight. The dirty flag is
// left untouched.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	img := s.fb.Image()

	targetWidth := 200
	if v := r.URL.Query().Get("width"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid width"})
			return
		}
		targetWidth = parsed
	}

	bounds := img.Bounds()
	if bounds.Dx() > targetWidth {
		targetHeight := bounds.Dy() * targetWidth / bounds.Dx()
		if targetHeight < 1 {
			targetHeight = 1
		}
		scaled := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
		img = scaled
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding preview: %v", err)
	}
}

// handleConsole returns console messages at or after the given
// sequence number
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	since := 0
	if v := r.URL.Query().Get("since"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid since"})
			return
		}
		since = parsed
	}
	writeJSON(w, http.StatusOK, s.console.Since(since))
}

// applyOverrides merges the request's optional fields into the camera
// configuration
func applyOverrides(cfg *renderer.CameraConfig, req RenderRequest) {
	if req.Width != nil && *req.Width > 0 {
		cfg.Width = *req.Width
	}
	if req.SamplesPerPixel != nil && *req.SamplesPerPixel > 0 {
		cfg.SamplesPerPixel = *req.SamplesPerPixel
	}
	if req.MaxDepth != nil && *req.MaxDepth >= 0 {
		cfg.MaxDepth = *req.MaxDepth
	}
	if req.Antialiasing != nil {
		cfg.Antialiasing = *req.Antialiasing
	}
	if req.Shadows != nil {
		cfg.Shadows = *req.Shadows
	}
	if req.Reflections != nil {
		cfg.Reflections = *req.Reflections
	}
	if req.Refractions != nil {
		cfg.Refractions = *req.Refractions
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
