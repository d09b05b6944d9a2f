package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"camweb/sink"
)

// FrameBoundary separates the JPEG parts of the live stream response.
const FrameBoundary = "FRAME"

// Snapshotter is the one-shot still capture operation of the camera source.
type Snapshotter interface {
	Snapshot(path string) error
}

// Server dispatches HTTP requests by exact path match: the landing redirect,
// the viewer page, the live MJPEG stream, the snapshot trigger and the
// status endpoints. Anything else is a 404.
type Server struct {
	sink        *sink.Sink
	camera      Snapshotter
	template    []byte
	snapshotDir string
	clients     atomic.Int32
}

func New(snk *sink.Sink, camera Snapshotter, template []byte, snapshotDir string) *Server {
	return &Server{
		sink:        snk,
		camera:      camera,
		template:    template,
		snapshotDir: snapshotDir,
	}
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.NotFound(rw, req)
		return
	}
	switch req.URL.Path {
	case "/":
		rw.Header().Set("Location", "/index.html")
		rw.WriteHeader(http.StatusMovedPermanently)
	case "/index.html":
		s.handleIndex(rw)
	case "/stream.mjpg":
		s.handleStream(rw, req)
	case "/snapshot":
		s.handleSnapshot(rw)
	case "/status":
		s.handleStatus(rw)
	case "/status.ws":
		s.handleStatusWS(rw, req)
	default:
		http.NotFound(rw, req)
	}
}

func (s *Server) handleIndex(rw http.ResponseWriter) {
	rw.Header().Set("Content-Type", "text/html")
	rw.Header().Set("Content-Length", strconv.Itoa(len(s.template)))
	rw.WriteHeader(http.StatusOK)
	rw.Write(s.template)
}

// handleStream serves the unbounded multipart response. The loop is driven
// entirely by sink publish cadence and exits only when a write to this
// client fails.
func (s *Server) handleStream(rw http.ResponseWriter, req *http.Request) {
	log.Print("Streaming client connected: ", req.RemoteAddr)
	header := rw.Header()
	header.Set("Age", "0")
	header.Set("Cache-Control", "no-cache, private")
	header.Set("Pragma", "no-cache")
	header.Set("Content-Type", "multipart/x-mixed-replace; boundary="+FrameBoundary)
	rw.WriteHeader(http.StatusOK)

	s.clients.Add(1)
	defer s.clients.Add(-1)

	// push the response header out before the first frame arrives
	flusher, _ := rw.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}
	// a frame published before this client attached is served right away
	frame, gen := s.sink.Latest()
	for {
		if frame != nil {
			if err := writeFrame(rw, frame); err != nil {
				log.Print("Removed streaming client ", req.RemoteAddr, ": ", err)
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		frame, gen = s.sink.AwaitNext(gen)
	}
}

func writeFrame(w io.Writer, frame []byte) error {
	if _, err := fmt.Fprintf(w, "--%s\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n",
		FrameBoundary, len(frame)); err != nil {
		return err
	}
	if _, err := w.Write(frame); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\r\n")
	return err
}

func (s *Server) handleSnapshot(rw http.ResponseWriter) {
	path, err := s.captureSnapshot()
	if err != nil {
		log.Print("Error capturing snapshot: ", err)
		rw.WriteHeader(http.StatusInternalServerError)
		io.WriteString(rw, "Failed to save snapshot.")
		return
	}
	log.Print("Snapshot saved to ", path)
	rw.WriteHeader(http.StatusOK)
	io.WriteString(rw, "Snapshot saved.")
}

// captureSnapshot writes a still image named by the current local timestamp.
// Requests within the same second share a filename and overwrite each other.
func (s *Server) captureSnapshot() (string, error) {
	if err := os.MkdirAll(s.snapshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create snapshot directory: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(s.snapshotDir, "snapshot_"+timestamp+".jpg")
	if err := s.camera.Snapshot(path); err != nil {
		return "", err
	}
	return path, nil
}
