package main

import (
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"camweb/camera"
	"camweb/gstpipeline"
	"camweb/server"
	"camweb/sink"
)

const SERVER_ADDRESS = ":8000"
const INGEST_PORT = 9990
const CAMERA_DEVICE = "/dev/video0"
const CAMERA_WIDTH = 640
const CAMERA_HEIGHT = 480
const SNAPSHOT_WIDTH = 1920
const SNAPSHOT_HEIGHT = 1080
const JPEG_QUALITY = 50
const TEST_PATTERN_FPS = 15

// localIP resolves the local IPv4 address for the startup log. No packet is
// sent, the UDP dial only selects the outbound interface.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// baseDir is the directory of the running binary. The HTML template and the
// snapshot directory are resolved relative to it.
func baseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// makeSource starts the GStreamer camera pipeline when gst-launch-1.0 is
// available, otherwise the synthetic test pattern keeps the server usable
// without capture hardware.
func makeSource(flip camera.Flip, snk *sink.Sink) camera.Source {
	if gstpipeline.Available() {
		src := camera.NewPipeline(camera.PipelineConfig{
			Device:         CAMERA_DEVICE,
			Width:          CAMERA_WIDTH,
			Height:         CAMERA_HEIGHT,
			SnapshotWidth:  SNAPSHOT_WIDTH,
			SnapshotHeight: SNAPSHOT_HEIGHT,
			Quality:        JPEG_QUALITY,
			Flip:           flip,
			IngestPort:     INGEST_PORT,
		}, snk)
		err := src.Start()
		if err == nil {
			return src
		}
		log.Print("Cannot start camera pipeline: ", err)
	} else {
		log.Print("gst-launch-1.0 not found on PATH")
	}
	log.Print("Using synthetic test pattern source")
	pattern := camera.NewTestPattern(camera.TestPatternConfig{
		Width:          CAMERA_WIDTH,
		Height:         CAMERA_HEIGHT,
		SnapshotWidth:  SNAPSHOT_WIDTH,
		SnapshotHeight: SNAPSHOT_HEIGHT,
		FrameRate:      TEST_PATTERN_FPS,
		Flip:           flip,
	}, snk)
	pattern.Start()
	return pattern
}

func main() {
	flipFlag := flag.String("flip", "none",
		"flip mode: 'none' (default), 'h' (horizontal), 'v' (vertical), 'hv' (both)")
	flag.Parse()
	flip, err := camera.ParseFlip(*flipFlag)
	if err != nil {
		log.Fatal(err)
	}

	dir := baseDir()
	template := server.LoadTemplate(dir)
	snk := sink.New()
	source := makeSource(flip, snk)

	srv := &http.Server{
		Addr:    SERVER_ADDRESS,
		Handler: server.New(snk, source, template, filepath.Join(dir, "snapshots")),
	}
	serverErrors := make(chan error, 1)
	go func() {
		log.Print("Server started on http://", localIP(), SERVER_ADDRESS)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		log.Print("Server error: ", err)
	case sig := <-shutdown:
		log.Print("Received signal ", sig, ", shutting down")
	}
	source.Stop()
}
