package camera

import (
	"fmt"
	"log"
	"net"

	"camweb/gstpipeline"
	"camweb/sink"
)

// IngestBoundary is the multipart boundary the live pipeline muxes its JPEG
// frames with on the localhost ingest socket.
const IngestBoundary = "frame"

// PipelineConfig describes the camera device and the encoding parameters of
// the live GStreamer pipeline.
type PipelineConfig struct {
	Device         string
	Width          uint
	Height         uint
	SnapshotWidth  uint
	SnapshotHeight uint
	Quality        uint
	Flip           Flip
	IngestPort     uint
}

// Pipeline captures frames by launching a GStreamer process that encodes
// the camera output to JPEG and pushes it over a localhost TCP socket. The
// ingest listener on that socket splits the multipart stream into frames
// and publishes each one into the sink.
type Pipeline struct {
	cfg  PipelineConfig
	sink *sink.Sink
	pipe *gstpipeline.Pipeline
	ln   net.Listener
}

func NewPipeline(cfg PipelineConfig, snk *sink.Sink) *Pipeline {
	return &Pipeline{cfg: cfg, sink: snk}
}

// Start opens the ingest socket and launches the live pipeline feeding it.
func (p *Pipeline) Start() error {
	address := fmt.Sprintf("127.0.0.1:%d", p.cfg.IngestPort)
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("cannot open ingest socket at %s: %w", address, err)
	}
	p.ln = ln
	go serveIngestSocket(ln, p.sink, IngestBoundary)

	method := gstpipeline.VideoFlipMethod(p.cfg.Flip.Horizontal(), p.cfg.Flip.Vertical())
	pipe, err := gstpipeline.Launch(gstpipeline.GStreamerLaunch() +
		gstpipeline.UsbJpegCameraV4l2Source(p.cfg.Device) +
		gstpipeline.UsbJpegCameraConfig(p.cfg.Width, p.cfg.Height) +
		gstpipeline.JpegDecode() +
		gstpipeline.VideoFlip(method) +
		gstpipeline.JpegEncode(p.cfg.Quality) +
		gstpipeline.MjpegTcpStreamLocalhost(IngestBoundary, p.cfg.IngestPort))
	if err != nil {
		ln.Close()
		return fmt.Errorf("cannot start GStreamer pipeline: %w", err)
	}
	p.pipe = pipe
	go func() {
		if err := pipe.Wait(); err != nil {
			log.Print("Camera pipeline terminated: ", err)
		}
	}()
	return nil
}

func (p *Pipeline) Stop() {
	if p.pipe != nil {
		p.pipe.Stop()
		p.pipe = nil
	}
	if p.ln != nil {
		p.ln.Close()
		p.ln = nil
	}
}

// Snapshot captures a single still frame at snapshot resolution straight to
// the given file. This is a separate one-shot pipeline, the live stream is
// not interrupted.
func (p *Pipeline) Snapshot(path string) error {
	method := gstpipeline.VideoFlipMethod(p.cfg.Flip.Horizontal(), p.cfg.Flip.Vertical())
	err := gstpipeline.Run(gstpipeline.GStreamerLaunch() +
		gstpipeline.UsbJpegCameraV4l2SourceSingleShot(p.cfg.Device) +
		gstpipeline.UsbJpegCameraConfig(p.cfg.SnapshotWidth, p.cfg.SnapshotHeight) +
		gstpipeline.JpegDecode() +
		gstpipeline.VideoFlip(method) +
		gstpipeline.JpegEncode(p.cfg.Quality) +
		gstpipeline.FileSink(path))
	if err != nil {
		return fmt.Errorf("snapshot pipeline failed: %w", err)
	}
	return nil
}
