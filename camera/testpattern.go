package camera

import (
	"fmt"
	"os"
	"time"

	"github.com/Hypnotriod/jpegenc"

	"camweb/sink"
)

var jpegParams = jpegenc.EncodeParams{
	QualityFactor: jpegenc.QualityFactorBest,
	PixelType:     jpegenc.PixelTypeRGB888,
	Subsample:     jpegenc.Subsample444,
}

// TestPatternConfig describes the synthetic source used when no camera
// pipeline is available.
type TestPatternConfig struct {
	Width          int
	Height         int
	SnapshotWidth  int
	SnapshotHeight int
	FrameRate      int
	Flip           Flip
}

// TestPattern generates a moving color gradient, encodes it to JPEG and
// publishes it into the sink at a fixed frame rate. It stands in for the
// camera pipeline so the server still runs without capture hardware.
type TestPattern struct {
	cfg  TestPatternConfig
	sink *sink.Sink
	stop chan struct{}
	done chan struct{}
}

func NewTestPattern(cfg TestPatternConfig, snk *sink.Sink) *TestPattern {
	return &TestPattern{
		cfg:  cfg,
		sink: snk,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (t *TestPattern) Start() error {
	go t.run()
	return nil
}

func (t *TestPattern) Stop() {
	select {
	case <-t.stop:
	default:
		close(t.stop)
	}
	<-t.done
}

func (t *TestPattern) run() {
	defer close(t.done)
	pixels := make([]byte, t.cfg.Width*t.cfg.Height*3)
	buffer := make([]byte, t.cfg.Width*t.cfg.Height)
	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.FrameRate))
	defer ticker.Stop()
	var phase int
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
		}
		renderPattern(pixels, t.cfg.Width, t.cfg.Height, phase, t.cfg.Flip)
		phase++
		size, err := jpegenc.Encode(t.cfg.Width, t.cfg.Height, jpegParams, pixels, buffer)
		if err != nil {
			continue
		}
		frame := make([]byte, size)
		copy(frame, buffer[:size])
		t.sink.Publish(frame)
	}
}

// Snapshot renders one still pattern frame at snapshot resolution and
// writes it to the given file.
func (t *TestPattern) Snapshot(path string) error {
	width, height := t.cfg.SnapshotWidth, t.cfg.SnapshotHeight
	pixels := make([]byte, width*height*3)
	renderPattern(pixels, width, height, 0, t.cfg.Flip)
	buffer := make([]byte, width*height)
	size, err := jpegenc.Encode(width, height, jpegParams, pixels, buffer)
	if err != nil {
		return fmt.Errorf("cannot encode snapshot frame: %w", err)
	}
	if err := os.WriteFile(path, buffer[:size], 0o644); err != nil {
		return fmt.Errorf("cannot write snapshot file: %w", err)
	}
	return nil
}

// renderPattern fills pixels with a diagonal RGB gradient shifted by phase.
// The flip transform is baked into the sampling coordinates so the rendered
// output matches what a mirrored camera would produce.
func renderPattern(pixels []byte, width int, height int, phase int, flip Flip) {
	for y := 0; y < height; y++ {
		sy := y
		if flip.Vertical() {
			sy = height - 1 - y
		}
		for x := 0; x < width; x++ {
			sx := x
			if flip.Horizontal() {
				sx = width - 1 - x
			}
			i := (y*width + x) * 3
			pixels[i] = byte((sx*255/width + phase) & 0xff)
			pixels[i+1] = byte((sy * 255 / height) & 0xff)
			pixels[i+2] = byte(((sx + sy) * 255 / (width + height)) & 0xff)
		}
	}
}
