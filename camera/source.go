package camera

// Source is a capture device feeding JPEG frames into the frame sink.
// Snapshot is an independent one-shot capture path writing a still image
// directly to a file, it does not go through the sink.
type Source interface {
	Start() error
	Stop()
	Snapshot(path string) error
}
