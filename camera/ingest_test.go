package camera

import (
	"bytes"
	"mime/multipart"
	"net"
	"net/textproto"
	"strconv"
	"testing"
	"time"

	"camweb/sink"
)

var minimalJpeg = []byte{0xff, 0xd8, 0xff, 0xd9}

func writeIngestStream(t *testing.T, conn net.Conn, frames [][]byte) {
	defer conn.Close()
	writer := multipart.NewWriter(conn)
	if err := writer.SetBoundary(IngestBoundary); err != nil {
		t.Errorf("cannot set boundary: %v", err)
		return
	}
	for _, frame := range frames {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", "image/jpeg")
		header.Set("Content-Length", strconv.Itoa(len(frame)))
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Errorf("cannot create part: %v", err)
			return
		}
		if _, err := part.Write(frame); err != nil {
			t.Errorf("cannot write part: %v", err)
			return
		}
	}
	writer.Close()
}

func TestIngestPublishesEveryFrame(t *testing.T) {
	snk := sink.New()
	client, server := net.Pipe()

	done := make(chan struct{})
	go func() {
		serveIngestConnection(server, snk, IngestBoundary)
		close(done)
	}()

	second := []byte{0xff, 0xd8, 0x01, 0x02, 0xff, 0xd9}
	go writeIngestStream(t, client, [][]byte{minimalJpeg, second})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ingest connection did not terminate on stream end")
	}

	frame, gen := snk.Latest()
	if gen != 2 {
		t.Fatalf("expected 2 published frames, got generation %d", gen)
	}
	if !bytes.Equal(frame, second) {
		t.Errorf("latest frame mismatch: got %x, want %x", frame, second)
	}
}

func TestIngestStopsOnConnectionClose(t *testing.T) {
	snk := sink.New()
	client, server := net.Pipe()

	done := make(chan struct{})
	go func() {
		serveIngestConnection(server, snk, IngestBoundary)
		close(done)
	}()

	client.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ingest connection did not terminate after close")
	}
	if gen := snk.Generation(); gen != 0 {
		t.Errorf("expected no frames published, got generation %d", gen)
	}
}
