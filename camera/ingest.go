package camera

import (
	"bufio"
	"io"
	"log"
	"mime/multipart"
	"net"

	"camweb/sink"
)

func serveIngestSocket(ln net.Listener, snk *sink.Sink, boundary string) {
	for {
		log.Print("Waiting for input stream at ", ln.Addr())
		conn, err := ln.Accept()
		if err != nil {
			log.Print("Ingest socket closed at ", ln.Addr())
			return
		}
		serveIngestConnection(conn, snk, boundary)
		conn.Close()
	}
}

// serveIngestConnection reads the multipart JPEG stream the pipeline pushes
// and publishes every complete frame into the sink. Each part body is one
// whole encoded image, frames are never published partially.
func serveIngestConnection(conn net.Conn, snk *sink.Sink, boundary string) {
	log.Print("Accepted input stream at ", conn.RemoteAddr())
	reader := multipart.NewReader(bufio.NewReader(conn), boundary)
	for {
		part, err := reader.NextPart()
		if err != nil {
			if err == io.EOF {
				log.Print("Input stream closed at ", conn.RemoteAddr())
			} else {
				log.Print("Input stream read error: ", err)
			}
			return
		}
		frame, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			log.Print("Input stream frame read error: ", err)
			return
		}
		if len(frame) == 0 {
			continue
		}
		snk.Publish(frame)
	}
}
