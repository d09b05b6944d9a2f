package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

var json jsoniter.API = jsoniter.ConfigCompatibleWithStandardLibrary

const statusPushInterval = 1 * time.Second

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     checkOrigin,
}

func checkOrigin(r *http.Request) bool {
	return true
}

// Status is the live stream health document: how many clients are attached
// and how many frames the capture source has published.
type Status struct {
	Clients int32  `json:"clients"`
	Frames  uint64 `json:"frames"`
}

func (s *Server) status() Status {
	return Status{
		Clients: s.clients.Load(),
		Frames:  s.sink.Generation(),
	}
}

func (s *Server) handleStatus(rw http.ResponseWriter) {
	body, err := json.Marshal(s.status())
	if err != nil {
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	rw.Write(body)
}

// handleStatusWS pushes the status document to the peer once a second until
// the connection goes away.
func (s *Server) handleStatusWS(rw http.ResponseWriter, req *http.Request) {
	conn, err := wsUpgrader.Upgrade(rw, req, nil)
	if err != nil {
		log.Print("Websocket upgrade error: ", err)
		return
	}
	log.Print("Websocket connection established with ", req.RemoteAddr)
	defer conn.Close()
	ticker := time.NewTicker(statusPushInterval)
	defer ticker.Stop()
	for {
		message, err := json.Marshal(s.status())
		if err != nil {
			log.Print("Websocket status format error: ", err)
			break
		}
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Print("Websocket write error: ", err)
			break
		}
		<-ticker.C
	}
	log.Print("Websocket connection terminated with ", req.RemoteAddr)
}
