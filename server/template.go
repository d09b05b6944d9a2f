package server

import (
	"log"
	"os"
	"path/filepath"
)

const fallbackTemplate = "<html><body><h1>Error: Template not found.</h1></body></html>"

// LoadTemplate reads the viewer page from <baseDir>/template/index.html.
// A missing template is not fatal: a fixed error body is served instead so
// the stream endpoints stay reachable.
func LoadTemplate(baseDir string) []byte {
	path := filepath.Join(baseDir, "template", "index.html")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Print("HTML template file ", path, " not found: ", err)
		return []byte(fallbackTemplate)
	}
	return data
}
