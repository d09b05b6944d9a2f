package gstpipeline

import (
	"log"
	"os/exec"
	"strings"
)

// Available reports whether the gst-launch-1.0 binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath(GStreamerLaunch())
	return err == nil
}

// Pipeline is a running gst-launch-1.0 process.
type Pipeline struct {
	cmd *exec.Cmd
}

// Launch starts a long-running pipeline and returns without waiting for it.
func Launch(pipeline string) (*Pipeline, error) {
	cmd := exec.Command("bash", "-c", pipeline)
	log.Print(strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Pipeline{cmd: cmd}, nil
}

// Wait blocks until the pipeline process exits.
func (p *Pipeline) Wait() error {
	return p.cmd.Wait()
}

// Stop kills the pipeline process. The process is reaped by whoever is
// blocked in Wait.
func (p *Pipeline) Stop() {
	if p.cmd.Process == nil {
		return
	}
	if err := p.cmd.Process.Kill(); err != nil {
		log.Print("Cannot kill GStreamer pipeline: ", err)
	}
}

// Run executes a one-shot pipeline to completion, such as a single buffer
// capture into a filesink.
func Run(pipeline string) error {
	cmd := exec.Command("bash", "-c", pipeline)
	log.Print(strings.Join(cmd.Args, " "))
	return cmd.Run()
}
