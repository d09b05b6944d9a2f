package gstpipeline

import "testing"

func TestBuildLiveStreamPipeline(t *testing.T) {
	pipeline := GStreamerLaunch() +
		UsbJpegCameraV4l2Source("/dev/video0") +
		UsbJpegCameraConfig(640, 480) +
		JpegDecode() +
		VideoFlip(VideoFlipMethod(true, false)) +
		JpegEncode(50) +
		MjpegTcpStreamLocalhost("frame", 9990)
	expected := "gst-launch-1.0 v4l2src device=/dev/video0 io-mode=2" +
		" ! image/jpeg, width=640, height=480" +
		" ! jpegdec" +
		" ! videoflip method=horizontal-flip" +
		" ! jpegenc quality=50" +
		" ! multipartmux boundary=frame ! tcpclientsink host=127.0.0.1 port=9990"
	if pipeline != expected {
		t.Errorf("unexpected pipeline:\n got %q\nwant %q", pipeline, expected)
	}
}

func TestBuildSnapshotPipeline(t *testing.T) {
	pipeline := GStreamerLaunch() +
		UsbJpegCameraV4l2SourceSingleShot("/dev/video0") +
		UsbJpegCameraConfig(1920, 1080) +
		JpegDecode() +
		JpegEncode(90) +
		FileSink("/tmp/snapshot.jpg")
	expected := "gst-launch-1.0 v4l2src device=/dev/video0 io-mode=2 num-buffers=1" +
		" ! image/jpeg, width=1920, height=1080" +
		" ! jpegdec" +
		" ! jpegenc quality=90" +
		" ! filesink location=/tmp/snapshot.jpg"
	if pipeline != expected {
		t.Errorf("unexpected pipeline:\n got %q\nwant %q", pipeline, expected)
	}
}

func TestVideoFlipMethod(t *testing.T) {
	cases := []struct {
		hflip, vflip bool
		expected     FlipMethod
	}{
		{false, false, FlipMethodNone},
		{true, false, FlipMethodHorizontal},
		{false, true, FlipMethodVertical},
		{true, true, FlipMethodRotate180},
	}
	for _, c := range cases {
		if method := VideoFlipMethod(c.hflip, c.vflip); method != c.expected {
			t.Errorf("VideoFlipMethod(%v, %v) = %q, want %q", c.hflip, c.vflip, method, c.expected)
		}
	}
	if fragment := VideoFlip(FlipMethodNone); fragment != "" {
		t.Errorf("VideoFlip(none) should produce no fragment, got %q", fragment)
	}
}
