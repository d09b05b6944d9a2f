package gstpipeline

import "fmt"

func GStreamerLaunch() string {
	return "gst-launch-1.0"
}

func UsbJpegCameraV4l2Source(device string) string {
	return fmt.Sprintf(" v4l2src device=%s io-mode=2", device)
}

func UsbJpegCameraV4l2SourceSingleShot(device string) string {
	return fmt.Sprintf(" v4l2src device=%s io-mode=2 num-buffers=1", device)
}

func UsbJpegCameraConfig(width uint, height uint) string {
	return fmt.Sprintf(" ! image/jpeg, width=%d, height=%d", width, height)
}

func JpegDecode() string {
	return " ! jpegdec"
}

func JpegEncode(quality uint) string {
	return fmt.Sprintf(" ! jpegenc quality=%d", quality)
}

type FlipMethod string

const (
	FlipMethodNone       FlipMethod = "none"
	FlipMethodHorizontal FlipMethod = "horizontal-flip"
	FlipMethodVertical   FlipMethod = "vertical-flip"
	FlipMethodRotate180  FlipMethod = "rotate-180"
)

// VideoFlipMethod maps the requested mirroring to the videoflip element
// method name. Flipping both axes equals a 180 degree rotation.
func VideoFlipMethod(hflip bool, vflip bool) FlipMethod {
	switch {
	case hflip && vflip:
		return FlipMethodRotate180
	case hflip:
		return FlipMethodHorizontal
	case vflip:
		return FlipMethodVertical
	}
	return FlipMethodNone
}

func VideoFlip(method FlipMethod) string {
	if method == FlipMethodNone {
		return ""
	}
	return fmt.Sprintf(" ! videoflip method=%s", method)
}

func MjpegTcpStreamLocalhost(boundary string, port uint) string {
	return fmt.Sprintf(" ! multipartmux boundary=%s ! tcpclientsink host=127.0.0.1 port=%d",
		boundary, port)
}

func FileSink(location string) string {
	return fmt.Sprintf(" ! filesink location=%s", location)
}
