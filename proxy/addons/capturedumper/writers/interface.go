package writers

// CaptureWriter is an interface for writing formatted records to a destination
type CaptureWriter interface {
	Write(identifier string, data []byte) (int, error)
	String() string
}
