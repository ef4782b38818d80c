package registry

// Config sizes the worker pool behind InvokeAllPartitioned.
type Config struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

// NewConfig normalizes non-positive sizes to their defaults.
func NewConfig(bufferSize int, numWorkers int) Config {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return Config{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}
