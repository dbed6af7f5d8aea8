package core

// Marshaler abstracts serialization so config writers can be tested
// without touching real encoders.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
