package sink

import "fmt"

// InstantiationError is returned when an asset cannot be created or written.
// It is handed to the caller unchanged; nothing retries it.
type InstantiationError struct {
	Op   string // "resolve", "instantiate", "encode" or "write"
	Path string
	Err  error
}

func (e *InstantiationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("create asset: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("create asset: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InstantiationError) Unwrap() error {
	return e.Err
}
