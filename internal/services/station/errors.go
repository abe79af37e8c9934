package station

import "fmt"

// MalformedSnapshotError reports a successfully parsed document that lacks
// an expected observation field, which usually means the upstream schema
// changed underneath us.
type MalformedSnapshotError struct {
	Path string
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("snapshot is missing expected field %q", e.Path)
}
