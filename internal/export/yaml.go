package export

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// writeYAML encodes the snapshot as a YAML document.
func writeYAML(buf *bytes.Buffer, s *Snapshot) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode yaml snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml snapshot: %w", err)
	}
	return nil
}
