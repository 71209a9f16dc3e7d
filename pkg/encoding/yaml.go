package encoding

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure. Decoding is strict: unknown keys are treated as
// errors. An empty document is valid and leaves the structure unmodified.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(value); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	})
}
