package toolutils

import (
	"io"

	"github.com/goccy/go-yaml"
)

// DecodeYaml strictly decodes one YAML document into dest.
// Unknown keys are errors.
func DecodeYaml(dest any, r io.Reader) error {
	return yaml.NewDecoder(r, yaml.Strict()).Decode(dest)
}
