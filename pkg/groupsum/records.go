package groupsum

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

// Record file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// jsonAPI keeps numbers as json.Number so that decimal digits survive decoding.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// DetectFormat derives the record format from a file extension.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadRecords reads a JSON or YAML array of objects.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleGroupSum).
			Operation("load").
			Messagef("cannot read records from %s", path).
			Cause(err).
			Detail("path", path).
			Build()
	}
	return DecodeRecords(data, DetectFormat(path))
}

// DecodeRecords parses data in the given format.
func DecodeRecords(data []byte, format string) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	switch format {
	case FormatJSON:
		err = jsonAPI.Unmarshal(data, &records)
	case FormatYAML:
		err = yaml.Unmarshal(data, &records)
	default:
		return nil, errors.InvalidInput(errors.ModuleGroupSum, "decode", format, "json|yaml")
	}
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleGroupSum).
			Operation("decode").
			Messagef("invalid %s records", format).
			Cause(err).
			Code(mdwerror.CodeInvalidFormat).
			Build()
	}
	return records, nil
}
