package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vignesh-goutham/solid/pkg/demos"
)

// Supported formats: "text", "json", "yaml". Anything else is treated as "text".
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Writer writes demo results to an io.Writer in one format.
type Writer struct {
	out    io.Writer
	format string
}

func NewWriter(out io.Writer, format string) *Writer {
	if format == "" {
		format = FormatText
	}
	return &Writer{out: out, format: format}
}

func (w *Writer) Report(result demos.Result) error {
	var b []byte
	var err error

	switch w.format {
	case FormatJSON:
		b, err = json.Marshal(result)
		b = append(b, '\n')
	case FormatYAML:
		// yaml.Marshal already ends with a newline; the separator keeps multiple results parseable.
		b, err = yaml.Marshal(result)
		b = append([]byte("---\n"), b...)
	case FormatText:
		fallthrough
	default:
		b = []byte(fmt.Sprintf("%s: %s\n", result.Demo, result.Output))
	}

	if err != nil {
		return err
	}
	_, err = w.out.Write(b)
	return err
}
