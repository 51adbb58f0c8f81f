package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/savings-planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport formats results and writes them to a timestamped file in the
// working directory, returning the filename. "all" writes every built-in format.
func GenerateReport(results *domain.ScenarioComparison, format string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, results, Extension(f.Name()))
			if err != nil {
				return written, err
			}
			written = append(written, name)
		}
		return written, nil
	}

	f, err := ResolveFormatter(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, results, Extension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render formats results and writes them to w.
func Render(w io.Writer, results *domain.ScenarioComparison, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes config as YAML, or TOML when filename ends in ".toml".
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var b []byte
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		b = buf.Bytes()
	} else {
		var err error
		if b, err = yaml.Marshal(config); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	}
	return os.WriteFile(filename, b, 0644)
}
