package timer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// fileOptions is the YAML shape of a defaults file.
type fileOptions struct {
	Duration         any    `yaml:"duration"`
	Format           string `yaml:"format"`
	Mode             string `yaml:"mode"`
	Debug            bool   `yaml:"debug"`
	Name             string `yaml:"name"`
	AutoRecordOnStop bool   `yaml:"auto_record_on_stop"`
	Location         string `yaml:"location"`
}

// LoadOptions reads timer defaults from a YAML file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read timer options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes timer defaults from YAML. Unknown keys are rejected.
// An empty document yields zero Options.
func ParseOptions(data []byte) (Options, error) {
	var fo fileOptions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fo); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	d, err := ParseDuration(fo.Duration)
	if err != nil {
		return Options{}, err
	}
	if fo.Mode != "" {
		if _, err := ParseMode(fo.Mode); err != nil {
			return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	}

	o := Options{
		Duration:         d,
		Format:           fo.Format,
		Mode:             fo.Mode,
		Debug:            fo.Debug,
		Name:             fo.Name,
		AutoRecordOnStop: fo.AutoRecordOnStop,
	}
	if fo.Location != "" {
		loc, err := time.LoadLocation(fo.Location)
		if err != nil {
			return Options{}, fmt.Errorf("%w: location %q: %v", ErrInvalidOptions, fo.Location, err)
		}
		o.Location = loc
	}
	return o, nil
}

// ParseDuration converts a loosely typed duration. Numbers and numeric
// strings are milliseconds; other strings use time.ParseDuration syntax.
// nil and the empty string yield zero.
func ParseDuration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case time.Duration:
		return x, nil
	case bool:
		return 0, fmt.Errorf("%w: duration %v", ErrInvalidOptions, x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, nil
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond, nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w: duration %q", ErrInvalidOptions, x)
		}
		return d, nil
	default:
		ms, err := cast.ToInt64E(x)
		if err != nil {
			return 0, fmt.Errorf("%w: duration %v: %v", ErrInvalidOptions, x, err)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
}
