package host

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"victoriaos-connector/pkg/fields"
)

// Job is a node run described in a YAML or JSON file.
type Job struct {
	Node           string `yaml:"node"`
	ContinueOnFail bool   `yaml:"continueOnFail"`
	ValidateIDs    bool   `yaml:"validateIds"`
	// Parameters apply to every item unless the item overrides them.
	Parameters fields.Fields   `yaml:"parameters"`
	Items      []fields.Fields `yaml:"items"`
}

// ItemCount is the number of items to run. A job without items runs once.
func (j Job) ItemCount() int {
	if len(j.Items) == 0 {
		return 1
	}
	return len(j.Items)
}

// LoadJob reads a job file. "-" reads standard input.
func LoadJob(path string) (Job, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return Job{}, fmt.Errorf("open job: %w", err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Job{}, fmt.Errorf("read job: %w", err)
	}
	return ParseJob(raw)
}

// ParseJob decodes a job document.
func ParseJob(raw []byte) (Job, error) {
	var job Job
	if len(bytes.TrimSpace(raw)) == 0 {
		return job, ErrEmptyJob
	}
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return Job{}, fmt.Errorf("decode job: %w", err)
	}
	return job, nil
}
