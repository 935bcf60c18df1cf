package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/proxati/oauth_capture/schema"
)

var (
	ErrScopeFileNotFound = errors.New("scope file not found")
	ErrScopeFileInvalid  = errors.New("invalid scope file")
)

// CaptureScope holds the host and path substrings that select which flows are captured
type CaptureScope struct {
	Hosts []string `yaml:"hosts"`
	Paths []string `yaml:"paths"`
}

// NewDefaultCaptureScope returns a scope matching the Claude/Anthropic OAuth endpoints
func NewDefaultCaptureScope() *CaptureScope {
	return &CaptureScope{
		Hosts: append([]string{}, schema.DefaultScopeHosts...),
		Paths: append([]string{}, schema.DefaultScopePaths...),
	}
}

// NewFlowClassifier converts the scope into a classifier
func (cs *CaptureScope) NewFlowClassifier() *schema.FlowClassifier {
	return schema.NewFlowClassifier(cs.Hosts, cs.Paths)
}

// LoadScopeFile replaces the hosts and/or paths with the lists found in a YAML file. A list
// missing from the file leaves the current value alone.
//
//	hosts:
//	  - anthropic.com
//	paths:
//	  - oauth
func (cs *CaptureScope) LoadScopeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrScopeFileNotFound, path)
		}
		return fmt.Errorf("failed to read scope file: %w", err)
	}

	var fromFile CaptureScope
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("%w %s: %w", ErrScopeFileInvalid, path, err)
	}

	if fromFile.Hosts != nil {
		cs.Hosts = fromFile.Hosts
	}
	if fromFile.Paths != nil {
		cs.Paths = fromFile.Paths
	}
	return nil
}
