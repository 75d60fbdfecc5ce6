package winget

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Response is the canned output for one identifier.
type Response struct {
	Show     []string `yaml:"show"`
	Versions []string `yaml:"versions"`
	ShowErr  error    `yaml:"-"`
	VersErr  error    `yaml:"-"`
}

// Static is a Querier backed by fixed responses.
// Identifiers without a response fail with ErrQuery.
type Static map[string]Response

// Show implements Querier.
func (s Static) Show(ctx context.Context, id string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("%w: no package found matching %q", ErrQuery, id)
	}
	return resp.Show, resp.ShowErr
}

// Versions implements Querier.
func (s Static) Versions(ctx context.Context, id string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("%w: no package found matching %q", ErrQuery, id)
	}
	return resp.Versions, resp.VersErr
}

// Ensure Static implements Querier.
var _ Querier = Static(nil)

// LoadStatic reads canned responses from a YAML (or JSON) fixture file:
//
//	Google.Chrome:
//	  show:
//	    - "Found Google Chrome [Google.Chrome]"
//	    - "Version: 120.0.6099.130"
//	  versions: ["Version", "---", "120.0.6099.130", "120.0.6099.110"]
func LoadStatic(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Static
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	return s, nil
}
