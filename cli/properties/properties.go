// Package properties loads the key/value properties used to render a project template.
package properties

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/apex/log"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/pinit-dev/pinit/cli/util"
)

// DefaultFileName is a default properties file name.
const DefaultFileName = "properties.yaml"

// PropertyMap is a mapping from string keys to scalars, nested mappings and
// sequences. It is built once per run and must not be modified after that:
// use With to get a modified copy.
type PropertyMap map[string]any

// Load reads properties from the YAML file.
func Load(path string) (PropertyMap, error) {
	content, err := util.GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file %q: %w", path, err)
	}
	props, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties from %q: %w", path, err)
	}
	return props, nil
}

// Parse decodes properties from YAML text. An empty document gives an empty map.
func Parse(content []byte) (PropertyMap, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return PropertyMap{}, nil
	}

	root, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("properties must be a mapping, got %T", raw)
	}
	return PropertyMap(root), nil
}

// normalize converts mappings with non-string keys to map[string]any and
// copies the whole tree.
func normalize(value any) any {
	switch val := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[k] = normalize(v)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[fmt.Sprint(k)] = normalize(v)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = normalize(v)
		}
		return out
	}
	return value
}

// Keys returns sorted top level keys.
func (props PropertyMap) Keys() []string {
	keys := maps.Keys(props)
	sort.Strings(keys)
	return keys
}

// Lookup returns the value stored under the dotted key.
func (props PropertyMap) Lookup(key string) (any, bool) {
	var cur any = map[string]any(props)
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// With returns a copy of the properties with value set under the dotted key.
// Intermediate mappings are created. A scalar on the way is replaced by a mapping.
func (props PropertyMap) With(key string, value any) (PropertyMap, error) {
	parts := strings.Split(key, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid property key %q", key)
		}
	}

	root := normalize(map[string]any(props)).(map[string]any)

	cur := root
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(map[string]any)
		if !ok {
			if _, exists := cur[part]; exists {
				log.Debugf("Property %q is replaced by a mapping", part)
			}
			next = map[string]any{}
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
	return PropertyMap(root), nil
}

// YAML returns the key-sorted YAML representation of the properties.
func (props PropertyMap) YAML() (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]any(props)); err != nil {
		return "", fmt.Errorf("failed to encode properties: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to encode properties: %w", err)
	}
	return buf.String(), nil
}
