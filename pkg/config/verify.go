package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{ExpandedStruct: true, RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{}), nil
}

// Verify checks the config against the required properties declared in the reflected schema.
// Arrays are checked per element, so a feed without url is reported as "news.rss[1].url".
func Verify(cfg *Config) error {
	schema, err := GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var missing []string
	checkRequired(schema, schema, doc, "", &missing)
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkRequired(root, s *jsonschema.Schema, value any, path string, missing *[]string) {
	s = resolveRef(root, s)
	if s == nil {
		return
	}

	switch v := value.(type) {
	case map[string]any:
		for _, name := range s.Required {
			field, ok := v[name]
			if !ok || isEmpty(field) {
				*missing = append(*missing, joinPath(path, name))
			}
		}
		if s.Properties == nil {
			return
		}
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if child, ok := v[pair.Key]; ok {
				checkRequired(root, pair.Value, child, joinPath(path, pair.Key), missing)
			}
		}
	case []any:
		if s.Items == nil {
			return
		}
		for i, item := range v {
			checkRequired(root, s.Items, item, fmt.Sprintf("%s[%d]", path, i), missing)
		}
	}
}

func resolveRef(root, s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	if def, ok := root.Definitions[name]; ok {
		return def
	}
	return nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
