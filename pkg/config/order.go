package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	sectionLinks     = "links"
	sectionClone     = "clone"
	sectionTemplates = "templates"
)

// keyOrder maps a mapping section to its keys in the order they were written
type keyOrder map[string][]string

func isOrderedSection(name string) bool {
	return name == sectionLinks || name == sectionClone || name == sectionTemplates
}

// add appends keys to section, keeping the first occurrence of each
func (o keyOrder) add(section string, keys ...string) {
	for _, key := range keys {
		found := false
		for _, existing := range o[section] {
			if existing == key {
				found = true
				break
			}
		}
		if !found {
			o[section] = append(o[section], key)
		}
	}
}

// record notes the section key of a full key path such as links.bin
func (o keyOrder) record(path []string) {
	if len(path) >= 2 && isOrderedSection(path[0]) {
		o.add(path[0], path[1])
	}
}

// keyOrderFor reads the mapping key order from the raw config bytes
func keyOrderFor(path string, data []byte) (keyOrder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlKeyOrder(data)
	case ".yaml", ".yml":
		return yamlKeyOrder(data)
	default:
		return jsonKeyOrder(data)
	}
}

func jsonKeyOrder(data []byte) (keyOrder, error) {
	order := keyOrder{}
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	if isObject, err := openJSONObject(dec); err != nil || !isObject {
		return order, err
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		section, _ := tok.(string)
		if !isOrderedSection(section) {
			if err := skipJSONValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		keys, err := jsonObjectKeys(dec)
		if err != nil {
			return nil, err
		}
		order.add(section, keys...)
	}
	return order, nil
}

// openJSONObject consumes the next value's opening token and reports whether
// it starts an object. Any other value is consumed entirely.
func openJSONObject(dec *json.Decoder) (bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return false, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return false, nil
	}
	switch delim {
	case '{':
		return true, nil
	case '[':
		return false, skipJSONRest(dec)
	}
	return false, nil
}

func jsonObjectKeys(dec *json.Decoder) ([]string, error) {
	if isObject, err := openJSONObject(dec); err != nil || !isObject {
		return nil, err
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if key, ok := tok.(string); ok {
			keys = append(keys, key)
		}
		if err := skipJSONValue(dec); err != nil {
			return nil, err
		}
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return keys, nil
}

func skipJSONValue(dec *json.Decoder) error {
	var raw json.RawMessage
	return dec.Decode(&raw)
}

// skipJSONRest consumes tokens up to the delimiter closing an open array
func skipJSONRest(dec *json.Decoder) error {
	for depth := 1; depth > 0; {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

func yamlKeyOrder(data []byte) (keyOrder, error) {
	order := keyOrder{}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return order, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return order, nil
	}

	// mapping nodes hold keys and values as alternating children
	for i := 0; i+1 < len(root.Content); i += 2 {
		section, value := root.Content[i], root.Content[i+1]
		if !isOrderedSection(section.Value) || value.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(value.Content); j += 2 {
			order.add(section.Value, value.Content[j].Value)
		}
	}
	return order, nil
}

func tomlKeyOrder(data []byte) (keyOrder, error) {
	order := keyOrder{}

	var p unstable.Parser
	p.Reset(data)

	var table []string
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = tomlKey(expr.Key())
			order.record(table)
		case unstable.KeyValue:
			recordTOMLKeyValue(order, table, expr)
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

// recordTOMLKeyValue records a key/value under the table prefix, descending
// into inline tables such as links = { bin = "~/bin" }
func recordTOMLKeyValue(order keyOrder, prefix []string, kv *unstable.Node) {
	full := append(append([]string{}, prefix...), tomlKey(kv.Key())...)
	order.record(full)

	value := kv.Value()
	if value.Kind != unstable.InlineTable {
		return
	}
	children := value.Children()
	for children.Next() {
		if child := children.Node(); child.Kind == unstable.KeyValue {
			recordTOMLKeyValue(order, full, child)
		}
	}
}

// tomlKey returns the parts of a possibly dotted key
func tomlKey(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}
