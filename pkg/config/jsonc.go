package config

import (
	"github.com/knadh/koanf/parsers/json"
	"github.com/tidwall/jsonc"
)

// jsoncParser accepts JSON with // and /* */ comments and trailing commas
type jsoncParser struct {
	json *json.JSON
}

func newJSONCParser() *jsoncParser {
	return &jsoncParser{json: json.Parser()}
}

// Unmarshal strips comments and trailing commas before decoding
func (p *jsoncParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	return p.json.Unmarshal(jsonc.ToJSON(b))
}

// Marshal writes plain JSON
func (p *jsoncParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return p.json.Marshal(m)
}
