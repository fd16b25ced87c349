// Package openapi embeds the OpenAPI document served at /openapi.yaml.
package openapi

import _ "embed"

//go:embed openapi.yaml
var YAML []byte
