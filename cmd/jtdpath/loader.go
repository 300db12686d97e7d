package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonv "github.com/kaptinlin/jtdpath/json"
	"gopkg.in/yaml.v3"
)

// loadDocument reads a JTD schema or JSON document from disk, accepting
// either JSON or YAML based on the file extension; YAML input is
// transcoded into the shared jsonv.Value model via jsonv.FromGo.
func loadDocument(path string) (jsonv.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jsonv.Value{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return jsonv.Value{}, fmt.Errorf("%s: %w", path, err)
		}
		return jsonv.FromGo(generic)
	default:
		v, err := jsonv.Parse(data)
		if err != nil {
			return jsonv.Value{}, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil
	}
}
