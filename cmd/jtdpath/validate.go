package main

import (
	"github.com/kaptinlin/jtdpath/jsonpath"
	jsonv "github.com/kaptinlin/jtdpath/json"

	"github.com/kaptinlin/jtdpath/jtd"
)

func validateDocument(schema, instance jsonv.Value) (*jtd.Result, error) {
	return jtd.ValidateSchema(schema, instance)
}

func queryDocument(path string, doc jsonv.Value) ([]jsonpath.Match, error) {
	cp, err := jsonpath.Compile(path)
	if err != nil {
		return nil, err
	}
	return cp.QueryMatches(doc), nil
}

func printValue(v jsonv.Value) (string, error) {
	text, err := jsonv.ToText(v)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
