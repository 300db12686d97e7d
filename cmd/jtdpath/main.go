// Command jtdpath is a small CLI around the jtd and jsonpath packages.
// It validates JSON documents against JTD schemas, evaluates JSONPath
// expressions, and generates Go struct skeletons from a JTD schema.
//
// Usage:
//
//	jtdpath validate -schema schema.json -instance instance.json
//	jtdpath query -path '$.store.book[*].author' -doc doc.json
//	jtdpath gen -schema schema.yaml -type BookStore -out bookstore_gen.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "validate":
		err = runValidate(os.Args[2:])
	case "query":
		err = runQuery(os.Args[2:])
	case "gen":
		err = runGen(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("jtdpath: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: jtdpath <validate|query|gen> [flags]")
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to a JTD schema (.json or .yaml)")
	instancePath := fs.String("instance", "", "path to the instance document (.json or .yaml)")
	asJSON := fs.Bool("json", false, "print violations as a JSON array instead of plain text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *schemaPath == "" || *instancePath == "" {
		return fmt.Errorf("validate requires -schema and -instance")
	}

	schemaVal, err := loadDocument(*schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	instanceVal, err := loadDocument(*instancePath)
	if err != nil {
		return fmt.Errorf("loading instance: %w", err)
	}

	res, err := validateDocument(schemaVal, instanceVal)
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	if res.Valid() {
		fmt.Println("valid")
		return nil
	}

	if *asJSON {
		// Plain violation pairs, not the lexical-preserving jsonv model:
		// this is CLI convenience output, not a re-encoding of a document.
		encoded, err := json.Marshal(res.Errors)
		if err != nil {
			return fmt.Errorf("encoding violations: %w", err)
		}
		fmt.Println(string(encoded))
	} else {
		for _, e := range res.Errors {
			fmt.Printf("%s: violates %s\n", e.InstancePath, e.SchemaPath)
		}
	}
	os.Exit(1)
	return nil
}

func runQuery(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	path := fs.String("path", "", "JSONPath expression")
	docPath := fs.String("doc", "", "path to the document (.json or .yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" || *docPath == "" {
		return fmt.Errorf("query requires -path and -doc")
	}

	docVal, err := loadDocument(*docPath)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	matches, err := queryDocument(*path, docVal)
	if err != nil {
		return fmt.Errorf("compiling path: %w", err)
	}
	for _, m := range matches {
		text, err := printValue(m.Value)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", m.Pointer(), text)
	}
	return nil
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to a JTD schema (.json or .yaml)")
	typeName := fs.String("type", "", "name of the Go struct to generate")
	pkgName := fs.String("package", "main", "package name for the generated file")
	out := fs.String("out", "", "output file path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *schemaPath == "" || *typeName == "" {
		return fmt.Errorf("gen requires -schema and -type")
	}

	schemaVal, err := loadDocument(*schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	src, err := generateStruct(schemaVal, *pkgName, *typeName)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if *out == "" {
		fmt.Print(src)
		return nil
	}
	return os.WriteFile(*out, []byte(src), 0o644)
}
