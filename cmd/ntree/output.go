package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

// configureColor decides whether output to w gets ANSI colors. auto enables
// colors only when w is a terminal.
func configureColor(mode string, w io.Writer) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		f, ok := w.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
	default:
		return fmt.Errorf("color must be 'auto', 'always', or 'never'")
	}
	return nil
}

var (
	okColor      = color.New(color.FgGreen)
	missingColor = color.New(color.FgYellow)
)

func printJSONToWriter(w io.Writer, response interface{}) error {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", prettyJSON)
	return err
}

func printYAMLToWriter(w io.Writer, response interface{}) error {
	data, err := yaml.Marshal(response)
	if err != nil {
		return fmt.Errorf("cannot format YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

type TraversalOutput struct {
	Order  string `json:"order" yaml:"order"`
	Values []int  `json:"values" yaml:"values"`
}

func printTraversal(w io.Writer, output TraversalOutput, format string) error {
	switch format {
	case "json":
		return printJSONToWriter(w, output)
	case "yaml":
		return printYAMLToWriter(w, output)
	default:
		_, err := fmt.Fprintln(w, formatValues(output.Values))
		return err
	}
}
