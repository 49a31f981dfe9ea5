package main

import (
	"encoding/json"
	"fmt"
	"io"
)

func printJSON(w io.Writer, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	fmt.Fprintln(w, string(encoded))
	return nil
}
