package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// printOutput renders v to stdout in the configured format.
func printOutput(v interface{}) error {
	switch format := viper.GetString("output"); format {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json", "":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
