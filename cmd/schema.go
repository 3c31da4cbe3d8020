package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yeisme/codestat/pkg/utils/schema"
)

var schemaOutput string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [config|result]",
	Short: "Generate JSON schemas for the config file and the analysis result",
	Long: `
Generate a JSON schema describing either the codestat configuration file
or the analysis result payload.

Examples:
  # Print the config file schema
  codestat schema config

  # Write the result payload schema to a file
  codestat schema result -o result_schema.json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"config", "result"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var out io.Writer = cmd.OutOrStdout()
		if schemaOutput != "" {
			f, err := os.Create(schemaOutput)
			if err != nil {
				return fmt.Errorf("create %s: %w", schemaOutput, err)
			}
			defer func() {
				_ = f.Close()
			}()
			out = f
		}

		switch args[0] {
		case "config":
			return schema.GenConfigSchema(out)
		case "result":
			return schema.GenResultSchema(out)
		default:
			return fmt.Errorf("unknown schema %q (expected config or result)", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to a file instead of stdout")
}
