package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowgraph/rowhydrate/decode"
	"github.com/rowgraph/rowhydrate/schema"
	"github.com/rowgraph/rowhydrate/source"
)

var (
	schemaPath     string
	startColumn    int
	strictEmbedded bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "rowhydrate",
	Short: "Decode tabular rows into nested object graphs",
	Long: `rowhydrate decodes rows against a schema descriptor.

Rows arrive on stdin as newline-delimited JSON arrays, one array of
column values per row. The schema is a JSON document; see the schema
package for the accepted form.

Examples:
  echo '[1, "Parent", "Child1", 100]' | rowhydrate decode --schema order.json
  rowhydrate width --schema order.json`,
	SilenceUsage: true,
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode stdin rows against a schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := loadSchema()
		if err != nil {
			return err
		}

		log := zap.NewNop()
		if verbose {
			log, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()
		}

		opts := []decode.Option{
			decode.WithStartColumn(startColumn),
			decode.WithLogger(log),
		}
		if strictEmbedded {
			opts = append(opts, decode.WithStrictEmbeddedFields())
		}
		dec := decode.NewDecoder(opts...)

		parser := jsoniter.Config{UseNumber: true}.Froze()
		out := json.NewEncoder(cmd.OutOrStdout())
		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

		line := 0
		failures := 0
		for scanner.Scan() {
			line++
			text := scanner.Bytes()
			if len(text) == 0 {
				continue
			}
			var cols []any
			if err := parser.Unmarshal(text, &cols); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			value, err := dec.DecodeOne(sch, source.FromValues(normalizeColumns(cols)))
			if err != nil {
				failures++
				fmt.Fprintf(cmd.ErrOrStderr(), "row %d: %v\n", line, err)
				continue
			}
			if err := out.Encode(value); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d rows failed to decode", failures, line)
		}
		return nil
	},
}

var widthCmd = &cobra.Command{
	Use:   "width",
	Short: "Print the column width of each schema field",
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := loadSchema()
		if err != nil {
			return err
		}
		for _, f := range sch.Fields {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10s %d\n", f.Name, f.Kind, schema.FieldWidth(f))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10s %d\n", "total", "", schema.Width(sch))
		return nil
	},
}

func loadSchema() (*schema.Schema, error) {
	if schemaPath == "" {
		return nil, fmt.Errorf("--schema is required")
	}
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, err
	}
	return schema.ParseJSON(data)
}

// normalizeColumns rewrites parsed JSON column values into backend-style
// raw values: integral numbers become int64, others float64.
func normalizeColumns(cols []any) []any {
	for i, c := range cols {
		num, ok := c.(json.Number)
		if !ok {
			continue
		}
		if v, err := num.Int64(); err == nil {
			cols[i] = v
			continue
		}
		if v, err := num.Float64(); err == nil {
			cols[i] = v
		}
	}
	return cols
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema JSON document")
	rootCmd.PersistentFlags().IntVar(&startColumn, "start-column", 1, "expected starting column index")
	rootCmd.PersistentFlags().BoolVar(&strictEmbedded, "strict-embedded", false, "reject undeclared embedded-document fields")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable decode tracing")
	rootCmd.AddCommand(decodeCmd, widthCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
