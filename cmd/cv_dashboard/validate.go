package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/cv-dashboard/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an exported dashboard against the schema",
	Long:  "Validates a dashboard JSON file written by export against the embedded dashboard schema, or against a schema file given with --schema.",
	RunE:  runValidate,
}

var (
	validateInput  string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to dashboard JSON file (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a JSON Schema file (defaults to the embedded dashboard schema)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateInput)
	} else {
		err = schemas.ValidateDashboardFile(validateInput)
	}
	if err == nil {
		_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateInput)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprint(os.Stdout, validationErr.Error())
		return fmt.Errorf("validation found %d error(s)", len(validationErr.Errors))
	}
	return err
}
