// Package main provides the classcombo CLI tool for finding repeated CSS class combinations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/classcombo"
	"github.com/yacobolo/classcombo/internal/classset"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := classcombo.ShouldUseColors(false)
		fmt.Fprintf(os.Stderr, "%s %s\n", classset.RenderStyle(classset.StyleError, "Error:", useColors), errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage returns the text printed after "Error:"
func errorMessage(err error) string {
	var missing *missingPathError
	if errors.As(err, &missing) {
		return "Path does not exist: " + missing.path
	}
	return err.Error()
}
