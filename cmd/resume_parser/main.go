// Package main provides the entry point for the resume parser CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume field extraction CLI",
	Long:  "Resume Parser extracts structured candidate fields (name parts, phone, emails, city/state, skills, qualifications) from recognized resume text using deterministic pattern-matching heuristics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
