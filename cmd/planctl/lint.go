package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint <course_db.json>",
	Short: "Check a catalog file for requirement problems",
	Long: `Resolve every courseset in the catalog and report diagnostics:
unresolvable courseset references, reference cycles and malformed
expressions. Exits non-zero if any diagnostic is found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, resolver, err := loadCatalog(args[0])
		if err != nil {
			return err
		}

		total := 0
		for _, id := range cat.CoursesetIDs() {
			_, diags := resolver.Resolve(id)
			for _, d := range diags {
				fmt.Printf("%s: %s: %s\n", id, d.Kind, d.Message)
			}
			total += len(diags)
		}

		fmt.Printf("%d coursesets checked, %d diagnostics\n", len(cat.CoursesetIDs()), total)
		if total > 0 {
			return fmt.Errorf("catalog has %d requirement problems", total)
		}
		return nil
	},
}
