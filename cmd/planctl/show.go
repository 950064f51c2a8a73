package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yigit/courseplan/internal/app/requirements"
)

var showCmd = &cobra.Command{
	Use:   "show <course_db.json> <course-code>",
	Short: "Show the resolved requirements of a course",
	Long: `Resolve and render the prerequisite, corequisite and exclusion
expressions of a single course, the way the planning API evaluates them.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, resolver, err := loadCatalog(args[0])
		if err != nil {
			return err
		}

		code := strings.ToUpper(args[1])
		course, ok := cat.Course(code)
		if !ok {
			return fmt.Errorf("course %s not found in catalog", code)
		}

		fmt.Printf("%s  %s  [session: %s]\n", course.Code, course.Title, course.Session.DisplayName())

		printRequirement(resolver, "Prerequisites", course.Prerequisites)
		printRequirement(resolver, "Corequisites", course.Corequisites)
		printRequirement(resolver, "Exclusions", course.Exclusions)

		return nil
	},
}

func printRequirement(resolver *requirements.Resolver, label, coursesetID string) {
	if coursesetID == "" {
		fmt.Printf("%s: none\n", label)
		return
	}

	node, diags := resolver.Resolve(coursesetID)
	if node == nil {
		fmt.Printf("%s: %s (unresolvable)\n", label, coursesetID)
	} else {
		fmt.Printf("%s: %s\n", label, requirements.Render(node))
	}
	for _, d := range diags {
		fmt.Printf("  diagnostic: %s: %s\n", d.Kind, d.Message)
	}
}
