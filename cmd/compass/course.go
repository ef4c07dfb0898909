package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/internal/domain/transcript"
)

func newCourseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage the current profile's courses",
	}
	cmd.AddCommand(
		newCourseAddCmd(a),
		newCourseRemoveCmd(a),
		newCourseCurrentCmd(a),
	)
	return cmd
}

func newCourseAddCmd(a *app) *cobra.Command {
	var (
		name     string
		units    float64
		grade    string
		semester string
	)

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Record a completed course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := a.profiles.AddCompletedCourse(cmd.Context(), profile.CompletedCourse{
				Code:     strings.ToUpper(strings.TrimSpace(args[0])),
				Name:     name,
				Units:    units,
				Grade:    grade,
				Semester: semester,
			})
			if err != nil {
				return err
			}
			if !added {
				cmd.Printf("%s is already recorded\n", args[0])
				return nil
			}
			cmd.Printf("Added %s\n", args[0])
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "Course title")
	f.Float64Var(&units, "units", transcript.DefaultUnits, "Unit count")
	f.StringVar(&grade, "grade", "", "Letter grade, e.g. A or B+")
	f.StringVar(&semester, "semester", "", "Semester taken, e.g. 'Fall 2025'")
	return cmd
}

func newCourseRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <code>",
		Short: "Remove a completed course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.profiles.RemoveCompletedCourse(cmd.Context(), strings.ToUpper(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}
			if !removed {
				cmd.Printf("%s is not on the completed list\n", args[0])
				return nil
			}
			cmd.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

func newCourseCurrentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Manage in-progress courses",
	}

	var (
		name  string
		units float64
	)
	addCmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Record an in-progress course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := a.profiles.AddCurrentCourse(cmd.Context(), profile.CompletedCourse{
				Code:  strings.ToUpper(strings.TrimSpace(args[0])),
				Name:  name,
				Units: units,
			})
			if err != nil {
				return err
			}
			if !added {
				cmd.Printf("%s is already in progress\n", args[0])
				return nil
			}
			cmd.Printf("Added %s to current courses\n", args[0])
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Course title")
	addCmd.Flags().Float64Var(&units, "units", transcript.DefaultUnits, "Unit count")

	removeCmd := &cobra.Command{
		Use:   "remove <code>",
		Short: "Remove an in-progress course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.profiles.RemoveCurrentCourse(cmd.Context(), strings.ToUpper(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}
			if !removed {
				cmd.Printf("%s is not in progress\n", args[0])
				return nil
			}
			cmd.Printf("Removed %s from current courses\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(addCmd, removeCmd)
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <transcript-file>",
		Short: "Import completed courses from pasted transcript text",
		Long:  "Parses free-form transcript text for course codes, grades, and unit counts, and records every course not already on the completed list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading transcript: %w", err)
			}

			courses := transcript.Parse(string(text))
			if len(courses) == 0 {
				cmd.Println("No course codes found")
				return nil
			}

			if dryRun {
				for _, c := range courses {
					cmd.Printf("%-10s %g units %s\n", c.Code, c.Units, c.Grade)
				}
				return nil
			}

			added := 0
			for _, c := range courses {
				ok, err := a.profiles.AddCompletedCourse(cmd.Context(), c)
				if err != nil {
					return err
				}
				if ok {
					added++
				}
			}
			cmd.Printf("Imported %d of %d parsed courses (%d already recorded)\n",
				added, len(courses), len(courses)-added)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and print without saving")
	return cmd
}
