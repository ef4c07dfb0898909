package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursecompass/compass/internal/application/profilestore"
	"github.com/coursecompass/compass/internal/domain/profile"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage student profiles",
	}
	cmd.AddCommand(
		newProfileListCmd(a),
		newProfileCreateCmd(a),
		newProfileShowCmd(a),
		newProfileSwitchCmd(a),
		newProfileDeleteCmd(a),
	)
	return cmd
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := a.profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				cmd.Println("No profiles yet. Create one with: compass profile create --name <name> --major <major>")
				return nil
			}

			currentID := a.profiles.CurrentID(cmd.Context())
			for _, p := range profiles {
				marker := " "
				if p.ID == currentID {
					marker = "*"
				}
				cmd.Printf("%s %-28s %-20s %s\n", marker, p.ID, p.Name, strings.Join(p.Majors, ", "))
			}
			return nil
		},
	}
}

func newProfileCreateCmd(a *app) *cobra.Command {
	var (
		name         string
		majors       []string
		interests    string
		catalogYear  string
		planSemester string
		minors       []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile and make it current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profiles.Create(cmd.Context(), profile.NewProfileParams{
				Name:           name,
				Majors:         majors,
				Interests:      interests,
				CatalogYear:    catalogYear,
				PlanSemester:   planSemester,
				SelectedMinors: minors,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Created profile %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "Student name (required)")
	f.StringArrayVar(&majors, "major", nil, "Declared major; may be repeated up to 3 times (required)")
	f.StringVar(&interests, "interests", "", "Free-text interests used for recommendations")
	f.StringVar(&catalogYear, "catalog-year", "2024-2025", "Catalog year")
	f.StringVar(&planSemester, "plan-semester", "", "Semester being planned, e.g. 'Fall 2026'")
	f.StringArrayVar(&minors, "minor", nil, "Selected minor; may be repeated")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("major")
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a profile (the current one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p *profile.StudentProfile
			var err error
			if len(args) == 1 {
				p, err = a.profiles.Get(cmd.Context(), args[0])
			} else {
				p, err = a.profiles.Current(cmd.Context())
			}
			if err != nil {
				return err
			}

			cmd.Printf("%s (%s)\n", p.Name, p.ID)
			cmd.Printf("  Majors:        %s\n", strings.Join(p.Majors, ", "))
			if p.Emphasis != "" {
				cmd.Printf("  Emphasis:      %s\n", p.Emphasis)
			}
			if len(p.SelectedMinors) > 0 {
				cmd.Printf("  Minors:        %s\n", strings.Join(p.SelectedMinors, ", "))
			}
			if p.Interests != "" {
				cmd.Printf("  Interests:     %s\n", p.Interests)
			}
			cmd.Printf("  Catalog year:  %s\n", p.CatalogYear)
			if p.PlanSemester != "" {
				cmd.Printf("  Planning:      %s\n", p.PlanSemester)
			}
			cmd.Printf("  Created:       %s\n", p.CreatedAt)

			cmd.Printf("  Completed courses (%d):\n", len(p.CompletedCourses))
			for _, c := range p.CompletedCourses {
				grade := ""
				if c.Grade != "" {
					grade = " (" + c.Grade + ")"
				}
				cmd.Printf("    %-10s %-40s %g units%s\n", c.Code, c.Name, c.Units, grade)
			}
			if len(p.CurrentCourses) > 0 {
				cmd.Printf("  In progress (%d):\n", len(p.CurrentCourses))
				for _, c := range p.CurrentCourses {
					cmd.Printf("    %-10s %-40s %g units\n", c.Code, c.Name, c.Units)
				}
			}
			return nil
		},
	}
}

func newProfileSwitchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Make a profile current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.profiles.Switch(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Switched to %s\n", args[0])
			return nil
		},
	}
}

func newProfileDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.profiles.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			if next := a.profiles.CurrentID(cmd.Context()); next != "" {
				cmd.Printf("Current profile is now %s\n", next)
			}
			return nil
		},
	}
}

// requireCurrent resolves the current profile with a friendlier message when
// none is selected.
func requireCurrent(a *app, cmd *cobra.Command) (*profile.StudentProfile, error) {
	p, err := a.profiles.Current(cmd.Context())
	if err != nil {
		if errors.Is(err, profilestore.ErrNoCurrentProfile) {
			return nil, fmt.Errorf("no current profile; create one with 'compass profile create' or select one with 'compass profile switch'")
		}
		return nil, err
	}
	return p, nil
}
