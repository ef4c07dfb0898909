package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursecompass/compass/internal/domain/catalog"
	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/internal/domain/progress"
)

func newProgressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Summarize degree progress for the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := requireCurrent(a, cmd)
			if err != nil {
				return err
			}

			gened := progress.CalculateGenEd(p)
			cmd.Printf("%s — degree progress\n\n", p.Name)
			cmd.Printf("General education: %d%%\n", gened.OverallPercent)

			for _, major := range p.Majors {
				mp := progress.CalculateMajor(p, major)
				if mp.Known {
					cmd.Printf("%s: %d/%d courses (%d%%)\n",
						mp.Name, mp.CompletedCourses, mp.TotalCourses, mp.Percent)
				} else {
					cmd.Printf("%s: ~%d/%d courses (%d%%, estimated)\n",
						mp.Name, mp.CompletedCourses, mp.TotalCourses, mp.Percent)
				}
			}

			for _, minor := range p.SelectedMinors {
				mp := progress.CalculateMinor(p, minor)
				if mp.Known {
					cmd.Printf("%s minor: %g/%g units (%d%%)\n",
						mp.Name, mp.CompletedUnits, mp.TotalUnits, mp.Percent)
				} else {
					cmd.Printf("%s minor: %g/%g units (not modeled)\n",
						mp.Name, mp.CompletedUnits, mp.TotalUnits)
				}
			}

			est := progress.EstimateGraduation(p, a.clk)
			cmd.Printf("\nUnits: %g of %d earned or in progress\n",
				p.CompletedUnits()+p.CurrentUnits(), catalog.TotalGraduationUnits)
			if est.Ready {
				cmd.Println("Graduation: ready — all units complete")
			} else {
				cmd.Printf("Graduation: %s (%d more full-time semesters, %g units remaining)\n",
					est.Label, est.SemestersNeeded, est.RemainingUnits)
			}
			return nil
		},
	}
}

func newGenEdCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gened",
		Short: "Show general education detail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := requireCurrent(a, cmd)
			if err != nil {
				return err
			}

			gened := progress.CalculateGenEd(p)
			cmd.Printf("General education — %d%% overall\n\n", gened.OverallPercent)
			cmd.Printf("Foundations:       %d/%d\n", gened.FoundationsComplete, gened.FoundationsTotal)
			cmd.Printf("Second language:   %d/%d\n", gened.LanguageComplete, gened.LanguageTotal)
			cmd.Printf("UNIV seminars:     %d/%d\n", gened.UnivComplete, gened.UnivTotal)
			cmd.Printf("Building connections: %g/%g units\n\n", gened.BCUnitsComplete, gened.BCUnitsTotal)

			cmd.Printf("Exploring perspectives (%d/%d domains):\n", gened.EPDomainsComplete, gened.EPDomainsTotal)
			for _, d := range catalog.EPDomains {
				status := " "
				if progress.IsDomainSatisfied(p, d.Key) {
					status = "x"
				}
				taken := progress.CompletedForDomain(p, d.Key)
				line := fmt.Sprintf("  [%s] %-12s %g units", status, d.Name, progress.DomainUnitsCompleted(p, d.Key))
				if len(taken) > 0 {
					line += " (" + strings.Join(taken, ", ") + ")"
				}
				cmd.Println(line)
			}
			return nil
		},
	}

	cmd.AddCommand(newGenEdCheckCmd(a))
	return cmd
}

// newGenEdCheckCmd toggles checklist items, e.g.
//
//	compass gened check engl101=true univ301=false
func newGenEdCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <item>=<true|false> ...",
		Short: "Toggle gen ed checklist items",
		Long:  "Items: engl101, engl102, math, lang1, lang2, univ101, univ301.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var updates profile.GenEdCheckUpdates
			for _, arg := range args {
				key, raw, found := strings.Cut(arg, "=")
				if !found {
					raw = "true"
				}
				val, err := strconv.ParseBool(raw)
				if err != nil {
					return fmt.Errorf("invalid value %q for %s", raw, key)
				}

				v := val
				switch strings.ToLower(key) {
				case "engl101":
					updates.Engl101 = &v
				case "engl102":
					updates.Engl102 = &v
				case "math":
					updates.Math = &v
				case "lang1":
					updates.Lang1 = &v
				case "lang2":
					updates.Lang2 = &v
				case "univ101":
					updates.Univ101 = &v
				case "univ301":
					updates.Univ301 = &v
				default:
					return fmt.Errorf("unknown checklist item %q", key)
				}
			}

			p, err := a.profiles.UpdateGenEdChecks(cmd.Context(), updates)
			if err != nil {
				return err
			}

			gened := progress.CalculateGenEd(p)
			cmd.Printf("Updated. Gen ed now %d%% overall\n", gened.OverallPercent)
			return nil
		},
	}
}

func newRecommendCmd(a *app) *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend next courses for the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := requireCurrent(a, cmd)
			if err != nil {
				return err
			}

			recs := progress.RecommendNextCourses(p, max)
			if len(recs) == 0 {
				cmd.Println("Nothing to recommend — requirements look covered")
				return nil
			}
			for i, r := range recs {
				cmd.Printf("%d. %-10s %s (%g units)\n   %s\n", i+1, r.Code, r.Name, r.Units, r.Reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", progress.DefaultRecommendationMax, "Maximum number of recommendations")
	return cmd
}

func newMinorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minors",
		Short: "Explore minors",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "suggest",
		Short: "Suggest minors matching interests and completed courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := requireCurrent(a, cmd)
			if err != nil {
				return err
			}

			suggestions := progress.SuggestMinors(p)
			if len(suggestions) == 0 {
				cmd.Println("No minor suggestions for this profile")
				return nil
			}
			for _, s := range suggestions {
				cmd.Printf("%-24s %s\n", s.Name, s.Reason)
			}
			return nil
		},
	})
	return cmd
}

func newEstimateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the graduation term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := requireCurrent(a, cmd)
			if err != nil {
				return err
			}

			est := progress.EstimateGraduation(p, a.clk)
			if est.Ready {
				cmd.Println("All units complete — ready to graduate")
				return nil
			}
			cmd.Printf("Estimated graduation: %s\n", est.Label)
			cmd.Printf("Remaining units:      %g\n", est.RemainingUnits)
			cmd.Printf("Semesters needed:     %d (at %d units per semester)\n",
				est.SemestersNeeded, catalog.NominalUnitsPerSemester)
			cmd.Printf("Unit progress:        %d%%\n", est.Percent)
			return nil
		},
	}
}
