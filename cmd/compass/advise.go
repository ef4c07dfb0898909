package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newAdviseCmd(a *app) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "advise [question]",
		Short: "Ask the AI advisor about courses and planning",
		Long:  "Sends the question, along with the current profile and gen ed progress, to the AI advisor. Requires ANTHROPIC_API_KEY.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := requireCurrent(a, cmd)
			if err != nil {
				return err
			}

			adv, err := a.newAdvisor()
			if err != nil {
				return err
			}

			if len(args) == 1 && !interactive {
				reply, err := adv.Ask(cmd.Context(), p, args[0])
				if err != nil {
					return err
				}
				cmd.Println(reply.Content)
				return nil
			}

			// Interactive session; an empty line ends it.
			cmd.Printf("Advising %s. Empty line to quit.\n", p.Name)
			scanner := bufio.NewScanner(os.Stdin)
			for {
				cmd.Print("> ")
				if !scanner.Scan() {
					break
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					break
				}

				reply, err := adv.Ask(cmd.Context(), p, question)
				if err != nil {
					cmd.PrintErrln("Error:", err)
					continue
				}
				cmd.Println(reply.Content)
				cmd.Println()
			}
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Start an interactive advising session")
	return cmd
}
