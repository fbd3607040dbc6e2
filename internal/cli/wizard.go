package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"LawHub_LegalAssistant/internal/models"
	"LawHub_LegalAssistant/internal/wizard"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errInputClosed = errors.New("input ended before the wizard finished")

// NewWizardCommand creates the 'lawhub wizard' command
func NewWizardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard [scenario-id]",
		Short: "Answer a few questions and get an action plan",
		Long: `Walks through one situation step by step. Answer with the option
number, "b" to go back or "q" to quit. Without a scenario id the
default situation is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWizard,
	}
}

func runWizard(cmd *cobra.Command, args []string) error {
	catalog, err := wizard.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("load scenario catalog: %w", err)
	}
	id := catalog.DefaultScenarioID()
	if len(args) == 1 {
		id = args[0]
	}

	session := wizard.NewSession(catalog)
	if err := session.SelectScenario(id); err != nil {
		return err
	}
	sc, _ := catalog.GetScenario(id)

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	bold.Fprintf(out, "%s %s\n", sc.Icon, sc.Title)
	for {
		st := session.State()
		if st.ScenarioID == "" {
			fmt.Fprintln(out, "Wizard discarded.")
			return nil
		}
		if st.SolutionReady {
			break
		}

		fmt.Fprintln(out)
		cyan.Fprintf(out, "Step %d of %d: %s\n", st.Current.Index+1, st.TotalSteps, st.Current.Question)
		for i, opt := range st.Current.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}
		fmt.Fprint(out, "> ")

		if !in.Scan() {
			if err := in.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return errInputClosed
		}
		input := strings.TrimSpace(in.Text())
		switch strings.ToLower(input) {
		case "b", "back":
			session.GoBack()
			continue
		case "q", "quit":
			fmt.Fprintln(out, "Bye.")
			return nil
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(st.Current.Options) {
			color.New(color.FgRed).Fprintln(out, "Invalid selection. Please try again.")
			continue
		}
		if _, err := session.SubmitAnswer(st.Current.Options[n-1]); err != nil {
			return err
		}
	}

	solution, err := session.ResolveSolution()
	if err != nil {
		return err
	}
	printSolution(out, solution)
	return nil
}

func printSolution(out io.Writer, s models.Solution) {
	fmt.Fprintln(out)
	color.New(color.Bold).Fprintln(out, s.Title)
	urgencyColor(s.Urgency).Fprintf(out, "Urgency: %s\n", s.Urgency)
	for i, step := range s.Steps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
	if len(s.Contacts) > 0 {
		fmt.Fprintln(out, "Contacts:")
		for _, c := range s.Contacts {
			fmt.Fprintf(out, "  - %s\n", c)
		}
	}
}
