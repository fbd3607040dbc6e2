package cli

import (
	"fmt"
	"io"
	"strings"

	"LawHub_LegalAssistant/internal/chat"
	"LawHub_LegalAssistant/internal/laws"
	"LawHub_LegalAssistant/internal/models"
	"LawHub_LegalAssistant/internal/wizard"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the lawhub command tree. The catalog and library are
// loaded lazily so `lawhub --help` works even with broken seed data.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lawhub",
		Short: "Offline legal assistance from the terminal",
		Long: `lawhub runs the LawHub situation wizard, law explorer and
question advisor locally, without the HTTP API.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewScenariosCommand())
	cmd.AddCommand(NewWizardCommand())
	cmd.AddCommand(NewLawsCommand())
	cmd.AddCommand(NewAskCommand())

	return cmd
}

// NewScenariosCommand creates the 'lawhub scenarios' command
func NewScenariosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the situations the wizard can walk through",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := wizard.DefaultCatalog()
			if err != nil {
				return fmt.Errorf("load scenario catalog: %w", err)
			}
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			for _, sc := range catalog.Scenarios() {
				bold.Fprintf(out, "%s %s", sc.Icon, sc.Title)
				fmt.Fprintf(out, " (%s)\n    %s\n", sc.ID, sc.Description)
			}
			return nil
		},
	}
}

// NewLawsCommand creates the 'lawhub laws' command group
func NewLawsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laws",
		Short: "Browse the law library",
	}
	cmd.AddCommand(newLawsSearchCommand())
	return cmd
}

func newLawsSearchCommand() *cobra.Command {
	var filter laws.Filter
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search articles by text, country and topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := laws.DefaultLibrary()
			if err != nil {
				return fmt.Errorf("load law library: %w", err)
			}
			out := cmd.OutOrStdout()
			articles := library.Search(filter)
			if len(articles) == 0 {
				fmt.Fprintln(out, "No laws match your search.")
				return nil
			}
			for _, a := range articles {
				printArticle(out, a)
			}
			fmt.Fprintf(out, "%d result(s)\n", len(articles))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "text to look for in titles and summaries")
	cmd.Flags().StringVar(&filter.Country, "country", "", "country code, e.g. UAE")
	cmd.Flags().StringVar(&filter.Topic, "topic", "", "topic, e.g. \"Traffic Laws\"")
	return cmd
}

func printArticle(out io.Writer, a laws.Article) {
	color.New(color.Bold).Fprintf(out, "#%d %s", a.ID, a.Title)
	fmt.Fprint(out, " ")
	urgencyColor(a.Urgency).Fprintf(out, "[%s]\n", a.Urgency)
	fmt.Fprintf(out, "    %s | %s | %s\n", a.Country, a.Topic, a.LawCode)
	fmt.Fprintf(out, "    %s\n", a.Summary)
	fmt.Fprintf(out, "    Penalties: %s\n\n", a.Penalties)
}

// NewAskCommand creates the 'lawhub ask' command
func NewAskCommand() *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Get a step-by-step answer to a legal question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			if strings.TrimSpace(question) == "" {
				return chat.ErrEmptyMessage
			}
			fmt.Fprintln(cmd.OutOrStdout(), chat.Advise(question, country).Answer)
			return nil
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "country the question is about (detected from the question when empty)")
	return cmd
}

func urgencyColor(u models.Urgency) *color.Color {
	switch u {
	case models.UrgencyHigh:
		return color.New(color.FgRed, color.Bold)
	case models.UrgencyMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
