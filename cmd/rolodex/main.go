// Command rolodex inspects the local address book from the command line.
//
// Without flags it reads the native contact store (Contacts.framework on
// macOS); with --db it reads a contacts-provider snapshot database instead.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spachava753/rolodex/cnstore"
	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/provider"
)

var (
	dbPath string
	asJSON bool
)

var rootCmd = &cobra.Command{
	Use:           "rolodex",
	Short:         "Read the local address book",
	Long:          `Rolodex reads contacts from the native contact store or from a contacts-provider snapshot database and prints them as a table or JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the contacts permission status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		status, err := openStore().PermissionStatus()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), status)
		return nil
	},
}

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request contacts permission and print the outcome",
	RunE: func(cmd *cobra.Command, _ []string) error {
		granted, err := openStore().RequestPermission(cmd.Context())
		if err != nil {
			return err
		}
		if granted {
			fmt.Fprintln(cmd.OutOrStdout(), "granted")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "not granted")
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every contact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		contacts, err := openStore().GetAll(cmd.Context())
		if err != nil {
			return err
		}
		if asJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(contacts)
		}
		renderTable(cmd, contacts)
		return nil
	},
}

func openStore() contact.Store {
	if dbPath != "" {
		return provider.New(dbPath)
	}
	return cnstore.New()
}

func renderTable(cmd *cobra.Command, contacts []contact.Contact) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONES\tEMAILS")
	for _, c := range contacts {
		name := c.DisplayName
		if name == "" {
			name = contact.ComposeDisplayName(c.GivenName, c.MiddleName, c.FamilyName)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, name, joinValues(c.PhoneNumbers), joinValues(c.Emails))
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "%d contact(s)\n", len(contacts))
}

func joinValues(values []contact.LabeledValue) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%s (%s)", value.Value, value.Label))
	}
	return strings.Join(parts, ", ")
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to a contacts-provider snapshot database (uses the native store when unset)")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print contacts as JSON")
	rootCmd.AddCommand(statusCmd, requestCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
