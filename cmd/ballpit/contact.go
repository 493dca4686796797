package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ballpit/contact"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact relay",
	Long: `Submits {name, email, message} to the relay configured by contact.url
(or BALLPIT_CONTACT_URL). With all three flags set the message is sent
directly; otherwise an interactive form opens.`,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().StringVar(&contactName, "name", "", "Sender name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Sender email")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "Message body")
}

func runContact(cmd *cobra.Command, _ []string) error {
	cfg, logger, closeLog, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeLog()

	client := contact.NewClient(cfg.Contact.URL, cfg.Contact.Timeout, logger)
	form := contact.NewForm(client)

	if contactName != "" && contactEmail != "" && contactMessage != "" {
		return submitDirect(cmd.Context(), cmd, form, contact.Submission{
			Name:    contactName,
			Email:   contactEmail,
			Message: contactMessage,
		})
	}

	m := newContactModel(cmd.Context(), form)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("contact form: %w", err)
	}
	return nil
}

func submitDirect(ctx context.Context, cmd *cobra.Command, form *contact.Form, s contact.Submission) error {
	err := form.Submit(ctx, s)
	if err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Message sent.")
		return nil
	}
	return fmt.Errorf("%s: %w", form.ErrorMessage(), err)
}
