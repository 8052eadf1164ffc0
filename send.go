package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crtvaryan/portfolio/internal/contactform"
)

var sendOpts struct {
	endpoint string
	name     string
	email    string
	message  string
	timeout  time.Duration
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a contact message to a relay, as the page's form does",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := contactform.NewSubmitter(sendOpts.endpoint)
		s.Client.Timeout = sendOpts.timeout
		s.OnStatus = func(status string) { fmt.Fprintln(cmd.OutOrStdout(), status) }

		form := &contactform.Form{Name: sendOpts.name, Email: sendOpts.email, Message: sendOpts.message}
		return s.Submit(cmd.Context(), form)
	},
}

func init() {
	f := sendCmd.Flags()
	f.StringVar(&sendOpts.endpoint, "endpoint", "http://localhost:8080/api/contact", "relay URL")
	f.StringVar(&sendOpts.name, "name", "", "sender name")
	f.StringVar(&sendOpts.email, "email", "", "sender email")
	f.StringVarP(&sendOpts.message, "message", "m", "", "message text")
	f.DurationVar(&sendOpts.timeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.AddCommand(sendCmd)
}
