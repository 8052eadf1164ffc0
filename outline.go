package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crtvaryan/portfolio/internal/site"
)

var outlineContent string

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Render the page and list its sections and nav links",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := site.LoadContent(outlineContent)
		if err != nil {
			return err
		}
		tmpl, err := site.Templates()
		if err != nil {
			return err
		}
		out, err := site.RenderIndex(tmpl, site.NewPage(content, time.Now().Year()))
		if err != nil {
			return err
		}
		o, err := site.ParseOutline(bytes.NewReader(out))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "sections: %s\n", strings.Join(o.Sections, ", "))
		fmt.Fprintf(w, "nav:      %s\n", strings.Join(o.NavLinks, ", "))
		return o.Check()
	},
}

func init() {
	outlineCmd.Flags().StringVar(&outlineContent, "content", "", "content YAML file (defaults to the built-in copy)")
	rootCmd.AddCommand(outlineCmd)
}
