package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Belphemur/AniWiki/internal/apiclient"
	"github.com/Belphemur/AniWiki/internal/render"
	"github.com/Belphemur/AniWiki/internal/router"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().String("proxy", apiclient.DefaultBaseURL, "Base URL of a running AniWiki proxy")
	rootCmd.PersistentFlags().String("last", "", "Fragment of the last search, used by back links")
	rootCmd.PersistentFlags().Bool("html", false, "Print the rendered HTML instead of text")
	rootCmd.PersistentFlags().IntP("width", "w", render.DefaultWidth, "Wrap text output at this width")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Give up on the proxy after this long")

	rootCmd.AddCommand(viewCmd, searchCmd, quizCmd)
}

// rootCmd is the terminal client of the AniWiki proxy.
var rootCmd = &cobra.Command{
	Use:           "aniwiki",
	Short:         "Browse the AniWiki catalog from a terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "aniwiki: %s\n", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}

// navigator builds a Navigator against the proxy named by the flags.
func navigator(cmd *cobra.Command) *router.Navigator {
	proxy := lo.Must(cmd.Flags().GetString("proxy"))
	last := lo.Must(cmd.Flags().GetString("last"))
	return router.NewNavigator(apiclient.New(proxy, &http.Client{}), router.WithLastSearch(last))
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), lo.Must(cmd.Flags().GetDuration("timeout")))
}

// printView writes the view followed by its navigation hints.
func printView(cmd *cobra.Command, nav *router.Navigator, view *router.View) error {
	out := cmd.OutOrStdout()

	if lo.Must(cmd.Flags().GetBool("html")) {
		html, err := view.HTML()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, html)
	} else {
		_, _ = io.WriteString(out, render.Text(view.Node, lo.Must(cmd.Flags().GetInt("width"))))
	}

	if view.Redirect != "" {
		_, _ = fmt.Fprintf(out, "\nOpened %s\n", view.Redirect)
	}
	if view.Back != "" {
		_, _ = fmt.Fprintf(out, "Back: %s\n", view.Back)
	}
	if last := nav.LastSearch(); last != "" {
		_, _ = fmt.Fprintf(out, "Last search: %s\n", last)
	}
	if view.State.Route == router.Error {
		return fmt.Errorf("%s", view.Message)
	}
	return nil
}
