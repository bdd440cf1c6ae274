package main

import (
	"fmt"
	"strings"

	"github.com/Belphemur/AniWiki/internal/router"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	searchCmd.Flags().BoolP("characters", "c", false, "Search characters instead of anime")
	searchCmd.Flags().IntP("page", "p", 1, "Result page")
}

var viewCmd = &cobra.Command{
	Use:     "view [fragment]",
	Short:   "Render the view of a fragment such as #details/16498",
	Example: "  aniwiki view '#search?q=naruto&page=2'\n  aniwiki view details/16498",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fragment := router.HomeFragment
		if len(args) == 1 {
			fragment = "#" + strings.TrimPrefix(args[0], "#")
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		nav := navigator(cmd)
		view, err := nav.Navigate(ctx, fragment)
		if err != nil {
			return err
		}
		return printView(cmd, nav, view)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search anime or characters",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := router.AnimeMode
		if lo.Must(cmd.Flags().GetBool("characters")) {
			mode = router.CharacterMode
		}
		fragment, ok := router.SearchFromInput(mode, strings.Join(args, " "))
		if !ok {
			return fmt.Errorf("empty search")
		}
		if page := lo.Must(cmd.Flags().GetInt("page")); page > 1 {
			s := router.Parse(fragment)
			fragment = router.SearchFragment(s.Route, s.Query, page)
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		nav := navigator(cmd)
		view, err := nav.Navigate(ctx, fragment)
		if err != nil {
			return err
		}
		return printView(cmd, nav, view)
	},
}
