package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Belphemur/AniWiki/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [code]",
	Short: "Answer five questions and open the recommended anime",
	Long: "Answer five questions and open the recommended anime.\n\n" +
		"Without a code the questions are asked interactively. A code is five\n" +
		"characters, 0 for the first choice of a question and 1 for the second.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var code string
		if len(args) == 1 {
			code = args[0]
		} else {
			answers, err := ask(cmd)
			if err != nil {
				return err
			}
			code = quiz.Encode(answers)
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		nav := navigator(cmd)
		view, err := nav.Quiz(ctx, code)
		if err != nil {
			return err
		}
		return printView(cmd, nav, view)
	},
}

// ask prompts every question until it gets a valid answer.
func ask(cmd *cobra.Command) ([]bool, error) {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	answers := make([]bool, 0, quiz.CodeLength)
	for i, q := range quiz.Questions {
		for {
			_, _ = fmt.Fprintf(out, "%d. %s: [1] %s  [2] %s > ", i+1, q.Prompt, q.A, q.B)
			if !in.Scan() {
				if err := in.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("quiz aborted after %d answers", len(answers))
			}
			switch strings.TrimSpace(in.Text()) {
			case "1", "a", "A":
				answers = append(answers, false)
			case "2", "b", "B":
				answers = append(answers, true)
			default:
				continue
			}
			break
		}
	}
	return answers, nil
}
