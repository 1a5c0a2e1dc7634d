package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/vippsas/quotecurl/quoteparser"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the lexeme and token streams for the input on stdin, for debugging",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := contractionLists()
			if err != nil {
				return err
			}
			buf, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			input := string(buf)

			filter := quoteparser.PlainFilter
			if xmlMode {
				filter = quoteparser.XMLFilter
			}

			lexemes := quoteparser.Lex(input, filter)
			fmt.Println("lexemes:")
			for _, lx := range lexemes {
				fmt.Printf("  %s %s\n", repr.String(lx), repr.String(lx.Text(input)))
			}

			tokens := quoteparser.EmitTokens(input, lexemes, quoteparser.NewContractions(lists))
			resolved := quoteparser.Resolve(tokens)
			fmt.Println("tokens:")
			for _, tok := range resolved {
				fmt.Printf("  %s\n", repr.String(tok))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}
