package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/quotecurl"
	"github.com/vippsas/quotecurl/quoteparser"
)

var (
	rootCmd = &cobra.Command{
		Use:          "quotecurl",
		Short:        "quotecurl",
		SilenceUsage: true,
		Long:         `Convert straight quotes on stdin into curly quotes, apostrophes and primes on stdout. See README.md.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(Version)
				return nil
			}
			lists, err := contractionLists()
			if err != nil {
				return err
			}
			if listWords {
				printWordLists(lists)
				return nil
			}

			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			curler := quotecurl.New(quotecurl.Options{
				Output:       outputMode(),
				Filter:       filterMode(),
				Contractions: lists,
			})
			output, ambiguous := curler.Report(string(input))

			logger := logrus.StandardLogger()
			for _, tok := range ambiguous {
				logger.Warnf("ambiguous quote at byte %d left as-is", tok.Began())
			}

			_, err = os.Stdout.WriteString(output)
			return err
		},
	}

	entities    bool
	xmlMode     bool
	listWords   bool
	showVersion bool

	unambiguousBegan []string
	unambiguousEnded []string
	ambiguousBegan   []string
	ambiguousEnded   []string
)

// Execute executes the root command.
func Execute() error {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&entities, "entities", "e", false, "write HTML entities instead of Unicode glyphs")
	flags.BoolVarP(&xmlMode, "xml", "x", false, "skip XML markup and the contents of untouchable elements")
	flags.StringArrayVar(&unambiguousBegan, "unambiguous-began", nil, "append a word to the unambiguous-began contraction set (repeatable)")
	flags.StringArrayVar(&unambiguousEnded, "unambiguous-ended", nil, "append a word to the unambiguous-ended contraction set (repeatable)")
	flags.StringArrayVar(&ambiguousBegan, "ambiguous-began", nil, "append a word to the ambiguous-began contraction set (repeatable)")
	flags.StringArrayVar(&ambiguousEnded, "ambiguous-ended", nil, "append a word to the ambiguous-ended contraction set (repeatable)")
	rootCmd.Flags().BoolVarP(&listWords, "list", "l", false, "list the contraction sets and exit")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	return rootCmd.Execute()
}

func outputMode() quotecurl.OutputMode {
	if entities {
		return quotecurl.Entities
	}
	return quotecurl.Glyphs
}

func filterMode() quotecurl.FilterMode {
	if xmlMode {
		return quotecurl.XML
	}
	return quotecurl.Plain
}

// contractionLists merges, in order: the built-in defaults, the optional
// quotecurl.yaml, and the repeatable command line flags.
func contractionLists() (quoteparser.WordLists, error) {
	lists := quoteparser.Defaults()
	cfg, err := LoadConfig()
	if err != nil {
		return lists, err
	}
	if cfg.Contractions.BeganUnambiguous != nil {
		lists.BeganUnambiguous = cfg.Contractions.BeganUnambiguous
	}
	if cfg.Contractions.BeganAmbiguous != nil {
		lists.BeganAmbiguous = cfg.Contractions.BeganAmbiguous
	}
	if cfg.Contractions.EndedUnambiguous != nil {
		lists.EndedUnambiguous = cfg.Contractions.EndedUnambiguous
	}
	if cfg.Contractions.EndedAmbiguous != nil {
		lists.EndedAmbiguous = cfg.Contractions.EndedAmbiguous
	}
	lists.BeganUnambiguous = append(lists.BeganUnambiguous, unambiguousBegan...)
	lists.EndedUnambiguous = append(lists.EndedUnambiguous, unambiguousEnded...)
	lists.BeganAmbiguous = append(lists.BeganAmbiguous, ambiguousBegan...)
	lists.EndedAmbiguous = append(lists.EndedAmbiguous, ambiguousEnded...)
	return lists, nil
}

func printWordLists(lists quoteparser.WordLists) {
	printSet := func(name string, words []string) {
		sorted := append([]string(nil), words...)
		sort.Strings(sorted)
		for _, w := range sorted {
			fmt.Printf("%s %s\n", name, w)
		}
	}
	printSet("began-unambiguous", lists.BeganUnambiguous)
	printSet("began-ambiguous", lists.BeganAmbiguous)
	printSet("ended-unambiguous", lists.EndedUnambiguous)
	printSet("ended-ambiguous", lists.EndedAmbiguous)
}
