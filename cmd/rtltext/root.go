package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riverfjs/rtltext-go"
)

type rootFlags struct {
	defaultDir string
	exclude    string
	threshold  float64
	explain    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "rtltext [text...]",
		Short: "Tell whether text should be displayed right-to-left",
		Long: `Classify each argument, or each line of stdin when no argument is given,
and print "rtl" or "ltr".

Defaults can be set with RTLTEXT_DEFAULT_DIR and RTLTEXT_THRESHOLD,
either in the environment or in a .env file.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyEnvDefaults(cmd, &flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.defaultDir, "default-dir", "d", "ltr", "Direction used for empty text (ltr or rtl)")
	cmd.Flags().StringVarP(&flags.exclude, "exclude", "x", "", "Placeholder text removed before classification")
	cmd.Flags().Float64VarP(&flags.threshold, "threshold", "t", rtltext.DefaultConfig().Threshold, "RTL ratio above which text is RTL")
	cmd.Flags().BoolVar(&flags.explain, "explain", false, "Print the intermediate counts for each text")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable logging to stderr")

	return cmd
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command, flags *rootFlags) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("default-dir") {
		flags.defaultDir = env.DefaultDir.String()
	}
	if !cmd.Flags().Changed("threshold") {
		flags.threshold = env.Threshold
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string, flags *rootFlags) error {
	defaultDir, err := rtltext.ParseDirection(flags.defaultDir)
	if err != nil {
		return fmt.Errorf("--default-dir: %w", err)
	}
	if flags.threshold < 0 {
		return fmt.Errorf("--threshold must not be negative, got %v", flags.threshold)
	}

	if flags.verbose {
		rtltext.SetLogger(log.New(cmd.ErrOrStderr(), "[rtltext] ", log.LstdFlags))
	} else {
		rtltext.SetLogger(log.New(io.Discard, "", 0))
	}

	opts := []rtltext.Option{rtltext.WithThreshold(flags.threshold)}

	var results []rtltext.LineResult
	if len(args) > 0 {
		results, err = rtltext.ClassifyAll(cmd.Context(), args, defaultDir, flags.exclude, opts...)
	} else {
		results, err = rtltext.ClassifyLines(cmd.Context(), cmd.InOrStdin(), defaultDir, flags.exclude, opts...)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		if flags.explain {
			printExplain(out, res)
			continue
		}
		fmt.Fprintln(out, res.Direction)
	}
	return nil
}

func printExplain(w io.Writer, res rtltext.LineResult) {
	a := res.Analysis
	fmt.Fprintf(w, "%d\t%s\trule=%s rtl=%d length=%d discount=%d effective=%d ratio=%.3f threshold=%.3f",
		res.Line, res.Direction, a.Rule, a.RTLCount, a.TrimmedLength,
		a.DiscountLength, a.EffectiveLength, a.Ratio, a.Threshold)

	var spans []string
	for _, m := range a.Mentions {
		spans = append(spans, "@"+m.ScreenName)
	}
	for _, u := range a.URLs {
		spans = append(spans, u.URL)
	}
	if len(spans) > 0 {
		fmt.Fprintf(w, " spans=%s", strings.Join(spans, ","))
	}
	fmt.Fprintln(w)
}
