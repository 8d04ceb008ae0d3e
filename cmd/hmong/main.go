// hmong is a command-line front end for the Hmong RPA toolkit.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	hmong "github.com/xyooj/hmong-go"
	"github.com/xyooj/hmong-go/grammar"
	"github.com/xyooj/hmong-go/lexicon"
	"github.com/xyooj/hmong-go/numeral"
	"github.com/xyooj/hmong-go/phonology"
	"github.com/xyooj/hmong-go/phrase"
)

func main() {
	root := &cobra.Command{
		Use:           "hmong",
		Short:         "Hmong RPA text-processing toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		normalizeCmd(),
		decomposeCmd(),
		toneCmd(),
		convertCmd(),
		translateCmd(),
		searchCmd(),
		posCmd(),
		classifierCmd(),
		conjugateCmd(),
		numberCmd(),
		measureCmd(),
		phraseCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Standardize spacing and casing of Hmong text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Println(hmong.Normalize(strings.Join(args, " ")))
			return nil
		},
	}
}

func decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose <syllable>",
		Short: "Split a syllable into onset, nucleus, coda, and tone",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s := hmong.Decompose(args[0])
			fmt.Printf("raw:     %s\n", s.Raw)
			fmt.Printf("onset:   %s\n", s.Onset)
			fmt.Printf("nucleus: %s\n", s.Nucleus)
			fmt.Printf("coda:    %s\n", s.Coda)
			fmt.Printf("tone:    %s (%s)\n", s.Tone, s.Tone.Label())
			fmt.Printf("valid:   %v\n", s.Valid)
			return nil
		},
	}
}

func toneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tone <syllable>",
		Short: "Show the tone marker of a syllable",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t := hmong.GetTone(args[0])
			fmt.Printf("%s (%s)\n", t, t.Label())
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <syllable> <tone-letter|none>",
		Short: "Convert a syllable to another tone",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			letter := strings.ToLower(args[1])
			if letter == "none" {
				letter = ""
			}
			target, ok := phonology.ParseTone(letter)
			if !ok {
				return fmt.Errorf("unknown tone %q (use b, j, v, s, g, d, m, or none)", args[1])
			}
			out, err := hmong.ConvertTone(args[0], target)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

func translateCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "translate <word>",
		Short: "Translate between Hmong and English",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				results []string
				err     error
			)
			if reverse {
				results, err = hmong.Reverse(args[0])
			} else {
				results, err = hmong.Translate(args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(results, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "translate English to Hmong")
	return cmd
}

func searchCmd() *cobra.Command {
	var english bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := lexicon.DirectionHmong
			if english {
				dir = lexicon.DirectionEnglish
			}
			p := hmong.New()
			for _, m := range p.Search(args[0], dir) {
				fmt.Printf("%s\t%s\n", m.Hmong, m.English)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&english, "english", "e", false, "match English glosses instead of headwords")
	return cmd
}

func posCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pos <word>",
		Short: "Detect the part of speech of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Println(grammar.Detect(args[0]))
			return nil
		},
	}
}

func classifierCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classifier <noun>",
		Short: "Show the classifier particles for a noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fmt.Println(strings.Join(grammar.Classifiers(args[0]), ", "))
			return nil
		},
	}
}

func conjugateCmd() *cobra.Command {
	var tense string
	cmd := &cobra.Command{
		Use:   "conjugate <sentence>...",
		Short: "Apply a tense marker to a sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var t grammar.Tense
			switch strings.ToLower(tense) {
			case "present":
				t = grammar.Present
			case "past":
				t = grammar.Past
			case "future":
				t = grammar.Future
			default:
				return fmt.Errorf("unknown tense %q (use present, past, or future)", tense)
			}
			out, err := grammar.Conjugate(strings.Join(args, " "), t)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&tense, "tense", "t", "present", "tense to apply (present, past, future)")
	return cmd
}

func numberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "number <n | hmong words>...",
		Short: "Convert between digits and Hmong number words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			joined := strings.Join(args, " ")
			if n, err := strconv.Atoi(joined); err == nil {
				words, err := numeral.ToHmong(n)
				if err != nil {
					return err
				}
				fmt.Println(words)
				return nil
			}
			n, err := numeral.FromHmong(joined)
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

func measureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <value> <from-unit> <to-unit>",
		Short: "Convert between measurement units",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad value %q: %w", args[0], err)
			}
			from, ok := numeral.ParseUnit(args[1])
			if !ok {
				return fmt.Errorf("unknown unit %q", args[1])
			}
			to, ok := numeral.ParseUnit(args[2])
			if !ok {
				return fmt.Errorf("unknown unit %q", args[2])
			}
			out, err := numeral.ConvertMeasure(value, from, to)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

func phraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrase",
		Short: "Phrasebook: greetings, questions, proverbs, idioms, drills",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "greet [time-of-day]",
			Short: "Greeting for a time of day",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				when := "general"
				if len(args) == 1 {
					when = args[0]
				}
				fmt.Println(phrase.Greeting(when))
				return nil
			},
		},
		&cobra.Command{
			Use:   "ask <topic>",
			Short: "Question phrase for a topic",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				fmt.Println(phrase.Question(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "proverb [topic]",
			Short: "A proverb for a topic",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				topic := "wisdom"
				if len(args) == 1 {
					topic = args[0]
				}
				p, err := phrase.Proverb(topic)
				if err != nil {
					return err
				}
				fmt.Println(p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "idiom <phrase>...",
			Short: "Explain an idiom",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				m, err := phrase.ExplainIdiom(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Println(m)
				return nil
			},
		},
		&cobra.Command{
			Use:   "drill <tone|consonant|vowel>",
			Short: "Pronunciation drill set",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				d := phrase.Drill(args[0])
				if d == nil {
					return fmt.Errorf("unknown drill %q", args[0])
				}
				fmt.Println(strings.Join(d, " "))
				return nil
			},
		},
	)
	return cmd
}
