package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haskel/statkit/internal/dataset"
	"github.com/haskel/statkit/internal/stats/bayes"
)

var (
	corpusFile string
	trainA     string
	trainB     string
	tieClass   string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] <text...>",
	Short: "Classify text with a naive Bayes model",
	Long: `Train a two-class bag-of-words model with Laplace smoothing and score
the given text. Training text comes from a corpus file ({a: ..., b: ...}) or
from --train-a/--train-b. Class names come from classifier.label_a/label_b.

Examples:
  statkit classify --corpus mail.yaml win a free prize
  statkit classify --train-a "win prize money free" --train-b "meeting schedule report" win a free prize`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&corpusFile, "corpus", "", "training corpus file with keys a and b")
	classifyCmd.Flags().StringVar(&trainA, "train-a", "", "training text for class a")
	classifyCmd.Flags().StringVar(&trainB, "train-b", "", "training text for class b")
	classifyCmd.Flags().StringVar(&tieClass, "tie", "", "class that wins exact ties (a or b)")
	rootCmd.AddCommand(classifyCmd)
}

type classifyOutput struct {
	Label     string             `json:"label"`
	Class     string             `json:"class"`
	LogScores map[string]float64 `json:"log_scores"`
	Tokens    int                `json:"tokens"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	corpus := dataset.Corpus{A: trainA, B: trainB}
	if corpusFile != "" {
		c, err := dataset.ReadCorpus(corpusFile)
		if err != nil {
			return err
		}
		corpus = c
	}

	tie := cfg.Classifier.TieClass
	if tieClass != "" {
		tie = tieClass
	}
	tc, err := bayes.ParseClass(tie)
	if err != nil {
		return err
	}

	model, err := bayes.TrainWithConfig(bayes.Config{
		Smoothing: cfg.Classifier.Smoothing,
		TieClass:  tc,
	}, bayes.Tokenize(corpus.A), bayes.Tokenize(corpus.B))
	if err != nil {
		return fmt.Errorf("failed to train classifier: %w", err)
	}

	tokens := bayes.Tokenize(strings.Join(args, " "))
	log.Debug("classifying", "vocabulary", len(model.Vocabulary()), "tokens", len(tokens))

	res := model.Classify(tokens)
	labels := [2]string{cfg.Classifier.LabelA, cfg.Classifier.LabelB}

	output := classifyOutput{
		Label:  labels[res.Class],
		Class:  res.Class.String(),
		Tokens: len(tokens),
		LogScores: map[string]float64{
			labels[bayes.ClassA]: res.LogScore(bayes.ClassA),
			labels[bayes.ClassB]: res.LogScore(bayes.ClassB),
		},
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, output)
	}

	fmt.Fprintf(out, "Prediction: %s\n", output.Label)
	fmt.Fprintf(out, "  log P(%s|text): %.4f\n", labels[bayes.ClassA], res.LogScore(bayes.ClassA))
	fmt.Fprintf(out, "  log P(%s|text): %.4f\n", labels[bayes.ClassB], res.LogScore(bayes.ClassB))
	if res.LogScore(bayes.ClassA) == res.LogScore(bayes.ClassB) {
		fmt.Fprintf(out, "  (tie, resolved to %s)\n", output.Label)
	}
	return nil
}
