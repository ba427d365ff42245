package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scriptorium/internal/betacode"
	"github.com/jmylchreest/scriptorium/internal/logger"
	"github.com/jmylchreest/scriptorium/internal/output"
	"github.com/jmylchreest/scriptorium/internal/perseus"
	"github.com/jmylchreest/scriptorium/internal/tokenize"
)

var perseusCmd = &cobra.Command{
	Use:   "perseus <file>",
	Short: "Extract tokenized Greek text from a Perseus XML file",
	Long: `Extract the narrative text of a Perseus beta code XML file.

Every element inside a paragraph becomes one unit of output; editorial
notes are skipped but the text following them is kept. Each unit is
converted from beta code to Unicode Greek, split into words, and printed
separated by blank lines.

Examples:
  scriptorium perseus hom.il_gk.xml
  scriptorium perseus --lenient --entity dagger=+ plat.rep_gk.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runPerseus,
}

func init() {
	rootCmd.AddCommand(perseusCmd)

	flags := perseusCmd.Flags()
	flags.Bool("lenient", false, "tolerate malformed XML and unknown entities")
	flags.StringToString("entity", nil, "extra XML entity definitions (name=value, can be repeated)")
}

func runPerseus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lenient, _ := cmd.Flags().GetBool("lenient")
	entities, _ := cmd.Flags().GetStringToString("entity")

	opts := perseus.DefaultOptions()
	opts.Strict = !lenient
	opts.Entities = entities

	path := args[0]
	logger.Debug("extracting perseus file", "path", path, "strict", opts.Strict, "entities", len(entities))

	extractor := perseus.New(betacode.Converter{}, tokenize.Greek{}, opts)
	units, err := extractor.ExtractFile(path)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		return err
	}
	logger.Info("extraction complete", "path", path, "units", len(units))

	sections := make([]output.Section, 0, len(units))
	for _, u := range units {
		sections = append(sections, output.Section{Source: path, Text: u})
	}
	return writeSections(cfg.Output, sections)
}
