package cmd

import (
	"encoding/json"
	"log"
	"os"

	"github.com/mmuldo/viscm/analysis"
	"github.com/mmuldo/viscm/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	asJSON     bool
	stripWidth int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [colormap]",
	Short: "Reports the perceptual derivatives of a colormap",
	Long: `Draws the colormap and its grayscale projection, then reports the
perceptual (ΔE) and lightness (ΔL*) derivatives along the ramp.

With --json the full analysis, including Lab coordinates, is written to
stdout instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, e := registry()
		if e != nil {
			log.Fatal(e)
		}
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		cm, e := lookup(reg, name)
		if e != nil {
			log.Fatal(e)
		}

		a := analysis.Analyze(cm, metric())

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if e := enc.Encode(a); e != nil {
				log.Fatal(e)
			}
			return
		}

		var tpl *report.Template
		if path := viper.GetString("template"); path != "" {
			tpl, e = report.LoadTemplate(path)
		} else {
			tpl, e = report.NewTemplate("")
		}
		if e != nil {
			log.Fatal(e)
		}

		term := report.NewTerminal(os.Stdout)
		term.Strip(cm.Colors(), stripWidth)
		term.Strip(a.Grayscale, stripWidth)
		if e := tpl.Write(os.Stdout, a); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "write the analysis as JSON")
	analyzeCmd.Flags().IntVarP(&stripWidth, "width", "w", 64, "width of the colormap strips")
	analyzeCmd.Flags().String("template", "", "pongo2 report template")

	viper.BindPFlag("template", analyzeCmd.Flags().Lookup("template"))
}
