package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmuldo/viscm/colormap"
	"github.com/mmuldo/viscm/image"
	"github.com/mmuldo/viscm/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractName string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Creates a colormap from an image",
	Long: `Quantizes an image to its dominant colors and orders them from dark to
light. The colormap is printed to stderr and written to stdout in the
colormap index format.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		i, e := image.Load(args[0])
		if e != nil {
			log.Fatal(e)
		}

		name := extractName
		if name == "" {
			base := filepath.Base(args[0])
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}

		cm, e := image.Extract(i, viper.GetInt("colors"), name)
		if e != nil {
			log.Fatal(e)
		}

		report.NewTerminal(os.Stderr).Entries(cm)
		if e := colormap.WriteDefinition(os.Stdout, cm); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractName, "name", "n", "", "colormap name (default: image file name)")
	extractCmd.Flags().IntP("colors", "k", 16, "number of colors to extract")

	viper.BindPFlag("colors", extractCmd.Flags().Lookup("colors"))
}
