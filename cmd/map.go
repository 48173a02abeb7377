package cmd

import (
	"log"

	"github.com/mmuldo/viscm/image"
	"github.com/spf13/cobra"
)

var mapColormap string

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map <input> <output.png>",
	Short: "Recolors an image with a colormap",
	Long: `Recolors an image with a colormap. Each pixel's lightness selects the
nearest colormap entry, so grayscale renderings can be recolored directly.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		reg, e := registry()
		if e != nil {
			log.Fatal(e)
		}
		cm, e := lookup(reg, mapColormap)
		if e != nil {
			log.Fatal(e)
		}

		src, e := image.Load(args[0])
		if e != nil {
			log.Fatal(e)
		}

		if e := image.Save(args[1], image.Map(src, cm)); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringVarP(&mapColormap, "colormap", "m", "", "colormap to apply (default from config)")
}
