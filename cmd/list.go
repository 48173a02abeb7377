package cmd

import (
	"fmt"
	"log"

	"github.com/mmuldo/viscm/colormap"
	"github.com/spf13/cobra"
)

var category string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available colormaps",
	Long:  `Lists the available colormaps, optionally restricted to one category.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reg, e := registry()
		if e != nil {
			log.Fatal(e)
		}

		var cms []colormap.Colormap
		if category != "" {
			cms = reg.ByCategory(category)
		} else {
			for _, name := range reg.Names() {
				cm, _ := reg.Get(name)
				cms = append(cms, cm)
			}
		}

		for _, cm := range cms {
			fmt.Printf("%-24s %-22s %d\n", cm.Name, cm.Metadata.Category, cm.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&category, "category", "c", "", "only list colormaps in this category")
}
