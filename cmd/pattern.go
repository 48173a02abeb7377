package cmd

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/mmuldo/viscm/image"
	"github.com/spf13/cobra"
)

var (
	patternColormap string
	patternWidth    int
	patternHeight   int
	patternRaw      bool
	elevationPath   string
)

func patternNames() string {
	var names []string
	for name := range image.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// patternCmd represents the pattern command
var patternCmd = &cobra.Command{
	Use:   "pattern <kind> <output.png>",
	Short: "Renders a test pattern through a colormap",
	Long: fmt.Sprintf(`Renders a test pattern through a colormap.

Kinds: %s, or "elevation" together with --data pointing at a
whitespace separated (optionally gzipped) elevation grid.`, patternNames()),
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			field image.Field
			e     error
		)
		if args[0] == "elevation" {
			field, e = readElevation(elevationPath)
		} else {
			field, e = image.Pattern(args[0], patternWidth, patternHeight)
		}
		if e != nil {
			log.Fatal(e)
		}

		out := field.Image()
		if !patternRaw {
			reg, e := registry()
			if e != nil {
				log.Fatal(e)
			}
			cm, e := lookup(reg, patternColormap)
			if e != nil {
				log.Fatal(e)
			}
			out = image.MapImage(out, cm)
		}

		if e := image.Save(args[1], out); e != nil {
			log.Fatal(e)
		}
	},
}

func readElevation(path string) (image.Field, error) {
	if path == "" {
		return image.Field{}, fmt.Errorf("the elevation pattern needs --data")
	}
	f, e := os.Open(path)
	if e != nil {
		return image.Field{}, e
	}
	defer f.Close()
	return image.ReadElevation(f)
}

func init() {
	rootCmd.AddCommand(patternCmd)

	patternCmd.Flags().StringVarP(&patternColormap, "colormap", "m", "", "colormap to apply (default from config)")
	patternCmd.Flags().IntVar(&patternWidth, "width", 512, "pattern width")
	patternCmd.Flags().IntVar(&patternHeight, "height", 256, "pattern height")
	patternCmd.Flags().BoolVar(&patternRaw, "raw", false, "write the grayscale pattern without a colormap")
	patternCmd.Flags().StringVar(&elevationPath, "data", "", "elevation grid for the elevation pattern")
}
