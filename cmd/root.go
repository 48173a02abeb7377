/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/viscm/colormap"
	"github.com/mmuldo/viscm/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "viscm",
	Short: "Evaluate the perceptual quality of colormaps",
	Long: `viscm measures how evenly a colormap changes along its ramp.

It reports perceptual and lightness derivatives, projects colormaps to
grayscale, and recolors images and test patterns so banding and
false structure become visible.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.viscm.yaml)")
	rootCmd.PersistentFlags().String("colormaps", "", "colormap index.json (default: builtin colormaps)")
	rootCmd.PersistentFlags().String("metric", palette.DefaultMetric.String(), "perceptual distance metric: 76, CMC, 2000, ITP or Jz")
	rootCmd.PersistentFlags().Int("steps", colormap.DefaultSteps, "resolution of builtin colormaps")

	viper.BindPFlag("colormaps", rootCmd.PersistentFlags().Lookup("colormaps"))
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))
	viper.BindPFlag("steps", rootCmd.PersistentFlags().Lookup("steps"))

	viper.SetDefault("colormap", "viridis")
	viper.SetDefault("colors", 16)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".viscm")
	}

	viper.SetEnvPrefix("viscm")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// registry builds the colormap registry the commands work from.
func registry() (*colormap.Registry, error) {
	if path := viper.GetString("colormaps"); path != "" {
		return colormap.LoadIndex(path)
	}
	return colormap.Builtin(viper.GetInt("steps"))
}

// lookup resolves a colormap by name, falling back to the configured one.
func lookup(reg *colormap.Registry, name string) (colormap.Colormap, error) {
	if name == "" {
		name = viper.GetString("colormap")
	}
	if cm, ok := reg.Get(name); ok {
		return cm, nil
	}
	return colormap.Colormap{}, fmt.Errorf("'%s' is not a known colormap", name)
}

// metric resolves the configured metric, warning about unknown names.
func metric() palette.Metric {
	name := viper.GetString("metric")
	m, ok := palette.LookupMetric(name)
	if !ok {
		log.Printf("unknown metric %q, using %s", name, m)
	}
	return m
}
