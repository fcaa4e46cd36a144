package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	App = kingpin.New("notechart", "Import a MIDI file as a chart and print how each note is drawn and heard")

	File         = App.Arg("file", "MIDI file to import").Required().ExistingFile()
	ImportConfig = App.Flag("config", "Import settings (YAML)").Short('c').String()
	Color        = App.Flag("color", "Colorize output").Default(ColorAuto).Enum(ColorAuto, ColorAlways, ColorNever)
	Holds        = App.Flag("holds", "Print hold chains after the notes").Default("true").Bool()
)

func init() {
	App.Version("0.1.0")
	App.HelpFlag.Short('h')
}

// Parse fills the flag variables from args, which exclude the program name.
func Parse(args []string) error {
	_, err := App.Parse(args)
	return err
}
