package flags

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Accepted master volume range in dB.
const (
	MinVolume = -30.0
	MaxVolume = 6.0
)

// Flags stores the parsed command-line options
type Flags struct {
	Sprite  string
	Mute    bool
	Volume  float64 // master gain in dB
	Reset   bool
	Seed    int64
	Debug   bool
	LogFile string

	fsv *FlagSetWithVisit
}

// IsSet reports whether the named flag was given on the command line.
func (f *Flags) IsSet(name string) bool {
	return f.fsv != nil && f.fsv.IsCustom(name)
}

// Parse parses os.Args and exits with usage on invalid input.
func Parse() *Flags {
	fl, err := ParseArgs(os.Args[0], os.Args[1:], flag.ExitOnError)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fl.fsv.Usage()
		os.Exit(2)
	}
	return fl
}

// ParseArgs parses args into Flags.
func ParseArgs(name string, args []string, handling flag.ErrorHandling) (*Flags, error) {
	fl := &Flags{}
	fsv := NewFlagSetWithVisit(name, handling)
	fl.fsv = fsv

	fsv.StringVar(&fl.Sprite, "size", "z", "", "Sprite size: small, medium, or large")
	fsv.BoolVar(&fl.Mute, "mute", "m", false, "Mute all sounds")
	fsv.Float64Var(&fl.Volume, "volume", "v", 0, "Master volume in dB, from -30 to 6")
	fsv.BoolVar(&fl.Reset, "reset", "r", false, "Reset saved settings and high score")
	fsv.Int64Var(&fl.Seed, "seed", "s", 0, "Seed for food placement, 0 picks one from the clock")
	fsv.BoolVar(&fl.Debug, "debug", "d", false, "Write debug messages to the log")
	fsv.StringVar(&fl.LogFile, "log", "l", "", "Log file path (default: gridsnake.log in the user config directory)")

	if err := fsv.Parse(args); err != nil {
		return fl, err
	}

	// Normalize sprite size value
	fl.Sprite = strings.ToLower(fl.Sprite)
	if fl.Sprite != "" && fl.Sprite != "small" && fl.Sprite != "medium" && fl.Sprite != "large" {
		return fl, fmt.Errorf("invalid sprite size: %s. Use 'small', 'medium' or 'large'", fl.Sprite)
	}
	if fl.Volume < MinVolume || fl.Volume > MaxVolume {
		return fl, fmt.Errorf("invalid volume: %g. Use a value from %g to %g dB", fl.Volume, MinVolume, MaxVolume)
	}
	return fl, nil
}
