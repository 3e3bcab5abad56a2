// Package main is the entry point for the easymidi CLI
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daviddekleer/EasyMIDI/pkg/api"
	"github.com/daviddekleer/EasyMIDI/pkg/instrument"
	"github.com/daviddekleer/EasyMIDI/pkg/midi"
	"github.com/daviddekleer/EasyMIDI/pkg/music"
	"github.com/daviddekleer/EasyMIDI/pkg/theory"
	"github.com/daviddekleer/EasyMIDI/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile     string
	keyName        string
	minorMode      bool
	octave         int
	tempo          float64
	instrumentName string
	serverPort     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "easymidi",
	Short: "Algorithmic composition MIDI creator",
	Long: `easymidi derives major and minor scales from the circle of fifths,
resolves roman-numeral chord symbols (I, V7, IVsus2, Imaj7**, ...) into
concrete notes and writes the result as a standard MIDI file.

Examples:
  easymidi scale F# --minor
  easymidi chord V7 --key G
  easymidi demo -o song.mid --key D
  easymidi instruments "acoustic grand"
  easymidi serve --port 8080
  easymidi tui`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic>",
	Short: "Print the major or minor scale on a tonic",
	Args:  cobra.ExactArgs(1),
	RunE:  runScale,
}

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>",
	Short: "Resolve a roman-numeral chord symbol into notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runChord,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write a short randomly generated song",
	RunE:  runDemo,
}

var instrumentsCmd = &cobra.Command{
	Use:   "instruments [description]",
	Short: "List General MIDI instruments or match a description",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInstruments,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive chord explorer",
	RunE:  runTUI,
}

func init() {
	scaleCmd.Flags().BoolVar(&minorMode, "minor", false, "Use the minor scale")

	chordCmd.Flags().StringVarP(&keyName, "key", "k", "C", "Key of the chord")
	chordCmd.Flags().BoolVar(&minorMode, "minor", false, "Use the minor scale")
	chordCmd.Flags().IntVar(&octave, "octave", 4, "Octave of the chord root")

	demoCmd.Flags().StringVarP(&outputFile, "output", "o", "output.mid", "Output .mid file path")
	demoCmd.Flags().StringVarP(&keyName, "key", "k", "", "Key of the song (random if empty)")
	demoCmd.Flags().Float64Var(&tempo, "tempo", 120, "Tempo in beats per minute")
	demoCmd.Flags().StringVarP(&instrumentName, "instrument", "i", "acoustic grand piano", "Instrument name")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(instrumentsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}

func mode() theory.Mode {
	if minorMode {
		return theory.Minor
	}
	return theory.Major
}

func runScale(cmd *cobra.Command, args []string) error {
	notes, err := theory.Scale(args[0], mode())
	if err != nil {
		return err
	}
	fmt.Printf("%s %s: %s\n", args[0], mode(), strings.Join(notes, " "))
	return nil
}

func runChord(cmd *cobra.Command, args []string) error {
	spec := theory.ChordSpec{
		Symbol: args[0],
		Key:    keyName,
		Mode:   mode(),
		Octave: octave,
	}
	chord, err := spec.Resolve()
	if err != nil {
		return err
	}

	fmt.Printf("%s in %s %s:\n", args[0], keyName, mode())
	for _, n := range chord.Notes() {
		fmt.Printf("  %-4s midi %d\n", n.String(), n.Number())
	}
	return nil
}

// runDemo generates a small song: a chord progression with inversions on
// one track and a random melody picked from the active chord on another.
func runDemo(cmd *cobra.Command, args []string) error {
	key := keyName
	if key == "" {
		tonics := theory.Tonics()
		key = tonics[rand.Intn(12)]
	}

	program := instrument.Resolve(instrumentName)
	chords := music.NewTrack(program, tempo)
	melody := music.NewTrack(program, tempo)

	numerals := []string{"I", "II", "III", "IV", "V", "VI", "VII"}
	for measure := 0; measure < 7; measure++ {
		symbol := numerals[rand.Intn(len(numerals))] + "8"
		chord, err := theory.ChordSpec{Symbol: symbol, Key: key, Octave: 3}.Resolve()
		if err != nil {
			return err
		}
		chords.Add(chord)

		inverted := symbol
		for i := 0; i < 3; i++ {
			inverted += "*"
			chord, err := theory.ChordSpec{Symbol: inverted, Key: key, Octave: 2}.Resolve()
			if err != nil {
				return err
			}
			chords.Add(chord)
		}

		notes := chord.Notes()
		for i := 0; i < 16; i++ {
			note := notes[rand.Intn(len(notes))]
			note.SetDuration(1.0 / 16)
			melody.Add(note)
		}
	}

	// Ending: arpeggiate seven successive inversions of the tonic chord
	// in sixteenth notes, then land on a whole-note tonic.
	ending := "I8"
	for i := 0; i < 7; i++ {
		ending += "*"
		chord, err := theory.ChordSpec{Symbol: ending, Key: key, Octave: 2, Duration: 1.0 / 16}.Resolve()
		if err != nil {
			return err
		}
		for _, n := range chord.Notes() {
			melody.Add(n)
		}
	}

	final, err := theory.ChordSpec{Symbol: "I8", Key: key, Duration: 1}.Resolve()
	if err != nil {
		return err
	}
	melody.Add(final)

	comp := midi.NewComposition(nil)
	comp.AddTracks(chords, melody)
	if err := comp.WriteFile(outputFile); err != nil {
		return err
	}

	fmt.Printf("Wrote a song in %s to %s\n", key, outputFile)
	return nil
}

func runInstruments(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		program, matched, exact := instrument.Lookup(args[0])
		if exact {
			fmt.Printf("%3d  %s\n", program, matched)
		} else {
			fmt.Printf("%3d  %s (closest match)\n", program, matched)
		}
		return nil
	}

	for i, name := range instrument.All() {
		fmt.Printf("%3d  %s\n", i, name)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d\n", serverPort)
	fmt.Printf("Swagger docs: http://localhost:%d/swagger/index.html\n", serverPort)
	return api.StartServer(serverPort)
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}
