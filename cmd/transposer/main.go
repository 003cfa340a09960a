package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/template"

	"github.com/vsariola/transposer"
	"github.com/vsariola/transposer/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code. args
// excludes the program name.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("transposer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	help := fs.Bool("h", false, "Show help.")
	versionFlag := fs.Bool("v", false, "Print version.")
	safe := fs.Bool("n", false, "Never overwrite files; if the output file already exists, give an error.")
	tmplPath := fs.String("t", "", "When writing a .txt listing, use this template file instead of the built-in one.")
	bpm := fs.Float64("bpm", 120, "Tempo of the .mid file, in beats per minute.")
	verbose := fs.Bool("verbose", false, "Log progress to standard error.")
	fs.Usage = func() { printUsage(fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *help {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}
	if *versionFlag {
		fmt.Fprintln(stdout, version.VersionOrHash)
		return 0
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return 1
	}
	logger := log.New(io.Discard, "transposer: ", 0)
	if *verbose {
		logger.SetOutput(stderr)
	}
	inputPath, outputPath := fs.Arg(0), fs.Arg(2)
	semitones, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "semitones should be an integer, got %q\n", fs.Arg(1))
		return 1
	}
	opts := transposer.WriteOptions{
		MIDI:      transposer.MIDIOptions{BPM: *bpm},
		NoClobber: *safe,
	}
	if *tmplPath != "" {
		var tmpl *template.Template
		if tmpl, err = transposer.ParseListingTemplate(*tmplPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		opts.Listing = tmpl
	}
	if err := process(inputPath, semitones, outputPath, opts, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func process(inputPath string, semitones int, outputPath string, opts transposer.WriteOptions, logger *log.Logger) error {
	notes, err := transposer.ReadFile(inputPath)
	if err != nil {
		return err
	}
	logger.Printf("read %d notes from %v", len(notes), inputPath)
	transposer.Transpose(notes, semitones)
	if err := transposer.Validate(notes); err != nil {
		return err
	}
	if err := transposer.WriteFile(outputPath, notes, opts); err != nil {
		return err
	}
	logger.Printf("wrote %d notes transposed by %+d semitones to %v (%v)", len(notes), semitones, outputPath, transposer.FormatForPath(outputPath))
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Piano note transposer. Shifts the notes of a .json or .yml note list by a number of semitones.\nThe output format follows the extension of outputFile: .json, .yml, .mid or .txt.\nUsage: %s [flags] <inputFile> <semitones> <outputFile>\n", fs.Name())
	fs.PrintDefaults()
}
