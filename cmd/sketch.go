// Copyright © 2026 the SKETCHTREE authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"log"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"sketchtree/src/misc"
	"sketchtree/src/version"
)

// the command line arguments
var (
	sketchInputList *string // genome list file
	sketchOutFile   *string // file to save the sketches to
)

// the sketch command (used by cobra)
var sketchCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Sketch a set of genomes and save the sketches to disk",
	Long:  `Sketch a set of genomes and save the sketches to disk`,
	Run: func(cmd *cobra.Command, args []string) {
		runSketch()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

/*
  A function to initialise the command line arguments
*/
func init() {
	sketchInputList = sketchCmd.Flags().StringP("input", "i", "", "genome list file (one FASTA file per line, .gz supported) - required")
	sketchOutFile = sketchCmd.Flags().StringP("outFile", "o", "sketchtree.sketches", "file to save the sketches to")
	sketchCmd.MarkFlagRequired("input")
	RootCmd.AddCommand(sketchCmd)
}

/*
  A function to check user supplied parameters
*/
func sketchParamCheck() error {
	if err := misc.CheckFile(*sketchInputList); err != nil {
		return err
	}
	return sketchingParamCheck()
}

/*
  The main function for the sketch command
*/
func runSketch() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	if *logFile != "" {
		logFH := misc.StartLogging(*logFile)
		defer logFH.Close()
		log.SetOutput(logFH)
	}
	log.Printf("this is sketchtree (version %s)", version.GetVersion())
	log.Printf("starting the sketch subcommand")
	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	misc.ErrorCheck(sketchParamCheck())
	logSketchingParams()
	///////////////////////////////////////////////////////////////////////////////////////
	collection, err := collectSketches(*sketchInputList, "")
	misc.ErrorCheck(err)
	///////////////////////////////////////////////////////////////////////////////////////
	log.Printf("saving sketches to \"%v\"...", *sketchOutFile)
	misc.ErrorCheck(collection.Dump(*sketchOutFile))
	log.Printf("\t%v", misc.PrintMemUsage())
	log.Println("finished")
}
