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
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"sketchtree/src/matrix"
	"sketchtree/src/misc"
	"sketchtree/src/version"
)

// the command line arguments
var (
	distInputList  *string // genome list file
	distSketchFile *string // sketch file from a previous sketch run
	distOutFile    *string // file to write the phylip matrix to
)

// the dist command (used by cobra)
var distCmd = &cobra.Command{
	Use:   "dist",
	Short: "Estimate all pairwise genome distances and write the phylip matrix",
	Long:  `Estimate all pairwise genome distances and write the phylip matrix`,
	Run: func(cmd *cobra.Command, args []string) {
		runDist()
	},
}

/*
  A function to initialise the command line arguments
*/
func init() {
	distInputList = distCmd.Flags().StringP("input", "i", "", "genome list file (one FASTA file per line, .gz supported)")
	distSketchFile = distCmd.Flags().String("sketches", "", "sketch file from a previous sketch run (skips sketching)")
	distOutFile = distCmd.Flags().StringP("outFile", "o", "sketchtree.dist", "file to write the phylip distance matrix to")
	RootCmd.AddCommand(distCmd)
}

/*
  A function to check user supplied parameters
*/
func distParamCheck() error {
	if *distInputList == "" && *distSketchFile == "" {
		return fmt.Errorf("need either a genome list (--input) or a sketch file (--sketches)")
	}
	if *distInputList != "" && *distSketchFile != "" {
		return fmt.Errorf("--input and --sketches are mutually exclusive")
	}
	if *distInputList != "" {
		if err := misc.CheckFile(*distInputList); err != nil {
			return err
		}
	}
	if *distSketchFile != "" {
		if err := misc.CheckFile(*distSketchFile); err != nil {
			return err
		}
	}
	return sketchingParamCheck()
}

/*
  The main function for the dist command
*/
func runDist() {
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
	log.Printf("starting the dist subcommand")
	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	misc.ErrorCheck(distParamCheck())
	logSketchingParams()
	///////////////////////////////////////////////////////////////////////////////////////
	collection, err := collectSketches(*distInputList, *distSketchFile)
	misc.ErrorCheck(err)
	///////////////////////////////////////////////////////////////////////////////////////
	log.Printf("building distance matrix...")
	dm, err := matrix.Build(collection.Sketches, *proc)
	misc.ErrorCheck(err)
	log.Printf("\tpairwise distances computed: %d", dm.Size()*(dm.Size()-1)/2)
	///////////////////////////////////////////////////////////////////////////////////////
	log.Printf("writing phylip matrix to \"%v\"...", *distOutFile)
	fh, err := os.Create(*distOutFile)
	misc.ErrorCheck(err)
	defer fh.Close()
	misc.ErrorCheck(dm.WritePhylip(fh))
	log.Printf("\t%v", misc.PrintMemUsage())
	log.Println("finished")
}
