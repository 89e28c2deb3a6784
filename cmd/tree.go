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
	"sketchtree/src/nj"
	"sketchtree/src/version"
)

// the command line arguments
var (
	treeInputList   *string // genome list file
	treeSketchFile  *string // sketch file from a previous sketch run
	treeInputMatrix *string // phylip matrix from a previous dist run
	treeMethod      *string // tree construction method
	chunkSize       *int    // candidate list chunk size (rapidnj/hybrid)
	naivePercentage *int    // percentage of join steps run naively (hybrid)
	outputMatrix    *string // also write the phylip matrix to this file
	treeOutFile     *string // file to write the Newick tree to
)

// the tree command (used by cobra)
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Reconstruct a neighbor-joining tree from sketched genome distances",
	Long:  `Reconstruct a neighbor-joining tree from sketched genome distances`,
	Run: func(cmd *cobra.Command, args []string) {
		runTree()
	},
}

/*
  A function to initialise the command line arguments
*/
func init() {
	treeInputList = treeCmd.Flags().StringP("input", "i", "", "genome list file (one FASTA file per line, .gz supported)")
	treeSketchFile = treeCmd.Flags().String("sketches", "", "sketch file from a previous sketch run (skips sketching)")
	treeInputMatrix = treeCmd.Flags().String("inputMatrix", "", "phylip distance matrix from a previous dist run (skips sketching and distance estimation)")
	treeMethod = treeCmd.Flags().String("tree", "rapidnj", "tree construction method (naive, rapidnj or hybrid)")
	chunkSize = treeCmd.Flags().Int("chunkSize", 30, "chunk size for the rapidnj and hybrid methods")
	naivePercentage = treeCmd.Flags().Int("naivePercentage", 90, "percentage of join steps run naively by the hybrid method")
	outputMatrix = treeCmd.Flags().String("outputMatrix", "", "also write the phylip distance matrix to this file")
	treeOutFile = treeCmd.Flags().StringP("outFile", "o", "", "file to write the Newick tree to (uses STDOUT if unset)")
	RootCmd.AddCommand(treeCmd)
}

/*
  A function to check user supplied parameters
*/
func treeParamCheck() error {
	numSources := 0
	for _, source := range []string{*treeInputList, *treeSketchFile, *treeInputMatrix} {
		if source != "" {
			numSources++
			if err := misc.CheckFile(source); err != nil {
				return err
			}
		}
	}
	if numSources != 1 {
		return fmt.Errorf("need exactly one of --input, --sketches or --inputMatrix")
	}
	if _, err := nj.ParseMethod(*treeMethod); err != nil {
		return err
	}
	if *chunkSize < 1 {
		return fmt.Errorf("chunk size must be a positive integer (got %d)", *chunkSize)
	}
	if *naivePercentage < 0 || *naivePercentage > 100 {
		return fmt.Errorf("naive percentage must be between 0 and 100 (got %d)", *naivePercentage)
	}
	return sketchingParamCheck()
}

/*
  The main function for the tree command
*/
func runTree() {
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
	log.Printf("starting the tree subcommand")
	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	misc.ErrorCheck(treeParamCheck())
	logSketchingParams()
	log.Printf("\ttree method: %v", *treeMethod)
	///////////////////////////////////////////////////////////////////////////////////////
	// get the distance matrix, from whichever source was supplied
	var dm *matrix.DistanceMatrix
	if *treeInputMatrix != "" {
		log.Printf("reading phylip matrix from \"%v\"...", *treeInputMatrix)
		fh, err := os.Open(*treeInputMatrix)
		misc.ErrorCheck(err)
		dm, err = matrix.ReadPhylip(fh)
		fh.Close()
		misc.ErrorCheck(err)
		log.Printf("\tnumber of genomes: %d", dm.Size())
	} else {
		collection, err := collectSketches(*treeInputList, *treeSketchFile)
		misc.ErrorCheck(err)
		log.Printf("building distance matrix...")
		dm, err = matrix.Build(collection.Sketches, *proc)
		misc.ErrorCheck(err)
		log.Printf("\tpairwise distances computed: %d", dm.Size()*(dm.Size()-1)/2)
	}
	if *outputMatrix != "" {
		log.Printf("writing phylip matrix to \"%v\"...", *outputMatrix)
		fh, err := os.Create(*outputMatrix)
		misc.ErrorCheck(err)
		misc.ErrorCheck(dm.WritePhylip(fh))
		misc.ErrorCheck(fh.Close())
	}
	///////////////////////////////////////////////////////////////////////////////////////
	log.Printf("constructing the tree...")
	method, err := nj.ParseMethod(*treeMethod)
	misc.ErrorCheck(err)
	tree, err := nj.Run(dm, &nj.Config{
		Method:          method,
		ChunkSize:       *chunkSize,
		NaivePercentage: *naivePercentage,
	})
	misc.ErrorCheck(err)
	newick := tree.Newick()
	///////////////////////////////////////////////////////////////////////////////////////
	if *treeOutFile != "" {
		log.Printf("writing Newick tree to \"%v\"...", *treeOutFile)
		misc.ErrorCheck(os.WriteFile(*treeOutFile, []byte(newick+"\n"), 0644))
	} else {
		fmt.Println(newick)
	}
	log.Printf("\t%v", misc.PrintMemUsage())
	log.Println("finished")
}
