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
	"os"

	"github.com/spf13/cobra"
)

// the command line arguments
var (
	proc       *int    // number of processors to use
	profiling  *bool   // create profile for go pprof
	logFile    *string // filename for the log (STDERR used if unset)
	kmerSize   *uint   // size of k-mer
	sketchSize *uint   // number of bins in the densified MinHash sketch
	densify    *string // densification strategy
	hashSeed   *uint64 // seed shared by all k-mer hashing in a run
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sketchtree",
	Short: "estimate genome distances with densified MinHash sketches and reconstruct a neighbor-joining tree",
	Long: `
#####################################################################################
	SKETCHTREE: binwise densified MinHash sketching and rapid NJ tree construction
#####################################################################################

 SKETCHTREE estimates pairwise distances between genome assemblies and builds a
 phylogenetic tree from them.

 Each genome is decomposed to canonical k-mers, which are hashed into a fixed
 number of bins via one-permutation hashing; empty bins are repaired by
 densification so every sketch supports an unbiased Jaccard estimate. Pairwise
 Jaccard estimates are converted to evolutionary distances and the resulting
 matrix is resolved into a tree by neighbor joining (naive, RapidNJ-accelerated
 or a hybrid of the two), reported in Newick format.`,
}

/*
  A function to add all child commands to the root command and sets flags appropriately
*/
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

/*
  A function to initalise the command line arguments
*/
func init() {
	proc = RootCmd.PersistentFlags().IntP("processors", "p", 1, "number of processors to use")
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile SKETCHTREE using the go tool pprof")
	logFile = RootCmd.PersistentFlags().String("logFile", "", "filename for the log (uses STDERR if unset)")
	kmerSize = RootCmd.PersistentFlags().UintP("kmerSize", "k", 16, "size of k-mer")
	sketchSize = RootCmd.PersistentFlags().UintP("sketchSize", "s", 10240, "number of bins in the densified MinHash sketch")
	densify = RootCmd.PersistentFlags().StringP("densification", "d", "optimal", "densification strategy (optimal or reverse)")
	hashSeed = RootCmd.PersistentFlags().Uint64("seed", 42, "seed shared by all k-mer hashing in a run")
}
