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
	"runtime"

	"sketchtree/src/seqio"
	"sketchtree/src/sketch"
)

// sketchingParamCheck validates the shared sketching parameters before any
// hashing work begins, and clamps the processor count
func sketchingParamCheck() error {
	if *kmerSize < 1 || *kmerSize > 32 {
		return fmt.Errorf("k-mer size must be between 1 and 32 (got %d)", *kmerSize)
	}
	if *sketchSize < 1 {
		return fmt.Errorf("sketch size must be a positive integer (got %d)", *sketchSize)
	}
	if _, err := sketch.ParseDensifyStrategy(*densify); err != nil {
		return err
	}
	// set number of processors to use
	if *proc <= 0 || *proc > runtime.NumCPU() {
		*proc = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(*proc)
	return nil
}

// logSketchingParams records the shared sketching parameters in the log
func logSketchingParams() {
	log.Printf("\tprocessors: %d", *proc)
	log.Printf("\tk-mer size: %d", *kmerSize)
	log.Printf("\tsketch size: %d", *sketchSize)
	log.Printf("\tdensification strategy: %v", *densify)
	log.Printf("\thash seed: %d", *hashSeed)
}

// collectSketches returns the sketch collection for a subcommand, either
// loaded from a previous sketch run or built fresh from a genome list
func collectSketches(listFile, sketchFile string) (*sketch.Collection, error) {
	if sketchFile != "" {
		log.Printf("loading sketches from \"%v\"...", sketchFile)
		collection := &sketch.Collection{}
		if err := collection.Load(sketchFile); err != nil {
			return nil, err
		}
		log.Printf("\tnumber of sketches: %d", len(collection.Sketches))
		log.Printf("\tk-mer size: %d", collection.KmerSize)
		log.Printf("\tsketch size: %d", collection.SketchSize)
		return collection, nil
	}
	genomePaths, err := seqio.ReadGenomeList(listFile)
	if err != nil {
		return nil, err
	}
	log.Printf("\tnumber of genomes listed: %d", len(genomePaths))
	strategy, err := sketch.ParseDensifyStrategy(*densify)
	if err != nil {
		return nil, err
	}
	log.Printf("sketching all genomes...")
	collection, err := sketch.SketchGenomes(genomePaths, *kmerSize, *sketchSize, *hashSeed, strategy, *proc)
	if err != nil {
		return nil, err
	}
	log.Printf("\tnumber of sketches: %d", len(collection.Sketches))
	return collection, nil
}
