// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/bioframe/encoding/bed"
	"v.io/x/lib/cmdline"
)

type genomeFlags struct {
	genome     *string
	build      *string
	oneBased   *bool
	maxSkipped *int
}

func addGenomeFlags(fs *flag.FlagSet) genomeFlags {
	return genomeFlags{
		genome:     fs.String("genome", "", "Chromosome sizes of the genome build: a two-column chrom.sizes file, or a FASTA .fai index (required)"),
		build:      fs.String("build", "hg38", "Name of the genome build"),
		oneBased:   fs.Bool("one-based", false, "Input BED start positions are 1-based"),
		maxSkipped: fs.Int("max-skipped-names", bed.DefaultReadOpts.MaxSkippedNames, "Maximum number of skipped chromosome names to report"),
	}
}

func (f genomeFlags) opts() (Opts, error) {
	if *f.genome == "" {
		return Opts{}, fmt.Errorf("-genome is required")
	}
	return Opts{
		GenomePath: *f.genome,
		Build:      *f.build,
		Read: bed.ReadOpts{
			OneBasedInput:   *f.oneBased,
			MaxSkippedNames: *f.maxSkipped,
		},
	}, nil
}

// newCommand returns a subcommand taking exactly len(args) paths.
func newCommand(name, short string, args []string, run func(opts Opts, argv []string) error) *cmdline.Command {
	argsName := strings.Join(args, " ")
	cmd := &cmdline.Command{
		Name:     name,
		Short:    short,
		ArgsName: argsName,
	}
	flags := addGenomeFlags(&cmd.Flags)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != len(args) {
			return fmt.Errorf("%s takes %s, but got %v", name, argsName, argv)
		}
		opts, err := flags.opts()
		if err != nil {
			return err
		}
		return run(opts, argv)
	})
	return cmd
}

func newCmdOverlaps() *cmdline.Command {
	var flank *int
	cmd := newCommand("overlaps", "Count, per chromosome and strand, the regions of a overlapping b",
		[]string{"a.bed", "b.bed", "out.tsv"},
		func(opts Opts, argv []string) error {
			opts.Flank = *flank
			return Overlaps(opts, argv[0], argv[1], argv[2])
		})
	flank = cmd.Flags.Int("flank", 0, "Widen the regions of a by this many positions on both sides before testing overlap")
	return cmd
}

// Run runs the bio-regions command line.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-regions",
			Short:    "Tools for combining and summarizing BED region files",
			LookPath: false,
			Children: []*cmdline.Command{
				newCommand("merge", "Merge overlapping and touching regions", []string{"in.bed", "out.bed"},
					func(opts Opts, argv []string) error { return Merge(opts, argv[0], argv[1]) }),
				newCommand("intersect", "Write the regions covered by both inputs", []string{"a.bed", "b.bed", "out.bed"},
					func(opts Opts, argv []string) error { return Intersect(opts, argv[0], argv[1], argv[2]) }),
				newCommand("coverage", "Write the coverage depth runs of a region file as a table", []string{"in.bed", "out.tsv"},
					func(opts Opts, argv []string) error { return Coverage(opts, argv[0], argv[1]) }),
				newCmdOverlaps(),
				newCommand("jaccard", "Print the Jaccard index of two region files", []string{"a.bed", "b.bed"},
					func(opts Opts, argv []string) error {
						j, err := Jaccard(opts, argv[0], argv[1])
						if err != nil {
							return err
						}
						fmt.Printf("%g\n", j)
						return nil
					}),
			},
		})
}
