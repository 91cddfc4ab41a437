// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*
bio-regions combines and summarizes BED region files over a genome build:
merging, intersection, per-position coverage depth, per-chromosome overlap
counts and the Jaccard index of two region sets.
*/
package main

import (
	"github.com/grailbio/base/grail"
	"github.com/grailbio/bioframe/cmd/bio-regions/cmd"
)

func main() {
	shutdown := grail.Init()
	defer shutdown()
	cmd.Run()
}
