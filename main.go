// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lodhia92/hydrogen-mobility/inp"
	"github.com/lodhia92/hydrogen-mobility/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".run", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nhydrogen-mobility -- vertical mobility of fluids in sedimentary basins\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// run data
	run, err := inp.ReadRun(fnamepath)
	if err != nil {
		chk.Panic("ReadRun failed:\n%v", err)
	}
	tab, err := run.Table()
	if err != nil {
		chk.Panic("cannot load lithology data:\n%v", err)
	}

	svc, err := run.Service()
	if err != nil {
		chk.Panic("cannot initialise water model:\n%v", err)
	}

	// sweep
	e := run.Engine(tab, svc)
	ser, err := e.Sweep(context.Background(), run.Query(), run.Depths)
	if err != nil {
		chk.Panic("Sweep failed:\n%v", err)
	}

	// output
	if run.Report {
		io.Pf("\n%s", out.Report(ser))
	}
	if run.Csv {
		if err = out.SaveCsv(ser, run.DirOut, run.Key, verbose); err != nil {
			chk.Panic("SaveCsv failed:\n%v", err)
		}
	}
	if run.Plot != "" {
		if err = out.Plot(ser, run.Plot, run.DirOut, run.Key, nil); err != nil {
			chk.Panic("Plot failed:\n%v", err)
		}
	}
	if failed := ser.Failed(); len(failed) > 0 && verbose {
		io.PfRed("%d of %d depths failed\n", len(failed), len(ser.Points))
	}
}
