// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package litho

import (
	"bytes"
	"embed"
	"encoding/csv"
	goio "io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cpmech/gosl/chk"
)

// number of columns in the parameter tables
const (
	NcolPerm    = 8 // Rock, ak, phi0, phi1, phi2, k0, k1, k2
	NcolCompact = 9 // Rock, phi0, athy_k_km, athy_k_MPa, Cmax, Cmin, ka, kb, phi
)

// PermPrms holds the multipoint permeability data of a lithology
type PermPrms struct {
	Ak   float64 // anisotropy factor kh/kv
	Phi0 float64 // porosity of first point [-]
	Phi1 float64 // porosity of second point [-]
	Phi2 float64 // porosity of third point [-]
	K0   float64 // log10 permeability @ Phi0 [log10 mD]
	K1   float64 // log10 permeability @ Phi1 [log10 mD]
	K2   float64 // log10 permeability @ Phi2 [log10 mD]
}

// CompactPrms holds the compaction data of a lithology
type CompactPrms struct {
	Phi0    float64 // depositional porosity [%]
	AthyKm  float64 // Athy's compaction length w.r.t depth [km]
	AthyMPa float64 // Athy's compaction length w.r.t effective stress [MPa]
	Cmax    float64 // maximum compressibility
	Cmin    float64 // minimum compressibility
	Ka      float64 // Schneider's ka
	Kb      float64 // Schneider's kb
	Phi     float64 // extra porosity coefficient
}

// Table holds the lithology database. It is immutable after loading
type Table struct {
	perm    [NumRocks]PermPrms
	compact [NumRocks]CompactPrms
}

//go:embed data/permeability.csv data/compaction.csv
var dataFS embed.FS

// default table
var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the built-in tables. They are loaded on the first call only
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		var pb, cb []byte
		pb, defaultErr = dataFS.ReadFile("data/permeability.csv")
		if defaultErr != nil {
			return
		}
		cb, defaultErr = dataFS.ReadFile("data/compaction.csv")
		if defaultErr != nil {
			return
		}
		defaultTable, defaultErr = LoadReaders(bytes.NewReader(pb), bytes.NewReader(cb))
	})
	return defaultTable, defaultErr
}

// Load reads the permeability and compaction tables from CSV files
func Load(permFn, compactFn string) (tab *Table, err error) {
	pf, err := os.Open(permFn)
	if err != nil {
		return nil, chk.Err("%w: %v", ErrDataLoad, err)
	}
	defer pf.Close()
	cf, err := os.Open(compactFn)
	if err != nil {
		return nil, chk.Err("%w: %v", ErrDataLoad, err)
	}
	defer cf.Close()
	return LoadReaders(pf, cf)
}

// LoadReaders reads the permeability and compaction tables in CSV format (without header).
// The rows must follow the order of the lithology enumeration
func LoadReaders(perm, compact goio.Reader) (tab *Table, err error) {
	tab = new(Table)

	// permeability
	rows, err := readRows(perm, "permeability", NcolPerm)
	if err != nil {
		return nil, err
	}
	for i, v := range rows {
		tab.perm[i] = PermPrms{Ak: v[0], Phi0: v[1], Phi1: v[2], Phi2: v[3], K0: v[4], K1: v[5], K2: v[6]}
		if err = tab.perm[i].Check(); err != nil {
			return nil, chk.Err("%w: permeability table: %s: %v", ErrDataLoad, Rock(i), err)
		}
	}

	// compaction
	rows, err = readRows(compact, "compaction", NcolCompact)
	if err != nil {
		return nil, err
	}
	for i, v := range rows {
		tab.compact[i] = CompactPrms{Phi0: v[0], AthyKm: v[1], AthyMPa: v[2], Cmax: v[3], Cmin: v[4], Ka: v[5], Kb: v[6], Phi: v[7]}
		if err = tab.compact[i].Check(); err != nil {
			return nil, chk.Err("%w: compaction table: %s: %v", ErrDataLoad, Rock(i), err)
		}
	}
	return
}

// Perm returns the permeability data of a lithology
func (o *Table) Perm(r Rock) (PermPrms, error) {
	if !r.Valid() {
		return PermPrms{}, chk.Err("%w: %v", ErrUnknownLithology, r)
	}
	return o.perm[r], nil
}

// Compaction returns the compaction data of a lithology
func (o *Table) Compaction(r Rock) (CompactPrms, error) {
	if !r.Valid() {
		return CompactPrms{}, chk.Err("%w: %v", ErrUnknownLithology, r)
	}
	return o.compact[r], nil
}

// Override returns a copy of the table with the data of one lithology replaced
func (o *Table) Override(r Rock, p PermPrms, c CompactPrms) (*Table, error) {
	if !r.Valid() {
		return nil, chk.Err("%w: %v", ErrUnknownLithology, r)
	}
	if err := p.Check(); err != nil {
		return nil, chk.Err("%s: %w", r, err)
	}
	if err := c.Check(); err != nil {
		return nil, chk.Err("%s: %w", r, err)
	}
	res := *o
	res.perm[r] = p
	res.compact[r] = c
	return &res, nil
}

// PermByName returns the permeability data of a lithology given its name
func (o *Table) PermByName(name string) (PermPrms, error) {
	r, err := Parse(name)
	if err != nil {
		return PermPrms{}, err
	}
	return o.perm[r], nil
}

// CompactionByName returns the compaction data of a lithology given its name
func (o *Table) CompactionByName(name string) (CompactPrms, error) {
	r, err := Parse(name)
	if err != nil {
		return CompactPrms{}, err
	}
	return o.compact[r], nil
}

// Check checks the multipoint data: breakpoints must be increasing
func (o PermPrms) Check() error {
	if o.Phi0 >= o.Phi1 || o.Phi1 >= o.Phi2 {
		return chk.Err("%w: porosity breakpoints must satisfy phi0 < phi1 < phi2; got %g, %g, %g", errInconsistentParams, o.Phi0, o.Phi1, o.Phi2)
	}
	if o.Ak <= 0 {
		return chk.Err("%w: anisotropy factor must be positive; got %g", errInconsistentParams, o.Ak)
	}
	return nil
}

// Check checks the compaction data
func (o CompactPrms) Check() error {
	if o.Phi0 <= 0 || o.Phi0 > 100 {
		return chk.Err("%w: depositional porosity must be in (0, 100]; got %g", errInconsistentParams, o.Phi0)
	}
	if o.AthyKm <= 0 {
		return chk.Err("%w: compaction length must be positive; got %g", errInconsistentParams, o.AthyKm)
	}
	return nil
}

// readRows reads one table and returns the numeric columns of each row
func readRows(r goio.Reader, key string, ncol int) (rows [NumRocks][]float64, err error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = ncol
	rd.TrimLeadingSpace = true
	records, err := rd.ReadAll()
	if err != nil {
		return rows, chk.Err("%w: %s table: %v", ErrDataLoad, key, err)
	}
	if len(records) != int(NumRocks) {
		return rows, chk.Err("%w: %s table must have %d rows; got %d", ErrDataLoad, key, NumRocks, len(records))
	}
	for i, rec := range records {
		name := strings.TrimSpace(rec[0])
		if name != names[i] {
			return rows, chk.Err("%w: %s table: row %d must be %q; got %q", ErrDataLoad, key, i, names[i], name)
		}
		rows[i] = make([]float64, ncol-1)
		for j := 1; j < ncol; j++ {
			rows[i][j-1], err = strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil {
				return rows, chk.Err("%w: %s table: %s: column %d: %v", ErrDataLoad, key, name, j, err)
			}
		}
	}
	return
}
