// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package litho implements the lithology database with permeability and compaction data
//  References:
//   [1] Hantschel T and Kauerauf AI (2009) Fundamentals of Basin and Petroleum Systems
//       Modeling. Springer, Berlin. http://dx.doi.org/10.1007/978-3-540-72318-9
package litho

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// errors
var (
	ErrUnknownLithology   = errors.New("unknown lithology")
	ErrUnsupportedClass   = errors.New("lithology class not supported")
	ErrDataLoad           = errors.New("cannot load lithology data")
	errInconsistentParams = errors.New("inconsistent lithology parameters")
)

// Rock identifies a lithology. The order corresponds to the rows of the parameter tables
type Rock int

// lithologies
const (
	LimestoneOG Rock = iota
	LimestoneWM
	Micrite
	LimestoneShaley
	LimestoneOrgrich
	LimestoneTOC1to2
	LimestoneTOC10
	Marl
	Dolomite
	DolomiteSandy
	DolomiteSilty
	DolomiteOrg
	Chalk
	ChalkCalcite95
	ChalkCalcite75
	ChalkCalcite40
	Coal
	CoalImpure
	CoalSilty
	Sandstone
	SandstoneClayrich
	SandstoneClaypoor
	Quartzite
	QuartziteQuartz
	Subarkose
	SubarkoseQuartz
	SubarkoseClayrich
	SubarkoseClaypoor
	SubarkoseDolomite
	Arkose
	ArkoseQuartzrich
	ArkoseQuartzpoor
	ArkoseClayrich
	ArkoseClaypoor
	ArkoseDolomite
	Wacke
	Shale
	ShaleOrglean
	ShaleSandy
	ShaleSilty
	ShaleSilicious
	ShaleOpalCT
	ShaleBlack
	ShaleOrgrich
	ShaleTOC3
	ShaleTOC8
	ShaleTOC20
	Siltstone
	SiltstoneOrgrich
	SiltstoneTOC10
	SiltstoneTOC2to3
	Conglomerate
	ConglomerateQuartzite
	TuffFelsic
	TuffBasaltic
	NumRocks // number of lithologies
)

// names holds the lithology names as written in the parameter tables
var names = [NumRocks]string{
	"Limestone-OG", "Limestone-WM", "Micrite", "Limestone-shaley", "Limestone-orgrich",
	"Limestone-TOC1-2", "Limestone-TOC10", "Marl", "Dolomite", "Dolomite-sandy",
	"Dolomite-silty", "Dolomite-org", "Chalk", "Chalk-calcite95", "Chalk-calcite75",
	"Chalk-calcite40", "Coal", "Coal-impure", "Coal-silty", "Sandstone",
	"Sandstone-clayrich", "Sandstone-claypoor", "Quartzite", "Quartzite-quartz", "Subarkose",
	"Subarkose-quartz", "Subarkose-clayrich", "Subarkose-claypoor", "Subarkose-dolomite", "Arkose",
	"Arkose-quartzrich", "Arkose-quartzpoor", "Arkose-clayrich", "Arkose-claypoor", "Arkose-dolomite",
	"Wacke", "Shale", "Shale-orglean", "Shale-sandy", "Shale-silty",
	"Shale-silicious", "Shale-opalCT", "Shale-black", "Shale-orgrich", "Shale-TOC3",
	"Shale-TOC8", "Shale-TOC20", "Siltstone", "Siltstone-orgrich", "Siltstone-TOC10",
	"Siltstone-TOC2-3", "Conglomerate", "Conglomerate-quartzite", "Tuff-felsic", "Tuff-basaltic",
}

// name2rock maps names to lithologies
var name2rock = make(map[string]Rock, NumRocks)

func init() {
	for i, name := range names {
		name2rock[name] = Rock(i)
	}
}

// Parse returns the lithology with the given name
func Parse(name string) (Rock, error) {
	if r, ok := name2rock[name]; ok {
		return r, nil
	}
	return -1, chk.Err("%w: %q", ErrUnknownLithology, name)
}

// Names returns all lithology names in table order
func Names() []string {
	res := make([]string, NumRocks)
	copy(res, names[:])
	return res
}

// Valid tells whether r is one of the enumerated lithologies
func (r Rock) Valid() bool {
	return r >= 0 && r < NumRocks
}

// String returns the name of the lithology
func (r Rock) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rock(%d)", int(r))
	}
	return names[r]
}

// classes ////////////////////////////////////////////////////////////////////////////////////////

// Class defines the saturation class of a lithology (Holmes constants)
type Class int

// saturation classes
const (
	Unclassified Class = iota // no connate water saturation data
	Clastic                   // sandstones, quartzites, arkoses, siltstones and conglomerates
	Carbonate                 // limestones, marl and dolomites
)

// String returns the name of the class
func (c Class) String() string {
	switch c {
	case Clastic:
		return "clastic"
	case Carbonate:
		return "carbonate"
	}
	return "unclassified"
}

// Class returns the saturation class of the lithology
func (r Rock) Class() Class {
	switch {
	case r >= LimestoneOG && r <= DolomiteOrg:
		return Carbonate
	case r >= Sandstone && r <= ArkoseDolomite:
		return Clastic
	case r >= Siltstone && r <= ConglomerateQuartzite:
		return Clastic
	}
	return Unclassified
}

// IsShale tells whether the lithology belongs to the shale group
func (r Rock) IsShale() bool {
	return r >= Shale && r <= ShaleTOC20
}

// groups /////////////////////////////////////////////////////////////////////////////////////////

// groups holds sets of lithologies commonly analysed together
var groups = map[string][]Rock{
	"sandstone":    {Sandstone, SandstoneClayrich, SandstoneClaypoor},
	"quartzite":    {Quartzite, QuartziteQuartz},
	"arkose":       {Subarkose, SubarkoseQuartz, SubarkoseClayrich, SubarkoseClaypoor, SubarkoseDolomite, Arkose, ArkoseQuartzrich, ArkoseQuartzpoor, ArkoseClayrich, ArkoseClaypoor, ArkoseDolomite},
	"siltstone":    {Siltstone, SiltstoneOrgrich, SiltstoneTOC10, SiltstoneTOC2to3},
	"conglomerate": {Conglomerate, ConglomerateQuartzite},
	"limestone":    {LimestoneOG, LimestoneWM, Micrite, LimestoneShaley, LimestoneOrgrich, LimestoneTOC1to2},
	"carbonates":   {Marl, Dolomite, DolomiteSandy, DolomiteSilty, DolomiteOrg},
}

// Group returns the lithologies in a named group; e.g. "sandstone", "arkose", "limestone"
func Group(name string) ([]Rock, error) {
	g, ok := groups[name]
	if !ok {
		return nil, chk.Err("%w: group %q", ErrUnknownLithology, name)
	}
	res := make([]Rock, len(g))
	copy(res, g)
	return res, nil
}
