package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/crystalix007/range-alloc/rangealloc"
)

// scenario is a sequence of allocation requests against one universe, as
// read from a TOML file:
//
//	[universe]
//	index = 0
//	length = 100
//
//	[[alloc]]
//	index = 25
//	length = 50
type scenario struct {
	Universe request   `toml:"universe"`
	Allocs   []request `toml:"alloc"`
}

// request is an (index, length) pair.
type request struct {
	Index  int64 `toml:"index"`
	Length int64 `toml:"length"`
}

// span returns the span [Index, Index+Length).
func (r request) span() rangealloc.Span[int64] {
	return rangealloc.FromLength(r.Index, r.Length)
}

// loadScenario reads and validates the scenario file at path.
func loadScenario(path string) (*scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	s, err := decodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load %q: %w", path, err)
	}

	return s, nil
}

// decodeScenario decodes and validates a scenario.
//
// Allocation requests are not validated: rejecting malformed requests is the
// allocator's job, and a scenario may exercise it on purpose.
func decodeScenario(r io.Reader) (*scenario, error) {
	var s scenario

	meta, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys %v", undecoded)
	}

	if !meta.IsDefined("universe") {
		return nil, errors.New("no universe defined")
	}

	if s.Universe.Length < 0 || !s.Universe.span().WellFormed() {
		return nil, fmt.Errorf("universe %v is not a valid range", s.Universe.span())
	}

	return &s, nil
}
