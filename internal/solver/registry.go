package solver

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoSolver is wrapped by Lookup when no solver is registered for a key.
var ErrNoSolver = errors.New("no solver")

// FirstYear is the year of the first Advent of Code.
const FirstYear = 2015

// Key identifies a puzzle.
type Key struct {
	Year int
	Day  int
}

// String renders the key as YYYY-DD.
func (k Key) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Day)
}

// CacheKey implements the input cache key contract.
func (k Key) CacheKey() string { return k.String() }

// Validate reports whether the key names a possible puzzle.
func (k Key) Validate() error {
	if k.Year < FirstYear {
		return fmt.Errorf("invalid year %d: first contest was %d", k.Year, FirstYear)
	}
	if k.Day < 1 || k.Day > 25 {
		return fmt.Errorf("invalid day %d: must be between 1 and 25", k.Day)
	}
	return nil
}

// Registry maps puzzle keys to solver factories.
type Registry struct {
	factories map[Key]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Key]Factory)}
}

// Register adds the factory for one day. Registration happens at start-up,
// so an invalid or duplicate key panics.
func (r *Registry) Register(year, day int, factory Factory) {
	key := Key{Year: year, Day: day}
	if err := key.Validate(); err != nil {
		panic(fmt.Sprintf("register solver %s: %v", key, err))
	}
	if factory == nil {
		panic(fmt.Sprintf("register solver %s: nil factory", key))
	}
	if _, exists := r.factories[key]; exists {
		panic(fmt.Sprintf("solver for %s already registered", key))
	}
	r.factories[key] = factory
}

// Lookup returns the factory registered for key.
func (r *Registry) Lookup(key Key) (Factory, error) {
	factory, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w for day %d of year %d", ErrNoSolver, key.Day, key.Year)
	}
	return factory, nil
}

// New looks up the factory for key and builds a solver from input.
func (r *Registry) New(key Key, input string) (Solver, error) {
	factory, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	s, err := factory(input)
	if err != nil {
		return nil, fmt.Errorf("construct solver %s: %w", key, err)
	}
	return s, nil
}

// Keys returns every registered key, ordered by year then day.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Day < keys[j].Day
	})
	return keys
}

// Years returns the distinct registered years in ascending order.
func (r *Registry) Years() []int {
	var years []int
	for _, k := range r.Keys() {
		if len(years) == 0 || years[len(years)-1] != k.Year {
			years = append(years, k.Year)
		}
	}
	return years
}

// Days returns the registered days of year in ascending order.
func (r *Registry) Days(year int) []int {
	var days []int
	for _, k := range r.Keys() {
		if k.Year == year {
			days = append(days, k.Day)
		}
	}
	return days
}
