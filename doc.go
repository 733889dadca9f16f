// Package main implements aoc, a runner for a collection of Advent of Code
// solutions.
//
// # Features
//
//   - Solver dispatch by (year, day) over the internal/yearYYYY packages
//   - Puzzle inputs downloaded once with the session cookie and cached on disk
//   - Session id kept in the OS keyring, the config file or AOC_SESSION
//   - Days solved in parallel, answers printed in request order
//   - Stub generation for new days
//
// # Usage
//
//	aoc [solve] [-y YEAR] [-d DAY,...] [-j N] [--refresh]
//	aoc set-session-id [--store keyring|config] [--forget]
//	aoc create [-y YEAR] [-d DAY,...] [--root DIR]
//	aoc list [-y YEAR]
//
// # Configuration
//
// Configuration is loaded from the --config path, $AOC_HOME/config.json, or
// config.json under the user config directory. A .env file in the working
// directory is read at start-up.
package main
