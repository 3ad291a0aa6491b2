package org

import (
	"io"
	"log"
	"os"

	"github.com/alexispurslane/orgcst/internal/input"
)

// Configuration controls how Parse recognizes TODO states and
// affiliated keywords. It also carries a Log for diagnostics; Parse
// itself writes nothing to it.
type Configuration struct {
	TodoKeywords       []string // default: ["TODO"]
	DoneKeywords       []string // default: ["DONE"]
	AffiliatedKeywords []string // default includes CAPTION, HEADER, NAME, PLOT, RESULTS
	Log                *log.Logger

	// ReadFile is a hook for a future #+INCLUDE recognizer to read an
	// auxiliary file. The core parser never calls it; it exists so
	// callers building on top of Parse have a consistent place to hang
	// that policy, mirroring go-org's Configuration.ResolveLink.
	ReadFile func(filename string) ([]byte, error)
}

// New returns a Configuration with the default TODO/DONE families and
// affiliated-keyword set.
func New() *Configuration {
	return &Configuration{
		TodoKeywords:       []string{"TODO"},
		DoneKeywords:       []string{"DONE"},
		AffiliatedKeywords: []string{"CAPTION", "HEADER", "NAME", "PLOT", "RESULTS"},
		Log:                log.New(os.Stderr, "orgcst: ", 0),
		ReadFile:           os.ReadFile,
	}
}

// Silent disables parse-time diagnostic logging.
func (c *Configuration) Silent() *Configuration {
	c.Log = log.New(io.Discard, "", 0)
	return c
}

func (c *Configuration) inputConfig() *input.Config {
	return &input.Config{
		TodoKeywords:       c.TodoKeywords,
		DoneKeywords:       c.DoneKeywords,
		AffiliatedKeywords: c.AffiliatedKeywords,
	}
}
