package main

import (
	"github.com/fwojciec/gapscan/chi"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := chi.NewServer(deps.Analyzer, deps.Reports, deps.Logger)
	return server.ListenAndServe(c.Addr)
}
