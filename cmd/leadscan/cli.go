package main

import (
	"context"
	"io"
	"time"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/enrich"
	"github.com/konverta/leadscan/scan"
)

// dequeueTimeout bounds how long a command waits for one pending
// enrichment task before giving up the drain.
const dequeueTimeout = 5 * time.Second

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Reports leadscan.ReportService
	Scanner *scan.Scanner
	Queue   leadscan.TaskQueue
	Worker  *enrich.Worker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze one or more landing pages"`
	Site    SiteCmd    `cmd:"" help:"Analyze pages discovered from a site's sitemap"`
	Report  ReportCmd  `cmd:"" help:"Show a stored report by ID or access token"`
	List    ListCmd    `cmd:"" help:"List stored reports"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored report"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs    []string `arg:"" name:"url" help:"Page URLs to analyze"`
	NoWait  bool     `help:"Skip waiting for narrative enrichment"`
	Verbose bool     `short:"v" help:"Show per-criterion problems"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL         string `arg:"" help:"Site base URL"`
	Limit       int    `short:"l" default:"25" help:"Maximum pages to scan"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent scan limit"`
	NoWait      bool   `help:"Skip waiting for narrative enrichment"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	ID      string `arg:"" help:"Report ID or access token"`
	Verbose bool   `short:"v" help:"Show per-criterion problems"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"l" default:"20" help:"Maximum reports to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Report ID"`
	Force bool   `help:"Confirm deletion"`
}

// enrichPending drains up to expected enrichment tasks synchronously so
// narratives are merged before the process exits. Per-task failures fall
// back to template narratives inside the worker; only an empty queue ends
// the drain early.
func enrichPending(deps *Dependencies, expected int) {
	if deps.Worker == nil || deps.Queue == nil {
		return
	}
	for i := 0; i < expected; i++ {
		dctx, cancel := context.WithTimeout(deps.Ctx, dequeueTimeout)
		task, err := deps.Queue.Dequeue(dctx)
		cancel()
		if err != nil {
			return
		}
		_ = deps.Worker.Process(deps.Ctx, task)
	}
}
