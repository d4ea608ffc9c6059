package main

import (
	"context"
	"io"

	"github.com/fwojciec/regscout"
	"github.com/fwojciec/regscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	History  regscout.SearchHistoryService
	Sitemaps regscout.SitemapService
	Searcher regscout.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search   SearchCmd   `cmd:"" help:"Search the regulator sites for documents matching a query"`
	History  HistoryCmd  `cmd:"" help:"List past searches"`
	Show     ShowCmd     `cmd:"" help:"Show a stored search and its documents"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stored search"`
	Discover DiscoverCmd `cmd:"" help:"Discover section paths from a site's sitemaps"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       []string `arg:"" help:"Query text"`
	AllSites    bool     `short:"a" help:"Consult secondary sites when the primary comes up thin"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent secondary-site limit"`
	Verbose     bool     `short:"v" help:"Log fetch and scoring activity to stderr"`
	NoSave      bool     `help:"Do not record the search in history"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Query  string `short:"q" help:"Filter by exact query text"`
	Limit  int    `default:"20" help:"Maximum searches to list"`
	Offset int    `help:"Searches to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Search ID"`
	Full bool   `help:"Show full document content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Search ID"`
	Force bool   `help:"Confirm deletion"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL    string   `arg:"" help:"Site base URL"`
	Filter []string `short:"F" name:"filter" help:"Filter sitemap URLs by regex (repeatable)"`
}
