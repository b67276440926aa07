package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	assesshttp "github.com/fwojciec/assessrec/http"
	"github.com/fwojciec/assessrec/recommend"
)

// CLI defines the command line interface.
type CLI struct {
	Config  string `help:"Path to the configuration file." type:"path" short:"c"`
	Verbose bool   `help:"Enable debug logging." short:"v"`

	Serve     ServeCmd     `cmd:"" help:"Start the recommendation web server."`
	Recommend RecommendCmd `cmd:"" help:"Print recommendations for a query."`
	Catalog   CatalogCmd   `cmd:"" help:"Scrape and print the assessment catalog."`
}

// browser reports whether the selected command asked for a headless
// browser fetcher instead of the default HTTP client.
func (c *CLI) browser() bool {
	return c.Serve.Browser || c.Recommend.Browser || c.Catalog.Browser
}

// Dependencies holds the shared dependencies injected into commands.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config  *Config
	Logger  *slog.Logger
	Service *recommend.Service
}

// ServeCmd starts the web UI.
type ServeCmd struct {
	Addr    string `help:"Address to listen on. Defaults to the configured address."`
	Browser bool   `help:"Fetch pages with a headless browser."`
}

func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Server.Addr
	}

	server := assesshttp.NewServer(deps.Service, deps.Logger)
	deps.Logger.Info("starting server", slog.String("addr", addr))
	return server.ListenAndServe(addr)
}

// RecommendCmd runs a single query against the catalog and prints the
// ranked results.
type RecommendCmd struct {
	Text    string `help:"Free-text query." xor:"query"`
	URL     string `help:"URL of a page to use as the query." xor:"query"`
	TopN    int    `help:"Maximum number of recommendations." default:"0"`
	JSON    bool   `help:"Print results as JSON."`
	Browser bool   `help:"Fetch pages with a headless browser."`
}

func (c *RecommendCmd) Run(deps *Dependencies) error {
	query := c.Text
	if query == "" && c.URL != "" {
		extracted, err := deps.Service.QueryFromURL(deps.Ctx, c.URL)
		if err != nil {
			return err
		}
		query = extracted
	}
	if query == "" {
		fmt.Fprintln(deps.Stdout, "Please provide text or a URL to get recommendations.")
		return nil
	}

	if c.TopN > 0 {
		deps.Service.TopN = c.TopN
	}

	recs, err := deps.Service.Recommend(deps.Ctx, query)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No product data fetched. Check website structure or network.")
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSESSMENT\tREMOTE TESTING\tADAPTIVE/IRT")
	for _, rec := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Name, yesNo(rec.RemoteTesting), yesNo(rec.AdaptiveIRT))
	}
	return w.Flush()
}

// CatalogCmd scrapes the catalog and prints it as JSON.
type CatalogCmd struct {
	Browser bool `help:"Fetch pages with a headless browser."`
}

func (c *CatalogCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Service.Catalog.Catalog(deps.Ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(catalog)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
