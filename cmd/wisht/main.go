package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/wisht/internal/app"
	"github.com/dori/wisht/internal/category"
	"github.com/dori/wisht/internal/client"
	"github.com/dori/wisht/internal/report"
	"github.com/dori/wisht/internal/server"
	"github.com/dori/wisht/internal/store"
	"github.com/dori/wisht/internal/ui"
)

var (
	version = "0.1.0"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "serve":
			handleServe(os.Args[2:])
			return
		case "new":
			handleNew(os.Args[2:])
			return
		case "add":
			handleAdd(os.Args[2:])
			return
		case "version":
			fmt.Printf("wisht v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// TUI mode
	shareFlag := flag.String("share", "", "Share identifier of the list to open")
	serverFlag := flag.String("server", serverURL(), "Server base URL")
	flag.Parse()

	if err := runTUI(*serverFlag, *shareFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `wisht - a shared wish-list tracker

Usage:
  wisht [--share <id>]          Open a list in the TUI
  wisht serve                   Run the API server
  wisht new                     Create a shared list, print its share id
  wisht add <wish...>           Quick add without opening the TUI
  wisht version                 Show version
  wisht help                    Show this help

Anyone holding a list's share id can read and edit it; keep it private.
Omitting --share addresses the server's local default list.

Options:
  --server <url>    Server base URL (default $WISHT_SERVER or http://localhost:5000)
  --share <id>      Share identifier of the list
  serve: --addr <addr> (default :5000), --data <dir>
  add:   --category <label>

Keybindings:
  ↑/↓ or j/k    Move cursor
  a             Add a wish
  enter         Edit (wishes tab) / edit comment (done tab)
  c             Complete with an optional comment
  o             Toggle sort order
  tab / 1 / 2   Switch tabs
  q             Quit`

	fmt.Println(help)
}

// serverURL resolves the server base URL from the environment
func serverURL() string {
	if env := os.Getenv("WISHT_SERVER"); env != "" {
		return env
	}
	return client.DefaultServerURL
}

func handleServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":5000", "Listen address")
	dataDir := fs.String("data", "", "Data directory (default $WISHT_DATA or ~/.local/share/wisht)")
	fs.Parse(args)

	cfg := app.DefaultConfig()
	if *dataDir != "" {
		cfg = &app.Config{
			DataDir: *dataDir,
			DBPath:  filepath.Join(*dataDir, "wisht.db"),
		}
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	logger := log.New(os.Stderr, "wisht: ", log.LstdFlags)
	srv := &http.Server{
		Addr:    *addr,
		Handler: server.New(application.DB, logger),
	}

	done := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		close(done)
	}()

	logger.Printf("serving on %s (data: %s)", *addr, application.DataDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	<-done
}

func handleNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	serverBase := fs.String("server", serverURL(), "Server base URL")
	fs.Parse(args)

	c := client.New(*serverBase)
	shareID, err := c.CreateList(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating list: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created a new list.\n")
	fmt.Printf("Share id: %s\n", shareID)
	fmt.Printf("Open it:  wisht --share %s\n", shareID)
}

func handleAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	serverBase := fs.String("server", serverURL(), "Server base URL")
	share := fs.String("share", "", "Share identifier of the list")
	cat := fs.String("category", "", "Category label")
	fs.Parse(args)

	title := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if title == "" {
		fmt.Fprintln(os.Stderr, "Usage: wisht add <wish> [--share id] [--category label]")
		fmt.Fprintln(os.Stderr, "Example: wisht add \"learn to sail\" --category \"go out\"")
		os.Exit(1)
	}

	c := client.New(*serverBase)
	scope := client.Scope{ShareID: *share}

	label := *cat
	if label == "" {
		label = category.Defaults[0]
	}

	item, err := c.Create(context.Background(), scope, title, label)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating item: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added: %s %s\n", category.Icon(item.Category), item.Title)
}

func runTUI(serverBase, shareID string) error {
	c := client.New(serverBase)
	scope := client.Scope{ShareID: shareID}

	reporter := report.New(report.DefaultLogPath(app.DefaultConfig().DataDir))
	st := store.New(c, scope, reporter)
	registry := category.NewRegistry()

	model := ui.NewRootModel(c, st, registry, reporter)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
