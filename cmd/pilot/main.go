package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptpilot/prompt-pilot-service/flow"
	"github.com/promptpilot/prompt-pilot-service/session"
)

func main() {
	serverURL := flag.String("server", "http://127.0.0.1:8620", "prompt-pilot-service base URL")
	flag.Parse()

	store, err := session.NewFileStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not set up session storage: %v\n", err)
		os.Exit(1)
	}

	ctrl := flow.NewController()

	// Restore the last completed session, if any. Storage failures are
	// logged and the app starts fresh.
	if sess, err := store.Load(context.Background(), ""); err != nil {
		log.Printf("Failed to restore session: %v", err)
	} else if sess != nil {
		ctrl.Restore(sess)
	}

	app := NewAppModel(ctrl, flow.NewClient(*serverURL), store)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
