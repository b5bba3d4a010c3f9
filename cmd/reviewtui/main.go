package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/ninenine-news/backend/conf"
	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/store/filestore"
	"github.com/ninenine-news/backend/store/pgstore"
	"github.com/ninenine-news/backend/subm"
)

func main() {
	_ = godotenv.Load()

	cfg, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var recordStore store.Store
	if cfg.UsePostgres() {
		pg, err := pgstore.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect to PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		defer pg.Close()
		recordStore = pg
	} else {
		recordStore = filestore.New(cfg.DataFile)
	}

	if err := store.Bootstrap(ctx, recordStore); err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	admin, err := recordStore.UserByEmail(ctx, store.CanonicalAdminEmail)
	if err != nil || admin == nil {
		fmt.Fprintf(os.Stderr, "failed to resolve admin account: %v\n", err)
		os.Exit(1)
	}

	srvc := subm.NewSubmSrvc(recordStore)
	caller := subm.Caller{ID: admin.ID, Admin: true}

	pending, err := loadPending(ctx, srvc, caller)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list submissions: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(ctx, srvc, caller, pending))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadPending(ctx context.Context, srvc *subm.SubmSrvc, caller subm.Caller) ([]subm.Submission, error) {
	all, err := srvc.ListAll(ctx, caller)
	if err != nil {
		return nil, err
	}
	var pending []subm.Submission
	for _, view := range all {
		if view.Status == store.StatusPending {
			pending = append(pending, view)
		}
	}
	return pending, nil
}
