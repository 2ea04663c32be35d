package root

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ProtoSG/momentum-front/internal/api"
	"github.com/ProtoSG/momentum-front/internal/app"
	"github.com/ProtoSG/momentum-front/internal/config"
	"github.com/ProtoSG/momentum-front/internal/session"
	"github.com/ProtoSG/momentum-front/internal/storage"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

// openService wires config → session storage → API client → application
// service. Every command goes through here.
func openService(ctx context.Context) (*app.Service, func(), error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	cfg := config.Load()

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	sess := session.NewStore(storage.NewSessionRepo(db))
	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, sess, slog.Default())
	client.SetOnUnauthorized(func() {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" Session expired — run: mm login"))
	})

	svc := app.NewService(client, sess, slog.Default())
	svc.SetConfirm(confirmPrompt)
	return svc, cleanup, nil
}

// requireUser fails fast with a friendly message when no session exists.
func requireUser(ctx context.Context, svc *app.Service) error {
	_, ok, err := svc.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not logged in — run: mm login")
	}
	return nil
}

func confirmPrompt(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
