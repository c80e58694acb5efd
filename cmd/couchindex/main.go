package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/couchindex/assets/icon"
	"github.com/depeter/couchindex/internal/app"
	"github.com/depeter/couchindex/internal/config"
	"github.com/depeter/couchindex/internal/indexview"
	"github.com/depeter/couchindex/internal/jellyfin"
	"github.com/depeter/couchindex/internal/library"
	"github.com/depeter/couchindex/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/couchindex/config.toml)")
	logPath := flag.String("log", "", "append log output to this file")
	password := flag.String("password", "", "log in as server.username and store the token in the config")
	demo := flag.Bool("demo", false, "browse the built-in demo list instead of a server")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	path := *configPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			log.Fatalf("Failed to locate config: %v", err)
		}
		path = p
	}

	// Load config
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitDefaultFont(); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := app.NewGame(cfg)
	first, err := firstScreen(ctx, cfg, path, *password, *demo)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	game.Screens.Push(first)

	if reloads, err := config.Watch(ctx, path); err != nil {
		log.Printf("Config reload disabled: %v", err)
	} else {
		game.WatchConfig(reloads)
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("CouchIndex")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// firstScreen picks what to show: the demo list when no server is
// configured, the login screen when there is no token, and the server's
// library otherwise. A password logs in once and saves the token.
func firstScreen(ctx context.Context, cfg *config.Config, path, password string, demo bool) (ui.Screen, error) {
	if demo || cfg.Server.URL == "" {
		return newListScreen(jellyfin.StaticSource{}, cfg.Index), nil
	}

	switch {
	case password != "":
		client, err := login(ctx, path, cfg.Server.URL, cfg.Server.Username, password)
		if err != nil {
			return nil, err
		}
		return newListScreen(&jellyfin.LibrarySource{Client: client, Library: cfg.Server.Library}, cfg.Index), nil
	case cfg.Server.Token != "":
		client := jellyfin.NewClient(cfg.Server.URL)
		client.SetToken(cfg.Server.Token, cfg.Server.UserID)
		return newListScreen(&jellyfin.LibrarySource{Client: client, Library: cfg.Server.Library}, cfg.Index), nil
	}

	return ui.NewLoginScreen(cfg.Server.URL, cfg.Server.Username,
		func(ctx context.Context, server, user, pass string) (ui.Screen, error) {
			client, err := login(ctx, path, server, user, pass)
			if err != nil {
				return nil, err
			}
			stored, err := config.LoadFile(path)
			if err != nil {
				return nil, err
			}
			return newListScreen(&jellyfin.LibrarySource{Client: client, Library: stored.Server.Library}, stored.Index), nil
		}), nil
}

// login authenticates and stores the server, user and token in the config
// file at path.
func login(ctx context.Context, path, server, user, pass string) (*jellyfin.Client, error) {
	client := jellyfin.NewClient(server)
	if err := client.Authenticate(ctx, user, pass); err != nil {
		return nil, err
	}

	stored, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	stored.Server.URL = client.ServerURL()
	stored.Server.Username = user
	stored.Server.Token = client.Token()
	stored.Server.UserID = client.UserID()
	if err := stored.SaveFile(path); err != nil {
		log.Printf("Failed to save token to %s: %v", filepath.Base(path), err)
	}
	return client, nil
}

func newListScreen(source jellyfin.Source, cfg config.IndexConfig) *ui.ListScreen {
	list := ui.NewListScreen(source, cfg, indexview.SystemClock)
	list.OnItemSelected = func(it library.Item) {
		log.Printf("Selected %s (%s)", it.Title, it.ID)
	}
	return list
}
