package jellyfin

import (
	"context"
	"fmt"
)

// Source loads the titles shown in the list.
type Source interface {
	Name() string
	Items(ctx context.Context) ([]MediaItem, error)
}

// LibrarySource lists one library of a Jellyfin server, or every library
// when Library is empty.
type LibrarySource struct {
	Client  *Client
	Library string
	Types   []string
}

func (s *LibrarySource) Name() string {
	if s.Library == "" {
		return "All libraries"
	}
	return s.Library
}

func (s *LibrarySource) Items(ctx context.Context) ([]MediaItem, error) {
	parentID := ""
	if s.Library != "" {
		view, err := s.Client.FindView(ctx, s.Library)
		if err != nil {
			return nil, err
		}
		parentID = view.ID
	}
	types := s.Types
	if len(types) == 0 {
		types = browsableTypes
	}
	items, err := s.Client.GetAllItems(ctx, parentID, types)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Name(), err)
	}
	return items, nil
}

var demoNames = []string{
	"Adam", "Adrian", "Rafał", "Halina", "Burger", "Celina", "Dawid", "Eryk", "Ludwik",
	"Frank", "Zorro", "Zbigniew", "Garfield", "Óscar", "Ignacy", "Jadwiga", "Kacper",
	"Marta", "Norbert", "Olga", "Patryk", "Stefan", "Tadeusz", "Wanda", "Żaneta", "1984",
}

// demoRepeat pads the demo list out to something worth scrubbing through.
const demoRepeat = 5

// StaticSource serves a fixed list of names. It is used when no server is
// configured so the index bar can be tried offline.
type StaticSource struct {
	Names []string
}

func (s StaticSource) Name() string { return "Demo" }

func (s StaticSource) Items(ctx context.Context) ([]MediaItem, error) {
	names := s.Names
	repeat := 1
	if names == nil {
		names = demoNames
		repeat = demoRepeat
	}
	items := make([]MediaItem, 0, len(names)*repeat)
	for r := 0; r < repeat; r++ {
		for i, n := range names {
			items = append(items, MediaItem{
				ID:   fmt.Sprintf("demo-%d-%d", r, i),
				Name: n,
				Type: "Demo",
			})
		}
	}
	return items, ctx.Err()
}
