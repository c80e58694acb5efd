package jellyfin

import (
	"context"
	"fmt"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// pageSize is the number of items requested per GetItems call.
const pageSize = 200

// browsableTypes are the item kinds listed when no type filter is given.
var browsableTypes = []string{"Movie", "Series", "MusicAlbum", "BoxSet"}

// MediaItem is a simplified representation of a Jellyfin item.
type MediaItem struct {
	ID       string
	Name     string
	SortName string
	Type     string // Movie, Series, CollectionFolder, etc.
	Year     int
}

// GetViews returns the user's media libraries (Movies, TV Shows, Music, etc.)
func (c *Client) GetViews(ctx context.Context) ([]MediaItem, error) {
	result, _, err := c.api.UserViewsAPI.GetUserViews(ctx).UserId(c.userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("get views: %w", err)
	}
	return convertItems(result.Items), nil
}

// FindView returns the library whose name matches name, ignoring case.
func (c *Client) FindView(ctx context.Context, name string) (MediaItem, error) {
	views, err := c.GetViews(ctx)
	if err != nil {
		return MediaItem{}, err
	}
	for _, v := range views {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return MediaItem{}, fmt.Errorf("library %q not found", name)
}

// GetItems returns one page of items sorted by SortName, plus the total count.
func (c *Client) GetItems(ctx context.Context, parentID string, start, limit int, itemTypes []string) ([]MediaItem, int, error) {
	req := c.api.ItemsAPI.GetItems(ctx).
		UserId(c.userID).
		StartIndex(int32(start)).
		Limit(int32(limit)).
		Fields([]jellyfin.ItemFields{jellyfin.ITEMFIELDS_SORT_NAME}).
		Recursive(true).
		SortBy([]jellyfin.ItemSortBy{jellyfin.ITEMSORTBY_SORT_NAME}).
		SortOrder([]jellyfin.SortOrder{jellyfin.SORTORDER_ASCENDING})
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	if len(itemTypes) > 0 {
		baseTypes := make([]jellyfin.BaseItemKind, len(itemTypes))
		for i, t := range itemTypes {
			baseTypes[i] = jellyfin.BaseItemKind(t)
		}
		req = req.IncludeItemTypes(baseTypes)
	}
	result, _, err := req.Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("get items: %w", err)
	}
	total := 0
	if result.TotalRecordCount != nil {
		total = int(*result.TotalRecordCount)
	}
	return convertItems(result.Items), total, nil
}

// GetAllItems pages through a library until every item is loaded or ctx is
// cancelled.
func (c *Client) GetAllItems(ctx context.Context, parentID string, itemTypes []string) ([]MediaItem, error) {
	var all []MediaItem
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, total, err := c.GetItems(ctx, parentID, len(all), pageSize, itemTypes)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for i := range items {
		result = append(result, convertBaseItemDto(&items[i]))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{}
	if item.Id != nil {
		mi.ID = *item.Id
	}
	mi.Name = item.GetName()
	mi.SortName = item.GetSortName()
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	mi.Year = int(item.GetProductionYear())
	return mi
}
