package services

import (
	"sort"

	"github.com/aivantu/aivantu/internal/client/models"
)

// sortNewestFirst orders videos by creation time, then by id, newest first.
// Videos without a parseable timestamp go last.
func sortNewestFirst(videos []models.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		ti, okI := videos[i].CreatedTime()
		tj, okJ := videos[j].CreatedTime()
		switch {
		case okI && okJ && !ti.Equal(tj):
			return ti.After(tj)
		case okI != okJ:
			return okI
		default:
			return videos[i].ID > videos[j].ID
		}
	})
}
