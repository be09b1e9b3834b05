package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/aivantu/aivantu/internal/client/models"
)

func (a *App) Health(ctx context.Context, _ []string) error {
	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Server is online")
	return nil
}

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	sum, err := a.dashboardService.Summary(ctx, a.authService.Email(ctx))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s), plan %s\n", sum.Profile.Name, sum.Profile.Email, sum.Profile.Plan)
	fmt.Fprintf(a.out, "Total videos: %d\n", sum.TotalVideos)
	if len(sum.Recent) > 0 {
		fmt.Fprintln(a.out, "Recent:")
		a.printVideos(sum.Recent)
	}
	return nil
}

// refreshArg drops cached catalogue lists when the command got -r.
func (a *App) refreshArg(args []string) {
	for _, arg := range args {
		if arg == "-r" || arg == "--refresh" {
			a.catalogService.Refresh()
			return
		}
	}
}

func (a *App) Templates(ctx context.Context, args []string) error {
	a.refreshArg(args)
	items, fallback := a.catalogService.Templates(ctx)
	a.fallbackNotice(fallback)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tCATEGORY")
	for i, t := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, t.Name, t.Category)
	}
	return tw.Flush()
}

func (a *App) Voices(ctx context.Context, args []string) error {
	a.refreshArg(args)
	items, fallback := a.catalogService.Voices(ctx)
	a.fallbackNotice(fallback)

	for i, v := range items {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, v.Label())
	}
	return nil
}

func (a *App) Plans(_ context.Context, _ []string) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PLAN\tPRICE (%s)\tINCLUDES\n", a.config.Currency)
	for _, p := range a.catalogService.Plans() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", p.Name, p.Price, p.Features)
	}
	return tw.Flush()
}

func (a *App) fallbackNotice(fallback bool) {
	if fallback {
		fmt.Fprintln(a.out, "(server list unavailable, showing built-in list)")
	}
}

func (a *App) Gallery(ctx context.Context, _ []string) error {
	videos, err := a.videoService.Gallery(ctx)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Fprintln(a.out, "No videos yet. Use create to make one.")
		return nil
	}
	a.printVideos(videos)
	return nil
}

func (a *App) Outputs(ctx context.Context, _ []string) error {
	videos, err := a.videoService.Outputs(ctx)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Fprintln(a.out, "No rendered files on the server.")
		return nil
	}
	for _, v := range videos {
		fmt.Fprintf(a.out, "%s  %s\n", v.Title, v.URL())
	}
	return nil
}

func (a *App) printVideos(videos []models.Video) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tCREATED\tLINK")
	for _, v := range videos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.Title, v.Status, v.CreatedAt, v.URL())
	}
	_ = tw.Flush()
}

func (a *App) History(ctx context.Context, _ []string) error {
	items, err := a.videoService.History(ctx, 20)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No videos created from this machine yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RENDER\tVIDEO\tTITLE\tSTATUS\tLOCAL FILE\tARCHIVE")
	for _, r := range items {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", r.ID, r.VideoID, r.Title, r.Status, dash(r.LocalPath), dash(r.ArchiveKey))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
