package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/client/services"
	"github.com/aivantu/aivantu/internal/common"
)

func (a *App) Assistant(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = GetSimpleText(a.reader, "What should the video be about?", a.out); err != nil {
			return err
		}
	}

	reply, err := a.assistantService.Ask(ctx, query, "")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, reply.Reply)
	if reply.AudioURL != "" {
		fmt.Fprintf(a.out, "Listen: %s\n", reply.AudioURL)
	}
	return nil
}

func (a *App) Preview(ctx context.Context, args []string) error {
	p, err := a.voiceService.Preview(ctx, strings.Join(args, " "), "")
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Voice sample: %s\n", p.AudioURL)
	return nil
}

// Download saves a video given by gallery id, or a direct link.
func (a *App) Download(ctx context.Context, args []string) error {
	target := ""
	if len(args) > 0 {
		target = args[0]
	} else {
		var err error
		if target, err = GetSimpleText(a.reader, "Video id or link", a.out); err != nil {
			return err
		}
	}
	if target == "" {
		return fmt.Errorf("%w: nothing to download", common.ErrorInvalidInput)
	}

	rawURL, videoID := target, int64(0)
	if id, err := strconv.ParseInt(target, 10, 64); err == nil {
		if rawURL, err = a.resolveVideoURL(ctx, id); err != nil {
			return err
		}
		videoID = id
	}

	d, err := a.videoService.Download(ctx, rawURL, videoID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes, blake2b %s)\n", d.Path, d.Bytes, d.Checksum)
	return nil
}

// resolveVideoURL finds the link of video id in the gallery, then in local
// history.
func (a *App) resolveVideoURL(ctx context.Context, id int64) (string, error) {
	videos, err := a.videoService.Gallery(ctx)
	if err == nil {
		for _, v := range videos {
			if v.ID == id && v.URL() != "" {
				return v.URL(), nil
			}
		}
	}

	history, herr := a.videoService.History(ctx, 0)
	if herr == nil {
		for _, r := range history {
			if r.VideoID == id && r.DownloadURL != "" {
				return r.DownloadURL, nil
			}
		}
	}

	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("video %d: %w", id, common.ErrorNotFound)
}

// Archive copies a downloaded render to object storage. Without an argument
// the most recent downloaded render is used.
func (a *App) Archive(ctx context.Context, args []string) error {
	if !a.archiveService.Enabled() {
		return services.ErrArchiveDisabled
	}

	renderID := ""
	if len(args) > 0 {
		renderID = args[0]
	} else {
		history, err := a.videoService.History(ctx, 0)
		if err != nil {
			return err
		}
		for _, r := range history {
			if r.Downloaded() {
				renderID = r.ID
				break
			}
		}
		if renderID == "" {
			return fmt.Errorf("%w: download a video first", services.ErrNotDownloaded)
		}
	}

	key, err := a.archiveService.Archive(ctx, renderID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Archived render %s as %s\n", renderID, key)
	return nil
}

func (a *App) Pay(ctx context.Context, args []string) error {
	var providerArg, plan string
	if len(args) > 0 {
		providerArg = args[0]
	}
	if len(args) > 1 {
		plan = args[1]
	}

	var err error
	if providerArg == "" {
		if providerArg, err = GetChoice(a.reader, "Pay with", a.out, []string{string(models.ProviderRazorpay), string(models.ProviderPaypal)}, string(models.ProviderRazorpay)); err != nil {
			return err
		}
	}
	provider, err := models.ParseProvider(providerArg)
	if err != nil {
		return err
	}

	if plan == "" {
		var names []string
		for _, p := range a.catalogService.Plans() {
			if !p.IsFree() {
				names = append(names, p.Name)
			}
		}
		if plan, err = GetChoice(a.reader, "Plan", a.out, names, names[0]); err != nil {
			return err
		}
	}

	order, err := a.paymentService.CreateOrder(ctx, provider, plan)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order %s created with %s\n", order.OrderID, provider)
	if order.Amount > 0 {
		fmt.Fprintf(a.out, "  amount: %.2f %s\n", order.Amount, order.Currency)
	}
	if order.ApproveURL != "" {
		fmt.Fprintf(a.out, "  approve the payment at %s\n", order.ApproveURL)
	}
	if order.Key != "" {
		fmt.Fprintf(a.out, "  checkout key: %s\n", order.Key)
	}
	return nil
}
