package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/client/services"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/filex"
)

// Create walks through a new video: title, script, template, options,
// characters and their voices. The script split is shown before the
// request is sent. Rendering is synchronous and can take minutes.
func (a *App) Create(ctx context.Context, _ []string) error {
	var req models.GenerateRequest
	var err error

	if req.Title, err = GetSimpleText(a.reader, "Title (blank for a generated one)", a.out); err != nil {
		return err
	}
	if req.Script, err = GetMultiline(a.reader, "Script, one line per sentence or [C1]: / [C2]: markers", a.out); err != nil {
		return err
	}

	templates, fallback := a.catalogService.Templates(ctx)
	a.fallbackNotice(fallback)
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	if req.Template, err = GetChoice(a.reader, "Template", a.out, names, names[0]); err != nil {
		return err
	}

	if req.Quality, err = GetChoice(a.reader, "Quality", a.out, models.Qualities, models.DefaultQuality); err != nil {
		return err
	}
	if req.LengthType, err = GetChoice(a.reader, "Length", a.out, models.LengthTypes, models.DefaultLengthType); err != nil {
		return err
	}
	if req.Lang, err = GetChoice(a.reader, "Language", a.out, models.Languages, a.config.Lang); err != nil {
		return err
	}

	if req.Characters, err = GetList(a.reader, "Character images, comma separated (blank for none)", a.out); err != nil {
		return err
	}
	if n := len(req.Characters); n > 0 {
		if err := a.pickVoices(ctx, &req); err != nil {
			return err
		}
		if req.CharacterVoiceFiles, err = GetList(a.reader, "Recorded voice files per character, comma separated (blank for none)", a.out); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "The script will be spoken as:")
		a.printSplit(req.Script, n)
	}

	if req.BgMusic, err = GetSimpleText(a.reader, "Background music name (blank for none)", a.out); err != nil {
		return err
	}
	if req.BgMusicFile, err = GetSimpleText(a.reader, "Background music file (blank for none)", a.out); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Rendering, this can take a few minutes...")
	rec, err := a.videoService.Generate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Video ready: %s\n", rec.Title)
	fmt.Fprintf(a.out, "  video id:  %d\n", rec.VideoID)
	fmt.Fprintf(a.out, "  render id: %s\n", rec.ID)
	fmt.Fprintf(a.out, "  link:      %s\n", rec.DownloadURL)
	fmt.Fprintf(a.out, "Use 'download %d' to save it.\n", rec.VideoID)
	return nil
}

func (a *App) pickVoices(ctx context.Context, req *models.GenerateRequest) error {
	voices, fallback := a.catalogService.Voices(ctx)
	a.fallbackNotice(fallback)
	for i, v := range voices {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, v.Label())
	}

	names := make([]string, 0, len(voices))
	for _, v := range voices {
		names = append(names, v.Name)
	}

	picked, err := GetList(a.reader, fmt.Sprintf("Voice per character (%d), comma separated names or numbers", len(req.Characters)), a.out)
	if err != nil {
		return err
	}
	for i, p := range picked {
		if v, ok := matchChoice(names, p); ok {
			picked[i] = v
		}
	}
	req.VoiceTypes = services.PadVoices(picked, len(req.Characters))
	return nil
}

func (a *App) printSplit(script string, n int) {
	for i, part := range services.SplitScript(script, n) {
		if part == "" {
			part = "(silent)"
		}
		fmt.Fprintf(a.out, "  C%d: %s\n", i+1, part)
	}
}

// Split previews how the backend shares a script between n characters.
func (a *App) Split(_ context.Context, args []string) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("%w: character count %q", common.ErrorInvalidInput, args[0])
		}
		n = v
	}

	script, err := GetMultiline(a.reader, "Script", a.out)
	if err != nil {
		return err
	}
	a.printSplit(script, n)
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	var kindArg, path string
	switch len(args) {
	case 0:
	case 1:
		kindArg = args[0]
	default:
		kindArg, path = args[0], args[1]
	}

	var err error
	if kindArg == "" {
		if kindArg, err = GetChoice(a.reader, "Kind", a.out, []string{"image", "audio", "video"}, "image"); err != nil {
			return err
		}
	}
	kind, err := filex.ParseKind(kindArg)
	if err != nil {
		return err
	}
	if path == "" {
		if path, err = GetSimpleText(a.reader, "File path", a.out); err != nil {
			return err
		}
	}

	res, err := a.videoService.Upload(ctx, kind, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded: %s\n", res.URL)
	return nil
}
