package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/client/services"
	"github.com/aivantu/aivantu/internal/common"
)

// Login signs in with the email given as argument or typed at the prompt.
// A blank answer asks for an ID token instead, read without echo.
func (a *App) Login(ctx context.Context, args []string) error {
	var answer string
	if len(args) > 0 {
		answer = args[0]
	} else {
		var err error
		answer, err = GetSimpleText(a.reader, "Email (leave blank to paste an ID token)", a.out)
		if err != nil {
			return err
		}
	}

	var s *services.Session
	var err error
	switch {
	case answer == "":
		token, terr := GetSecret("ID token", a.out)
		if terr != nil {
			return terr
		}
		s, err = a.authService.SignInWithIDToken(ctx, string(token))
		common.WipeByteArray(token)
	case looksLikeJWT(answer):
		s, err = a.authService.SignInWithIDToken(ctx, answer)
	default:
		s, err = a.authService.SignInWithEmail(ctx, answer, "")
	}
	if err != nil {
		return err
	}

	a.setSession(s)
	fmt.Fprintf(a.out, "Signed in as %s\n", s.Email)
	return nil
}

func looksLikeJWT(s string) bool {
	return !strings.Contains(s, "@") && strings.Count(s, ".") == 2
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.SignOut(ctx); err != nil {
		return err
	}
	a.setSession(nil)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	s := a.currentSession()
	if s == nil {
		fmt.Fprintf(a.out, "Not signed in; requests are made for %s\n", a.authService.Email(ctx))
		return nil
	}

	line := s.Email
	if s.Name != "" {
		line = fmt.Sprintf("%s <%s>", s.Name, s.Email)
	}
	if !s.ExpiresAt.IsZero() {
		line += fmt.Sprintf(", ID token valid until %s", s.ExpiresAt.Local().Format(time.DateTime))
	}
	fmt.Fprintln(a.out, line)
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	p, err := a.profileService.Get(ctx)
	if err != nil {
		return err
	}
	a.printProfile(*p)
	return nil
}

// EditProfile asks for each field; a blank answer keeps the current value.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	current, err := a.profileService.Get(ctx)
	if err != nil {
		return err
	}

	var update models.Profile
	prompts := []struct {
		label string
		cur   string
		dst   *string
	}{
		{"Name", current.Name, &update.Name},
		{"Country", current.Country, &update.Country},
		{"Photo URL", current.Photo, &update.Photo},
	}
	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("%s (blank keeps %q)", p.label, p.cur), a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	saved, err := a.profileService.Save(ctx, update)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile saved")
	a.printProfile(*saved)
	return nil
}

func (a *App) printProfile(p models.Profile) {
	fmt.Fprintf(a.out, "Email:   %s\n", p.Email)
	fmt.Fprintf(a.out, "Name:    %s\n", p.Name)
	fmt.Fprintf(a.out, "Country: %s\n", p.Country)
	fmt.Fprintf(a.out, "Photo:   %s\n", p.Photo)
	fmt.Fprintf(a.out, "Plan:    %s\n", p.Plan)
}
