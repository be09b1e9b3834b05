package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	Health(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	Templates(ctx context.Context, args []string) error
	Voices(ctx context.Context, args []string) error
	Plans(ctx context.Context, args []string) error
	Gallery(ctx context.Context, args []string) error
	Outputs(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Split(ctx context.Context, args []string) error
	Create(ctx context.Context, args []string) error
	Assistant(ctx context.Context, args []string) error
	Preview(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Archive(ctx context.Context, args []string) error
	Pay(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  login [email]              sign in with an email, or paste an ID token
  logout                     sign out
  whoami                     show who requests are made for
  health                     check the server
  dashboard                  profile, video count and recent videos
  templates | voices [-r]    list what can be picked (-r refetches)
  plans                      list credit plans
  gallery                    your videos
  outputs                    every rendered file on the server
  profile                    show your profile
  editprofile                change name, country or photo
  upload <kind> <path>       upload an image, audio or video file
  split <n>                  preview how a script is shared by n characters
  create                     make a new video
  assistant <question>       ask for script ideas
  preview [text]             hear a voice sample
  download <video id|url>    save a video to the download folder
  history                    videos created from this machine
  archive <render id>        copy a downloaded video to object storage
  pay <razorpay|paypal> <plan>
  exit | quit`

// runREPL reads commands from reader until EOF, exit or quit. The first
// word picks the command and the rest are its arguments. A failing command
// prints one "Error: ..." line and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("aivantu %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var handler func(context.Context, []string) error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "login":
			handler = a.Login
		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not signed in")
				break
			}
			handler = a.Logout
		case "whoami":
			handler = a.WhoAmI
		case "health":
			handler = a.Health
		case "dashboard":
			handler = a.Dashboard
		case "templates":
			handler = a.Templates
		case "voices":
			handler = a.Voices
		case "plans":
			handler = a.Plans
		case "gallery":
			handler = a.Gallery
		case "outputs":
			handler = a.Outputs
		case "profile":
			handler = a.Profile
		case "editprofile":
			handler = a.EditProfile
		case "upload":
			handler = a.Upload
		case "split":
			handler = a.Split
		case "create":
			handler = a.Create
		case "assistant":
			handler = a.Assistant
		case "preview":
			handler = a.Preview
		case "download":
			handler = a.Download
		case "history":
			handler = a.History
		case "archive":
			handler = a.Archive
		case "pay":
			handler = a.Pay
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if handler != nil {
			if err := handler(ctx, args); err != nil {
				printlnFn("Error: " + errorSummary(err))
			}
		}

		if err != nil {
			return
		}
	}
}
