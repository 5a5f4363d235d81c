package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	commandFailed(ctx context.Context, cmd string, err error)
	afterCommand(ctx context.Context)

	Home(ctx context.Context) error
	Start(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Avatar(ctx context.Context) error
	Post(ctx context.Context) error
	Follow(ctx context.Context) error
	Unfollow(ctx context.Context) error
	DarkMode(ctx context.Context) error
	DeleteProfile(ctx context.Context) error
	Goals(ctx context.Context) error
	AddGoal(ctx context.Context) error
	Progress(ctx context.Context) error
	RemoveGoal(ctx context.Context) error
	Menu(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Light Lens CLI.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help            show available commands
//	  - home | start    landing page, get started
//	  - register        create an account
//	  - login           authenticate
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - profile         show the profile
//	  - edit            edit profile fields, optionally with a new picture
//	  - avatar          upload a profile picture
//	  - post            upload a post image
//	  - follow          follow the profile
//	  - unfollow        stop following it
//	  - darkmode        toggle dark mode
//	  - delete          delete the account
//	  - goals           list goals
//	  - addgoal         add a goal
//	  - progress        set a goal's progress
//	  - rmgoal          delete a goal
//	  - menu            show the sidebar
//	  - logout          log out
//
// Command prompts read from the same reader, so a command and its answers
// can be piped in together. Errors from handlers go to commandFailed;
// notifications are printed by afterCommand.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("lightlens%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var handler func(context.Context) error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, edit, avatar, post, follow, unfollow, darkmode, delete, goals, addgoal, progress, rmgoal, menu, home, logout, exit")
			} else {
				printlnFn("Available commands: home, start, register, login, exit")
			}
			continue
		case "home":
			handler = a.Home
		case "start":
			handler = a.Start
		case "register":
			handler = a.Register
		case "login":
			handler = a.Login
		case "profile":
			handler = a.Profile
		case "edit":
			handler = a.Edit
		case "avatar":
			handler = a.Avatar
		case "post":
			handler = a.Post
		case "follow":
			handler = a.Follow
		case "unfollow":
			handler = a.Unfollow
		case "darkmode":
			handler = a.DarkMode
		case "delete":
			handler = a.DeleteProfile
		case "goals":
			handler = a.Goals
		case "addgoal":
			handler = a.AddGoal
		case "progress":
			handler = a.Progress
		case "rmgoal":
			handler = a.RemoveGoal
		case "menu", "sidebar":
			handler = a.Menu
		case "logout":
			handler = a.Logout
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := handler(ctx); err != nil {
			a.commandFailed(ctx, cmd, err)
		}
		a.afterCommand(ctx)
	}
}
