package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"usersvc/internal/clients/userapi"
	"usersvc/internal/logging"
)

const defaultAddr = "http://localhost:8080"

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		usage(os.Stderr)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "userctl:", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: userctl [-addr URL] [-timeout D] <command>

commands:
  list
  get ID
  create NAME EMAIL
  update ID [-name NAME] [-email EMAIL]
  delete ID
`)
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("userctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addr := fs.String("addr", envOr("USERCTL_ADDR", defaultAddr), "users API base URL")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	client, err := userapi.New(*addr, *timeout, logging.NewNop())
	if err != nil {
		return err
	}

	cmd, rest := rest[0], rest[1:]
	switch cmd {
	case "list":
		users, err := client.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, users)

	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		u, err := client.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out, u)

	case "create":
		if len(rest) != 2 {
			return errUsage
		}
		u, err := client.Create(ctx, userapi.CreateUserRequest{Name: rest[0], Email: rest[1]})
		if err != nil {
			return err
		}
		return printJSON(out, u)

	case "update":
		id, err := parseID(rest[:min(1, len(rest))])
		if err != nil {
			return err
		}
		req, err := parseUpdate(rest[1:])
		if err != nil {
			return err
		}
		u, err := client.Update(ctx, id, req)
		if err != nil {
			return err
		}
		return printJSON(out, u)

	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		msg, err := client.Delete(ctx, id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, msg)
		return err

	default:
		return errUsage
	}
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// parseUpdate only sends flags that were set, so -name "" is distinct from no -name.
func parseUpdate(args []string) (userapi.UpdateUserRequest, error) {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "new name")
	email := fs.String("email", "", "new email")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return userapi.UpdateUserRequest{}, errUsage
	}

	var req userapi.UpdateUserRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = name
		case "email":
			req.Email = email
		}
	})
	return req, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
