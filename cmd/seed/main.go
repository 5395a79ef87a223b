// Command seed creates users and groups for local development and prints a
// bearer token for every user it touches.
//
// Usage: seed -users leo,rodion -group cats:Cats -admin leo
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	grouprepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/group"
	userrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yatube-backend/internal/app"
	"github.com/heartmarshall/yatube-backend/internal/auth"
	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

func main() {
	_ = godotenv.Load()

	usersFlag := flag.String("users", "", "comma-separated usernames to create")
	groupFlag := flag.String("group", "", "group to create as slug:Title")
	adminFlag := flag.String("admin", "", "username whose token carries the admin role")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *groupFlag != "" {
		slug, title, ok := strings.Cut(*groupFlag, ":")
		if !ok || slug == "" || title == "" {
			logger.Error("group must be slug:Title", slog.String("group", *groupFlag))
			os.Exit(1)
		}
		g, err := grouprepo.New(pool).Create(ctx, domain.Group{Slug: slug, Title: title})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			logger.Info("group exists", slog.String("slug", slug))
		case err != nil:
			logger.Error("create group", slog.String("slug", slug), slog.String("error", err.Error()))
			os.Exit(1)
		default:
			logger.Info("group created", slog.String("slug", g.Slug), slog.Int64("id", g.ID))
		}
	}

	users := userrepo.New(pool)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	for _, name := range strings.Split(*usersFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		u, err := ensureUser(ctx, users, name)
		if err != nil {
			logger.Error("seed user", slog.String("username", name), slog.String("error", err.Error()))
			os.Exit(1)
		}

		role := ""
		if name == *adminFlag {
			role = ctxutil.RoleAdmin
		}
		token, err := tokens.GenerateAccessToken(u.ID, role)
		if err != nil {
			logger.Error("issue token", slog.String("username", name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\n", u.Username, token)
	}
}

func ensureUser(ctx context.Context, users *userrepo.Repo, username string) (*domain.User, error) {
	u, err := users.Create(ctx, domain.User{Username: username})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return users.GetByUsername(ctx, username)
	}
	return u, err
}
