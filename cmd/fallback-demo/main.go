// Command fallback-demo exercises AI fallback-value synthesis against a
// live completion backend. It needs AIFALLBACK_API_KEY set, directly or via
// a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/martinemde/aifallback/fallback"
	"github.com/martinemde/aifallback/llmclient"
)

// User is a user profile as the demo's pretend database stores it.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product is a catalog entry with pricing.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var fetchUserCapture = fallback.Describe(
	"fetchUser",
	"func fetchUser(id int) (User, error)",
	"fetchUser looks up a user profile by ID in the user database. It returns the stored profile with the user's full name and contact email.",
	`func fetchUser(id int) (User, error) {
	return User{}, fmt.Errorf("user with id %d not found in database", id)
}`,
)

func fetchUser(id int) (User, error) {
	return User{}, fmt.Errorf("user with id %d not found in database", id)
}

var lookupProductCapture = fallback.Describe(
	"lookupProduct",
	"func lookupProduct(id int) fallback.Option[Product]",
	"lookupProduct searches the product catalog by ID. The price is in USD.",
	`func lookupProduct(id int) fallback.Option[Product] {
	return fallback.None[Product]()
}`,
)

func lookupProduct(id int) fallback.Option[Product] {
	return fallback.None[Product]()
}

func main() {
	model := flag.String("model", "", "Model ID for recovery requests (default: first structured-output model in the catalog)")
	abortOnFailure := flag.Bool("abort-on-failure", false, "Abort instead of propagating the original failure when recovery fails")
	isDebug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// .env is optional; real environment wins.
	_ = godotenv.Load()

	slogLevel := slog.LevelInfo
	if *isDebug {
		slogLevel = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)

	client, err := llmclient.NewClientFromEnv(
		llmclient.WithLogger(logger),
		llmclient.WithClientMiddleware(llmclient.LoggingMiddleware(logger)),
	)
	if err != nil {
		slog.Error("Failed to configure backend client", "error", err)
		os.Exit(1)
	}

	opts := []fallback.ResolverOption{fallback.WithLogger(logger)}
	if *model != "" {
		opts = append(opts, fallback.WithModel(*model))
	}
	if *abortOnFailure {
		opts = append(opts, fallback.WithPolicy(fallback.PolicyFail))
	}
	resolver := fallback.NewResolver(client, opts...)

	ctx := context.Background()

	// Failing database lookup, error-result shape.
	user, err := fallback.Do(ctx, resolver, fetchUserCapture, func() (User, error) {
		return fetchUser(42)
	}, 42)
	if err != nil {
		slog.Error("User lookup failed and could not be recovered", "error", err)
	} else {
		fmt.Printf("User: #%d %s <%s>\n", user.ID, user.Name, user.Email)
	}

	// Missing catalog entry, absent-option shape.
	product, err := fallback.DoOption(ctx, resolver, lookupProductCapture, func() fallback.Option[Product] {
		return lookupProduct(123)
	}, 123)
	if err != nil {
		slog.Error("Product lookup failed and could not be recovered", "error", err)
	} else if p, ok := product.Get(); ok {
		fmt.Printf("Product: #%d %s ($%.2f)\n", p.ID, p.Name, p.Price)
	} else {
		fmt.Println("Product: not found")
	}
}
