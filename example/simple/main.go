// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/z5labs/candor/config"
	"github.com/z5labs/candor/option"
	"github.com/z5labs/candor/result"
	"github.com/z5labs/candor/retry"
)

var users = map[string]string{
	"u-1": "Ada",
}

func lookupUser(id string) option.Option[string] {
	name, ok := users[id]
	return option.FromOK(name, ok, option.In("example.users"))
}

func pingUpstream(ctx context.Context) (string, error) {
	if rand.Intn(3) > 0 {
		return "", errors.New("connection refused")
	}
	return "pong", nil
}

func main() {
	res := config.Configure(map[string]any{
		"level":          "DEBUG",
		"capture_locals": true,
	})
	if res.IsErr() {
		panic(res.UnwrapErr())
	}

	// The hit resolves quietly, the miss reports itself before
	// UnwrapOr hands back the fallback.
	fmt.Println(lookupUser("u-1").UnwrapOr("unknown"))
	fmt.Println(lookupUser("u-404").UnwrapOr("unknown"))

	greeting := result.Map(
		result.FromOption(lookupUser("u-1"), nil),
		func(name string) string { return "hello, " + name },
	)
	fmt.Println(greeting.UnwrapOr("hello, stranger"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong := retry.Func(ctx, retry.Policy{
		MaxAttempts:  4,
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2,
		LogAttempts:  true,
	}, pingUpstream)
	fmt.Println(pong.UnwrapOr("no pong"))
}
