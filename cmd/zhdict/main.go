// Command zhdict looks up Chinese words in Baidu Hanyu, adds an English gloss
// from MDBG or DeepL, and prints the result as text or tab-separated rows.
//
// Usage:
//
//	zhdict lookup 挑 情怀
//	zhdict batch --input words.txt --output results.tsv --format tsv
//	zhdict version
//
// Exit codes: 0 = success, 1 = error or at least one failed lookup.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
