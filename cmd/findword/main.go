// Command findword is an Alfred Script Filter that finds words by meaning.
//
//	findword [--literary] description...
//
// Invoked through a name containing "lit" (for example a findword-lit
// symlink) it always runs in literary mode. It prints one Script Filter
// JSON document to stdout and exits 0 even when the lookup fails; failures
// are shown as result rows.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minhyannv/findword/pkg/alfred"
	"github.com/minhyannv/findword/pkg/finder"
	loggerpkg "github.com/minhyannv/findword/pkg/logger"
)

const (
	exitOK          = 0
	exitWriteFailed = 1
)

// main is the program entry point.
func main() {
	inv := finder.ParseInvocation(os.Args[0], os.Args[1:])
	os.Exit(run(context.Background(), inv, os.Stdout, os.Stderr))
}

// run executes one invocation and writes the document to stdout. Only a
// failure to write stdout itself yields a non-zero status.
func run(ctx context.Context, inv finder.Invocation, stdout, stderr io.Writer, opts ...finder.Option) int {
	appLogger := loggerpkg.NewWriterLogger(stderr, "findword")

	var out alfred.Output
	cfg, err := loadCLIConfig()
	if err != nil {
		loggerpkg.Error(appLogger, "load config", loggerpkg.Fields{"error": err.Error()})
		out = finder.Failure(err)
	} else {
		opts = append([]finder.Option{finder.WithLogger(appLogger)}, opts...)
		out = finder.New(cfg, opts...).Run(ctx, inv)
	}

	if err := alfred.Write(stdout, out); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitWriteFailed
	}
	return exitOK
}
