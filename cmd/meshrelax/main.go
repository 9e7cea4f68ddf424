// Command meshrelax is a small demonstration CLI over the relaxation
// engine in internal/sim, in the shape of ryx's cmd/ryx-node: stdlib
// flag parsing, a cancellable context wired to SIGINT/SIGTERM, and a
// log line per milestone instead of a structured logging framework
// (the teacher codebase uses none anywhere).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BasicAcid/meshrelax/internal/aggregate"
	"github.com/BasicAcid/meshrelax/internal/config"
	"github.com/BasicAcid/meshrelax/internal/demo"
	"github.com/BasicAcid/meshrelax/internal/monitor"
	"github.com/BasicAcid/meshrelax/internal/sim"
)

func main() {
	q := flag.Int("q", 2, "mesh dimension (q x q worker nodes)")
	m := flag.Int("m", 4, "subgrid interior dimension (must be even)")
	cycles := flag.Int("cycles", 10, "number of output cycles to run before exiting (0 = run until interrupted)")
	stepsPerOutput := flag.Int("steps-per-output", config.DefaultRelaxationStepsPerOutput, "relaxation steps between snapshot emissions")
	pattern := flag.String("pattern", "laplace", "demo transition: laplace, identity, or life")
	httpAddr := flag.String("http", "", "address to serve /status, /frame, /topology on (empty disables the monitor)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutting down...")
		cancel()
	}()

	var err error
	switch *pattern {
	case "life":
		err = runBool(ctx, *q, *m, *cycles, *stepsPerOutput, *httpAddr)
	case "laplace", "identity":
		err = runFloat(ctx, *q, *m, *cycles, *stepsPerOutput, *httpAddr, *pattern)
	default:
		err = fmt.Errorf("unknown pattern %q: want laplace, identity, or life", *pattern)
	}
	if err != nil {
		log.Fatalf("meshrelax: %v", err)
	}
}

func runFloat(ctx context.Context, q, m, cycles, stepsPerOutput int, httpAddr, pattern string) error {
	transition := demo.Laplace()
	if pattern == "identity" {
		transition = demo.Identity[float64]()
	}

	cfg := config.Config[float64]{
		Q: q,
		M: m,
		Initial: config.InitialValues[float64]{
			North: 1, South: 0, East: 0, West: 0, Interior: 0,
		},
		Transition:               transition,
		RelaxationStepsPerOutput: stepsPerOutput,
	}

	frames, err := sim.Run(ctx, cfg)
	if err != nil {
		return err
	}

	var mon *monitor.Server[float64]
	if httpAddr != "" {
		mon = monitor.New[float64](sim.Topology(q))
		if err := mon.Start(httpAddr); err != nil {
			return fmt.Errorf("starting monitor: %w", err)
		}
		defer mon.Shutdown()
		log.Printf("monitor listening on %s", httpAddr)
	}

	return drain(ctx, frames, cycles, func(f aggregate.Frame[float64]) {
		if mon != nil {
			mon.Observe(f.ElapsedMS, f.Grid)
		}
		last := len(f.Grid) - 1
		log.Printf("cycle @ %dms: grid[0][0]=%.4f grid[%d][%d]=%.4f", f.ElapsedMS, f.Grid[0][0], last, last, f.Grid[last][last])
	})
}

func runBool(ctx context.Context, q, m, cycles, stepsPerOutput int, httpAddr string) error {
	cfg := config.Config[bool]{
		Q: q,
		M: m,
		Initial: config.InitialValues[bool]{
			North: false, South: false, East: false, West: false, Interior: false,
		},
		Transition:               demo.VonNeumannLife(),
		RelaxationStepsPerOutput: stepsPerOutput,
	}

	frames, err := sim.Run(ctx, cfg)
	if err != nil {
		return err
	}

	var mon *monitor.Server[bool]
	if httpAddr != "" {
		mon = monitor.New[bool](sim.Topology(q))
		if err := mon.Start(httpAddr); err != nil {
			return fmt.Errorf("starting monitor: %w", err)
		}
		defer mon.Shutdown()
		log.Printf("monitor listening on %s", httpAddr)
	}

	return drain(ctx, frames, cycles, func(f aggregate.Frame[bool]) {
		if mon != nil {
			mon.Observe(f.ElapsedMS, f.Grid)
		}
		live := 0
		for _, row := range f.Grid {
			for _, c := range row {
				if c {
					live++
				}
			}
		}
		log.Printf("cycle @ %dms: live=%d/%d", f.ElapsedMS, live, len(f.Grid)*len(f.Grid))
	})
}

// drain consumes frames until cycles have been observed (0 meaning
// unbounded) or ctx is cancelled, invoking onFrame for each.
func drain[V any](ctx context.Context, frames <-chan aggregate.Frame[V], cycles int, onFrame func(aggregate.Frame[V])) error {
	n := 0
	for {
		select {
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			onFrame(f)
			n++
			if cycles > 0 && n >= cycles {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}
