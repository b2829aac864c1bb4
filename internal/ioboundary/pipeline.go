package ioboundary

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	tomb "gopkg.in/tomb.v2"

	"github.com/saiputravu/icebook/internal/engine"
)

// Pipeline is the per-line dispatch loop of spec §2/§6: parse a line,
// submit it to the engine, emit any trades, then emit the rendered
// snapshot. Matching itself stays strictly single-threaded (spec §5); the
// tomb here supervises exactly one goroutine and exists only to give the
// I/O boundary the same graceful-shutdown-on-signal idiom the teacher
// codebase uses for its TCP server, rather than for any concurrent work.
type Pipeline struct {
	eng *engine.Engine
	in  io.Reader
	out io.Writer
	log zerolog.Logger
}

// NewPipeline constructs a pipeline reading from in and writing trade and
// snapshot output to out.
func NewPipeline(eng *engine.Engine, in io.Reader, out io.Writer, log zerolog.Logger) *Pipeline {
	return &Pipeline{eng: eng, in: in, out: out, log: log}
}

// Run supervises the read loop with a tomb so SIGINT/SIGTERM (wired by the
// caller via ctx) stop it cleanly between lines rather than mid-write.
// Returns the error that should determine the process exit code (§6): nil
// on clean EOF, non-nil on an unrecoverable I/O error.
func (p *Pipeline) Run(ctx context.Context) error {
	t, ctx := tomb.WithContext(ctx)

	t.Go(func() error {
		return p.readLoop(ctx)
	})

	return t.Wait()
}

func (p *Pipeline) readLoop(ctx context.Context) error {
	scanner := bufio.NewScanner(p.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	writer := bufio.NewWriter(p.out)
	defer writer.Flush()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := p.dispatch(writer, scanner.Text()); err != nil {
			if errors.Is(err, ErrIgnorable) {
				continue
			}
			p.log.Error().Err(err).Msg("error processing input line")
			continue
		}
	}

	if err := scanner.Err(); err != nil {
		p.log.Error().Err(err).Msg("error reading input")
		return err
	}
	return writer.Flush()
}

// dispatch handles one accepted line: parse -> submit -> emit trades ->
// emit snapshot (spec §2).
func (p *Pipeline) dispatch(w *bufio.Writer, line string) error {
	order, err := Parse(line)
	if err != nil {
		return err
	}

	trades, err := p.eng.Submit(order)
	if err != nil {
		p.log.Warn().Err(err).Str("line", line).Msg("order not accepted")
		return nil
	}

	for _, trade := range trades {
		if _, err := WriteTrade(w, trade); err != nil {
			return err
		}
	}

	_, err = w.WriteString(Render(p.eng.Bids(), p.eng.Asks()))
	return err
}
