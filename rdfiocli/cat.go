package rdfiocli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdfio/rdfio"
)

func newCatCmd() *cobra.Command {
	var fromFlag, toFlag, outFlag string
	var blankPrefix string

	cmd := &cobra.Command{
		Use:   "cat [file ...]",
		Short: "Parse RDF input and re-serialize it, optionally changing syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseSyntax(fromFlag)
			if err != nil {
				return err
			}
			to, err := parseSyntax(toFlag)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outFlag != "" {
				f, err := os.Create(outFlag)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if len(args) == 0 {
				args = []string{"-"}
			}

			world := rdfio.NewWorld()
			exitCode := 0
			world.SetErrorSink(nil, func(_ any, status rdfio.Status, cursor *rdfio.Cursor, format string, fmtArgs ...any) {
				logger.Error(fmt.Sprintf(format, fmtArgs...), "status", status.String(), "at", cursor.String())
				exitCode = 1
			})

			writer := rdfio.NewWriter(out, to)
			env := rdfio.NewEnvironment()

			for _, path := range args {
				if err := catOne(world, from, env, writer, blankPrefix, path); err != nil {
					logger.Error("read failed", "file", path, "err", err)
					exitCode = 1
				}
			}
			if exitCode != 0 {
				return fmt.Errorf("completed with errors")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "turtle", "input syntax: ntriples, turtle, trig, nquads")
	cmd.Flags().StringVar(&toFlag, "to", "ntriples", "output syntax: ntriples, turtle, trig, nquads")
	cmd.Flags().StringVar(&outFlag, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&blankPrefix, "strip-blank-prefix", "", "strip this prefix from blank node labels read from input")
	return cmd
}

func catOne(world *rdfio.World, from rdfio.Syntax, env *rdfio.Environment, writer *rdfio.Writer, blankPrefix, path string) error {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	src := rdfio.ByteSourceFromReader(f, 4096)
	reader := rdfio.NewReader(world, from, env, writer.Sink())
	if blankPrefix != "" {
		reader.AddBlankPrefix(blankPrefix)
	}

	sourceName := rdfio.NewURI("file://" + path)
	if path == "-" {
		sourceName = rdfio.NewString("<stdin>")
	}

	logger.Debug("parsing", "file", path, "syntax", from.String())
	status := reader.ReadDocument(src, sourceName)
	if status != rdfio.Success {
		if err := reader.LastError(); err != nil {
			return err
		}
		return fmt.Errorf("%s", status.String())
	}
	return nil
}

func parseSyntax(s string) (rdfio.Syntax, error) {
	switch s {
	case "ntriples", "nt":
		return rdfio.NTriples, nil
	case "turtle", "ttl":
		return rdfio.Turtle, nil
	case "trig":
		return rdfio.TriG, nil
	case "nquads", "nq":
		return rdfio.NQuads, nil
	default:
		return 0, fmt.Errorf("unknown syntax %q", s)
	}
}
