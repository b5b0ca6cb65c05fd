// Command huffcalc computes a Huffman code for a table of weighted symbols.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/huffcalc"
	"github.com/chronos-tachyon/huffcalc/internal/table"
)

const usageStr = `Usage: huffcalc [OPTION]... FILE
Compute a Huffman code for the symbols and weights in the CSV file FILE.

FILE must start with the header "symbol,weight" and contain one row per
symbol.  The output is a CSV table with the header "symbol,weight,codeword".

  -o, --output=FILE  write the table to FILE instead of standard output
  -s, --stats        log code statistics
  -d, --dump         print the code tree to standard error
  -V, --verify       check that every codeword decodes to its symbol
  -v, --verbose      verbose mode
  -q, --quiet        suppress everything but errors
  -h, --help         give this help
`

var log = logging.MustGetLogger("huffcalc")

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func startLogging(w io.Writer, cmdName string) logging.LeveledBackend {
	backend := logging.NewLogBackend(w, cmdName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	return leveled
}

type options struct {
	input   string
	output  string
	stats   bool
	dump    bool
	verify  bool
	verbose bool
	quiet   bool
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cmdName := filepath.Base(args[0])
	leveled := startLogging(stderr, cmdName)

	var opts options
	var help bool
	fs := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	fs.SetInterspersed(true)
	fs.StringVarP(&opts.output, "output", "o", "", "")
	fs.BoolVarP(&opts.stats, "stats", "s", false, "")
	fs.BoolVarP(&opts.dump, "dump", "d", false, "")
	fs.BoolVarP(&opts.verify, "verify", "V", false, "")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "")
	fs.BoolVarP(&help, "help", "h", false, "")

	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}
	if help {
		usage(stdout)
		return 0
	}
	switch {
	case opts.verbose:
		leveled.SetLevel(logging.DEBUG, "")
	case opts.quiet:
		leveled.SetLevel(logging.ERROR, "")
	}
	if fs.NArg() != 1 {
		log.Errorf("expected exactly one input FILE; for help, type %s -h", cmdName)
		return 1
	}
	opts.input = fs.Arg(0)

	if err := compute(opts, stdout, stderr); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

// compute produces the whole output table in memory before writing any of
// it, so that a failure leaves no partial output behind.
func compute(opts options, stdout io.Writer, stderr io.Writer) error {
	f, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	alphabet, err := table.ReadAlphabet(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}

	tree, err := huffman.Build(alphabet)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}
	log.Debugf("%v", tree)

	if opts.verify {
		if err := huffman.Verify(tree); err != nil {
			return err
		}
		log.Infof("verified %d codewords", tree.Len())
	}
	if opts.stats {
		stats := tree.Stats()
		log.Infof("symbols: %d, total weight: %d", stats.Symbols, stats.TotalWeight)
		log.Infof("codeword lengths: %d .. %d bits", stats.MinLength, stats.MaxLength)
		log.Infof("average length: %.4f bits (entropy %.4f bits)", stats.AverageLength, stats.Entropy)
	}
	if opts.dump {
		pretty.Fprintf(stderr, "%# v\n", tree.Outline())
	}

	rows, err := table.Rows(alphabet, tree)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := table.Write(&buf, rows); err != nil {
		return err
	}

	if opts.output == "" {
		_, err = buf.WriteTo(stdout)
		return err
	}
	return os.WriteFile(opts.output, buf.Bytes(), 0o666)
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
