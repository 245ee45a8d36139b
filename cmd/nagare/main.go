// Command nagare solves or generates Nagareru puzzle boards via the
// frontier-method ZDD construction in packages board, ddspec, and zdd.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nagare-zdd/nagare/board"
	"github.com/nagare-zdd/nagare/ddspec"
	"github.com/nagare-zdd/nagare/generator"
	"github.com/nagare-zdd/nagare/zdd"
)

var errCNFNotImplemented = errors.New("nagare: --cnf export is not implemented")

// cliArgs holds one parsed command line, independent of the flag
// package's process-global state, so dispatch can be tested directly
// against hand-built values.
type cliArgs struct {
	print  bool
	dump   bool
	cnf    bool
	rand   bool
	width  int
	height int
	initN  int
	seed   int64
	file   string
}

func parseArgs(args []string) (*cliArgs, error) {
	fs := flag.NewFlagSet("nagare", flag.ContinueOnError)
	a := &cliArgs{}

	fs.BoolVar(&a.print, "print", false, "print the problem")
	fs.BoolVar(&a.dump, "dump", false, "export dot files for the board, graph, and zdd")
	fs.BoolVar(&a.cnf, "cnf", false, "export the cnf file (not implemented)")
	fs.BoolVar(&a.rand, "rand", false, "create a random instance instead of solving a file")
	fs.IntVar(&a.width, "width", 5, "board width (generation only)")
	fs.IntVar(&a.height, "height", 5, "board height (generation only)")
	fs.IntVar(&a.initN, "init", 0, "number of black cells on the initial board (generation only)")
	fs.Int64Var(&a.seed, "seed", time.Now().UnixNano(), "seed of a random instance (generation only)")
	fs.StringVar(&a.file, "file", "example.txt", "the name of a problem file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a, nil
}

func main() {
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := dispatch(a); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// dispatch runs the subcommand named by a, independent of flag-package
// or os.Args state, so it can be called directly from tests.
func dispatch(a *cliArgs) error {
	if a.cnf {
		return errCNFNotImplemented
	}

	if a.rand {
		return runGenerate(a.file, a.width, a.height, a.initN, a.seed, a.print)
	}

	return runSolve(a.file, a.print, a.dump)
}

func runGenerate(file string, w, h, n int, seed int64, debugPrint bool) error {
	fmt.Println("////////////////////////////////////////")
	fmt.Println("// Random Generation")
	fmt.Println("////////////////////////////////////////")
	fmt.Println("Problem File :", file)
	fmt.Println("Board Width  :", w)
	fmt.Println("Board Height :", h)
	fmt.Println("Init # Cells :", n)
	fmt.Println("Seed         :", seed)

	g := generator.New(seed)

	p, err := g.Generate(context.Background(), w, h, n)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	out, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create %s: %w", file, err)
	}
	defer out.Close()

	if err := p.WritePZPRv3(out); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}

	if debugPrint {
		fmt.Print(p.String())
	}

	fmt.Println("# count call :", g.NumCallCountSolutions())

	return nil
}

func runSolve(file string, doPrint, doDump bool) error {
	fmt.Println("////////////////////////////////////////")
	fmt.Println("// Solving")
	fmt.Println("////////////////////////////////////////")
	fmt.Println("Problem File :", file)

	in, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer in.Close()

	p, err := board.ParsePZPRv3(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}

	if doPrint {
		fmt.Print(p.String())
	}

	g, err := p.ToGraph()
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	fmt.Println("# board nodes :", g.VertexCount())
	fmt.Println("# board edges :", g.EdgeCount())

	spec, err := ddspec.New(p)
	if err != nil {
		return fmt.Errorf("build spec: %w", err)
	}

	builder := zdd.NewBuilder[[]ddspec.NState](ddspec.NewStateSpec(spec))
	if err := builder.Build(context.Background()); err != nil {
		return fmt.Errorf("build zdd: %w", err)
	}
	fmt.Println("# zdd nodes (reduced) :", builder.Size())
	fmt.Println("# solutions :", builder.Cardinality())

	if doDump {
		return dumpArtifacts(file, p, builder)
	}

	return nil
}

func dumpArtifacts(file string, p *board.Board, builder *zdd.Builder[[]ddspec.NState]) error {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	// Solutions yields levels; WriteDOT takes Edges() indices (k = m - level).
	var solution []int
	m := len(p.Edges())
	for sol := range builder.Solutions() {
		for _, level := range sol {
			solution = append(solution, m-level)
		}
		break
	}

	if err := writeFile(base+".dot", func(w io.Writer) error { return p.WriteDOT(w, solution) }); err != nil {
		return err
	}
	if err := writeFile(base+"_graph.lst", p.WriteGraph); err != nil {
		return err
	}
	if err := writeFile(base+"_zdd.dot", builder.WriteDOT); err != nil {
		return err
	}

	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
