// Command pathbool runs boolean path operations on SVG path data from
// the command line: read two path-data arguments (or one, for resolve),
// apply an operator, and print the result as SVG path data.
package main

import (
	"fmt"
	"io/ioutil"

	"github.com/Polymagine/pathbool"
	"github.com/tdewolff/argp"
)

type UniteOptions struct {
	Output string `short:"o" desc:"Output file (default stdout)"`
}

type IntersectOptions struct {
	Output string `short:"o" desc:"Output file (default stdout)"`
}

type SubtractOptions struct {
	Output string `short:"o" desc:"Output file (default stdout)"`
}

type ExcludeOptions struct {
	Output string `short:"o" desc:"Output file (default stdout)"`
}

type DivideOptions struct {
	Output string `short:"o" desc:"Output file (default stdout)"`
}

type ResolveOptions struct {
	EvenOdd bool   `desc:"Use the even-odd fill rule instead of nonzero"`
	Output  string `short:"o" desc:"Output file (default stdout)"`
}

var (
	uniteOptions     UniteOptions
	intersectOptions IntersectOptions
	subtractOptions  SubtractOptions
	excludeOptions   ExcludeOptions
	divideOptions    DivideOptions
	resolveOptions   ResolveOptions
)

func main() {
	root := argp.New("Cubic Bézier path boolean operations")

	unite := root.AddCommand(runUnite, "union", "Union of two paths")
	unite.AddStruct(&uniteOptions)

	intersect := root.AddCommand(runIntersect, "intersect", "Intersection of two paths")
	intersect.AddStruct(&intersectOptions)

	subtract := root.AddCommand(runSubtract, "subtract", "Subtract the second path from the first")
	subtract.AddStruct(&subtractOptions)

	exclude := root.AddCommand(runExclude, "exclude", "Symmetric difference of two paths")
	exclude.AddStruct(&excludeOptions)

	divide := root.AddCommand(runDivide, "divide", "Split two paths along their crossings")
	divide.AddStruct(&divideOptions)

	resolve := root.AddCommand(runResolve, "resolve", "Resolve a single path's self-intersections")
	resolve.AddStruct(&resolveOptions)

	root.Parse()
	root.PrintHelp()
}

func parseOperand(arg string) (*pathbool.CompoundPath, error) {
	return pathbool.ParseSVGPath(arg)
}

func writeResult(output string, cp *pathbool.CompoundPath) error {
	data := pathbool.ToSVGPath(cp)
	if output == "" || output == "-" {
		fmt.Println(data)
		return nil
	}
	return ioutil.WriteFile(output, []byte(data+"\n"), 0644)
}

func twoOperands(args []string) (*pathbool.CompoundPath, *pathbool.CompoundPath, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("must pass two SVG path-data arguments")
	}
	a, err := parseOperand(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := parseOperand(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func runUnite(args []string) error {
	a, b, err := twoOperands(args)
	if err != nil {
		return err
	}
	r, err := pathbool.Unite(a, b)
	if err != nil {
		return err
	}
	return writeResult(uniteOptions.Output, r)
}

func runIntersect(args []string) error {
	a, b, err := twoOperands(args)
	if err != nil {
		return err
	}
	r, err := pathbool.Intersect(a, b)
	if err != nil {
		return err
	}
	return writeResult(intersectOptions.Output, r)
}

func runSubtract(args []string) error {
	a, b, err := twoOperands(args)
	if err != nil {
		return err
	}
	r, err := pathbool.Subtract(a, b)
	if err != nil {
		return err
	}
	return writeResult(subtractOptions.Output, r)
}

func runExclude(args []string) error {
	a, b, err := twoOperands(args)
	if err != nil {
		return err
	}
	r, err := pathbool.Exclude(a, b)
	if err != nil {
		return err
	}
	return writeResult(excludeOptions.Output, r)
}

func runDivide(args []string) error {
	a, b, err := twoOperands(args)
	if err != nil {
		return err
	}
	r, err := pathbool.Divide(a, b)
	if err != nil {
		return err
	}
	return writeResult(divideOptions.Output, r)
}

func runResolve(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must pass one SVG path-data argument")
	}
	a, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	if resolveOptions.EvenOdd {
		a.Rule = pathbool.EvenOdd
	}
	r, err := pathbool.ResolveCrossings(a)
	if err != nil {
		return err
	}
	return writeResult(resolveOptions.Output, r)
}
