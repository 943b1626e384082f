// Package gen drives a full generation run: it validates the registry,
// renders every selected class in parallel and collects the output files.
// Nothing reaches a Sink until every class has rendered.
package gen

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/nativegen/binding"
	"github.com/teranos/nativegen/decl"
	"github.com/teranos/nativegen/emit"
	"github.com/teranos/nativegen/emit/java"
	"github.com/teranos/nativegen/emit/jni"
	"github.com/teranos/nativegen/errors"
	"github.com/teranos/nativegen/logger"
)

// Options configures a generation run.
type Options struct {
	// Classes restricts the run to these class or template names. Empty
	// means every registered class.
	Classes []string
	// Workers bounds the classes rendered concurrently. Zero uses GOMAXPROCS.
	Workers int
	Emit    emit.Options
}

// Result is the output of a run.
type Result struct {
	Files     []emit.OutputFile
	Classes   []string
	Overloads int
}

// Generators returns the generators applied to every class.
func Generators() []emit.Generator {
	return []emit.Generator{java.NewGenerator(), jni.NewGenerator()}
}

// Run renders the selected classes of reg. The whole registry is validated
// first, so a declaration error anywhere aborts the run before output.
func Run(ctx context.Context, reg *decl.Registry, opts Options) (*Result, error) {
	if err := reg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate templates")
	}
	classes, err := Select(reg, opts.Classes)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	generators := Generators()
	outputs := make([][]emit.OutputFile, len(classes))
	overloads := make([]int, len(classes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range classes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			files, n, err := generateClass(c, generators, opts.Emit)
			if err != nil {
				return errors.Wrapf(err, "generate %s.%s", c.Package, c.ClassName)
			}
			outputs[i] = files
			overloads[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for i, c := range classes {
		res.Files = append(res.Files, outputs[i]...)
		res.Classes = append(res.Classes, c.ClassName)
		res.Overloads += overloads[i]
	}

	caps, err := capabilities(reg, classes, opts.Emit)
	if err != nil {
		return nil, err
	}
	res.Files = append(res.Files, caps...)
	emit.SortFiles(res.Files)

	logger.Logger.Infow("Generation complete",
		logger.FieldClasses, len(res.Classes),
		logger.FieldOverloads, res.Overloads,
		logger.FieldFiles, len(res.Files),
		logger.FieldWorkers, workers)
	return res, nil
}

// Select returns the classes of reg named by names, in registration order.
// An empty names selects everything.
func Select(reg *decl.Registry, names []string) ([]*decl.NativeClass, error) {
	if len(names) == 0 {
		return reg.Classes(), nil
	}
	wanted := make(map[*decl.NativeClass]bool, len(names))
	for _, name := range names {
		c, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		wanted[c] = true
	}
	var out []*decl.NativeClass
	for _, c := range reg.Classes() {
		if wanted[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

func generateClass(c *decl.NativeClass, generators []emit.Generator, opts emit.Options) ([]emit.OutputFile, int, error) {
	b, err := binding.For(c)
	if err != nil {
		return nil, 0, err
	}
	u, err := emit.NewUnit(c, b, opts)
	if err != nil {
		return nil, 0, err
	}
	var files []emit.OutputFile
	for _, gen := range generators {
		out, err := gen.Generate(u)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "%s generator", gen.Language())
		}
		files = append(files, out...)
	}
	return files, u.OverloadCount(), nil
}

// capabilities renders one capabilities class per binding group touched by
// the selection. Each class aggregates every registered class of its group.
func capabilities(reg *decl.Registry, selected []*decl.NativeClass, opts emit.Options) ([]emit.OutputFile, error) {
	touched := map[string]bool{}
	for _, c := range selected {
		if c.Binding != "" {
			touched[c.Binding] = true
		}
	}
	names := make([]string, 0, len(touched))
	for name := range touched {
		names = append(names, name)
	}
	sort.Strings(names)

	var files []emit.OutputFile
	for _, name := range names {
		b, err := binding.Lookup(name)
		if err != nil {
			return nil, err
		}
		caps, ok := b.(binding.Capabilities)
		if !ok {
			continue
		}
		var group []*decl.NativeClass
		for _, c := range reg.Classes() {
			if c.Binding == name {
				group = append(group, c)
			}
		}
		files = append(files, emit.OutputFile{
			Root:    emit.RootJava,
			Path:    caps.CapabilitiesPath(),
			Content: emit.Header(opts) + caps.Capabilities(group),
		})
		logger.Logger.Debugw("Generated capabilities", logger.FieldBinding, name, logger.FieldClasses, len(group))
	}
	return files, nil
}
