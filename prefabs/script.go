package prefabs

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/hud/gauge"
)

// Scripted predicates declare a function named critical taking the gauge
// fraction and its two thresholds. The dispatch snippet below is appended so
// the compiled program can be re-run with fresh inputs every evaluation.
const criticalDispatchScript = `
__result = critical(__fraction, __low, __high)
`

type scriptPredicate struct {
	path     string
	compiled *tengo.Compiled
	reported bool
}

// CompileCriticalScript loads and compiles a tengo critical predicate. The
// script is compiled once here, at configuration time; evaluation per frame
// only re-runs the compiled program.
func CompileCriticalScript(path string) (gauge.Predicate, error) {
	src, err := LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", path, err)
	}
	p, err := compileCritical(path, src)
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", path, err)
	}
	return p.eval, nil
}

func compileCritical(path string, src []byte) (*scriptPredicate, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + criticalDispatchScript))
	_ = script.Add("__fraction", 0.0)
	_ = script.Add("__low", 0.0)
	_ = script.Add("__high", 0.0)
	_ = script.Add("__result", false)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &scriptPredicate{path: path, compiled: compiled}, nil
}

// eval satisfies gauge.Predicate. Runtime failures are logged once and read
// as not critical, so a broken script degrades to a quiet gauge instead of
// spamming every frame.
func (p *scriptPredicate) eval(fraction, low, high float64) bool {
	if p == nil || p.compiled == nil {
		return false
	}
	if err := p.set(fraction, low, high); err != nil {
		p.report(err)
		return false
	}
	if err := p.compiled.Run(); err != nil {
		p.report(err)
		return false
	}
	return p.compiled.Get("__result").Bool()
}

func (p *scriptPredicate) set(fraction, low, high float64) error {
	if err := p.compiled.Set("__fraction", fraction); err != nil {
		return err
	}
	if err := p.compiled.Set("__low", low); err != nil {
		return err
	}
	return p.compiled.Set("__high", high)
}

func (p *scriptPredicate) report(err error) {
	if p.reported {
		return
	}
	p.reported = true
	log.Printf("prefabs: script %s: %v", p.path, err)
}
