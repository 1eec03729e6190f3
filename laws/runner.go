package laws

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KasperOmsK/monadfn/internal/flogging"
	"github.com/leanovate/gopter"
	"github.com/op/go-logging"
	metrics "github.com/rcrowley/go-metrics"
)

var logger = flogging.MustGetLogger("laws")

// Property is one law checked against generated samples, usually built
// with prop.ForAll over the generators of the law's arguments.
type Property struct {
	Law  string
	Prop gopter.Prop
}

// Suite groups the properties of one instance.
type Suite struct {
	Name       string
	Properties []Property
}

// Failure identifies the first counterexample of a property. Replay with
// the same seed and sample index reproduces it.
type Failure struct {
	Suite  string
	Law    string
	Sample int
	Seed   uint64
	// Args are the formatted arguments of the counterexample, after
	// shrinking.
	Args []string
	// Error holds the property error, a recovered panic included, when the
	// law did not simply evaluate to false.
	Error string
}

func (f Failure) String() string {
	msg := fmt.Sprintf("%s/%s failed at sample %d (seed %d)", f.Suite, f.Law, f.Sample, f.Seed)
	if len(f.Args) > 0 {
		msg += " with " + strings.Join(f.Args, ", ")
	}
	if f.Error != "" {
		msg += ": " + f.Error
	}
	return msg
}

// SuiteReport is the outcome of one suite.
type SuiteReport struct {
	Name     string
	Passed   int
	Failures []Failure
	Duration time.Duration
}

// Report is the outcome of a Run.
type Report struct {
	Seed    uint64
	Samples int
	Suites  []SuiteReport
}

// OK reports whether every property of every suite held.
func (r Report) OK() bool {
	for _, s := range r.Suites {
		if len(s.Failures) > 0 {
			return false
		}
	}
	return true
}

// Failures returns the failures of all suites in run order.
func (r Report) Failures() []Failure {
	var out []Failure
	for _, s := range r.Suites {
		out = append(out, s.Failures...)
	}
	return out
}

// Runner checks suites against a fixed number of samples per property.
type Runner struct {
	samples  int
	seed     uint64
	registry metrics.Registry
	log      *logging.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSamples sets the number of samples drawn per property.
func WithSamples(n int) RunnerOption {
	return func(r *Runner) {
		r.samples = n
	}
}

// WithSeed fixes the seed. A zero seed is replaced by one derived from the
// clock when the Runner is created.
func WithSeed(seed uint64) RunnerOption {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithRegistry records metrics into registry instead of a private one.
func WithRegistry(registry metrics.Registry) RunnerOption {
	return func(r *Runner) {
		r.registry = registry
	}
}

// NewRunner returns a Runner drawing 100 samples per property by default.
// NewRunner panics if the sample count is not positive.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		samples: 100,
		log:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.samples <= 0 {
		panic("laws.NewRunner: samples must be positive")
	}
	if r.seed == 0 {
		r.seed = uint64(time.Now().UnixNano())
	}
	if r.registry == nil {
		r.registry = metrics.NewRegistry()
	}
	return r
}

// Seed returns the seed every sample is derived from.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Registry returns the registry holding the pass and fail counters
// (laws.<suite>.<law>.pass|fail) and the per-suite timers (laws.<suite>).
func (r *Runner) Registry() metrics.Registry {
	return r.registry
}

// Run checks the suites in order. Each property stops at its first
// failing sample. Cancelling ctx stops the run between samples; the
// report then covers the work done so far and the context error is
// returned.
func (r *Runner) Run(ctx context.Context, suites ...Suite) (Report, error) {
	report := Report{Seed: r.seed, Samples: r.samples}
	for _, s := range suites {
		sr, err := r.runSuite(ctx, s)
		report.Suites = append(report.Suites, sr)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (r *Runner) runSuite(ctx context.Context, s Suite) (SuiteReport, error) {
	r.log.Infof("Checking suite %s (%d laws, %d samples)", s.Name, len(s.Properties), r.samples)
	timer := metrics.GetOrRegisterTimer("laws."+s.Name, r.registry)
	start := time.Now()

	sr := SuiteReport{Name: s.Name}
	defer timer.UpdateSince(start)

	for _, p := range s.Properties {
		pass := metrics.GetOrRegisterCounter(metricName(s.Name, p.Law, "pass"), r.registry)
		fail := metrics.GetOrRegisterCounter(metricName(s.Name, p.Law, "fail"), r.registry)

		res := guard(ctx, p.Prop).Check(testParameters(r.seed, r.samples))
		pass.Inc(int64(res.Succeeded))
		r.log.Debugf("%s/%s: %v after %d samples", s.Name, p.Law, res.Status, res.Succeeded)

		if err := ctx.Err(); err != nil {
			r.log.Warningf("Suite %s interrupted: %s", s.Name, err)
			sr.Duration = time.Since(start)
			return sr, err
		}
		if res.Passed() {
			sr.Passed++
			continue
		}

		fail.Inc(1)
		f := failure(s.Name, p.Law, r.seed, res)
		r.log.Warning(f.String())
		sr.Failures = append(sr.Failures, f)
	}

	sr.Duration = time.Since(start)
	r.log.Infof("Suite %s: %d passed, %d failed in %s", s.Name, sr.Passed, len(sr.Failures), sr.Duration)
	return sr, nil
}

// Replay reruns p with seed up to and including sample and reports
// whether every one of those samples held.
func Replay(p Property, seed uint64, sample int) bool {
	return guard(context.Background(), p.Prop).Check(testParameters(seed, sample+1)).Passed()
}

// testParameters fixes the generator size so that sample i draws the same
// values whatever the total sample count.
func testParameters(seed uint64, samples int) *gopter.TestParameters {
	params := gopter.DefaultTestParametersWithSeed(int64(seed))
	params.MinSuccessfulTests = samples
	params.MinSize = params.MaxSize
	return params
}

// guard fails p with the context error once ctx is done, so a cancelled
// run stops before the next sample. A panicking sample fails with the
// recovered value.
func guard(ctx context.Context, p gopter.Prop) gopter.Prop {
	return func(genParams *gopter.GenParameters) (res *gopter.PropResult) {
		defer func() {
			if v := recover(); v != nil {
				res = &gopter.PropResult{Status: gopter.PropError, Error: fmt.Errorf("panic: %v", v)}
			}
		}()
		if err := ctx.Err(); err != nil {
			return &gopter.PropResult{Status: gopter.PropError, Error: err}
		}
		return p(genParams)
	}
}

func failure(suite, law string, seed uint64, res *gopter.TestResult) Failure {
	f := Failure{Suite: suite, Law: law, Sample: res.Succeeded + res.Discarded, Seed: seed}
	for _, arg := range res.Args {
		f.Args = append(f.Args, arg.ArgFormatted)
	}
	switch {
	case res.Error != nil:
		f.Error = res.Error.Error()
	case res.Status == gopter.TestExhausted:
		f.Error = "too many discarded samples"
	}
	return f
}

func metricName(suite, law, outcome string) string {
	return "laws." + suite + "." + law + "." + outcome
}
