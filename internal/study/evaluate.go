package study

import (
	"slices"
	"sync"
	"time"

	"github.com/couchcryptid/relief-calc/internal/controlvalve"
	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/fire"
	"github.com/couchcryptid/relief-calc/internal/geometry"
	"github.com/couchcryptid/relief-calc/internal/hydraulic"
	"github.com/couchcryptid/relief-calc/internal/properties"
	"github.com/couchcryptid/relief-calc/internal/scenario"
	"github.com/couchcryptid/relief-calc/internal/tuberupture"
)

// Evaluator turns a study into a result.
type Evaluator interface {
	Evaluate(s Study) Result
}

// Result holds one CaseFlowResult per present case, in catalog order, the
// per-case details and the design basis.
type Result struct {
	StudyID      string                  `json:"study_id"`
	Name         string                  `json:"name,omitempty"`
	Cases        []domain.CaseFlowResult `json:"cases"`
	DesignBasis  *domain.DesignBasisFlow `json:"design_basis"`
	Details      Details                 `json:"details"`
	CalculatedAt time.Time               `json:"calculated_at"`
}

type Details struct {
	Fire               *fire.Result                  `json:"external_fire,omitempty"`
	ControlValve       *controlvalve.Result          `json:"control_valve_failure,omitempty"`
	BlockedOutlet      *scenario.BlockedOutletResult `json:"blocked_outlet,omitempty"`
	CoolingReflux      *scenario.CoolingRefluxResult `json:"cooling_reflux_failure,omitempty"`
	HydraulicExpansion *hydraulic.Result             `json:"hydraulic_expansion,omitempty"`
	TubeRupture        *tuberupture.Result           `json:"tube_rupture,omitempty"`
	LiquidOverfill     *scenario.OverfillResult      `json:"liquid_overfill,omitempty"`
}

// Case returns the result for id, if the study declared it.
func (r Result) Case(id domain.CaseID) (domain.CaseFlowResult, bool) {
	for _, c := range r.Cases {
		if c.CaseID == id {
			return c, true
		}
	}
	return domain.CaseFlowResult{}, false
}

// Clone returns a deep copy of r, so callers holding the copy cannot alter r.
func (r Result) Clone() Result {
	out := r
	out.Cases = slices.Clone(r.Cases)
	for i := range out.Cases {
		out.Cases[i].Errors = slices.Clone(out.Cases[i].Errors)
		out.Cases[i].Warnings = slices.Clone(out.Cases[i].Warnings)
	}
	if r.DesignBasis != nil {
		b := *r.DesignBasis
		out.DesignBasis = &b
	}

	d := r.Details
	out.Details = Details{
		Fire: cloneDetail(d.Fire, func(f *fire.Result) {
			f.Messages = f.Messages.Clone()
			if f.Formula != nil {
				formula := *f.Formula
				f.Formula = &formula
			}
		}),
		ControlValve:       cloneDetail(d.ControlValve, func(v *controlvalve.Result) { v.Messages = v.Messages.Clone() }),
		BlockedOutlet:      cloneDetail(d.BlockedOutlet, func(v *scenario.BlockedOutletResult) { v.Messages = v.Messages.Clone() }),
		CoolingReflux:      cloneDetail(d.CoolingReflux, func(v *scenario.CoolingRefluxResult) { v.Messages = v.Messages.Clone() }),
		HydraulicExpansion: cloneDetail(d.HydraulicExpansion, func(*hydraulic.Result) {}),
		TubeRupture:        cloneDetail(d.TubeRupture, func(v *tuberupture.Result) { v.Messages = v.Messages.Clone() }),
		LiquidOverfill:     cloneDetail(d.LiquidOverfill, func(v *scenario.OverfillResult) { v.Messages = v.Messages.Clone() }),
	}
	return out
}

func cloneDetail[T any](p *T, deep func(*T)) *T {
	if p == nil {
		return nil
	}
	c := *p
	deep(&c)
	return &c
}

// Engine evaluates studies against a property store.
type Engine struct {
	store *properties.Store
}

// NewEngine creates an Engine. A nil store uses the embedded tables.
func NewEngine(store *properties.Store) *Engine {
	if store == nil {
		store = properties.Default()
	}
	return &Engine{store: store}
}

// Evaluate runs each present case concurrently. Cases share no state, so
// results are collected by catalog slot and reassembled in order.
func (e *Engine) Evaluate(s Study) Result {
	res := Result{StudyID: s.ID, Name: s.Name, CalculatedAt: domain.Now()}

	jobs := e.jobs(s, &res.Details)
	slots := make([]*domain.CaseFlowResult, len(domain.Cases))

	var wg sync.WaitGroup
	for i, id := range domain.Cases {
		job, ok := jobs[id]
		if !ok {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := job()
			slots[i] = &c
		}()
	}
	wg.Wait()

	for _, c := range slots {
		if c != nil {
			res.Cases = append(res.Cases, *c)
		}
	}
	if basis, ok := domain.DesignBasis(res.Cases); ok {
		res.DesignBasis = &basis
	}
	return res
}

// jobs builds one closure per present case. Each closure writes only its own
// field of d.
func (e *Engine) jobs(s Study, d *Details) map[domain.CaseID]func() domain.CaseFlowResult {
	jobs := make(map[domain.CaseID]func() domain.CaseFlowResult)

	if c := s.Fire; c != nil {
		jobs[domain.CaseExternalFire] = func() domain.CaseFlowResult {
			in := c.Inputs
			if in.Vessel == (geometry.Vessel{}) {
				in.Vessel = s.Vessel
			}
			r := fire.Calculate(in, e.store)
			d.Fire = &r
			return r.CaseResult(c.Selected)
		}
	}
	if c := s.ControlValve; c != nil {
		jobs[domain.CaseControlValveFailure] = func() domain.CaseFlowResult {
			var r controlvalve.Result
			if gas, err := c.GasRef.Resolve(e.store); err != nil {
				r.Errorf("%s", err)
			} else {
				in := c.Inputs
				in.Gas = gas
				r = controlvalve.Calculate(in)
			}
			d.ControlValve = &r
			return r.CaseResult(c.Selected)
		}
	}
	if c := s.BlockedOutlet; c != nil {
		jobs[domain.CaseBlockedOutlet] = func() domain.CaseFlowResult {
			r := scenario.BlockedOutlet(c.BlockedOutletInputs)
			d.BlockedOutlet = &r
			return r.CaseResult(c.Selected)
		}
	}
	if c := s.CoolingReflux; c != nil {
		jobs[domain.CaseCoolingRefluxFailure] = func() domain.CaseFlowResult {
			r := scenario.CoolingRefluxFailure(c.CoolingRefluxInputs, e.store)
			d.CoolingReflux = &r
			return r.CaseResult(c.Selected)
		}
	}
	if c := s.HydraulicExpansion; c != nil {
		jobs[domain.CaseHydraulicExpansion] = func() domain.CaseFlowResult {
			r := hydraulic.Calculate(c.Inputs)
			d.HydraulicExpansion = &r
			return r.CaseResult(c.Selected)
		}
	}
	if c := s.TubeRupture; c != nil {
		jobs[domain.CaseTubeRupture] = func() domain.CaseFlowResult {
			r := e.tubeRupture(c)
			d.TubeRupture = &r
			return r.CaseResult(c.Selected)
		}
	}
	if c := s.LiquidOverfill; c != nil {
		jobs[domain.CaseLiquidOverfill] = func() domain.CaseFlowResult {
			r := scenario.LiquidOverfill(c.OverfillInputs, e.store)
			d.LiquidOverfill = &r
			return r.CaseResult(c.Selected)
		}
	}
	return jobs
}

func (e *Engine) tubeRupture(c *TubeRuptureCase) tuberupture.Result {
	in := c.Inputs
	var r tuberupture.Result

	switch in.State {
	case tuberupture.Gas:
		gas, err := c.GasRef.Resolve(e.store)
		if err != nil {
			r.Errorf("%s", err)
			return r
		}
		in.Gas = gas
	default:
		if in.LiquidDensity == 0 && c.Fluid != "" {
			f, ok := e.store.Fluid(c.Fluid)
			if !ok {
				r.Errorf("no property data for fluid %q", c.Fluid)
				return r
			}
			in.LiquidDensity = f.LiquidDensity
		}
	}
	return tuberupture.Calculate(in)
}
