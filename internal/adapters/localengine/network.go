package localengine

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/visit/internal/adapters/comm"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/engine/contract"
	"go.trai.ch/visit/internal/engine/transform"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Operator names understood by ApplyOperator.
const (
	OperatorThreshold    = "Threshold"
	OperatorDomainSubset = "DomainSubset"
)

// network is an opened database plus the operators and plot applied to it.
type network struct {
	id      int
	db      *Database
	state   int
	filters []string
	// thresholded is set once any Threshold removed zones.
	thresholded bool
	// domains is nil until a DomainSubset restricts it.
	domains []int
	plot    domain.MakePlotRequest
}

func (n *network) domainList(doms *Domains) []int {
	if n.domains == nil {
		return doms.All()
	}
	return n.domains
}

func (n *network) condition(t *Table) (Condition, error) {
	return ParseCondition(strings.Join(n.filters, "&&"), t)
}

// OpenDatabase implements ports.EngineService.
func (e *Engine) OpenDatabase(_ context.Context, req domain.OpenDatabaseRequest) error {
	db, err := OpenDatabase(e.resolve(req.File))
	if err != nil {
		return err
	}
	if _, _, err := e.table(db, req.TimeState); err != nil {
		return err
	}
	e.mu.Lock()
	e.building = &network{db: db, state: req.TimeState}
	e.mu.Unlock()
	return nil
}

// ApplyOperator implements ports.EngineService.
func (e *Engine) ApplyOperator(_ context.Context, req domain.ApplyOperatorRequest) error {
	e.mu.Lock()
	n := e.building
	e.mu.Unlock()
	if n == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoOpenDatabase, "cannot apply operator"), "operator", req.Operator)
	}
	t, doms, err := e.table(n.db, n.state)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	switch req.Operator {
	case OperatorThreshold:
		name := req.Attributes["variable"]
		if _, ok := t.Column(name); !ok {
			return zerr.With(zerr.Wrap(domain.ErrInvalidVariable, "cannot threshold"), "variable", name)
		}
		for attr, op := range map[string]string{"lower": ">=", "upper": "<="} {
			v, ok := req.Attributes[attr]
			if !ok {
				continue
			}
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "bad threshold bound"), attr, v)
			}
			n.filters = append(n.filters, "("+name+op+v+")")
		}
		slices.Sort(n.filters)
		n.thresholded = true
	case OperatorDomainSubset:
		subset, err := parseDomains(req.Attributes["domains"], doms.LeafCount())
		if err != nil {
			return err
		}
		n.domains = subset
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownOperator, "cannot apply operator"), "operator", req.Operator)
	}
	return nil
}

func parseDomains(s string, count int) ([]int, error) {
	subset := []int{}
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		d, err := strconv.Atoi(f)
		if err != nil || d < 0 || d >= count {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "bad domain"), "domain", f), "domains", count)
		}
		subset = append(subset, d)
	}
	slices.Sort(subset)
	return slices.Compact(subset), nil
}

// MakePlot implements ports.EngineService.
func (e *Engine) MakePlot(_ context.Context, req domain.MakePlotRequest) (int, error) {
	e.mu.Lock()
	n := e.building
	e.mu.Unlock()
	if n == nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrNoOpenDatabase, "cannot make plot"), "plot", req.PlotType)
	}
	t, _, err := e.table(n.db, n.state)
	if err != nil {
		return 0, err
	}

	vars := []string{}
	if req.Variable != "" {
		vars = append(vars, req.Variable)
	}
	if req.PlotType == domain.PlotParallelCoordinates {
		if req.Parallel == nil || len(req.Parallel.Axes) < 2 {
			return 0, zerr.With(zerr.Wrap(domain.ErrInvalidVariable, "parallel coordinates need two axes"), "plot", req.PlotType)
		}
		vars = append(vars, req.Parallel.Axes...)
	}
	for _, v := range vars {
		if _, ok := t.Column(v); !ok {
			return 0, zerr.With(zerr.Wrap(domain.ErrInvalidVariable, "cannot make plot"), "variable", v)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	n.id = e.nextID
	n.plot = req
	if req.Parallel != nil {
		p := *req.Parallel
		p.Axes = slices.Clone(p.Axes)
		p.Extents = slices.Clone(p.Extents)
		n.plot.Parallel = &p
	}
	e.networks[n.id] = n
	e.building = nil
	return n.id, nil
}

func (e *Engine) network(id int) (*network, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.networks[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidNetwork, "no such network"), "network", id)
	}
	return n, nil
}

// ReleaseData implements ports.EngineService.
func (e *Engine) ReleaseData(_ context.Context, networkID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.networks[networkID]; !ok {
		return zerr.With(zerr.Wrap(domain.ErrInvalidNetwork, "no such network"), "network", networkID)
	}
	delete(e.networks, networkID)
	return nil
}

// Execute implements ports.EngineService. Parallel-coordinates plots first
// negotiate on every rank whether histograms can replace the traversal.
func (e *Engine) Execute(ctx context.Context, networkID int) (domain.ExecuteResult, error) {
	e.interrupted.Store(false)
	n, err := e.network(networkID)
	if err != nil {
		return domain.ExecuteResult{}, err
	}
	t, doms, err := e.table(n.db, n.state)
	if err != nil {
		return domain.ExecuteResult{}, err
	}

	in := domain.NewContract(n.plot.Variable, n.domainList(doms))
	in.ZonesPreserved = !n.thresholded
	in.TimeStates = []int{n.state}
	if n.domains != nil {
		in.RestrictDomains(n.domains)
	}

	res := domain.ExecuteResult{NetworkID: n.id, Contract: in, NumTimeSteps: len(in.TimeStates)}
	if n.plot.PlotType == domain.PlotParallelCoordinates && n.plot.Parallel != nil {
		neg, err := e.negotiate(ctx, n, in)
		if err != nil {
			return domain.ExecuteResult{}, err
		}
		res.Contract = neg.contract
		res.UsedHistograms = neg.used
		if neg.used {
			set := neg.context[0]
			if neg.focus != nil {
				set = neg.focus[0]
			}
			res.NumSegments = len(contract.SetSegments(set))
			if len(neg.context[0]) > 0 {
				res.NumRows = int(neg.context[0][0].Total())
			}
			return res, nil
		}
	}

	rows, err := e.traverse(ctx, n, t, doms, res.Contract.Domains)
	if err != nil {
		return domain.ExecuteResult{}, err
	}
	res.NumRows = len(rows)
	return res, nil
}

// traverse returns the rows of domains that pass the network's filters.
func (e *Engine) traverse(ctx context.Context, n *network, t *Table, doms *Domains, domains []int) ([]int, error) {
	cond, err := n.condition(t)
	if err != nil {
		return nil, err
	}
	var rows []int
	for _, d := range domains {
		if e.interrupted.Load() {
			return nil, zerr.With(zerr.Wrap(domain.ErrInterrupted, "execution stopped"), "domain", d)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, r := range doms.Rows(d) {
			if cond.Holds(t.Rows[r]) {
				rows = append(rows, r)
			}
		}
	}
	return rows, nil
}

type negotiation struct {
	contract *domain.Contract
	used     bool
	context  domain.Histograms
	focus    domain.Histograms
}

// negotiate runs one negotiator per rank. Histograms are used only when
// every rank obtained them; rank 0 holds the unified result.
func (e *Engine) negotiate(ctx context.Context, n *network, in *domain.Contract) (negotiation, error) {
	group := comm.NewGroup(e.procs)
	results := make([]negotiation, e.procs)

	g, gctx := errgroup.WithContext(ctx)
	for rank := range e.procs {
		g.Go(func() error {
			ep := group.Rank(rank)
			source := &histogramSource{load: e.loader(n.db), domains: in.Domains, rank: rank, size: e.procs}
			neg := contract.NewNegotiator(source, e.logger, *n.plot.Parallel)

			out, err := neg.ModifyContract(gctx, in.Clone())
			if err != nil {
				return err
			}
			var used int64
			if neg.UsedHistograms() {
				used = 1
			}
			agreed, err := ep.SumInt64(gctx, []int64{used})
			if err != nil {
				return err
			}
			r := negotiation{contract: out}
			if agreed[0] != int64(e.procs) {
				if used == 1 {
					r.contract = in.Clone()
					r.contract.NoStreaming()
				}
				results[rank] = r
				return nil
			}

			r.used = true
			if r.context, err = contract.Unify(gctx, ep, neg.ContextHistograms(), neg.Pairs()); err != nil {
				return err
			}
			if neg.FocusHistograms() != nil {
				if r.focus, err = contract.Unify(gctx, ep, neg.FocusHistograms(), neg.Pairs()); err != nil {
					return err
				}
			}
			results[rank] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return negotiation{}, err
	}
	if !results[0].used && e.procs > 1 {
		e.logger.Info(fmt.Sprintf("network %d traverses data directly on %d ranks", n.id, e.procs))
	}
	return results[0], nil
}

// Render implements ports.EngineService.
func (e *Engine) Render(_ context.Context, req domain.RenderRequest) (domain.RenderResult, error) {
	res := domain.RenderResult{WindowID: req.WindowID, VisibleDomains: map[int][]int{}}

	bounds, first := [6]float64{}, true
	for _, id := range req.NetworkIDs {
		n, err := e.network(id)
		if err != nil {
			return domain.RenderResult{}, err
		}
		_, doms, err := e.table(n.db, n.state)
		if err != nil {
			return domain.RenderResult{}, err
		}
		inView, err := transform.GetDomainsList(req.View, doms)
		if err != nil {
			return domain.RenderResult{}, err
		}
		owned := n.domainList(doms)
		visible := []int{}
		for _, d := range inView {
			if _, ok := slices.BinarySearch(owned, d); ok {
				visible = append(visible, d)
			}
		}
		res.VisibleDomains[id] = visible

		b := doms.Extents()
		if first {
			bounds, first = b, false
			continue
		}
		for i := 0; i < 6; i += 2 {
			bounds[i], bounds[i+1] = min(bounds[i], b[i]), max(bounds[i+1], b[i+1])
		}
	}

	aspect := 1.0
	if req.Width > 0 && req.Height > 0 {
		aspect = float64(req.Width) / float64(req.Height)
	}
	w2i, err := transform.New(req.View, [3]float64{1, 1, 1}, aspect)
	if err != nil {
		return domain.RenderResult{}, err
	}
	if !first {
		if _, err := w2i.TightenClippingPlanes(bounds); err != nil {
			return domain.RenderResult{}, err
		}
	}
	res.Transform = w2i.Matrix()
	res.View = w2i.View()
	return res, nil
}

// Pick implements ports.EngineService. Element counts rows within a domain.
func (e *Engine) Pick(_ context.Context, req domain.PickRequest) (domain.PickResult, error) {
	n, err := e.network(req.NetworkID)
	if err != nil {
		return domain.PickResult{}, err
	}
	t, _, err := e.table(n.db, n.state)
	if err != nil {
		return domain.PickResult{}, err
	}
	row := req.Domain*e.rowsPerDomain + req.Element
	if req.Element < 0 || req.Element >= e.rowsPerDomain || row < 0 || row >= len(t.Rows) {
		return domain.PickResult{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidNetwork, "no such element"),
			"domain", req.Domain), "element", req.Element)
	}

	vars := req.Variables
	if len(vars) == 0 {
		vars = t.Columns
	}
	res := domain.PickResult{Domain: req.Domain, Element: req.Element, Values: map[string]float64{}}
	for _, v := range vars {
		col, ok := t.Column(v)
		if !ok {
			return domain.PickResult{}, zerr.With(zerr.Wrap(domain.ErrInvalidVariable, "cannot pick"), "variable", v)
		}
		res.Values[v] = t.Rows[row][col]
	}
	return res, nil
}

// Query implements ports.EngineService.
func (e *Engine) Query(ctx context.Context, req domain.QueryRequest) (domain.QueryResult, error) {
	n, err := e.network(req.NetworkID)
	if err != nil {
		return domain.QueryResult{}, err
	}
	switch req.Name {
	case domain.QueryNumRows, domain.QueryMin, domain.QueryMax, domain.QuerySum:
	default:
		return domain.QueryResult{}, zerr.With(zerr.Wrap(domain.ErrUnknownQuery, "cannot run query"), "query", req.Name)
	}

	t, doms, err := e.table(n.db, n.state)
	if err != nil {
		return domain.QueryResult{}, err
	}
	rows, err := e.traverse(ctx, n, t, doms, n.domainList(doms))
	if err != nil {
		return domain.QueryResult{}, err
	}
	if req.Name == domain.QueryNumRows {
		return domain.QueryResult{
			Name:    req.Name,
			Values:  []float64{float64(len(rows))},
			Message: fmt.Sprintf("The number of rows is %d.", len(rows)),
		}, nil
	}

	variable := cmp.Or(req.Variable, n.plot.Variable)
	col, ok := t.Column(variable)
	if !ok {
		return domain.QueryResult{}, zerr.With(zerr.Wrap(domain.ErrInvalidVariable, "cannot run query"), "variable", variable)
	}
	var v float64
	switch req.Name {
	case domain.QuerySum:
		for _, r := range rows {
			v += t.Rows[r][col]
		}
	case domain.QueryMin:
		v, _ = t.Range(col, rows)
	case domain.QueryMax:
		_, v = t.Range(col, rows)
	}
	return domain.QueryResult{
		Name:    req.Name,
		Values:  []float64{v},
		Message: fmt.Sprintf("The %s of %s is %g.", strings.ToLower(req.Name), variable, v),
	}, nil
}
