package builder

import (
	"context"
	"errors"
	"maps"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildGraph builds every node of graph with up to parallelism builds at once.
// A package starts only after all of its dependencies built or were skipped; the
// dependents of a failed build are reported as blocked.
func (b *Builder) BuildGraph(ctx context.Context, graph *domain.DependencyGraph, parallelism int) (map[domain.ResolvedRef]Status, error) {
	if _, err := graph.TopologicalOrder(); err != nil {
		return nil, err
	}
	if parallelism < 1 {
		parallelism = 1
	}

	state := b.newRunState(ctx, graph, parallelism)
	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil {
			if state.active == 0 {
				state.errs = errors.Join(state.errs, state.ctx.Err())
				break
			}
			state.handleResult(<-state.resultsCh)
			continue
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	for ref, status := range state.status {
		if status == StatusPending {
			state.status[ref] = StatusBlocked
		}
	}
	return maps.Clone(state.status), state.errs
}

type result struct {
	ref    domain.ResolvedRef
	status Status
	err    error
}

type runState struct {
	b           *Builder
	ctx         context.Context
	graph       *domain.DependencyGraph
	inDegree    map[domain.ResolvedRef]int
	dependents  map[domain.ResolvedRef][]domain.ResolvedRef
	status      map[domain.ResolvedRef]Status
	ready       []domain.ResolvedRef
	active      int
	parallelism int
	resultsCh   chan result
	errs        error
}

func (b *Builder) newRunState(ctx context.Context, graph *domain.DependencyGraph, parallelism int) *runState {
	state := &runState{
		b:           b,
		ctx:         ctx,
		graph:       graph,
		inDegree:    make(map[domain.ResolvedRef]int, graph.Len()),
		dependents:  make(map[domain.ResolvedRef][]domain.ResolvedRef, graph.Len()),
		status:      make(map[domain.ResolvedRef]Status, graph.Len()),
		parallelism: parallelism,
		resultsCh:   make(chan result, parallelism),
	}
	for ref, children := range graph.All() {
		state.inDegree[ref] = len(children)
		state.status[ref] = StatusPending
		for _, child := range children {
			state.dependents[child] = append(state.dependents[child], ref)
		}
	}
	for _, ref := range graph.Nodes() {
		if state.inDegree[ref] == 0 {
			state.ready = append(state.ready, ref)
		}
	}
	return state
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		ref := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.status[ref] = StatusRunning

		inputs := make([]string, 0)
		for _, child := range state.graph.Children(ref) {
			inputs = append(inputs, "build "+child.String())
		}

		go func(ref domain.ResolvedRef) {
			status, err := state.buildOne(ref, ports.WithInputs(inputs...))
			state.resultsCh <- result{ref: ref, status: status, err: err}
		}(ref)
	}
}

func (state *runState) buildOne(ref domain.ResolvedRef, opts ...ports.VertexOption) (Status, error) {
	spec, err := state.b.specs.Spec(state.ctx, ref)
	if err != nil {
		return StatusFailed, err
	}
	return state.b.build(state.ctx, spec, opts...)
}

func (state *runState) handleResult(res result) {
	state.active--
	state.status[res.ref] = res.status
	if res.err != nil {
		state.errs = errors.Join(state.errs, zerr.With(zerr.Wrap(res.err, "package build failed"), "package", res.ref.String()))
		return
	}
	for _, dep := range state.dependents[res.ref] {
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}
