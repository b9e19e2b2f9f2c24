package graph

import "errors"

// Every failure mode the graph can surface is a distinct error kind so that
// callers can branch on errors.Is. None of these are retriable; they
// terminate the current call but leave the graph usable, except where the
// message states otherwise.
var (
	// ErrInvalidDefinition covers structurally malformed definitions: empty
	// node names, missing component references and malformed input strings.
	ErrInvalidDefinition = errors.New("invalid component graph definition")

	// ErrDuplicateNode is returned when two nodes share a name.
	ErrDuplicateNode = errors.New("duplicate node name in component graph")

	// ErrUnknownNode is returned by lookups for names absent from the graph.
	ErrUnknownNode = errors.New("component is not in the graph")

	// ErrUnknownReference is returned when an input reference names a node
	// that does not exist in the graph.
	ErrUnknownReference = errors.New("input reference does not name a node in the graph")

	// ErrCycle is returned when the definition contains a dependency cycle.
	ErrCycle = errors.New("the given graph contains a cycle")

	// ErrNotConnected is returned when the definition contains nodes that do
	// not connect into the main component chain.
	ErrNotConnected = errors.New("the given graph is not completely connected")

	// ErrMultipleFinal is returned when more than one node has no outgoing
	// edges.
	ErrMultipleFinal = errors.New("the given graph has more than one final (childless) component")

	// ErrMultipleYParents is returned when a node declares more than one
	// target-channel input.
	ErrMultipleYParents = errors.New("cannot have multiple y parents for a single component")

	// ErrInstantiate wraps a component construction failure. The graph may
	// be instantiated again after receiving it.
	ErrInstantiate = errors.New("error received when instantiating component")

	// ErrReinstantiate is returned when Instantiate is called on a graph
	// that already instantiated successfully.
	ErrReinstantiate = errors.New("cannot reinstantiate a component graph that was previously instantiated")

	// ErrNotInstantiated is returned when an operation that needs live
	// component instances runs before successful instantiation.
	ErrNotInstantiated = errors.New("all components must be instantiated before fitting or predicting")

	// ErrEdgelessGraph is returned when the last component is requested from
	// a graph with no nodes.
	ErrEdgelessGraph = errors.New("cannot get last component from edgeless graph")
)
