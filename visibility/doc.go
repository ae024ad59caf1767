// Package visibility is the public facade tying the engine's pipeline
// together: identifyEdges → identifyVertices (+ intersections) →
// executeSweep → constrainBoundaryShapes → final polygon points, per §2's
// dataflow. Callers needing vision, light, or sound polygons for a scene
// use only this package; sweepgraph, sweepsort, sweepengine, and
// boundaryclip are its internal collaborators.
package visibility
