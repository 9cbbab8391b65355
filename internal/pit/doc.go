// Package pit provides the core primitives of the ball-pit simulation.
//
// The package defines the types shared by every stage of the frame
// pipeline:
//
//   - [Vec3]: simulation-space vector
//   - [Particle]: position, velocity, radius and palette color of one ball
//   - [Bounds]: the axis-aligned box the population is confined to
//   - [NewPopulation]: allocates and seeds the particle slice
//
// # Ownership
//
// The particle slice is owned by exactly one sim.Engine instance and is
// mutated only by the integrator and the collision resolver. Renderers
// read it, never write it. Instances are NOT safe for concurrent use;
// correctness relies on the strict one-frame-at-a-time pipeline the
// engine enforces.
package pit
