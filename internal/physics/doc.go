// Package physics implements the gravity and collision integrator.
//
// [Integrator.Advance] performs one fixed unit timestep over a
// [world.World] in two passes:
//
//  1. For every unordered body pair, either resolve an overlap as an
//     inelastic collision or apply a Newtonian gravitational impulse.
//  2. Integrate positions from the fully updated velocities
//     (explicit Euler, dt = 1 tick).
//
// # Collision model
//
// Overlapping bodies that are approaching lose their velocity component
// along the line of centers entirely; tangential motion is preserved.
// A resolved collision suppresses the gravitational impulse for that
// pair on the same step.
//
// Advance is not reentrant: callers must not invoke it concurrently
// with itself or with anything reading the same World.
package physics
