// Package engine drives the simulation frame loop.
//
// The package separates the tick logic from its scheduling:
//
//   - [Mode]: the play/pause/step state machine, fed by [Command] values
//   - [Session]: one World plus its Mode and integrator; frontends call
//     [Session.Tick] once per frame from whatever loop drives them
//   - [Loop]: an explicit spin loop around a Session with pluggable
//     [Renderer] and [InputSource] collaborators, used by headless runs
//     and tests
//
// Each tick is strictly sequential: render and advance if the mode
// permits, otherwise yield briefly, then poll for at most one command.
// A Quit command is observed only at the top of a tick, never
// mid-step.
package engine
