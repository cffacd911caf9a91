// Package engine wires the synthesis pipeline together: wavelength-grid
// construction, abundance resolution, per-layer opacity assembly, line
// accumulation, and the transfer solution, producing an emergent flux
// spectrum.
//
// # Usage
//
// For a synthesis with the built-in reference collaborators:
//
//	e := engine.New(engine.Collaborators{},
//		engine.WithMetallicity(-0.5),
//		engine.WithVmic(1.2))
//	res, err := e.Synthesize(atm, lines, 5000, 5100, 0.01)
//
// Wavelengths are Å and velocities km/s at this interface; everything
// internal is CGS. Any field of [Collaborators] may be replaced to
// substitute an external continuum model, equilibrium solver, hydrogen
// line model, line accumulator, or transfer solver; zero fields select
// the reference implementations.
//
// # Failure modes
//
// Usage errors (a hydrogen abundance override, a descending or
// unrepresentable air wavelength grid) fail before any layer work
// begins. Internal-invariant errors (species key sets differing between
// layers, non-finite absorption) indicate a collaborator bug and abort
// the synthesis; no partial result is ever returned.
package engine
