// Package kinematics solves relativistic two-body reaction kinematics:
// a projectile (1) hitting a target (2) at rest in the lab, producing
// an ejectile (3) and a recoil (4).
//
// The package computes the frame-independent invariants once per
// reaction and beam energy, then maps any CM emission angle to the
// lab-frame observables of both outgoing particles:
//
//   - [Reaction]: solved invariants of one reaction at one beam energy
//   - [Turning]: maximum lab emission angle of one particle, when it exists
//   - [Row]: lab-frame observables at one CM cosine
//   - [Table]: dense angular sampling with multi-root inverse interpolation
//
// All quantities are in natural units: energies and masses in MeV,
// momenta in MeV/c, speeds in units of c, angles in radians.
//
// # Example
//
//	rxn, err := kinematics.Solve(3727.379, 11174.863, 3727.379, 11174.863, 4.0)
//	if err != nil {
//		return err
//	}
//	res, err := rxn.AtValue(kinematics.ColThetaCM, 0.8, []string{"e3", "v3"}, 0)
//
// # Thread Safety
//
// A Reaction is immutable after Solve except for its lazily built
// table, which is initialized at most once; a Reaction and its Table
// may safely be read concurrently.
package kinematics
