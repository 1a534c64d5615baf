// SPDX-License-Identifier: MIT

// Package vgp converts a mean palaeomagnetic direction observed at a site
// into a virtual geomagnetic pole (VGP): the pole of the geocentric axial
// dipole that would produce that direction at that site (Butler 1992, §7).
//
// Site and pole positions are s2.LatLng values. The confidence cone α95 of
// the direction maps to an oval about the pole with semi-axes dp (along the
// site–pole great circle) and dm (perpendicular to it).
package vgp
