// SPDX-License-Identifier: MIT

// Package mdf finds the median destructive field (MDF) of a stepwise
// demagnetization series: the treatment level at which the remanence falls
// to half its initial intensity, interpolated linearly between the two
// steps that bracket it.
package mdf
