// Package analysis extracts the swing period from a recorded angle trace.
//
//   - [ZeroCrossingPeriod]: period from upward zero crossings
//   - [PowerSpectrum], [DominantFrequency]: FFT of the trace
//   - [SmallAnglePeriod]: the textbook 2π√(L/g) for comparison
//   - [PhasePortrait]: angle against angular rate, rendered as text
package analysis
